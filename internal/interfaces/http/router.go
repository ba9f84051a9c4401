package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/livpay-api/internal/application/auth"
	"github.com/jhoicas/livpay-api/internal/application/usecase"
	"github.com/jhoicas/livpay-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	ProductUC *usecase.ProductUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (registro y login públicos; perfil requiere Bearer)
	authGroup := app.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/profile", AuthMiddleware(deps.JWTSecret), authHandler.Profile)

	// Products: lectura para cualquier autenticado, escritura solo ADMIN
	products := app.Group("/products", AuthMiddleware(deps.JWTSecret))
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)

	adminOnly := RequireRole(entity.RoleAdmin)
	products.Post("/", adminOnly, productHandler.Create)
	products.Put("/:id", adminOnly, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)
}
