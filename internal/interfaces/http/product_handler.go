package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/livpay-api/internal/application/dto"
	"github.com/jhoicas/livpay-api/internal/application/usecase"
	"github.com/jhoicas/livpay-api/internal/domain"
)

// ProductHandler maneja el catálogo de planes (lectura autenticada, escritura solo ADMIN).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto (solo ADMIN)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "name, price"
// @Success      201   {object}  dto.ProductDetailResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return mapProductError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ProductDetailResponse{Success: true, Product: *out})
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Router       /products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return mapProductError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return mapProductError(c, err)
	}
	if out == nil {
		return productNotFound(c)
	}
	return c.JSON(dto.ProductDetailResponse{Success: true, Product: *out})
}

// Update godoc
// @Summary      Actualizar producto (solo ADMIN)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.ProductDetailResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return mapProductError(c, err)
	}
	if out == nil {
		return productNotFound(c)
	}
	return c.JSON(dto.ProductDetailResponse{Success: true, Product: *out})
}

// Delete godoc
// @Summary      Eliminar producto (solo ADMIN)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return mapProductError(c, err)
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Product deleted successfully"})
}

func mapProductError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidFormat):
		return badRequest(c, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return productNotFound(c)
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Success: false, Message: "Unexpected error. Please try again."})
	}
}

func productNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Success: false, Message: "Product not found"})
}
