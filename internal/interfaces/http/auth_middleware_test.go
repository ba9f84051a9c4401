package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/livpay-api/internal/application/dto"
	"github.com/jhoicas/livpay-api/internal/domain/entity"
	httpapi "github.com/jhoicas/livpay-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/livpay-api/pkg/jwt"
)

// app mínima con una ruta protegida que devuelve lo que el middleware dejó en Locals.
func buildGuardedApp() *fiber.App {
	app := fiber.New()
	app.Get("/whoami", httpapi.AuthMiddleware(testSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": httpapi.GetUserID(c),
			"role":    httpapi.GetRole(c),
		})
	})
	app.Get("/admin", httpapi.AuthMiddleware(testSecret), httpapi.RequireRole(entity.RoleAdmin), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return app
}

func getWithAuth(t *testing.T, app *fiber.App, path, authHeader string) (*http.Response, dto.ErrorResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var body dto.ErrorResponse
	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	}
	return resp, body
}

func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := buildGuardedApp()
	resp, body := getWithAuth(t, app, "/whoami", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, body.Success)
	assert.Equal(t, "Authentication required. Please provide a valid token.", body.Message)
}

func TestAuthMiddleware_EsquemaIncorrecto(t *testing.T) {
	app := buildGuardedApp()
	resp, _ := getWithAuth(t, app, "/whoami", "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenVacio(t *testing.T) {
	app := buildGuardedApp()
	// fasthttp puede recortar el espacio final del header; en cualquier caso es 401
	resp, body := getWithAuth(t, app, "/whoami", "Bearer ")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, body.Success)
}

func TestAuthMiddleware_TokenBasura(t *testing.T) {
	app := buildGuardedApp()
	resp, body := getWithAuth(t, app, "/whoami", "Bearer no.es.jwt")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid token. Please login again.", body.Message)
}

func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	app := buildGuardedApp()
	expired, err := pkgjwt.Generate(testSecret, "u1", entity.RoleUser, testIssuer, -1)
	require.NoError(t, err)

	resp, body := getWithAuth(t, app, "/whoami", "Bearer "+expired)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Token expired. Please login again.", body.Message)
}

// Con token válido el middleware deja user_id y role en el contexto.
func TestAuthMiddleware_TokenValido(t *testing.T) {
	app := buildGuardedApp()
	tok := tokenForRole(t, entity.RoleUser)

	var got struct {
		UserID string `json:"user_id"`
		Role   string `json:"role"`
	}
	resp := doRequest(t, app, http.MethodGet, "/whoami", tok, nil, &got)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "11111111-1111-1111-1111-111111111111", got.UserID)
	assert.Equal(t, entity.RoleUser, got.Role)
}

// El gate de rol es por igualdad exacta: USER contra una ruta ADMIN da 403, no 401.
func TestRequireRole_UsuarioSinPermiso(t *testing.T) {
	app := buildGuardedApp()
	resp, body := getWithAuth(t, app, "/admin", "Bearer "+tokenForRole(t, entity.RoleUser))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Access denied: insufficient permissions", body.Message)
}

func TestRequireRole_AdminPasa(t *testing.T) {
	app := buildGuardedApp()
	resp, _ := getWithAuth(t, app, "/admin", "Bearer "+tokenForRole(t, entity.RoleAdmin))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
