package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/livpay-api/internal/application/auth"
	"github.com/jhoicas/livpay-api/internal/application/usecase"
	"github.com/jhoicas/livpay-api/internal/domain"
	"github.com/jhoicas/livpay-api/internal/domain/entity"
	httpapi "github.com/jhoicas/livpay-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/livpay-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-http-tests"
	testIssuer = "livpay-test"
)

// Fakes en memoria con la misma semántica que los adaptadores de postgres:
// Get* devuelven (nil, nil) cuando no hay fila y Create señala conflicto.

type memUserRepo struct {
	users []*entity.User
}

func (r *memUserRepo) Create(user *entity.User) error {
	for _, u := range r.users {
		switch {
		case u.Username == user.Username:
			return &domain.ConflictError{Field: "username"}
		case u.Email == user.Email:
			return &domain.ConflictError{Field: "email"}
		case u.Phone == user.Phone:
			return &domain.ConflictError{Field: "phone"}
		}
	}
	copied := *user
	r.users = append(r.users, &copied)
	return nil
}

func (r *memUserRepo) find(match func(*entity.User) bool) (*entity.User, error) {
	for _, u := range r.users {
		if match(u) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.ID == id })
}
func (r *memUserRepo) GetByUsername(username string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Username == username })
}
func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Email == email })
}
func (r *memUserRepo) GetByPhone(phone string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Phone == phone })
}

type memProductRepo struct {
	products []*entity.Product
}

func (r *memProductRepo) Create(product *entity.Product) error {
	copied := *product
	r.products = append(r.products, &copied)
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			copied := *p
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for i := len(r.products) - 1; i >= 0; i-- {
		copied := *r.products[i]
		out = append(out, &copied)
	}
	return out, nil
}

func (r *memProductRepo) Update(product *entity.Product) error {
	for i, p := range r.products {
		if p.ID == product.ID {
			copied := *product
			r.products[i] = &copied
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memProductRepo) Delete(id string) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// buildTestApp levanta la app Fiber completa con repos en memoria.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	authUC := auth.NewAuthUseCase(&memUserRepo{}, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     testIssuer,
	})
	productUC := usecase.NewProductUseCase(&memProductRepo{})

	app := fiber.New()
	httpapi.Router(app, httpapi.RouterDeps{
		AuthUC:    authUC,
		ProductUC: productUC,
		JWTSecret: testSecret,
	})
	return app
}

// tokenForRole emite un token válido directamente, sin pasar por /auth/login.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testSecret, "11111111-1111-1111-1111-111111111111", role, testIssuer, 60)
	require.NoError(t, err)
	return tok
}

// doRequest ejecuta una petición JSON contra la app y decodifica el body en out.
func doRequest(t *testing.T, app *fiber.App, method, path, token string, body any, out any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	if out != nil {
		defer resp.Body.Close()
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}
