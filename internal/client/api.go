package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jhoicas/livpay-api/internal/application/dto"
	"github.com/jhoicas/livpay-api/internal/domain"
	"github.com/jhoicas/livpay-api/pkg/config"
)

// Client habla con el backend livpay. El timeout es explícito: el transporte por
// defecto no trae ninguno y una petición colgada dejaría la UI bloqueada.
type Client struct {
	baseURL string
	http    *http.Client
}

// New construye un cliente contra baseURL con el timeout dado.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// NewFromConfig construye el cliente desde la sección Client de la configuración.
func NewFromConfig(cfg config.ClientConfig) *Client {
	return New(cfg.BaseURL, cfg.Timeout())
}

// Register registra un usuario nuevo.
func (c *Client) Register(in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	var out dto.RegisterResponse
	if err := c.do(http.MethodPost, "/auth/register", "", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login autentica con username, email o teléfono.
func (c *Client) Login(identifier, password string) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	in := dto.LoginRequest{Identifier: identifier, Password: password}
	if err := c.do(http.MethodPost, "/auth/login", "", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchProfile trae la vista pública del usuario del token.
func (c *Client) FetchProfile(token string) (*dto.ProfileResponse, error) {
	var out dto.ProfileResponse
	if err := c.do(http.MethodGet, "/auth/profile", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchProducts trae el catálogo (requiere token).
func (c *Client) FetchProducts(token string) (*dto.ProductListResponse, error) {
	var out dto.ProductListResponse
	if err := c.do(http.MethodGet, "/products", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do ejecuta la petición y decodifica la respuesta. Un fallo de transporte se
// envuelve en domain.ErrUnavailable para que la UI distinga "el servidor rechazó
// esto" de "el servidor no responde".
func (c *Client) do(method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("network error: unable to connect to server at %s: %w", c.baseURL, domain.ErrUnavailable)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", domain.ErrUnavailable)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var fail dto.ErrorResponse
		message := fmt.Sprintf("Request failed (%d)", resp.StatusCode)
		if json.Unmarshal(raw, &fail) == nil && fail.Message != "" {
			message = fail.Message
		}
		return fmt.Errorf("%s: %w", message, statusError(resp.StatusCode))
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// statusError mapea el status HTTP de vuelta a la taxonomía de dominio.
func statusError(status int) error {
	switch status {
	case http.StatusBadRequest:
		return domain.ErrInvalidFormat
	case http.StatusUnauthorized:
		return domain.ErrUnauthenticated
	case http.StatusForbidden:
		return domain.ErrForbidden
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusConflict:
		return domain.ErrConflict
	default:
		return errServer
	}
}

// errServer: el servidor respondió pero con un error inesperado. No es
// ErrUnavailable, que queda reservado para fallos de transporte.
var errServer = errors.New("server error")
