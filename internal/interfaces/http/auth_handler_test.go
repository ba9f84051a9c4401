package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/livpay-api/internal/application/dto"
	"github.com/jhoicas/livpay-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/livpay-api/pkg/jwt"
)

var aliceRegister = dto.RegisterRequest{
	Username: "alice",
	Email:    "alice@x.com",
	Phone:    "9812345678",
	Password: "Abcd@123",
}

func TestRegister_Exitoso(t *testing.T) {
	app := buildTestApp(t)

	var out dto.RegisterResponse
	resp := doRequest(t, app, http.MethodPost, "/auth/register", "", aliceRegister, &out)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, out.Success)
	assert.Equal(t, "User registered successfully", out.Message)
	assert.Equal(t, "alice", out.User.Username)
	assert.Equal(t, entity.RoleUser, out.User.Role)
	assert.NotEmpty(t, out.User.ID)
}

func TestRegister_CamposFaltantes(t *testing.T) {
	app := buildTestApp(t)

	var out dto.ErrorResponse
	resp := doRequest(t, app, http.MethodPost, "/auth/register", "",
		dto.RegisterRequest{Username: "alice"}, &out)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, out.Success)
	assert.Equal(t, "All fields are required", out.Message)
}

func TestRegister_Duplicado(t *testing.T) {
	app := buildTestApp(t)
	doRequest(t, app, http.MethodPost, "/auth/register", "", aliceRegister, nil)

	dup := aliceRegister
	dup.Email = "otra@x.com"
	dup.Phone = "9899999999"

	var out dto.ErrorResponse
	resp := doRequest(t, app, http.MethodPost, "/auth/register", "", dup, &out)

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Username already exists", out.Message)
}

// Registro seguido de login por email: el token del response decodifica al
// mismo usuario con rol USER.
func TestLogin_PorEmail(t *testing.T) {
	app := buildTestApp(t)
	var reg dto.RegisterResponse
	doRequest(t, app, http.MethodPost, "/auth/register", "", aliceRegister, &reg)

	var out dto.LoginResponse
	resp := doRequest(t, app, http.MethodPost, "/auth/login", "",
		dto.LoginRequest{Identifier: "alice@x.com", Password: "Abcd@123"}, &out)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, out.Success)
	assert.Equal(t, "Login successful", out.Message)
	assert.Equal(t, reg.User.ID, out.User.ID)

	userID, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, userID)
	assert.Equal(t, entity.RoleUser, role)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	app := buildTestApp(t)
	doRequest(t, app, http.MethodPost, "/auth/register", "", aliceRegister, nil)

	var out dto.ErrorResponse
	resp := doRequest(t, app, http.MethodPost, "/auth/login", "",
		dto.LoginRequest{Identifier: "alice", Password: "Incorrecta@1"}, &out)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "invalid username/email/phone or password", out.Message)
}

func TestLogin_CamposFaltantes(t *testing.T) {
	app := buildTestApp(t)

	var out dto.ErrorResponse
	resp := doRequest(t, app, http.MethodPost, "/auth/login", "",
		dto.LoginRequest{Identifier: "alice"}, &out)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Username/Email/Phone and password are required", out.Message)
}

// El perfil requiere el token emitido en login y devuelve los campos planos.
func TestProfile_ConToken(t *testing.T) {
	app := buildTestApp(t)
	doRequest(t, app, http.MethodPost, "/auth/register", "", aliceRegister, nil)

	var login dto.LoginResponse
	doRequest(t, app, http.MethodPost, "/auth/login", "",
		dto.LoginRequest{Identifier: "alice", Password: "Abcd@123"}, &login)

	var out dto.ProfileResponse
	resp := doRequest(t, app, http.MethodGet, "/auth/profile", login.Token, nil, &out)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, out.Success)
	assert.Equal(t, "alice", out.Username)
	assert.Equal(t, "alice@x.com", out.Email)
	assert.Equal(t, "9812345678", out.Phone)
	assert.Equal(t, entity.RoleUser, out.Role)
}

func TestProfile_SinToken(t *testing.T) {
	app := buildTestApp(t)
	resp := doRequest(t, app, http.MethodGet, "/auth/profile", "", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Token válido pero de un usuario que ya no existe en el store.
func TestProfile_UsuarioInexistente(t *testing.T) {
	app := buildTestApp(t)

	var out dto.ErrorResponse
	resp := doRequest(t, app, http.MethodGet, "/auth/profile", tokenForRole(t, entity.RoleUser), nil, &out)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "User not found", out.Message)
}
