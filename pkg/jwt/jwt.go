package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Errores tipados para que el middleware pueda distinguir el motivo del rechazo.
var (
	ErrExpired          = errors.New("token expirado")
	ErrInvalid          = errors.New("token inválido")
	ErrMalformedPayload = errors.New("payload del token incompleto")
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Se añade Role para que el guard de rutas pueda autorizar sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Role   string `json:"role"` // "USER" | "ADMIN"
}

// Generate genera un token HS256 firmado que incluye userID y role.
// La vida útil es expMinutes a partir de ahora; el token no es renovable.
func Generate(secret, userID, role, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID: userID,
		Role:   role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma y expiración y devuelve userID y role.
// Retorna ErrExpired si el token venció, ErrInvalid si la firma o el formato no sirven
// y ErrMalformedPayload si faltan user_id o role en los claims.
func Parse(secret, tokenString string) (userID, role string, err error) {
	if secret == "" {
		return "", "", fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrExpired
		}
		return "", "", ErrInvalid
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", "", ErrInvalid
	}
	if claims.UserID == "" || claims.Role == "" {
		return "", "", ErrMalformedPayload
	}
	return claims.UserID, claims.Role, nil
}
