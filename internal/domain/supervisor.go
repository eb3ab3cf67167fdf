package domain

import "github.com/golang-jwt/jwt/v5"

// Claims son los claims del token de sesión de un supervisor autenticado.
type Claims struct {
	Supervisor bool `json:"supervisor"`
	jwt.RegisteredClaims
}
