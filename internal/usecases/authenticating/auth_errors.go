package authenticating

import (
	"errors"
	"fmt"
)

var (
	// Errores de autenticación
	ErrCodigoInvalido        = errors.New("código de supervisor inválido")
	ErrInvalidToken          = errors.New("token inválido")
	ErrExpiredToken          = errors.New("token expirado")
	ErrInsufficientPrivilege = errors.New("privilegios insuficientes")

	// Errores de validación
	ErrMissingRequiredData = errors.New("datos obligatorios ausentes")
)

// AuthError es un error con contexto adicional para autenticación
type AuthError struct {
	Err     error  // Error base
	Code    string // Código de error para la API
	Details string // Detalles adicionales
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsCredentialsError verifica si el error está relacionado con credenciales inválidas
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrCodigoInvalido)
}

// IsAuthorizationError verifica si el error está relacionado con problemas de autorización
func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrInsufficientPrivilege) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken)
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
