package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de error de la API
const (
	// Errores de autenticación (1000-1999)
	ErrCodigoInvalido        = "AUTH_001" // Código de supervisor inválido
	ErrInvalidToken          = "AUTH_002" // Token inválido
	ErrExpiredToken          = "AUTH_003" // Token expirado
	ErrInsufficientPrivilege = "AUTH_004" // Privilegios insuficientes

	// Errores de validación (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Solicitud inválida
	ErrMissingRequiredData = "VAL_002" // Datos obligatorios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de datos inválido

	// Errores de dominio (3000-3999)
	ErrMotivoNotFound   = "MOT_001" // Motivo no encontrado
	ErrMotivoDuplicated = "MOT_002" // Ya existe un motivo con ese nombre
	ErrSyncInProgress   = "SYNC_001" // Sincronización en curso
	ErrDatosNoCargados  = "SYNC_002" // Datos aún no disponibles en cache
	ErrTablaYaPoblada   = "SYNC_003" // La tabla ya tiene datos cargados

	// Errores del servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Error interno del servidor
	ErrDatabaseOperation = "SRV_002" // Error de operación de base de datos
	ErrExternalService   = "SRV_003" // Error en servicio externo
)

// Mapa de códigos de error a status HTTP
var httpStatusMap = map[string]int{
	ErrCodigoInvalido:        http.StatusUnauthorized,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrMotivoNotFound:        http.StatusNotFound,
	ErrMotivoDuplicated:      http.StatusConflict,
	ErrSyncInProgress:        http.StatusConflict,
	ErrDatosNoCargados:       http.StatusServiceUnavailable,
	ErrTablaYaPoblada:        http.StatusConflict,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
}

// APIError representa un error de API estandarizado
type APIError struct {
	Code    string `json:"code"`              // Código de error para el cliente
	Message string `json:"message,omitempty"` // Mensaje descriptivo (opcional)
	Details any    `json:"details,omitempty"` // Detalles adicionales (opcional)
}

// WriteError escribe el error estandarizado en la respuesta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError crea un error de API a partir de un error Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Error desconocido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
