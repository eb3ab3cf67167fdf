package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/bajas-api/internal/usecases/authenticating"
	"github.com/vfg2006/bajas-api/pkg/apiErrors"
)

type LoginRequest struct {
	Codigo string `json:"codigo"`
}

// Login emite un token de supervisor a partir del código de acceso.
func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de solicitud inválido", nil)
			return
		}

		token, err := service.LoginSupervisor(req.Codigo)
		if err != nil {
			handleLoginError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"token": token,
		})
	}
}

// handleLoginError traduce los errores de login a respuestas de la API
func handleLoginError(w http.ResponseWriter, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, authenticating.ErrCodigoInvalido):
		apiErrors.WriteError(w, apiErrors.ErrCodigoInvalido, "Código de acceso incorrecto", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error interno al iniciar sesión", nil)
	}
}
