package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bajas-api/internal/usecases/motivos"
	"github.com/vfg2006/bajas-api/pkg/apiErrors"
)

type MotivoRequest struct {
	Nombre string `json:"nombre"`
}

// ListarMotivos retorna el catálogo para el formulario de solicitud.
// Sin token solo se exponen los motivos activos.
func ListarMotivos(service motivos.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		soloActivos := r.URL.Query().Get("incluir_inactivos") != "true"

		lista, err := service.Listar(r.Context(), soloActivos)
		if err != nil {
			logrus.WithError(err).Error("Error al listar motivos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al listar motivos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(lista)
	}
}

func CrearMotivo(service motivos.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MotivoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de solicitud inválido", nil)
			return
		}

		motivo, err := service.Crear(r.Context(), req.Nombre)
		if err != nil {
			handleMotivoError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(motivo)
	}
}

func RenombrarMotivo(service motivos.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := motivoID(w, r)
		if !ok {
			return
		}

		var req MotivoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de solicitud inválido", nil)
			return
		}

		if err := service.Renombrar(r.Context(), id, req.Nombre); err != nil {
			handleMotivoError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func ActivarMotivo(service motivos.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := motivoID(w, r)
		if !ok {
			return
		}

		if err := service.Activar(r.Context(), id); err != nil {
			handleMotivoError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// DesactivarMotivo retira el motivo del formulario sin borrar el
// histórico de reportes que lo referencian.
func DesactivarMotivo(service motivos.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := motivoID(w, r)
		if !ok {
			return
		}

		if err := service.Desactivar(r.Context(), id); err != nil {
			handleMotivoError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func motivoID(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")

	id, err := strconv.Atoi(idStr)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID de motivo inválido", nil)
		return 0, false
	}

	return id, true
}

func handleMotivoError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, motivos.ErrNombreVacio):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, motivos.ErrMotivoNoEncontrado):
		apiErrors.WriteError(w, apiErrors.ErrMotivoNotFound, err.Error(), nil)

	case errors.Is(err, motivos.ErrMotivoDuplicado):
		apiErrors.WriteError(w, apiErrors.ErrMotivoDuplicated, err.Error(), nil)

	default:
		logrus.WithError(err).Error("Error al operar sobre el catálogo de motivos")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al operar sobre el catálogo de motivos", nil)
	}
}
