package handler

import (
	"context"
	"mime/multipart"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bajas-api/infrastructure/importer"
	"github.com/vfg2006/bajas-api/infrastructure/repository"
	"github.com/vfg2006/bajas-api/pkg/apiErrors"
)

const maxPlanillaBytes = 50 << 20

// Recargador refresca el snapshot en memoria después de una importación.
// Con backend postgres no hay snapshot y el recargador es nil.
type Recargador interface {
	Recargar(ctx context.Context) error
}

type importacionResponse struct {
	Insertados int    `json:"insertados"`
	Mensaje    string `json:"mensaje"`
}

// ImportarClientes recibe el maestro de clientes en xlsx y lo vuelca a la base.
func ImportarClientes(repo repository.ClienteRepository, recargador Recargador) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		archivo, ok := planillaDelRequest(w, r)
		if !ok {
			return
		}
		defer archivo.Close()

		clientes, err := importer.LeerClientes(archivo)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		insertados, err := repo.InsertBatch(r.Context(), clientes)
		if err != nil {
			logrus.WithError(err).Error("Error al persistir el maestro de clientes")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al guardar los clientes", nil)
			return
		}

		recargarSnapshot(r.Context(), recargador)
		responderImportacion(w, insertados, "Maestro de clientes importado")
	}
}

// ImportarVentas recibe el histórico de ventas en xlsx y lo vuelca a la base.
func ImportarVentas(repo repository.VentaRepository, recargador Recargador) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		archivo, ok := planillaDelRequest(w, r)
		if !ok {
			return
		}
		defer archivo.Close()

		ventas, err := importer.LeerVentas(archivo)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		insertados, err := repo.InsertBatch(r.Context(), ventas)
		if err != nil {
			logrus.WithError(err).Error("Error al persistir el histórico de ventas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al guardar las ventas", nil)
			return
		}

		recargarSnapshot(r.Context(), recargador)
		responderImportacion(w, insertados, "Histórico de ventas importado")
	}
}

func planillaDelRequest(w http.ResponseWriter, r *http.Request) (multipart.File, bool) {
	if err := r.ParseMultipartForm(maxPlanillaBytes); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Se espera un formulario multipart con la planilla", nil)
		return nil, false
	}

	archivo, _, err := r.FormFile("planilla")
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Falta el archivo 'planilla'", nil)
		return nil, false
	}

	return archivo, true
}

func recargarSnapshot(ctx context.Context, recargador Recargador) {
	if recargador == nil {
		return
	}

	if err := recargador.Recargar(ctx); err != nil {
		logrus.WithError(err).Warn("No se pudo recargar el snapshot después de la importación")
	}
}

func responderImportacion(w http.ResponseWriter, insertados int, mensaje string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(importacionResponse{
		Insertados: insertados,
		Mensaje:    mensaje,
	})
}
