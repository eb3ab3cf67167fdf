package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bajas-api/internal/domain"
	"github.com/vfg2006/bajas-api/internal/usecases/reporting"
	"github.com/vfg2006/bajas-api/internal/usecases/validating"
	"github.com/vfg2006/bajas-api/pkg/apiErrors"
	"github.com/vfg2006/bajas-api/pkg/utils"
)

const maxSolicitudBytes = 20 << 20 // 20 MB entre fotos y campos

var validate = validator.New()

type SolicitudBajaRequest struct {
	CodigoCliente string `validate:"required,numeric"`
	Motivo        string `validate:"required"`
}

type SolicitudBajaResponse struct {
	ReporteID              string           `json:"reporte_id,omitempty"`
	Resultado              domain.Resultado `json:"resultado"`
	PuedeInhabilitar       bool             `json:"puede_inhabilitar"`
	RequiereRevisionManual bool             `json:"requiere_revision_manual"`
	NombreCliente          string           `json:"nombre_cliente"`
	Mensaje                string           `json:"mensaje"`
}

// SolicitarBaja recibe la solicitud del vendedor en campo: código de
// cliente, motivo y fotos de la fachada. Decide en el momento y deja
// el reporte registrado.
func SolicitarBaja(validador validating.Validator, reporter reporting.Reporter, uploadsDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxSolicitudBytes); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "El formulario debe ser multipart/form-data", nil)
			return
		}

		req := SolicitudBajaRequest{
			CodigoCliente: strings.TrimSpace(r.FormValue("codigo_cliente")),
			Motivo:        strings.TrimSpace(r.FormValue("motivo")),
		}

		if err := validate.Struct(req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Código de cliente y motivo son obligatorios", err.Error())
			return
		}

		fotos, err := guardarFotos(r.MultipartForm, uploadsDir)
		if err != nil {
			logrus.WithError(err).Error("Error al guardar las fotos de la solicitud")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al guardar las fotos", nil)
			return
		}

		decision := validador.Validar(r.Context(), req.CodigoCliente, req.Motivo)

		// La auditoría no bloquea la respuesta: el vendedor siempre
		// recibe la decisión aunque el registro falle.
		reporteID := ""
		if reporte, err := reporter.Registrar(r.Context(), decision, fotos); err != nil {
			logrus.WithError(err).Error("Error al registrar el reporte de la solicitud")
		} else {
			reporteID = reporte.ID
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(respuestaDeDecision(reporteID, decision))
	}
}

// respuestaDeDecision arma la respuesta para el vendedor. Ante un
// desenlace ERROR la razón interna queda en los logs y el reporte; al
// usuario solo se le pide reintentar.
func respuestaDeDecision(reporteID string, decision domain.Decision) SolicitudBajaResponse {
	resp := SolicitudBajaResponse{
		ReporteID:              reporteID,
		Resultado:              decision.Resultado,
		PuedeInhabilitar:       decision.Resultado == domain.ResultadoAprobado,
		RequiereRevisionManual: decision.Resultado == domain.ResultadoRevisionManual,
		NombreCliente:          decision.NombreCliente,
		Mensaje:                decision.Razon,
	}

	if decision.Resultado == domain.ResultadoError {
		resp.Mensaje = "No se pudo procesar la solicitud, intente nuevamente"
	}

	return resp
}

// guardarFotos persiste las fotos adjuntas en el directorio de uploads
// con nombres generados, y retorna las rutas relativas.
func guardarFotos(form *multipart.Form, uploadsDir string) ([]string, error) {
	archivos := form.File["fotos_rutas"]
	if len(archivos) == 0 {
		return nil, nil
	}

	if err := os.MkdirAll(uploadsDir, 0o755); err != nil {
		return nil, fmt.Errorf("error al crear el directorio de uploads: %w", err)
	}

	rutas := make([]string, 0, len(archivos))
	for _, cabecera := range archivos {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("error al generar el nombre del archivo: %w", err)
		}

		nombre := id + filepath.Ext(cabecera.Filename)
		destino := filepath.Join(uploadsDir, nombre)

		if err := copiarArchivo(cabecera, destino); err != nil {
			return nil, err
		}

		rutas = append(rutas, nombre)
	}

	return rutas, nil
}

func copiarArchivo(cabecera *multipart.FileHeader, destino string) error {
	origen, err := cabecera.Open()
	if err != nil {
		return fmt.Errorf("error al abrir la foto %q: %w", cabecera.Filename, err)
	}
	defer origen.Close()

	archivo, err := os.Create(destino)
	if err != nil {
		return fmt.Errorf("error al crear el archivo %q: %w", destino, err)
	}
	defer archivo.Close()

	if _, err := io.Copy(archivo, origen); err != nil {
		return fmt.Errorf("error al copiar la foto %q: %w", cabecera.Filename, err)
	}

	return nil
}
