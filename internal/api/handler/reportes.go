package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bajas-api/internal/usecases/reporting"
	"github.com/vfg2006/bajas-api/pkg/apiErrors"
	"github.com/vfg2006/bajas-api/pkg/utils"
)

// rangoDeFechas interpreta desde/hasta de la query. Sin parámetros se
// asume el día de hoy. "hasta" es inclusivo a nivel de día.
func rangoDeFechas(r *http.Request) (time.Time, time.Time, error) {
	hoy := time.Now().Truncate(24 * time.Hour)
	desde, hasta := hoy, hoy.AddDate(0, 0, 1)

	if v := r.URL.Query().Get("desde"); v != "" {
		fecha, err := utils.ParseDate(v)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("fecha 'desde' inválida: %s", v)
		}
		desde = *fecha
	}

	if v := r.URL.Query().Get("hasta"); v != "" {
		fecha, err := utils.ParseDate(v)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("fecha 'hasta' inválida: %s", v)
		}
		hasta = fecha.AddDate(0, 0, 1)
	}

	return desde, hasta, nil
}

// ListarReportes retorna las solicitudes del rango pedido.
func ListarReportes(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		desde, hasta, err := rangoDeFechas(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		reportes, err := service.PorRango(r.Context(), desde, hasta)
		if err != nil {
			logrus.WithError(err).Error("Error al listar reportes")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar reportes", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(reportes)
	}
}

// ReportesPorCliente retorna el histórico de solicitudes de un cliente.
func ReportesPorCliente(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		codigo := httprouter.ParamsFromContext(r.Context()).ByName("codigo")

		reportes, err := service.PorCliente(r.Context(), codigo)
		if err != nil {
			logrus.WithError(err).Error("Error al consultar reportes del cliente")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar reportes", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(reportes)
	}
}

// EstadisticasReportes retorna los conteos del día por desenlace.
func EstadisticasReportes(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fecha := time.Now()
		if v := r.URL.Query().Get("fecha"); v != "" {
			parseada, err := utils.ParseDate(v)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Fecha inválida, se espera YYYY-MM-DD", nil)
				return
			}
			fecha = *parseada
		}

		stats, err := service.EstadisticasDelDia(r.Context(), fecha)
		if err != nil {
			logrus.WithError(err).Error("Error al calcular estadísticas de reportes")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al calcular estadísticas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(stats)
	}
}

// ExportarReportes descarga el rango pedido como un libro xlsx.
func ExportarReportes(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		desde, hasta, err := rangoDeFechas(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		contenido, err := service.ExportarExcel(r.Context(), desde, hasta)
		if err != nil {
			logrus.WithError(err).Error("Error al exportar reportes")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al exportar reportes", nil)
			return
		}

		nombre := fmt.Sprintf("solicitudes-baja-%s.xlsx", desde.Format("2006-01-02"))
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", nombre))
		_, _ = w.Write(contenido)
	}
}
