package handler

import (
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bajas-api/infrastructure/repository"
	"github.com/vfg2006/bajas-api/internal/usecases/syncing"
	"github.com/vfg2006/bajas-api/pkg/apiErrors"
)

// EstadoPlanificacion expone el resumen de la bitácora y las últimas
// corridas para el panel de administración.
func EstadoPlanificacion(bitacora repository.SyncLogRepository, rutas repository.PlanificacionRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := bitacora.Estadisticas(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Error al calcular estadísticas de sincronización")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar la bitácora", nil)
			return
		}

		total, err := rutas.Count(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Error al contar rutas planificadas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar la planificación", nil)
			return
		}
		stats.TotalRutas = total

		limite := 10
		if v := r.URL.Query().Get("limite"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				limite = n
			}
		}

		recientes, err := bitacora.GetRecientes(r.Context(), limite)
		if err != nil {
			logrus.WithError(err).Error("Error al listar corridas recientes")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar la bitácora", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"estadisticas": stats,
			"recientes":    recientes,
		})
	}
}

// ListarPlanificacion retorna la tabla de rutas vigente.
func ListarPlanificacion(rutas repository.PlanificacionRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		planificacion, err := rutas.GetAll(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Error al listar la planificación")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar la planificación", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(planificacion)
	}
}

// MigracionInicialPlanificacion carga la tabla por primera vez desde el
// feed. Rechaza la corrida si la tabla ya tiene datos.
func MigracionInicialPlanificacion(syncer *syncing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		insertados, err := syncer.MigracionInicial(r.Context())
		if err != nil {
			if errors.Is(err, syncing.ErrYaPoblada) {
				apiErrors.WriteError(w, apiErrors.ErrTablaYaPoblada, err.Error(), nil)
				return
			}

			logrus.WithError(err).Error("Error en la migración inicial de planificación")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error en la migración inicial", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"mensaje":    "Migración inicial completada",
			"insertados": insertados,
		})
	}
}
