package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bajas-api/internal/scheduler"
	"github.com/vfg2006/bajas-api/pkg/apiErrors"
)

// RunCronJob dispara manualmente la sincronización de planificación.
func RunCronJob(service *scheduler.PlanificacionSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Servicio de sincronización no disponible", nil)
			return
		}

		service.TriggerManualSync()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"mensaje": "Sincronización de planificación iniciada",
		})
	}
}

// GetCronStatus retorna el estado de la sincronización programada.
func GetCronStatus(service *scheduler.PlanificacionSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Servicio de sincronización no disponible", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"planificacion": service.GetStatus(),
		})
	}
}
