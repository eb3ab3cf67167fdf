package domain

import "time"

// TipoSync identifica el modo de una corrida de sincronización.
type TipoSync string

const (
	TipoSyncInicial       TipoSync = "INITIAL"
	TipoSyncActualizacion TipoSync = "UPDATE"
)

// EstadoSync es el desenlace de una corrida de sincronización.
type EstadoSync string

const (
	EstadoSyncExito EstadoSync = "SUCCESS"
	EstadoSyncError EstadoSync = "ERROR"
)

// SyncLog es la bitácora append-only de corridas de sincronización de
// planificación. Una fila por corrida, incluso cuando falla.
type SyncLog struct {
	ID           int        `json:"id,omitempty"`
	TipoSync     TipoSync   `json:"tipo_sync"`
	Insertados   int        `json:"registros_insertados"`
	Actualizados int        `json:"registros_actualizados"`
	SinCambios   int        `json:"registros_sin_cambios"`
	Estado       EstadoSync `json:"estado"`
	Mensaje      string     `json:"mensaje,omitempty"`
	FechaSync    time.Time  `json:"fecha_sync,omitempty"`
}

// EstadisticasSync resume la bitácora para el panel de administración.
type EstadisticasSync struct {
	TotalSincronizaciones int        `json:"total_sincronizaciones"`
	Exitosas              int        `json:"exitosas"`
	Fallidas              int        `json:"fallidas"`
	UltimaSincronizacion  *time.Time `json:"ultima_sincronizacion"`
	TotalRutas            int        `json:"total_rutas"`
}
