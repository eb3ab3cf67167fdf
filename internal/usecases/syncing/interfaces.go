package syncing

import (
	"context"

	"github.com/vfg2006/bajas-api/internal/domain"
)

// FeedReader entrega los registros crudos de planificación desde la fuente
// externa (export del sheet remoto o archivo local de respaldo). El
// servicio los trata como una secuencia opaca de registros planos.
type FeedReader interface {
	Leer(ctx context.Context) ([]map[string]string, error)
}

// PlanificacionStore es la tabla de planificación de rutas sobre la que se
// reconcilian los registros del feed.
type PlanificacionStore interface {
	GetAll(ctx context.Context) ([]domain.PlanificacionRuta, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, ruta domain.PlanificacionRuta) error
	Update(ctx context.Context, ruta domain.PlanificacionRuta) error
	InsertBatch(ctx context.Context, rutas []domain.PlanificacionRuta) (int, error)
}

// SyncBitacora es la bitácora append-only de corridas de sincronización.
type SyncBitacora interface {
	Append(ctx context.Context, entrada domain.SyncLog) error
}
