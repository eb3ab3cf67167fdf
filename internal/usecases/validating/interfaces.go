package validating

import (
	"context"

	"github.com/vfg2006/bajas-api/internal/domain"
)

// DataStore es la interfaz de lectura sobre la que se evalúan las
// solicitudes. La implementan tanto el adaptador de PostgreSQL como el
// snapshot en memoria; el motor de decisión es uno solo.
type DataStore interface {
	// GetClienteByCodigo retorna nil (sin error) cuando el código no existe
	GetClienteByCodigo(ctx context.Context, codigo string) (*domain.Cliente, error)

	// GetVentasByCliente retorna todas las filas crudas de venta del cliente
	GetVentasByCliente(ctx context.Context, codigo string) ([]domain.Venta, error)

	// GetPlanificacionByRuta retorna nil (sin error) cuando la ruta no existe
	GetPlanificacionByRuta(ctx context.Context, ruta string) (*domain.PlanificacionRuta, error)
}

// Validator evalúa solicitudes de baja de clientes.
type Validator interface {
	// Validar siempre retorna una Decision, incluso ante fallas de la capa
	// de datos; nunca propaga un error ni un pánico.
	Validar(ctx context.Context, codigoCliente, motivo string) domain.Decision
}
