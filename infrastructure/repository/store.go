package repository

import (
	"context"

	"github.com/vfg2006/bajas-api/internal/domain"
)

// DataStore expone los repositorios de Postgres bajo la vista de solo
// lectura que consume el motor de validación.
type DataStore struct {
	clientes      ClienteRepository
	ventas        VentaRepository
	planificacion PlanificacionRepository
}

func NewDataStore(
	clientes ClienteRepository,
	ventas VentaRepository,
	planificacion PlanificacionRepository,
) *DataStore {
	return &DataStore{
		clientes:      clientes,
		ventas:        ventas,
		planificacion: planificacion,
	}
}

func (s *DataStore) GetClienteByCodigo(ctx context.Context, codigo string) (*domain.Cliente, error) {
	return s.clientes.GetByCodigo(ctx, codigo)
}

func (s *DataStore) GetVentasByCliente(ctx context.Context, codigo string) ([]domain.Venta, error) {
	return s.ventas.GetByCliente(ctx, codigo)
}

func (s *DataStore) GetPlanificacionByRuta(ctx context.Context, ruta string) (*domain.PlanificacionRuta, error) {
	return s.planificacion.GetByRuta(ctx, ruta)
}
