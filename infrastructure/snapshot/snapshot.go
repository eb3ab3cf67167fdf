// Package snapshot mantiene en memoria una copia completa de los datos
// maestros. El dataset se reemplaza entero en cada recarga, nunca se
// muta fila por fila, así las lecturas concurrentes siempre ven una
// versión consistente.
package snapshot

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/bajas-api/internal/domain"
)

// ErrSinDatos se retorna cuando todavía no se cargó ningún dataset.
var ErrSinDatos = errors.New("Datos no disponibles en cache")

// Dataset es una foto inmutable de clientes, ventas y planificación.
type Dataset struct {
	clientes         map[string]domain.Cliente
	ventasPorCliente map[string][]domain.Venta
	rutas            map[string]domain.PlanificacionRuta
	fechaCarga       time.Time
}

// NuevoDataset indexa los datos crudos para búsqueda por código y ruta.
func NuevoDataset(
	clientes []domain.Cliente,
	ventas []domain.Venta,
	rutas []domain.PlanificacionRuta,
) *Dataset {
	dataset := &Dataset{
		clientes:         make(map[string]domain.Cliente, len(clientes)),
		ventasPorCliente: make(map[string][]domain.Venta),
		rutas:            make(map[string]domain.PlanificacionRuta, len(rutas)),
		fechaCarga:       time.Now(),
	}

	for _, cliente := range clientes {
		codigo := strings.TrimSpace(cliente.Codigo)
		if codigo == "" {
			continue
		}
		dataset.clientes[codigo] = cliente
	}

	for _, venta := range ventas {
		codigo := strings.TrimSpace(venta.CodigoCliente)
		if codigo == "" {
			continue
		}
		dataset.ventasPorCliente[codigo] = append(dataset.ventasPorCliente[codigo], venta)
	}

	for _, ruta := range rutas {
		codigo := strings.TrimSpace(ruta.Ruta)
		if codigo == "" {
			continue
		}
		dataset.rutas[codigo] = ruta
	}

	return dataset
}

// Store publica el dataset vigente y permite reemplazarlo de forma
// atómica. Implementa la misma vista de lectura que los repositorios
// de Postgres.
type Store struct {
	actual atomic.Pointer[Dataset]
}

func NewStore() *Store {
	return &Store{}
}

// Reemplazar publica un dataset nuevo. Los lectores en curso terminan
// sobre la versión anterior.
func (s *Store) Reemplazar(dataset *Dataset) {
	s.actual.Store(dataset)
}

func (s *Store) Cargado() bool {
	return s.actual.Load() != nil
}

// FechaCarga retorna cuándo se publicó el dataset vigente.
func (s *Store) FechaCarga() (time.Time, bool) {
	dataset := s.actual.Load()
	if dataset == nil {
		return time.Time{}, false
	}

	return dataset.fechaCarga, true
}

func (s *Store) GetClienteByCodigo(_ context.Context, codigo string) (*domain.Cliente, error) {
	dataset := s.actual.Load()
	if dataset == nil {
		return nil, ErrSinDatos
	}

	cliente, ok := dataset.clientes[strings.TrimSpace(codigo)]
	if !ok {
		return nil, nil
	}

	return &cliente, nil
}

func (s *Store) GetVentasByCliente(_ context.Context, codigo string) ([]domain.Venta, error) {
	dataset := s.actual.Load()
	if dataset == nil {
		return nil, ErrSinDatos
	}

	return dataset.ventasPorCliente[strings.TrimSpace(codigo)], nil
}

func (s *Store) GetPlanificacionByRuta(_ context.Context, ruta string) (*domain.PlanificacionRuta, error) {
	dataset := s.actual.Load()
	if dataset == nil {
		return nil, ErrSinDatos
	}

	planificacion, ok := dataset.rutas[strings.TrimSpace(ruta)]
	if !ok {
		return nil, nil
	}

	return &planificacion, nil
}
