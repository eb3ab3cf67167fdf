package snapshot

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bajas-api/infrastructure/repository"
)

// Cargador reconstruye el dataset en memoria a partir de Postgres. Se
// corre al arrancar y después de cada importación o sincronización.
type Cargador struct {
	store         *Store
	clientes      repository.ClienteRepository
	ventas        repository.VentaRepository
	planificacion repository.PlanificacionRepository
}

func NewCargador(
	store *Store,
	clientes repository.ClienteRepository,
	ventas repository.VentaRepository,
	planificacion repository.PlanificacionRepository,
) *Cargador {
	return &Cargador{
		store:         store,
		clientes:      clientes,
		ventas:        ventas,
		planificacion: planificacion,
	}
}

func (c *Cargador) Recargar(ctx context.Context) error {
	clientes, err := c.clientes.GetAll(ctx)
	if err != nil {
		return err
	}

	ventas, err := c.ventas.GetAll(ctx)
	if err != nil {
		return err
	}

	rutas, err := c.planificacion.GetAll(ctx)
	if err != nil {
		return err
	}

	c.store.Reemplazar(NuevoDataset(clientes, ventas, rutas))

	logrus.WithFields(logrus.Fields{
		"clientes": len(clientes),
		"ventas":   len(ventas),
		"rutas":    len(rutas),
	}).Info("Dataset en memoria recargado")

	return nil
}
