package snapshot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/bajas-api/internal/domain"
)

func TestStore_SinDatosCargados(t *testing.T) {
	store := NewStore()

	_, err := store.GetClienteByCodigo(context.Background(), "420568")
	assert.ErrorIs(t, err, ErrSinDatos)

	_, err = store.GetVentasByCliente(context.Background(), "420568")
	assert.ErrorIs(t, err, ErrSinDatos)

	_, err = store.GetPlanificacionByRuta(context.Background(), "R014")
	assert.ErrorIs(t, err, ErrSinDatos)

	assert.False(t, store.Cargado())
}

func TestStore_BusquedaPorCodigo(t *testing.T) {
	store := NewStore()
	store.Reemplazar(NuevoDataset(
		[]domain.Cliente{
			{Codigo: "420568", Nombre: "ALMACEN DON PEDRO", Ruta: "R014", Zona: "NORTE", Activo: true},
		},
		[]domain.Venta{
			{CodigoCliente: "420568", NombreCliente: "ALMACEN DON PEDRO", FechaRaw: time.Date(2025, time.April, 20, 0, 0, 0, 0, time.UTC)},
			{CodigoCliente: "420568", NombreCliente: "ALMACEN DON PEDRO", FechaRaw: time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)},
		},
		[]domain.PlanificacionRuta{
			{Ruta: "R014", Zona: "ZONA NORTE", Dia: "LUNES", Vendedor: "JUAN PEREZ"},
		},
	))

	cliente, err := store.GetClienteByCodigo(context.Background(), "420568")
	require.NoError(t, err)
	require.NotNil(t, cliente)
	assert.Equal(t, "ALMACEN DON PEDRO", cliente.Nombre)

	ventas, err := store.GetVentasByCliente(context.Background(), "420568")
	require.NoError(t, err)
	assert.Len(t, ventas, 2)

	planificacion, err := store.GetPlanificacionByRuta(context.Background(), "R014")
	require.NoError(t, err)
	require.NotNil(t, planificacion)
	assert.Equal(t, "JUAN PEREZ", planificacion.Vendedor)
}

func TestStore_ClienteDesconocidoRetornaNil(t *testing.T) {
	store := NewStore()
	store.Reemplazar(NuevoDataset(nil, nil, nil))

	cliente, err := store.GetClienteByCodigo(context.Background(), "999999999")
	require.NoError(t, err)
	assert.Nil(t, cliente)

	ventas, err := store.GetVentasByCliente(context.Background(), "999999999")
	require.NoError(t, err)
	assert.Empty(t, ventas)

	planificacion, err := store.GetPlanificacionByRuta(context.Background(), "R999")
	require.NoError(t, err)
	assert.Nil(t, planificacion)
}

func TestStore_ReemplazoAtomico(t *testing.T) {
	store := NewStore()
	store.Reemplazar(NuevoDataset(
		[]domain.Cliente{{Codigo: "1", Nombre: "VIEJO"}},
		nil,
		nil,
	))

	store.Reemplazar(NuevoDataset(
		[]domain.Cliente{{Codigo: "1", Nombre: "NUEVO"}},
		nil,
		nil,
	))

	cliente, err := store.GetClienteByCodigo(context.Background(), "1")
	require.NoError(t, err)
	require.NotNil(t, cliente)
	assert.Equal(t, "NUEVO", cliente.Nombre)

	_, ok := store.FechaCarga()
	assert.True(t, ok)
}

func TestNuevoDataset_IgnoraCodigosVacios(t *testing.T) {
	store := NewStore()
	store.Reemplazar(NuevoDataset(
		[]domain.Cliente{{Codigo: "  ", Nombre: "SIN CODIGO"}},
		[]domain.Venta{{CodigoCliente: "", NombreCliente: "SIN CODIGO"}},
		[]domain.PlanificacionRuta{{Ruta: ""}},
	))

	cliente, err := store.GetClienteByCodigo(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, cliente)
}
