package importer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func planillaDePrueba(t *testing.T, filas [][]interface{}) *bytes.Reader {
	t.Helper()

	archivo := excelize.NewFile()
	defer archivo.Close()

	hoja := archivo.GetSheetName(0)
	for i, fila := range filas {
		celda, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, archivo.SetSheetRow(hoja, celda, &fila))
	}

	buf, err := archivo.WriteToBuffer()
	require.NoError(t, err)

	return bytes.NewReader(buf.Bytes())
}

func TestLeerVentas(t *testing.T) {
	planilla := planillaDePrueba(t, [][]interface{}{
		{"CODIGO", "CLIENTE", "FECHA"},
		{"420568", "ALMACEN DON PEDRO", "45779"},
		{"420569", "KIOSCO LA ESQUINA", "01/05/2025"},
		{"", "SIN CODIGO", "45779"},
	})

	ventas, err := LeerVentas(planilla)
	require.NoError(t, err)
	require.Len(t, ventas, 2)

	assert.Equal(t, "420568", ventas[0].CodigoCliente)
	assert.Equal(t, float64(45779), ventas[0].FechaRaw)
	assert.Equal(t, "01/05/2025", ventas[1].FechaRaw)
}

func TestLeerVentas_ColumnaFaltante(t *testing.T) {
	planilla := planillaDePrueba(t, [][]interface{}{
		{"CODIGO", "CLIENTE"},
		{"420568", "ALMACEN DON PEDRO"},
	})

	_, err := LeerVentas(planilla)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FECHA")
}

func TestLeerClientes(t *testing.T) {
	planilla := planillaDePrueba(t, [][]interface{}{
		{"CÓDIGO", "NOMBRE", "RUTA", "ZONA"},
		{"420568", "ALMACEN DON PEDRO", "R014", "NORTE"},
	})

	clientes, err := LeerClientes(planilla)
	require.NoError(t, err)
	require.Len(t, clientes, 1)

	assert.Equal(t, "R014", clientes[0].Ruta)
	assert.True(t, clientes[0].Activo)
}

func TestLeerClientes_SinFilasDeDatos(t *testing.T) {
	planilla := planillaDePrueba(t, [][]interface{}{
		{"CODIGO", "NOMBRE", "RUTA", "ZONA"},
	})

	_, err := LeerClientes(planilla)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "filas de datos")
}
