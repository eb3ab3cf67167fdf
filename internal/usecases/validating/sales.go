package validating

import (
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bajas-api/internal/domain"
	"github.com/vfg2006/bajas-api/pkg/exceldate"
)

// historialVentas es el índice de ventas de un cliente ya normalizado:
// cuántas filas crudas existen y qué fechas resultaron válidas.
type historialVentas struct {
	totalFilas int
	fechas     []time.Time // ordenadas de más reciente a más antigua
}

func nuevoHistorial(codigo string, ventas []domain.Venta) historialVentas {
	historial := historialVentas{totalFilas: len(ventas)}

	for _, venta := range ventas {
		fecha, ok := exceldate.Normalize(venta.FechaRaw)
		if !ok {
			continue
		}
		historial.fechas = append(historial.fechas, fecha)
	}

	sort.Slice(historial.fechas, func(i, j int) bool {
		return historial.fechas[i].After(historial.fechas[j])
	})

	if historial.totalFilas > 0 && len(historial.fechas) == 0 {
		// Se distingue solo en diagnóstico; para el motor ambos casos
		// significan "sin fecha de venta utilizable"
		logrus.WithFields(logrus.Fields{
			"codigo_cliente": codigo,
			"total_filas":    historial.totalFilas,
		}).Warn("Cliente con ventas registradas pero sin fechas válidas")
	}

	return historial
}

// masReciente retorna la fecha de venta válida más reciente; ok=false
// cuando no hay ninguna.
func (h historialVentas) masReciente() (time.Time, bool) {
	if len(h.fechas) == 0 {
		return time.Time{}, false
	}
	return h.fechas[0], true
}
