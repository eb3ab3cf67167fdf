package reporting

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/bajas-api/internal/domain"
	"github.com/vfg2006/bajas-api/internal/usecases/reporting/mocks"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

func TestService_Registrar(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockReporteRepository(ctrl)

	decision := domain.Decision{
		CodigoCliente: "420568",
		NombreCliente: "ALMACEN DON PEDRO",
		Motivo:        "Cierre del local",
		Zona:          "ZONA NORTE",
		Ruta:          "R014",
		Vendedor:      "JUAN PEREZ",
		Resultado:     domain.ResultadoAprobado,
		Razon:         "Última venta hace 120 días",
	}

	repo.EXPECT().
		Create(gomock.Any(), gomock.Cond(func(x any) bool {
			r, ok := x.(domain.Reporte)
			return ok && r.CodigoCliente == "420568" &&
				r.Resultado == domain.ResultadoAprobado &&
				len(r.FotosRutas) == 2
		})).
		DoAndReturn(func(_ context.Context, r domain.Reporte) (*domain.Reporte, error) {
			r.ID = "abc123"
			r.FechaSolicitud = time.Now()
			return &r, nil
		})

	reporte, err := NewService(repo).Registrar(context.Background(), decision, []string{"foto1.jpg", "foto2.jpg"})
	require.NoError(t, err)
	assert.Equal(t, "abc123", reporte.ID)
	assert.Equal(t, "Última venta hace 120 días", reporte.Razon)
}

func TestService_ExportarExcel(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockReporteRepository(ctrl)

	desde := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	hasta := desde.AddDate(0, 0, 1)

	repo.EXPECT().
		GetByRangoFechas(gomock.Any(), desde, hasta).
		Return([]domain.Reporte{
			{
				CodigoCliente:  "420568",
				NombreCliente:  "ALMACEN DON PEDRO",
				Motivo:         "Cierre del local",
				Zona:           "ZONA NORTE",
				Ruta:           "R014",
				Vendedor:       "JUAN PEREZ",
				Resultado:      domain.ResultadoRechazado,
				Razon:          "Tiene ventas recientes (hace 12 días)",
				FechaSolicitud: desde,
			},
		}, nil)

	contenido, err := NewService(repo).ExportarExcel(context.Background(), desde, hasta)
	require.NoError(t, err)

	libro, err := excelize.OpenReader(bytes.NewReader(contenido))
	require.NoError(t, err)
	defer libro.Close()

	filas, err := libro.GetRows("Solicitudes")
	require.NoError(t, err)
	require.Len(t, filas, 2)

	assert.Equal(t, "Código", filas[0][0])
	assert.Equal(t, "420568", filas[1][0])
	assert.Equal(t, "RECHAZADO", filas[1][6])
	assert.Equal(t, "01-05-2025", filas[1][8])
}

func TestService_EstadisticasDelDia(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockReporteRepository(ctrl)

	fecha := time.Date(2025, time.May, 1, 15, 30, 0, 0, time.UTC)

	repo.EXPECT().
		EstadisticasDelDia(gomock.Any(), fecha).
		Return(&domain.EstadisticasReporte{
			Fecha:      "01-05-2025",
			Total:      10,
			Aprobadas:  6,
			Rechazadas: 3,
			ConError:   1,
		}, nil)

	stats, err := NewService(repo).EstadisticasDelDia(context.Background(), fecha)
	require.NoError(t, err)
	assert.Equal(t, 10, stats.Total)
}
