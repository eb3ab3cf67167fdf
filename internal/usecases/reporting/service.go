package reporting

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bajas-api/infrastructure/repository"
	"github.com/vfg2006/bajas-api/internal/domain"
	"github.com/vfg2006/bajas-api/pkg/exceldate"
	"github.com/xuri/excelize/v2"
)

// Reporter registra el desenlace de cada solicitud de baja y arma los
// resúmenes que consume Inteligencia Comercial.
type Reporter interface {
	Registrar(ctx context.Context, decision domain.Decision, fotos []string) (*domain.Reporte, error)
	PorRango(ctx context.Context, desde, hasta time.Time) ([]domain.Reporte, error)
	PorCliente(ctx context.Context, codigoCliente string) ([]domain.Reporte, error)
	EstadisticasDelDia(ctx context.Context, fecha time.Time) (*domain.EstadisticasReporte, error)
	ExportarExcel(ctx context.Context, desde, hasta time.Time) ([]byte, error)
}

type Service struct {
	repo repository.ReporteRepository
}

func NewService(repo repository.ReporteRepository) Reporter {
	return &Service{
		repo: repo,
	}
}

func (s *Service) Registrar(ctx context.Context, decision domain.Decision, fotos []string) (*domain.Reporte, error) {
	reporte, err := s.repo.Create(ctx, domain.Reporte{
		CodigoCliente: decision.CodigoCliente,
		NombreCliente: decision.NombreCliente,
		Motivo:        decision.Motivo,
		Zona:          decision.Zona,
		Ruta:          decision.Ruta,
		Vendedor:      decision.Vendedor,
		Resultado:     decision.Resultado,
		Razon:         decision.Razon,
		FotosRutas:    fotos,
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"reporte_id": reporte.ID,
		"cliente":    reporte.CodigoCliente,
		"resultado":  reporte.Resultado,
	}).Info("Solicitud de baja registrada")

	return reporte, nil
}

func (s *Service) PorRango(ctx context.Context, desde, hasta time.Time) ([]domain.Reporte, error) {
	return s.repo.GetByRangoFechas(ctx, desde, hasta)
}

func (s *Service) PorCliente(ctx context.Context, codigoCliente string) ([]domain.Reporte, error) {
	return s.repo.GetByCliente(ctx, codigoCliente)
}

func (s *Service) EstadisticasDelDia(ctx context.Context, fecha time.Time) (*domain.EstadisticasReporte, error) {
	return s.repo.EstadisticasDelDia(ctx, fecha)
}

var encabezadosExcel = []string{
	"Código",
	"Cliente",
	"Motivo",
	"Zona",
	"Ruta",
	"Vendedor",
	"Resultado",
	"Razón",
	"Fecha de solicitud",
}

// ExportarExcel arma el libro que se envía al área comercial, una fila
// por solicitud del rango pedido.
func (s *Service) ExportarExcel(ctx context.Context, desde, hasta time.Time) ([]byte, error) {
	reportes, err := s.repo.GetByRangoFechas(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}

	archivo := excelize.NewFile()
	defer archivo.Close()

	const hoja = "Solicitudes"
	if err := archivo.SetSheetName(archivo.GetSheetName(0), hoja); err != nil {
		return nil, fmt.Errorf("error al renombrar la hoja: %w", err)
	}

	fila := make([]interface{}, len(encabezadosExcel))
	for i, encabezado := range encabezadosExcel {
		fila[i] = encabezado
	}
	if err := archivo.SetSheetRow(hoja, "A1", &fila); err != nil {
		return nil, fmt.Errorf("error al escribir encabezados: %w", err)
	}

	for i, reporte := range reportes {
		celda, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("error al calcular la celda: %w", err)
		}

		fila := []interface{}{
			reporte.CodigoCliente,
			reporte.NombreCliente,
			reporte.Motivo,
			reporte.Zona,
			reporte.Ruta,
			reporte.Vendedor,
			string(reporte.Resultado),
			reporte.Razon,
			exceldate.Formatear(reporte.FechaSolicitud),
		}
		if err := archivo.SetSheetRow(hoja, celda, &fila); err != nil {
			return nil, fmt.Errorf("error al escribir la fila %d: %w", i+2, err)
		}
	}

	var buf bytes.Buffer
	if err := archivo.Write(&buf); err != nil {
		return nil, fmt.Errorf("error al serializar el libro: %w", err)
	}

	return buf.Bytes(), nil
}
