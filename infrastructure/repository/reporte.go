package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/vfg2006/bajas-api/infrastructure/database/postgres"
	"github.com/vfg2006/bajas-api/internal/domain"
)

const reportesTable = "reportes"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type ReporteRepository interface {
	Create(ctx context.Context, reporte domain.Reporte) (*domain.Reporte, error)
	GetByRangoFechas(ctx context.Context, desde, hasta time.Time) ([]domain.Reporte, error)
	GetByCliente(ctx context.Context, codigoCliente string) ([]domain.Reporte, error)
	EstadisticasDelDia(ctx context.Context, fecha time.Time) (*domain.EstadisticasReporte, error)
}

type reporteRepository struct {
	conn *postgres.Connection
}

func NewReporteRepository(conn *postgres.Connection) ReporteRepository {
	return &reporteRepository{
		conn: conn,
	}
}

func (r *reporteRepository) Create(ctx context.Context, reporte domain.Reporte) (*domain.Reporte, error) {
	id, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("error al generar el ID del reporte: %w", err)
	}

	fotos, err := json.Marshal(reporte.FotosRutas)
	if err != nil {
		return nil, fmt.Errorf("error al serializar fotos: %w", err)
	}

	reporte.ID = id
	reporte.FechaSolicitud = time.Now()

	query, args, err := squirrel.StatementBuilder.
		Insert(reportesTable).
		Columns(
			"id",
			"codigo_cliente",
			"nombre_cliente",
			"motivo",
			"zona",
			"ruta",
			"vendedor",
			"resultado",
			"razon",
			"fotos_rutas",
			"fecha_solicitud",
		).
		Values(
			reporte.ID,
			reporte.CodigoCliente,
			reporte.NombreCliente,
			reporte.Motivo,
			reporte.Zona,
			reporte.Ruta,
			reporte.Vendedor,
			reporte.Resultado,
			reporte.Razon,
			fotos,
			reporte.FechaSolicitud,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("error al crear reporte: %w", err)
	}

	return &reporte, nil
}

func (r *reporteRepository) GetByRangoFechas(ctx context.Context, desde, hasta time.Time) ([]domain.Reporte, error) {
	query, args, err := selectReportes().
		Where(squirrel.GtOrEq{"fecha_solicitud": desde}).
		Where(squirrel.Lt{"fecha_solicitud": hasta}).
		OrderBy("fecha_solicitud DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la query: %w", err)
	}

	return r.queryReportes(ctx, query, args)
}

func (r *reporteRepository) GetByCliente(ctx context.Context, codigoCliente string) ([]domain.Reporte, error) {
	query, args, err := selectReportes().
		Where(squirrel.Eq{"codigo_cliente": codigoCliente}).
		OrderBy("fecha_solicitud DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la query: %w", err)
	}

	return r.queryReportes(ctx, query, args)
}

func (r *reporteRepository) EstadisticasDelDia(ctx context.Context, fecha time.Time) (*domain.EstadisticasReporte, error) {
	inicio := time.Date(fecha.Year(), fecha.Month(), fecha.Day(), 0, 0, 0, 0, fecha.Location())
	fin := inicio.AddDate(0, 0, 1)

	query, args, err := squirrel.
		Select(
			"COUNT(*)",
			"COUNT(*) FILTER (WHERE resultado = 'APROBADO')",
			"COUNT(*) FILTER (WHERE resultado = 'RECHAZADO')",
			"COUNT(*) FILTER (WHERE resultado = 'REVISION_MANUAL')",
			"COUNT(*) FILTER (WHERE resultado = 'ERROR')",
		).
		From(reportesTable).
		Where(squirrel.GtOrEq{"fecha_solicitud": inicio}).
		Where(squirrel.Lt{"fecha_solicitud": fin}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la query: %w", err)
	}

	stats := &domain.EstadisticasReporte{Fecha: inicio.Format("02-01-2006")}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&stats.Total,
		&stats.Aprobadas,
		&stats.Rechazadas,
		&stats.RevisionManual,
		&stats.ConError,
	)
	if err != nil {
		return nil, fmt.Errorf("error al calcular estadísticas: %w", err)
	}

	return stats, nil
}

func selectReportes() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"id",
			"codigo_cliente",
			"nombre_cliente",
			"motivo",
			"zona",
			"ruta",
			"vendedor",
			"resultado",
			"razon",
			"fotos_rutas",
			"fecha_solicitud",
		).
		From(reportesTable).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *reporteRepository) queryReportes(ctx context.Context, query string, args []interface{}) ([]domain.Reporte, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error al ejecutar la query: %w", err)
	}
	defer rows.Close()

	reportes := make([]domain.Reporte, 0)
	for rows.Next() {
		var (
			reporte domain.Reporte
			fotos   []byte
		)

		err := rows.Scan(
			&reporte.ID,
			&reporte.CodigoCliente,
			&reporte.NombreCliente,
			&reporte.Motivo,
			&reporte.Zona,
			&reporte.Ruta,
			&reporte.Vendedor,
			&reporte.Resultado,
			&reporte.Razon,
			&fotos,
			&reporte.FechaSolicitud,
		)
		if err != nil {
			return nil, fmt.Errorf("error al escanear reporte: %w", err)
		}

		if len(fotos) > 0 {
			if err := json.Unmarshal(fotos, &reporte.FotosRutas); err != nil {
				return nil, fmt.Errorf("error al deserializar fotos: %w", err)
			}
		}

		reportes = append(reportes, reporte)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al recorrer reportes: %w", err)
	}

	return reportes, nil
}
