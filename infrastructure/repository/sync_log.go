package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/bajas-api/infrastructure/database/postgres"
	"github.com/vfg2006/bajas-api/internal/domain"
)

const syncLogsTable = "sync_logs"

type SyncLogRepository interface {
	Append(ctx context.Context, registro domain.SyncLog) error
	GetRecientes(ctx context.Context, limite int) ([]domain.SyncLog, error)
	Estadisticas(ctx context.Context) (*domain.EstadisticasSync, error)
}

type syncLogRepository struct {
	conn *postgres.Connection
}

func NewSyncLogRepository(conn *postgres.Connection) SyncLogRepository {
	return &syncLogRepository{
		conn: conn,
	}
}

func (r *syncLogRepository) Append(ctx context.Context, registro domain.SyncLog) error {
	fecha := registro.FechaSync
	if fecha.IsZero() {
		fecha = time.Now()
	}

	query, args, err := squirrel.StatementBuilder.
		Insert(syncLogsTable).
		Columns(
			"tipo_sync",
			"registros_insertados",
			"registros_actualizados",
			"registros_sin_cambios",
			"estado",
			"mensaje",
			"fecha_sync",
		).
		Values(
			registro.TipoSync,
			registro.Insertados,
			registro.Actualizados,
			registro.SinCambios,
			registro.Estado,
			registro.Mensaje,
			fecha,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error al construir la query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("error al registrar la sincronización: %w", err)
	}

	return nil
}

func (r *syncLogRepository) GetRecientes(ctx context.Context, limite int) ([]domain.SyncLog, error) {
	query, args, err := squirrel.
		Select(
			"id",
			"tipo_sync",
			"registros_insertados",
			"registros_actualizados",
			"registros_sin_cambios",
			"estado",
			"mensaje",
			"fecha_sync",
		).
		From(syncLogsTable).
		OrderBy("fecha_sync DESC").
		Limit(uint64(limite)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error al ejecutar la query: %w", err)
	}
	defer rows.Close()

	registros := make([]domain.SyncLog, 0)
	for rows.Next() {
		var registro domain.SyncLog

		err := rows.Scan(
			&registro.ID,
			&registro.TipoSync,
			&registro.Insertados,
			&registro.Actualizados,
			&registro.SinCambios,
			&registro.Estado,
			&registro.Mensaje,
			&registro.FechaSync,
		)
		if err != nil {
			return nil, fmt.Errorf("error al escanear bitácora: %w", err)
		}

		registros = append(registros, registro)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al recorrer bitácora: %w", err)
	}

	return registros, nil
}

func (r *syncLogRepository) Estadisticas(ctx context.Context) (*domain.EstadisticasSync, error) {
	query, args, err := squirrel.
		Select(
			"COUNT(*)",
			"COUNT(*) FILTER (WHERE estado = 'SUCCESS')",
			"COUNT(*) FILTER (WHERE estado = 'ERROR')",
			"MAX(fecha_sync)",
		).
		From(syncLogsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la query: %w", err)
	}

	var ultima sql.NullTime

	stats := &domain.EstadisticasSync{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&stats.TotalSincronizaciones,
		&stats.Exitosas,
		&stats.Fallidas,
		&ultima,
	)
	if err != nil {
		return nil, fmt.Errorf("error al calcular estadísticas: %w", err)
	}

	if ultima.Valid {
		stats.UltimaSincronizacion = &ultima.Time
	}

	return stats, nil
}
