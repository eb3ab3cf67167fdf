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

const planificacionTable = "planificacion_rutas"

type PlanificacionRepository interface {
	GetAll(ctx context.Context) ([]domain.PlanificacionRuta, error)
	GetByRuta(ctx context.Context, ruta string) (*domain.PlanificacionRuta, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, ruta domain.PlanificacionRuta) error
	Update(ctx context.Context, ruta domain.PlanificacionRuta) error
	InsertBatch(ctx context.Context, rutas []domain.PlanificacionRuta) (int, error)
}

type planificacionRepository struct {
	conn *postgres.Connection
}

func NewPlanificacionRepository(conn *postgres.Connection) PlanificacionRepository {
	return &planificacionRepository{
		conn: conn,
	}
}

func (r *planificacionRepository) GetAll(ctx context.Context) ([]domain.PlanificacionRuta, error) {
	query, args, err := squirrel.
		Select("id, ruta, zona, dia, vendedor, fecha_sincronizacion").
		From(planificacionTable).
		OrderBy("ruta ASC").
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

	rutas := make([]domain.PlanificacionRuta, 0)
	for rows.Next() {
		var ruta domain.PlanificacionRuta

		err := rows.Scan(
			&ruta.ID,
			&ruta.Ruta,
			&ruta.Zona,
			&ruta.Dia,
			&ruta.Vendedor,
			&ruta.FechaSincronizacion,
		)
		if err != nil {
			return nil, fmt.Errorf("error al escanear planificación: %w", err)
		}

		rutas = append(rutas, ruta)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al recorrer planificación: %w", err)
	}

	return rutas, nil
}

func (r *planificacionRepository) GetByRuta(ctx context.Context, rutaCodigo string) (*domain.PlanificacionRuta, error) {
	query, args, err := squirrel.
		Select("id, ruta, zona, dia, vendedor, fecha_sincronizacion").
		From(planificacionTable).
		Where(squirrel.Eq{"ruta": rutaCodigo}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la query: %w", err)
	}

	ruta := &domain.PlanificacionRuta{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&ruta.ID,
		&ruta.Ruta,
		&ruta.Zona,
		&ruta.Dia,
		&ruta.Vendedor,
		&ruta.FechaSincronizacion,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error al escanear planificación: %w", err)
	}

	return ruta, nil
}

func (r *planificacionRepository) Count(ctx context.Context) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(planificacionTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error al construir la query: %w", err)
	}

	var total int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error al contar planificación: %w", err)
	}

	return total, nil
}

func (r *planificacionRepository) Create(ctx context.Context, ruta domain.PlanificacionRuta) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(planificacionTable).
		Columns("ruta", "zona", "dia", "vendedor", "fecha_sincronizacion").
		Values(ruta.Ruta, ruta.Zona, ruta.Dia, ruta.Vendedor, time.Now()).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error al construir la query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("error al ejecutar la query: %w", err)
	}

	return nil
}

func (r *planificacionRepository) Update(ctx context.Context, ruta domain.PlanificacionRuta) error {
	query, args, err := squirrel.
		Update(planificacionTable).
		Set("zona", ruta.Zona).
		Set("dia", ruta.Dia).
		Set("vendedor", ruta.Vendedor).
		Set("fecha_sincronizacion", time.Now()).
		Where(squirrel.Eq{"ruta": ruta.Ruta}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error al construir la query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("error al ejecutar la query: %w", err)
	}

	return nil
}

func (r *planificacionRepository) InsertBatch(ctx context.Context, rutas []domain.PlanificacionRuta) (int, error) {
	if len(rutas) == 0 {
		return 0, nil
	}

	builder := squirrel.StatementBuilder.
		Insert(planificacionTable).
		Columns("ruta", "zona", "dia", "vendedor", "fecha_sincronizacion").
		PlaceholderFormat(squirrel.Dollar)

	ahora := time.Now()
	for _, ruta := range rutas {
		builder = builder.Values(ruta.Ruta, ruta.Zona, ruta.Dia, ruta.Vendedor, ahora)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error al construir la query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return 0, fmt.Errorf("error al ejecutar la query: %w", err)
	}

	return len(rutas), nil
}
