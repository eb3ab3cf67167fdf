package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/bajas-api/infrastructure/database/postgres"
	"github.com/vfg2006/bajas-api/internal/domain"
)

const motivosTable = "motivos"

// ErrMotivoDuplicado se retorna cuando ya existe un motivo con el mismo nombre.
var ErrMotivoDuplicado = errors.New("ya existe un motivo con ese nombre")

type MotivoRepository interface {
	GetAll(ctx context.Context, soloActivos bool) ([]domain.Motivo, error)
	GetByID(ctx context.Context, id int) (*domain.Motivo, error)
	Create(ctx context.Context, nombre string) (*domain.Motivo, error)
	Rename(ctx context.Context, id int, nombre string) error
	SetActivo(ctx context.Context, id int, activo bool) error
}

type motivoRepository struct {
	conn *postgres.Connection
}

func NewMotivoRepository(conn *postgres.Connection) MotivoRepository {
	return &motivoRepository{
		conn: conn,
	}
}

func (r *motivoRepository) GetAll(ctx context.Context, soloActivos bool) ([]domain.Motivo, error) {
	builder := squirrel.
		Select("id, nombre, activo").
		From(motivosTable).
		OrderBy("nombre ASC").
		PlaceholderFormat(squirrel.Dollar)

	if soloActivos {
		builder = builder.Where(squirrel.Eq{"activo": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error al ejecutar la query: %w", err)
	}
	defer rows.Close()

	motivos := make([]domain.Motivo, 0)
	for rows.Next() {
		var motivo domain.Motivo

		if err := rows.Scan(&motivo.ID, &motivo.Nombre, &motivo.Activo); err != nil {
			return nil, fmt.Errorf("error al escanear motivo: %w", err)
		}

		motivos = append(motivos, motivo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al recorrer motivos: %w", err)
	}

	return motivos, nil
}

func (r *motivoRepository) GetByID(ctx context.Context, id int) (*domain.Motivo, error) {
	query, args, err := squirrel.
		Select("id, nombre, activo").
		From(motivosTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la query: %w", err)
	}

	motivo := &domain.Motivo{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&motivo.ID, &motivo.Nombre, &motivo.Activo)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error al escanear motivo: %w", err)
	}

	return motivo, nil
}

func (r *motivoRepository) Create(ctx context.Context, nombre string) (*domain.Motivo, error) {
	query, args, err := squirrel.StatementBuilder.
		Insert(motivosTable).
		Columns("nombre", "activo").
		Values(nombre, true).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la query: %w", err)
	}

	motivo := &domain.Motivo{Nombre: nombre, Activo: true}
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&motivo.ID); err != nil {
		if esViolacionUnicidad(err) {
			return nil, ErrMotivoDuplicado
		}
		return nil, fmt.Errorf("error al crear motivo: %w", err)
	}

	return motivo, nil
}

func (r *motivoRepository) Rename(ctx context.Context, id int, nombre string) error {
	query, args, err := squirrel.
		Update(motivosTable).
		Set("nombre", nombre).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error al construir la query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		if esViolacionUnicidad(err) {
			return ErrMotivoDuplicado
		}
		return fmt.Errorf("error al renombrar motivo: %w", err)
	}

	return nil
}

func (r *motivoRepository) SetActivo(ctx context.Context, id int, activo bool) error {
	query, args, err := squirrel.
		Update(motivosTable).
		Set("activo", activo).
		Where(squirrel.Eq{"id": id}).
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

func esViolacionUnicidad(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}

	return false
}
