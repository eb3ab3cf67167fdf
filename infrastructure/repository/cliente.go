package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/bajas-api/infrastructure/database/postgres"
	"github.com/vfg2006/bajas-api/internal/domain"
)

const clientesTable = "clientes"

type ClienteRepository interface {
	GetAll(ctx context.Context) ([]domain.Cliente, error)
	GetByCodigo(ctx context.Context, codigo string) (*domain.Cliente, error)
	Upsert(ctx context.Context, cliente domain.Cliente) error
	InsertBatch(ctx context.Context, clientes []domain.Cliente) (int, error)
	SetActivo(ctx context.Context, codigo string, activo bool) error
	Count(ctx context.Context) (int, error)
}

type clienteRepository struct {
	conn *postgres.Connection
}

func NewClienteRepository(conn *postgres.Connection) ClienteRepository {
	return &clienteRepository{
		conn: conn,
	}
}

func (r *clienteRepository) GetAll(ctx context.Context) ([]domain.Cliente, error) {
	query, args, err := squirrel.
		Select("codigo, nombre, ruta, zona, activo").
		From(clientesTable).
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

	clientes := make([]domain.Cliente, 0)
	for rows.Next() {
		var cliente domain.Cliente

		err := rows.Scan(
			&cliente.Codigo,
			&cliente.Nombre,
			&cliente.Ruta,
			&cliente.Zona,
			&cliente.Activo,
		)
		if err != nil {
			return nil, fmt.Errorf("error al escanear cliente: %w", err)
		}

		clientes = append(clientes, cliente)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al recorrer clientes: %w", err)
	}

	return clientes, nil
}

func (r *clienteRepository) GetByCodigo(ctx context.Context, codigo string) (*domain.Cliente, error) {
	query, args, err := squirrel.
		Select("codigo, nombre, ruta, zona, activo").
		From(clientesTable).
		Where(squirrel.Eq{"codigo": codigo}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la query: %w", err)
	}

	cliente := &domain.Cliente{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&cliente.Codigo,
		&cliente.Nombre,
		&cliente.Ruta,
		&cliente.Zona,
		&cliente.Activo,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error al escanear cliente: %w", err)
	}

	return cliente, nil
}

func (r *clienteRepository) Upsert(ctx context.Context, cliente domain.Cliente) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(clientesTable).
		Columns("codigo", "nombre", "ruta", "zona", "activo").
		Values(cliente.Codigo, cliente.Nombre, cliente.Ruta, cliente.Zona, cliente.Activo).
		Suffix(`
			ON CONFLICT (codigo) DO UPDATE SET
				nombre = EXCLUDED.nombre,
				ruta = EXCLUDED.ruta,
				zona = EXCLUDED.zona,
				activo = EXCLUDED.activo
		`).
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

func (r *clienteRepository) InsertBatch(ctx context.Context, clientes []domain.Cliente) (int, error) {
	if len(clientes) == 0 {
		return 0, nil
	}

	builder := squirrel.StatementBuilder.
		Insert(clientesTable).
		Columns("codigo", "nombre", "ruta", "zona", "activo").
		Suffix(`
			ON CONFLICT (codigo) DO UPDATE SET
				nombre = EXCLUDED.nombre,
				ruta = EXCLUDED.ruta,
				zona = EXCLUDED.zona,
				activo = EXCLUDED.activo
		`).
		PlaceholderFormat(squirrel.Dollar)

	for _, cliente := range clientes {
		builder = builder.Values(cliente.Codigo, cliente.Nombre, cliente.Ruta, cliente.Zona, cliente.Activo)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error al construir la query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return 0, fmt.Errorf("error al ejecutar la query: %w", err)
	}

	return len(clientes), nil
}

func (r *clienteRepository) SetActivo(ctx context.Context, codigo string, activo bool) error {
	query, args, err := squirrel.
		Update(clientesTable).
		Set("activo", activo).
		Where(squirrel.Eq{"codigo": codigo}).
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

func (r *clienteRepository) Count(ctx context.Context) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(clientesTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error al construir la query: %w", err)
	}

	var total int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error al contar clientes: %w", err)
	}

	return total, nil
}
