package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/bajas-api/infrastructure/database/postgres"
	"github.com/vfg2006/bajas-api/internal/domain"
	"github.com/vfg2006/bajas-api/pkg/exceldate"
)

const ventasTable = "ventas"

type VentaRepository interface {
	GetAll(ctx context.Context) ([]domain.Venta, error)
	GetByCliente(ctx context.Context, codigoCliente string) ([]domain.Venta, error)
	InsertBatch(ctx context.Context, ventas []domain.Venta) (int, error)
	DeleteOlderThan(ctx context.Context, fecha time.Time) (int64, error)
	Count(ctx context.Context) (int, error)
}

type ventaRepository struct {
	conn *postgres.Connection
}

func NewVentaRepository(conn *postgres.Connection) VentaRepository {
	return &ventaRepository{
		conn: conn,
	}
}

func (r *ventaRepository) GetAll(ctx context.Context) ([]domain.Venta, error) {
	query, args, err := squirrel.
		Select("codigo_cliente, nombre_cliente, fecha").
		From(ventasTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la query: %w", err)
	}

	return r.queryVentas(ctx, query, args)
}

// GetByCliente retorna las ventas del cliente ordenadas de la más reciente
// a la más antigua. Las filas sin fecha quedan al final.
func (r *ventaRepository) GetByCliente(ctx context.Context, codigoCliente string) ([]domain.Venta, error) {
	query, args, err := squirrel.
		Select("codigo_cliente, nombre_cliente, fecha").
		From(ventasTable).
		Where(squirrel.Eq{"codigo_cliente": codigoCliente}).
		OrderBy("fecha DESC NULLS LAST").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la query: %w", err)
	}

	return r.queryVentas(ctx, query, args)
}

func (r *ventaRepository) queryVentas(ctx context.Context, query string, args []interface{}) ([]domain.Venta, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error al ejecutar la query: %w", err)
	}
	defer rows.Close()

	ventas := make([]domain.Venta, 0)
	for rows.Next() {
		var (
			venta domain.Venta
			fecha sql.NullTime
		)

		if err := rows.Scan(&venta.CodigoCliente, &venta.NombreCliente, &fecha); err != nil {
			return nil, fmt.Errorf("error al escanear venta: %w", err)
		}

		if fecha.Valid {
			venta.FechaRaw = fecha.Time
		}

		ventas = append(ventas, venta)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al recorrer ventas: %w", err)
	}

	return ventas, nil
}

func (r *ventaRepository) InsertBatch(ctx context.Context, ventas []domain.Venta) (int, error) {
	if len(ventas) == 0 {
		return 0, nil
	}

	builder := squirrel.StatementBuilder.
		Insert(ventasTable).
		Columns("codigo_cliente", "nombre_cliente", "fecha").
		PlaceholderFormat(squirrel.Dollar)

	for _, venta := range ventas {
		builder = builder.Values(venta.CodigoCliente, venta.NombreCliente, fechaDeVenta(venta))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error al construir la query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return 0, fmt.Errorf("error al ejecutar la query: %w", err)
	}

	return len(ventas), nil
}

func (r *ventaRepository) DeleteOlderThan(ctx context.Context, fecha time.Time) (int64, error) {
	query, args, err := squirrel.
		Delete(ventasTable).
		Where(squirrel.Lt{"fecha": fecha}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error al construir la query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("error al ejecutar la query: %w", err)
	}

	eliminadas, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error al obtener filas eliminadas: %w", err)
	}

	return eliminadas, nil
}

func (r *ventaRepository) Count(ctx context.Context) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(ventasTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error al construir la query: %w", err)
	}

	var total int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("error al contar ventas: %w", err)
	}

	return total, nil
}

// fechaDeVenta reduce FechaRaw a un valor insertable. Los seriales de
// planilla y las fechas en texto se normalizan acá, antes de persistir.
// Solo queda NULL lo que no representa una fecha.
func fechaDeVenta(venta domain.Venta) interface{} {
	fecha, ok := exceldate.Normalize(venta.FechaRaw)
	if !ok {
		return nil
	}

	return fecha
}
