package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gastonduartem/MILAN/internal/types"
)

type Database struct {
	pool *pgxpool.Pool
}

func NewDatabase(connString string) (*Database, error) {

	err := Migrate(connString)

	if err != nil {
		return nil, fmt.Errorf("failed to migrate %w", err)
	}

	ctx := context.Background()
	p, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	return &Database{
		pool: p,
	}, nil
}

func (d *Database) Close() {
	d.pool.Close()
}

func (d *Database) GetOrders(ctx context.Context) ([]types.Order, error) {

	query := `
		SELECT id, real_name, number, back_text, size, created_at
		FROM orders
		ORDER BY number ASC
	`
	rows, err := d.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed collecting rows %w", err)
	}

	orders, err := pgx.CollectRows(rows, pgx.RowToStructByName[types.Order])
	if err != nil {
		return nil, fmt.Errorf("failed unpacking rows %w", err)
	}
	return orders, nil
}

// InsertOrder writes a new order without checking the number first.
// Simultaneous submissions race on the unique constraint and the
// loser gets NumberTakenError.
func (d *Database) InsertOrder(ctx context.Context, params types.OrderParams) (types.Order, error) {

	query := `
		INSERT INTO orders (real_name, number, back_text, size)
		VALUES ($1, $2, $3, $4)
		RETURNING id, real_name, number, back_text, size, created_at
	`
	rows, err := d.pool.Query(ctx, query, params.RealName, params.Number, params.BackText, params.Size)
	if err != nil {
		return types.Order{}, fmt.Errorf("failed inserting order %w", err)
	}

	order, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[types.Order])
	if err != nil {
		if isUniqueViolation(err) {
			return types.Order{}, fmt.Errorf("%w", &NumberTakenError{Number: params.Number})
		}
		return types.Order{}, fmt.Errorf("failed inserting order %w", err)
	}
	return order, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func (d *Database) UpdateOrder(ctx context.Context, id int, params types.OrderParams) (types.Order, error) {

	query := `
		UPDATE orders
		SET real_name = $1, number = $2, back_text = $3, size = $4
		WHERE id = $5
		RETURNING id, real_name, number, back_text, size, created_at
	`
	rows, err := d.pool.Query(ctx, query, params.RealName, params.Number, params.BackText, params.Size, id)
	if err != nil {
		return types.Order{}, fmt.Errorf("failed updating order %w", err)
	}

	order, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[types.Order])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Order{}, fmt.Errorf("%w", &OrderNotFoundError{ID: id})
		}
		if isUniqueViolation(err) {
			return types.Order{}, fmt.Errorf("%w", &NumberTakenError{Number: params.Number})
		}
		return types.Order{}, fmt.Errorf("failed updating order %w", err)
	}
	return order, nil
}

func (d *Database) DeleteOrder(ctx context.Context, id int) error {

	query := `
		DELETE FROM orders
		WHERE id = $1
	`
	tag, err := d.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed deleting order %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w", &OrderNotFoundError{ID: id})
	}
	return nil
}
