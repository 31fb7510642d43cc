package postgres

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rmaluf/storefront-orders/internal/customer/domain"
)

type Repository struct {
	log  *slog.Logger
	pool *pgxpool.Pool
}

func NewRepository(log *slog.Logger, pool *pgxpool.Pool) *Repository {
	return &Repository{log: log, pool: pool}
}

func (r *Repository) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS customers (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`)
	return err
}

func (r *Repository) Create(ctx context.Context, c domain.Customer) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO customers (id, name, email, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5)`,
		c.ID, c.Name, c.Email, c.CreatedAt, c.UpdatedAt)
	return err
}

func (r *Repository) FindByID(ctx context.Context, id string) (domain.Customer, error) {
	return r.findBy(ctx, `SELECT id, name, email, created_at, updated_at FROM customers WHERE id=$1`, id)
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (domain.Customer, error) {
	return r.findBy(ctx, `SELECT id, name, email, created_at, updated_at FROM customers WHERE email=$1`, email)
}

func (r *Repository) findBy(ctx context.Context, query, arg string) (domain.Customer, error) {
	var c domain.Customer
	err := r.pool.QueryRow(ctx, query, arg).
		Scan(&c.ID, &c.Name, &c.Email, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Customer{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Customer{}, err
	}
	return c, nil
}
