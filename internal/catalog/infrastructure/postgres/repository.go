package postgres

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rmaluf/storefront-orders/internal/catalog/domain"
	orderdomain "github.com/rmaluf/storefront-orders/internal/order/domain"
)

type Repository struct {
	log  *slog.Logger
	pool *pgxpool.Pool
}

func NewRepository(log *slog.Logger, pool *pgxpool.Pool) *Repository {
	return &Repository{log: log, pool: pool}
}

func (r *Repository) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS products (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		price_cents BIGINT NOT NULL,
		quantity INT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`)
	return err
}

func (r *Repository) Create(ctx context.Context, p domain.Product) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO products (id, name, price_cents, quantity, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		p.ID, p.Name, p.PriceCents, p.Quantity, p.CreatedAt, p.UpdatedAt)
	return err
}

func (r *Repository) FindByName(ctx context.Context, name string) (domain.Product, bool, error) {
	var p domain.Product
	err := r.pool.QueryRow(ctx, `SELECT id, name, price_cents, quantity, created_at, updated_at
		FROM products WHERE name=$1`, name).
		Scan(&p.ID, &p.Name, &p.PriceCents, &p.Quantity, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Product{}, false, nil
	}
	if err != nil {
		return domain.Product{}, false, err
	}
	return p, true, nil
}

// FindAllByID returns the products that exist among the requested ids, in
// whatever order the database yields them.
func (r *Repository) FindAllByID(ctx context.Context, ids []string) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, price_cents, quantity, created_at, updated_at
		FROM products WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.PriceCents, &p.Quantity, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// UpdateQuantity applies the requested decrements as a single batch. There is
// no guard against concurrent orders draining the same stock; the quantities
// were validated by the caller against a possibly stale read.
func (r *Repository) UpdateQuantity(ctx context.Context, lines []orderdomain.LineRequest) error {
	batch := &pgx.Batch{}
	for _, line := range lines {
		batch.Queue(`UPDATE products SET quantity = quantity - $2, updated_at = now() WHERE id = $1`,
			line.ProductID, line.Quantity)
	}
	return r.pool.SendBatch(ctx, batch).Close()
}
