//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/rmaluf/storefront-orders/internal/catalog/domain"
	catalogpg "github.com/rmaluf/storefront-orders/internal/catalog/infrastructure/postgres"
	customerdomain "github.com/rmaluf/storefront-orders/internal/customer/domain"
	customerpg "github.com/rmaluf/storefront-orders/internal/customer/infrastructure/postgres"
	"github.com/rmaluf/storefront-orders/internal/order/application"
	"github.com/rmaluf/storefront-orders/internal/order/domain"
	orderpg "github.com/rmaluf/storefront-orders/internal/order/infrastructure/postgres"
	"github.com/rmaluf/storefront-orders/pkg/logging"
)

func TestOrderLifecyclePostgres(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	env, err := Setup(ctx)
	require.NoError(t, err)
	defer env.Teardown(context.Background())

	pool, err := pgxpool.New(ctx, env.PGURL)
	require.NoError(t, err)
	defer pool.Close()

	log := logging.New()
	customerRepo := customerpg.NewRepository(log, pool)
	productRepo := catalogpg.NewRepository(log, pool)
	orderRepo := orderpg.NewRepository(log, pool)
	require.NoError(t, customerRepo.EnsureSchema(ctx))
	require.NoError(t, productRepo.EnsureSchema(ctx))
	require.NoError(t, orderRepo.EnsureSchema(ctx))

	customer := customerdomain.NewCustomer("c1", "Alice", "alice@example.com")
	require.NoError(t, customerRepo.Create(ctx, customer))
	require.NoError(t, productRepo.Create(ctx, catalogdomain.NewProduct("p1", "keyboard", 1000, 5)))

	svc := application.NewService(customerRepo, productRepo, orderRepo)

	order, err := svc.CreateOrder(ctx, "c1", []domain.LineRequest{{ProductID: "p1", Quantity: 3}})
	require.NoError(t, err)
	require.NotEmpty(t, order.ID)

	fetched, err := svc.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, fetched.ID)
	require.Len(t, fetched.Items, 1)
	assert.Equal(t, domain.LineItem{ProductID: "p1", PriceCents: 1000, Quantity: 3}, fetched.Items[0])

	products, err := productRepo.FindAllByID(ctx, []string{"p1"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 2, products[0].Quantity)

	var outboxCount int
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT count(*) FROM outbox WHERE aggregate_id=$1 AND type='OrderCreated'`, order.ID).
		Scan(&outboxCount))
	assert.Equal(t, 1, outboxCount)

	_, err = svc.GetOrder(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
