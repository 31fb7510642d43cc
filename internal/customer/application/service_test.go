package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmaluf/storefront-orders/internal/customer/domain"
	"github.com/rmaluf/storefront-orders/internal/customer/infrastructure/memory"
)

func TestCreateCustomer(t *testing.T) {
	ctx := context.Background()
	svc := NewService(memory.NewRepository())

	c, err := svc.CreateCustomer(ctx, "Alice", "alice@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "Alice", c.Name)

	got, err := svc.GetCustomer(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestCreateCustomerDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := NewService(memory.NewRepository())

	_, err := svc.CreateCustomer(ctx, "Alice", "alice@example.com")
	require.NoError(t, err)

	_, err = svc.CreateCustomer(ctx, "Alice Again", "alice@example.com")
	require.ErrorIs(t, err, ErrEmailInUse)
}

func TestCreateCustomerMissingFields(t *testing.T) {
	svc := NewService(memory.NewRepository())

	_, err := svc.CreateCustomer(context.Background(), "", "alice@example.com")
	require.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.CreateCustomer(context.Background(), "Alice", "")
	require.ErrorIs(t, err, ErrMissingFields)
}

func TestGetCustomerNotFound(t *testing.T) {
	svc := NewService(memory.NewRepository())
	_, err := svc.GetCustomer(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
