package application

import (
	"context"

	catalogdomain "github.com/rmaluf/storefront-orders/internal/catalog/domain"
	customerdomain "github.com/rmaluf/storefront-orders/internal/customer/domain"
	"github.com/rmaluf/storefront-orders/internal/order/domain"
)

type CustomerStore interface {
	// FindByID returns customerdomain.ErrNotFound when no customer matches.
	FindByID(ctx context.Context, id string) (customerdomain.Customer, error)
}

type ProductStore interface {
	// FindAllByID returns the subset of products that exist. No ordering or
	// completeness guarantee; callers match results back by id.
	FindAllByID(ctx context.Context, ids []string) ([]catalogdomain.Product, error)

	// UpdateQuantity decrements stock by the given requested quantities.
	UpdateQuantity(ctx context.Context, lines []domain.LineRequest) error
}

type OrderStore interface {
	// Create persists the order and assigns its id.
	Create(ctx context.Context, customer customerdomain.Customer, items []domain.LineItem) (domain.Order, error)

	// FindByID returns domain.ErrNotFound when no order matches.
	FindByID(ctx context.Context, id string) (domain.Order, error)
}
