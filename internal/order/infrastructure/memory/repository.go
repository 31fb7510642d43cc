package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	customerdomain "github.com/rmaluf/storefront-orders/internal/customer/domain"
	"github.com/rmaluf/storefront-orders/internal/order/domain"
)

// Repository is a mutex-guarded in-memory order store for local development
// and tests. IDs are assigned on Create, as the Postgres store does.
type Repository struct {
	mu    sync.RWMutex
	items map[string]domain.Order
}

func NewRepository() *Repository {
	return &Repository{items: make(map[string]domain.Order)}
}

func (r *Repository) Create(ctx context.Context, customer customerdomain.Customer, items []domain.LineItem) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order := domain.NewOrder(customer.ID, items)
	order.ID = uuid.NewString()
	r.items[order.ID] = order
	return order, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.items[id]
	if !ok {
		return domain.Order{}, domain.ErrNotFound
	}
	return order, nil
}
