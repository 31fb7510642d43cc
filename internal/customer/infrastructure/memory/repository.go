package memory

import (
	"context"
	"sync"

	"github.com/rmaluf/storefront-orders/internal/customer/domain"
)

// Repository is a mutex-guarded in-memory customer store for local
// development and tests.
type Repository struct {
	mu    sync.RWMutex
	items map[string]domain.Customer
}

func NewRepository() *Repository {
	return &Repository{items: make(map[string]domain.Customer)}
}

func (r *Repository) Create(ctx context.Context, c domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[c.ID] = c
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.items[id]
	if !ok {
		return domain.Customer{}, domain.ErrNotFound
	}
	return c, nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.items {
		if c.Email == email {
			return c, nil
		}
	}
	return domain.Customer{}, domain.ErrNotFound
}
