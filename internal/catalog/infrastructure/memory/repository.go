package memory

import (
	"context"
	"sync"

	"github.com/rmaluf/storefront-orders/internal/catalog/domain"
	orderdomain "github.com/rmaluf/storefront-orders/internal/order/domain"
)

// Repository is a mutex-guarded in-memory product store for local
// development and tests.
type Repository struct {
	mu    sync.RWMutex
	items map[string]domain.Product
}

func NewRepository() *Repository {
	return &Repository{items: make(map[string]domain.Product)}
}

func (r *Repository) Create(ctx context.Context, p domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[p.ID] = p
	return nil
}

func (r *Repository) FindByName(ctx context.Context, name string) (domain.Product, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.items {
		if p.Name == name {
			return p, true, nil
		}
	}
	return domain.Product{}, false, nil
}

// FindAllByID returns the subset of products that exist among the given ids.
func (r *Repository) FindAllByID(ctx context.Context, ids []string) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Product
	for _, id := range ids {
		if p, ok := r.items[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *Repository) UpdateQuantity(ctx context.Context, lines []orderdomain.LineRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, line := range lines {
		p, ok := r.items[line.ProductID]
		if !ok {
			continue
		}
		p.Quantity -= line.Quantity
		r.items[line.ProductID] = p
	}
	return nil
}
