package application

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/rmaluf/storefront-orders/internal/catalog/domain"
)

var (
	ErrNameInUse     = errors.New("product name already in use")
	ErrMissingFields = errors.New("name is required")
	ErrNegativeValue = errors.New("price and quantity must be non-negative")
)

type ProductRepository interface {
	Create(ctx context.Context, p domain.Product) error
	FindByName(ctx context.Context, name string) (domain.Product, bool, error)
}

type Service struct {
	products ProductRepository
}

func NewService(products ProductRepository) *Service {
	return &Service{products: products}
}

func (s *Service) CreateProduct(ctx context.Context, name string, priceCents int64, quantity int) (domain.Product, error) {
	if name == "" {
		return domain.Product{}, ErrMissingFields
	}
	if priceCents < 0 || quantity < 0 {
		return domain.Product{}, ErrNegativeValue
	}

	_, exists, err := s.products.FindByName(ctx, name)
	if err != nil {
		return domain.Product{}, err
	}
	if exists {
		return domain.Product{}, ErrNameInUse
	}

	product := domain.NewProduct(uuid.NewString(), name, priceCents, quantity)
	if err := s.products.Create(ctx, product); err != nil {
		return domain.Product{}, err
	}
	return product, nil
}
