package application

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/rmaluf/storefront-orders/internal/customer/domain"
)

var (
	ErrEmailInUse    = errors.New("email already in use")
	ErrMissingFields = errors.New("name and email are required")
)

type CustomerRepository interface {
	Create(ctx context.Context, c domain.Customer) error
	FindByID(ctx context.Context, id string) (domain.Customer, error)
	FindByEmail(ctx context.Context, email string) (domain.Customer, error)
}

type Service struct {
	customers CustomerRepository
}

func NewService(customers CustomerRepository) *Service {
	return &Service{customers: customers}
}

func (s *Service) CreateCustomer(ctx context.Context, name, email string) (domain.Customer, error) {
	if name == "" || email == "" {
		return domain.Customer{}, ErrMissingFields
	}

	_, err := s.customers.FindByEmail(ctx, email)
	if err == nil {
		return domain.Customer{}, ErrEmailInUse
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.Customer{}, err
	}

	customer := domain.NewCustomer(uuid.NewString(), name, email)
	if err := s.customers.Create(ctx, customer); err != nil {
		return domain.Customer{}, err
	}
	return customer, nil
}

func (s *Service) GetCustomer(ctx context.Context, id string) (domain.Customer, error) {
	return s.customers.FindByID(ctx, id)
}
