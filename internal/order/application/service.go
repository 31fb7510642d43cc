package application

import (
	"context"

	catalogdomain "github.com/rmaluf/storefront-orders/internal/catalog/domain"
	"github.com/rmaluf/storefront-orders/internal/order/domain"
)

// Service orchestrates order creation and lookup against its injected stores.
// It holds no state between calls.
type Service struct {
	customers CustomerStore
	products  ProductStore
	orders    OrderStore
}

func NewService(customers CustomerStore, products ProductStore, orders OrderStore) *Service {
	return &Service{customers: customers, products: products, orders: orders}
}

// CreateOrder validates the customer and every requested line, snapshots
// prices into line items, persists the order and then decrements stock.
//
// Lines are validated in request order and the first violation aborts the
// whole call; nothing is persisted on a validation failure. Requested
// quantities are not checked for positivity and an empty line list is
// accepted, matching the behavior of the upstream checkout flow. The stock
// decrement uses the originally requested quantities, runs only once the
// store has assigned an order id, and is not re-checked against concurrent
// orders nor compensated if it fails after the order was persisted.
func (s *Service) CreateOrder(ctx context.Context, customerID string, lines []domain.LineRequest) (domain.Order, error) {
	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return domain.Order{}, err
	}

	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}

	resolved, err := s.products.FindAllByID(ctx, ids)
	if err != nil {
		return domain.Order{}, err
	}

	byID := make(map[string]catalogdomain.Product, len(resolved))
	for _, p := range resolved {
		byID[p.ID] = p
	}

	items := make([]domain.LineItem, 0, len(lines))
	for _, line := range lines {
		product, ok := byID[line.ProductID]
		if !ok {
			return domain.Order{}, &domain.ProductNotFoundError{ProductID: line.ProductID}
		}
		if product.Quantity < line.Quantity {
			return domain.Order{}, &domain.InsufficientStockError{ProductName: product.Name}
		}
		items = append(items, domain.LineItem{
			ProductID:  line.ProductID,
			PriceCents: product.PriceCents,
			Quantity:   line.Quantity,
		})
	}

	order, err := s.orders.Create(ctx, customer, items)
	if err != nil {
		return domain.Order{}, err
	}

	if order.ID != "" {
		if err := s.products.UpdateQuantity(ctx, lines); err != nil {
			return domain.Order{}, err
		}
	}

	return order, nil
}

// GetOrder fetches a persisted order. Absence surfaces as domain.ErrNotFound.
func (s *Service) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	return order, nil
}
