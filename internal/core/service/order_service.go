package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/minimarket/catalog-api/internal/core/domain"
	"github.com/minimarket/catalog-api/internal/core/ports"
)

// OrderService implements the order use cases. Update and delete carry no
// ownership restriction; that matches the legacy behavior and is recorded as
// a known gap rather than silently tightened.
type OrderService struct {
	orders ports.OrderRepository
	log    zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, log zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, log: log}
}

func (s *OrderService) ListForCustomer(ctx context.Context, session domain.Session) ([]domain.Order, error) {
	return s.orders.ListByCustomer(ctx, session.UserID)
}

func (s *OrderService) Create(ctx context.Context, session domain.Session, in ports.OrderInput) (*domain.Order, error) {
	productID, quantity, err := orderFields(in)
	if err != nil {
		return nil, err
	}

	created, err := s.orders.Create(ctx, &domain.Order{
		CustomerID: session.UserID,
		ProductID:  productID,
		Quantity:   quantity,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Int("order_id", created.ID).Int("customer_id", session.UserID).Msg("order placed")
	return created, nil
}

// Update changes the product and quantity of an existing order; the owning
// customer id is left untouched.
func (s *OrderService) Update(ctx context.Context, id int, in ports.OrderInput) (*domain.Order, error) {
	existing, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	productID, quantity, err := orderFields(in)
	if err != nil {
		return nil, err
	}

	updated := *existing
	updated.ProductID = productID
	updated.Quantity = quantity

	if err := s.orders.Update(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *OrderService) Delete(ctx context.Context, id int) error {
	return s.orders.Delete(ctx, id)
}

func orderFields(in ports.OrderInput) (productID, quantity int, err error) {
	if strings.TrimSpace(in.ProductID) == "" {
		return 0, 0, fmt.Errorf("%w: product_id is required", domain.ErrValidation)
	}
	productID, err = parseIntField(in.ProductID, "product_id", 0)
	if err != nil {
		return 0, 0, err
	}
	quantity, err = parseIntField(in.Quantity, "quantity", 1)
	if err != nil {
		return 0, 0, err
	}
	return productID, quantity, nil
}
