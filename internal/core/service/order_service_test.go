package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/minimarket/catalog-api/internal/core/domain"
	"github.com/minimarket/catalog-api/internal/core/ports"
)

type stubOrderRepo struct {
	orders []domain.Order
}

func (r *stubOrderRepo) List(_ context.Context) ([]domain.Order, error) {
	return append([]domain.Order(nil), r.orders...), nil
}

func (r *stubOrderRepo) ListByCustomer(_ context.Context, customerID int) ([]domain.Order, error) {
	mine := []domain.Order{}
	for _, o := range r.orders {
		if o.CustomerID == customerID {
			mine = append(mine, o)
		}
	}
	return mine, nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id int) (*domain.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			clone := o
			return &clone, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (r *stubOrderRepo) Create(_ context.Context, order *domain.Order) (*domain.Order, error) {
	created := *order
	created.ID = 1
	for _, o := range r.orders {
		if o.ID >= created.ID {
			created.ID = o.ID + 1
		}
	}
	r.orders = append(r.orders, created)
	return &created, nil
}

func (r *stubOrderRepo) Update(_ context.Context, order *domain.Order) error {
	for i, o := range r.orders {
		if o.ID == order.ID {
			r.orders[i] = *order
			return nil
		}
	}
	return domain.ErrOrderNotFound
}

func (r *stubOrderRepo) Delete(_ context.Context, id int) error {
	kept := r.orders[:0]
	for _, o := range r.orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	r.orders = kept
	return nil
}

func TestOrderService_Create_BindsCustomerFromSession(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := NewOrderService(repo, zerolog.Nop())

	order, err := svc.Create(context.Background(), customerSession, ports.OrderInput{
		ProductID: "5", Quantity: "2",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if order.CustomerID != 20 || order.ProductID != 5 || order.Quantity != 2 {
		t.Fatalf("unexpected order: %+v", order)
	}
}

func TestOrderService_Create_QuantityDefaultsToOne(t *testing.T) {
	svc := NewOrderService(&stubOrderRepo{}, zerolog.Nop())

	order, err := svc.Create(context.Background(), customerSession, ports.OrderInput{ProductID: "5"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if order.Quantity != 1 {
		t.Fatalf("expected default quantity 1, got %d", order.Quantity)
	}
}

func TestOrderService_Create_Validation(t *testing.T) {
	svc := NewOrderService(&stubOrderRepo{}, zerolog.Nop())

	cases := []ports.OrderInput{
		{ProductID: "", Quantity: "1"},
		{ProductID: "abc", Quantity: "1"},
		{ProductID: "5", Quantity: "lots"},
	}
	for _, in := range cases {
		if _, err := svc.Create(context.Background(), customerSession, in); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("input %+v: expected ErrValidation, got %v", in, err)
		}
	}
}

func TestOrderService_Update_KeepsCustomer(t *testing.T) {
	repo := &stubOrderRepo{orders: []domain.Order{
		{ID: 1, CustomerID: 20, ProductID: 5, Quantity: 1},
	}}
	svc := NewOrderService(repo, zerolog.Nop())

	updated, err := svc.Update(context.Background(), 1, ports.OrderInput{ProductID: "9", Quantity: "3"})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.CustomerID != 20 || updated.ProductID != 9 || updated.Quantity != 3 {
		t.Fatalf("unexpected order after update: %+v", updated)
	}
}

func TestOrderService_Update_NotFound(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := NewOrderService(repo, zerolog.Nop())

	if _, err := svc.Update(context.Background(), 42, ports.OrderInput{ProductID: "1"}); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
	if len(repo.orders) != 0 {
		t.Fatalf("table must stay unchanged on failed update")
	}
}

func TestOrderService_ListForCustomer_ScopedToSession(t *testing.T) {
	repo := &stubOrderRepo{orders: []domain.Order{
		{ID: 1, CustomerID: 20},
		{ID: 2, CustomerID: 21},
		{ID: 3, CustomerID: 20},
	}}
	svc := NewOrderService(repo, zerolog.Nop())

	orders, err := svc.ListForCustomer(context.Background(), customerSession)
	if err != nil {
		t.Fatalf("ListForCustomer returned error: %v", err)
	}
	if len(orders) != 2 || orders[0].ID != 1 || orders[1].ID != 3 {
		t.Fatalf("unexpected orders: %+v", orders)
	}
}
