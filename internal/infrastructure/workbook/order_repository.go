package workbook

import (
	"context"
	"fmt"

	"github.com/minimarket/catalog-api/internal/core/domain"
)

var orderColumns = []string{"id", "customer_id", "product_id", "quantity"}

// OrderRepository persists orders in the orders sheet.
type OrderRepository struct {
	store *Store
}

func NewOrderRepository(store *Store) *OrderRepository {
	return &OrderRepository{store: store}
}

func decodeOrder(rec Record) (domain.Order, error) {
	id, err := parseIntCell(rec["id"])
	if err != nil {
		return domain.Order{}, fmt.Errorf("orders: bad id: %w", err)
	}
	customerID, err := parseIntCell(rec["customer_id"])
	if err != nil {
		return domain.Order{}, fmt.Errorf("orders: id %d: bad customer_id: %w", id, err)
	}
	productID, err := parseIntCell(rec["product_id"])
	if err != nil {
		return domain.Order{}, fmt.Errorf("orders: id %d: bad product_id: %w", id, err)
	}
	quantity, err := parseIntCell(rec["quantity"])
	if err != nil {
		return domain.Order{}, fmt.Errorf("orders: id %d: bad quantity: %w", id, err)
	}
	return domain.Order{
		ID:         id,
		CustomerID: customerID,
		ProductID:  productID,
		Quantity:   quantity,
	}, nil
}

func encodeOrder(o domain.Order) Record {
	return Record{
		"id":          formatInt(o.ID),
		"customer_id": formatInt(o.CustomerID),
		"product_id":  formatInt(o.ProductID),
		"quantity":    formatInt(o.Quantity),
	}
}

func (r *OrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	t, err := r.store.Load(ctx, TableOrders)
	if err != nil {
		return nil, err
	}
	orders := make([]domain.Order, 0, len(t.Records))
	for _, rec := range t.Records {
		o, err := decodeOrder(rec)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *OrderRepository) ListByCustomer(ctx context.Context, customerID int) ([]domain.Order, error) {
	orders, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	mine := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if o.CustomerID == customerID {
			mine = append(mine, o)
		}
	}
	return mine, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id int) (*domain.Order, error) {
	orders, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	unlock := r.store.LockTable(TableOrders)
	defer unlock()

	t, err := r.store.LoadWithSchema(ctx, TableOrders, orderColumns)
	if err != nil {
		return nil, err
	}
	ensureColumns(t, orderColumns)

	created := *order
	created.ID = nextID(t)
	t.Append(encodeOrder(created))

	if err := r.store.Save(ctx, TableOrders, t); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *OrderRepository) Update(ctx context.Context, order *domain.Order) error {
	unlock := r.store.LockTable(TableOrders)
	defer unlock()

	t, err := r.store.Load(ctx, TableOrders)
	if err != nil {
		return err
	}

	for _, rec := range t.Records {
		id, err := parseIntCell(rec["id"])
		if err != nil || id != order.ID {
			continue
		}
		for col, val := range encodeOrder(*order) {
			rec[col] = val
		}
		return r.store.Save(ctx, TableOrders, t)
	}
	return domain.ErrOrderNotFound
}

func (r *OrderRepository) Delete(ctx context.Context, id int) error {
	unlock := r.store.LockTable(TableOrders)
	defer unlock()

	t, err := r.store.Load(ctx, TableOrders)
	if err != nil {
		return err
	}

	kept := t.Records[:0]
	for _, rec := range t.Records {
		if recID, err := parseIntCell(rec["id"]); err == nil && recID == id {
			continue
		}
		kept = append(kept, rec)
	}
	t.Records = kept

	return r.store.Save(ctx, TableOrders, t)
}
