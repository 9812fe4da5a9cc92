package workbook

import (
	"context"
	"fmt"

	"github.com/minimarket/catalog-api/internal/core/domain"
)

var customerColumns = []string{"id", "name", "email", "phone", "address"}

// CustomerRepository persists customers in the customers sheet.
type CustomerRepository struct {
	store *Store
}

func NewCustomerRepository(store *Store) *CustomerRepository {
	return &CustomerRepository{store: store}
}

func decodeCustomer(rec Record) (domain.Customer, error) {
	id, err := parseIntCell(rec["id"])
	if err != nil {
		return domain.Customer{}, fmt.Errorf("customers: bad id: %w", err)
	}
	return domain.Customer{
		ID:      id,
		Name:    rec["name"],
		Email:   rec["email"],
		Phone:   rec["phone"],
		Address: rec["address"],
	}, nil
}

func encodeCustomer(c domain.Customer) Record {
	return Record{
		"id":      formatInt(c.ID),
		"name":    c.Name,
		"email":   c.Email,
		"phone":   c.Phone,
		"address": c.Address,
	}
}

func (r *CustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	t, err := r.store.Load(ctx, TableCustomers)
	if err != nil {
		return nil, err
	}
	customers := make([]domain.Customer, 0, len(t.Records))
	for _, rec := range t.Records {
		c, err := decodeCustomer(rec)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id int) (*domain.Customer, error) {
	customers, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range customers {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, domain.ErrCustomerNotFound
}

// Create appends the customer. A zero ID gets the next id; a non-zero ID is
// kept, so registration can mirror the freshly assigned user id. A missing
// customers sheet is materialized with the default schema, as the legacy
// system did on first registration.
func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	unlock := r.store.LockTable(TableCustomers)
	defer unlock()

	t, err := r.store.LoadWithSchema(ctx, TableCustomers, customerColumns)
	if err != nil {
		return nil, err
	}
	ensureColumns(t, customerColumns)

	created := *customer
	if created.ID == 0 {
		created.ID = nextID(t)
	}
	t.Append(encodeCustomer(created))

	if err := r.store.Save(ctx, TableCustomers, t); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *CustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	unlock := r.store.LockTable(TableCustomers)
	defer unlock()

	t, err := r.store.Load(ctx, TableCustomers)
	if err != nil {
		return err
	}

	for _, rec := range t.Records {
		id, err := parseIntCell(rec["id"])
		if err != nil || id != customer.ID {
			continue
		}
		for col, val := range encodeCustomer(*customer) {
			rec[col] = val
		}
		return r.store.Save(ctx, TableCustomers, t)
	}
	return domain.ErrCustomerNotFound
}

func (r *CustomerRepository) Delete(ctx context.Context, id int) error {
	unlock := r.store.LockTable(TableCustomers)
	defer unlock()

	t, err := r.store.Load(ctx, TableCustomers)
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

	return r.store.Save(ctx, TableCustomers, t)
}
