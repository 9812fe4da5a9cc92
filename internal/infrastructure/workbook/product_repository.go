package workbook

import (
	"context"
	"fmt"

	"github.com/minimarket/catalog-api/internal/core/domain"
)

var productColumns = []string{
	"id", "name", "price", "stock", "category",
	"details", "rating", "image_url", "seller_id",
}

// ProductRepository persists products in the products sheet. A missing sheet
// is treated as an empty table with the default schema, and legacy rows
// without a seller_id column gain one (empty) on the next rewrite.
type ProductRepository struct {
	store *Store
}

func NewProductRepository(store *Store) *ProductRepository {
	return &ProductRepository{store: store}
}

func decodeProduct(rec Record) (domain.Product, error) {
	id, err := parseIntCell(rec["id"])
	if err != nil {
		return domain.Product{}, fmt.Errorf("products: bad id: %w", err)
	}
	price, err := parseFloatCell(rec["price"])
	if err != nil {
		return domain.Product{}, fmt.Errorf("products: id %d: bad price: %w", id, err)
	}
	stock, err := parseIntCell(rec["stock"])
	if err != nil {
		return domain.Product{}, fmt.Errorf("products: id %d: bad stock: %w", id, err)
	}
	rating, err := parseFloatCell(rec["rating"])
	if err != nil {
		return domain.Product{}, fmt.Errorf("products: id %d: bad rating: %w", id, err)
	}
	return domain.Product{
		ID:       id,
		Name:     rec["name"],
		Price:    price,
		Stock:    stock,
		Category: rec["category"],
		Details:  rec["details"],
		Rating:   rating,
		ImageURL: rec["image_url"],
		SellerID: parseOptionalID(rec["seller_id"]),
	}, nil
}

func encodeProduct(p domain.Product) Record {
	rec := Record{
		"id":        formatInt(p.ID),
		"name":      p.Name,
		"price":     formatFloat(p.Price),
		"stock":     formatInt(p.Stock),
		"category":  p.Category,
		"details":   p.Details,
		"rating":    formatFloat(p.Rating),
		"image_url": p.ImageURL,
		"seller_id": "",
	}
	if p.SellerID != 0 {
		rec["seller_id"] = formatInt(p.SellerID)
	}
	return rec
}

func (r *ProductRepository) load(ctx context.Context) (*Table, error) {
	t, err := r.store.LoadWithSchema(ctx, TableProducts, productColumns)
	if err != nil {
		return nil, err
	}
	ensureColumns(t, productColumns)
	return t, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	t, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	products := make([]domain.Product, 0, len(t.Records))
	for _, rec := range t.Records {
		p, err := decodeProduct(rec)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func (r *ProductRepository) ListBySeller(ctx context.Context, sellerID int) ([]domain.Product, error) {
	products, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	owned := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.SellerID == sellerID {
			owned = append(owned, p)
		}
	}
	return owned, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id int) (*domain.Product, error) {
	products, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	unlock := r.store.LockTable(TableProducts)
	defer unlock()

	t, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	created := *product
	created.ID = nextID(t)
	t.Append(encodeProduct(created))

	if err := r.store.Save(ctx, TableProducts, t); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	unlock := r.store.LockTable(TableProducts)
	defer unlock()

	t, err := r.load(ctx)
	if err != nil {
		return err
	}

	for _, rec := range t.Records {
		id, err := parseIntCell(rec["id"])
		if err != nil || id != product.ID {
			continue
		}
		for col, val := range encodeProduct(*product) {
			rec[col] = val
		}
		return r.store.Save(ctx, TableProducts, t)
	}
	return domain.ErrProductNotFound
}

func (r *ProductRepository) Delete(ctx context.Context, id int) error {
	unlock := r.store.LockTable(TableProducts)
	defer unlock()

	t, err := r.load(ctx)
	if err != nil {
		return err
	}

	kept := t.Records[:0]
	found := false
	for _, rec := range t.Records {
		if recID, err := parseIntCell(rec["id"]); err == nil && recID == id {
			found = true
			continue
		}
		kept = append(kept, rec)
	}
	if !found {
		return domain.ErrProductNotFound
	}
	t.Records = kept

	return r.store.Save(ctx, TableProducts, t)
}
