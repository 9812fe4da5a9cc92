package workbook

import (
	"context"
	"errors"
	"testing"

	"github.com/minimarket/catalog-api/internal/core/domain"
)

func TestProductRepository_List_BackfillsLegacySellerColumn(t *testing.T) {
	store, path := testStore(t)
	writeWorkbook(t, path, map[string][][]string{
		"products": {
			{"id", "name", "price", "stock", "category", "details", "rating", "image_url"},
			{"1", "lamp", "19.99", "3", "home", "warm light", "4.5", ""},
		},
	})
	repo := NewProductRepository(store)

	products, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}
	if products[0].SellerID != 0 {
		t.Fatalf("legacy row must decode with unset seller: %+v", products[0])
	}
	if products[0].Price != 19.99 || products[0].Stock != 3 || products[0].Rating != 4.5 {
		t.Fatalf("numeric cells not decoded: %+v", products[0])
	}
}

func TestProductRepository_List_MissingSheetIsEmpty(t *testing.T) {
	store, _ := testStore(t)
	repo := NewProductRepository(store)

	products, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("missing products sheet must read as empty: %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("expected no products, got %+v", products)
	}
}

func TestProductRepository_CreateUpdateRoundTrip(t *testing.T) {
	store, _ := testStore(t)
	repo := NewProductRepository(store)

	created, err := repo.Create(context.Background(), &domain.Product{
		Name: "lamp", Price: 19.99, Stock: 3, SellerID: 10,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID != 1 {
		t.Fatalf("expected id 1, got %d", created.ID)
	}

	created.Name = "desk lamp"
	created.Price = 24.5
	if err := repo.Update(context.Background(), created); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	got, err := repo.FindByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if got.Name != "desk lamp" || got.Price != 24.5 || got.SellerID != 10 {
		t.Fatalf("update not persisted: %+v", got)
	}
}

func TestProductRepository_Update_NotFoundLeavesTableUnchanged(t *testing.T) {
	store, _ := testStore(t)
	repo := NewProductRepository(store)

	if _, err := repo.Create(context.Background(), &domain.Product{Name: "lamp"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	err := repo.Update(context.Background(), &domain.Product{ID: 42, Name: "ghost"})
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}

	products, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(products) != 1 || products[0].Name != "lamp" {
		t.Fatalf("table changed on failed update: %+v", products)
	}
}

func TestProductRepository_Delete(t *testing.T) {
	store, _ := testStore(t)
	repo := NewProductRepository(store)

	first, err := repo.Create(context.Background(), &domain.Product{Name: "lamp", SellerID: 10})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := repo.Create(context.Background(), &domain.Product{Name: "rug", SellerID: 11}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := repo.Delete(context.Background(), first.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := repo.Delete(context.Background(), first.ID); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("second delete: expected ErrProductNotFound, got %v", err)
	}

	products, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(products) != 1 || products[0].Name != "rug" {
		t.Fatalf("unexpected products after delete: %+v", products)
	}
}

func TestProductRepository_ListBySeller(t *testing.T) {
	store, _ := testStore(t)
	repo := NewProductRepository(store)

	for _, p := range []domain.Product{
		{Name: "lamp", SellerID: 10},
		{Name: "rug", SellerID: 11},
		{Name: "chair", SellerID: 10},
	} {
		clone := p
		if _, err := repo.Create(context.Background(), &clone); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	owned, err := repo.ListBySeller(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListBySeller returned error: %v", err)
	}
	if len(owned) != 2 || owned[0].Name != "lamp" || owned[1].Name != "chair" {
		t.Fatalf("unexpected owned products: %+v", owned)
	}
}
