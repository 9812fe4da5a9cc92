package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/minimarket/catalog-api/internal/core/domain"
	"github.com/minimarket/catalog-api/internal/core/ports"
)

type stubProductRepo struct {
	products []domain.Product
}

func (r *stubProductRepo) List(_ context.Context) ([]domain.Product, error) {
	return append([]domain.Product(nil), r.products...), nil
}

func (r *stubProductRepo) ListBySeller(_ context.Context, sellerID int) ([]domain.Product, error) {
	owned := []domain.Product{}
	for _, p := range r.products {
		if p.SellerID == sellerID {
			owned = append(owned, p)
		}
	}
	return owned, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id int) (*domain.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			clone := p
			return &clone, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *stubProductRepo) Create(_ context.Context, product *domain.Product) (*domain.Product, error) {
	created := *product
	created.ID = 1
	for _, p := range r.products {
		if p.ID >= created.ID {
			created.ID = p.ID + 1
		}
	}
	r.products = append(r.products, created)
	return &created, nil
}

func (r *stubProductRepo) Update(_ context.Context, product *domain.Product) error {
	for i, p := range r.products {
		if p.ID == product.ID {
			r.products[i] = *product
			return nil
		}
	}
	return domain.ErrProductNotFound
}

func (r *stubProductRepo) Delete(_ context.Context, id int) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return domain.ErrProductNotFound
}

var (
	sellerSession   = domain.Session{UserID: 10, Role: domain.RoleSeller}
	otherSeller     = domain.Session{UserID: 11, Role: domain.RoleSeller}
	customerSession = domain.Session{UserID: 20, Role: domain.RoleCustomer}
)

func TestProductService_Create_AssignsSellerFromSession(t *testing.T) {
	repo := &stubProductRepo{}
	svc := NewProductService(repo, zerolog.Nop())

	product, err := svc.Create(context.Background(), sellerSession, ports.ProductInput{
		Name: "lamp", Price: "19.99", Stock: "3", Rating: "4.5",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if product.SellerID != 10 {
		t.Fatalf("expected seller_id 10, got %d", product.SellerID)
	}
	if product.Price != 19.99 || product.Stock != 3 || product.Rating != 4.5 {
		t.Fatalf("numeric fields not parsed: %+v", product)
	}
}

func TestProductService_Create_EmptyNumericsDefaultToZero(t *testing.T) {
	svc := NewProductService(&stubProductRepo{}, zerolog.Nop())

	product, err := svc.Create(context.Background(), sellerSession, ports.ProductInput{Name: "lamp"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if product.Price != 0 || product.Stock != 0 || product.Rating != 0 {
		t.Fatalf("expected zero defaults, got %+v", product)
	}
}

func TestProductService_Create_RejectsUnparsableNumbers(t *testing.T) {
	svc := NewProductService(&stubProductRepo{}, zerolog.Nop())

	cases := []ports.ProductInput{
		{Name: "lamp", Price: "cheap"},
		{Name: "lamp", Stock: "many"},
		{Name: "lamp", Rating: "five stars"},
	}
	for _, in := range cases {
		if _, err := svc.Create(context.Background(), sellerSession, in); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("input %+v: expected ErrValidation, got %v", in, err)
		}
	}
}

func TestProductService_Create_RequiresSellerRole(t *testing.T) {
	svc := NewProductService(&stubProductRepo{}, zerolog.Nop())

	_, err := svc.Create(context.Background(), customerSession, ports.ProductInput{Name: "lamp"})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestProductService_Update_OwnershipEnforced(t *testing.T) {
	repo := &stubProductRepo{products: []domain.Product{
		{ID: 1, Name: "lamp", SellerID: 10},
	}}
	svc := NewProductService(repo, zerolog.Nop())

	if _, err := svc.Update(context.Background(), otherSeller, 1, ports.ProductInput{Name: "mine now"}); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for non-owner, got %v", err)
	}
	if repo.products[0].Name != "lamp" {
		t.Fatalf("table changed despite unauthorized update")
	}

	updated, err := svc.Update(context.Background(), sellerSession, 1, ports.ProductInput{Name: "desk lamp", Price: "5"})
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Name != "desk lamp" || updated.SellerID != 10 {
		t.Fatalf("unexpected update result: %+v", updated)
	}
}

func TestProductService_Update_NotFoundBeforeOwnership(t *testing.T) {
	svc := NewProductService(&stubProductRepo{}, zerolog.Nop())

	if _, err := svc.Update(context.Background(), otherSeller, 99, ports.ProductInput{Name: "x"}); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_Delete_OwnershipEnforced(t *testing.T) {
	repo := &stubProductRepo{products: []domain.Product{
		{ID: 1, Name: "lamp", SellerID: 10},
		{ID: 2, Name: "rug", SellerID: 11},
	}}
	svc := NewProductService(repo, zerolog.Nop())

	if err := svc.Delete(context.Background(), otherSeller, 1); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if err := svc.Delete(context.Background(), sellerSession, 1); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if len(repo.products) != 1 || repo.products[0].ID != 2 {
		t.Fatalf("expected only product 2 to remain, got %+v", repo.products)
	}
}

func TestProductService_List_NameFilter(t *testing.T) {
	repo := &stubProductRepo{products: []domain.Product{
		{ID: 1, Name: "Desk Lamp"},
		{ID: 2, Name: "Rug"},
		{ID: 3, Name: "floor lamp"},
	}}
	svc := NewProductService(repo, zerolog.Nop())

	all, err := svc.List(context.Background(), "")
	if err != nil || len(all) != 3 {
		t.Fatalf("expected 3 products, got %d (err %v)", len(all), err)
	}

	lamps, err := svc.List(context.Background(), "LAMP")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(lamps) != 2 || lamps[0].ID != 1 || lamps[1].ID != 3 {
		t.Fatalf("unexpected filter result: %+v", lamps)
	}
}

func TestProductService_ListOwned(t *testing.T) {
	repo := &stubProductRepo{products: []domain.Product{
		{ID: 1, SellerID: 10},
		{ID: 2, SellerID: 11},
		{ID: 3, SellerID: 10},
	}}
	svc := NewProductService(repo, zerolog.Nop())

	owned, err := svc.ListOwned(context.Background(), sellerSession)
	if err != nil {
		t.Fatalf("ListOwned returned error: %v", err)
	}
	if len(owned) != 2 {
		t.Fatalf("expected 2 owned products, got %d", len(owned))
	}

	if _, err := svc.ListOwned(context.Background(), customerSession); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for customer, got %v", err)
	}
}
