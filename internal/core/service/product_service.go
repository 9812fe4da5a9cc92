package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/minimarket/catalog-api/internal/core/domain"
	"github.com/minimarket/catalog-api/internal/core/ports"
)

// ProductService implements the catalog use cases with seller-ownership
// enforcement on mutations.
type ProductService struct {
	products ports.ProductRepository
	log      zerolog.Logger
}

func NewProductService(products ports.ProductRepository, log zerolog.Logger) *ProductService {
	return &ProductService{products: products, log: log}
}

func (s *ProductService) List(ctx context.Context, nameFilter string) ([]domain.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(nameFilter))
	if q == "" {
		return products, nil
	}

	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (s *ProductService) ListOwned(ctx context.Context, session domain.Session) ([]domain.Product, error) {
	if !session.Is(domain.RoleSeller) {
		return nil, domain.ErrUnauthorized
	}
	return s.products.ListBySeller(ctx, session.UserID)
}

func (s *ProductService) Create(ctx context.Context, session domain.Session, in ports.ProductInput) (*domain.Product, error) {
	if !session.Is(domain.RoleSeller) {
		return nil, domain.ErrUnauthorized
	}

	product, err := productFromInput(in)
	if err != nil {
		return nil, err
	}
	product.SellerID = session.UserID

	created, err := s.products.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int("product_id", created.ID).Int("seller_id", session.UserID).Msg("product listed")
	return created, nil
}

// Update rewrites the product fields in place. The not-found check precedes
// the ownership check, and seller_id never changes on update.
func (s *ProductService) Update(ctx context.Context, session domain.Session, id int, in ports.ProductInput) (*domain.Product, error) {
	existing, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.Owns(session, *existing) {
		return nil, domain.ErrUnauthorized
	}

	product, err := productFromInput(in)
	if err != nil {
		return nil, err
	}
	product.ID = existing.ID
	product.SellerID = existing.SellerID

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, session domain.Session, id int) error {
	existing, err := s.products.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !domain.Owns(session, *existing) {
		return domain.ErrUnauthorized
	}

	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Int("product_id", id).Int("seller_id", session.UserID).Msg("product removed")
	return nil
}

func productFromInput(in ports.ProductInput) (*domain.Product, error) {
	price, err := parseFloatField(in.Price, "price")
	if err != nil {
		return nil, err
	}
	stock, err := parseIntField(in.Stock, "stock", 0)
	if err != nil {
		return nil, err
	}
	rating, err := parseFloatField(in.Rating, "rating")
	if err != nil {
		return nil, err
	}
	return &domain.Product{
		Name:     strings.TrimSpace(in.Name),
		Price:    price,
		Stock:    stock,
		Category: strings.TrimSpace(in.Category),
		Details:  strings.TrimSpace(in.Details),
		Rating:   rating,
		ImageURL: strings.TrimSpace(in.ImageURL),
	}, nil
}
