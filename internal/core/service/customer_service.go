package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/minimarket/catalog-api/internal/core/domain"
	"github.com/minimarket/catalog-api/internal/core/ports"
)

// CustomerService implements the standalone customer CRUD behind the admin
// screens. It is independent of registration, which writes its customer row
// through the same repository with a pre-assigned id.
type CustomerService struct {
	customers ports.CustomerRepository
	log       zerolog.Logger
}

func NewCustomerService(customers ports.CustomerRepository, log zerolog.Logger) *CustomerService {
	return &CustomerService{customers: customers, log: log}
}

func (s *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.customers.List(ctx)
}

func (s *CustomerService) Create(ctx context.Context, in ports.CustomerInput) (*domain.Customer, error) {
	return s.customers.Create(ctx, customerFromInput(in))
}

func (s *CustomerService) Update(ctx context.Context, id int, in ports.CustomerInput) (*domain.Customer, error) {
	if _, err := s.customers.FindByID(ctx, id); err != nil {
		return nil, err
	}

	updated := customerFromInput(in)
	updated.ID = id
	if err := s.customers.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *CustomerService) Delete(ctx context.Context, id int) error {
	return s.customers.Delete(ctx, id)
}

func customerFromInput(in ports.CustomerInput) *domain.Customer {
	return &domain.Customer{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Phone:   strings.TrimSpace(in.Phone),
		Address: strings.TrimSpace(in.Address),
	}
}
