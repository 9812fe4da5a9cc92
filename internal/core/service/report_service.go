package service

import (
	"context"
	"math"

	"github.com/rs/zerolog"

	"github.com/minimarket/catalog-api/internal/core/domain"
	"github.com/minimarket/catalog-api/internal/core/ports"
	"github.com/minimarket/catalog-api/internal/metrics"
)

const profitMargin = 0.08

// ReportService computes the admin sales report by joining the full orders
// and products tables on every call. Nothing is cached between calls.
type ReportService struct {
	customers ports.CustomerRepository
	products  ports.ProductRepository
	orders    ports.OrderRepository
	log       zerolog.Logger
}

func NewReportService(
	customers ports.CustomerRepository,
	products ports.ProductRepository,
	orders ports.OrderRepository,
	log zerolog.Logger,
) *ReportService {
	return &ReportService{
		customers: customers,
		products:  products,
		orders:    orders,
		log:       log,
	}
}

// SalesReport left-joins orders to products on product id. Orders whose
// product is gone still count their quantity but contribute zero revenue:
// that asymmetry is part of the aggregate contract.
func (s *ReportService) SalesReport(ctx context.Context, session domain.Session) (*domain.SalesReport, error) {
	if !session.Is(domain.RoleAdmin) {
		return nil, domain.ErrUnauthorized
	}

	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[int]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	report := &domain.SalesReport{
		Customers: customers,
		Products:  products,
		Orders:    make([]domain.OrderLine, 0, len(orders)),
	}

	for _, o := range orders {
		line := domain.OrderLine{Order: o}
		if p, ok := byID[o.ProductID]; ok {
			line.ProductName = p.Name
			line.Price = p.Price
			line.TotalPrice = float64(o.Quantity) * p.Price
			line.Matched = true
		}
		report.Orders = append(report.Orders, line)
		report.TotalQuantity += o.Quantity
		report.TotalRevenue += line.TotalPrice
	}

	report.TotalProfit = math.Round(report.TotalRevenue*profitMargin*100) / 100

	metrics.ReportsGeneratedTotal.Inc()
	s.log.Debug().
		Int("orders", len(orders)).
		Int("total_quantity", report.TotalQuantity).
		Float64("total_revenue", report.TotalRevenue).
		Msg("sales report computed")

	return report, nil
}
