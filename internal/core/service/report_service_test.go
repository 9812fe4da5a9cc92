package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/minimarket/catalog-api/internal/core/domain"
)

var adminSession = domain.Session{UserID: 1, Role: domain.RoleAdmin}

func newReportService(customers []domain.Customer, products []domain.Product, orders []domain.Order) *ReportService {
	return NewReportService(
		&stubCustomerRepo{customers: customers},
		&stubProductRepo{products: products},
		&stubOrderRepo{orders: orders},
		zerolog.Nop(),
	)
}

func TestReportService_Totals(t *testing.T) {
	svc := newReportService(
		nil,
		[]domain.Product{{ID: 10, Name: "lamp", Price: 5.0}},
		[]domain.Order{{ID: 1, CustomerID: 1, ProductID: 10, Quantity: 2}},
	)

	report, err := svc.SalesReport(context.Background(), adminSession)
	if err != nil {
		t.Fatalf("SalesReport returned error: %v", err)
	}
	if report.TotalQuantity != 2 {
		t.Fatalf("expected total_quantity 2, got %d", report.TotalQuantity)
	}
	if report.TotalRevenue != 10.0 {
		t.Fatalf("expected total_revenue 10.0, got %v", report.TotalRevenue)
	}
	if report.TotalProfit != 0.8 {
		t.Fatalf("expected total_profit 0.8, got %v", report.TotalProfit)
	}
	if len(report.Orders) != 1 || !report.Orders[0].Matched || report.Orders[0].ProductName != "lamp" {
		t.Fatalf("unexpected joined orders: %+v", report.Orders)
	}
}

func TestReportService_EmptyOrders(t *testing.T) {
	svc := newReportService(nil, []domain.Product{{ID: 1, Price: 9.99}}, nil)

	report, err := svc.SalesReport(context.Background(), adminSession)
	if err != nil {
		t.Fatalf("SalesReport returned error: %v", err)
	}
	if report.TotalQuantity != 0 || report.TotalRevenue != 0 || report.TotalProfit != 0 {
		t.Fatalf("expected all-zero totals, got %+v", report)
	}
}

func TestReportService_UnmatchedOrderCountsQuantityOnly(t *testing.T) {
	svc := newReportService(
		nil,
		[]domain.Product{{ID: 10, Name: "lamp", Price: 5.0}},
		[]domain.Order{
			{ID: 1, CustomerID: 1, ProductID: 10, Quantity: 2},
			{ID: 2, CustomerID: 1, ProductID: 999, Quantity: 3}, // product gone
		},
	)

	report, err := svc.SalesReport(context.Background(), adminSession)
	if err != nil {
		t.Fatalf("SalesReport returned error: %v", err)
	}
	if report.TotalQuantity != 5 {
		t.Fatalf("orphaned order quantity must still count: got %d", report.TotalQuantity)
	}
	if report.TotalRevenue != 10.0 {
		t.Fatalf("orphaned order must not add revenue: got %v", report.TotalRevenue)
	}

	orphan := report.Orders[1]
	if orphan.Matched || orphan.ProductName != "" || orphan.Price != 0 || orphan.TotalPrice != 0 {
		t.Fatalf("orphaned line should carry empty product fields: %+v", orphan)
	}
}

func TestReportService_ProfitRounding(t *testing.T) {
	// 3 * 4.99 = 14.97 revenue; 8% = 1.1976 → 1.2 after rounding.
	svc := newReportService(
		nil,
		[]domain.Product{{ID: 1, Price: 4.99}},
		[]domain.Order{{ID: 1, CustomerID: 1, ProductID: 1, Quantity: 3}},
	)

	report, err := svc.SalesReport(context.Background(), adminSession)
	if err != nil {
		t.Fatalf("SalesReport returned error: %v", err)
	}
	if report.TotalProfit != 1.2 {
		t.Fatalf("expected total_profit 1.2, got %v", report.TotalProfit)
	}
}

func TestReportService_AdminOnly(t *testing.T) {
	svc := newReportService(nil, nil, nil)

	for _, session := range []domain.Session{
		{UserID: 2, Role: domain.RoleSeller},
		{UserID: 3, Role: domain.RoleCustomer},
		{},
	} {
		if _, err := svc.SalesReport(context.Background(), session); !errors.Is(err, domain.ErrUnauthorized) {
			t.Fatalf("session %+v: expected ErrUnauthorized, got %v", session, err)
		}
	}
}

func TestReportService_IncludesTables(t *testing.T) {
	svc := newReportService(
		[]domain.Customer{{ID: 1, Name: "alice"}},
		[]domain.Product{{ID: 10, Name: "lamp", Price: 5}},
		nil,
	)

	report, err := svc.SalesReport(context.Background(), adminSession)
	if err != nil {
		t.Fatalf("SalesReport returned error: %v", err)
	}
	if len(report.Customers) != 1 || len(report.Products) != 1 {
		t.Fatalf("report must carry full customer and product tables: %+v", report)
	}
}
