package ports

import (
	"context"

	"github.com/minimarket/catalog-api/internal/core/domain"
)

// ReportService computes the admin sales report. The report is derived from
// the full orders and products tables on every call.
type ReportService interface {
	SalesReport(ctx context.Context, session domain.Session) (*domain.SalesReport, error)
}
