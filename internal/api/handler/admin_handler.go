package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minimarket/catalog-api/internal/core/ports"
)

// AdminHandler serves the admin dashboard data.
type AdminHandler struct {
	reports ports.ReportService
}

func NewAdminHandler(reports ports.ReportService) *AdminHandler {
	return &AdminHandler{reports: reports}
}

// Report returns customers, products, joined orders, and sales totals.
//
// @Summary      Admin sales report
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.SalesReport
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/report [get]
func (h *AdminHandler) Report(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	report, err := h.reports.SalesReport(c.Request().Context(), session)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}
