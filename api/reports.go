package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// (GET /api/reports/daily-calls)
func (h *Handler) DailyCallReport(c echo.Context) error {
	report, err := h.reports.DailyCalls(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, report)
}

// (GET /api/reports/monthly-summary)
func (h *Handler) MonthlySummaryReport(c echo.Context) error {
	summary, err := h.reports.MonthlySummary(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, summary)
}
