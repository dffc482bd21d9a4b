package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/errors"
)

// (POST /api/contact-logs)
func (h *Handler) CreateContactLog(c echo.Context) error {
	dto := ContactLogCreate{}
	if err := c.Bind(&dto); err != nil {
		return fmt.Errorf("invalid request body: %w", errors.BadRequest)
	}

	log, err := h.contactLogs.Create(c.Request().Context(), dto.ToContactLog())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, log)
}

// (GET /api/contact-logs/{patientId})
func (h *Handler) ListContactLogs(c echo.Context) error {
	logs, err := h.contactLogs.ListForPatient(c.Request().Context(), c.Param("patientId"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, logs)
}
