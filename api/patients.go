package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/errors"
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/patients"
)

// (POST /api/patients)
func (h *Handler) CreatePatient(c echo.Context) error {
	dto := PatientCreate{}
	if err := c.Bind(&dto); err != nil {
		return fmt.Errorf("invalid request body: %w", errors.BadRequest)
	}

	patient, err := h.patients.Create(c.Request().Context(), dto.ToPatient())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, patient)
}

// (GET /api/patients)
func (h *Handler) ListPatients(c echo.Context) error {
	filter := patients.Filter{}
	if search := c.QueryParam("search"); search != "" {
		filter.Search = &search
	}
	if raw := c.QueryParam("tan_expiring"); raw != "" {
		expiring, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("invalid tan_expiring value: %w", errors.BadRequest)
		}
		filter.TanExpiring = expiring
	}

	result, err := h.patients.List(c.Request().Context(), &filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

// (GET /api/patients/{id})
func (h *Handler) GetPatient(c echo.Context) error {
	patient, err := h.patients.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, patient)
}

// (PUT /api/patients/{id})
func (h *Handler) UpdatePatient(c echo.Context) error {
	update := patients.PatientUpdate{}
	if err := c.Bind(&update); err != nil {
		return fmt.Errorf("invalid request body: %w", errors.BadRequest)
	}

	patient, err := h.patients.Update(c.Request().Context(), c.Param("id"), update)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, patient)
}

// (DELETE /api/patients/{id})
func (h *Handler) DeletePatient(c echo.Context) error {
	if err := h.patients.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Patient deleted successfully"})
}
