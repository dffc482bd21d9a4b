package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/errors"
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/tasks"
)

// (POST /api/tasks)
func (h *Handler) CreateTask(c echo.Context) error {
	dto := TaskCreate{}
	if err := c.Bind(&dto); err != nil {
		return fmt.Errorf("invalid request body: %w", errors.BadRequest)
	}

	task, err := h.tasks.Create(c.Request().Context(), dto.ToTask())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

// (GET /api/tasks)
func (h *Handler) ListTasks(c echo.Context) error {
	filter := tasks.Filter{}
	if patientId := c.QueryParam("patient_id"); patientId != "" {
		filter.PatientId = &patientId
	}
	if raw := c.QueryParam("status"); raw != "" {
		status := tasks.Status(raw)
		if !status.Valid() {
			return fmt.Errorf("invalid status %q: %w", raw, errors.BadRequest)
		}
		filter.Status = &status
	}
	if raw := c.QueryParam("due_today"); raw != "" {
		dueToday, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("invalid due_today value: %w", errors.BadRequest)
		}
		filter.DueToday = dueToday
	}

	result, err := h.tasks.List(c.Request().Context(), &filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

// (PUT /api/tasks/{id}/complete)
func (h *Handler) CompleteTask(c echo.Context) error {
	if err := h.tasks.Complete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Task completed successfully"})
}
