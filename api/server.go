package api

import (
	"context"
	"fmt"
	"strings"

	"github.com/brpaz/echozap"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/config"
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/errors"
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/store"
)

func NewServer(handler *Handler, healthCheck *HealthCheck, cfg *config.Config, zapLogger *zap.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(echozap.ZapLogger(zapLogger))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     strings.Split(cfg.CorsOrigins, ","),
		AllowCredentials: true,
	}))
	e.Use(requestTimeout)

	e.HTTPErrorHandler = errors.CustomHTTPErrorHandler

	e.GET("/ready", healthCheck.Ready)
	RegisterHandlers(e, handler)

	return e, nil
}

func RegisterHandlers(e *echo.Echo, h *Handler) {
	g := e.Group("/api")

	g.POST("/patients", h.CreatePatient)
	g.GET("/patients", h.ListPatients)
	g.GET("/patients/:id", h.GetPatient)
	g.PUT("/patients/:id", h.UpdatePatient)
	g.DELETE("/patients/:id", h.DeletePatient)

	g.POST("/tasks", h.CreateTask)
	g.GET("/tasks", h.ListTasks)
	g.PUT("/tasks/:id/complete", h.CompleteTask)

	g.POST("/contact-logs", h.CreateContactLog)
	g.GET("/contact-logs/:patientId", h.ListContactLogs)

	g.GET("/reports/daily-calls", h.DailyCallReport)
	g.GET("/reports/monthly-summary", h.MonthlySummaryReport)
}

// requestTimeout bounds each request with the store timeout so a slow
// database cannot hold connections open indefinitely.
func requestTimeout(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), store.ContextTimeout)
		defer cancel()
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

func Start(e *echo.Echo, cfg *config.Config, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := e.Start(fmt.Sprintf(":%d", cfg.HttpPort)); err != nil {
					fmt.Println(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}

func SetReady(healthCheck *HealthCheck, db *mongo.Database, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := db.Client().Ping(ctx, nil); err != nil {
				return err
			}

			// It's important this is set after mongo is initialized, which is ensured
			// by taking a dependency on mongo in the constructor, because lifecycle hooks
			// are executed in topological order
			healthCheck.SetReady(true)
			return nil
		},
		OnStop: nil,
	})
}
