package api

import (
	"go.uber.org/fx"

	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/config"
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/contactlogs"
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/logger"
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/patients"
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/reports"
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/store"
	"github.com/jgrayhendrix-debug/ms-medicaid-patient-management/tasks"
)

func configProvider() (*config.Config, error) {
	cfg := config.New()
	err := cfg.LoadFromEnv()
	return cfg, err
}

// Dependencies is the full DI graph of the service. The admin CLI reuses
// it to run one-shot commands against the same wiring.
func Dependencies() []fx.Option {
	return []fx.Option{
		fx.Provide(
			configProvider,
			logger.NewProductionLogger,
			logger.Suggar,
			store.NewConfig,
			store.NewClient,
			store.NewDatabase,
			patients.NewRepository,
			patients.NewService,
			tasks.NewRepository,
			tasks.NewService,
			contactlogs.NewRepository,
			contactlogs.NewService,
			reports.NewService,
			NewHealthCheck,
			NewHandler,
			NewServer,
		),
	}
}

func MainLoop() {
	deps := append(Dependencies(),
		fx.Invoke(SetReady),
		fx.Invoke(Start),
	)
	fx.New(deps...).Run()
}
