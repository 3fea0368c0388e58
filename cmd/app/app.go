package app

import (
	"github.com/qrforge/qrforge/internal/adapters/config"
	"github.com/qrforge/qrforge/internal/domain/service"
	"github.com/qrforge/qrforge/pkg/logger"
)

// App bundles the long-lived collaborators of a run: settings, loggers and
// the batch service.
type App struct {
	Settings *config.Settings
	Logger   *logger.Logger
	Batch    *service.BatchService
}

func New(settings *config.Settings) (*App, error) {
	appLogger, err := logger.Named("app")
	if err != nil {
		return nil, err
	}
	batchLogger, err := logger.Named("batch")
	if err != nil {
		return nil, err
	}

	return &App{
		Settings: settings,
		Logger:   appLogger,
		Batch:    service.NewBatchService(batchLogger),
	}, nil
}
