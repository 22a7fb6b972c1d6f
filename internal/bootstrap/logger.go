package bootstrap

import (
	"hris-backoffice/internal/config"

	"go.uber.org/zap"
)

// NewLogger builds the process logger and installs it as the zap global.
func NewLogger(app config.AppConfig) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if app.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}

	zap.ReplaceGlobals(logger)
	return logger, nil
}
