package logger

import (
	"go.uber.org/zap"

	"github.com/rpedroni/project-luca-car-trivia/internal/config"
)

const appName = "car-trivia"

// New builds the application logger. Production gets JSON output at info
// level, every other environment the human readable development logger.
func New(cfg *config.Config) (*zap.Logger, error) {
	opts := []zap.Option{
		zap.Fields(zap.String("app", appName), zap.String("env", cfg.Env)),
	}

	if cfg.Env == "production" {
		return zap.NewProduction(opts...)
	}

	return zap.NewDevelopment(opts...)
}
