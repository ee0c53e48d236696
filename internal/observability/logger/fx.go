package logger

import (
	"github.com/smallbiznis/docstudio/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("observability.logger",
	fx.Provide(func(cfg config.Config) (*zap.Logger, error) {
		log, err := New(cfg.Environment)
		if err != nil {
			return nil, err
		}
		zap.ReplaceGlobals(log)
		return log, nil
	}),
)
