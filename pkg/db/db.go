// Package db provides the shared gorm database handle.
package db

import (
	"context"

	"github.com/smallbiznis/docstudio/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open connects to the configured sqlite database.
func Open(cfg config.Config) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(cfg.DatabaseDSN), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
}

var Module = fx.Module("db",
	fx.Provide(Open),
	fx.Invoke(func(lc fx.Lifecycle, conn *gorm.DB, log *zap.Logger) {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				sqlDB, err := conn.DB()
				if err != nil {
					return err
				}
				log.Info("closing database")
				return sqlDB.Close()
			},
		})
	}),
)
