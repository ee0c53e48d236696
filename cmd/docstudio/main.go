package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/docstudio/internal/catalog"
	"github.com/smallbiznis/docstudio/internal/clock"
	"github.com/smallbiznis/docstudio/internal/config"
	"github.com/smallbiznis/docstudio/internal/migration"
	"github.com/smallbiznis/docstudio/internal/observability/logger"
	"github.com/smallbiznis/docstudio/internal/observability/tracing"
	"github.com/smallbiznis/docstudio/internal/optimize"
	"github.com/smallbiznis/docstudio/internal/personalize"
	"github.com/smallbiznis/docstudio/internal/recommend"
	"github.com/smallbiznis/docstudio/internal/render"
	"github.com/smallbiznis/docstudio/internal/seed"
	"github.com/smallbiznis/docstudio/internal/server"
	"github.com/smallbiznis/docstudio/pkg/db"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		tracing.Module,
		fx.Provide(func() *snowflake.Node {
			node, err := snowflake.NewNode(1)
			if err != nil {
				panic(err)
			}
			return node
		}),
		db.Module,
		fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := migration.RunMigrations(sqlDB); err != nil {
				return err
			}
			if cfg.SeedDefaultTemplates {
				return seed.EnsureDefaultTemplates(conn)
			}
			return nil
		}),
		clock.Module,
		catalog.Module,
		recommend.Module,
		personalize.Module,
		optimize.Module,
		render.Module,
		server.Module,
	)
	app.Run()
}
