package tracing

import (
	"github.com/smallbiznis/docstudio/internal/config"
	"go.uber.org/fx"
)

var Module = fx.Module("observability.tracing",
	fx.Provide(func(cfg config.Config) Config {
		return Config{
			Enabled:          cfg.TracingEnabled,
			ServiceName:      cfg.ServiceName,
			ServiceVersion:   cfg.ServiceVersion,
			Environment:      cfg.Environment,
			ExporterEndpoint: cfg.TracingEndpoint,
			ExporterProtocol: cfg.TracingProtocol,
			SamplingRatio:    cfg.TracingSampling,
		}
	}),
	fx.Invoke(NewProvider),
)
