package render

import (
	"net/http"

	"github.com/smallbiznis/docstudio/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module selects the renderer from configuration: an external render
// service when an endpoint is configured, in-process HTML otherwise.
var Module = fx.Module("render",
	fx.Provide(func(cfg config.Config, log *zap.Logger) (Renderer, error) {
		if cfg.RenderEndpoint != "" {
			log.Info("using external renderer", zap.String("endpoint", cfg.RenderEndpoint))
			return NewHTTPRenderer(cfg.RenderEndpoint, &http.Client{Timeout: cfg.RenderTimeout}), nil
		}
		return NewHTMLRenderer()
	}),
)
