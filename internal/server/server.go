// Package server exposes the document engine over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	catalogdomain "github.com/smallbiznis/docstudio/internal/catalog/domain"
	"github.com/smallbiznis/docstudio/internal/cache"
	"github.com/smallbiznis/docstudio/internal/clock"
	"github.com/smallbiznis/docstudio/internal/config"
	"github.com/smallbiznis/docstudio/internal/observability/logger"
	"github.com/smallbiznis/docstudio/internal/observability/metrics"
	"github.com/smallbiznis/docstudio/internal/optimize"
	"github.com/smallbiznis/docstudio/internal/personalize"
	"github.com/smallbiznis/docstudio/internal/recommend"
	"github.com/smallbiznis/docstudio/internal/render"
	"go.opentelemetry.io/otel"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Server wires the engines behind the HTTP surface. The engines stay
// plain in-process libraries; this is just their delivery mechanism.
type Server struct {
	cfg config.Config
	log *zap.Logger

	catalogSvc   catalogdomain.Service
	recommender  *recommend.Engine
	personalizer *personalize.Engine
	analyzer     *optimize.Analyzer
	renderer     render.Renderer
	clk          clock.Clock

	analysisCache cache.Cache[string, optimize.Report]
	engineMetrics *metrics.EngineMetrics
	limiter       *rateLimiter

	engine *gin.Engine
	http   *http.Server
}

type Params struct {
	fx.In

	Cfg          config.Config
	Log          *zap.Logger
	CatalogSvc   catalogdomain.Service
	Recommender  *recommend.Engine
	Personalizer *personalize.Engine
	Analyzer     *optimize.Analyzer
	Renderer     render.Renderer
	Clock        clock.Clock
}

// NewEngine builds the gin engine with logging and metrics middleware.
func NewEngine(cfg config.Config) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logger.GinMiddleware(logger.MiddlewareConfig{
		SkipPaths: []string{"/healthz", "/metrics"},
	}))

	httpMetrics, err := metrics.NewHTTPMetrics(
		metrics.Config{ServiceName: cfg.ServiceName, Environment: cfg.Environment},
		otel.GetMeterProvider(),
	)
	if err != nil {
		return nil, err
	}
	engine.Use(metrics.GinMiddleware(httpMetrics))
	return engine, nil
}

func NewServer(p Params, engine *gin.Engine) *Server {
	return &Server{
		cfg:           p.Cfg,
		log:           p.Log.Named("server"),
		catalogSvc:    p.CatalogSvc,
		recommender:   p.Recommender,
		personalizer:  p.Personalizer,
		analyzer:      p.Analyzer,
		renderer:      p.Renderer,
		clk:           p.Clock,
		analysisCache: cache.NewTTLCache[string, optimize.Report](),
		engineMetrics: metrics.EngineWithConfig(metrics.Config{ServiceName: p.Cfg.ServiceName, Environment: p.Cfg.Environment}),
		limiter:       newRateLimiter(30, time.Minute),
		engine:        engine,
	}
}

// RegisterRoutes mounts the API.
func (s *Server) RegisterRoutes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := s.engine.Group("/api")
	api.GET("/templates", s.ListTemplates)
	api.GET("/templates/:id", s.GetTemplate)
	api.GET("/templates/:id/export", s.ExportTemplate)
	api.POST("/templates/import", s.ImportTemplate)
	api.POST("/recommendations", s.RecommendTemplates)
	api.POST("/personalization", s.PersonalizeInvoice)
	api.POST("/analysis", s.AnalyzeTemplate)
	api.POST("/documents", s.rateLimited, s.GenerateDocument)
}

// rateLimited guards the expensive generation pipeline per client IP.
func (s *Server) rateLimited(c *gin.Context) {
	if !s.limiter.Allow(c.ClientIP()) {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": apiError{
			Code:    "rate_limited",
			Message: "too many generation requests, slow down",
		}})
		return
	}
	c.Next()
}

// RunHTTP starts the HTTP listener under the fx lifecycle.
func RunHTTP(lc fx.Lifecycle, s *Server) {
	s.http = &http.Server{
		Addr:    s.cfg.Addr,
		Handler: s.engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			s.log.Info("http server starting", zap.String("addr", s.cfg.Addr))
			go func() {
				if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					s.log.Error("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
			defer cancel()
			return s.http.Shutdown(shutdownCtx)
		},
	})
}

var Module = fx.Module("server",
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(func(s *Server) { s.RegisterRoutes() }),
	fx.Invoke(RunHTTP),
)
