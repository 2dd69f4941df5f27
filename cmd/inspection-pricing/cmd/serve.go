package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"

	"github.com/donaldgifford/inspection-pricing/api/openapi"
	"github.com/donaldgifford/inspection-pricing/internal/api/handlers"
	"github.com/donaldgifford/inspection-pricing/internal/api/middleware"
	"github.com/donaldgifford/inspection-pricing/internal/cache"
	"github.com/donaldgifford/inspection-pricing/internal/config"
	"github.com/donaldgifford/inspection-pricing/internal/engine"
	"github.com/donaldgifford/inspection-pricing/internal/notify"
	"github.com/donaldgifford/inspection-pricing/internal/store"
	"github.com/donaldgifford/inspection-pricing/internal/telemetry"
	"github.com/donaldgifford/inspection-pricing/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log, logFile := logger.NewWithFile(cfg.Logging.Level, cfg.Logging.Format, logger.FileOptions{
		Path:       cfg.Logging.File.Path,
		MaxSizeMB:  cfg.Logging.File.MaxSizeMB,
		MaxBackups: cfg.Logging.File.MaxBackups,
		MaxAgeDays: cfg.Logging.File.MaxAgeDays,
		Compress:   cfg.Logging.File.Compress,
	})
	defer func() { _ = logFile.Close() }()
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.Setup(ctx, cfg.Telemetry, Version)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(sctx); err != nil {
			log.Error("telemetry shutdown failed", "error", err)
		}
	}()

	pg, err := store.NewPostgresStore(ctx, cfg.Database.DSN(), cfg.Database.PoolSize)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer pg.Close()

	if err := pg.Migrate(ctx); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	deps := map[string]handlers.Pinger{"postgres": pg}
	engineOpts := []engine.EngineOption{
		engine.WithLogger(log),
		engine.WithStrictValidation(cfg.Pricing.StrictValidation),
		engine.WithDefaultTechCount(cfg.Pricing.DefaultTechCount),
	}
	if cfg.Pricing.SurgePricing {
		engineOpts = append(engineOpts, engine.WithSurgePricing(cfg.Pricing.SurgeThreshold))
	}

	if cfg.Cache.Enabled {
		rc, client, err := cache.Connect(ctx, cfg.Cache.URL, cfg.Cache.TTL)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()

		deps["redis"] = rc
		engineOpts = append(engineOpts, engine.WithCache(rc))
		log.Info("shop cache enabled", "ttl", cfg.Cache.TTL)
	}

	var publishers notify.MultiPublisher
	if cfg.Events.Enabled {
		nc, err := notify.ConnectNATS(cfg.Events.URL, "inspection-pricing", cfg.Events.Timeout)
		if err != nil {
			return err
		}
		defer func() { _ = nc.Drain() }()

		pub := notify.NewNATSPublisher(nc, cfg.Events.SubjectPrefix,
			notify.WithPropagator(otel.GetTextMapPropagator()),
		)
		deps["nats"] = pub
		publishers = append(publishers, pub)
		log.Info("estimate events enabled", "subject", pub.Subject())
	}

	if cfg.Events.WebhookURL != "" {
		publishers = append(publishers, notify.NewWebhookPublisher(cfg.Events.WebhookURL,
			notify.WithHTTPClient(&http.Client{Timeout: cfg.Events.Timeout}),
		))
		log.Info("estimate webhook enabled")
	}

	switch len(publishers) {
	case 0:
	case 1:
		engineOpts = append(engineOpts, engine.WithPublisher(publishers[0]))
	default:
		engineOpts = append(engineOpts, engine.WithPublisher(publishers))
	}

	eng := engine.NewEngine(pg, engineOpts...)

	sched, err := engine.NewScheduler(eng, cfg.Schedule.MarketRefresh, log)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}
	sched.Start()
	go sched.RunNow()

	e := newServer(cfg, log, eng, pg, deps)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr, "version", Version)

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	log.Info("shutting down server")

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	<-sched.Stop().Done()

	if err := e.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

// newServer builds the Echo instance with middleware, the Huma API, and all
// routes.
func newServer(
	cfg *config.Config,
	log *slog.Logger,
	eng *engine.Engine,
	s store.Store,
	deps map[string]handlers.Pinger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.Recovery(log))
	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Tracing())
	e.Use(middleware.Metrics())
	if cfg.RateLimit.Enabled {
		e.Use(middleware.RateLimit(middleware.NewRateLimiter(cfg.RateLimit.PerSecond, cfg.RateLimit.Burst)))
	}

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	handlers.RegisterHealthRoutes(e, handlers.NewHealthHandler(deps))

	api := humaecho.New(e, huma.DefaultConfig("Inspection Pricing API", Version))
	openapi.RegisterRoutes(e, api)

	handlers.RegisterPricingRoutes(api, handlers.NewPricingHandler(eng))
	handlers.RegisterEstimateRoutes(api, handlers.NewEstimatesHandler(eng, s))
	handlers.RegisterShopRoutes(api, handlers.NewShopsHandler(eng, s))
	handlers.RegisterCustomerRoutes(api, handlers.NewCustomersHandler(eng, s))
	handlers.RegisterMarketRoutes(api, handlers.NewMarketHandler(eng))

	return e
}
