package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/meridian-cargo/website/internal/api"
	"github.com/meridian-cargo/website/internal/api/handler"
	"github.com/meridian-cargo/website/internal/api/middleware"
	"github.com/meridian-cargo/website/internal/api/render"
	"github.com/meridian-cargo/website/internal/core/service"
	"github.com/meridian-cargo/website/internal/infrastructure/courier"
	redisdb "github.com/meridian-cargo/website/internal/infrastructure/db/redis"
	"github.com/meridian-cargo/website/internal/infrastructure/store/jsonfile"
	"github.com/meridian-cargo/website/internal/pkg/config"
	"github.com/meridian-cargo/website/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the website and tracking API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	cfg, err := config.Load(ctx, nil)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: serviceName,
	})

	// --- Core ---
	store := jsonfile.NewStore(cfg.StorePath())
	tracking := service.NewTrackingService(store, courier.Noop{}, log)

	// The store is re-read on every lookup, so a bad file at startup is only
	// worth a warning: fixing it takes effect without a restart.
	if _, err := store.Load(ctx); err != nil {
		log.Warn().Err(err).Str("path", store.Path()).Msg("shipment store not readable yet")
	}

	templates, err := render.Load(cfg.TemplatePath())
	if err != nil {
		return err
	}
	if err := checkPageTemplates(templates); err != nil {
		return err
	}

	checks := map[string]handler.CheckFunc{
		"store": func(ctx context.Context) error {
			_, err := store.Load(ctx)
			return err
		},
	}

	// --- Optional rate limiting ---
	var limiter middleware.Limiter
	redisCfg := redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB}
	if redisCfg.Enabled() {
		client, err := redisdb.Connect(ctx, redisCfg)
		if err != nil {
			return err
		}
		defer client.Close()

		limiter = redisdb.NewRateLimiter(client, "track", cfg.RateLimit.Requests, cfg.RateLimit.Window)
		checks["redis"] = func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		}
		log.Info().
			Str("redis", redisCfg.Addr).
			Int("limit", cfg.RateLimit.Requests).
			Dur("window", cfg.RateLimit.Window).
			Msg("tracking rate limit enabled")
	}

	e := api.NewRouter(api.Deps{
		Tracking:        tracking,
		Renderer:        templates,
		StaticDir:       cfg.StaticPath(),
		Limiter:         limiter,
		ReadinessChecks: checks,
		Logger:          log,
	})

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", cfg.Addr()).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("server stopped")
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}

// checkPageTemplates fails when a routed page has no template, so the gap
// shows at startup instead of as a 500 on first view.
func checkPageTemplates(t *render.Templates) error {
	var missing []string
	for _, p := range handler.Pages {
		if !t.Has(p.Template) {
			missing = append(missing, p.Template)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing page templates: %s", strings.Join(missing, ", "))
	}
	return nil
}
