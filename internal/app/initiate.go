package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/rs/cors"

	"github.com/shandysiswandi/goadvice/internal/pkg/pkgadvice"
	"github.com/shandysiswandi/goadvice/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/goadvice/internal/pkg/pkglog"
	"github.com/shandysiswandi/goadvice/internal/pkg/pkgmetrics"
	"github.com/shandysiswandi/goadvice/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/goadvice/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/goadvice/internal/pkg/pkguid"
	"github.com/shandysiswandi/goadvice/internal/pkg/pkgvalidator"
)

const limiterIdleTTL = 10 * time.Minute

func (a *App) initConfig() {
	if err := pkgconfig.LoadDotEnv(); err != nil {
		slog.Error("failed to load .env", "error", err)
		os.Exit(1)
	}

	path := "/config/config.yaml"
	if os.Getenv("LOCAL") == "true" {
		path = "./config/config.yaml"
	}

	cfg, err := pkgconfig.NewViper(path)
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	//nolint:errcheck,gosec // ignore error
	os.Setenv("TZ", cfg.GetString("tz"))

	if level := cfg.GetString("log.level"); level != "" {
		a.logger = pkglog.InitLogging(nil, level)
	}

	a.config = cfg
}

func (a *App) initLibraries() {
	a.goroutine = pkgroutine.NewManager(10)
	a.uuid = pkguid.NewUUID()
	a.validator = pkgvalidator.New()
	a.metrics = pkgmetrics.New()
	a.translator = pkgadvice.NewTranslator(a.logger, pkgadvice.WithRecorder(a.metrics))
}

func (a *App) initHTTPServer() {
	a.router = pkgrouter.NewRouter(a.uuid, a.translator)
	a.router.Handle(http.MethodGet, "/metrics", a.metrics.Handler())
	a.router.Wrap(pkgrouter.MiddlewareMetrics(a.metrics))

	if rps := a.config.GetFloat("server.ratelimit.rps"); rps > 0 {
		limiter := pkgrouter.NewRateLimiter(rps, int(a.config.GetInt("server.ratelimit.burst")))
		a.router.UseRateLimit(limiter)
		a.goroutine.Go(a.ctx, "ratelimit-prune", func(ctx context.Context) error {
			return pruneLimiter(ctx, limiter)
		})
	}

	origins := a.config.GetArray("server.cors.origins")
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{pkgrouter.HeaderCorrelationID},
		AllowCredentials: true,
	})

	a.httpServer = &http.Server{
		Addr:              a.config.GetString("server.address.http"),
		Handler:           corsHandler.Handler(a.router),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func pruneLimiter(ctx context.Context, limiter *pkgrouter.RateLimiter) error {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := limiter.Prune(limiterIdleTTL); n > 0 {
				slog.DebugContext(ctx, "pruned idle rate limiters", "count", n)
			}
		}
	}
}

func (a *App) initClosers() {
	if a.closerFn == nil {
		a.closerFn = map[string]func(context.Context) error{}
	}

	a.closerFn["HTTP Server"] = func(ctx context.Context) error {
		return a.httpServer.Shutdown(ctx)
	}
	a.closerFn["Config"] = func(context.Context) error {
		return a.config.Close()
	}
}
