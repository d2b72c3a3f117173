// @title         asemic API
// @version       1.0
// @description   Local studio that asks an LLM to draw asemic entities as SVG.
// @BasePath      /api/v1
// @schemes       http
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/artem13815/asemic/docs"

	// internal imports
	"github.com/artem13815/asemic/api/http"
	"github.com/artem13815/asemic/api/http/handlers"
	"github.com/artem13815/asemic/api/http/presenter"
	"github.com/artem13815/asemic/pkg/artifact"
	"github.com/artem13815/asemic/pkg/config"
	"github.com/artem13815/asemic/pkg/generation"
	"github.com/artem13815/asemic/pkg/health"
	"github.com/artem13815/asemic/pkg/health/checkers"
	"github.com/artem13815/asemic/pkg/history"
	"github.com/artem13815/asemic/pkg/launch"
	"github.com/artem13815/asemic/pkg/llm/provider"
	"github.com/artem13815/asemic/pkg/logging"
	pgrepo "github.com/artem13815/asemic/pkg/repository/postgres"
	"github.com/artem13815/asemic/pkg/storage/postgres"
	"github.com/artem13815/asemic/pkg/studio"
)

func main() {
	// Load configuration from env/.env; flags below override it.
	cfg := config.Load()

	root := &cobra.Command{
		Use:           "asemic-server",
		Short:         "Serve the Asemic Artist studio",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cfg)
		},
	}
	f := root.Flags()
	f.StringVar(&cfg.Host, "host", cfg.Host, "interface to bind")
	f.IntVar(&cfg.Port, "port", cfg.Port, "first port to try")
	f.IntVar(&cfg.PortAttempts, "port-attempts", cfg.PortAttempts, "how many consecutive ports to try")
	f.BoolVar(&cfg.DisableBrowser, "no-browser", cfg.DisableBrowser, "do not open a browser")
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	f.StringVar(&cfg.StudioFile, "studio", cfg.StudioFile, "YAML file overriding the studio catalogue")
	f.StringVar(&cfg.OutputDir, "output-dir", cfg.OutputDir, "directory for generated SVG files")
	f.StringVar(&cfg.LLM.Provider, "provider", cfg.LLM.Provider, "ollama, openai, openrouter, lmstudio or gemini")
	f.IntVar(&cfg.MaxAttempts, "max-attempts", cfg.MaxAttempts, "model calls per generation")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := root.ExecuteContext(ctx); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	log := logging.New(cfg.LogLevel)

	cat, err := studio.Load(cfg.StudioFile)
	if err != nil {
		return err
	}
	model, err := provider.New(ctx, cfg.LLM, cat.DefaultModel)
	if err != nil {
		return fmt.Errorf("llm provider: %w", err)
	}
	store, err := artifact.NewFileStore(cfg.OutputDir)
	if err != nil {
		return err
	}

	// Health service: compose checkers
	probes := []health.Checker{checkers.NewArtifactChecker(store)}

	// Generation history is optional and only enabled with a database.
	var repo history.Repository
	if cfg.DatabaseURL != "" {
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("postgres connect: %w", err)
		}
		defer pool.Close()
		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			return err
		}
		log.Info("database ready", "migrations_applied", len(applied))
		repo = pgrepo.NewHistoryRepository(pool)
		probes = append(probes, checkers.NewPostgresChecker(pool))
	}

	svc := generation.NewService(model, cat, store, generation.Options{
		MaxAttempts: cfg.MaxAttempts,
		History:     repo,
		Logger:      log,
	})

	app := fiber.New(fiber.Config{
		AppName:               "asemic",
		ErrorHandler:          presenter.ErrorHandler,
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{Output: os.Stderr}))

	// Register routes
	http.Register(app, http.Handlers{
		Health:       handlers.NewHealthHandler(health.NewService(probes...)),
		Options:      handlers.NewOptionsHandler(cat, svc.MaxAttempts(), repo != nil),
		Generate:     handlers.NewGenerateHandler(svc, http.FilesRoute),
		Files:        handlers.NewFilesHandler(store),
		History:      handlers.NewHistoryHandler(repo),
		GenerateRate: cfg.GenerateRate,
	})

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	ln, err := launch.ListenFree(cfg.Host, cfg.Port, cfg.PortAttempts)
	if err != nil {
		return err
	}
	if port := ln.Addr().(*net.TCPAddr).Port; port != cfg.Port {
		log.Warn("port busy, using the next free one", "requested", cfg.Port, "port", port)
		cfg.Port = port
	}
	docs.SwaggerInfo.Host = cfg.Addr()
	url := cfg.URL()
	log.Info("HTTP server listening", "url", url, "provider", cfg.LLM.Provider, "artifacts", store.Dir(), "history", repo != nil)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return app.Listener(ln)
	})
	g.Go(func() error {
		<-gctx.Done()
		return app.ShutdownWithTimeout(5 * time.Second)
	})
	if !cfg.DisableBrowser {
		g.Go(func() error {
			return launch.OpenBrowserAfter(gctx, url, cfg.BrowserDelay)
		})
	}
	return g.Wait()
}
