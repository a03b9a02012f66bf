package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"itinera/docs"
	"itinera/internal/config"
	handlers "itinera/internal/http/handler"
	"itinera/internal/http/middleware"
	"itinera/internal/llm"
	"itinera/internal/logging"
	"itinera/internal/otel"
	"itinera/internal/repository/memory"
	"itinera/internal/service"
	"itinera/internal/storage"
)

const shutdownTimeout = 15 * time.Second

// @title Itinera API
// @version 1.0
// @description AI-driven itinerary generation engine.
// @BasePath /
func main() {
	cfg := config.Load()

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.AppConfig, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, "itinera", log)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn("tracing shutdown", zap.Error(err))
		}
	}()

	gen, err := llm.NewGemini(ctx, cfg.Gemini, log)
	if err != nil {
		return err
	}
	if _, disabled := gen.(llm.Disabled); disabled {
		log.Warn("GEMINI_API_KEY not set, itineraries fall back to empty plans")
	}
	search := llm.NewPerplexity(cfg.Perplexity, nil)
	if cfg.Perplexity.APIKey == "" {
		log.Warn("PERPLEXITY_API_KEY not set, travel and food options are unavailable")
	}

	var store storage.Storage
	if s, err := storage.New(cfg.Storage); err != nil {
		log.Warn("image storage unavailable, images disabled", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
	} else {
		store = s
	}

	planner := service.NewPlannerService(gen, store, memory.NewPlanRepository(time.Now), cfg.Images, log)
	travel := service.NewTravelService(search, cfg.Perplexity, log)
	tasks := service.NewDestinationTaskService(gen, memory.NewTaskRepository(cfg.Tasks.TTL, cfg.Tasks.CleanupInterval), cfg.Gemini.TaskModel, log)
	accounts := service.NewAccountService(memory.NewUserRepository(time.Now))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return err
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		// Itinerary generation with images can run for minutes.
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute,
	})

	app.Use(middleware.RequestID())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSOrigins}))
	app.Use(otelfiber.Middleware())
	app.Use(promMiddleware.Handler())
	app.Use(middleware.Logger(log))

	handlers.RegisterRoutes(app, handlers.Deps{
		Planner:  planner,
		Travel:   travel,
		Tasks:    tasks,
		Accounts: accounts,
		Store:    store,
		Metrics:  reg,
		Version:  cfg.Version,
		Log:      log,
	})

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}
		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}
		return swagger.HandlerDefault(c)
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", ":"+cfg.Port), zap.String("version", cfg.Version))
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		log.Warn("http shutdown", zap.Error(err))
	}
	// Background destination research finishes before exit.
	tasks.Wait()
	return nil
}
