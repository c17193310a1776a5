package main

import (
	"context"
	"fmt"
	"os/signal"
	"runtime"
	"sync"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/helmet/v2"
	"github.com/rs/zerolog/log"
	"github.com/terraincognita07/mesflow/internal/api"
	"github.com/terraincognita07/mesflow/internal/config"
	"github.com/terraincognita07/mesflow/internal/db"
)

const serviceName = "mesflow"

var (
	metricsOnce sync.Once
	metrics     *fiberprometheus.FiberPrometheus
)

func runServer(ctx context.Context, conf *config.Config) error {
	location, ok := conf.Location()
	if !ok {
		log.Warn().Str("tz", conf.TZ).Msg("invalid TZ, falling back to UTC")
	}

	database, err := db.OpenSQLite(conf.DBPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		return fmt.Errorf("database handle: %w", err)
	}
	defer sqlDB.Close()

	if users, err := db.NewUserRepository(database).CountUsers(); err == nil && users == 0 {
		log.Info().Msg("no accounts yet, sign up at /signup or run create-user")
	}

	handler, err := api.NewHandler(database, conf.SecretKey, conf.TemplatesDir, location, conf.CookieSecure)
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}
	app := newApp(conf, handler)

	sigCtx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.ShutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	log.Info().
		Str("address", conf.Address).
		Str("db", conf.DBPath).
		Str("tz", location.String()).
		Bool("dev_mode", conf.DevMode).
		Msg("mesflow listening")
	if err := app.Listen(conf.Address); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}

func newApp(conf *config.Config, handler *api.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "MESflow",
		DisableStartupMessage: true,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		IdleTimeout:           conf.ShutdownTimeout,
	})

	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e any) {
			buf := make([]byte, 4096)
			buf = buf[:runtime.Stack(buf, false)]
			log.Error().Str("path", c.Path()).Msgf("panic: %v\n%s", e, buf)
		},
	}))
	app.Use(logger.New(logger.Config{
		Output:     log.Logger,
		Format:     "${status} ${method} ${path} ${latency}\n",
		TimeFormat: time.RFC3339,
	}))
	app.Use(compress.New())
	app.Use(helmet.New(helmet.Config{
		ReferrerPolicy:   "strict-origin-when-cross-origin",
		PermissionPolicy: "interest-cohort=()",
	}))

	metricsOnce.Do(func() {
		metrics = fiberprometheus.New(serviceName)
	})
	metrics.RegisterAt(app, "/metrics")
	app.Use(metrics.Middleware)

	app.Use(csrf.New(csrfMiddlewareConfig(conf.CookieSecure)))
	app.Static("/static", conf.StaticDir)
	api.RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app
}

func csrfMiddlewareConfig(cookieSecure bool) csrf.Config {
	return csrf.Config{
		KeyLookup:      "form:csrf_token",
		CookieName:     "mesflow_csrf",
		CookieSameSite: "Lax",
		CookieHTTPOnly: true,
		CookieSecure:   cookieSecure,
		ContextKey:     "csrf",
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/metrics" || c.Path() == "/healthz"
		},
	}
}
