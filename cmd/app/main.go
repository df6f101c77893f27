package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"wasteflow/cmd"
	httpadapter "wasteflow/internal/adapters/in/http"
	"wasteflow/internal/adapters/in/http/api"
	pgadapter "wasteflow/internal/adapters/out/postgres"
	"wasteflow/internal/adapters/out/receipt"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	logger := cmd.NewLogger(configs)
	slog.SetDefault(logger)

	db, err := gorm.Open(postgres.Open(configs.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if configs.DBAutoMigrate {
		if err := pgadapter.Migrate(db); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cmd.NewCompositionRoot(configs, db, logger)
	busCtx, cancelBus := context.WithCancel(context.Background())
	busDone := app.RunEventBus(busCtx)

	jobManager := app.CreateJobManager()
	if configs.AutoAssignEnabled() {
		if err := jobManager.StartAll(); err != nil {
			log.Fatalf("failed to start jobs: %v", err)
		}
	}

	e := newWebServer(ctx, app, configs, logger)
	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server stopped: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}
	if configs.AutoAssignEnabled() {
		jobManager.StopAll()
	}
	cancelBus()
	<-busDone
}

var loadDotEnv = sync.OnceFunc(func() {
	// .env is optional; variables already set in the process win.
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warnf("failed to load .env file: %v", err)
	}
})

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT", "8080"),
		DBHost:               goDotEnvVariable("DB_HOST", "localhost"),
		DBPort:               goDotEnvVariable("DB_PORT", "5432"),
		DBUser:               goDotEnvVariable("DB_USER", ""),
		DBPassword:           goDotEnvVariable("DB_PASSWORD", ""),
		DBName:               goDotEnvVariable("DB_NAME", ""),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE", "disable"),
		DBAutoMigrate:        boolVariable("DB_AUTO_MIGRATE", true),
		JWTSecret:            goDotEnvVariable("JWT_SECRET", ""),
		AutoAssignSchedule:   goDotEnvVariable("AUTO_ASSIGN_SCHEDULE", ""),
		EventBufferSize:      intVariable("EVENT_BUFFER_SIZE", 0),
		RouteStrictStopOrder: boolVariable("ROUTE_STRICT_STOP_ORDER", false),
		LogFormat:            goDotEnvVariable("LOG_FORMAT", "json"),
		LogLevel:             goDotEnvVariable("LOG_LEVEL", "info"),
	}
	return config
}

func goDotEnvVariable(key, fallback string) string {
	loadDotEnv()
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func boolVariable(key string, fallback bool) bool {
	raw := goDotEnvVariable(key, "")
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		log.Fatalf("%s must be a boolean, got %q", key, raw)
	}
	return value
}

func intVariable(key string, fallback int) int {
	raw := goDotEnvVariable(key, "")
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("%s must be an integer, got %q", key, raw)
	}
	return value
}

func newWebServer(ctx context.Context, app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) *echo.Echo {
	doc, err := api.Load(ctx)
	if err != nil {
		log.Fatalf("failed to load openapi document: %v", err)
	}
	if err := api.RegisterSwagger(doc); err != nil {
		log.Fatalf("failed to register swagger: %v", err)
	}
	gate, err := httpadapter.NewAccessGate(configs.JWTSecret)
	if err != nil {
		log.Fatalf("failed to create access gate: %v", err)
	}
	validator, err := httpadapter.NewRequestValidator(doc)
	if err != nil {
		log.Fatalf("failed to create request validator: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = httpadapter.NewErrorHandler(logger)
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				logger.LogAttrs(c.Request().Context(), slog.LevelWarn, "request failed",
					slog.Group("http", attrs...), slog.String("error", v.Error.Error()))
				return nil
			}
			logger.Info("request", attrs...)
			return nil
		},
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server := httpadapter.NewServer(app.CreateHTTPHandlers(), receipt.NewGenerator())
	server.Register(e, gate, validator)
	return e
}
