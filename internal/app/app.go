package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "jobtracker_backend/docs"

	"jobtracker_backend/database"
	"jobtracker_backend/internal/auth"
	"jobtracker_backend/internal/config"
	"jobtracker_backend/internal/email"
	"jobtracker_backend/internal/handlers"
	"jobtracker_backend/internal/logger"
	"jobtracker_backend/internal/metrics"
	"jobtracker_backend/internal/middleware"
	"jobtracker_backend/internal/routes"
	"jobtracker_backend/internal/services"
	"jobtracker_backend/internal/validator"
	"jobtracker_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// App is the assembled HTTP service.
type App struct {
	Config   *config.Config
	DB       *gorm.DB
	Router   *gin.Engine
	Services *services.ServiceContainer
}

// New opens the database, optionally migrates it, and builds the router.
func New(cfg *config.Config) (*App, error) {
	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	db, err := database.Open(cfg.Database.Driver, cfg.Database.DSN, cfg.Server.Env)
	if err != nil {
		return nil, err
	}
	logger.Info("Database connected")

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			_ = database.Close(db)
			return nil, err
		}
		logger.Info("Database schema migrated")
	}

	a, err := NewWithDB(cfg, db)
	if err != nil {
		_ = database.Close(db)
		return nil, err
	}
	return a, nil
}

// NewWithDB builds the service graph and router on an already opened database.
func NewWithDB(cfg *config.Config, db *gorm.DB) (*App, error) {
	apperrors.SetDebug(cfg.Server.Env == "development")

	mailer, err := email.NewProvider(cfg)
	if err != nil {
		return nil, fmt.Errorf("email provider: %w", err)
	}

	var (
		sink     metrics.Sink = metrics.NewNoopSink()
		registry *prometheus.Registry
	)
	if cfg.Metrics.Enabled {
		registry = prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		sink = metrics.NewPrometheusSink(registry)
	}

	tokens := auth.NewJWTManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Minute)
	v := validator.New()

	container := services.NewServiceContainer(services.Dependencies{
		JWT:       tokens,
		Email:     mailer,
		Metrics:   sink,
		Validator: v,
	})
	appHandlers := handlers.NewAppHandlers(container, v, middleware.AuthMiddleware(tokens))

	router := initializeGinRouter(cfg, db, sink)
	routes.RegisterRoutes(router, appHandlers, db, routes.Options{
		Metrics: registry,
		Swagger: cfg.Server.Env != "production",
	})

	return &App{
		Config:   cfg,
		DB:       db,
		Router:   router,
		Services: container,
	}, nil
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB, sink metrics.Sink) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.MetricsMiddleware(sink))
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	router.Use(middleware.DBMiddleware(db))
	return router
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	address := fmt.Sprintf("%s:%d", a.Config.Server.Host, a.Config.Server.Port)
	srv := &http.Server{
		Addr:              address,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", "address", address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

func (a *App) Close() error {
	return database.Close(a.DB)
}
