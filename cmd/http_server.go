package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/expenso-app/expenso/internal"
	"github.com/expenso-app/expenso/internal/core/events"
	"github.com/expenso-app/expenso/internal/event"
	eventPostgres "github.com/expenso-app/expenso/internal/event/postgres"
	"github.com/expenso-app/expenso/internal/expense"
	expensePostgres "github.com/expenso-app/expenso/internal/expense/postgres"
	"github.com/expenso-app/expenso/internal/transport"
	"github.com/expenso-app/expenso/internal/transport/rest"
	"github.com/expenso-app/expenso/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(os.Getenv("APP_ENV"))
	lg := logger.L()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db.DB}), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to open gorm over pgx connection: %w", err)
	}

	bus := events.NewEventBus(lg)
	registerActivityLog(bus, lg)

	baseHandler := transport.NewBaseHandler(lg)

	expenseRepo := expensePostgres.NewExpenseRepository(gormDB)
	expenseService := expense.NewService(expenseRepo, lg)
	expenseHandler := expense.NewHandler(baseHandler, expenseService)

	eventRepo := eventPostgres.NewEventRepository(gormDB)
	eventService := event.NewService(eventRepo, bus, lg)
	eventHandler := event.NewHandler(baseHandler, eventService)

	router := chi.NewRouter()
	rest.RegisterAllRoutes(router, db.DB, expenseHandler, eventHandler, config.Server.AllowedOrigins, lg)

	return &Dependencies{
		Config: config,
		Logger: lg,
		DB:     db,
		Router: router,
	}, nil
}

// registerActivityLog subscribes a structured-log activity trail for
// shared-ledger domain events.
func registerActivityLog(bus *events.EventBus, lg *slog.Logger) {
	bus.Subscribe(events.EventTypeSharedEventCreated, func(ctx context.Context, ev events.Event) error {
		lg.Info("activity: shared event created",
			"event_id", ev.EventID(),
			"payload", ev.Payload())
		return nil
	})
	bus.Subscribe(events.EventTypeSharedExpenseAdded, func(ctx context.Context, ev events.Event) error {
		lg.Info("activity: shared expense added",
			"event_id", ev.EventID(),
			"payload", ev.Payload())
		return nil
	})
}

// initDB opens the pgx-backed connection pool and verifies it.
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
