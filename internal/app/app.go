package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/stpnv0/LazyReserve/internal/auth"
	"github.com/stpnv0/LazyReserve/internal/config"
	"github.com/stpnv0/LazyReserve/internal/handler"
	"github.com/stpnv0/LazyReserve/internal/middleware"
	"github.com/stpnv0/LazyReserve/internal/repository"
	"github.com/stpnv0/LazyReserve/internal/repository/sqlite"
	"github.com/stpnv0/LazyReserve/internal/router"
	"github.com/stpnv0/LazyReserve/internal/service"
	"github.com/stpnv0/LazyReserve/internal/service/ports"
	"github.com/stpnv0/LazyReserve/migrations"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

type repos struct {
	users    ports.UserRepo
	sessions ports.SessionRepo
	bookings ports.BookingRepo
}

type App struct {
	cfg        *config.Config
	log        logger.Logger
	repos      repos
	closeDB    func() error
	httpServer *http.Server
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"LazyReserve",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initStorage(context.Background()); err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	app.initServices()

	return app, nil
}

func (a *App) initStorage(ctx context.Context) error {
	switch a.cfg.Storage.Driver {
	case config.DriverSQLite:
		return a.initSQLite(ctx)
	default:
		return a.initPostgres(ctx)
	}
}

func (a *App) initPostgres(ctx context.Context) error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	if err = db.Master.PingContext(ctx); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	if err = migrations.Up(ctx, db.Master, goose.DialectPostgres, migrations.PostgresDir); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	a.log.Info("migrations applied successfully")

	a.repos = repos{
		users:    repository.NewUserRepo(db),
		sessions: repository.NewSessionRepo(db),
		bookings: repository.NewBookingRepo(db),
	}
	a.closeDB = db.Master.Close

	a.log.LogAttrs(ctx, logger.InfoLevel, "database connected",
		logger.String("driver", config.DriverPostgres),
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initSQLite(ctx context.Context) error {
	db, err := sqlite.Open(ctx, a.cfg.SQLite.Path, a.cfg.SQLite.BusyTimeout)
	if err != nil {
		return err
	}

	a.repos = repos{
		users:    sqlite.NewUserRepo(db),
		sessions: sqlite.NewSessionRepo(db),
		bookings: sqlite.NewBookingRepo(db),
	}
	a.closeDB = db.Close

	a.log.LogAttrs(ctx, logger.InfoLevel, "database connected",
		logger.String("driver", config.DriverSQLite),
		logger.String("path", a.cfg.SQLite.Path),
	)

	return nil
}

func (a *App) initServices() {
	tokens := auth.NewManager(a.cfg.Auth.JWTSecret, a.cfg.Auth.AccessTTL, a.cfg.Auth.RefreshTTL)

	authService := service.NewAuthService(a.repos.users, tokens, a.log)
	sessionService := service.NewSessionService(a.repos.sessions, a.cfg.Public.BaseURL, a.log)
	bookingService := service.NewBookingService(a.repos.bookings, a.repos.sessions, a.log)

	h := handler.NewHandler(authService, sessionService, bookingService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.Auth(tokens),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.closeDB(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}
