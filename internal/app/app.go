package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/devray254/bookable-festivals-sub000/internal/audit"
	"github.com/devray254/bookable-festivals-sub000/internal/config"
	"github.com/devray254/bookable-festivals-sub000/internal/gateway/daraja"
	"github.com/devray254/bookable-festivals-sub000/internal/handler"
	"github.com/devray254/bookable-festivals-sub000/internal/metrics"
	"github.com/devray254/bookable-festivals-sub000/internal/middleware"
	"github.com/devray254/bookable-festivals-sub000/internal/notification"
	"github.com/devray254/bookable-festivals-sub000/internal/render"
	"github.com/devray254/bookable-festivals-sub000/internal/repository"
	"github.com/devray254/bookable-festivals-sub000/internal/router"
	"github.com/devray254/bookable-festivals-sub000/internal/scheduler"
	"github.com/devray254/bookable-festivals-sub000/internal/service"
	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"Bookable",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
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

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	eventRepo := repository.NewEventRepo(a.db)
	userRepo := repository.NewUserRepo(a.db)
	bookingRepo := repository.NewBookingRepo(a.db)
	paymentRepo := repository.NewPaymentRepo(a.db)
	certRepo := repository.NewCertificateRepo(a.db)

	gateway, err := daraja.New(daraja.Config{
		BaseURL:        a.cfg.Daraja.BaseURL,
		ConsumerKey:    a.cfg.Daraja.ConsumerKey,
		ConsumerSecret: a.cfg.Daraja.ConsumerSecret,
		Shortcode:      a.cfg.Daraja.Shortcode,
		Passkey:        a.cfg.Daraja.Passkey,
		CallbackURL:    a.cfg.Daraja.CallbackURL,
		Timeout:        a.cfg.Daraja.Timeout,
	}, a.log)
	if err != nil {
		return fmt.Errorf("init payment gateway: %w", err)
	}

	notifier, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	mailer := notification.NewSMTPMailer(notification.SMTPConfig{
		Host:     a.cfg.SMTP.Host,
		Port:     a.cfg.SMTP.Port,
		Username: a.cfg.SMTP.Username,
		Password: a.cfg.SMTP.Password,
		From:     a.cfg.SMTP.From,
	}, a.log)

	renderer, err := render.NewHTMLRenderer()
	if err != nil {
		return fmt.Errorf("init certificate renderer: %w", err)
	}

	auditLog := audit.New(a.db, a.log)
	m := metrics.New()

	eventService := service.NewEventService(eventRepo)
	userService := service.NewUserService(userRepo)
	paymentService := service.NewPaymentService(
		bookingRepo, paymentRepo, eventRepo, userRepo,
		gateway, notifier, auditLog, m,
		a.cfg.Scheduler.StaleAfter, a.log,
	)
	bookingService := service.NewBookingService(bookingRepo, auditLog, a.log)
	certificateService := service.NewCertificateService(
		certRepo, bookingRepo, paymentRepo, eventRepo, userRepo,
		renderer, mailer, notifier, auditLog, m, a.log,
	)

	a.scheduler = scheduler.New(
		paymentService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(eventService, userService, paymentService, bookingService, certificateService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
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

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

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

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
