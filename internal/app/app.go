package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/ndmitriev/BookPay/internal/config"
	"github.com/ndmitriev/BookPay/internal/handler"
	"github.com/ndmitriev/BookPay/internal/middleware"
	"github.com/ndmitriev/BookPay/internal/notification"
	"github.com/ndmitriev/BookPay/internal/payment"
	"github.com/ndmitriev/BookPay/internal/repository"
	"github.com/ndmitriev/BookPay/internal/router"
	"github.com/ndmitriev/BookPay/internal/scheduler"
	"github.com/ndmitriev/BookPay/internal/service"
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
	dispatcher *notification.Dispatcher
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"BookPay",
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
	bookingRepo := repository.NewBookingRepo(a.db)
	earningsRepo := repository.NewEarningsRepo(a.db)
	refundRepo := repository.NewRefundRepo(a.db)
	payoutRepo := repository.NewPayoutRepo(a.db)
	providerRepo := repository.NewProviderRepo(a.db)
	catalogRepo := repository.NewServiceCatalogRepo(a.db)
	idempotencyRepo := repository.NewIdempotencyRepo(a.db)
	webhookEventRepo := repository.NewWebhookEventRepo(a.db)

	dispatcher, err := notification.NewDispatcher(a.cfg.Rabbit.URL, a.cfg.Rabbit.Exchange, a.log)
	if err != nil {
		return fmt.Errorf("init notification dispatcher: %w", err)
	}
	a.dispatcher = dispatcher

	alerter, err := notification.NewTelegramAlerter(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, a.log)
	if err != nil {
		return fmt.Errorf("init ops alerter: %w", err)
	}

	processor := payment.NewStripeProcessor(a.cfg.Stripe.SecretKey, a.log)
	guard := service.NewIdempotencyGuard(idempotencyRepo, a.cfg.Idempotency.TTL, a.log)

	platformCfg := service.PlatformConfig{
		FeeBps:          a.cfg.Platform.FeeBps,
		GSTPercent:      a.cfg.Platform.GSTPercent,
		Currency:        a.cfg.Platform.Currency,
		PayoutsDisabled: a.cfg.Platform.PayoutsDisabled,
	}

	bookingService := service.NewBookingService(
		bookingRepo, catalogRepo, providerRepo, earningsRepo, refundRepo,
		processor, dispatcher, guard, platformCfg, a.log,
	)
	settlementService := service.NewSettlementService(
		bookingRepo, providerRepo, catalogRepo, earningsRepo,
		processor, dispatcher, alerter, platformCfg, a.log,
	)
	webhookService := service.NewWebhookService(
		providerRepo, earningsRepo, payoutRepo, webhookEventRepo,
		processor, settlementService, dispatcher, alerter, a.log,
	)

	a.scheduler = scheduler.New(
		settlementService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(bookingService, settlementService)
	wh := handler.NewWebhookHandler(webhookService, handler.WebhookConfig{
		StripeSigningSecret: a.cfg.Stripe.WebhookSecret,
		IdentitySecret:      a.cfg.Identity.WebhookSecret,
		SkipSignatureVerify: a.cfg.Identity.SkipVerify,
	}, a.log)

	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		wh,
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

	if err := a.dispatcher.Close(); err != nil {
		a.log.LogAttrs(context.Background(), logger.WarnLevel, "close notification dispatcher",
			logger.String("error", err.Error()),
		)
	}

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
