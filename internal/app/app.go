package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/stpnv0/mari-gunting/internal/config"
	"github.com/stpnv0/mari-gunting/internal/distance"
	"github.com/stpnv0/mari-gunting/internal/domain"
	"github.com/stpnv0/mari-gunting/internal/handler"
	"github.com/stpnv0/mari-gunting/internal/middleware"
	"github.com/stpnv0/mari-gunting/internal/notification"
	"github.com/stpnv0/mari-gunting/internal/obs"
	"github.com/stpnv0/mari-gunting/internal/payment"
	"github.com/stpnv0/mari-gunting/internal/pricing"
	"github.com/stpnv0/mari-gunting/internal/repository"
	"github.com/stpnv0/mari-gunting/internal/router"
	"github.com/stpnv0/mari-gunting/internal/scheduler"
	"github.com/stpnv0/mari-gunting/internal/service"
	"github.com/stpnv0/mari-gunting/internal/service/ports"
	"github.com/stpnv0/mari-gunting/internal/timer"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

const (
	migrationsDir = "migrations"
	serviceName   = "mari-gunting"
	version       = "0.1.0"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server

	bookingService *service.BookingService
	deadlines      *timer.Deadlines
	scheduler      *scheduler.Scheduler
	fanout         *notification.Fanout
	relay          *notification.RedisRelay
	rabbit         *notification.RabbitPublisher

	shutdownTracer func(context.Context) error
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		serviceName,
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	app.shutdownTracer, err = obs.InitTracer(context.Background(), obs.TracerConfig{
		Enabled:     cfg.Tracing.Enabled,
		Endpoint:    cfg.Tracing.Endpoint,
		ServiceName: serviceName,
		Version:     version,
		Environment: cfg.Tracing.Environment,
	})
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	if cfg.Storage.Driver == "postgres" {
		if err = app.runMigrations(); err != nil {
			return nil, fmt.Errorf("migrations: %w", err)
		}

		if err = app.initDB(); err != nil {
			return nil, fmt.Errorf("init db: %w", err)
		}
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
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

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
	var repo ports.BookingRepo
	if a.db != nil {
		repo = repository.NewBookingRepo(a.db)
	} else {
		a.log.Warn("using in-memory booking storage, data is lost on restart")
		repo = repository.NewMemoryBookingRepo()
	}

	payments, err := a.paymentProvider()
	if err != nil {
		return fmt.Errorf("init payment provider: %w", err)
	}

	hub := notification.NewHub(a.cfg.Notification.StreamBuffer, a.log)
	var remotes []ports.ChangePublisher
	if a.cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     a.cfg.Redis.Addr,
			Password: a.cfg.Redis.Password,
			DB:       a.cfg.Redis.DB,
		})
		a.relay = notification.NewRedisRelay(client, a.cfg.Redis.Channel, hub, a.log)
		remotes = append(remotes, a.relay)
	}
	if a.cfg.Rabbit.Enabled {
		a.rabbit, err = notification.NewRabbitPublisher(a.cfg.Rabbit.URL, a.cfg.Rabbit.Exchange, a.log)
		if err != nil {
			return fmt.Errorf("init rabbitmq: %w", err)
		}
		remotes = append(remotes, a.rabbit)
	}
	a.fanout = notification.NewFanout(hub, a.cfg.Notification.QueueSize, a.log, remotes...)

	alerter, err := notification.NewTelegramAlerter(a.cfg.Telegram.BotToken, a.cfg.Telegram.AdminChatID, a.log)
	if err != nil {
		return fmt.Errorf("init alerter: %w", err)
	}

	clock := clockwork.NewRealClock()
	a.deadlines, err = timer.New(clock, a.log)
	if err != nil {
		return fmt.Errorf("init deadline timers: %w", err)
	}

	a.bookingService = service.NewBookingService(
		repo,
		pricing.NewCalculator(a.pricingConfig()),
		payments,
		distance.NewHaversine(a.cfg.Pricing.RoadFactor),
		a.deadlines,
		a.fanout,
		alerter,
		clock,
		a.serviceConfig(),
		a.log,
	)

	a.scheduler = scheduler.New(
		a.bookingService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(a.bookingService, hub, a.log)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.Auth(a.cfg.Auth.JWTSecret),
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

func (a *App) paymentProvider() (ports.PaymentProvider, error) {
	switch a.cfg.Payment.Provider {
	case "omise":
		return payment.NewOmiseProvider(
			a.cfg.Payment.OmisePublicKey,
			a.cfg.Payment.OmiseSecretKey,
			a.cfg.Payment.Currency,
			a.log,
		)
	default:
		a.log.Warn("using stub payment provider")
		return payment.NewStubProvider(), nil
	}
}

func (a *App) pricingConfig() pricing.Config {
	p := a.cfg.Pricing
	return pricing.Config{
		PlatformFee:   domain.FromRinggit(p.PlatformFee),
		BaseTravelFee: domain.FromRinggit(p.BaseTravelFee),
		BaseTravelKm:  p.BaseTravelKm,
		TravelPerKm:   domain.FromRinggit(p.TravelPerKm),
		CommissionRate: map[domain.ServiceType]float64{
			domain.ServiceTypeHome:   p.HomeCommission,
			domain.ServiceTypeWalkIn: p.WalkInCommission,
		},
	}
}

func (a *App) serviceConfig() service.Config {
	b := a.cfg.Booking
	return service.Config{
		ExpiryWindow:      b.ExpiryWindow,
		AutoConfirmWindow: b.AutoConfirmWindow,
		ConflictRetries:   b.ConflictRetries,
		RateLimit:         b.RateLimit,
		RateWindow:        b.RateWindow,
		MinDisputeReason:  b.MinDisputeReason,
		SettlementGrace:   b.SettlementGrace,
		PaymentRetry: retry.Strategy{
			Attempts: a.cfg.Payment.RetryAttempts,
			Delay:    a.cfg.Payment.RetryDelay,
			Backoff:  a.cfg.Payment.RetryBackoff,
		},
	}
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.deadlines.Start(ctx, a.bookingService)
	// таймеры живут в памяти, после рестарта восстанавливаем их из хранилища
	restored, err := a.bookingService.RescheduleDeadlines(ctx)
	if err != nil {
		a.log.LogAttrs(ctx, logger.ErrorLevel, "failed to restore deadline timers",
			logger.String("error", err.Error()),
		)
	} else {
		a.log.LogAttrs(ctx, logger.InfoLevel, "deadline timers restored", logger.Int("count", restored))
	}

	go a.fanout.Run(ctx)
	if a.relay != nil {
		go func() {
			if err := a.relay.Run(ctx); err != nil {
				a.log.LogAttrs(ctx, logger.ErrorLevel, "redis relay stopped",
					logger.String("error", err.Error()),
				)
			}
		}()
	}
	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		stop()
		_ = a.shutdown()
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

	var errs []error

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("http server shutdown: %w", err))
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.deadlines.Shutdown(); err != nil {
		errs = append(errs, fmt.Errorf("deadline timers shutdown: %w", err))
	}

	select {
	case <-a.fanout.Done():
	case <-time.After(5 * time.Second):
		a.log.Warn("remote event queue not drained in time")
	}

	if a.relay != nil {
		if err := a.relay.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
	}
	if a.rabbit != nil {
		if err := a.rabbit.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close rabbitmq: %w", err))
		}
	}

	if err := a.shutdownTracer(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
	}

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close db: %w", err))
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return errors.Join(errs...)
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
