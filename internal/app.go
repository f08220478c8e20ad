package internal

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"pim-api/config"
	"pim-api/internal/application/ports"
	"pim-api/internal/application/services"
	"pim-api/internal/infrastructure/db/postgres"
	"pim-api/internal/infrastructure/db/postgres/asset"
	"pim-api/internal/infrastructure/db/postgres/asset_group"
	"pim-api/internal/infrastructure/db/postgres/family"
	"pim-api/internal/infrastructure/db/postgres/notification"
	"pim-api/internal/infrastructure/jwt"
	"pim-api/internal/infrastructure/mail"
	"pim-api/internal/infrastructure/metrics"
	"pim-api/internal/infrastructure/mq"
	"pim-api/internal/infrastructure/s3"
	"pim-api/internal/interface/api/rest"
	"pim-api/internal/interface/api/rest/middleware"
	"pim-api/pkg/rmqconsumer"
)

type App struct {
	logger              *zap.Logger
	cfg                 config.Config
	db                  *pgxpool.Pool
	storage             ports.Storage
	mailer              ports.Mailer
	httpSrv             *http.Server
	router              *gin.Engine
	mCounter            *prometheus.CounterVec
	mq                  ports.RabbitMQ
	mqConsumer          ports.RMQConsumer
	notificationService ports.NotificationService
}

// Bootstrap creates the logger and loads the configuration. A missing .env
// file is fine, the environment may already carry everything.
func Bootstrap() (*zap.Logger, config.Config) {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("cannot initialize zap logger: %v", err)
	}

	if err = godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Fatal("error loading .env file", zap.Error(err))
	}

	return logger, config.Load()
}

func NewApp(ctx context.Context) (*App, error) {
	logger, cfg := Bootstrap()
	if cfg.App.JWTSecret == "" {
		return nil, errors.New("SERVICE_JWT_SECRET is required")
	}

	// metrics
	mCounter := metrics.NewCounter(prometheus.DefaultRegisterer)
	mDuration := metrics.NewRequestDuration(prometheus.DefaultRegisterer)

	// router
	switch cfg.App.Env {
	case gin.ReleaseMode, "prod", "production":
		gin.SetMode(gin.ReleaseMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogGin(logger, mDuration))

	// httpServer
	httpSrv := &http.Server{
		Addr:              cfg.App.Host + ":" + cfg.App.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// db
	if cfg.DB.AutoMigrate {
		if err := migrateUp(logger, cfg); err != nil {
			return nil, err
		}
	}
	dbPool, err := openDB(ctx, logger, cfg)
	if err != nil {
		return nil, err
	}

	// storage and mail report misconfiguration on first use
	storage := s3.New(ctx, logger, cfg.S3)
	mailer := mail.New(logger, cfg.Mail)

	// rabbitMQ
	rabbitDsn, err := cfg.AMQPDSN()
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("RabbitMQ config error: %w", err)
	}
	rbMQ := mq.New(cfg.MQ, logger)
	if err = rbMQ.Connect(ctx, rabbitDsn); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to connect to rabbitMQ: %w", err)
	}
	if err = rbMQ.Init(); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed init rabbitMQ: %w", err)
	}

	// rmqConsumer turns events into notification rows
	notificationService := services.NewNotificationService(notification.NewRepository(dbPool), logger, mCounter)
	rmqConsumer := rmqconsumer.New(cfg.MQ, logger, notificationService.HandleEvent)
	if err = rmqConsumer.Connect(rabbitDsn); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to connect rabbitMQ consumer: %w", err)
	}
	if err = rmqConsumer.Init(); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to init rabbitMQ consumer: %w", err)
	}

	return &App{
		logger:              logger,
		cfg:                 cfg,
		db:                  dbPool,
		storage:             storage,
		mailer:              mailer,
		httpSrv:             httpSrv,
		router:              r,
		mCounter:            mCounter,
		mq:                  rbMQ,
		mqConsumer:          rmqConsumer,
		notificationService: notificationService,
	}, nil
}

func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
	if a.mqConsumer != nil {
		a.mqConsumer.Close()
	}
	if a.mq != nil && a.mq.GetConn() != nil {
		a.mq.GetConn().Close()
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// Run - The central place to launch and manage our application and
// parallel processes through a single context.
func (a *App) Run(ctx context.Context) error {
	// context with os signals cancel chan
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGUSR1)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("starting "+a.cfg.App.Name, zap.String("addr", a.httpSrv.Addr))
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server "+a.cfg.App.Name+" error: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		a.mq.PublisherWorker(ctx)
		return nil
	})

	g.Go(func() error {
		a.mqConsumer.DeliveryWorker(ctx)
		return nil
	})

	<-ctx.Done()

	a.logger.Info("shutting down " + a.cfg.App.Name + " gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if a.httpSrv != nil {
		if err := a.httpSrv.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("http server shutdown "+a.cfg.App.Name+" error", zap.Error(err))
			return err
		}
	}

	if err := g.Wait(); err != nil {
		a.logger.Error(a.cfg.App.Name+" returning an error", zap.Error(err))
		return err
	}

	a.logger.Info(a.cfg.App.Name + " gracefully stopped")

	return nil
}

func (a *App) InitControllers() {
	// repos
	assetRepo := asset.NewRepository(a.db)
	groupRepo := asset_group.NewRepository(a.db)
	familyRepo := family.NewRepository(a.db)

	// services
	jwtService := jwt.New(a.cfg.App.JWTSecret)
	aggregator := services.NewAggregator(groupRepo, a.logger)
	assetService := services.NewAssetService(a.storage, assetRepo, groupRepo, aggregator, a.mq, a.logger, a.mCounter)
	groupService := services.NewAssetGroupService(groupRepo, aggregator, a.mq, a.mCounter)
	familyService := services.NewFamilyService(familyRepo, a.mq, a.mCounter)
	supportService := services.NewSupportService(a.mailer, a.mq, a.logger, a.mCounter)

	// controllers
	rest.NewAssetController(a.router, assetService, a.logger, jwtService)
	rest.NewAssetGroupController(a.router, groupService, a.logger, jwtService)
	rest.NewFamilyController(a.router, familyService, a.logger, jwtService)
	rest.NewNotificationController(a.router, a.notificationService, a.logger, jwtService, a.cfg.Notifications.RetentionDays)
	rest.NewSupportController(a.router, supportService, a.logger, jwtService)

	// ops
	a.router.GET(rest.RouteHealth, a.healthHandler)
	a.router.GET(rest.RouteMetrics, gin.WrapH(promhttp.Handler()))
}

func (a *App) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := a.db.Ping(ctx); err != nil {
		a.logger.Warn("health check: db ping failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "db": "down"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (a *App) Logger() *zap.Logger { return a.logger }

func openDB(ctx context.Context, logger *zap.Logger, cfg config.Config) (*pgxpool.Pool, error) {
	dbDsn, err := cfg.DBDSN()
	if err != nil {
		return nil, fmt.Errorf("DB config error: %w", err)
	}
	return postgres.New(ctx, logger, dbDsn)
}

func migrateUp(logger *zap.Logger, cfg config.Config) error {
	dsn, err := cfg.MigrateDSN()
	if err != nil {
		return fmt.Errorf("DB config error: %w", err)
	}
	return postgres.Migrate(logger, dsn)
}
