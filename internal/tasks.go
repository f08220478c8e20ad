package internal

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"pim-api/internal/application/services"
	"pim-api/internal/infrastructure/db/postgres/asset_group"
	"pim-api/internal/infrastructure/db/postgres/notification"
	"pim-api/internal/infrastructure/jwt"
	"pim-api/internal/infrastructure/metrics"
)

// One-shot maintenance tasks for the CLI. Each opens its own pool.

func Migrate() error {
	logger, cfg := Bootstrap()
	defer logger.Sync()

	return migrateUp(logger, cfg)
}

// ReconcileGroups recomputes total sizes of userID's groups, uuid.Nil means every user.
func ReconcileGroups(ctx context.Context, userID uuid.UUID) (int, error) {
	logger, cfg := Bootstrap()
	defer logger.Sync()

	pool, err := openDB(ctx, logger, cfg)
	if err != nil {
		return 0, err
	}
	defer pool.Close()

	aggregator := services.NewAggregator(asset_group.NewRepository(pool), logger)
	n, err := aggregator.ReconcileAll(ctx, userID)
	if err != nil {
		return 0, err
	}

	logger.Info("asset groups reconciled", zap.Int("groups", n))
	return n, nil
}

// SweepNotifications falls back to the configured retention when days is 0.
func SweepNotifications(ctx context.Context, days int) (int64, error) {
	logger, cfg := Bootstrap()
	defer logger.Sync()

	if days == 0 {
		days = cfg.Notifications.RetentionDays
	}

	pool, err := openDB(ctx, logger, cfg)
	if err != nil {
		return 0, err
	}
	defer pool.Close()

	svc := services.NewNotificationService(notification.NewRepository(pool), logger, metrics.NewCounter(prometheus.NewRegistry()))
	return svc.SweepOlderThan(ctx, days)
}

// IssueToken signs a bearer token for local testing and service accounts.
func IssueToken(userID uuid.UUID, role string, ttl time.Duration) (string, error) {
	_, cfg := Bootstrap()
	if cfg.App.JWTSecret == "" {
		return "", errors.New("SERVICE_JWT_SECRET is required")
	}
	return jwt.New(cfg.App.JWTSecret).GenerateJWT(userID, role, ttl)
}
