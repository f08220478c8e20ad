package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const pgUniqueViolation = "23505"

// DB is satisfied by *pgxpool.Pool, pgx.Tx and pgxmock pools. List reads go
// through ListGroup so a transaction never sees two queries at once.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func New(ctx context.Context, logger *zap.Logger, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("db ping failed: %w", err)
	}

	logger.Info("db connected successfully")

	return pool, nil
}

func IsPgUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// ListGroup runs a listing's page and count queries. A pool serves them in
// parallel; a pgx.Tx owns one connection, so there they run one after the other.
func ListGroup(ctx context.Context, db DB) (*errgroup.Group, context.Context) {
	g, gctx := errgroup.WithContext(ctx)
	if _, ok := db.(pgx.Tx); ok {
		g.SetLimit(1)
	}
	return g, gctx
}
