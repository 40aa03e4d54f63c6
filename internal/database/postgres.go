package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

type Config struct {
	URL            string
	Table          string
	MaxConns       int32
	ConnectTimeout time.Duration
	MaxIdleTime    time.Duration
}

type DB struct {
	Pool  *pgxpool.Pool
	table string
}

func (c Config) poolConfig() (*pgxpool.Config, error) {
	poolConfig, err := pgxpool.ParseConfig(c.URL)
	if err != nil {
		return nil, fmt.Errorf("Invalid database connection string: %w", err)
	}

	if c.MaxConns > 0 {
		poolConfig.MaxConns = c.MaxConns
	}
	if c.MaxIdleTime > 0 {
		poolConfig.MaxConnIdleTime = c.MaxIdleTime
	}
	if c.ConnectTimeout > 0 {
		poolConfig.ConnConfig.ConnectTimeout = c.ConnectTimeout
	}

	return poolConfig, nil
}

func New(ctx context.Context, config Config) (*DB, error) {
	poolConfig, err := config.poolConfig()
	if err != nil {
		return nil, err
	}

	pgPool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("Failed to connect to database, Error: %w", err)
	}

	table := config.Table
	if table == "" {
		table = DefaultTable
	}

	return &DB{
		Pool:  pgPool,
		table: table,
	}, nil
}

// NewWithBackoff opens the pool and pings it, retrying with exponential backoff.
func NewWithBackoff(ctx context.Context, config Config, maxRetries int) (*DB, error) {
	db, err := New(ctx, config)
	if err != nil {
		return nil, err
	}

	if maxRetries < 1 {
		maxRetries = 1
	}

	for i := range maxRetries {
		if i > 0 {
			backoff := time.Duration(1<<uint(i)) * time.Second
			log.Info().Dur("backoff", backoff).Msg("Waiting before database retry")
			select {
			case <-ctx.Done():
				db.Close()
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		if err = db.Ping(ctx); err == nil {
			log.Info().Int("attempts_needed", i+1).Int32("max_conns", db.Pool.Config().MaxConns).Msg("Database connected")
			return db, nil
		}

		log.Warn().Err(err).Int("attempt", i+1).Msg("Database ping failed")
	}

	db.Close()
	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

func (db *DB) Ping(ctx context.Context) error {
	if err := db.Pool.Ping(ctx); err != nil {
		return err
	}

	return nil
}

func (db *DB) Close() {
	db.Pool.Close()
}
