package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"helpdesk-srv/config"

	_ "github.com/lib/pq" // PostgreSQL driver
)

const defaultConnectTimeout = 5 * time.Second

var (
	instance *sql.DB
	mu       sync.Mutex
)

// Connect opens the shared PostgreSQL pool, or returns it when already open.
// A failed attempt leaves no state behind, so Connect can be retried.
func Connect(ctx context.Context, cfg config.PostgresConfig) (*sql.DB, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, sslMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open PostgreSQL connection: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	connectCtx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
	defer cancel()
	if err := db.PingContext(connectCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}

	instance = db
	return instance, nil
}

// Disconnect closes the shared pool so a later Connect starts fresh.
func Disconnect(db *sql.DB) error {
	mu.Lock()
	defer mu.Unlock()

	if db == nil {
		return nil
	}
	if err := db.Close(); err != nil {
		return fmt.Errorf("failed to close PostgreSQL connection: %w", err)
	}
	if db == instance {
		instance = nil
	}
	return nil
}

// HealthCheck pings the shared pool.
func HealthCheck(ctx context.Context) error {
	mu.Lock()
	db := instance
	mu.Unlock()

	if db == nil {
		return fmt.Errorf("PostgreSQL client not initialized")
	}
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL health check failed: %w", err)
	}
	return nil
}
