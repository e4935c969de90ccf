package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/Rovan44/shopping-app-44/internal/config"
	_ "github.com/lib/pq"
)

const pingTimeout = 10 * time.Second

// Open connects to PostgreSQL and verifies the connection with a ping.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DataSourceName())
	if err != nil {
		return nil, fmt.Errorf("database open error: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping error: %w", err)
	}

	log.Printf("Database connection success: %s@%s", cfg.Name, cfg.Host)
	return db, nil
}
