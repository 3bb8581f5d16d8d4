package mirror

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgSchema = `
CREATE TABLE IF NOT EXISTS collections (
	name       TEXT PRIMARY KEY,
	payload    JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
`
	notifyChannel = "attendance_sync"
)

// Postgres mirrors the document tree into a single PostgreSQL table and uses
// LISTEN/NOTIFY for change subscriptions. Writes are last-write-wins.
type Postgres struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
	cancel context.CancelFunc
}

func NewPostgres(ctx context.Context, dsn string, logger *slog.Logger) (*Postgres, error) {
	if logger == nil {
		logger = slog.Default()
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse mirror dsn: %w", err)
	}
	config.MaxConns = 5
	config.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("connect to mirror: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping mirror: %w", err)
	}
	if _, err := pool.Exec(ctx, pgSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("apply mirror schema: %w", err)
	}

	return &Postgres{pool: pool, logger: logger}, nil
}

func (m *Postgres) Pull(ctx context.Context) (map[string][]byte, error) {
	rows, err := m.pool.Query(ctx, `SELECT name, payload FROM collections`)
	if err != nil {
		return nil, fmt.Errorf("pull collections: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]byte)
	for rows.Next() {
		var name string
		var payload []byte
		if err := rows.Scan(&name, &payload); err != nil {
			return nil, err
		}
		result[name] = payload
	}
	return result, rows.Err()
}

func (m *Postgres) Push(ctx context.Context, name string, payload []byte) error {
	if payload == nil {
		if _, err := m.pool.Exec(ctx, `DELETE FROM collections WHERE name = $1`, name); err != nil {
			return fmt.Errorf("delete %s: %w", name, err)
		}
	} else {
		_, err := m.pool.Exec(ctx, `
			INSERT INTO collections (name, payload, updated_at) VALUES ($1, $2, $3)
			ON CONFLICT (name) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at
		`, name, payload, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("push %s: %w", name, err)
		}
	}

	if _, err := m.pool.Exec(ctx, `SELECT pg_notify($1, $2)`, notifyChannel, name); err != nil {
		return fmt.Errorf("notify %s: %w", name, err)
	}
	return nil
}

// Subscribe holds a dedicated connection on LISTEN and re-reads the named
// collection whenever a notification arrives. The callback runs on the
// listener goroutine.
func (m *Postgres) Subscribe(ctx context.Context, fn func(name string, payload []byte)) error {
	conn, err := m.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire listen connection: %w", err)
	}
	if _, err := conn.Exec(ctx, "LISTEN "+notifyChannel); err != nil {
		conn.Release()
		return fmt.Errorf("listen on %s: %w", notifyChannel, err)
	}

	listenCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel

	go func() {
		defer conn.Release()
		for {
			notification, err := conn.Conn().WaitForNotification(listenCtx)
			if err != nil {
				if listenCtx.Err() == nil {
					m.logger.Warn("mirror listener stopped", "error", err)
				}
				return
			}
			name := notification.Payload
			var payload []byte
			err = m.pool.QueryRow(listenCtx, `SELECT payload FROM collections WHERE name = $1`, name).Scan(&payload)
			if errors.Is(err, pgx.ErrNoRows) {
				fn(name, nil)
				continue
			}
			if err != nil {
				m.logger.Warn("mirror re-read failed", "collection", name, "error", err)
				continue
			}
			fn(name, payload)
		}
	}()

	return nil
}

func (m *Postgres) Close(ctx context.Context) error {
	if m.cancel != nil {
		m.cancel()
	}
	m.pool.Close()
	return nil
}
