package sqlstore

import (
	"context"
	"fmt"
	"time"
)

// DDL написан на пересечении диалектов PostgreSQL и SQLite.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		street TEXT NOT NULL DEFAULT '',
		number INTEGER NOT NULL DEFAULT 0,
		zipcode TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL DEFAULT '',
		active BOOLEAN NOT NULL DEFAULT TRUE,
		reward_points BIGINT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		price_minor BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id TEXT PRIMARY KEY,
		customer_id TEXT NOT NULL,
		total_minor BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id TEXT PRIMARY KEY,
		order_id TEXT NOT NULL REFERENCES orders(id),
		product_id TEXT NOT NULL,
		name TEXT NOT NULL,
		price_minor BIGINT NOT NULL,
		qty INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items (order_id)`,
}

// EnsureSchema создаёт таблицы домена, если их ещё нет.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("sql store is not initialized")
	}

	execCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	for _, stmt := range schemaStatements {
		if _, err := s.db.ExecContext(execCtx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
