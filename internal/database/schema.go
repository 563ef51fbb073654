package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username VARCHAR(50) UNIQUE NOT NULL,
		password VARCHAR(100) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id SERIAL PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		transaction_date DATE NOT NULL,
		amount DOUBLE PRECISION NOT NULL CHECK (amount > 0),
		category VARCHAR(50) NOT NULL,
		description VARCHAR(200),
		type VARCHAR(10) NOT NULL CHECK (type IN ('Income', 'Expense'))
	)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_user_date
		ON transactions (user_id, transaction_date DESC)`,
}

// InitSchema создаёт таблицы, если их ещё нет. Вызывается при старте приложения.
func InitSchema(pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(context.Background(), stmt); err != nil {
			return fmt.Errorf("ошибка инициализации схемы БД: %w", err)
		}
	}
	return nil
}
