package database_test

import (
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/avoronova/budget-monitor/internal/database"
)

// testPool подключается к БД из .env; без настроенного окружения тесты
// пакета пропускаются.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	_ = godotenv.Load("../../.env")
	if os.Getenv("DB_NAME") == "" {
		t.Skip("переменные окружения БД не заданы, тест пропущен")
	}

	pool, err := database.ConnectDB()
	if err != nil {
		t.Fatalf("ошибка подключения к БД: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := database.InitSchema(pool); err != nil {
		t.Fatalf("ошибка инициализации схемы: %v", err)
	}
	return pool
}
