package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/avoronova/budget-monitor/internal/database"
	"github.com/avoronova/budget-monitor/utils"
)

// Наполняет базу тестовыми данными для ручной проверки интерфейса.
func main() {
	numUsers := flag.Int("users", 3, "сколько пользователей создать")
	numTransactions := flag.Int("transactions", 50, "сколько транзакций создать")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("Файл .env не найден, используются переменные окружения: %v", err)
	}

	pool, err := database.ConnectDB()
	if err != nil {
		log.Fatalf("Ошибка подключения к БД: %v", err)
	}
	defer pool.Close()

	if err := database.InitSchema(pool); err != nil {
		log.Fatalf("Ошибка инициализации схемы: %v", err)
	}

	ids := utils.GenerateTestUsers(pool, *numUsers)
	utils.GenerateTestTransactions(pool, ids, *numTransactions)
	log.Printf("Создано пользователей: %d, транзакций: %d", len(ids), *numTransactions)
}
