package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/avoronova/budget-monitor/internal/database"
	"github.com/avoronova/budget-monitor/internal/routes"
)

func main() {
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

	r := routes.SetupRouter(pool)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Ошибка при запуске сервера: %v", err)
	}
}
