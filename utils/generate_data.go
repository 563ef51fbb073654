package utils

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avoronova/budget-monitor/internal/database"
	"github.com/avoronova/budget-monitor/internal/parser"
	"github.com/avoronova/budget-monitor/models"
)

// GenerateTestUsers создаёт пользователей со случайными именами и паролями.
func GenerateTestUsers(pool *pgxpool.Pool, numUsers int) []int {
	ids := make([]int, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		user := &models.User{
			Username: fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
			Password: gofakeit.Password(true, true, true, false, false, 10),
		}
		if err := database.RegisterUser(pool, user); err != nil {
			log.Fatalf("ошибка при добавлении пользователя: %v", err)
		}
		ids = append(ids, user.ID)
	}
	return ids
}

// GenerateTestTransactions создаёт случайные транзакции для указанных пользователей.
func GenerateTestTransactions(pool *pgxpool.Pool, userIDs []int, numTransactions int) {
	if len(userIDs) == 0 {
		log.Fatal("нет пользователей для генерации транзакций")
	}

	for i := 0; i < numTransactions; i++ {
		txType := models.TypeExpense
		categories := parser.ExpenseCategories
		if rand.Intn(3) == 0 {
			txType = models.TypeIncome
			categories = parser.IncomeCategories
		}

		transaction := &models.Transaction{
			UserID:      userIDs[rand.Intn(len(userIDs))],
			Date:        gofakeit.DateRange(time.Now().AddDate(-1, 0, 0), time.Now()),
			Amount:      gofakeit.Price(1, 5000),
			Category:    categories[rand.Intn(len(categories))],
			Description: gofakeit.ProductName(),
			Type:        txType,
		}
		if err := database.CreateTransaction(pool, transaction); err != nil {
			log.Fatalf("ошибка при добавлении транзакции: %v", err)
		}
	}
}
