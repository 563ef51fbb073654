package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avoronova/budget-monitor/internal/analytics"
	"github.com/avoronova/budget-monitor/internal/charts"
	"github.com/avoronova/budget-monitor/internal/database"
)

// SummaryHandler возвращает сводку: итоги по типам и расходы по категориям.
func SummaryHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromQuery(c)
		if !ok {
			return
		}

		summary, err := database.GetTransactionSummary(pool, userID)
		if err != nil {
			log.Printf("Ошибка получения сводки: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка получения сводки"})
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}

// ExpensePieHandler отдаёт PNG с диаграммой расходов по категориям.
func ExpensePieHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromQuery(c)
		if !ok {
			return
		}

		transactions, err := database.GetTransactionsByUserID(pool, userID, "")
		if err != nil {
			log.Printf("Ошибка получения транзакций: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка получения транзакций"})
			return
		}

		png, err := charts.ExpensePieChart(analytics.ExpenseByCategory(transactions))
		if err != nil {
			log.Printf("Ошибка построения диаграммы расходов: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка построения диаграммы"})
			return
		}
		if png == nil {
			c.Status(http.StatusNoContent)
			return
		}
		c.Data(http.StatusOK, "image/png", png)
	}
}

// IncomeExpenseChartHandler отдаёт PNG со сравнением доходов и расходов.
func IncomeExpenseChartHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromQuery(c)
		if !ok {
			return
		}

		transactions, err := database.GetTransactionsByUserID(pool, userID, "")
		if err != nil {
			log.Printf("Ошибка получения транзакций: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка получения транзакций"})
			return
		}

		summary := analytics.Summarize(transactions)
		png, err := charts.IncomeExpenseBarChart(summary.TotalIncome, summary.TotalExpense)
		if err != nil {
			log.Printf("Ошибка построения графика доходов и расходов: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка построения графика"})
			return
		}
		if png == nil {
			c.Status(http.StatusNoContent)
			return
		}
		c.Data(http.StatusOK, "image/png", png)
	}
}
