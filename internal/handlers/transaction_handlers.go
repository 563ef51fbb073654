package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avoronova/budget-monitor/internal/database"
	"github.com/avoronova/budget-monitor/internal/parser"
	"github.com/avoronova/budget-monitor/models"
)

func userIDFromQuery(c *gin.Context) (int, bool) {
	userID, err := strconv.Atoi(c.Query("user_id"))
	if err != nil || userID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор пользователя"})
		return 0, false
	}
	return userID, true
}

// CreateTransactionHandler добавляет одну транзакцию вручную.
func CreateTransactionHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var transaction models.Transaction
		if err := c.ShouldBindJSON(&transaction); err != nil {
			log.Printf("Ошибка привязки JSON: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ввод"})
			return
		}

		if err := database.CreateTransaction(pool, &transaction); err != nil {
			log.Printf("Ошибка при создании транзакции: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, transaction)
	}
}

// ListTransactionsHandler возвращает транзакции пользователя по убыванию даты,
// с необязательным фильтром ?type=Income|Expense.
func ListTransactionsHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromQuery(c)
		if !ok {
			return
		}

		typeFilter := c.Query("type")
		if typeFilter != "" && typeFilter != models.TypeIncome && typeFilter != models.TypeExpense {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Недопустимый тип транзакции"})
			return
		}

		transactions, err := database.GetTransactionsByUserID(pool, userID, typeFilter)
		if err != nil {
			log.Printf("Ошибка получения транзакций: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка получения транзакций"})
			return
		}
		if transactions == nil {
			transactions = []models.Transaction{}
		}
		c.JSON(http.StatusOK, transactions)
	}
}

// DeleteTransactionHandler удаляет транзакцию, если она принадлежит пользователю.
func DeleteTransactionHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор транзакции"})
			return
		}
		userID, ok := userIDFromQuery(c)
		if !ok {
			return
		}

		if err := database.DeleteTransaction(pool, id, userID); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Транзакция не найдена"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Транзакция успешно удалена"})
	}
}

type bulkInsertRequest struct {
	UserID           int                   `json:"user_id"`
	Type             string                `json:"type"`
	CategoryOverride string                `json:"category_override"`
	Rows             []models.CandidateRow `json:"rows"`
}

// BulkInsertHandler сохраняет подтверждённые строки импорта. Каждая строка
// вставляется независимо: сбой одной не отменяет остальные.
func BulkInsertHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req bulkInsertRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Printf("Ошибка привязки JSON: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ввод"})
			return
		}
		if req.UserID <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор пользователя"})
			return
		}
		if len(req.Rows) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Список строк пуст"})
			return
		}

		transactions := make([]models.Transaction, len(req.Rows))
		for i, row := range req.Rows {
			txType := row.Type
			if txType == "" {
				txType = req.Type
			}
			category := row.Category
			if req.CategoryOverride != "" {
				category = req.CategoryOverride
			}
			if category == "" {
				category = parser.DetectCategory(row.Description, txType)
			}
			transactions[i] = models.Transaction{
				UserID:      req.UserID,
				Date:        row.Date,
				Amount:      row.Amount,
				Category:    category,
				Description: row.Description,
				Type:        txType,
			}
		}

		inserted, failures := database.InsertTransactions(pool, req.UserID, transactions)
		if failures == nil {
			failures = []database.BulkFailure{}
		}
		log.Printf("Пакетный импорт для пользователя %d: добавлено %d, отклонено %d",
			req.UserID, inserted, len(failures))
		c.JSON(http.StatusOK, gin.H{"inserted": inserted, "failed": failures})
	}
}

// CategoriesHandler возвращает предлагаемые категории для типа транзакции.
func CategoriesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Query("type") {
		case models.TypeIncome:
			c.JSON(http.StatusOK, gin.H{"categories": parser.IncomeCategories})
		case models.TypeExpense, "":
			c.JSON(http.StatusOK, gin.H{"categories": parser.ExpenseCategories})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Недопустимый тип транзакции"})
		}
	}
}
