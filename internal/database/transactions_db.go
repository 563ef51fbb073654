package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avoronova/budget-monitor/models"
)

// BulkFailure — отказ по одной строке пакетной вставки.
type BulkFailure struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// ValidateTransaction проверяет инвариант хранимой транзакции:
// положительная сумма, дата, тип Income/Expense, категория и владелец.
func ValidateTransaction(t *models.Transaction) error {
	if t.UserID <= 0 {
		return errors.New("не указан пользователь")
	}
	if t.Amount <= 0 {
		return errors.New("сумма должна быть положительной")
	}
	if t.Date.IsZero() {
		return errors.New("не указана дата")
	}
	if t.Type != models.TypeIncome && t.Type != models.TypeExpense {
		return fmt.Errorf("недопустимый тип транзакции %q", t.Type)
	}
	if t.Category == "" {
		return errors.New("не указана категория")
	}
	return nil
}

func CreateTransaction(pool *pgxpool.Pool, transaction *models.Transaction) error {
	if err := ValidateTransaction(transaction); err != nil {
		return err
	}

	query := `
		INSERT INTO transactions (user_id, transaction_date, amount, category, description, type)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
		RETURNING id`

	err := pool.QueryRow(context.Background(), query,
		transaction.UserID,
		transaction.Date,
		transaction.Amount,
		transaction.Category,
		transaction.Description,
		transaction.Type).Scan(&transaction.ID)
	if err != nil {
		return fmt.Errorf("ошибка при добавлении транзакции: %w", err)
	}
	return nil
}

// InsertTransactions вставляет строки по одной: ошибка строки не прерывает
// пакет, а попадает в список отказов.
func InsertTransactions(pool *pgxpool.Pool, userID int, transactions []models.Transaction) (int, []BulkFailure) {
	inserted := 0
	var failures []BulkFailure

	for i := range transactions {
		transactions[i].UserID = userID
		if err := CreateTransaction(pool, &transactions[i]); err != nil {
			failures = append(failures, BulkFailure{Index: i, Reason: err.Error()})
			continue
		}
		inserted++
	}

	return inserted, failures
}

// GetTransactionsByUserID возвращает транзакции пользователя по убыванию даты.
// typeFilter — "Income", "Expense" или пустая строка (без фильтра).
func GetTransactionsByUserID(pool *pgxpool.Pool, userID int, typeFilter string) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, transaction_date, amount, category, COALESCE(description, ''), type
		FROM transactions
		WHERE user_id = $1 AND ($2 = '' OR type = $2)
		ORDER BY transaction_date DESC, id DESC`

	rows, err := pool.Query(context.Background(), query, userID, typeFilter)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения транзакций: %w", err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Date, &t.Amount, &t.Category, &t.Description, &t.Type); err != nil {
			return nil, fmt.Errorf("ошибка чтения транзакции: %w", err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка чтения транзакций: %w", err)
	}
	return transactions, nil
}

// GetTransactionSummary считает итоги по типам и расходы по категориям.
func GetTransactionSummary(pool *pgxpool.Pool, userID int) (*models.Summary, error) {
	summary := &models.Summary{ExpenseByCategory: make(map[string]float64)}

	totalsQuery := `
		SELECT
			COALESCE(SUM(CASE WHEN type = 'Income' THEN amount ELSE 0 END), 0) AS total_income,
			COALESCE(SUM(CASE WHEN type = 'Expense' THEN amount ELSE 0 END), 0) AS total_expense,
			COUNT(*)
		FROM transactions
		WHERE user_id = $1`
	err := pool.QueryRow(context.Background(), totalsQuery, userID).
		Scan(&summary.TotalIncome, &summary.TotalExpense, &summary.TransactionCount)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении доходов и расходов: %w", err)
	}
	summary.Balance = summary.TotalIncome - summary.TotalExpense

	categoryQuery := `
		SELECT category, COALESCE(SUM(amount), 0) AS total
		FROM transactions
		WHERE user_id = $1 AND type = 'Expense'
		GROUP BY category
		ORDER BY total DESC`
	rows, err := pool.Query(context.Background(), categoryQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении расходов по категориям: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var category string
		var total float64
		if err := rows.Scan(&category, &total); err != nil {
			return nil, fmt.Errorf("ошибка чтения расходов по категориям: %w", err)
		}
		summary.ExpenseByCategory[category] = total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка чтения расходов по категориям: %w", err)
	}

	return summary, nil
}

// DeleteTransaction удаляет транзакцию только у её владельца.
func DeleteTransaction(pool *pgxpool.Pool, transactionID, userID int) error {
	result, err := pool.Exec(context.Background(),
		`DELETE FROM transactions WHERE id = $1 AND user_id = $2`, transactionID, userID)
	if err != nil {
		return fmt.Errorf("ошибка удаления транзакции: %w", err)
	}
	if result.RowsAffected() == 0 {
		return errors.New("транзакция не найдена или принадлежит другому пользователю")
	}
	return nil
}
