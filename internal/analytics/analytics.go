// Package analytics считает агрегаты по списку транзакций в памяти,
// без обращения к базе. Используется для построения графиков.
package analytics

import "github.com/avoronova/budget-monitor/models"

// TotalsByType возвращает суммы по каждому типу транзакций.
func TotalsByType(transactions []models.Transaction) map[string]float64 {
	totals := make(map[string]float64)
	for _, t := range transactions {
		totals[t.Type] += t.Amount
	}
	return totals
}

// ExpenseByCategory возвращает суммарные расходы по категориям.
func ExpenseByCategory(transactions []models.Transaction) map[string]float64 {
	expenses := make(map[string]float64)
	for _, t := range transactions {
		if t.Type == models.TypeExpense {
			expenses[t.Category] += t.Amount
		}
	}
	return expenses
}

// Summarize собирает полную сводку по списку транзакций.
func Summarize(transactions []models.Transaction) models.Summary {
	totals := TotalsByType(transactions)
	summary := models.Summary{
		TotalIncome:       totals[models.TypeIncome],
		TotalExpense:      totals[models.TypeExpense],
		TransactionCount:  len(transactions),
		ExpenseByCategory: ExpenseByCategory(transactions),
	}
	summary.Balance = summary.TotalIncome - summary.TotalExpense
	return summary
}
