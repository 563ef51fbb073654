package analytics_test

import (
	"testing"
	"time"

	"github.com/avoronova/budget-monitor/internal/analytics"
	"github.com/avoronova/budget-monitor/models"
)

func sampleTransactions() []models.Transaction {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return []models.Transaction{
		{UserID: 1, Date: day, Amount: 5000, Category: "Salary", Type: models.TypeIncome},
		{UserID: 1, Date: day, Amount: 1200, Category: "Food", Type: models.TypeExpense},
		{UserID: 1, Date: day, Amount: 300, Category: "Food", Type: models.TypeExpense},
		{UserID: 1, Date: day, Amount: 800, Category: "Transport", Type: models.TypeExpense},
		{UserID: 1, Date: day, Amount: 700, Category: "Freelance", Type: models.TypeIncome},
	}
}

func TestTotalsByType(t *testing.T) {
	totals := analytics.TotalsByType(sampleTransactions())
	if totals[models.TypeIncome] != 5700 {
		t.Errorf("доходы: хотели 5700, получили %v", totals[models.TypeIncome])
	}
	if totals[models.TypeExpense] != 2300 {
		t.Errorf("расходы: хотели 2300, получили %v", totals[models.TypeExpense])
	}
}

func TestExpenseByCategory(t *testing.T) {
	expenses := analytics.ExpenseByCategory(sampleTransactions())
	if len(expenses) != 2 {
		t.Fatalf("хотели 2 категории, получили %d", len(expenses))
	}
	if expenses["Food"] != 1500 {
		t.Errorf("Food: хотели 1500, получили %v", expenses["Food"])
	}
	if expenses["Transport"] != 800 {
		t.Errorf("Transport: хотели 800, получили %v", expenses["Transport"])
	}
	// категории доходов не должны попадать в расходы
	if _, ok := expenses["Salary"]; ok {
		t.Error("доходная категория попала в расходы")
	}
}

func TestSummarize(t *testing.T) {
	summary := analytics.Summarize(sampleTransactions())
	if summary.TotalIncome != 5700 || summary.TotalExpense != 2300 {
		t.Errorf("итоги не совпали: %+v", summary)
	}
	if summary.Balance != 3400 {
		t.Errorf("баланс: хотели 3400, получили %v", summary.Balance)
	}
	if summary.TransactionCount != 5 {
		t.Errorf("количество: хотели 5, получили %d", summary.TransactionCount)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	summary := analytics.Summarize(nil)
	if summary.TotalIncome != 0 || summary.TotalExpense != 0 || summary.Balance != 0 || summary.TransactionCount != 0 {
		t.Errorf("пустой список должен давать нулевую сводку: %+v", summary)
	}
	if len(summary.ExpenseByCategory) != 0 {
		t.Errorf("пустой список должен давать пустые категории: %+v", summary.ExpenseByCategory)
	}
}
