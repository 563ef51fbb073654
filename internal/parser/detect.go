package parser

import (
	"strings"

	"github.com/avoronova/budget-monitor/models"
)

// Предлагаемые наборы категорий; категория при этом остаётся свободной строкой.
var (
	IncomeCategories = []string{"Salary", "Freelance", "Investment", "Gift", "Other"}
	ExpenseCategories = []string{"Food", "Transport", "Shopping", "Bills", "Entertainment",
		"Healthcare", "Education", "Other"}
)

var incomeKeywords = []string{
	"salary", "freelance", "income", "payment received", "credit",
	"refund", "bonus", "interest", "dividend", "gift received",
	"cashback", "reward", "commission", "investment return", "profit", "revenue",
}

var expenseKeywords = []string{
	"payment", "purchase", "bill", "expense", "debit", "shopping", "food",
	"grocery", "restaurant", "transport", "fuel", "electricity", "water",
	"rent", "emi", "loan", "medical", "doctor", "hospital", "medicine",
	"entertainment", "movie", "subscription", "education", "fee", "tuition",
}

var expenseCategoryKeywords = []struct {
	category string
	words    []string
}{
	{"Food", []string{"food", "grocery", "restaurant", "meal", "lunch", "dinner", "breakfast", "cafe", "snack"}},
	{"Transport", []string{"transport", "taxi", "uber", "bus", "metro", "train", "fuel", "petrol", "diesel", "parking"}},
	{"Shopping", []string{"shopping", "clothes", "shoes", "fashion", "mall"}},
	{"Bills", []string{"bill", "electricity", "water", "gas", "internet", "mobile", "phone", "utility", "rent", "emi"}},
	{"Entertainment", []string{"entertainment", "movie", "cinema", "game", "sport", "concert", "show"}},
	{"Healthcare", []string{"health", "medical", "doctor", "hospital", "medicine", "pharmacy", "clinic"}},
	{"Education", []string{"education", "school", "college", "course", "book", "tuition", "fee", "study"}},
}

var incomeCategoryKeywords = []struct {
	category string
	words    []string
}{
	{"Salary", []string{"salary", "wage", "payroll"}},
	{"Freelance", []string{"freelance", "contract", "project", "commission"}},
	{"Investment", []string{"investment", "dividend", "interest", "stock", "mutual fund"}},
	{"Gift", []string{"gift", "present"}},
}

// DetectType угадывает тип транзакции по ключевым словам описания.
// Слова доходов проверяются первыми, при отсутствии совпадений — Expense.
func DetectType(description string) string {
	d := strings.ToLower(description)
	for _, w := range incomeKeywords {
		if strings.Contains(d, w) {
			return models.TypeIncome
		}
	}
	for _, w := range expenseKeywords {
		if strings.Contains(d, w) {
			return models.TypeExpense
		}
	}
	return models.TypeExpense
}

// DetectCategory угадывает категорию по описанию для заданного типа.
func DetectCategory(description, txType string) string {
	d := strings.ToLower(description)
	groups := expenseCategoryKeywords
	if txType == models.TypeIncome {
		groups = incomeCategoryKeywords
	}
	for _, g := range groups {
		for _, w := range g.words {
			if strings.Contains(d, w) {
				return g.category
			}
		}
	}
	return "Other"
}
