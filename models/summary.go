package models

type Summary struct {
	TotalIncome       float64            `json:"total_income"`
	TotalExpense      float64            `json:"total_expense"`
	Balance           float64            `json:"balance"`
	TransactionCount  int                `json:"transaction_count"`
	ExpenseByCategory map[string]float64 `json:"expense_by_category"`
}
