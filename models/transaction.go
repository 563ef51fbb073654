package models

import "time"

const (
	TypeIncome  = "Income"
	TypeExpense = "Expense"
)

type Transaction struct {
	ID          int       `json:"id" db:"id"`
	UserID      int       `json:"user_id" db:"user_id"`
	Date        time.Time `json:"date" db:"transaction_date"`
	Amount      float64   `json:"amount" db:"amount"`
	Category    string    `json:"category" db:"category"`
	Description string    `json:"description" db:"description"`
	Type        string    `json:"type" db:"type"`
}
