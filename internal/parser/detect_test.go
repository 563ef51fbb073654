package parser_test

import (
	"testing"

	"github.com/avoronova/budget-monitor/internal/parser"
	"github.com/avoronova/budget-monitor/models"
)

func TestDetectType(t *testing.T) {
	tests := []struct {
		description string
		want        string
	}{
		{"Monthly salary from employer", models.TypeIncome},
		{"Cashback reward", models.TypeIncome},
		{"Dividend payout", models.TypeIncome},
		{"Electricity bill", models.TypeExpense},
		{"Uber ride", models.TypeExpense},
		{"Something unrecognizable", models.TypeExpense},
	}

	for _, tt := range tests {
		if got := parser.DetectType(tt.description); got != tt.want {
			t.Errorf("DetectType(%q) = %q, хотели %q", tt.description, got, tt.want)
		}
	}
}

func TestDetectCategory(t *testing.T) {
	tests := []struct {
		description string
		txType      string
		want        string
	}{
		{"Grocery store purchase", models.TypeExpense, "Food"},
		{"Metro card recharge", models.TypeExpense, "Transport"},
		{"Internet provider", models.TypeExpense, "Bills"},
		{"Pharmacy", models.TypeExpense, "Healthcare"},
		{"Mystery spend", models.TypeExpense, "Other"},
		{"Monthly payroll", models.TypeIncome, "Salary"},
		{"Stock dividend", models.TypeIncome, "Investment"},
		{"Birthday present", models.TypeIncome, "Gift"},
		{"Unknown inflow", models.TypeIncome, "Other"},
	}

	for _, tt := range tests {
		if got := parser.DetectCategory(tt.description, tt.txType); got != tt.want {
			t.Errorf("DetectCategory(%q, %s) = %q, хотели %q", tt.description, tt.txType, got, tt.want)
		}
	}
}
