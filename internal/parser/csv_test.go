package parser_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/avoronova/budget-monitor/internal/parser"
	"github.com/avoronova/budget-monitor/models"
)

func TestParseCSVHeaderVariants(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"канонические имена", "date,amount,description,category"},
		{"верхний регистр", "DATE,AMOUNT,DESCRIPTION,CATEGORY"},
		{"смешанный регистр", "Date,Amount,Description,Category"},
		{"синонимы", "txn_date,amt,particulars,cat"},
		{"сокращения", "dt,value,desc,expense_type"},
		{"пробелы в заголовке", " date , amount , narration , category "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := tt.header + "\n2024-01-15,100,Grocery store,Food\n"
			candidates, statuses, err := parser.ParseCSV(strings.NewReader(input))
			if err != nil {
				t.Fatalf("ошибка разбора CSV: %v", err)
			}
			if len(candidates) != 1 {
				t.Fatalf("хотели 1 кандидата, получили %d", len(candidates))
			}
			if !statuses[0].Accepted {
				t.Errorf("строка отклонена: %s", statuses[0].Reason)
			}
			if candidates[0].Amount != 100 {
				t.Errorf("сумма: хотели 100, получили %v", candidates[0].Amount)
			}
		})
	}
}

func TestParseCSVMissingColumn(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"нет колонки даты", "amount,description\n100,test\n"},
		{"нет колонки суммы", "date,description\n2024-01-15,test\n"},
		{"пустой файл", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := parser.ParseCSV(strings.NewReader(tt.input))
			if !errors.Is(err, parser.ErrMissingColumn) {
				t.Errorf("хотели ErrMissingColumn, получили %v", err)
			}
		})
	}
}

func TestParseCSVInvalidRowDoesNotAbort(t *testing.T) {
	input := "date,amount,description\n" +
		"2024-01-01,100,first\n" +
		"2024-01-02,not-a-number,second\n" +
		"2024-01-03,300,third\n"

	candidates, statuses, err := parser.ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ошибка разбора CSV: %v", err)
	}
	if len(candidates) != 2 {
		t.Fatalf("хотели 2 кандидата, получили %d", len(candidates))
	}
	if len(statuses) != 3 {
		t.Fatalf("хотели 3 статуса, получили %d", len(statuses))
	}
	if !statuses[0].Accepted || statuses[1].Accepted || !statuses[2].Accepted {
		t.Errorf("неверные статусы строк: %+v", statuses)
	}
	if statuses[1].Reason == "" {
		t.Error("у отклонённой строки нет причины")
	}
	// порядок входных строк сохраняется
	if candidates[0].Amount != 100 || candidates[1].Amount != 300 {
		t.Errorf("нарушен порядок кандидатов: %+v", candidates)
	}
}

func TestParseCSVDateFormats(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Time
	}{
		{"2024-01-15", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"15-01-2024", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"15/01/2024", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"2024/01/15", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"15.01.2024", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"15 Jan 2024", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			input := "date,amount\n" + tt.raw + ",50\n"
			candidates, _, err := parser.ParseCSV(strings.NewReader(input))
			if err != nil {
				t.Fatalf("ошибка разбора CSV: %v", err)
			}
			if len(candidates) != 1 {
				t.Fatalf("дата %q не распознана", tt.raw)
			}
			if !candidates[0].Date.Equal(tt.want) {
				t.Errorf("дата: хотели %v, получили %v", tt.want, candidates[0].Date)
			}
		})
	}
}

func TestParseCSVDefaults(t *testing.T) {
	input := "date,amount\n2024-01-15,100\n"
	candidates, _, err := parser.ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ошибка разбора CSV: %v", err)
	}
	if candidates[0].Description != "Imported from CSV" {
		t.Errorf("описание по умолчанию: получили %q", candidates[0].Description)
	}
	if candidates[0].Category == "" {
		t.Error("категория не заполнена")
	}
}

// Пример из постановки задачи: зарплата за январь.
func TestParseCSVSalaryRow(t *testing.T) {
	input := "date,amount,description,category\n2024-01-15,5000,January Salary,Salary\n"
	candidates, statuses, err := parser.ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ошибка разбора CSV: %v", err)
	}
	if len(candidates) != 1 || !statuses[0].Accepted {
		t.Fatalf("строка не принята: %+v", statuses)
	}

	got := candidates[0]
	want := models.CandidateRow{
		Date:        time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Amount:      5000.0,
		Description: "January Salary",
		Category:    "Salary",
		Type:        models.TypeIncome,
	}
	if !got.Date.Equal(want.Date) || got.Amount != want.Amount ||
		got.Description != want.Description || got.Category != want.Category || got.Type != want.Type {
		t.Errorf("кандидат не совпал: получили %+v, хотели %+v", got, want)
	}
}

func TestParseCSVShortRow(t *testing.T) {
	input := "date,amount,description\n2024-01-15\n2024-01-16,200,ok\n"
	candidates, statuses, err := parser.ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ошибка разбора CSV: %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("хотели 1 кандидата, получили %d", len(candidates))
	}
	if statuses[0].Accepted {
		t.Error("короткая строка не должна приниматься")
	}
}
