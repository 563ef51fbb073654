package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/avoronova/budget-monitor/models"
)

// ErrMissingColumn — в заголовке CSV не нашлось обязательной колонки.
// Импорт целиком невозможен, построчный разбор не начинается.
var ErrMissingColumn = errors.New("отсутствует обязательная колонка")

const defaultDescription = "Imported from CSV"

// Принимаемые варианты имён колонок, в порядке приоритета.
// Сопоставление без учёта регистра; пробелы по краям обрезаются.
var (
	dateColumns        = []string{"date", "transaction_date", "trans_date", "dt", "transaction date", "txn_date"}
	amountColumns      = []string{"amount", "amt", "value", "price", "total"}
	descriptionColumns = []string{"description", "desc", "details", "particular", "particulars", "narration", "remarks"}
	categoryColumns    = []string{"category", "cat", "type", "expense_type", "income_type"}
)

// findColumn ищет колонку по списку синонимов: синонимы перебираются в порядке
// приоритета, колонка, уже занятая другим полем, повторно не используется.
func findColumn(header []string, synonyms []string, used map[int]bool) int {
	for _, syn := range synonyms {
		for idx, col := range header {
			if used[idx] {
				continue
			}
			if col == syn {
				used[idx] = true
				return idx
			}
		}
	}
	return -1
}

// ParseCSV разбирает табличный файл с заголовком в список строк-кандидатов.
// Ошибка одной строки помечает только её; порядок строк сохраняется.
func ParseCSV(r io.Reader) ([]models.CandidateRow, []models.RowStatus, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("ошибка чтения CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%w: date", ErrMissingColumn)
	}

	header := make([]string, len(records[0]))
	for i, col := range records[0] {
		header[i] = strings.ToLower(strings.TrimSpace(col))
	}

	used := make(map[int]bool)
	dateIdx := findColumn(header, dateColumns, used)
	amountIdx := findColumn(header, amountColumns, used)
	descIdx := findColumn(header, descriptionColumns, used)
	catIdx := findColumn(header, categoryColumns, used)

	if dateIdx < 0 {
		return nil, nil, fmt.Errorf("%w: date", ErrMissingColumn)
	}
	if amountIdx < 0 {
		return nil, nil, fmt.Errorf("%w: amount", ErrMissingColumn)
	}

	var candidates []models.CandidateRow
	var statuses []models.RowStatus

	for i, rec := range records[1:] {
		line := i + 2 // нумерация строк файла, заголовок — строка 1
		row, reason := parseRow(rec, dateIdx, amountIdx, descIdx, catIdx)
		if reason != "" {
			statuses = append(statuses, models.RowStatus{Line: line, Accepted: false, Reason: reason})
			continue
		}
		candidates = append(candidates, row)
		statuses = append(statuses, models.RowStatus{Line: line, Accepted: true})
	}

	return candidates, statuses, nil
}

func parseRow(rec []string, dateIdx, amountIdx, descIdx, catIdx int) (models.CandidateRow, string) {
	if dateIdx >= len(rec) || amountIdx >= len(rec) {
		return models.CandidateRow{}, "в строке меньше полей, чем в заголовке"
	}

	date, err := ParseDate(rec[dateIdx])
	if err != nil {
		return models.CandidateRow{}, err.Error()
	}

	amount, err := ParseAmount(rec[amountIdx])
	if err != nil {
		return models.CandidateRow{}, err.Error()
	}

	description := defaultDescription
	if descIdx >= 0 && descIdx < len(rec) {
		if d := strings.TrimSpace(rec[descIdx]); d != "" {
			description = d
		}
	}

	category := ""
	if catIdx >= 0 && catIdx < len(rec) {
		category = strings.TrimSpace(rec[catIdx])
	}

	txType := DetectType(description)
	if category == "" {
		category = DetectCategory(description, txType)
	}

	return models.CandidateRow{
		Date:        date,
		Amount:      amount,
		Description: description,
		Category:    category,
		Type:        txType,
	}, ""
}
