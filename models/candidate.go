package models

import "time"

// CandidateRow — неподтверждённая строка импорта, полученная из CSV или PDF.
// Хранится только в ответе API до подтверждения пользователем.
type CandidateRow struct {
	Date        time.Time `json:"date"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Category    string    `json:"category,omitempty"`
	Type        string    `json:"type,omitempty"`
}

// RowStatus — результат обработки одной строки загруженного файла.
type RowStatus struct {
	Line     int    `json:"line"`
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty"`
}
