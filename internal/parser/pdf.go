package parser

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"

	"github.com/avoronova/budget-monitor/models"
)

// MaxPDFCandidates ограничивает размер предпросмотра выписки.
const MaxPDFCandidates = 20

// Диапазон правдоподобных сумм; всё вне его считается шумом распознавания.
const (
	minPDFAmount = 1
	maxPDFAmount = 10000000
)

// Шаблоны сумм в порядке приоритета: сначала с явной валютой, затем десятичные,
// затем просто числа из трёх и более цифр.
var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[₹$]\s*(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`),
	regexp.MustCompile(`Rs\.?\s*(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`),
	regexp.MustCompile(`INR\s*(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`),
	regexp.MustCompile(`(?:^|[^\d.])(\d{1,3}(?:,\d{3})*\.\d{2})(?:[^\d]|$)`),
	regexp.MustCompile(`(?:^|[^\d.,])(\d{3,})(?:[^\d.]|$)`),
}

var pdfDatePattern = regexp.MustCompile(`\d{1,2}[-/]\d{1,2}[-/]\d{2,4}`)

// ParsePDF извлекает текст из PDF и сканирует его на суммы.
// PDF без текстового слоя (сканы) даёт пустой результат, а не ошибку.
func ParsePDF(data []byte) ([]models.CandidateRow, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения PDF: %w", err)
	}

	var text strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// страница без извлекаемого текста пропускается
			continue
		}
		text.WriteString(pageText)
		text.WriteString("\n")
	}

	return ScanStatementText(text.String()), nil
}

// ScanStatementText ищет суммы в тексте выписки построчно. Каждый участок
// строки засчитывается только первому совпавшему шаблону.
func ScanStatementText(text string) []models.CandidateRow {
	var candidates []models.CandidateRow

	for _, line := range strings.Split(text, "\n") {
		if len(candidates) >= MaxPDFCandidates {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		claimed := make([]bool, len(line))
		date := time.Now().Truncate(24 * time.Hour)
		if loc := pdfDatePattern.FindStringIndex(line); loc != nil {
			if d, err := ParseDate(line[loc[0]:loc[1]]); err == nil {
				date = d
				// цифры даты не должны засчитываться как сумма
				for i := loc[0]; i < loc[1]; i++ {
					claimed[i] = true
				}
			}
		}

		for _, amountStr := range matchAmounts(line, claimed) {
			if len(candidates) >= MaxPDFCandidates {
				break
			}
			amount, err := ParseAmount(amountStr)
			if err != nil {
				continue
			}
			if amount < minPDFAmount || amount > maxPDFAmount {
				continue
			}

			description := truncateRunes(line, 100)
			txType := DetectType(description)
			candidates = append(candidates, models.CandidateRow{
				Date:        date,
				Amount:      amount,
				Description: description,
				Category:    DetectCategory(description, txType),
				Type:        txType,
			})
		}
	}

	return candidates
}

// matchAmounts возвращает захваты всех шаблонов по строке; позиции, уже
// занятые более приоритетным шаблоном или датой, повторно не засчитываются.
func matchAmounts(line string, claimed []bool) []string {
	var amounts []string

	for _, re := range amountPatterns {
		for _, idx := range re.FindAllStringSubmatchIndex(line, -1) {
			start, end := idx[2], idx[3]
			if start < 0 {
				continue
			}
			overlap := false
			for i := start; i < end; i++ {
				if claimed[i] {
					overlap = true
					break
				}
			}
			if overlap {
				continue
			}
			for i := start; i < end; i++ {
				claimed[i] = true
			}
			amounts = append(amounts, line[start:end])
		}
	}

	return amounts
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
