package parser

import (
	"fmt"
	"strings"
	"time"
)

// Форматы дат в порядке приоритета: ISO, затем день-первый, затем месяц-первый.
// Ненулевые layout-числа ("2", "1") принимают и одно-, и двузначные значения.
var dateFormats = []string{
	"2006-01-02",
	"2006-1-2",
	"2-1-2006",
	"2/1/2006",
	"2006/1/2",
	"1/2/2006",
	"1-2-2006",
	"2.1.2006",
	"2 Jan 2006",
	"Jan 2, 2006",
	"2-1-06",
	"2/1/06",
}

// ParseDate пробует форматы по очереди, первый удачный выигрывает.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("некорректная дата %q", s)
}
