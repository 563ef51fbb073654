package parser

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// amountCleaner убирает символы валют и разделители тысяч ("₹1,234.56" → "1234.56").
var amountCleaner = strings.NewReplacer(
	"₹", "",
	"$", "",
	"Rs.", "",
	"Rs", "",
	"INR", "",
	",", "",
	" ", "",
)

// ParseAmount приводит строку суммы к числу.
func ParseAmount(s string) (float64, error) {
	cleaned := strings.TrimSpace(amountCleaner.Replace(s))
	if cleaned == "" {
		return 0, fmt.Errorf("пустое значение суммы")
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, fmt.Errorf("некорректная сумма %q", s)
	}
	f, _ := d.Float64()
	return f, nil
}
