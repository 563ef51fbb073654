package charts_test

import (
	"bytes"
	"testing"

	"github.com/avoronova/budget-monitor/internal/charts"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestExpensePieChart(t *testing.T) {
	png, err := charts.ExpensePieChart(map[string]float64{
		"Food":      1500,
		"Transport": 800,
		"Bills":     400,
	})
	if err != nil {
		t.Fatalf("ошибка построения диаграммы: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Error("результат не похож на PNG")
	}
}

func TestExpensePieChartEmpty(t *testing.T) {
	for _, data := range []map[string]float64{nil, {}, {"Food": 0}} {
		png, err := charts.ExpensePieChart(data)
		if err != nil {
			t.Fatalf("пустые данные не должны давать ошибку: %v", err)
		}
		if png != nil {
			t.Error("пустые данные должны давать nil")
		}
	}
}

func TestIncomeExpenseBarChart(t *testing.T) {
	png, err := charts.IncomeExpenseBarChart(5700, 2300)
	if err != nil {
		t.Fatalf("ошибка построения графика: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Error("результат не похож на PNG")
	}
}

func TestIncomeExpenseBarChartEmpty(t *testing.T) {
	png, err := charts.IncomeExpenseBarChart(0, 0)
	if err != nil {
		t.Fatalf("нулевые итоги не должны давать ошибку: %v", err)
	}
	if png != nil {
		t.Error("нулевые итоги должны давать nil")
	}
}
