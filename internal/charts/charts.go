package charts

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/wcharczuk/go-chart/v2"
)

// ExpensePieChart строит круговую диаграмму расходов по категориям в PNG.
// Пустые данные дают nil без ошибки.
func ExpensePieChart(expenses map[string]float64) ([]byte, error) {
	total := 0.0
	for _, amount := range expenses {
		total += amount
	}
	if total == 0 {
		return nil, nil
	}

	categories := make([]string, 0, len(expenses))
	for category := range expenses {
		categories = append(categories, category)
	}
	// сортировка по убыванию суммы, чтобы картинка была детерминированной
	sort.Slice(categories, func(i, j int) bool {
		if expenses[categories[i]] != expenses[categories[j]] {
			return expenses[categories[i]] > expenses[categories[j]]
		}
		return categories[i] < categories[j]
	})

	values := make([]chart.Value, 0, len(categories))
	for _, category := range categories {
		amount := expenses[category]
		percentage := amount / total * 100
		// категории с долей меньше процента загромождают диаграмму
		if percentage <= 1.0 {
			continue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s: %.2f (%.1f%%)", category, amount, percentage),
			Value: amount,
		})
	}
	if len(values) == 0 {
		return nil, nil
	}

	pie := chart.PieChart{
		Title:  "Структура расходов",
		Width:  800,
		Height: 800,
		Values: values,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := pie.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("ошибка отрисовки диаграммы расходов: %w", err)
	}
	return buffer.Bytes(), nil
}

// IncomeExpenseBarChart строит сравнение доходов и расходов в PNG.
func IncomeExpenseBarChart(totalIncome, totalExpense float64) ([]byte, error) {
	if totalIncome == 0 && totalExpense == 0 {
		return nil, nil
	}

	graph := chart.BarChart{
		Title: "Доходы и расходы",
		TitleStyle: chart.Style{
			FontSize:  14,
			FontColor: chart.ColorBlack,
		},
		Width:    800,
		Height:   500,
		BarWidth: 80,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%.0f", v.(float64))
			},
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		},
		Bars: []chart.Value{
			{
				Label: fmt.Sprintf("Доходы: %.2f", totalIncome),
				Value: totalIncome,
				Style: chart.Style{
					StrokeColor: chart.ColorGreen,
					FillColor:   chart.ColorGreen,
				},
			},
			{
				Label: fmt.Sprintf("Расходы: %.2f", totalExpense),
				Value: totalExpense,
				Style: chart.Style{
					StrokeColor: chart.ColorRed,
					FillColor:   chart.ColorRed,
				},
			},
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("ошибка отрисовки графика доходов и расходов: %w", err)
	}
	return buffer.Bytes(), nil
}
