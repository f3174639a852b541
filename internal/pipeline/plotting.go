package pipeline

import (
	"fmt"
	"sort"
	"strings"
)

// PlotColumnTerminal renders values as a horizontal bar chart on stdout,
// sorted ascending. Meant for eyeballing a scaled column from the CLI.
func PlotColumnTerminal(values []float64, title string) {
	if len(values) == 0 {
		fmt.Printf("\n%s: no values to plot\n", title)
		return
	}

	type rowValue struct {
		Row   int
		Value float64
	}

	rows := make([]rowValue, len(values))
	for i := range values {
		rows[i] = rowValue{Row: i, Value: values[i]}
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Value < rows[j].Value
	})

	minValue := rows[0].Value
	maxValue := rows[len(rows)-1].Value

	fmt.Printf("\n%s (ascending):\n", title)
	fmt.Println("     Row | Value    | Bar")
	fmt.Println("---------|----------|" + strings.Repeat("-", 50))

	maxBarWidth := 50
	for _, rv := range rows {
		var barWidth int
		if maxValue != minValue {
			barWidth = int((rv.Value - minValue) / (maxValue - minValue) * float64(maxBarWidth))
		} else {
			barWidth = maxBarWidth / 2
		}

		bar := strings.Repeat("█", barWidth)
		if barWidth == 0 {
			bar = "▏"
		}

		fmt.Printf("%8d | %.6f | %s\n", rv.Row, rv.Value, bar)
	}

	fmt.Printf("\nScale: min=%.6f, max=%.6f\n", minValue, maxValue)
}
