package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// CapacityChart plots capacity against growth event number.
func CapacityChart(history []int, width, height int) string {
	if len(history) == 0 {
		return Subtle.Render("no capacity data")
	}
	data := make([]float64, len(history))
	for i, c := range history {
		data[i] = float64(c)
	}
	if len(data) == 1 {
		// asciigraph needs two points to draw a line
		data = append(data, data[0])
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("capacity per growth event"),
	)
}

// SeriesChart plots an arbitrary series, used for per-size benchmark costs.
func SeriesChart(values []float64, caption string, width, height int) string {
	if len(values) == 0 {
		return Subtle.Render("no data")
	}
	if len(values) == 1 {
		values = append(values, values[0])
	}
	return asciigraph.Plot(values,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// GrowthSequence renders a capacity sequence as "10 → 15 → 22".
func GrowthSequence(caps []int) string {
	parts := make([]string, len(caps))
	for i, c := range caps {
		parts[i] = fmt.Sprint(c)
	}
	return strings.Join(parts, " → ")
}
