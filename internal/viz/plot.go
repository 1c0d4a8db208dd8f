package viz

import (
	"github.com/guptarohit/asciigraph"
)

// SeriesPlot renders one or more time series as an ascii line chart.
func SeriesPlot(series [][]float64, width, height int, caption string) string {
	if len(series) == 0 {
		return ""
	}
	return asciigraph.PlotMany(series,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Caption(caption),
	)
}

// TrajectoryPlot renders XY paths on a braille canvas, one line per
// track, equal scaling derived from the union of bounds.
func TrajectoryPlot(xs, ys [][]float64, width, height int) string {
	f := NewFrame(width, height, xs, ys)
	for k := range xs {
		f.Trace(xs[k], ys[k])
	}
	return f.String()
}
