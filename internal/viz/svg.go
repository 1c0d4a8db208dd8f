package viz

import (
	"fmt"
	"math"
	"strings"
)

var svgPalette = []string{"#00ff88", "#00ccff", "#ff00ff", "#ffaa00", "#ff4444", "#ffffff"}

// TrajectorySVG renders XY paths as an SVG document, one polyline per
// track, scaled into the given pixel box with a shared aspect-true
// viewport.
func TrajectorySVG(xs, ys [][]float64, width, height int) string {
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for k := range xs {
		for i := range xs[k] {
			minX = math.Min(minX, xs[k][i])
			maxX = math.Max(maxX, xs[k][i])
			minY = math.Min(minY, ys[k][i])
			maxY = math.Max(maxY, ys[k][i])
		}
	}
	if !(minX < maxX) {
		minX, maxX = minX-1, maxX+1
	}
	if !(minY < maxY) {
		minY, maxY = minY-1, maxY+1
	}

	pad := 10.0
	sx := (float64(width) - 2*pad) / (maxX - minX)
	sy := (float64(height) - 2*pad) / (maxY - minY)
	scale := math.Min(sx, sy)

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height)

	for k := range xs {
		if len(xs[k]) < 2 {
			continue
		}
		color := svgPalette[k%len(svgPalette)]
		sb.WriteString(`<polyline fill="none" stroke="` + color + `" stroke-width="1.5" points="`)
		for i := range xs[k] {
			px := pad + (xs[k][i]-minX)*scale
			py := float64(height) - pad - (ys[k][i]-minY)*scale
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%.2f,%.2f", px, py)
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}
