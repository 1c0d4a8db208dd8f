package viz

import (
	"strings"
	"testing"
)

func litCells(s string) int {
	lit := 0
	for _, r := range s {
		if r > 0x2800 && r <= 0x28FF {
			lit++
		}
	}
	return lit
}

func TestFrameMark(t *testing.T) {
	f := NewFrame(10, 4, [][]float64{{0, 1}}, [][]float64{{0, 1}})
	f.Mark(0, 0)
	f.Mark(1, 1)
	if litCells(f.String()) == 0 {
		t.Fatal("marks should light cells")
	}

	// Points outside the viewport are dropped, not wrapped.
	g := NewFrame(10, 4, [][]float64{{0, 1}}, [][]float64{{0, 1}})
	g.Mark(50, -50)
	if litCells(g.String()) != 0 {
		t.Error("off-frame mark should not light anything")
	}
}

func TestFrameRendersOnlyBraille(t *testing.T) {
	f := NewFrame(6, 3, [][]float64{{0, 1, 2}}, [][]float64{{0, 2, 0}})
	f.Trace([]float64{0, 1, 2}, []float64{0, 2, 0})
	for _, line := range strings.Split(strings.TrimRight(f.String(), "\n"), "\n") {
		for _, r := range line {
			if r < 0x2800 || r > 0x28FF {
				t.Fatalf("non-braille rune %#x in output", r)
			}
		}
	}
}

func TestFrameSegmentConnects(t *testing.T) {
	// A steep and a shallow segment both light at least one dot per step
	// of their longer extent.
	f := NewFrame(10, 10, [][]float64{{0, 1}}, [][]float64{{0, 1}})
	f.Trace([]float64{0, 1}, []float64{0, 1})
	diagonal := litCells(f.String())
	if diagonal < 10 {
		t.Errorf("diagonal lights %d cells, want a connected line", diagonal)
	}

	// Bounds widened by a second path so the traced segment really is
	// near-horizontal in dot space.
	g := NewFrame(10, 10, [][]float64{{0, 1}, {0, 1}}, [][]float64{{0, 0.01}, {0, 1}})
	g.Trace([]float64{0, 1}, []float64{0, 0.01})
	if litCells(g.String()) < 10 {
		t.Error("near-horizontal trace should still be connected")
	}
}

func TestFrameTraceStaysInBounds(t *testing.T) {
	xs := [][]float64{{0, 1, 2, 3}, {-5, 0, 5, 10}}
	ys := [][]float64{{0, 1, 0, -1}, {2, 2, 2, 2}}
	out := TrajectoryPlot(xs, ys, 20, 8)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 8 {
		t.Fatalf("plot has %d rows, want 8", len(lines))
	}
	for _, line := range lines {
		if len([]rune(line)) != 20 {
			t.Fatalf("row %q is not 20 cells wide", line)
		}
	}
	if litCells(out) == 0 {
		t.Error("plot should contain lit braille cells")
	}
}

func TestFrameSinglePoint(t *testing.T) {
	out := TrajectoryPlot([][]float64{{1}}, [][]float64{{1}}, 10, 4)
	if litCells(out) != 1 {
		t.Errorf("single point should light exactly one cell, lit %d", litCells(out))
	}
}

func TestSeriesPlot(t *testing.T) {
	series := [][]float64{{0, 1, 0, -1, 0}}
	out := SeriesPlot(series, 40, 8, "wave")
	if !strings.Contains(out, "wave") {
		t.Error("caption missing")
	}
	if SeriesPlot(nil, 40, 8, "") != "" {
		t.Error("no series should render nothing")
	}
}

func TestTrajectorySVG(t *testing.T) {
	xs := [][]float64{{0, 1, 2}, {0, -1, -2}}
	ys := [][]float64{{0, 1, 4}, {0, 1, 4}}
	svg := TrajectorySVG(xs, ys, 400, 300)

	if !strings.HasPrefix(svg, `<?xml`) {
		t.Error("missing xml header")
	}
	if strings.Count(svg, "<polyline") != 2 {
		t.Errorf("want 2 polylines, got %d", strings.Count(svg, "<polyline"))
	}
	if !strings.Contains(svg, "</svg>") {
		t.Error("unterminated svg")
	}
}
