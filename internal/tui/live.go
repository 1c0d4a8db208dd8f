// Package tui plays back a recorded run as a terminal animation.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/The-Cobalt-Develop-Team/phosphorus/internal/viz"
)

const (
	canvasWidth  = 72
	canvasHeight = 22
)

type tickMsg time.Time

// Player is a bubbletea model that replays per-track XY paths frame by
// frame, trailing the full trajectory behind each body.
type Player struct {
	name      string
	xs, ys    [][]float64
	times     []float64
	frame     int
	paused    bool
	done      bool
	frameRate int
}

func NewPlayer(name string, xs, ys [][]float64, times []float64, frameRate int) *Player {
	if frameRate <= 0 {
		frameRate = 30
	}
	return &Player{name: name, xs: xs, ys: ys, times: times, frameRate: frameRate}
}

func (p *Player) samples() int {
	if len(p.times) > 0 {
		return len(p.times)
	}
	if len(p.xs) > 0 {
		return len(p.xs[0])
	}
	return 0
}

func (p *Player) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(p.frameRate), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (p *Player) Init() tea.Cmd {
	return p.tick()
}

func (p *Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return p, tea.Quit
		case " ":
			p.paused = !p.paused
			if !p.paused && !p.done {
				return p, p.tick()
			}
		case "r":
			p.frame = 0
			p.done = false
			if !p.paused {
				return p, p.tick()
			}
		}
	case tickMsg:
		if p.paused || p.done {
			return p, nil
		}
		p.frame++
		if p.frame >= p.samples()-1 {
			p.frame = p.samples() - 1
			p.done = true
			return p, nil
		}
		return p, p.tick()
	}
	return p, nil
}

func (p *Player) View() string {
	n := p.samples()
	if n == 0 {
		return viz.ErrorText.Render("nothing to play") + "\n"
	}

	// Bounds come from the whole run so the viewport stays put.
	frame := viz.NewFrame(canvasWidth, canvasHeight, p.xs, p.ys)
	for k := range p.xs {
		end := p.frame + 1
		if end > len(p.xs[k]) {
			end = len(p.xs[k])
		}
		frame.Trace(p.xs[k][:end], p.ys[k][:end])
		frame.Mark(p.xs[k][end-1], p.ys[k][end-1])
	}

	status := "playing"
	if p.done {
		status = "done"
	} else if p.paused {
		status = "paused"
	}

	t := 0.0
	if p.frame < len(p.times) {
		t = p.times[p.frame]
	}

	header := viz.Title.Render(p.name) + "  " +
		viz.Subtle.Render(fmt.Sprintf("frame %d/%d  t=%.6g  [%s]", p.frame+1, n, t, status))
	hints := viz.KeyHint.Render("space pause · r restart · q quit")

	return header + "\n" + viz.Panel.Render(frame.String()) + "\n" + hints + "\n"
}

// Play runs the player until the user quits.
func Play(p *Player) error {
	_, err := tea.NewProgram(p).Run()
	return err
}
