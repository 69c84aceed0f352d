// Package tui is the terminal front end: the same board and controls as the
// GUI, rendered with lipgloss and driven by bubbletea.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"lifepad/internal/app"
	"lifepad/pkg/life"
	"lifepad/pkg/pattern"
)

const (
	// Each board cell is two terminal columns wide so cells come out
	// roughly square. The board content sits inside a one-column border.
	cellWidth       = 2
	boardOriginX    = 1
	boardOriginY    = 1
	historyCapacity = 120
)

var (
	boardStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
	aliveStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	statsStyle  = lipgloss.NewStyle().Padding(0, 2)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

var (
	aliveCell = aliveStyle.Render("██")
	deadCell  = "  "
)

// TickMsg drives one simulation tick.
type TickMsg time.Time

// Model is the bubbletea state for the terminal front end.
type Model struct {
	cfg        *app.Config
	sim        *life.Simulation
	seed       int64
	tps        int
	popHistory []float64
}

// NewModel builds the terminal front end around the provided simulation.
func NewModel(cfg *app.Config, sim *life.Simulation) Model {
	return Model{
		cfg:        cfg,
		sim:        sim,
		seed:       cfg.Seed,
		tps:        cfg.TPS,
		popHistory: make([]float64, 0, historyCapacity),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.tps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd { return m.tick() }

// Update handles key, mouse and tick messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.sim.TogglePaused()
		case "enter":
			m.sim.SetPaused(false)
		case "n":
			if m.sim.Paused() {
				m.sim.SingleStep()
				m.record()
			}
		case "r":
			m.cfg.Populate(m.sim, m.seed)
			m.popHistory = m.popHistory[:0]
		case "s":
			m.seed = time.Now().UnixNano()
			m.cfg.Populate(m.sim, m.seed)
			m.popHistory = m.popHistory[:0]
		case "c":
			m.sim.Clear()
			m.popHistory = m.popHistory[:0]
		case "g":
			m.stampGlider()
		case "+", "=":
			if m.tps < 60 {
				m.tps++
			}
		case "-", "_":
			if m.tps > 1 {
				m.tps--
			}
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if x, y, ok := m.cellAt(msg.X, msg.Y); ok {
				m.sim.ToggleCell(x, y)
			}
		}
	case TickMsg:
		if !m.sim.Paused() {
			m.sim.Step()
			m.record()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) record() {
	m.popHistory = append(m.popHistory, float64(m.sim.Population()))
	if len(m.popHistory) > historyCapacity {
		m.popHistory = m.popHistory[1:]
	}
}

func (m *Model) stampGlider() {
	p, ok := pattern.Get("glider")
	if !ok {
		return
	}
	w, h := m.sim.Dimensions()
	pw, ph := p.Size()
	p.Stamp(m.sim, (w-pw)/2, (h-ph)/2)
}

// cellAt maps a terminal coordinate to a board cell. The second column of a
// cell counts as the cell too; clicks on the border or past the board are
// rejected.
func (m Model) cellAt(tx, ty int) (int, int, bool) {
	if tx < boardOriginX || ty < boardOriginY {
		return 0, 0, false
	}
	x := (tx - boardOriginX) / cellWidth
	y := ty - boardOriginY
	w, h := m.sim.Dimensions()
	if x >= w || y >= h {
		return 0, 0, false
	}
	return x, y, true
}

// View renders the board next to the stats panel.
func (m Model) View() string {
	board := boardStyle.Render(m.renderBoard())
	stats := statsStyle.Render(m.renderStats())
	return lipgloss.JoinHorizontal(lipgloss.Top, board, stats) + "\n"
}

func (m Model) renderBoard() string {
	w, h := m.sim.Dimensions()
	cells := m.sim.Cells()
	var b strings.Builder
	for y := 0; y < h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < w; x++ {
			if cells[y*w+x] {
				b.WriteString(aliveCell)
			} else {
				b.WriteString(deadCell)
			}
		}
	}
	return b.String()
}

func (m Model) renderStats() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("LIFEPAD") + "\n")
	status := "RUNNING"
	if m.sim.Paused() {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")
	s.WriteString(labelStyle.Render("Generation") + valueStyle.Render(fmt.Sprintf("%d", m.sim.Generation())) + "\n")
	s.WriteString(labelStyle.Render("Population") + valueStyle.Render(fmt.Sprintf("%d", m.sim.Population())) + "\n")
	s.WriteString(labelStyle.Render("Tick") + valueStyle.Render(fmt.Sprintf("%d/s", m.tps)) + "\n")
	s.WriteString(labelStyle.Render("Seed") + valueStyle.Render(fmt.Sprintf("%d", m.seed)) + "\n")
	if len(m.popHistory) > 1 {
		chart := asciigraph.Plot(m.popHistory, asciigraph.Height(5), asciigraph.Width(30), asciigraph.Caption("population"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	s.WriteString(helpStyle.Render("click: toggle cell\nspace: pause/resume  n: step\nr: reseed  s: new seed\nc: clear  g: glider  +/-: speed\nq: quit"))
	return s.String()
}

// Run starts the terminal front end and blocks until the user quits.
func Run(cfg *app.Config, sim *life.Simulation) error {
	p := tea.NewProgram(NewModel(cfg, sim), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
