package main

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/milk9111/dropbar/common"
	"github.com/milk9111/dropbar/component"
)

const (
	defaultWidth  = 60
	defaultHeight = 20
	blockRune     = '█'
)

// Model draws the bar as a grid of block runes. Ticks are only scheduled
// while a node is moving.
type Model struct {
	cfg      component.Config
	renderer *component.Renderer
	style    lipgloss.Style
	width    int
	height   int
	quitting bool
}

func New(cfg component.Config) Model {
	return Model{
		cfg:      cfg,
		renderer: component.NewRenderer(cfg),
		style:    stageStyle(cfg),
		width:    defaultWidth,
		height:   defaultHeight,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("dropbar")
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case " ", "enter":
			return m, m.tap()
		}
		return m, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return m, m.tap()
		}
		return m, nil

	case tickMsg:
		m.renderer.Tick()
		if m.renderer.Animator().Running() {
			return m, tickCmd(m.cfg.Interval)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		// one line for help
		m.height = max(msg.Height-1, 1)
		return m, nil
	}

	return m, nil
}

// tap starts the current node and returns the first tick, or nil when the
// tap was ignored.
func (m Model) tap() tea.Cmd {
	if !m.renderer.HandleTap() {
		return nil
	}
	return tickCmd(m.cfg.Interval)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	grid := m.grid()
	lines := make([]string, len(grid))
	for i, row := range grid {
		lines[i] = string(row)
	}

	bar := m.renderer.Bar()
	help := fmt.Sprintf("node %d  dir %+d  space/click: tap  q: quit", bar.CurrIndex(), bar.Dir())
	return m.style.Render(strings.Join(lines, "\n")) + "\n" + helpStyle.Render(help)
}

// grid lays out every node from the head the same way the window stage does,
// with one cell standing in for one pixel.
func (m Model) grid() [][]rune {
	w, h := m.width, m.height
	grid := make([][]rune, h)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", w))
	}

	m.renderer.Bar().Walk(func(n *component.Node) {
		x, size := common.NodeLayout(n.Index, float64(w), m.cfg.Nodes, m.cfg.SizeFactor)
		cells := max(int(math.Round(size)), 1)
		col := int(x)
		for i := 0; i < m.cfg.Parts; i++ {
			y := common.BarPartY(i, n.State.Scale, float64(cells), float64(h), m.cfg.Parts)
			row := min(int(y), h-1)
			if row < 0 {
				continue
			}
			for c := col; c < col+cells && c < w; c++ {
				grid[row][c] = blockRune
			}
		}
	})
	return grid
}
