// Package tui provides an interactive browser over the Zernike basis.
package tui

import (
	"fmt"
	"strings"

	"github.com/aosim/zaberration/internal/viz"
	"github.com/aosim/zaberration/internal/zernike"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

type model struct {
	cube   *zernike.Cube
	cursor int
	width  int
	height int
}

// NewModeBrowser generates a basis cube and returns a browser over it.
func NewModeBrowser(modes, size int) (tea.Model, error) {
	cube, err := zernike.Generate(modes, size)
	if err != nil {
		return nil, err
	}
	return &model{cube: cube}, nil
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			if m.cursor > 0 {
				m.cursor--
			}
		case "right", "l":
			if m.cursor < m.cube.Modes()-1 {
				m.cursor++
			}
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			m.cursor = m.cube.Modes() - 1
		}
	}
	return m, nil
}

func (m *model) View() string {
	var b strings.Builder

	title := fmt.Sprintf("zernike mode %d/%d", m.cursor, m.cube.Modes()-1)
	b.WriteString(cyan.Render(title))
	b.WriteString("  ")
	b.WriteString(yellow.Render(zernike.Name(m.cursor)))
	b.WriteString("\n\n")

	width := m.width
	if width <= 0 || width > 100 {
		width = 72
	}
	mode := m.cube.Mode(m.cursor)
	b.WriteString(viz.Heatmap(mode, width))
	b.WriteString("\n\n")
	b.WriteString(white.Render(viz.Profile(mode, 8)))
	b.WriteString("\n\n")
	b.WriteString(dim.Render("←/→ mode   g/G first/last   q quit"))
	return b.String()
}

// Run starts the browser and blocks until it quits.
func Run(modes, size int) error {
	m, err := NewModeBrowser(modes, size)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
