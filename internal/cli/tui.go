package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pinwall/pinwall/pkg/layout"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// StrategyListModel - Interactive strategy selection
// =============================================================================

// strategyDescriptions maps each strategy to a one-line summary shown in the picker.
var strategyDescriptions = map[layout.Strategy]string{
	layout.StrategyMessy:      "scattered notes with random drift",
	layout.StrategyOrganized:  "anchors in a tidy grid, ideas stacked below",
	layout.StrategyStructured: "chains of connected anchors in levels",
	layout.StrategyDiamond:    "best-connected anchor at the center",
	layout.StrategyCornered:   "objectives up top, goals at the bottom",
}

// StrategyListModel is the bubbletea model for interactive strategy selection.
type StrategyListModel struct {
	Strategies []layout.Strategy
	Cursor     int
	Selected   *layout.Strategy
}

// NewStrategyListModel creates a strategy picker with the cursor on initial,
// or on the first entry when initial is not a known strategy.
func NewStrategyListModel(initial layout.Strategy) StrategyListModel {
	m := StrategyListModel{Strategies: layout.Strategies}
	for i, s := range m.Strategies {
		if s == initial {
			m.Cursor = i
			break
		}
	}
	return m
}

func (m StrategyListModel) Init() tea.Cmd {
	return nil
}

func (m StrategyListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Strategies)-1 {
				m.Cursor++
			}
		case "enter":
			s := m.Strategies[m.Cursor]
			m.Selected = &s
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m StrategyListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Arrangement Strategy"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, s := range m.Strategies {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		line := fmt.Sprintf("%s%-12s  %s", cursor, s, listDimStyle.Render(strategyDescriptions[s]))

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Strategies))))

	return b.String()
}

// pickStrategy runs the interactive strategy picker and returns the choice.
// It returns false when the user quits without selecting.
func pickStrategy(initial layout.Strategy) (layout.Strategy, bool, error) {
	p := tea.NewProgram(NewStrategyListModel(initial))
	final, err := p.Run()
	if err != nil {
		return "", false, fmt.Errorf("run strategy picker: %w", err)
	}
	m, ok := final.(StrategyListModel)
	if !ok || m.Selected == nil {
		return "", false, nil
	}
	return *m.Selected, true, nil
}
