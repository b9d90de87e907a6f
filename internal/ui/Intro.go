package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// IntroModel holds the state for the main menu.
type IntroModel struct {
	selected int // 0: Start Race, 1: High Scores
	width    int
	height   int
}

func NewIntroModel(w, h int) IntroModel {
	return IntroModel{selected: 0, width: w, height: h}
}

func (m IntroModel) Init() tea.Cmd { return nil }

func (m IntroModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h", "right", "l", "tab":
			// Two buttons, so any direction just flips the selection
			if m.selected == 0 {
				m.selected = 1
			} else {
				m.selected = 0
			}
		case "enter":
			return m, func() tea.Msg { return IntroSubmitMsg(m.selected) }
		}
	}
	return m, nil
}

var mazeraceAscii = `
█▀▀▀█▀▀▀▀▀█▀▀▀▀▀▀▀█   ▄▀▄▀█ █▀▄▀▄ ▀▀▀█ █▀▀▀ █▀▀▀█ ▄▀▀▄ ▄▀▀▀ █▀▀▀
█ ▀ █ ▀▀█ ▀ █▀▀▀█ █   █ ▀ █ █ ▀ █ ▄▀▀  █▀▀  █▄▄▄▀ █▄▄█ █    █▀▀
█ █▀▀▀▄ █▀▀▀▀ ▄ █ █   █   █ █   █ █▄▄▄ █▄▄▄ █   █ █  █ ▀▄▄▄ █▄▄▄
█ ▀▀▄ ▀▄▀▀█ ▀▀█ ▀ █
█▄▄▄▄▄▄▄▄▄▄▄▄▄█▄▄▄█   race the agent to the exit
`

var (
	asciiStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("84"))

	introButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Padding(0, 3).
				Margin(1, 2).
				Border(lipgloss.RoundedBorder())

	introSelectedButtonStyle = introButtonStyle.
					Background(lipgloss.Color("84")).
					Foreground(lipgloss.Color("0"))
)

func (m IntroModel) View() string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(asciiStyle.Render(mazeraceAscii))
	sb.WriteString("\n")

	start := introButtonStyle.Render("Start Race")
	scores := introButtonStyle.Render("High Scores")

	if m.selected == 0 {
		start = introSelectedButtonStyle.Render("Start Race")
	} else {
		scores = introSelectedButtonStyle.Render("High Scores")
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center, start, scores)

	content := lipgloss.JoinVertical(lipgloss.Center, sb.String(), buttons)

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
}
