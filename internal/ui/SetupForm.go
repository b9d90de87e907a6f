package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Define styles
var (
	focusedColor = lipgloss.Color("84")
	blurredColor = lipgloss.Color("240")
	focusedStyle = lipgloss.NewStyle().Foreground(focusedColor)
	blurredStyle = lipgloss.NewStyle().Foreground(blurredColor)
	helpStyle    = blurredStyle

	colorSwatchStyle   = lipgloss.NewStyle().Width(2)
	selectedColorStyle = lipgloss.NewStyle().Width(2)
	buttonStyle        = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder())

	submitButtonStyle = buttonStyle.
				BorderForeground(focusedColor).
				Padding(0, 1)

	blurredButtonStyle = buttonStyle.
				BorderForeground(blurredColor).
				Padding(0, 1)
)

// markerColorOptions are the ANSI colors offered for the player's marker.
// The agent is always red and the exit always white, so those two stay out.
var markerColorOptions = []string{"34", "84", "39", "214", "129", "220", "51", "135"}

// SetupModel collects the racer name and marker color before the race.
type SetupModel struct {
	nameInput  textinput.Model
	colorIndex int
	focusIndex int // 0: Name, 1: Color Select, 2: Submit
	width      int
	height     int
	tea.Model
}

func NewSetupModel(w, h int) SetupModel {
	ti := textinput.New()
	ti.Placeholder = "Your Racer Name"
	ti.Focus()
	ti.CharLimit = 20
	ti.PromptStyle = focusedStyle
	ti.TextStyle = focusedStyle

	return SetupModel{
		nameInput:  ti,
		colorIndex: 0,
		focusIndex: 0,
		width:      w,
		height:     h,
	}
}

// Init sends a command to start the cursor blinking
func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		s := msg.String()

		if s == "esc" {
			return m, func() tea.Msg { return QuitGameMsg{} }
		}

		// Focus navigation (Tab/Shift+Tab/Enter)
		if s == "enter" || s == "tab" || s == "shift+tab" {
			switch m.focusIndex {
			case 0: // Name Input
				switch s {
				case "enter", "tab":
					m.focusIndex = 1
					m.nameInput.Blur()
				case "shift+tab":
					m.focusIndex = 2
					m.nameInput.Blur()
				}

			case 1: // Color Select
				switch s {
				case "enter", "tab":
					m.focusIndex = 2
				case "shift+tab":
					m.focusIndex = 0
					m.nameInput.Focus()
				}

			case 2: // Submit Button
				switch s {
				case "enter":
					name := strings.TrimSpace(m.nameInput.Value())
					if name == "" {
						name = "anonymous racer"
					}
					color := markerColorOptions[m.colorIndex]
					return m, func() tea.Msg {
						return SetupSubmitMsg{Name: name, Color: color}
					}
				case "tab":
					m.focusIndex = 0
					m.nameInput.Focus()
				case "shift+tab":
					m.focusIndex = 1
				}
			}
			return m, nil
		}

		// Color selection navigation
		if m.focusIndex == 1 {
			switch s {
			case "left":
				m.colorIndex = (m.colorIndex - 1 + len(markerColorOptions)) % len(markerColorOptions)
				return m, nil
			case "right":
				m.colorIndex = (m.colorIndex + 1) % len(markerColorOptions)
				return m, nil
			}
		}

		// Remaining keys go to the focused text input.
		if m.focusIndex == 0 {
			var cmd tea.Cmd
			m.nameInput, cmd = m.nameInput.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m SetupModel) View() string {
	center := func(s string) string {
		return lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center).Render(s)
	}

	var b strings.Builder

	b.WriteString(center(m.nameInput.View()))
	b.WriteString("\n\n")

	markerColorPrompt := "Select your marker color (use arrows)"
	var colorPrompt string
	if m.focusIndex == 1 {
		colorPrompt = focusedStyle.Render(markerColorPrompt)
	} else {
		colorPrompt = blurredStyle.Render(markerColorPrompt)
	}
	b.WriteString(center(colorPrompt))
	b.WriteString("\n")

	var colorSwatches strings.Builder
	for i, colorCode := range markerColorOptions {
		style := colorSwatchStyle.Foreground(lipgloss.Color(colorCode))
		if i == m.colorIndex {
			colorSwatches.WriteString(style.Render("█"))
		} else {
			colorSwatches.WriteString(style.Render("░"))
		}
	}
	b.WriteString(center(colorSwatches.String()))
	b.WriteString("\n")

	b.WriteString(center("Racer marker " + selectedColorStyle.
		Foreground(lipgloss.Color(markerColorOptions[m.colorIndex])).
		Render("●")))

	b.WriteString("\n\n")

	submitText := "Start"
	var submitButton string
	if m.focusIndex == 2 {
		submitButton = submitButtonStyle.Render(submitText)
	} else {
		submitButton = blurredButtonStyle.Render(submitText)
	}
	b.WriteString(center(submitButton))
	b.WriteString("\n\n")

	b.WriteString(center(helpStyle.Render("(arrows to pick a color, tab/shift+tab to navigate, enter to confirm, esc to go back)")))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}
