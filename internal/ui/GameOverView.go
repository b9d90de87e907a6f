package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/Mshel/mazerace/internal/game"
)

// GameOverState holds the data for rendering the end-of-race screens.
type GameOverState struct {
	Message      string
	Won          bool
	FinalLevel   int
	TopRuns      []game.RunRecord
	ScreenWidth  int
	ScreenHeight int
}

// Styles for the end screens and the leaderboard
var (
	winMessageStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("84")).
			Padding(2, 5).
			Align(lipgloss.Center)

	lossMessageStyle = winMessageStyle.
				Foreground(lipgloss.Color("9"))

	leaderboardHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("236")).
				Padding(0, 1).
				Align(lipgloss.Center)

	leaderboardRowStyle = lipgloss.NewStyle().
				Padding(0, 1)

	leaderboardBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, true, false).
				BorderForeground(lipgloss.Color("8"))
)

// RenderEndScreen draws the terminal-state message, the final level and the
// best recorded runs.
func (g *GameOverState) RenderEndScreen() string {
	style := lossMessageStyle
	if g.Won {
		style = winMessageStyle
	}
	title := style.Render(g.Message)

	stats := fmt.Sprintf("\nLevel reached: %d\n", g.FinalLevel)

	instruction := lipgloss.NewStyle().Faint(true).Margin(1, 0).
		Render("[Press 'ENTER' to restart, ESC for menu]")

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		stats,
		renderTopRunsTable(g.TopRuns),
		instruction,
	)

	return lipgloss.Place(g.ScreenWidth, g.ScreenHeight,
		lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Render(content),
	)
}

func renderTopRunsTable(runs []game.RunRecord) string {
	if len(runs) == 0 {
		return lipgloss.NewStyle().Faint(true).Render("No recorded runs yet.")
	}

	var tableContent strings.Builder

	nameWidth := 18
	levelWidth := 7
	resultWidth := 8

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		leaderboardHeaderStyle.Width(3).Render("#"),
		leaderboardHeaderStyle.Width(nameWidth).Render("Racer"),
		leaderboardHeaderStyle.Width(levelWidth).Render("Level"),
		leaderboardHeaderStyle.Width(resultWidth).Render("Result"),
	)
	tableContent.WriteString(header + "\n")

	for i, run := range runs {
		result := "lost"
		if run.Won {
			result = "won"
		}

		row := lipgloss.JoinHorizontal(lipgloss.Top,
			leaderboardRowStyle.Width(3).Render(strconv.Itoa(i+1)),
			leaderboardRowStyle.Width(nameWidth).Render(run.PlayerName),
			leaderboardRowStyle.Width(levelWidth).Render(strconv.Itoa(run.LevelReached)),
			leaderboardRowStyle.Width(resultWidth).Render(result),
		)
		tableContent.WriteString(leaderboardBorderStyle.Render(row) + "\n")
	}

	return tableContent.String()
}

// ScoresModel shows the leaderboard from the intro screen, outside any race.
type ScoresModel struct {
	highScores   *game.HighScoreService
	topRuns      []game.RunRecord
	totalRuns    int
	ScreenWidth  int
	ScreenHeight int
	tea.Model
}

func NewScoresModel(highScores *game.HighScoreService, w, h int) ScoresModel {
	m := ScoresModel{
		highScores:   highScores,
		ScreenWidth:  w,
		ScreenHeight: h,
	}

	if highScores != nil {
		topRuns, err := highScores.GetTopRuns(10)
		if err != nil {
			log.Error("Could not load top runs", "error", err)
		}
		m.topRuns = topRuns

		total, err := highScores.GetTotalRunCount()
		if err != nil {
			log.Error("Could not count runs", "error", err)
		}
		m.totalRuns = total
	}

	return m
}

func (m ScoresModel) Init() tea.Cmd { return nil }

func (m ScoresModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "enter", "q":
			return m, func() tea.Msg { return QuitGameMsg{} }
		}
	}
	return m, nil
}

func (m ScoresModel) View() string {
	title := lipgloss.NewStyle().Bold(true).Padding(1, 0).Render("HIGH SCORES")
	subtitle := lipgloss.NewStyle().Faint(true).
		Render(fmt.Sprintf("%d runs recorded", m.totalRuns))
	instruction := lipgloss.NewStyle().Faint(true).Margin(1, 0).
		Render("Press ESC or ENTER to return.")

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		subtitle,
		renderTopRunsTable(m.topRuns),
		instruction,
	)

	return lipgloss.Place(m.ScreenWidth, m.ScreenHeight,
		lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Render(content),
	)
}
