package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/Mshel/mazerace/internal/game"
)

var (
	mazeViewStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	statusPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("8")).
				Padding(1, 2)

	wallColorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	agentStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	exitStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
)

const (
	discMarker = "●"
	exitMarker = "◎"
)

// GameModel renders one race for a single session and translates key
// presses into intents for the game loop.
type GameModel struct {
	tea.Model
	gameManager  *game.GameManager
	playerStyle  lipgloss.Style
	snapshot     game.Snapshot
	ScreenWidth  int
	ScreenHeight int

	raceOver      bool
	gameOverState GameOverState
}

func NewGameModel(gm *game.GameManager, markerColor string, screenWidth int, screenHeight int) GameModel {
	return GameModel{
		gameManager: gm,
		playerStyle: lipgloss.NewStyle().Foreground(lipgloss.Color(markerColor)).Bold(true),
		snapshot:    gm.Snapshot(),

		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		gameOverState: GameOverState{
			ScreenWidth:  screenWidth,
			ScreenHeight: screenHeight,
		},
	}
}

func (m GameModel) Init() tea.Cmd {
	return m.listenForGameUpdates()
}

func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
		m.gameOverState.ScreenWidth = msg.Width
		m.gameOverState.ScreenHeight = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.raceOver {
			switch msg.String() {
			case "enter":
				m.gameManager.IntentChannel <- game.IntentRestart
				m.raceOver = false
			case "esc", "q":
				return m, func() tea.Msg { return QuitGameMsg{} }
			}
			return m, nil
		}

		switch msg.String() {
		case "w", "up":
			m.gameManager.IntentChannel <- game.IntentMoveUp
		case "s", "down":
			m.gameManager.IntentChannel <- game.IntentMoveDown
		case "a", "left":
			m.gameManager.IntentChannel <- game.IntentMoveLeft
		case "d", "right":
			m.gameManager.IntentChannel <- game.IntentMoveRight
		case " ", "space":
			m.gameManager.IntentChannel <- game.IntentSkipLevel
		case "esc":
			return m, func() tea.Msg { return QuitGameMsg{} }
		}
		return m, nil

	case game.GameTickMsg:
		m.snapshot = m.gameManager.Snapshot()
		return m, m.listenForGameUpdates()

	case game.RaceOverMsg:
		m.raceOver = true
		m.gameOverState.Message = msg.Message
		m.gameOverState.Won = msg.Won
		m.gameOverState.FinalLevel = msg.FinalLevel

		if m.gameManager.HighScores != nil {
			topRuns, err := m.gameManager.HighScores.GetTopRuns(10)
			if err != nil {
				log.Error("Could not load top runs", "error", err)
			}
			m.gameOverState.TopRuns = topRuns
		}
		return m, m.listenForGameUpdates()
	}

	return m, nil
}

func (m GameModel) View() string {
	if m.raceOver {
		return m.gameOverState.RenderEndScreen()
	}

	maze := renderMaze(m.snapshot,
		m.playerStyle.Render(discMarker),
		agentStyle.Render(discMarker),
		exitStyle.Render(exitMarker),
	)

	status := m.renderStatusPanel()

	content := lipgloss.JoinHorizontal(lipgloss.Top,
		mazeViewStyle.Render(maze),
		statusPanelStyle.Render(status),
	)

	return lipgloss.Place(m.ScreenWidth, m.ScreenHeight, lipgloss.Center, lipgloss.Center, content)
}

// renderMaze draws the wall lattice with one text row per cell row and a
// three character wide interior, in the classic "+---+" form. Marker
// precedence when cells coincide: player, then agent, then exit.
func renderMaze(snap game.Snapshot, playerMark, agentMark, exitMark string) string {
	var sb strings.Builder

	for row := 0; row < snap.Rows; row++ {
		// Wall row above the cells
		sb.WriteString(wallColorStyle.Render(northWallLine(snap, row)))
		sb.WriteString("\n")

		// Cell row with west/east walls and markers
		for col := 0; col < snap.Cols; col++ {
			idx := row*snap.Cols + col
			if snap.Walls[idx].West {
				sb.WriteString(wallColorStyle.Render("|"))
			} else {
				sb.WriteString(" ")
			}

			marker := " "
			switch idx {
			case snap.PlayerCell:
				marker = playerMark
			case snap.AgentCell:
				marker = agentMark
			case snap.ExitCell:
				marker = exitMark
			}
			sb.WriteString(" " + marker + " ")
		}
		if snap.Walls[row*snap.Cols+snap.Cols-1].East {
			sb.WriteString(wallColorStyle.Render("|"))
		}
		sb.WriteString("\n")
	}

	// Bottom boundary
	sb.WriteString(wallColorStyle.Render(southBoundaryLine(snap)))

	return sb.String()
}

func northWallLine(snap game.Snapshot, row int) string {
	var sb strings.Builder
	sb.WriteString("+")
	for col := 0; col < snap.Cols; col++ {
		if snap.Walls[row*snap.Cols+col].North {
			sb.WriteString("---+")
		} else {
			sb.WriteString("   +")
		}
	}
	return sb.String()
}

func southBoundaryLine(snap game.Snapshot) string {
	var sb strings.Builder
	sb.WriteString("+")
	for col := 0; col < snap.Cols; col++ {
		if snap.Walls[(snap.Rows-1)*snap.Cols+col].South {
			sb.WriteString("---+")
		} else {
			sb.WriteString("   +")
		}
	}
	return sb.String()
}

func (m GameModel) renderStatusPanel() string {
	var statusContent strings.Builder

	statusContent.WriteString(lipgloss.NewStyle().Bold(true).Render("--- Race ---") + "\n")
	statusContent.WriteString(fmt.Sprintf("%s %s\n", m.playerStyle.Render(discMarker), m.gameManager.PlayerName))
	statusContent.WriteString(fmt.Sprintf("Level: %d\n", m.snapshot.Level))
	statusContent.WriteString(fmt.Sprintf("Maze: %dx%d\n", m.snapshot.Rows, m.snapshot.Cols))

	statusContent.WriteString("\n" + lipgloss.NewStyle().Bold(true).Render("--- Markers ---") + "\n")
	statusContent.WriteString(m.playerStyle.Render(discMarker) + " you\n")
	statusContent.WriteString(agentStyle.Render(discMarker) + " agent\n")
	statusContent.WriteString(exitStyle.Render(exitMarker) + " exit\n")

	statusContent.WriteString("\n" + lipgloss.NewStyle().Bold(true).Render("--- Controls ---") + "\n")
	statusContent.WriteString("WASD / Arrows: Move\n")
	statusContent.WriteString("Space: Skip Level\n")
	statusContent.WriteString("Esc: Leave Race\n")
	statusContent.WriteString("Ctrl+C: Quit\n")

	return statusContent.String()
}

func (m GameModel) listenForGameUpdates() tea.Cmd {
	return tea.Tick(game.TickDuration, func(t time.Time) tea.Msg {
		select {
		case msg := <-m.gameManager.UpdateChannel:
			return msg
		default:
			return game.GameTickMsg{}
		}
	})
}
