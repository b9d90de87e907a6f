package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/Mshel/mazerace/internal/game"
)

type Screen int

const (
	IntroScreen Screen = iota
	SetupScreen
	GameScreen
	ScoresScreen
)

// Messages for state transitions
type IntroSubmitMsg int // 0 for Start Race, 1 for High Scores
type SetupSubmitMsg struct {
	Name  string
	Color string
}

// QuitGameMsg sends the user back to the intro screen from any sub-model.
type QuitGameMsg struct{}

type ControllerModel struct {
	CurrentScreen Screen
	Config        game.Config
	HighScores    *game.HighScoreService

	IntroModel  tea.Model
	SetupModel  tea.Model
	GameModel   tea.Model
	ScoresModel tea.Model

	gameManager *game.GameManager

	ScreenWidth  int
	ScreenHeight int
}

func NewControllerModel(cfg game.Config, highScores *game.HighScoreService, screenWidth int, screenHeight int) ControllerModel {
	return ControllerModel{
		CurrentScreen: IntroScreen,
		Config:        cfg,
		HighScores:    highScores,

		IntroModel: NewIntroModel(screenWidth, screenHeight),
		SetupModel: NewSetupModel(screenWidth, screenHeight),

		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

func (m ControllerModel) Init() tea.Cmd {
	return m.IntroModel.Init()
}

func (m ControllerModel) View() string {
	switch m.CurrentScreen {
	case IntroScreen:
		return m.IntroModel.View()
	case SetupScreen:
		return m.SetupModel.View()
	case GameScreen:
		if m.GameModel != nil {
			return m.GameModel.View()
		}
		return "Race Loading..."
	case ScoresScreen:
		if m.ScoresModel != nil {
			return m.ScoresModel.View()
		}
		return "High Scores Loading..."
	default:
		return "Unknown Screen"
	}
}

func (m ControllerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	// --- 1. Global Key Check ---
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "ctrl+c" {
			m.stopGame()
			return m, tea.Quit
		}
	}

	// --- 2. State Transition Message Handling ---
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
		// Every screen keeps its own copy of the dimensions.
		m.IntroModel, _ = m.IntroModel.Update(msg)
		m.SetupModel, _ = m.SetupModel.Update(msg)
		if m.GameModel != nil {
			m.GameModel, _ = m.GameModel.Update(msg)
		}
		if m.ScoresModel != nil {
			m.ScoresModel, _ = m.ScoresModel.Update(msg)
		}

	case IntroSubmitMsg:
		if msg == 0 {
			m.CurrentScreen = SetupScreen
			return m, m.SetupModel.Init()
		} else if msg == 1 {
			m.CurrentScreen = ScoresScreen
			m.ScoresModel = NewScoresModel(m.HighScores, m.ScreenWidth, m.ScreenHeight)
			return m, m.ScoresModel.Init()
		}

	case SetupSubmitMsg:
		gameManager, creationErr := game.NewGameManager(m.Config, m.HighScores)
		if creationErr != nil {
			log.Error("Could not start a race", "error", creationErr)
			return m, tea.Quit
		}
		gameManager.PlayerName = msg.Name
		m.gameManager = gameManager
		go gameManager.StartGameLoop()

		m.CurrentScreen = GameScreen
		m.GameModel = NewGameModel(gameManager, msg.Color, m.ScreenWidth, m.ScreenHeight)
		return m, m.GameModel.Init()

	case QuitGameMsg:
		m.stopGame()
		m.CurrentScreen = IntroScreen
		return m, m.IntroModel.Init()

	default:
		// --- 3. Message Delegation ---
		switch m.CurrentScreen {
		case IntroScreen:
			m.IntroModel, cmd = m.IntroModel.Update(msg)
			cmds = append(cmds, cmd)
		case SetupScreen:
			m.SetupModel, cmd = m.SetupModel.Update(msg)
			cmds = append(cmds, cmd)
		case GameScreen:
			if m.GameModel != nil {
				m.GameModel, cmd = m.GameModel.Update(msg)
				cmds = append(cmds, cmd)
			}
		case ScoresScreen:
			if m.ScoresModel != nil {
				m.ScoresModel, cmd = m.ScoresModel.Update(msg)
				cmds = append(cmds, cmd)
			}
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *ControllerModel) stopGame() {
	if m.gameManager != nil {
		m.gameManager.Stop()
		m.gameManager = nil
	}
}
