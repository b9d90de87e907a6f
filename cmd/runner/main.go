package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/Mshel/mazerace/internal/game"
	"github.com/Mshel/mazerace/internal/ui"
)

const highScoreDBPath = "mazerace_scores.db"

func main() {
	highScores, err := game.NewHighScoreService(highScoreDBPath)
	if err != nil {
		log.Fatal("Could not open high score storage", "error", err)
	}
	defer highScores.Close()

	controllerModel := ui.NewControllerModel(game.DefaultConfig(), highScores, 80, 24)
	p := tea.NewProgram(controllerModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error %v", err)
		os.Exit(1)
	}
}
