package game

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
)

const runsTableName = "race_runs"

// HighScoreService persists finished runs so the end screen can show a
// leaderboard. Only results are stored, never in-progress game state.
type HighScoreService struct {
	db *sql.DB
}

type RunRecord struct {
	ID           int
	PlayerName   string
	LevelReached int
	Won          bool
	CreatedAt    time.Time
}

func NewHighScoreService(dbPath string) (*HighScoreService, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening high score database: %w", err)
	}

	service := &HighScoreService{db: db}
	if err := service.createTable(); err != nil {
		return nil, err
	}
	return service, nil
}

func (serviceImpl *HighScoreService) createTable() error {
	const createTableSQL = `
	CREATE TABLE IF NOT EXISTS ` + runsTableName + ` (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		player_name TEXT NOT NULL,
		level_reached INTEGER NOT NULL,
		won INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

	_, err := serviceImpl.db.Exec(createTableSQL)
	if err != nil {
		return fmt.Errorf("failed to execute CREATE TABLE: %w", err)
	}
	return nil
}

func (serviceImpl *HighScoreService) SaveRun(playerName string, levelReached int, won bool) error {
	const insertSQL = `
	INSERT INTO ` + runsTableName + ` (player_name, level_reached, won)
	VALUES (?, ?, ?);`

	_, err := serviceImpl.db.Exec(insertSQL, playerName, levelReached, won)
	if err != nil {
		return fmt.Errorf("failed to insert run for %s: %w", playerName, err)
	}
	return nil
}

// GetTopRuns retrieves the best runs, wins first, then by level reached.
func (serviceImpl *HighScoreService) GetTopRuns(limit int) ([]RunRecord, error) {
	const selectSQL = `
	SELECT id, player_name, level_reached, won, created_at
	FROM ` + runsTableName + `
	ORDER BY won DESC, level_reached DESC, created_at ASC
	LIMIT ?;`

	rows, err := serviceImpl.db.Query(selectSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var run RunRecord
		var createdAt string
		if err := rows.Scan(&run.ID, &run.PlayerName, &run.LevelReached, &run.Won, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan run row: %w", err)
		}

		parsedCreatedAt, parseErr := time.Parse(time.RFC3339, createdAt)
		if parseErr == nil {
			run.CreatedAt = parsedCreatedAt
		} else {
			log.Warn("Time parsing error for run", "id", run.ID, "raw", createdAt, "error", parseErr)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating run rows: %w", err)
	}
	return runs, nil
}

func (serviceImpl *HighScoreService) GetTotalRunCount() (int, error) {
	const countSQL = `SELECT COUNT(*) FROM ` + runsTableName + `;`

	var count int
	if err := serviceImpl.db.QueryRow(countSQL).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to get total run count: %w", err)
	}
	return count, nil
}

func (serviceImpl *HighScoreService) Close() error {
	return serviceImpl.db.Close()
}
