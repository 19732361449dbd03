// Package storage keeps the history of finished runs in SQLite, using the
// pure-Go modernc.org/sqlite driver so builds need no CGO.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ErrInvalidRunID is returned for run IDs that are not UUIDs.
var ErrInvalidRunID = errors.New("storage: invalid run id")

// sqliteTime is the layout of CURRENT_TIMESTAMP.
const sqliteTime = "2006-01-02 15:04:05"

// migrations are applied in order; the database's user_version records how
// many have run. Append only.
var migrations = []string{
	`CREATE TABLE scores (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id     TEXT NOT NULL UNIQUE,
		game_id    TEXT NOT NULL,
		score      INTEGER NOT NULL,
		lines      INTEGER NOT NULL DEFAULT 0,
		pieces     INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX idx_scores_top ON scores(game_id, score DESC, lines DESC)`,
}

const entryColumns = "id, run_id, game_id, score, lines, pieces, created_at"

// Store is a handle to the scores database. It is safe for concurrent use.
type Store struct {
	db *sql.DB
}

// RunResult is the outcome of one finished session.
type RunResult struct {
	GameID string
	Score  int
	Lines  int
	Pieces int
}

// ScoreEntry is a stored run.
type ScoreEntry struct {
	ID        int64
	RunID     string
	GameID    string
	Score     int
	Lines     int
	Pieces    int
	CreatedAt time.Time
}

// Open opens or creates the database at path, creating parent directories
// and bringing the schema up to date. A leading ~ is the home directory.
func Open(path string) (*Store, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory for %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return s, nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// SchemaVersion returns the number of applied migrations.
func (s *Store) SchemaVersion() (int, error) {
	var v int
	err := s.db.QueryRow("PRAGMA user_version").Scan(&v)
	return v, err
}

func (s *Store) migrate() error {
	version, err := s.SchemaVersion()
	if err != nil {
		return err
	}
	if version > len(migrations) {
		return fmt.Errorf("database schema version %d is newer than this build (%d)", version, len(migrations))
	}

	for i := version; i < len(migrations); i++ {
		tx, err := s.db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(migrations[i]); err != nil {
			tx.Rollback()
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		// PRAGMA takes no bound parameters
		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", i+1)); err != nil {
			tx.Rollback()
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveScore records a finished run and returns its new run ID.
func (s *Store) SaveScore(r RunResult) (string, error) {
	if r.GameID == "" {
		return "", errors.New("storage: empty game id")
	}
	runID := uuid.NewString()
	_, err := s.db.Exec(
		"INSERT INTO scores (run_id, game_id, score, lines, pieces) VALUES (?, ?, ?, ?, ?)",
		runID, r.GameID, r.Score, r.Lines, r.Pieces,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save score: %w", err)
	}
	return runID, nil
}

// RunByID looks up one run. A well-formed ID that matches nothing returns
// nil and no error.
func (s *Store) RunByID(runID string) (*ScoreEntry, error) {
	if _, err := uuid.Parse(runID); err != nil {
		return nil, fmt.Errorf("%w %q", ErrInvalidRunID, runID)
	}
	row := s.db.QueryRow("SELECT "+entryColumns+" FROM scores WHERE run_id = ?", runID)
	e, err := scanEntry(row)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &e, nil
}

// TopScores returns up to limit runs of a mode, best first. Equal scores
// rank by lines, then by age. A non-positive limit means 10.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryEntries(
		"SELECT "+entryColumns+" FROM scores WHERE game_id = ? ORDER BY score DESC, lines DESC, id ASC LIMIT ?",
		gameID, limit,
	)
}

// AllScores returns every run of a mode in TopScores order.
func (s *Store) AllScores(gameID string) ([]ScoreEntry, error) {
	return s.queryEntries(
		"SELECT "+entryColumns+" FROM scores WHERE game_id = ? ORDER BY score DESC, lines DESC, id ASC",
		gameID,
	)
}

// HighScore returns the best score of a mode, or 0 without runs.
func (s *Store) HighScore(gameID string) (int, error) {
	var high sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM scores WHERE game_id = ?", gameID).Scan(&high); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return int(high.Int64), nil
}

// ClearScores deletes every run of a mode.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GameStats aggregates the runs of one mode.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalLines int64
	BestLines  int
	LastPlayed time.Time // Zero without runs
}

const statsColumns = `COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
	COALESCE(SUM(lines), 0), COALESCE(MAX(lines), 0), MAX(created_at)`

// GetGameStats aggregates one mode. Modes without runs get zero stats.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	row := s.db.QueryRow("SELECT ?, "+statsColumns+" FROM scores WHERE game_id = ?", gameID, gameID)
	gs, err := scanStats(row)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	return gs, nil
}

// GetAllGamesStats aggregates every mode that has runs, keyed by mode ID.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query("SELECT game_id, " + statsColumns + " FROM scores GROUP BY game_id")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	all := make(map[string]*GameStats)
	for rows.Next() {
		gs, err := scanStats(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		all[gs.GameID] = gs
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return all, nil
}

// scanner is *sql.Row or *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanStats(sc scanner) (*GameStats, error) {
	var gs GameStats
	var last any
	if err := sc.Scan(&gs.GameID, &gs.GamesCount, &gs.HighScore, &gs.AvgScore, &gs.TotalLines, &gs.BestLines, &last); err != nil {
		return nil, err
	}
	gs.LastPlayed = parseTime(last)
	return &gs, nil
}

func scanEntry(sc scanner) (ScoreEntry, error) {
	var e ScoreEntry
	var created any
	if err := sc.Scan(&e.ID, &e.RunID, &e.GameID, &e.Score, &e.Lines, &e.Pieces, &created); err != nil {
		return e, err
	}
	e.CreatedAt = parseTime(created)
	return e, nil
}

func (s *Store) queryEntries(query string, args ...any) ([]ScoreEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// parseTime accepts the time.Time or text forms the driver may return.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
