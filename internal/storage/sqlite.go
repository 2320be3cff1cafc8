// Package storage persists finished breakout sessions in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// sqliteTime is the layout CURRENT_TIMESTAMP produces.
const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// Result is one finished session as reported by the platform.
type Result struct {
	GameID string
	Score  int  // Blocks destroyed
	Won    bool // Every block cleared
	Frames int  // Simulation passes the session lasted
}

// ScoreEntry is a stored Result.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	Won       bool
	Frames    int
	CreatedAt time.Time
}

const schema = `
CREATE TABLE IF NOT EXISTS scores (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	game_id    TEXT    NOT NULL,
	score      INTEGER NOT NULL,
	won        INTEGER NOT NULL DEFAULT 0,
	frames     INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS scores_by_rank ON scores(game_id, score DESC, frames ASC);
`

// Open opens the database at path, creating it and its parent
// directories when missing. A leading ~ is the user's home directory.
func Open(path string) (*Store, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: create %s: %w", filepath.Dir(path), err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: expand %s: %w", path, err)
	}
	return filepath.Join(home, path[1:]), nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished session and returns its row ID.
func (s *Store) SaveResult(r Result) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO scores (game_id, score, won, frames) VALUES (?, ?, ?, ?)",
		r.GameID, r.Score, r.Won, r.Frames,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: save %s result: %w", r.GameID, err)
	}
	return res.LastInsertId()
}

// TopScores returns up to limit results for gameID, best first.
// Equal scores rank the faster session higher. A non-positive limit means 10.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT id, game_id, score, won, frames, created_at FROM scores
		 WHERE game_id = ? ORDER BY score DESC, frames ASC, id ASC LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: top scores for %s: %w", gameID, err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var (
			e       ScoreEntry
			created any
		)
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &e.Won, &e.Frames, &created); err != nil {
			return nil, fmt.Errorf("storage: top scores for %s: %w", gameID, err)
		}
		e.CreatedAt = parseTimestamp(created)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// HighScore returns the best score stored for gameID, or 0.
func (s *Store) HighScore(gameID string) (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM scores WHERE game_id = ?", gameID).Scan(&best); err != nil {
		return 0, fmt.Errorf("storage: high score for %s: %w", gameID, err)
	}
	return int(best.Int64), nil
}

// ClearScores deletes every result stored for gameID.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: clear %s: %w", gameID, err)
	}
	return nil
}

// GameStats aggregates every stored result of one game.
type GameStats struct {
	GameID     string
	GamesCount int
	Wins       int
	HighScore  int
	AvgScore   float64
	BestFrames int // Fewest frames among winning sessions, 0 without a win
	LastPlayed time.Time
}

const statsQuery = `
SELECT game_id, COUNT(*), SUM(won), MAX(score), AVG(score),
       MIN(CASE WHEN won = 1 THEN frames END), MAX(created_at)
FROM scores %s GROUP BY game_id`

// Stats aggregates the results of gameID. A game never played yields
// zero stats, not an error.
func (s *Store) Stats(gameID string) (*GameStats, error) {
	all, err := s.queryStats(fmt.Sprintf(statsQuery, "WHERE game_id = ?"), gameID)
	if err != nil {
		return nil, err
	}
	if st, ok := all[gameID]; ok {
		return st, nil
	}
	return &GameStats{GameID: gameID}, nil
}

// AllStats aggregates the results of every game played so far, keyed by ID.
func (s *Store) AllStats() (map[string]*GameStats, error) {
	return s.queryStats(fmt.Sprintf(statsQuery, ""))
}

func (s *Store) queryStats(query string, args ...any) (map[string]*GameStats, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var (
			gs         GameStats
			best       sql.NullInt64
			lastPlayed any
		)
		if err := rows.Scan(&gs.GameID, &gs.GamesCount, &gs.Wins, &gs.HighScore, &gs.AvgScore, &best, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: stats: %w", err)
		}
		gs.BestFrames = int(best.Int64)
		gs.LastPlayed = parseTimestamp(lastPlayed)
		stats[gs.GameID] = &gs
	}
	return stats, rows.Err()
}

// parseTimestamp accepts either form the driver hands back for DATETIME.
func parseTimestamp(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if t, err := time.Parse(sqliteTime, v); err == nil {
			return t
		}
	}
	return time.Time{}
}
