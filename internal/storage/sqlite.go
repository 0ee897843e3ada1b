// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the results ledger.
type Store struct {
	db *sql.DB
}

// BoardSize identifies a board configuration.
type BoardSize struct {
	Rows    int
	Columns int
	Mines   int
}

func (b BoardSize) String() string {
	return fmt.Sprintf("%dx%d/%d", b.Rows, b.Columns, b.Mines)
}

// Result is one finished game.
type Result struct {
	ID           int64
	GameID       string // uuid assigned when the game started
	Board        BoardSize
	Won          bool
	SafeRevealed int
	Duration     time.Duration
	CreatedAt    time.Time
}

// Stats aggregates the results for one board size.
type Stats struct {
	Board      BoardSize
	Played     int
	Won        int
	BestTime   time.Duration // zero when no game was won
	LastPlayed time.Time
}

// WinRate returns the fraction of games won.
func (s Stats) WinRate() float64 {
	if s.Played == 0 {
		return 0
	}
	return float64(s.Won) / float64(s.Played)
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL UNIQUE,
			board_rows INTEGER NOT NULL,
			board_cols INTEGER NOT NULL,
			board_mines INTEGER NOT NULL,
			won INTEGER NOT NULL,
			safe_revealed INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_board ON results(board_rows, board_cols, board_mines);
		CREATE INDEX IF NOT EXISTS idx_results_best ON results(board_rows, board_cols, board_mines, won, duration_ms);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished game and returns the row ID.
// A GameID is generated when the result carries none.
func (s *Store) SaveResult(r Result) (int64, error) {
	if r.GameID == "" {
		r.GameID = uuid.NewString()
	} else if _, err := uuid.Parse(r.GameID); err != nil {
		return 0, fmt.Errorf("storage: invalid game id %q: %w", r.GameID, err)
	}

	res, err := s.db.Exec(
		`INSERT INTO results (game_id, board_rows, board_cols, board_mines, won, safe_revealed, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Board.Rows, r.Board.Columns, r.Board.Mines,
		boolToInt(r.Won), r.SafeRevealed, r.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const resultColumns = `id, game_id, board_rows, board_cols, board_mines, won, safe_revealed, duration_ms, created_at`

// BestTimes returns the fastest won games on the given board.
func (s *Store) BestTimes(board BoardSize, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+resultColumns+`
		 FROM results
		 WHERE board_rows = ? AND board_cols = ? AND board_mines = ? AND won = 1
		 ORDER BY duration_ms ASC, id ASC
		 LIMIT ?`,
		board.Rows, board.Columns, board.Mines, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best times: %w", err)
	}
	return scanResults(rows)
}

// RecentResults returns the latest games across all boards, newest first.
func (s *Store) RecentResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+resultColumns+`
		 FROM results
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	return scanResults(rows)
}

// ResultByGameID looks up a result by its game uuid. It returns nil when
// no such game was recorded.
func (s *Store) ResultByGameID(gameID string) (*Result, error) {
	rows, err := s.db.Query(
		`SELECT `+resultColumns+` FROM results WHERE game_id = ?`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query result: %w", err)
	}
	results, err := scanResults(rows)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}

// Stats aggregates the results recorded for a board size.
func (s *Store) Stats(board BoardSize) (Stats, error) {
	stats := Stats{Board: board}

	var best sql.NullInt64
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0),
		        MIN(CASE WHEN won = 1 THEN duration_ms END), MAX(created_at)
		 FROM results
		 WHERE board_rows = ? AND board_cols = ? AND board_mines = ?`,
		board.Rows, board.Columns, board.Mines,
	).Scan(&stats.Played, &stats.Won, &best, &lastPlayed)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	if best.Valid {
		stats.BestTime = time.Duration(best.Int64) * time.Millisecond
	}
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// Boards lists every board size with at least one recorded game, most
// played first.
func (s *Store) Boards() ([]BoardSize, error) {
	rows, err := s.db.Query(
		`SELECT board_rows, board_cols, board_mines
		 FROM results
		 GROUP BY board_rows, board_cols, board_mines
		 ORDER BY COUNT(*) DESC, board_rows, board_cols, board_mines`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list boards: %w", err)
	}
	defer rows.Close()

	var boards []BoardSize
	for rows.Next() {
		var b BoardSize
		if err := rows.Scan(&b.Rows, &b.Columns, &b.Mines); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		boards = append(boards, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return boards, nil
}

// ClearResults deletes every result for a board size.
func (s *Store) ClearResults(board BoardSize) error {
	_, err := s.db.Exec(
		"DELETE FROM results WHERE board_rows = ? AND board_cols = ? AND board_mines = ?",
		board.Rows, board.Columns, board.Mines,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

func scanResults(rows *sql.Rows) ([]Result, error) {
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var won int
		var durationMs int64
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.GameID,
			&r.Board.Rows,
			&r.Board.Columns,
			&r.Board.Mines,
			&won,
			&r.SafeRevealed,
			&durationMs,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Won = won != 0
		r.Duration = time.Duration(durationMs) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
