// Package storage keeps an optional SQLite history of generated levels so a
// level that played well can be found again by seed.
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

	"github.com/vovakirdan/flipdoctor-levelgen/internal/level"
)

// Generation modes recorded in the history.
const (
	ModeRandom = "random"
	ModeFixed  = "fixed"
)

// timeLayout is fixed width so created_at sorts correctly as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Store manages the SQLite database connection for level history.
type Store struct {
	db *sql.DB
}

// LevelEntry is one written level file.
type LevelEntry struct {
	ID        string
	Path      string
	Seed      uint64
	Mode      string
	Record    level.Record
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

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
		CREATE TABLE IF NOT EXISTS levels (
			id TEXT PRIMARY KEY,
			path TEXT NOT NULL,
			seed TEXT NOT NULL,
			mode TEXT NOT NULL,
			magic INTEGER NOT NULL,
			goal_idx INTEGER NOT NULL,
			enemy_idx INTEGER NOT NULL,
			wall_x INTEGER NOT NULL,
			wall_y INTEGER NOT NULL,
			wall_w INTEGER NOT NULL,
			wall_h INTEGER NOT NULL,
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_levels_created_at ON levels(created_at DESC);
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

// SaveLevel records a written level and returns its generated ID.
// The seed is stored as text because SQLite integers are signed.
func (s *Store) SaveLevel(e LevelEntry) (string, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	r := e.Record
	_, err := s.db.Exec(
		`INSERT INTO levels
		 (id, path, seed, mode, magic, goal_idx, enemy_idx, wall_x, wall_y, wall_w, wall_h, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Path, fmt.Sprint(e.Seed), e.Mode,
		int64(r.Magic), r.GoalIdx, r.EnemyIdx, r.WallX, r.WallY, r.WallW, r.WallH,
		e.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save level: %w", err)
	}

	return e.ID, nil
}

// RecentLevels retrieves the most recently written levels, newest first.
func (s *Store) RecentLevels(limit int) ([]LevelEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryLevels(
		`SELECT `+levelColumns+`
		 FROM levels
		 ORDER BY created_at DESC
		 LIMIT ?`,
		limit,
	)
}

// LevelsBySeed returns every level generated from seed, newest first.
func (s *Store) LevelsBySeed(seed uint64) ([]LevelEntry, error) {
	return s.queryLevels(
		`SELECT `+levelColumns+`
		 FROM levels
		 WHERE seed = ?
		 ORDER BY created_at DESC`,
		fmt.Sprint(seed),
	)
}

const levelColumns = `id, path, seed, mode, magic, goal_idx, enemy_idx,
		        wall_x, wall_y, wall_w, wall_h, created_at`

func (s *Store) queryLevels(query string, args ...any) ([]LevelEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query levels: %w", err)
	}
	defer rows.Close()

	var entries []LevelEntry
	for rows.Next() {
		var e LevelEntry
		var seed, createdAt string
		var magic int64
		if err := rows.Scan(
			&e.ID,
			&e.Path,
			&seed,
			&e.Mode,
			&magic,
			&e.Record.GoalIdx,
			&e.Record.EnemyIdx,
			&e.Record.WallX,
			&e.Record.WallY,
			&e.Record.WallW,
			&e.Record.WallH,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		e.Record.Magic = uint32(magic)
		if _, err := fmt.Sscan(seed, &e.Seed); err != nil {
			return nil, fmt.Errorf("storage: bad seed %q for level %s: %w", seed, e.ID, err)
		}
		parsed, err := time.Parse(timeLayout, createdAt)
		if err != nil {
			return nil, fmt.Errorf("storage: bad created_at %q for level %s: %w", createdAt, e.ID, err)
		}
		e.CreatedAt = parsed
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}
