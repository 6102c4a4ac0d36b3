package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/rcliao/corpusgen/internal/model"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	entropy *rand.Rand
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS models (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		icon        TEXT NOT NULL DEFAULT '',
		color       TEXT NOT NULL DEFAULT '',
		position    INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS items (
		id          TEXT PRIMARY KEY,
		model_id    TEXT NOT NULL REFERENCES models(id) ON DELETE CASCADE,
		seq         INTEGER NOT NULL,
		text        TEXT NOT NULL,
		category    TEXT,
		difficulty  TEXT,
		keywords    TEXT,
		explanation TEXT,
		tags        TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_items_model_seq ON items(model_id, seq);
	CREATE INDEX IF NOT EXISTS idx_items_category ON items(model_id, category);

	CREATE TABLE IF NOT EXISTS sessions (
		id          TEXT PRIMARY KEY,
		started_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL,
		used_items  TEXT NOT NULL DEFAULT '[]',
		inputs      TEXT NOT NULL DEFAULT '[]',
		preferred   TEXT NOT NULL DEFAULT '[]'
	);
	CREATE INDEX IF NOT EXISTS idx_sessions_updated ON sessions(updated_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanItem reads the columns text, category, difficulty, keywords,
// explanation, tags.
func scanItem(row scanner) (model.CorpusItem, error) {
	var it model.CorpusItem
	var category, difficulty, keywords, explanation, tags sql.NullString

	if err := row.Scan(&it.Text, &category, &difficulty, &keywords, &explanation, &tags); err != nil {
		return it, err
	}

	it.Category = category.String
	it.Difficulty = model.Difficulty(difficulty.String)
	it.Explanation = explanation.String
	if keywords.Valid {
		if err := json.Unmarshal([]byte(keywords.String), &it.Keywords); err != nil {
			return it, fmt.Errorf("decode keywords: %w", err)
		}
	}
	if tags.Valid {
		if err := json.Unmarshal([]byte(tags.String), &it.Tags); err != nil {
			return it, fmt.Errorf("decode tags: %w", err)
		}
	}
	return it, nil
}

// jsonList encodes a list for a nullable TEXT column. Empty lists are NULL.
func jsonList(v []string) *string {
	if len(v) == 0 {
		return nil
	}
	b, _ := json.Marshal(v)
	s := string(b)
	return &s
}

// nullable maps "" to NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// timeLayout is fixed width so stored timestamps sort as strings.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(timeLayout, s)
	return t
}
