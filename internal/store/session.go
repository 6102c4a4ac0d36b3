package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rcliao/corpusgen/internal/model"
)

// CreateSession inserts an empty session that started at start.
func (s *SQLiteStore) CreateSession(ctx context.Context, start time.Time) (*Session, error) {
	id := s.newID()
	now := time.Now().UTC()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, started_at, updated_at) VALUES (?, ?, ?)`,
		id, formatTime(start), formatTime(now))
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}

	return &Session{
		ID: id,
		History: model.GenerationHistory{
			UsedItems:           []string{},
			UserInputs:          []string{},
			PreferredCategories: []string{},
			SessionStart:        parseTime(formatTime(start)),
		},
		UpdatedAt: parseTime(formatTime(now)),
	}, nil
}

// GetSession loads a session.
func (s *SQLiteStore) GetSession(ctx context.Context, id string) (*Session, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, started_at, updated_at, used_items, inputs, preferred FROM sessions WHERE id = ?`, id)
	sess, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// SaveSession overwrites a session's state. The start time is taken from h.
func (s *SQLiteStore) SaveSession(ctx context.Context, id string, h model.GenerationHistory) error {
	used, err := json.Marshal(nonNil(h.UsedItems))
	if err != nil {
		return err
	}
	inputs, err := json.Marshal(nonNil(h.UserInputs))
	if err != nil {
		return err
	}
	preferred, err := json.Marshal(nonNil(h.PreferredCategories))
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET started_at = ?, updated_at = ?, used_items = ?, inputs = ?, preferred = ?
		 WHERE id = ?`,
		formatTime(h.SessionStart), formatTime(time.Now()), string(used), string(inputs), string(preferred), id)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return nil
}

// ListSessions returns up to limit sessions, most recently updated first.
func (s *SQLiteStore) ListSessions(ctx context.Context, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, updated_at, used_items, inputs, preferred
		 FROM sessions ORDER BY updated_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Session
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *sess)
	}
	return out, rows.Err()
}

// DeleteSession removes a session.
func (s *SQLiteStore) DeleteSession(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return nil
}

func scanSession(row scanner) (*Session, error) {
	var sess Session
	var started, updated, used, inputs, preferred string
	if err := row.Scan(&sess.ID, &started, &updated, &used, &inputs, &preferred); err != nil {
		return nil, err
	}

	sess.History.SessionStart = parseTime(started)
	sess.UpdatedAt = parseTime(updated)
	for _, f := range []struct {
		raw string
		dst *[]string
	}{
		{used, &sess.History.UsedItems},
		{inputs, &sess.History.UserInputs},
		{preferred, &sess.History.PreferredCategories},
	} {
		if err := json.Unmarshal([]byte(f.raw), f.dst); err != nil {
			return nil, fmt.Errorf("decode session %s: %w", sess.ID, err)
		}
	}
	return &sess, nil
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
