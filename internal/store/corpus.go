package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rcliao/corpusgen/internal/catalog"
	"github.com/rcliao/corpusgen/internal/model"
)

// ImportCatalog validates and upserts models. Items of each imported model
// are replaced wholesale so that item order matches the input.
func (s *SQLiteStore) ImportCatalog(ctx context.Context, models []model.CorpusModel) (int, error) {
	if err := catalog.Validate(models); err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var base int
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(position), -1) + 1 FROM models`).Scan(&base); err != nil {
		return 0, err
	}

	imported := 0
	for i, m := range models {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO models (id, name, description, icon, color, position)
			 VALUES (?, ?, ?, ?, ?, ?)
			 ON CONFLICT(id) DO UPDATE SET
			   name = excluded.name, description = excluded.description,
			   icon = excluded.icon, color = excluded.color`,
			m.ID, m.Name, m.Description, m.Icon, m.Color, base+i)
		if err != nil {
			return imported, fmt.Errorf("upsert model %s: %w", m.ID, err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM items WHERE model_id = ?`, m.ID); err != nil {
			return imported, fmt.Errorf("clear items %s: %w", m.ID, err)
		}
		n, err := s.insertItems(ctx, tx, m.ID, 0, m.Items)
		if err != nil {
			return imported, err
		}
		imported += n
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return imported, nil
}

// AppendItems adds items after the last item of modelID.
func (s *SQLiteStore) AppendItems(ctx context.Context, modelID string, items []model.CorpusItem) (int, error) {
	if err := catalog.Validate([]model.CorpusModel{{ID: modelID, Items: items}}); err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM models WHERE id = ?`, modelID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: %s", ErrModelNotFound, modelID)
	}
	if err != nil {
		return 0, err
	}

	var next int
	if err := tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(seq), -1) + 1 FROM items WHERE model_id = ?`, modelID).Scan(&next); err != nil {
		return 0, err
	}

	n, err := s.insertItems(ctx, tx, modelID, next, items)
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return n, nil
}

func (s *SQLiteStore) insertItems(ctx context.Context, tx *sql.Tx, modelID string, seq int, items []model.CorpusItem) (int, error) {
	for i, it := range items {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO items (id, model_id, seq, text, category, difficulty, keywords, explanation, tags)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			s.newID(), modelID, seq+i, it.Text, nullable(it.Category), nullable(string(it.Difficulty)),
			jsonList(it.Keywords), nullable(it.Explanation), jsonList(it.Tags))
		if err != nil {
			return i, fmt.Errorf("insert item: %w", err)
		}
	}
	return len(items), nil
}

// LoadCatalog returns all stored models in import order.
func (s *SQLiteStore) LoadCatalog(ctx context.Context) ([]model.CorpusModel, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, description, icon, color FROM models ORDER BY position, id`)
	if err != nil {
		return nil, err
	}

	var models []model.CorpusModel
	index := map[string]int{}
	for rows.Next() {
		var m model.CorpusModel
		if err := rows.Scan(&m.ID, &m.Name, &m.Description, &m.Icon, &m.Color); err != nil {
			rows.Close()
			return nil, err
		}
		index[m.ID] = len(models)
		models = append(models, m)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	itemRows, err := s.db.QueryContext(ctx,
		`SELECT model_id, text, category, difficulty, keywords, explanation, tags
		 FROM items ORDER BY model_id, seq`)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var modelID string
		it, err := scanItem(prefixScanner{row: itemRows, first: &modelID})
		if err != nil {
			return nil, err
		}
		if i, ok := index[modelID]; ok {
			models[i].Items = append(models[i].Items, it)
		}
	}
	return models, itemRows.Err()
}

// ListModels summarizes stored models with their item counts.
func (s *SQLiteStore) ListModels(ctx context.Context) ([]ModelSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT m.id, m.name, m.description, m.icon, m.color, COUNT(i.id)
		FROM models m LEFT JOIN items i ON i.model_id = m.id
		GROUP BY m.id ORDER BY m.position, m.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ModelSummary
	for rows.Next() {
		var ms ModelSummary
		if err := rows.Scan(&ms.ID, &ms.Name, &ms.Description, &ms.Icon, &ms.Color, &ms.Items); err != nil {
			return nil, err
		}
		out = append(out, ms)
	}
	return out, rows.Err()
}

// prefixScanner scans one leading column into first and hands the rest to scanItem.
type prefixScanner struct {
	row   scanner
	first interface{}
}

func (p prefixScanner) Scan(dest ...interface{}) error {
	return p.row.Scan(append([]interface{}{p.first}, dest...)...)
}
