package store

import (
	"context"
	"os"
)

// Stats holds database statistics.
type Stats struct {
	DBPath      string       `json:"db_path"`
	DBSizeBytes int64        `json:"db_size_bytes"`
	TotalModels int          `json:"total_models"`
	TotalItems  int          `json:"total_items"`
	Sessions    int          `json:"sessions"`
	Models      []ModelStats `json:"models"`
}

// ModelStats holds per-model counts.
type ModelStats struct {
	Model      string `json:"model"`
	Items      int    `json:"items"`
	Categories int    `json:"categories"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	// DB file size
	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM models`).Scan(&st.TotalModels)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM items`).Scan(&st.TotalItems)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sessions`).Scan(&st.Sessions)

	rows, err := s.db.QueryContext(ctx, `
		SELECT m.id, COUNT(i.id), COUNT(DISTINCT i.category)
		FROM models m LEFT JOIN items i ON i.model_id = m.id
		GROUP BY m.id ORDER BY m.position, m.id`)
	if err != nil {
		return st, err
	}
	defer rows.Close()

	for rows.Next() {
		var ms ModelStats
		rows.Scan(&ms.Model, &ms.Items, &ms.Categories)
		st.Models = append(st.Models, ms)
	}

	return st, nil
}
