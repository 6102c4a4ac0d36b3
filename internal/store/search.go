package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/rcliao/corpusgen/internal/model"
)

// SearchParams holds parameters for searching items.
type SearchParams struct {
	Model    string
	Category string
	Query    string
	Limit    int
}

// SearchResult is a matching item and the model it belongs to.
type SearchResult struct {
	Model string `json:"model"`
	model.CorpusItem
}

// SearchItems finds items whose text, keywords or explanation contain the
// query substring. An empty query matches every item.
func (s *SQLiteStore) SearchItems(ctx context.Context, p SearchParams) ([]SearchResult, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}

	where := []string{"1 = 1"}
	args := []interface{}{}

	if p.Model != "" {
		where = append(where, "i.model_id = ?")
		args = append(args, p.Model)
	}
	if p.Category != "" {
		where = append(where, "i.category = ?")
		args = append(args, p.Category)
	}
	if p.Query != "" {
		q := "%" + p.Query + "%"
		where = append(where, "(i.text LIKE ? OR i.keywords LIKE ? OR i.explanation LIKE ?)")
		args = append(args, q, q, q)
	}

	sql := fmt.Sprintf(`
		SELECT i.model_id, i.text, i.category, i.difficulty, i.keywords, i.explanation, i.tags
		FROM items i
		JOIN models m ON m.id = i.model_id
		WHERE %s
		ORDER BY m.position, i.seq
		LIMIT ?`, strings.Join(where, " AND "))
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []SearchResult
	for rows.Next() {
		var r SearchResult
		it, err := scanItem(prefixScanner{row: rows, first: &r.Model})
		if err != nil {
			return nil, err
		}
		r.CorpusItem = it
		results = append(results, r)
	}
	return results, rows.Err()
}
