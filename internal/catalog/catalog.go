// Package catalog holds the static corpus models the generator selects from.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rcliao/corpusgen/internal/model"
)

// ErrInvalidCatalog is returned when catalog data fails validation.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog is an immutable, indexed set of corpus models. It is safe to share
// between generators and goroutines. Callers must not mutate returned items.
type Catalog struct {
	models []model.CorpusModel
	byID   map[string]int
}

// New validates models and builds a catalog. The input slice is copied.
func New(models []model.CorpusModel) (*Catalog, error) {
	if err := Validate(models); err != nil {
		return nil, err
	}
	c := &Catalog{
		models: make([]model.CorpusModel, len(models)),
		byID:   make(map[string]int, len(models)),
	}
	for i, m := range models {
		m.Items = append([]model.CorpusItem(nil), m.Items...)
		c.models[i] = m
		c.byID[m.ID] = i
	}
	return c, nil
}

// Validate checks model ids are present and unique and every item has text
// and, when set, a known difficulty.
func Validate(models []model.CorpusModel) error {
	seen := map[string]bool{}
	for i, m := range models {
		id := strings.TrimSpace(m.ID)
		if id == "" {
			return fmt.Errorf("%w: model #%d has no id", ErrInvalidCatalog, i)
		}
		if seen[id] {
			return fmt.Errorf("%w: duplicate model id %q", ErrInvalidCatalog, id)
		}
		seen[id] = true
		for j, it := range m.Items {
			if strings.TrimSpace(it.Text) == "" {
				return fmt.Errorf("%w: %s item #%d has empty text", ErrInvalidCatalog, id, j)
			}
			if it.Difficulty != "" && !model.ValidDifficulties[it.Difficulty] {
				return fmt.Errorf("%w: %s item #%d has difficulty %q", ErrInvalidCatalog, id, j, it.Difficulty)
			}
		}
	}
	return nil
}

// Model looks up a model by id.
func (c *Catalog) Model(id string) (model.CorpusModel, bool) {
	i, ok := c.byID[id]
	if !ok {
		return model.CorpusModel{}, false
	}
	return c.models[i], true
}

// Models returns all models in catalog order.
func (c *Catalog) Models() []model.CorpusModel {
	return append([]model.CorpusModel(nil), c.models...)
}

// Len is the number of models.
func (c *Catalog) Len() int {
	return len(c.models)
}
