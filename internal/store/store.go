// Package store persists corpus catalogs and generation sessions in SQLite.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/rcliao/corpusgen/internal/model"
)

var (
	// ErrSessionNotFound is returned when a session id is unknown.
	ErrSessionNotFound = errors.New("session not found")
	// ErrModelNotFound is returned when a corpus model id is unknown.
	ErrModelNotFound = errors.New("model not found")
)

// Session is a persisted generation session.
type Session struct {
	ID        string                  `json:"id"`
	History   model.GenerationHistory `json:"history"`
	UpdatedAt time.Time               `json:"updated_at"`
}

// ModelSummary describes a stored model without its items.
type ModelSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Color       string `json:"color,omitempty"`
	Items       int    `json:"items"`
}

// Store defines the catalog and session storage interface.
type Store interface {
	// ImportCatalog upserts models, replacing the items of every model it
	// touches. Returns the number of items written.
	ImportCatalog(ctx context.Context, models []model.CorpusModel) (int, error)

	// LoadCatalog returns every stored model with its items in order.
	LoadCatalog(ctx context.Context) ([]model.CorpusModel, error)

	// AppendItems adds items to the end of an existing model.
	AppendItems(ctx context.Context, modelID string, items []model.CorpusItem) (int, error)

	// ListModels summarizes the stored models.
	ListModels(ctx context.Context) ([]ModelSummary, error)

	// SearchItems finds items whose text, keywords or explanation match.
	SearchItems(ctx context.Context, p SearchParams) ([]SearchResult, error)

	// CreateSession starts a new empty session.
	CreateSession(ctx context.Context, start time.Time) (*Session, error)

	// GetSession loads a session by id.
	GetSession(ctx context.Context, id string) (*Session, error)

	// SaveSession overwrites the stored state of a session.
	SaveSession(ctx context.Context, id string, h model.GenerationHistory) error

	// ListSessions lists sessions, most recently updated first.
	ListSessions(ctx context.Context, limit int) ([]Session, error)

	// DeleteSession removes a session.
	DeleteSession(ctx context.Context, id string) error

	// Close closes the store.
	Close() error
}

var _ Store = (*SQLiteStore)(nil)
