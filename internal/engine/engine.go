// Package engine implements the content selection engine: given a corpus
// model, the text a learner has typed so far and a GenerationConfig, it picks
// the next snippet to show while avoiding repeats and leaning toward the
// categories the session has already drawn from.
//
// A Generator owns one session's state and is not safe for concurrent use.
// Create one per session; the catalog it reads may be shared.
package engine

import (
	"math/rand"
	"sort"
	"time"

	"github.com/rcliao/corpusgen/internal/catalog"
	"github.com/rcliao/corpusgen/internal/logger"
	"github.com/rcliao/corpusgen/internal/model"
)

// Rand is the randomness the generator draws from. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Generator selects corpus items for one session.
type Generator struct {
	catalog *catalog.Catalog
	rand    Rand
	now     func() time.Time
	log     *logger.Logger
	hist    *history
	restore *model.GenerationHistory
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand sets the random source used for jitter and picks.
func WithRand(r Rand) Option {
	return func(g *Generator) { g.rand = r }
}

// WithClock sets the time source for session timestamps.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithLogger sets the logger.
func WithLogger(l *logger.Logger) Option {
	return func(g *Generator) { g.log = l }
}

// WithHistory resumes a previously snapshotted session.
func WithHistory(h model.GenerationHistory) Option {
	return func(g *Generator) { g.restore = &h }
}

// New creates a generator over cat with a fresh session.
func New(cat *catalog.Catalog, opts ...Option) *Generator {
	g := &Generator{
		catalog: cat,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rand == nil {
		g.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.log == nil {
		g.log = logger.NewNop()
	}
	if g.restore != nil {
		g.hist = historyFrom(*g.restore)
		g.restore = nil
	} else {
		g.hist = newHistory(g.now())
	}
	return g
}

// Generate returns the next item for modelID, or nil when the model is
// unknown or has nothing to offer. userInput is recorded in the session even
// when nil is returned.
func (g *Generator) Generate(modelID, userInput string, cfg model.GenerationConfig) *model.CorpusItem {
	g.hist.recordInput(userInput)

	m, ok := g.catalog.Model(modelID)
	if !ok {
		g.log.Debug("unknown model", "model", modelID)
		return nil
	}

	req := request{
		corpus:   m,
		input:    userInput,
		keywords: ExtractKeywords(userInput),
		cfg:      cfg,
	}

	switch cfg.Mode {
	case model.ModeSingle:
		return g.generateSingle(req)
	case model.ModeParagraph:
		return g.generateParagraph(req)
	case model.ModeDialogue:
		return g.generateDialogue(req)
	default:
		g.log.Warn("unknown generation mode", "mode", cfg.Mode)
		return nil
	}
}

// RecommendedCategories lists the distinct categories of modelID's items in
// catalog order, with categories the session prefers moved to the front.
func (g *Generator) RecommendedCategories(modelID string) []string {
	cats := []string{}
	m, ok := g.catalog.Model(modelID)
	if !ok {
		return cats
	}

	seen := map[string]bool{}
	for _, it := range m.Items {
		if it.Category == "" || seen[it.Category] {
			continue
		}
		seen[it.Category] = true
		cats = append(cats, it.Category)
	}

	sort.SliceStable(cats, func(i, j int) bool {
		return g.hist.isPreferred(cats[i]) && !g.hist.isPreferred(cats[j])
	})
	return cats
}

// ResetHistory starts a new session in place.
func (g *Generator) ResetHistory() {
	g.hist = newHistory(g.now())
}

// UsageStats reports on the current session.
func (g *Generator) UsageStats() model.UsageStats {
	return model.UsageStats{
		GeneratedCount:      len(g.hist.usedOrder),
		InputCount:          len(g.hist.inputs),
		PreferredCategories: append([]string{}, g.hist.preferred...),
		SessionDuration:     g.now().Sub(g.hist.start),
	}
}

// Snapshot copies the session state for persistence.
func (g *Generator) Snapshot() model.GenerationHistory {
	return g.hist.snapshot()
}
