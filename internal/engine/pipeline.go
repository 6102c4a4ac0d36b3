package engine

import (
	"sort"
	"strings"

	"github.com/rcliao/corpusgen/internal/model"
)

const (
	scoreKeywordMatch  = 20.0
	scoreTextMatch     = 15.0
	scorePreferred     = 10.0
	scoreLengthBand    = 5.0
	scoreSimilarity    = 10.0
	scoreUnused        = 5.0
	scoreJitter        = 3.0
	fallbackPoolSize   = 10
	selectionPoolLimit = 5
)

// request carries one Generate call through the pipeline.
type request struct {
	corpus   model.CorpusModel
	input    string
	keywords []string
	cfg      model.GenerationConfig
}

// candidates filters the model's items by the request config, relaxing the
// filters in two steps when nothing survives.
func (g *Generator) candidates(req request) []model.CorpusItem {
	items := req.corpus.Items

	var out []model.CorpusItem
	for _, it := range items {
		if req.cfg.AvoidRecent && g.hist.isUsed(it.Text) {
			continue
		}
		if req.cfg.Difficulty != model.DifficultyAuto && it.Difficulty != "" && it.Difficulty != req.cfg.Difficulty {
			continue
		}
		out = append(out, it)
	}
	if len(out) > 0 {
		g.log.Debug("candidates", "model", req.corpus.ID, "stage", "filtered", "count", len(out))
		return out
	}

	for _, it := range items {
		if !g.hist.isUsed(it.Text) {
			out = append(out, it)
		}
	}
	if len(out) > 0 {
		g.log.Debug("candidates", "model", req.corpus.ID, "stage", "unused", "count", len(out))
		return out
	}

	n := len(items)
	if n > fallbackPoolSize {
		n = fallbackPoolSize
	}
	out = append(out, items[:n]...)
	g.log.Debug("candidates", "model", req.corpus.ID, "stage", "head", "count", len(out))
	return out
}

// score rates one candidate for req. Higher is better; values are only
// comparable within one call.
func (g *Generator) score(it model.CorpusItem, req request) float64 {
	var s float64

	for _, kw := range req.keywords {
		for _, ikw := range it.Keywords {
			if fuzzyMatch(kw, ikw) {
				s += scoreKeywordMatch
				break
			}
		}
		if strings.Contains(it.Text, kw) {
			s += scoreTextMatch
		}
	}

	if g.hist.isPreferred(it.Category) {
		s += scorePreferred
	}
	if inLengthBand(it.Text, req.cfg.Length) {
		s += scoreLengthBand
	}
	s += Jaccard(req.input, it.Text) * scoreSimilarity
	if !g.hist.isUsed(it.Text) {
		s += scoreUnused
	}
	s += g.rand.Float64() * scoreJitter

	return s
}

// pick scores pool and returns the index of a uniformly chosen item among the
// top five. pool must not be empty.
func (g *Generator) pick(pool []model.CorpusItem, req request) int {
	type scored struct {
		idx   int
		score float64
	}
	ranked := make([]scored, len(pool))
	for i, it := range pool {
		ranked[i] = scored{idx: i, score: g.score(it, req)}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	k := len(ranked)
	if k > selectionPoolLimit {
		k = selectionPoolLimit
	}
	return ranked[g.rand.Intn(k)].idx
}

// record marks it as shown and feeds its category to the preference list.
func (g *Generator) record(it model.CorpusItem) {
	g.hist.markUsed(it.Text)
	g.hist.prefer(it.Category)
}
