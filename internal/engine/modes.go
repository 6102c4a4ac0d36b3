package engine

import (
	"fmt"
	"strings"

	"github.com/rcliao/corpusgen/internal/model"
)

const (
	fairyModelID       = "fairy"
	paragraphSeparator = "，"
)

var dialogueOpeners = []string{
	`小朋友说："%s"`,
	`小兔子问："%s"`,
	`老爷爷笑着说："%s"`,
	`仙女轻轻地说："%s"`,
}

// paragraphSize is the number of snippets a paragraph of length l combines.
func paragraphSize(l model.Length) int {
	switch l {
	case model.LengthShort:
		return 2
	case model.LengthLong:
		return 4
	default:
		return 3
	}
}

func (g *Generator) generateSingle(req request) *model.CorpusItem {
	pool := g.candidates(req)
	if len(pool) == 0 {
		return nil
	}
	it := pool[g.pick(pool, req)]
	g.record(it)
	g.log.Debug("selected", "model", req.corpus.ID, "text", it.Text)
	return cloneItem(it)
}

// cloneItem copies it so callers cannot reach catalog-owned slices.
func cloneItem(it model.CorpusItem) *model.CorpusItem {
	it.Keywords = append([]string(nil), it.Keywords...)
	it.Tags = append([]string(nil), it.Tags...)
	return &it
}

func (g *Generator) generateParagraph(req request) *model.CorpusItem {
	pool := g.candidates(req)
	want := paragraphSize(req.cfg.Length)

	var parts []model.CorpusItem
	for len(parts) < want && len(pool) > 0 {
		i := g.pick(pool, req)
		it := pool[i]
		pool = append(pool[:i:i], pool[i+1:]...)
		g.record(it)
		parts = append(parts, it)
	}
	if len(parts) == 0 {
		return nil
	}

	difficulty := req.cfg.Difficulty
	if difficulty == model.DifficultyAuto {
		difficulty = InferDifficulty(req.input)
	}

	texts := make([]string, len(parts))
	var keywords, tags [][]string
	for i, p := range parts {
		texts[i] = p.Text
		keywords = append(keywords, p.Keywords)
		tags = append(tags, p.Tags)
	}

	g.log.Debug("paragraph", "model", req.corpus.ID, "parts", len(parts), "want", want)
	return &model.CorpusItem{
		Text:        strings.Join(texts, paragraphSeparator),
		Category:    parts[0].Category,
		Difficulty:  difficulty,
		Keywords:    unionStrings(keywords...),
		Explanation: paragraphExplanation(parts),
		Tags:        unionStrings(tags...),
	}
}

func paragraphExplanation(parts []model.CorpusItem) string {
	lines := make([]string, len(parts))
	for i, p := range parts {
		exp := p.Explanation
		if exp == "" {
			exp = p.Text
		}
		lines[i] = fmt.Sprintf("%d. %s", i+1, exp)
	}
	return fmt.Sprintf("这段话由%d个片段组成：%s", len(parts), strings.Join(lines, "；"))
}

func (g *Generator) generateDialogue(req request) *model.CorpusItem {
	it := g.generateSingle(req)
	if it == nil || req.corpus.ID != fairyModelID {
		return it
	}
	opener := dialogueOpeners[g.rand.Intn(len(dialogueOpeners))]
	it.Text = fmt.Sprintf(opener, it.Text)
	return it
}
