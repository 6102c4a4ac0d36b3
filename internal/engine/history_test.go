package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rcliao/corpusgen/internal/model"
)

func TestHistory_PreferEvictsOldest(t *testing.T) {
	h := newHistory(time.Now())
	for _, c := range []string{"a", "b", "c", "d", "e", "f"} {
		h.prefer(c)
	}
	assert.Equal(t, []string{"b", "c", "d", "e", "f"}, h.preferred)
	assert.False(t, h.isPreferred("a"))
}

func TestHistory_PreferIgnoresDuplicatesAndEmpty(t *testing.T) {
	h := newHistory(time.Now())
	h.prefer("a")
	h.prefer("")
	h.prefer("a")
	h.prefer("b")
	assert.Equal(t, []string{"a", "b"}, h.preferred)
	assert.False(t, h.isPreferred(""))
}

func TestHistory_MarkUsedIsASet(t *testing.T) {
	h := newHistory(time.Now())
	h.markUsed("x")
	h.markUsed("y")
	h.markUsed("x")
	assert.Equal(t, []string{"x", "y"}, h.usedOrder)
	assert.Len(t, h.used, 2)
	assert.True(t, h.isUsed("y"))
	assert.False(t, h.isUsed("z"))
}

func TestHistoryFrom_RepairsSnapshot(t *testing.T) {
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	h := historyFrom(model.GenerationHistory{
		UsedItems:           []string{"x", "x", "y"},
		UserInputs:          []string{"", "春天"},
		PreferredCategories: []string{"a", "b", "a", "c", "d", "e", "f"},
		SessionStart:        start,
	})

	snap := h.snapshot()
	assert.Equal(t, []string{"x", "y"}, snap.UsedItems)
	assert.Equal(t, []string{"", "春天"}, snap.UserInputs)
	assert.Equal(t, []string{"b", "c", "d", "e", "f"}, snap.PreferredCategories)
	assert.Equal(t, start, snap.SessionStart)
}

func TestHistory_SnapshotIsACopy(t *testing.T) {
	h := newHistory(time.Now())
	h.markUsed("x")
	snap := h.snapshot()
	snap.UsedItems[0] = "changed"
	assert.True(t, h.isUsed("x"))
	assert.Equal(t, "x", h.usedOrder[0])
}
