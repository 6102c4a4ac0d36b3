package engine

import (
	"time"

	"github.com/rcliao/corpusgen/internal/model"
)

// maxPreferred caps the preferred category list. The oldest entry is dropped first.
const maxPreferred = 5

// history is the mutable state of one session.
type history struct {
	used      map[string]struct{}
	usedOrder []string
	inputs    []string
	preferred []string
	start     time.Time
}

func newHistory(start time.Time) *history {
	return &history{
		used:  map[string]struct{}{},
		start: start,
	}
}

// historyFrom rebuilds session state from a snapshot, dropping duplicates and
// trimming the preference list to its cap.
func historyFrom(s model.GenerationHistory) *history {
	h := newHistory(s.SessionStart)
	for _, t := range s.UsedItems {
		h.markUsed(t)
	}
	h.inputs = append([]string(nil), s.UserInputs...)
	for _, c := range s.PreferredCategories {
		h.prefer(c)
	}
	return h
}

func (h *history) markUsed(text string) {
	if _, ok := h.used[text]; ok {
		return
	}
	h.used[text] = struct{}{}
	h.usedOrder = append(h.usedOrder, text)
}

func (h *history) isUsed(text string) bool {
	_, ok := h.used[text]
	return ok
}

func (h *history) recordInput(input string) {
	h.inputs = append(h.inputs, input)
}

// prefer adds category to the preference list if absent, evicting the oldest
// entry when the list is full.
func (h *history) prefer(category string) {
	if category == "" || h.isPreferred(category) {
		return
	}
	h.preferred = append(h.preferred, category)
	if len(h.preferred) > maxPreferred {
		h.preferred = append([]string(nil), h.preferred[len(h.preferred)-maxPreferred:]...)
	}
}

func (h *history) isPreferred(category string) bool {
	if category == "" {
		return false
	}
	for _, c := range h.preferred {
		if c == category {
			return true
		}
	}
	return false
}

func (h *history) snapshot() model.GenerationHistory {
	return model.GenerationHistory{
		UsedItems:           append([]string{}, h.usedOrder...),
		UserInputs:          append([]string{}, h.inputs...),
		PreferredCategories: append([]string{}, h.preferred...),
		SessionStart:        h.start,
	}
}
