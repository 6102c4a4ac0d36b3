// Package model defines the corpus and generation data types.
package model

import (
	"fmt"
	"time"
)

// Difficulty grades a corpus item. DifficultyAuto is only meaningful in a
// GenerationConfig, where it disables difficulty filtering.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyAuto   Difficulty = "auto"
)

// Mode selects the generation strategy.
type Mode string

const (
	ModeSingle    Mode = "single"
	ModeParagraph Mode = "paragraph"
	ModeDialogue  Mode = "dialogue"
)

// Length is the preferred snippet length band.
type Length string

const (
	LengthShort  Length = "short"
	LengthMedium Length = "medium"
	LengthLong   Length = "long"
)

// ValidModes are the allowed generation modes.
var ValidModes = map[Mode]bool{
	ModeSingle:    true,
	ModeParagraph: true,
	ModeDialogue:  true,
}

// ValidDifficulties are the difficulties an item may carry.
var ValidDifficulties = map[Difficulty]bool{
	DifficultyEasy:   true,
	DifficultyMedium: true,
	DifficultyHard:   true,
}

// ValidLengths are the allowed length bands.
var ValidLengths = map[Length]bool{
	LengthShort:  true,
	LengthMedium: true,
	LengthLong:   true,
}

// CorpusItem is one immutable text snippet with optional metadata.
type CorpusItem struct {
	Text        string     `json:"text" yaml:"text"`
	Category    string     `json:"category,omitempty" yaml:"category,omitempty"`
	Difficulty  Difficulty `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
	Keywords    []string   `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Explanation string     `json:"explanation,omitempty" yaml:"explanation,omitempty"`
	Tags        []string   `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// CorpusModel is a named, themed group of corpus items.
type CorpusModel struct {
	ID          string       `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Icon        string       `json:"icon,omitempty" yaml:"icon,omitempty"`
	Color       string       `json:"color,omitempty" yaml:"color,omitempty"`
	Items       []CorpusItem `json:"items" yaml:"items"`
}

// GenerationConfig describes caller intent for one generation call.
type GenerationConfig struct {
	Mode        Mode       `json:"mode"`
	Difficulty  Difficulty `json:"difficulty"`
	Length      Length     `json:"length"`
	AvoidRecent bool       `json:"avoid_recent"`
}

// GenerationHistory is a snapshot of one session's state.
type GenerationHistory struct {
	UsedItems           []string  `json:"used_items"`
	UserInputs          []string  `json:"user_inputs"`
	PreferredCategories []string  `json:"preferred_categories"`
	SessionStart        time.Time `json:"session_start"`
}

// UsageStats summarizes a session.
type UsageStats struct {
	GeneratedCount      int           `json:"generated_count"`
	InputCount          int           `json:"input_count"`
	PreferredCategories []string      `json:"preferred_categories"`
	SessionDuration     time.Duration `json:"session_duration"`
}

// ParseMode converts a user-supplied string into a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !ValidModes[m] {
		return "", fmt.Errorf("invalid mode %q (use single, paragraph, dialogue)", s)
	}
	return m, nil
}

// ParseDifficulty converts a user-supplied string into a Difficulty.
// "auto" is accepted.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if d != DifficultyAuto && !ValidDifficulties[d] {
		return "", fmt.Errorf("invalid difficulty %q (use easy, medium, hard, auto)", s)
	}
	return d, nil
}

// ParseLength converts a user-supplied string into a Length.
func ParseLength(s string) (Length, error) {
	l := Length(s)
	if !ValidLengths[l] {
		return "", fmt.Errorf("invalid length %q (use short, medium, long)", s)
	}
	return l, nil
}
