package engine

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rcliao/corpusgen/internal/model"
)

const maxInputKeywords = 5

var hanRun = regexp.MustCompile(`\p{Han}{2,4}`)

// ExtractKeywords returns up to five distinct runs of 2-4 Han characters from
// text, in order of appearance. Longer runs are consumed four characters at a
// time.
func ExtractKeywords(text string) []string {
	matches := hanRun.FindAllString(text, -1)
	var out []string
	seen := map[string]bool{}
	for _, m := range matches {
		if seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
		if len(out) == maxInputKeywords {
			break
		}
	}
	return out
}

// fuzzyMatch reports whether either string contains the other.
func fuzzyMatch(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// Jaccard is the Jaccard similarity of the distinct rune sets of a and b.
// Two empty strings score 0.
func Jaccard(a, b string) float64 {
	setA := runeSet(a)
	setB := runeSet(b)
	union := len(setA)
	inter := 0
	for r := range setB {
		if _, ok := setA[r]; ok {
			inter++
		} else {
			union++
		}
	}
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

func runeSet(s string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(s))
	for _, r := range s {
		set[r] = struct{}{}
	}
	return set
}

// inLengthBand reports whether text's character count falls in the band for l:
// short < 30, medium 30-60, long > 60.
func inLengthBand(text string, l model.Length) bool {
	n := utf8.RuneCountInString(text)
	switch l {
	case model.LengthShort:
		return n < 30
	case model.LengthMedium:
		return n >= 30 && n <= 60
	case model.LengthLong:
		return n > 60
	}
	return false
}

// InferDifficulty guesses a difficulty from the size and punctuation of input.
func InferDifficulty(input string) model.Difficulty {
	n, punct := 0, 0
	for _, r := range input {
		if unicode.IsSpace(r) {
			continue
		}
		n++
		if unicode.IsPunct(r) {
			punct++
		}
	}
	switch {
	case n <= 10:
		return model.DifficultyEasy
	case n > 30 || punct >= 3:
		return model.DifficultyHard
	default:
		return model.DifficultyMedium
	}
}

// unionStrings appends the values of each list in order, skipping duplicates.
func unionStrings(lists ...[]string) []string {
	var out []string
	seen := map[string]bool{}
	for _, l := range lists {
		for _, s := range l {
			if seen[s] {
				continue
			}
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
