// Package segment splits prose into snippet-sized pieces for new corpus items.
package segment

import (
	"strings"
	"unicode/utf8"
)

const (
	DefaultMinRunes = 6
	DefaultMaxRunes = 60
)

// Options configures segmentation. Lengths are in characters, not bytes.
type Options struct {
	MinRunes int
	MaxRunes int
}

// DefaultOptions returns default segmentation options.
func DefaultOptions() Options {
	return Options{
		MinRunes: DefaultMinRunes,
		MaxRunes: DefaultMaxRunes,
	}
}

// Segment is one piece of the input and the line it starts on.
type Segment struct {
	Text string
	Line int
}

// sentence terminators end a piece; the full stop is dropped from the output
// because catalog snippets are joined with commas later.
const terminators = "。！？!?；;"

// Split breaks text into sentences, merges fragments shorter than MinRunes
// into their neighbour and splits sentences longer than MaxRunes at commas,
// falling back to a hard cut.
func Split(text string, opts Options) []Segment {
	if opts.MaxRunes == 0 {
		opts = DefaultOptions()
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	return merge(sentences(text), opts)
}

// sentences splits text at terminators and line breaks.
func sentences(text string) []Segment {
	var out []Segment
	var b strings.Builder
	line, start := 1, 1

	flush := func() {
		t := strings.TrimSpace(b.String())
		t = strings.TrimRight(t, "。")
		if t != "" {
			out = append(out, Segment{Text: t, Line: start})
		}
		b.Reset()
	}

	for _, r := range text {
		if r == '\n' {
			flush()
			line++
			start = line
			continue
		}
		if b.Len() == 0 && r == ' ' {
			continue
		}
		if b.Len() == 0 {
			start = line
		}
		b.WriteRune(r)
		if strings.ContainsRune(terminators, r) {
			flush()
		}
	}
	flush()

	return out
}

// merge combines short pieces and splits long ones.
func merge(parts []Segment, opts Options) []Segment {
	var out []Segment
	var accum Segment

	flushAccum := func() {
		if accum.Text == "" {
			return
		}
		if utf8.RuneCountInString(accum.Text) > opts.MaxRunes {
			out = append(out, hardSplit(accum, opts)...)
		} else {
			out = append(out, accum)
		}
		accum = Segment{}
	}

	for _, p := range parts {
		if accum.Text == "" {
			accum = p
			continue
		}
		if utf8.RuneCountInString(accum.Text) < opts.MinRunes {
			accum.Text = joinPiece(accum.Text, p.Text)
			continue
		}
		flushAccum()
		accum = p
	}
	flushAccum()

	return out
}

// joinPiece glues a short fragment to the next one, adding a comma unless the
// fragment already ends in punctuation.
func joinPiece(a, b string) string {
	last, _ := utf8.DecodeLastRuneInString(a)
	if strings.ContainsRune(terminators+"，,、", last) {
		return a + b
	}
	return a + "，" + b
}

// hardSplit breaks an oversized piece at commas, cutting by character count
// when a single clause is still too long.
func hardSplit(s Segment, opts Options) []Segment {
	var out []Segment
	var cur []rune

	emit := func() {
		t := strings.TrimRight(strings.TrimSpace(string(cur)), "，,")
		if t != "" {
			out = append(out, Segment{Text: t, Line: s.Line})
		}
		cur = cur[:0]
	}

	for _, clause := range splitKeep(s.Text, "，,") {
		rs := []rune(clause)
		if len(cur)+len(rs) > opts.MaxRunes && len(cur) > 0 {
			emit()
		}
		for len(rs) > opts.MaxRunes {
			cur = append(cur, rs[:opts.MaxRunes]...)
			emit()
			rs = rs[opts.MaxRunes:]
		}
		cur = append(cur, rs...)
	}
	emit()

	return out
}

// splitKeep splits s after every rune in seps, keeping the separator on the
// left-hand piece.
func splitKeep(s, seps string) []string {
	var out []string
	startIdx := 0
	for i, r := range s {
		if strings.ContainsRune(seps, r) {
			end := i + utf8.RuneLen(r)
			out = append(out, s[startIdx:end])
			startIdx = end
		}
	}
	if startIdx < len(s) {
		out = append(out, s[startIdx:])
	}
	return out
}
