package motiongraph

import (
	"hash/fnv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenize splits on runs of whitespace and drops empty tokens.
func Tokenize(text string) []string {
	return strings.Fields(text)
}

// SplitBlocks cuts text into sentence-like blocks. A block ends at a newline
// or at a run of terminators (. ! ? …) followed by whitespace or the end of
// input. Terminators stay with their block.
func SplitBlocks(text string) []string {
	var (
		out []string
		cur strings.Builder
	)
	flush := func() {
		if s := strings.TrimSpace(cur.String()); s != "" {
			out = append(out, s)
		}
		cur.Reset()
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\n' || r == '\r' {
			flush()
			continue
		}
		cur.WriteRune(r)
		if !isTerminator(r) {
			continue
		}
		for i+1 < len(runes) && isTerminator(runes[i+1]) {
			i++
			cur.WriteRune(runes[i])
		}
		if i+1 == len(runes) || unicode.IsSpace(runes[i+1]) {
			flush()
		}
	}
	flush()
	return out
}

func isTerminator(r rune) bool {
	switch r {
	case '.', '!', '?', '…':
		return true
	}
	return false
}

// HighlightIndices returns the positions of words equal to any of terms,
// ignoring case only. Terms are trimmed of whitespace. Nil when nothing matches.
func HighlightIndices(words, terms []string) []int {
	if len(words) == 0 || len(terms) == 0 {
		return nil
	}
	want := make([]string, 0, len(terms))
	for _, t := range terms {
		if n := strings.TrimSpace(t); n != "" {
			want = append(want, n)
		}
	}
	if len(want) == 0 {
		return nil
	}
	var out []int
	for i, w := range words {
		for _, t := range want {
			if strings.EqualFold(w, t) {
				out = append(out, i)
				break
			}
		}
	}
	return out
}

// Truncate hard-cuts s to at most max runes.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}

func runeLen(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}

// DefaultSeed is the FNV-1a 32 hash of text, so equal scripts get equal
// timelines when the caller does not pin a seed.
func DefaultSeed(text string) int64 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(text))
	return int64(h.Sum32())
}
