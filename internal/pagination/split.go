package pagination

import (
	"math"
	"strings"

	"github.com/briefpdf/briefpdf/internal/layout"
)

// splitText breaks a breakable text block into a fragment that fits the
// available height and a remainder. The line model is the shared
// words-per-line estimate; the split point prefers a sentence boundary
// within the search radius of the line budget. The split is refused (ok
// false) when no fragment of at least minFragmentWords fits, in which case
// the caller pushes the block whole to the next page.
func (p *Paginator) splitText(b layout.Block, available float64) (first, rest layout.Block, ok bool) {
	words := strings.Fields(b.Text)
	n := len(words)
	if n < minWordsToSplit {
		return layout.Block{}, layout.Block{}, false
	}

	lines := estimatedLines(n)
	lineHeight := b.Height / float64(lines)
	fitLines := int(math.Floor(available / lineHeight))
	if fitLines < 1 {
		return layout.Block{}, layout.Block{}, false
	}

	candidate := fitLines * wordsPerLine
	if candidate > n-minFragmentWords {
		candidate = n - minFragmentWords
	}
	if candidate < minFragmentWords {
		return layout.Block{}, layout.Block{}, false
	}

	// A split index is acceptable when both fragments meet the minimum
	// word count and the first fragment still fits the available height.
	fits := func(s int) bool {
		if s < minFragmentWords || s > n-minFragmentWords {
			return false
		}
		return float64(estimatedLines(s))*lineHeight <= available+0.01
	}
	if !fits(candidate) {
		return layout.Block{}, layout.Block{}, false
	}

	split := candidate
	for d := 0; d <= sentenceSearchRadius; d++ {
		if s := candidate - d; fits(s) && endsSentence(words[s-1]) {
			split = s
			break
		}
		if s := candidate + d; d > 0 && fits(s) && endsSentence(words[s-1]) {
			split = s
			break
		}
	}

	first = layout.Block{
		Kind:      layout.Text,
		Text:      strings.Join(words[:split], " "),
		Height:    float64(estimatedLines(split)) * lineHeight,
		Breakable: true,
		Continued: true,
	}
	rest = layout.Block{
		Kind:         layout.Text,
		Text:         strings.Join(words[split:], " "),
		Height:       float64(estimatedLines(n-split)) * lineHeight,
		Breakable:    true,
		KeepWithNext: b.KeepWithNext,
	}
	return first, rest, true
}

// estimatedLines returns the number of rendered lines estimated for a word
// count under the shared words-per-line model.
func estimatedLines(wordCount int) int {
	lines := (wordCount + wordsPerLine - 1) / wordsPerLine
	if lines < 1 {
		lines = 1
	}
	return lines
}

// endsSentence reports whether a word ends at a sentence-like boundary.
func endsSentence(word string) bool {
	word = strings.TrimRight(word, `"')]`)
	return strings.HasSuffix(word, ".") ||
		strings.HasSuffix(word, "!") ||
		strings.HasSuffix(word, "?")
}
