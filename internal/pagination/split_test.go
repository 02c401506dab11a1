package pagination

import (
	"strings"
	"testing"

	"github.com/briefpdf/briefpdf/internal/layout"
)

func TestSplitText_PrefersSentenceBoundary(t *testing.T) {
	p := testPaginator(t, "contract")

	// 30 words, sentence ending at word 8; the candidate index is 10 so
	// the boundary sits inside the search radius and still fits the line
	// budget.
	words := make([]string, 30)
	for i := range words {
		words[i] = "lorem"
	}
	words[7] = "ipsum."
	b := layout.Block{
		Kind:      layout.Text,
		Text:      strings.Join(words, " "),
		Height:    45, // 3 lines of 15
		Breakable: true,
	}

	first, rest, ok := p.splitText(b, 20)
	if !ok {
		t.Fatal("Expected split to succeed")
	}
	if first.WordCount() != 8 {
		t.Errorf("Expected split after the sentence at word 8, got %d", first.WordCount())
	}
	if !first.Continued {
		t.Errorf("First fragment should be marked as continued")
	}
	if rest.WordCount() != 22 {
		t.Errorf("Expected 22 words in the remainder, got %d", rest.WordCount())
	}
	if got := first.WordCount() + rest.WordCount(); got != 30 {
		t.Errorf("Split lost words: %d != 30", got)
	}
}

func TestSplitText_FallsBackToCandidateWithoutBoundary(t *testing.T) {
	p := testPaginator(t, "contract")

	words := make([]string, 30)
	for i := range words {
		words[i] = "lorem"
	}
	b := layout.Block{
		Kind:      layout.Text,
		Text:      strings.Join(words, " "),
		Height:    45,
		Breakable: true,
	}

	first, _, ok := p.splitText(b, 20)
	if !ok {
		t.Fatal("Expected split to succeed")
	}
	if first.WordCount() != 10 {
		t.Errorf("Without a sentence boundary the split falls back to the line budget, got %d words", first.WordCount())
	}
}

func TestSplitText_RefusesSmallFragments(t *testing.T) {
	p := testPaginator(t, "contract")

	tests := []struct {
		name      string
		words     int
		height    float64
		available float64
	}{
		{"TooFewWords", 8, 15, 10},
		{"NoRoomForALine", 40, 60, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := textBlock(tc.words, tc.height)
			if _, _, ok := p.splitText(b, tc.available); ok {
				t.Errorf("Expected split to be refused")
			}
		})
	}
}

func TestSplitText_FragmentHeightsFromWordCounts(t *testing.T) {
	p := testPaginator(t, "contract")

	b := textBlock(40, 60) // 4 lines of 15
	first, rest, ok := p.splitText(b, 20)
	if !ok {
		t.Fatal("Expected split to succeed")
	}
	if first.Height != 15 {
		t.Errorf("First fragment: expected 1 line (15pt), got %v", first.Height)
	}
	if rest.Height != 45 {
		t.Errorf("Remainder: expected 3 lines (45pt), got %v", rest.Height)
	}
}

func TestEndsSentence(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"agreement.", true},
		{"herein!", true},
		{"really?", true},
		{`thereof."`, true},
		{"clause,", false},
		{"whereas", false},
	}
	for _, tc := range tests {
		if got := endsSentence(tc.word); got != tc.want {
			t.Errorf("endsSentence(%q) = %v, want %v", tc.word, got, tc.want)
		}
	}
}
