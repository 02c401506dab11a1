package layout

import (
	"errors"
	"testing"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Heading, "heading"},
		{Text, "text"},
		{ListItem, "list-item"},
		{BlockQuote, "block-quote"},
		{HorizontalRule, "horizontal-rule"},
		{Signature, "signature"},
		{Table, "table"},
		{Kind(99), "kind(99)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"Empty", "", 0},
		{"Single", "hereby", 1},
		{"Sentence", "The party of the first part.", 6},
		{"ExtraWhitespace", "  two\t\twords  ", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Block{Kind: Text, Text: tt.text}
			if got := b.WordCount(); got != tt.want {
				t.Errorf("WordCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	t.Run("EmptyList", func(t *testing.T) {
		if err := Validate(nil); !errors.Is(err, ErrNoBlocks) {
			t.Errorf("Expected ErrNoBlocks, got %v", err)
		}
	})

	t.Run("ZeroHeight", func(t *testing.T) {
		blocks := []Block{
			{Kind: Text, Text: "fine", Height: 10},
			{Kind: Heading, Text: "broken", Height: 0},
		}
		err := Validate(blocks)
		if !errors.Is(err, ErrInvalidHeight) {
			t.Fatalf("Expected ErrInvalidHeight, got %v", err)
		}
	})

	t.Run("NegativeHeight", func(t *testing.T) {
		err := Validate([]Block{{Kind: Text, Text: "x", Height: -1}})
		if !errors.Is(err, ErrInvalidHeight) {
			t.Errorf("Expected ErrInvalidHeight, got %v", err)
		}
	})

	t.Run("Valid", func(t *testing.T) {
		blocks := []Block{
			{Kind: Heading, Text: "Article I", Height: 30},
			{Kind: Text, Text: "body", Height: 15, Breakable: true},
		}
		if err := Validate(blocks); err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
	})
}
