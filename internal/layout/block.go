// Package layout defines the measured content blocks the pagination engine
// places onto pages, and the geometry of signature sections.
package layout

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies the variant of a block. The set is closed; the render
// dispatcher switches over it exhaustively.
type Kind int

const (
	Heading Kind = iota
	Text
	ListItem
	BlockQuote
	HorizontalRule
	Signature
	Table
)

// String returns a human-readable name for the block kind.
func (k Kind) String() string {
	switch k {
	case Heading:
		return "heading"
	case Text:
		return "text"
	case ListItem:
		return "list-item"
	case BlockQuote:
		return "block-quote"
	case HorizontalRule:
		return "horizontal-rule"
	case Signature:
		return "signature"
	case Table:
		return "table"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ListInfo carries the structured payload of a list-item block.
type ListInfo struct {
	Ordered bool
	Level   int
	Marker  string
}

// Block is one unit of content to place. Heights are precomputed by a
// measurement collaborator before layout; the engine never measures text.
type Block struct {
	Kind Kind

	// Text is the payload for Heading, Text, ListItem and BlockQuote blocks.
	Text string
	// Level is the heading level, 1..6.
	Level int
	// List is the structured payload for ListItem blocks.
	List *ListInfo
	// Signature is the structured payload for Signature blocks.
	Signature *SignatureData
	// Rows is the cell payload for Table blocks, including the header row.
	Rows [][]string

	// Height is the vertical extent in points. Must be > 0.
	Height float64
	// Breakable marks blocks that may be split across a page boundary.
	// Only Text blocks are breakable; every other kind is atomic.
	Breakable bool
	// KeepWithNext forces this block onto the same page as the block that
	// immediately follows it.
	KeepWithNext bool
	// Continued marks a text fragment whose remainder begins the next
	// page. The orphan/widow pass leaves such boundaries alone.
	Continued bool
}

// WordCount returns the number of whitespace-separated words in the block's
// text payload.
func (b Block) WordCount() int {
	return len(strings.Fields(b.Text))
}

// Validation errors. These are the only fatal conditions of a layout call;
// everything else degrades with a logged warning.
var (
	ErrNoBlocks      = errors.New("layout: empty block list")
	ErrInvalidHeight = errors.New("layout: block height must be positive")
)

// Validate rejects malformed input before layout begins.
func Validate(blocks []Block) error {
	if len(blocks) == 0 {
		return ErrNoBlocks
	}
	for i, b := range blocks {
		if b.Height <= 0 {
			return fmt.Errorf("%w: block %d (%s) has height %.2f",
				ErrInvalidHeight, i, b.Kind, b.Height)
		}
	}
	return nil
}
