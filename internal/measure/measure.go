// Package measure is the text-measurement collaborator: it derives block
// heights from word counts and formatting rules so the pagination engine
// receives pre-measured input. The engine itself never measures.
package measure

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/briefpdf/briefpdf/internal/doc"
	"github.com/briefpdf/briefpdf/internal/layout"
	"github.com/briefpdf/briefpdf/internal/rules"
)

// wordsPerLine is the estimated average of rendered words per line. The
// pagination engine's splitting policy assumes the same line model.
const wordsPerLine = 10

// ruleHeight is the vertical extent of a horizontal rule block.
const ruleHeight = 12.0

// Measurer converts document elements into measured layout blocks.
type Measurer struct {
	provider *rules.Provider
	logger   *slog.Logger
}

// New creates a measurer backed by a formatting rules provider.
func New(provider *rules.Provider, logger *slog.Logger) *Measurer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Measurer{provider: provider, logger: logger}
}

// Blocks measures every element of a document and returns the ordered block
// list ready for pagination. Headings are marked keep-with-next so they
// never end a page.
func (m *Measurer) Blocks(documentType string, d *doc.Document) ([]layout.Block, error) {
	r := m.provider.Rules(documentType)
	lineHeight := m.provider.LineHeight(documentType, false)
	sigLineHeight := m.provider.LineHeight(documentType, true)

	var blocks []layout.Block
	for i, e := range d.Elements {
		switch e.Type {
		case doc.Heading:
			blocks = append(blocks, layout.Block{
				Kind:         layout.Heading,
				Text:         e.Text,
				Level:        e.Level,
				Height:       headingHeight(r, e.Level),
				KeepWithNext: true,
			})
		case doc.Paragraph:
			blocks = append(blocks, layout.Block{
				Kind:      layout.Text,
				Text:      e.Text,
				Height:    textHeight(e.Text, lineHeight, r.ParagraphSpacing),
				Breakable: true,
			})
		case doc.Quote:
			blocks = append(blocks, layout.Block{
				Kind:   layout.BlockQuote,
				Text:   e.Text,
				Height: textHeight(e.Text, lineHeight, r.ParagraphSpacing),
			})
		case doc.Rule:
			blocks = append(blocks, layout.Block{
				Kind:   layout.HorizontalRule,
				Height: ruleHeight,
			})
		case doc.List:
			for idx, item := range e.Items {
				blocks = append(blocks, layout.Block{
					Kind:   layout.ListItem,
					Text:   item,
					Height: textHeight(item, lineHeight, 0),
					List: &layout.ListInfo{
						Ordered: e.Ordered,
						Level:   e.Indent,
						Marker:  listMarker(e.Ordered, idx),
					},
				})
			}
		case doc.Signature:
			if e.Signature.Layout == layout.SideBySide &&
				e.Signature.EffectiveLayout() == layout.SingleColumn {
				m.logger.Warn("side-by-side signature has fewer than two parties, rendering single-column",
					"markerId", e.Signature.MarkerID)
			}
			blocks = append(blocks, layout.Block{
				Kind:      layout.Signature,
				Signature: e.Signature,
				Height:    layout.SignatureHeight(e.Signature, sigLineHeight),
			})
		case doc.Table:
			rows := make([][]string, 0, len(e.Rows)+1)
			if len(e.Columns) > 0 {
				rows = append(rows, e.Columns)
			}
			rows = append(rows, e.Rows...)
			blocks = append(blocks, layout.Block{
				Kind:   layout.Table,
				Rows:   rows,
				Height: float64(len(rows))*lineHeight + r.ParagraphSpacing,
			})
		default:
			return nil, fmt.Errorf("element %d: cannot measure element type %q", i, e.Type)
		}
	}
	return blocks, nil
}

// textHeight estimates the extent of flowed text: full lines under the
// words-per-line model plus trailing paragraph spacing.
func textHeight(text string, lineHeight, spacing float64) float64 {
	words := len(strings.Fields(text))
	lines := (words + wordsPerLine - 1) / wordsPerLine
	if lines < 1 {
		lines = 1
	}
	return float64(lines)*lineHeight + spacing
}

// headingHeight scales the body font up for high-level headings and keeps
// one line of extra breathing room below.
func headingHeight(r rules.FormattingRules, level int) float64 {
	size := r.FontSize + float64(7-level)
	if size < r.FontSize {
		size = r.FontSize
	}
	return size*1.2 + r.ParagraphSpacing
}

// listMarker renders the marker glyph for a list item.
func listMarker(ordered bool, index int) string {
	if ordered {
		return fmt.Sprintf("%d.", index+1)
	}
	return "•"
}
