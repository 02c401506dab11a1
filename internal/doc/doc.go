// Package doc defines the unmeasured document model produced by the block
// sources (JSON templates, HTML) and consumed by the measurement
// collaborator.
package doc

import (
	"github.com/briefpdf/briefpdf/internal/layout"
)

// ElementType identifies the variant of a document element.
type ElementType string

const (
	Heading   ElementType = "heading"
	Paragraph ElementType = "paragraph"
	List      ElementType = "list"
	Quote     ElementType = "quote"
	Rule      ElementType = "hr"
	Signature ElementType = "signature"
	Table     ElementType = "table"
)

// Element is a single content element within a document. The Type field
// determines which other fields are relevant.
type Element struct {
	Type ElementType `json:"type"`

	// Text content (heading, paragraph, quote)
	Text  string `json:"text,omitempty"`
	Level int    `json:"level,omitempty"` // heading level 1-6

	// List
	Items   []string `json:"items,omitempty"`
	Ordered bool     `json:"ordered,omitempty"`
	Indent  int      `json:"indent,omitempty"` // nesting level, 0 = top

	// Signature
	Signature *layout.SignatureData `json:"signature,omitempty"`

	// Table
	Columns []string   `json:"columns,omitempty"`
	Rows    [][]string `json:"rows,omitempty"`
}

// Document is the top-level model of one legal document before measurement.
type Document struct {
	// Type selects the formatting rule set, e.g. "contract" or "motion".
	Type     string    `json:"documentType"`
	Title    string    `json:"title,omitempty"`
	Author   string    `json:"author,omitempty"`
	Elements []Element `json:"elements"`
}
