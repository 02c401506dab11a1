// Package template parses declarative JSON document templates into the
// document model.
//
// Example template:
//
//	{
//	  "documentType": "contract",
//	  "title": "Asset Purchase Agreement",
//	  "elements": [
//	    {"type": "heading", "text": "1. Definitions", "level": 2},
//	    {"type": "paragraph", "text": "As used in this Agreement..."},
//	    {"type": "signature", "signature": {
//	      "layout": "side-by-side",
//	      "parties": [
//	        {"role": "Seller", "name": "Jordan Avery", "hasDateLine": true},
//	        {"role": "Buyer", "name": "Casey Bright", "hasDateLine": true}
//	      ]
//	    }}
//	  ]
//	}
package template

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/briefpdf/briefpdf/internal/doc"
	"github.com/briefpdf/briefpdf/internal/layout"
)

// Parser parses JSON document templates
type Parser struct{}

// NewParser creates a new template parser
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses a JSON template into a document, validating element types
// and assigning marker IDs to signature blocks that lack one.
func (p *Parser) Parse(data []byte) (*doc.Document, error) {
	var d doc.Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}
	if err := p.normalize(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (p *Parser) normalize(d *doc.Document) error {
	for i := range d.Elements {
		e := &d.Elements[i]
		switch e.Type {
		case doc.Heading:
			if e.Level < 1 {
				e.Level = 1
			}
			if e.Level > 6 {
				e.Level = 6
			}
		case doc.Paragraph, doc.Quote, doc.Rule, doc.List, doc.Table:
			// nothing to normalize
		case doc.Signature:
			if e.Signature == nil {
				return fmt.Errorf("element %d: signature element without signature data", i)
			}
			if len(e.Signature.Parties) == 0 {
				return fmt.Errorf("element %d: signature element without parties", i)
			}
			if e.Signature.Layout == "" {
				e.Signature.Layout = layout.SingleColumn
			}
			if e.Signature.MarkerID == "" {
				e.Signature.MarkerID = uuid.NewString()
			}
		default:
			return fmt.Errorf("element %d: unknown element type %q", i, e.Type)
		}
	}
	return nil
}
