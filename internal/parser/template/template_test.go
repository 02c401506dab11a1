package template

import (
	"strings"
	"testing"

	"github.com/briefpdf/briefpdf/internal/doc"
	"github.com/briefpdf/briefpdf/internal/layout"
)

func TestParse_FullTemplate(t *testing.T) {
	data := []byte(`{
		"documentType": "contract",
		"title": "Asset Purchase Agreement",
		"author": "J. Associate",
		"elements": [
			{"type": "heading", "text": "1. Definitions", "level": 2},
			{"type": "paragraph", "text": "As used in this Agreement."},
			{"type": "quote", "text": "Quoted statutory text."},
			{"type": "list", "ordered": true, "items": ["first", "second"]},
			{"type": "hr"},
			{"type": "table", "columns": ["Item", "Amount"], "rows": [["Fee", "$400"]]},
			{"type": "signature", "signature": {
				"layout": "side-by-side",
				"parties": [
					{"role": "Seller", "name": "Jordan Avery", "hasDateLine": true},
					{"role": "Buyer", "name": "Casey Bright"}
				]
			}}
		]
	}`)

	d, err := NewParser().Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if d.Type != "contract" || d.Title != "Asset Purchase Agreement" {
		t.Errorf("Metadata lost: type=%q title=%q", d.Type, d.Title)
	}
	if len(d.Elements) != 7 {
		t.Fatalf("Expected 7 elements, got %d", len(d.Elements))
	}

	sig := d.Elements[6].Signature
	if sig == nil {
		t.Fatal("Signature payload missing")
	}
	if sig.Layout != layout.SideBySide {
		t.Errorf("Layout = %q, want side-by-side", sig.Layout)
	}
	if len(sig.Parties) != 2 || !sig.Parties[0].HasDateLine || sig.Parties[1].HasDateLine {
		t.Errorf("Party details lost: %+v", sig.Parties)
	}
}

func TestParse_AssignsMarkerID(t *testing.T) {
	data := []byte(`{
		"documentType": "contract",
		"elements": [
			{"type": "signature", "signature": {"parties": [{"role": "Seller"}]}},
			{"type": "signature", "signature": {"parties": [{"role": "Buyer"}]}}
		]
	}`)

	d, err := NewParser().Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	a := d.Elements[0].Signature.MarkerID
	b := d.Elements[1].Signature.MarkerID
	if a == "" || b == "" {
		t.Fatalf("Signatures without marker IDs must get generated ones")
	}
	if a == b {
		t.Errorf("Generated marker IDs must be unique, both %q", a)
	}
}

func TestParse_KeepsExplicitMarkerID(t *testing.T) {
	data := []byte(`{
		"elements": [
			{"type": "signature", "signature": {"markerId": "sig-seller", "parties": [{"role": "Seller"}]}}
		]
	}`)

	d, err := NewParser().Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := d.Elements[0].Signature.MarkerID; got != "sig-seller" {
		t.Errorf("MarkerID = %q, want sig-seller", got)
	}
}

func TestParse_DefaultsSignatureLayout(t *testing.T) {
	data := []byte(`{
		"elements": [
			{"type": "signature", "signature": {"parties": [{"role": "Seller"}]}}
		]
	}`)

	d, err := NewParser().Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := d.Elements[0].Signature.Layout; got != layout.SingleColumn {
		t.Errorf("Layout = %q, want single", got)
	}
}

func TestParse_ClampsHeadingLevel(t *testing.T) {
	data := []byte(`{
		"elements": [
			{"type": "heading", "text": "no level"},
			{"type": "heading", "text": "too deep", "level": 9}
		]
	}`)

	d, err := NewParser().Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if d.Elements[0].Level != 1 {
		t.Errorf("Missing level should clamp to 1, got %d", d.Elements[0].Level)
	}
	if d.Elements[1].Level != 6 {
		t.Errorf("Level 9 should clamp to 6, got %d", d.Elements[1].Level)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"MalformedJSON", `{"elements": [`, "failed to parse template"},
		{"UnknownElementType", `{"elements": [{"type": "sidebar"}]}`, "unknown element type"},
		{"SignatureWithoutData", `{"elements": [{"type": "signature"}]}`, "without signature data"},
		{"SignatureWithoutParties", `{"elements": [{"type": "signature", "signature": {}}]}`, "without parties"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParser().Parse([]byte(tt.data))
			if err == nil {
				t.Fatalf("Expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestParse_ElementOrderPreserved(t *testing.T) {
	data := []byte(`{
		"elements": [
			{"type": "heading", "text": "A", "level": 1},
			{"type": "paragraph", "text": "B"},
			{"type": "hr"},
			{"type": "paragraph", "text": "C"}
		]
	}`)

	d, err := NewParser().Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := []doc.ElementType{doc.Heading, doc.Paragraph, doc.Rule, doc.Paragraph}
	for i, et := range want {
		if d.Elements[i].Type != et {
			t.Errorf("Element %d: type %q, want %q", i, d.Elements[i].Type, et)
		}
	}
}
