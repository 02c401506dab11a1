package html

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/briefpdf/briefpdf/internal/doc"
	"github.com/briefpdf/briefpdf/internal/layout"
)

func parse(t *testing.T, content string) *doc.Document {
	t.Helper()
	d, err := NewParser().ParseString(content)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	return d
}

func TestParse_Metadata(t *testing.T) {
	d := parse(t, `<html><head>
		<meta name="document-type" content="motion">
		<title>Motion to Dismiss</title>
	</head><body></body></html>`)

	if d.Type != "motion" {
		t.Errorf("Type = %q, want motion", d.Type)
	}
	if d.Title != "Motion to Dismiss" {
		t.Errorf("Title = %q, want Motion to Dismiss", d.Title)
	}
}

func TestParse_BodyElements(t *testing.T) {
	d := parse(t, `<body>
		<h2>Argument</h2>
		<p>The complaint fails to state a claim.</p>
		<blockquote>Quoted rule text.</blockquote>
		<hr>
	</body>`)

	want := []doc.Element{
		{Type: doc.Heading, Text: "Argument", Level: 2},
		{Type: doc.Paragraph, Text: "The complaint fails to state a claim."},
		{Type: doc.Quote, Text: "Quoted rule text."},
		{Type: doc.Rule},
	}
	if diff := cmp.Diff(want, d.Elements); diff != "" {
		t.Errorf("Elements mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_SkipsEmptyParagraphs(t *testing.T) {
	d := parse(t, `<body><p>  </p><p>real</p></body>`)

	if len(d.Elements) != 1 || d.Elements[0].Text != "real" {
		t.Errorf("Whitespace-only paragraphs must be dropped, got %+v", d.Elements)
	}
}

func TestParse_NormalizesWhitespace(t *testing.T) {
	d := parse(t, "<body><p>broken\n   across\t lines</p></body>")

	if got := d.Elements[0].Text; got != "broken across lines" {
		t.Errorf("Text = %q, want normalized single spaces", got)
	}
}

func TestParse_InlineMarkupFlattens(t *testing.T) {
	d := parse(t, `<body><p>The <em>moving</em> party <strong>must</strong> show cause.</p></body>`)

	if got := d.Elements[0].Text; got != "The moving party must show cause." {
		t.Errorf("Text = %q", got)
	}
}

func TestParse_Lists(t *testing.T) {
	d := parse(t, `<body>
		<ol>
			<li>First claim</li>
			<li>Second claim</li>
		</ol>
		<ul><li>Exhibit A</li></ul>
	</body>`)

	want := []doc.Element{
		{Type: doc.List, Items: []string{"First claim", "Second claim"}, Ordered: true},
		{Type: doc.List, Items: []string{"Exhibit A"}},
	}
	if diff := cmp.Diff(want, d.Elements); diff != "" {
		t.Errorf("Elements mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_NestedListsGetIndentLevels(t *testing.T) {
	d := parse(t, `<body>
		<ul>
			<li>parent
				<ul><li>child</li></ul>
			</li>
		</ul>
	</body>`)

	if len(d.Elements) != 2 {
		t.Fatalf("Expected 2 list elements, got %d: %+v", len(d.Elements), d.Elements)
	}
	if d.Elements[0].Indent != 0 || d.Elements[0].Items[0] != "parent" {
		t.Errorf("Outer list wrong: %+v", d.Elements[0])
	}
	if d.Elements[1].Indent != 1 || d.Elements[1].Items[0] != "child" {
		t.Errorf("Nested list wrong: %+v", d.Elements[1])
	}
}

func TestParse_Table(t *testing.T) {
	d := parse(t, `<body>
		<table>
			<tr><th>Item</th><th>Amount</th></tr>
			<tr><td>Filing fee</td><td>$400</td></tr>
			<tr><td>Service</td><td>$75</td></tr>
		</table>
	</body>`)

	if len(d.Elements) != 1 {
		t.Fatalf("Expected 1 table element, got %d", len(d.Elements))
	}
	e := d.Elements[0]
	if e.Type != doc.Table {
		t.Fatalf("Type = %q, want table", e.Type)
	}
	if diff := cmp.Diff([]string{"Item", "Amount"}, e.Columns); diff != "" {
		t.Errorf("Columns mismatch (-want +got):\n%s", diff)
	}
	if len(e.Rows) != 2 || e.Rows[1][1] != "$75" {
		t.Errorf("Rows mismatch: %+v", e.Rows)
	}
}

func TestParse_SignatureSection(t *testing.T) {
	d := parse(t, `<body>
		<section class="signature-block" data-layout="side-by-side" data-notary="true" data-marker-id="sig-1">
			<div class="party" data-role="Seller" data-name="Jordan Avery" data-title="Managing Member" data-date-line="true"></div>
			<div class="party" data-role="Buyer" data-name="Casey Bright" data-company="Bright Holdings LLC"></div>
		</section>
	</body>`)

	if len(d.Elements) != 1 {
		t.Fatalf("Expected 1 signature element, got %d", len(d.Elements))
	}
	sig := d.Elements[0].Signature
	if sig == nil {
		t.Fatal("Signature payload missing")
	}
	if sig.MarkerID != "sig-1" {
		t.Errorf("MarkerID = %q, want sig-1", sig.MarkerID)
	}
	if sig.Layout != layout.SideBySide {
		t.Errorf("Layout = %q, want side-by-side", sig.Layout)
	}
	if !sig.NotaryRequired {
		t.Errorf("Notary flag lost")
	}

	want := []layout.Party{
		{Role: "Seller", Name: "Jordan Avery", Title: "Managing Member", HasDateLine: true},
		{Role: "Buyer", Name: "Casey Bright", Company: "Bright Holdings LLC"},
	}
	if diff := cmp.Diff(want, sig.Parties); diff != "" {
		t.Errorf("Parties mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_SignatureDefaults(t *testing.T) {
	d := parse(t, `<body>
		<div class="signature-block">
			<div class="party" data-role="Affiant"></div>
		</div>
	</body>`)

	sig := d.Elements[0].Signature
	if sig.Layout != layout.SingleColumn {
		t.Errorf("Layout = %q, want single", sig.Layout)
	}
	if sig.MarkerID == "" {
		t.Errorf("A marker ID must be generated when the markup has none")
	}
	if sig.NotaryRequired {
		t.Errorf("Notary must default to false")
	}
}

func TestParse_SignatureWithoutParties(t *testing.T) {
	_, err := NewParser().ParseString(`<body>
		<section class="signature-block" data-layout="side-by-side"></section>
	</body>`)

	if err == nil {
		t.Fatalf("Expected an error for a signature section with no parties")
	}
	if !strings.Contains(err.Error(), "without parties") {
		t.Errorf("Error %q does not name the missing parties", err)
	}
}

func TestParse_DocumentOrder(t *testing.T) {
	d := parse(t, `<body>
		<h1>Agreement</h1>
		<p>One.</p>
		<table><tr><td>x</td></tr></table>
		<p>Two.</p>
		<section class="signature-block"><div class="party" data-role="Seller"></div></section>
	</body>`)

	want := []doc.ElementType{doc.Heading, doc.Paragraph, doc.Table, doc.Paragraph, doc.Signature}
	if len(d.Elements) != len(want) {
		t.Fatalf("Expected %d elements, got %d", len(want), len(d.Elements))
	}
	for i, et := range want {
		if d.Elements[i].Type != et {
			t.Errorf("Element %d: type %q, want %q", i, d.Elements[i].Type, et)
		}
	}
}
