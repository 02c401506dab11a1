// Package html converts semantic HTML into the document model. It handles
// the tags legal document content uses (h1-h6, p, ul/ol/li, blockquote, hr,
// table) plus signature sections marked up as
//
//	<section class="signature-block" data-layout="side-by-side" data-notary="true">
//	  <div class="party" data-role="Seller" data-name="..." data-date-line="true"></div>
//	  ...
//	</section>
package html

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/net/html"

	"github.com/briefpdf/briefpdf/internal/doc"
	"github.com/briefpdf/briefpdf/internal/layout"
)

// Parser represents an HTML document parser
type Parser struct{}

// NewParser creates a new HTML parser
func NewParser() *Parser {
	return &Parser{}
}

// ParseString parses HTML from a string
func (p *Parser) ParseString(content string) (*doc.Document, error) {
	return p.Parse(strings.NewReader(content))
}

// Parse parses HTML from an io.Reader into a document. The document type
// may be supplied via <meta name="document-type" content="...">.
func (p *Parser) Parse(r io.Reader) (*doc.Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	d := &doc.Document{}
	walk(root, d)
	for i, e := range d.Elements {
		if e.Type == doc.Signature && len(e.Signature.Parties) == 0 {
			return nil, fmt.Errorf("element %d: signature block without parties", i)
		}
	}
	return d, nil
}

// walk descends the node tree collecting content elements in document order.
func walk(n *html.Node, d *doc.Document) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "meta":
			if attr(n, "name") == "document-type" {
				d.Type = attr(n, "content")
			}
		case "title":
			d.Title = textContent(n)
		case "h1", "h2", "h3", "h4", "h5", "h6":
			level := int(n.Data[1] - '0')
			d.Elements = append(d.Elements, doc.Element{
				Type:  doc.Heading,
				Text:  textContent(n),
				Level: level,
			})
			return
		case "p":
			if text := textContent(n); text != "" {
				d.Elements = append(d.Elements, doc.Element{
					Type: doc.Paragraph,
					Text: text,
				})
			}
			return
		case "blockquote":
			d.Elements = append(d.Elements, doc.Element{
				Type: doc.Quote,
				Text: textContent(n),
			})
			return
		case "hr":
			d.Elements = append(d.Elements, doc.Element{Type: doc.Rule})
			return
		case "ul", "ol":
			collectList(n, d, 0)
			return
		case "table":
			if e, ok := collectTable(n); ok {
				d.Elements = append(d.Elements, e)
			}
			return
		case "section", "div":
			if strings.Contains(attr(n, "class"), "signature-block") {
				d.Elements = append(d.Elements, collectSignature(n))
				return
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, d)
	}
}

// collectList flattens a possibly nested list into one list element per
// nesting level, preserving item order.
func collectList(n *html.Node, d *doc.Document, level int) {
	ordered := n.Data == "ol"
	var items []string

	flush := func() {
		if len(items) > 0 {
			d.Elements = append(d.Elements, doc.Element{
				Type:    doc.List,
				Items:   items,
				Ordered: ordered,
				Indent:  level,
			})
			items = nil
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.Data != "li" {
			continue
		}
		if text := ownText(c); text != "" {
			items = append(items, text)
		}
		for g := c.FirstChild; g != nil; g = g.NextSibling {
			if g.Type == html.ElementNode && (g.Data == "ul" || g.Data == "ol") {
				flush()
				collectList(g, d, level+1)
			}
		}
	}
	flush()
}

// collectTable gathers header and body rows into a table element.
func collectTable(n *html.Node) (doc.Element, bool) {
	e := doc.Element{Type: doc.Table}

	var visit func(*html.Node)
	visit = func(cur *html.Node) {
		if cur.Type == html.ElementNode && cur.Data == "tr" {
			var cells []string
			header := false
			for c := cur.FirstChild; c != nil; c = c.NextSibling {
				if c.Type != html.ElementNode {
					continue
				}
				switch c.Data {
				case "th":
					header = true
					cells = append(cells, textContent(c))
				case "td":
					cells = append(cells, textContent(c))
				}
			}
			if header && e.Columns == nil {
				e.Columns = cells
			} else if len(cells) > 0 {
				e.Rows = append(e.Rows, cells)
			}
			return
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)

	return e, len(e.Columns) > 0 || len(e.Rows) > 0
}

// collectSignature builds signature data from a marked-up section.
func collectSignature(n *html.Node) doc.Element {
	data := &layout.SignatureData{
		MarkerID:       attr(n, "data-marker-id"),
		Layout:         layout.SignatureLayout(attr(n, "data-layout")),
		NotaryRequired: parseBool(attr(n, "data-notary")),
	}
	if data.MarkerID == "" {
		data.MarkerID = uuid.NewString()
	}
	if data.Layout == "" {
		data.Layout = layout.SingleColumn
	}

	var visit func(*html.Node)
	visit = func(cur *html.Node) {
		if cur.Type == html.ElementNode && strings.Contains(attr(cur, "class"), "party") {
			data.Parties = append(data.Parties, layout.Party{
				Role:        attr(cur, "data-role"),
				Name:        attr(cur, "data-name"),
				Title:       attr(cur, "data-title"),
				Company:     attr(cur, "data-company"),
				HasDateLine: parseBool(attr(cur, "data-date-line")),
			})
			return
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		visit(c)
	}

	return doc.Element{Type: doc.Signature, Signature: data}
}

// attr returns the value of a named attribute, or "".
func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Val
		}
	}
	return ""
}

func parseBool(v string) bool {
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

// textContent returns the concatenated, whitespace-normalized text of a
// node and all its descendants.
func textContent(n *html.Node) string {
	var b strings.Builder
	var visit func(*html.Node)
	visit = func(cur *html.Node) {
		if cur.Type == html.TextNode {
			b.WriteString(cur.Data)
			b.WriteString(" ")
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

// ownText returns the whitespace-normalized text belonging directly to a
// node, excluding nested list content.
func ownText(n *html.Node) string {
	var b strings.Builder
	var visit func(*html.Node)
	visit = func(cur *html.Node) {
		if cur.Type == html.TextNode {
			b.WriteString(cur.Data)
			b.WriteString(" ")
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && (c.Data == "ul" || c.Data == "ol") {
				continue
			}
			visit(c)
		}
	}
	visit(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
