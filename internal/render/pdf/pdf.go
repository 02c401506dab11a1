// Package pdf is the render dispatcher: it walks a finished page plan in
// order and issues draw calls against an fpdf canvas, advancing the
// physical page exactly when the page number changes. PDF byte encoding is
// fpdf's concern, not ours.
package pdf

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"codeberg.org/go-pdf/fpdf"

	"github.com/briefpdf/briefpdf/internal/layout"
	"github.com/briefpdf/briefpdf/internal/pagination"
	"github.com/briefpdf/briefpdf/internal/rules"
)

// signatureLineWidth is the drawn length of a signature or date line.
const signatureLineWidth = 216.0 // 3 inches

// Renderer handles rendering a page plan to PDF
type Renderer struct {
	provider *rules.Provider
	logger   *slog.Logger
	// Debug enables draw-call logging
	Debug bool
}

// RenderOptions contains document metadata for rendering
type RenderOptions struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
	Producer string
}

// NewRenderer creates a new PDF renderer
func NewRenderer(provider *rules.Provider, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{
		provider: provider,
		logger:   logger,
	}
}

// Render renders a page plan to a PDF file
func (r *Renderer) Render(documentType string, result *pagination.Result, outputPath string, options RenderOptions) error {
	doc, err := r.render(documentType, result, options)
	if err != nil {
		return err
	}

	outputDir := filepath.Dir(outputPath)
	if _, err := os.Stat(outputDir); os.IsNotExist(err) {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	return doc.OutputFileAndClose(outputPath)
}

// RenderTo renders a page plan and writes the PDF to w
func (r *Renderer) RenderTo(w io.Writer, documentType string, result *pagination.Result, options RenderOptions) error {
	doc, err := r.render(documentType, result, options)
	if err != nil {
		return err
	}
	return doc.Output(w)
}

func (r *Renderer) render(documentType string, result *pagination.Result, options RenderOptions) (*fpdf.Fpdf, error) {
	fr := r.provider.Rules(documentType)

	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetAutoPageBreak(false, 0)
	doc.SetTitle(options.Title, true)
	doc.SetAuthor(options.Author, true)
	doc.SetSubject(options.Subject, true)
	doc.SetKeywords(options.Keywords, true)
	doc.SetCreator(options.Creator, true)
	doc.SetProducer(options.Producer, true)
	doc.SetMargins(fr.Margins.Left, fr.Margins.Top, fr.Margins.Right)
	doc.SetFont(fr.Font, "", fr.FontSize)

	for _, page := range result.Pages {
		doc.AddPage()
		y := fr.Margins.Top + r.provider.HeaderSpace(documentType, page.Number)

		if r.Debug {
			r.logger.Debug("rendering page",
				"page", page.Number, "blocks", len(page.Blocks))
		}

		for _, b := range page.Blocks {
			y = r.renderBlock(doc, documentType, fr, b, y)
		}

		r.renderPageNumber(doc, fr, page.Number)
	}

	if err := doc.Error(); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return doc, nil
}

// renderBlock draws one block at vertical position y and returns the
// position below it. The switch covers every block kind.
func (r *Renderer) renderBlock(doc *fpdf.Fpdf, documentType string, fr rules.FormattingRules, b layout.Block, y float64) float64 {
	x := fr.Margins.Left
	width := rules.LetterWidth - fr.Margins.Left - fr.Margins.Right
	lineHeight := r.provider.LineHeight(documentType, false)

	switch b.Kind {
	case layout.Heading:
		size := fr.FontSize + float64(7-b.Level)
		if size < fr.FontSize {
			size = fr.FontSize
		}
		doc.SetFont(fr.Font, "B", size)
		doc.SetXY(x, y)
		doc.MultiCell(width, size*1.2, b.Text, "", "L", false)
		doc.SetFont(fr.Font, "", fr.FontSize)

	case layout.Text:
		doc.SetXY(x+fr.ParagraphIndent, y)
		doc.Write(lineHeight, b.Text)

	case layout.ListItem:
		indent := float64(b.List.Level) * 18
		doc.SetXY(x+indent, y)
		doc.CellFormat(18, lineHeight, b.List.Marker, "", 0, "L", false, 0, "")
		doc.Write(lineHeight, b.Text)

	case layout.BlockQuote:
		doc.SetXY(x+fr.BlockQuoteIndent, y)
		doc.MultiCell(width-2*fr.BlockQuoteIndent, lineHeight, b.Text, "", "L", false)

	case layout.HorizontalRule:
		doc.SetLineWidth(0.5)
		doc.Line(x, y+b.Height/2, x+width, y+b.Height/2)

	case layout.Signature:
		r.renderSignature(doc, documentType, fr, b.Signature, x, y, width)

	case layout.Table:
		r.renderTable(doc, fr, b.Rows, x, y, width, lineHeight)
	}

	return y + b.Height
}

// renderSignature draws the party signature areas and, when required, the
// notary section. Signature content always uses single spacing regardless
// of the document's body spacing.
func (r *Renderer) renderSignature(doc *fpdf.Fpdf, documentType string, fr rules.FormattingRules, data *layout.SignatureData, x, y, width float64) {
	lineHeight := r.provider.LineHeight(documentType, true)

	var bottom float64
	if data.EffectiveLayout() == layout.SideBySide {
		colWidth := (width - 40) / 2
		left := r.renderParty(doc, fr, data.Parties[0], x, y, colWidth, lineHeight)
		right := r.renderParty(doc, fr, data.Parties[1], x+colWidth+40, y, colWidth, lineHeight)
		bottom = left
		if right > bottom {
			bottom = right
		}
		for _, p := range data.Parties[2:] {
			bottom = r.renderParty(doc, fr, p, x, bottom+layout.InterPartySpacing, width, lineHeight)
		}
	} else {
		bottom = y
		for i, p := range data.Parties {
			if i > 0 {
				bottom += layout.InterPartySpacing
			}
			bottom = r.renderParty(doc, fr, p, x, bottom, width, lineHeight)
		}
	}

	if data.NotaryRequired {
		r.renderNotary(doc, fr, x, bottom, width, lineHeight)
	}
}

// renderParty draws one party's signature area and returns the y below it.
func (r *Renderer) renderParty(doc *fpdf.Fpdf, fr rules.FormattingRules, p layout.Party, x, y, width, lineHeight float64) float64 {
	lineWidth := signatureLineWidth
	if lineWidth > width {
		lineWidth = width
	}

	doc.SetLineWidth(0.75)
	doc.Line(x, y+lineHeight*0.8, x+lineWidth, y+lineHeight*0.8)
	y += lineHeight

	doc.Text(x, y+lineHeight*0.8, p.Role)
	y += lineHeight

	for _, line := range []string{p.Name, p.Title, p.Company} {
		if line == "" {
			continue
		}
		doc.Text(x, y+lineHeight*0.8, line)
		y += lineHeight
	}

	if p.HasDateLine {
		doc.Text(x, y+lineHeight*0.8, "Date:")
		doc.Line(x+40, y+lineHeight*0.8, x+lineWidth, y+lineHeight*0.8)
		y += lineHeight
	}

	return y
}

// renderNotary draws the notary acknowledgment boilerplate inside its fixed
// allowance.
func (r *Renderer) renderNotary(doc *fpdf.Fpdf, fr rules.FormattingRules, x, y, width, lineHeight float64) {
	lines := []string{
		"STATE OF __________________ )",
		"COUNTY OF _________________ )",
		"",
		"Subscribed and sworn to before me this ____ day of ____________, 20___.",
	}
	for _, line := range lines {
		y += lineHeight
		if line != "" {
			doc.Text(x, y, line)
		}
	}

	y += lineHeight * 1.5
	lineWidth := signatureLineWidth
	if lineWidth > width {
		lineWidth = width
	}
	doc.Line(x, y, x+lineWidth, y)
	doc.Text(x, y+lineHeight, "Notary Public")
	doc.Text(x, y+2*lineHeight, "My commission expires: ______________")
}

// renderTable draws a simple bordered grid with equal column widths, first
// row treated as the header.
func (r *Renderer) renderTable(doc *fpdf.Fpdf, fr rules.FormattingRules, rows [][]string, x, y, width, lineHeight float64) {
	if len(rows) == 0 {
		return
	}
	cols := len(rows[0])
	if cols == 0 {
		return
	}
	colWidth := width / float64(cols)

	for i, row := range rows {
		doc.SetXY(x, y)
		if i == 0 {
			doc.SetFont(fr.Font, "B", fr.FontSize)
		}
		for _, cell := range row {
			doc.CellFormat(colWidth, lineHeight, cell, "1", 0, "L", false, 0, "")
		}
		if i == 0 {
			doc.SetFont(fr.Font, "", fr.FontSize)
		}
		y += lineHeight
	}
}

// renderPageNumber draws the page number footer in the configured position.
func (r *Renderer) renderPageNumber(doc *fpdf.Fpdf, fr rules.FormattingRules, pageNumber int) {
	num := strconv.Itoa(pageNumber)
	y := rules.LetterHeight - fr.Margins.Bottom/2

	doc.SetFont(fr.Font, "", 10)
	switch fr.PageNumberPosition {
	case rules.PageNumberBottomCenter:
		w := doc.GetStringWidth(num)
		doc.Text(rules.LetterWidth/2-w/2, y, num)
	case rules.PageNumberBottomRight:
		w := doc.GetStringWidth(num)
		doc.Text(rules.LetterWidth-fr.Margins.Right-w, y, num)
	case rules.PageNumberNone:
		// no footer
	}
	doc.SetFont(fr.Font, "", fr.FontSize)
}
