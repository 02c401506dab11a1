// Package api is the main entry point for converting legal document
// sources into paginated PDFs. The pipeline is: parse (JSON template or
// HTML) into the document model, measure blocks against the formatting
// rules, paginate, render.
package api

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/briefpdf/briefpdf/internal/doc"
	"github.com/briefpdf/briefpdf/internal/measure"
	"github.com/briefpdf/briefpdf/internal/pagination"
	parserhtml "github.com/briefpdf/briefpdf/internal/parser/html"
	"github.com/briefpdf/briefpdf/internal/parser/template"
	"github.com/briefpdf/briefpdf/internal/render/pdf"
	"github.com/briefpdf/briefpdf/internal/res"
	"github.com/briefpdf/briefpdf/internal/rules"
)

// Converter is the main API for converting documents to PDF
type Converter struct {
	options  Options
	logger   *slog.Logger
	provider *rules.Provider
	loader   *res.Loader
}

// New creates a new converter with default options
func New() *Converter {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates a new converter with the specified options
func NewWithOptions(options Options) *Converter {
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Converter{
		options:  options,
		logger:   logger,
		provider: rules.NewProvider(logger),
		loader:   res.NewLoader(),
	}
}

// WithOption returns a new converter with the specified option set
func (c *Converter) WithOption(option Option) *Converter {
	newOptions := c.options
	option(&newOptions)
	return NewWithOptions(newOptions)
}

// Layout parses a JSON template and returns the page plan without
// rendering. Useful for callers that dispatch drawing themselves.
func (c *Converter) Layout(templateJSON []byte) (*pagination.Result, error) {
	d, err := template.NewParser().Parse(templateJSON)
	if err != nil {
		return nil, err
	}
	_, result, err := c.layoutDocument(d)
	return result, err
}

// Convert converts a JSON document template to PDF and writes the result
// to the specified writer
func (c *Converter) Convert(templateJSON []byte, output io.Writer) error {
	d, err := template.NewParser().Parse(templateJSON)
	if err != nil {
		return err
	}
	return c.renderDocument(d, output)
}

// ConvertToFile converts a JSON document template to PDF and writes the
// result to the specified file
func (c *Converter) ConvertToFile(templateJSON []byte, outputPath string) error {
	d, err := template.NewParser().Parse(templateJSON)
	if err != nil {
		return err
	}
	return c.renderDocumentToFile(d, outputPath)
}

// ConvertHTML converts an HTML document to PDF and writes the result to
// the specified writer
func (c *Converter) ConvertHTML(htmlContent string, output io.Writer) error {
	d, err := parserhtml.NewParser().ParseString(htmlContent)
	if err != nil {
		return fmt.Errorf("failed to parse HTML: %w", err)
	}
	return c.renderDocument(d, output)
}

// ConvertFile converts a document source file (JSON template or HTML,
// local path or URL) to a PDF file
func (c *Converter) ConvertFile(inputPath, outputPath string) error {
	src, err := c.loader.Load(inputPath)
	if err != nil {
		return err
	}

	var d *doc.Document
	switch src.Kind {
	case res.SourceTemplate:
		d, err = template.NewParser().Parse(src.Data)
	case res.SourceHTML:
		d, err = parserhtml.NewParser().ParseString(src.GetString())
	default:
		return fmt.Errorf("unsupported source format: %s", inputPath)
	}
	if err != nil {
		return err
	}
	return c.renderDocumentToFile(d, outputPath)
}

// ConvertBytes converts a JSON document template to PDF bytes
func (c *Converter) ConvertBytes(templateJSON []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Convert(templateJSON, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// layoutDocument runs measurement and pagination for a parsed document and
// returns the effective document type with the page plan.
func (c *Converter) layoutDocument(d *doc.Document) (string, *pagination.Result, error) {
	if err := c.loadRules(); err != nil {
		return "", nil, err
	}

	documentType := c.options.DocumentType
	if documentType == "" {
		documentType = d.Type
	}

	blocks, err := measure.New(c.provider, c.logger).Blocks(documentType, d)
	if err != nil {
		return "", nil, err
	}

	result, err := pagination.NewEngine(c.provider, c.logger).Paginate(documentType, blocks)
	if err != nil {
		return "", nil, err
	}

	if c.options.Debug {
		c.logger.Debug("layout complete",
			"documentType", documentType,
			"blocks", len(blocks),
			"pages", result.TotalPages)
	}
	return documentType, result, nil
}

func (c *Converter) renderDocument(d *doc.Document, output io.Writer) error {
	documentType, result, err := c.layoutDocument(d)
	if err != nil {
		return err
	}
	renderer := c.newRenderer()
	return renderer.RenderTo(output, documentType, result, c.renderOptions(d))
}

func (c *Converter) renderDocumentToFile(d *doc.Document, outputPath string) error {
	documentType, result, err := c.layoutDocument(d)
	if err != nil {
		return err
	}
	renderer := c.newRenderer()
	return renderer.Render(documentType, result, outputPath, c.renderOptions(d))
}

func (c *Converter) newRenderer() *pdf.Renderer {
	renderer := pdf.NewRenderer(c.provider, c.logger)
	renderer.Debug = c.options.Debug
	return renderer
}

func (c *Converter) renderOptions(d *doc.Document) pdf.RenderOptions {
	title := c.options.Title
	if title == "" {
		title = d.Title
	}
	author := c.options.Author
	if author == "" {
		author = d.Author
	}
	return pdf.RenderOptions{
		Title:    title,
		Author:   author,
		Subject:  c.options.Subject,
		Keywords: c.options.Keywords,
		Creator:  "briefpdf",
		Producer: "briefpdf",
	}
}

// loadRules merges the configured rules override file, once.
func (c *Converter) loadRules() error {
	if c.options.RulesFile == "" {
		return nil
	}
	path := c.options.RulesFile
	c.options.RulesFile = ""
	if err := c.provider.LoadOverrides(path); err != nil {
		return fmt.Errorf("failed to load rules overrides: %w", err)
	}
	return nil
}
