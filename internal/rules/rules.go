package rules

import (
	"log/slog"
)

// LineSpacingMode selects the extra vertical gap added between body lines.
type LineSpacingMode string

const (
	SpacingSingle     LineSpacingMode = "single"
	SpacingOneAndHalf LineSpacingMode = "one-and-half"
	SpacingDouble     LineSpacingMode = "double"
)

// PageNumberPosition controls where the page number footer is drawn.
type PageNumberPosition string

const (
	PageNumberBottomCenter PageNumberPosition = "bottom-center"
	PageNumberBottomRight  PageNumberPosition = "bottom-right"
	PageNumberNone         PageNumberPosition = "none"
)

// Standard page sizes in points (1/72 inch)
const (
	LetterWidth  = 612.00
	LetterHeight = 792.00
)

// Margins represents page margins in points.
type Margins struct {
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
}

// FormattingRules holds the formatting parameters for one document type.
// A value is constructed once per export operation and read-only afterwards.
type FormattingRules struct {
	LineSpacingMode      LineSpacingMode    `yaml:"lineSpacing"`
	FontSize             float64            `yaml:"fontSize"`
	Font                 string             `yaml:"font"`
	Margins              Margins            `yaml:"margins"`
	PageNumberPosition   PageNumberPosition `yaml:"pageNumberPosition"`
	ParagraphIndent      float64            `yaml:"paragraphIndent"`
	ParagraphSpacing     float64            `yaml:"paragraphSpacing"`
	BlockQuoteIndent     float64            `yaml:"blockQuoteIndent"`
	SignatureLineSpacing LineSpacingMode    `yaml:"signatureLineSpacing"`
}

// PageOverride reserves extra top margin on a specific page of a document
// type, e.g. header space on the first page of a regulatory filing.
type PageOverride struct {
	Page           int     `yaml:"page"`
	ExtraTopMargin float64 `yaml:"extraTopMargin"`
}

// PageArea is the usable content area of a page after margins.
type PageArea struct {
	Width  float64
	Height float64
}

// Provider maps document-type identifiers to formatting rules and page
// geometry. Unknown types fall back to the default rule set; that is a
// recoverable condition and only logged.
type Provider struct {
	rules     map[string]FormattingRules
	overrides map[string][]PageOverride
	logger    *slog.Logger
}

// NewProvider creates a provider preloaded with the built-in rule sets.
func NewProvider(logger *slog.Logger) *Provider {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Provider{
		rules:     make(map[string]FormattingRules),
		overrides: make(map[string][]PageOverride),
		logger:    logger,
	}
	for name, r := range builtinRules() {
		p.rules[name] = r
	}
	for name, ovs := range builtinOverrides() {
		p.overrides[name] = ovs
	}
	return p
}

// defaultRules is the documented fallback: double spacing, 1-inch margins, 12pt.
func defaultRules() FormattingRules {
	return FormattingRules{
		LineSpacingMode:      SpacingDouble,
		FontSize:             12,
		Font:                 "Times",
		Margins:              Margins{Top: 72, Bottom: 72, Left: 72, Right: 72},
		PageNumberPosition:   PageNumberBottomCenter,
		ParagraphIndent:      36,
		ParagraphSpacing:     12,
		BlockQuoteIndent:     36,
		SignatureLineSpacing: SpacingSingle,
	}
}

func builtinRules() map[string]FormattingRules {
	contract := defaultRules()
	contract.LineSpacingMode = SpacingSingle
	contract.ParagraphSpacing = 10

	motion := defaultRules()
	motion.LineSpacingMode = SpacingDouble
	motion.PageNumberPosition = PageNumberBottomCenter

	letter := defaultRules()
	letter.LineSpacingMode = SpacingSingle
	letter.FontSize = 11
	letter.ParagraphIndent = 0
	letter.PageNumberPosition = PageNumberNone

	oar := defaultRules()
	oar.LineSpacingMode = SpacingOneAndHalf

	return map[string]FormattingRules{
		"contract":               contract,
		"motion":                 motion,
		"letter":                 letter,
		"office-action-response": oar,
	}
}

// builtinOverrides returns the per-type, per-page geometry exceptions.
// Regulatory correspondence reserves header space on its first page.
func builtinOverrides() map[string][]PageOverride {
	return map[string][]PageOverride{
		"office-action-response": {
			{Page: 1, ExtraTopMargin: 72},
		},
	}
}

// Rules returns the formatting rules for a document type, falling back to
// the default rule set when the type is unknown.
func (p *Provider) Rules(documentType string) FormattingRules {
	if r, ok := p.rules[documentType]; ok {
		return r
	}
	p.logger.Warn("unknown document type, using default formatting rules",
		"documentType", documentType)
	return defaultRules()
}

// UsablePageArea returns the content area of the given page after subtracting
// margins from the physical Letter page, including any per-page exceptions
// such as a taller first-page top margin.
func (p *Provider) UsablePageArea(documentType string, pageNumber int) PageArea {
	r := p.Rules(documentType)
	area := PageArea{
		Width:  LetterWidth - r.Margins.Left - r.Margins.Right,
		Height: LetterHeight - r.Margins.Top - r.Margins.Bottom,
	}
	for _, ov := range p.overrides[documentType] {
		if ov.Page == pageNumber {
			area.Height -= ov.ExtraTopMargin
		}
	}
	return area
}

// NeedsHeaderSpace reports whether the given page reserves extra header
// space. Pure query, no side effects.
func (p *Provider) NeedsHeaderSpace(documentType string, pageNumber int) bool {
	for _, ov := range p.overrides[documentType] {
		if ov.Page == pageNumber && ov.ExtraTopMargin > 0 {
			return true
		}
	}
	return false
}

// HeaderSpace returns the extra top margin reserved on the given page, or 0.
func (p *Provider) HeaderSpace(documentType string, pageNumber int) float64 {
	for _, ov := range p.overrides[documentType] {
		if ov.Page == pageNumber {
			return ov.ExtraTopMargin
		}
	}
	return 0
}

// LineSpacing returns the extra gap in points added between lines for a
// spacing mode.
func LineSpacing(mode LineSpacingMode) float64 {
	switch mode {
	case SpacingOneAndHalf:
		return 6
	case SpacingDouble:
		return 12
	default:
		return 0
	}
}

// ApplyLineSpacing returns the effective line-spacing gap for a rendering
// context. Inside a signature block the signature-specific spacing (always
// single) wins over the document's body spacing; this is an explicit
// override.
func (p *Provider) ApplyLineSpacing(documentType string, isSignatureContext bool) float64 {
	r := p.Rules(documentType)
	if isSignatureContext {
		return LineSpacing(r.SignatureLineSpacing)
	}
	return LineSpacing(r.LineSpacingMode)
}

// LineHeight returns the full advance of one body line: the font size at a
// nominal 1.2 leading plus the spacing-mode gap.
func (p *Provider) LineHeight(documentType string, isSignatureContext bool) float64 {
	r := p.Rules(documentType)
	return r.FontSize*1.2 + p.ApplyLineSpacing(documentType, isSignatureContext)
}
