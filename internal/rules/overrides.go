package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// overrideFile is the on-disk schema for rule customization. Both sections
// are optional; entries merge over the built-ins.
type overrideFile struct {
	DocumentTypes map[string]FormattingRules `yaml:"documentTypes"`
	PageOverrides map[string][]PageOverride  `yaml:"pageOverrides"`
}

// LoadOverrides reads a YAML rules file and merges its contents over the
// built-in rule sets. A document type present in the file completely
// replaces the built-in entry of the same name.
func (p *Provider) LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read rules file: %w", err)
	}
	return p.MergeOverrides(data)
}

// MergeOverrides merges YAML rule definitions over the built-ins.
func (p *Provider) MergeOverrides(data []byte) error {
	var f overrideFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("failed to parse rules file: %w", err)
	}

	for name, r := range f.DocumentTypes {
		merged := defaultRules()
		if existing, ok := p.rules[name]; ok {
			merged = existing
		}
		applyRuleOverrides(&merged, r)
		p.rules[name] = merged
		p.logger.Debug("merged formatting rules", "documentType", name)
	}
	for name, ovs := range f.PageOverrides {
		p.overrides[name] = ovs
	}
	return nil
}

// applyRuleOverrides copies the non-zero fields of src onto dst so partial
// YAML entries keep the remaining built-in values.
func applyRuleOverrides(dst *FormattingRules, src FormattingRules) {
	if src.LineSpacingMode != "" {
		dst.LineSpacingMode = src.LineSpacingMode
	}
	if src.FontSize > 0 {
		dst.FontSize = src.FontSize
	}
	if src.Font != "" {
		dst.Font = src.Font
	}
	if src.Margins != (Margins{}) {
		dst.Margins = src.Margins
	}
	if src.PageNumberPosition != "" {
		dst.PageNumberPosition = src.PageNumberPosition
	}
	if src.ParagraphIndent > 0 {
		dst.ParagraphIndent = src.ParagraphIndent
	}
	if src.ParagraphSpacing > 0 {
		dst.ParagraphSpacing = src.ParagraphSpacing
	}
	if src.BlockQuoteIndent > 0 {
		dst.BlockQuoteIndent = src.BlockQuoteIndent
	}
	if src.SignatureLineSpacing != "" {
		dst.SignatureLineSpacing = src.SignatureLineSpacing
	}
}
