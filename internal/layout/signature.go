package layout

// SignatureLayout selects how parties are arranged within a signature block.
type SignatureLayout string

const (
	// SingleColumn stacks all parties vertically.
	SingleColumn SignatureLayout = "single"
	// SideBySide renders the first two parties as concurrent columns.
	// Requires at least two parties; fewer fall back to SingleColumn.
	SideBySide SignatureLayout = "side-by-side"
)

// Party is one signatory within a signature block.
type Party struct {
	Role        string `json:"role"`
	Name        string `json:"name,omitempty"`
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	HasDateLine bool   `json:"hasDateLine,omitempty"`
}

// SignatureData is the parsed, structured payload of a signature block.
type SignatureData struct {
	// MarkerID is a stable identifier correlating this block to an output
	// placement token.
	MarkerID       string          `json:"markerId"`
	Layout         SignatureLayout `json:"layout"`
	Parties        []Party         `json:"parties"`
	NotaryRequired bool            `json:"notaryRequired,omitempty"`
}

// Fixed geometry of signature sections, in points.
const (
	// InterPartySpacing separates stacked parties.
	InterPartySpacing = 20.0
	// NotaryHeight is the allowance for the notary acknowledgment section.
	NotaryHeight = 120.0
)

// EffectiveLayout returns the layout actually used for rendering. A
// side-by-side block with fewer than two parties degrades to single-column
// rather than erroring; callers log the fallback.
func (d *SignatureData) EffectiveLayout() SignatureLayout {
	if d.Layout == SideBySide && len(d.Parties) >= 2 {
		return SideBySide
	}
	return SingleColumn
}

// PartyHeight returns the vertical extent of one party's signature area:
// the signature line plus the role line, conditional name/title/company
// lines, and a conditional date line.
func PartyHeight(p Party, lineHeight float64) float64 {
	lines := 2.0 // signature line + role line
	if p.Name != "" {
		lines++
	}
	if p.Title != "" {
		lines++
	}
	if p.Company != "" {
		lines++
	}
	if p.HasDateLine {
		lines++
	}
	return lines * lineHeight
}

// SignatureHeight computes the total vertical extent of a signature block.
// Single-column layouts sum per-party heights with inter-party spacing.
// Side-by-side layouts take the max of the two lead columns, with any
// further parties appended below in single-column form. A required notary
// section adds its fixed allowance so the pair stays one keep-together unit.
func SignatureHeight(d *SignatureData, lineHeight float64) float64 {
	if d == nil || len(d.Parties) == 0 {
		return 0
	}

	var h float64
	switch d.EffectiveLayout() {
	case SideBySide:
		lead := PartyHeight(d.Parties[0], lineHeight)
		if second := PartyHeight(d.Parties[1], lineHeight); second > lead {
			lead = second
		}
		h = lead
		for _, p := range d.Parties[2:] {
			h += InterPartySpacing + PartyHeight(p, lineHeight)
		}
	default:
		for i, p := range d.Parties {
			if i > 0 {
				h += InterPartySpacing
			}
			h += PartyHeight(p, lineHeight)
		}
	}

	if d.NotaryRequired {
		h += NotaryHeight
	}
	return h
}
