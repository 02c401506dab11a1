// Package pagination flows an ordered list of measured content blocks onto
// fixed-size pages, honoring keep-together groups, the text splitting policy
// and an orphan/widow balancing pass. One call is a pure function of its
// inputs; no state survives between calls.
package pagination

import (
	"log/slog"

	"github.com/briefpdf/briefpdf/internal/layout"
	"github.com/briefpdf/briefpdf/internal/rules"
)

// Placement policy constants.
const (
	// wordsPerLine is the estimated average of rendered words per line,
	// shared by the splitter and the measurement collaborator.
	wordsPerLine = 10
	// minWordsToSplit is the minimum word count for a text block to be a
	// splitting candidate.
	minWordsToSplit = 10
	// minFragmentWords is the smallest fragment a split may produce.
	minFragmentWords = 5
	// sentenceSearchRadius is how far around the candidate word index the
	// splitter looks for a sentence boundary.
	sentenceSearchRadius = 5
	// minTextRun is the minimum run of text blocks at a page boundary below
	// which the balancing pass treats the run as an orphan or widow.
	minTextRun = 2
)

// Page is one page's plan: the blocks assigned to it in document order and
// the running height budget.
type Page struct {
	// Number is 1-based and strictly sequential.
	Number int
	// Blocks holds the page's content in document order, never reordered.
	Blocks []layout.Block
	// UsableHeight is the page's original content height.
	UsableHeight float64
	// Remaining is the unconsumed height budget, never negative.
	Remaining float64
	// Oversized marks a page holding a single force-placed block taller
	// than any page; such pages are excluded from balancing migration.
	Oversized bool
}

// Result is the complete page plan for one document.
type Result struct {
	Pages      []Page
	TotalPages int
	// HasOverflow is reserved and always false: oversized blocks are
	// force-placed on their own page, never dropped.
	HasOverflow bool
}

// Paginator breaks a block list into pages for one document type.
type Paginator struct {
	provider     *rules.Provider
	documentType string
	logger       *slog.Logger
}

// NewPaginator creates a paginator for the given document type.
func NewPaginator(provider *rules.Provider, documentType string, logger *slog.Logger) *Paginator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Paginator{
		provider:     provider,
		documentType: documentType,
		logger:       logger,
	}
}

// Paginate runs the placement loop over the blocks and returns the page
// plan. The input is only borrowed: blocks are copied into pages, never
// mutated. The only errors are input-validation failures; legitimately
// too-large content always produces some placement.
func (p *Paginator) Paginate(blocks []layout.Block) (*Result, error) {
	if err := layout.Validate(blocks); err != nil {
		return nil, err
	}

	var pages []Page
	cur := p.openPage(1)

	work := make([]layout.Block, len(blocks))
	copy(work, blocks)

	closePage := func() {
		pages = append(pages, cur)
		cur = p.openPage(len(pages) + 1)
	}

	for len(work) > 0 {
		b := work[0]

		// Keep-together grouping: close the page early when a group that
		// must stay whole no longer fits, so signature blocks and
		// heading+body pairs never straddle a page break. An empty reduced
		// page closes too when the group fits a standard page, so header
		// space on page 1 cannot break a group up.
		if span := groupSpan(work); span > 1 {
			if height := groupHeight(work[:span]); height > cur.Remaining {
				nextHeight := p.provider.UsablePageArea(p.documentType, cur.Number+1).Height
				if len(cur.Blocks) > 0 || height <= nextHeight {
					closePage()
				}
			}
		}

		if b.Height <= cur.Remaining {
			cur = placeBlock(cur, b)
			work = work[1:]
			continue
		}

		// Too tall for the space left. Breakable text gets a chance to
		// split at a sentence boundary before anything moves pages.
		if b.Breakable && b.WordCount() >= minWordsToSplit {
			if first, rest, ok := p.splitText(b, cur.Remaining); ok {
				cur = placeBlock(cur, first)
				work[0] = rest
				closePage()
				continue
			}
			p.logger.Warn("text block not split, pushed whole to next page",
				"words", b.WordCount(), "height", b.Height)
		}

		nextHeight := p.provider.UsablePageArea(p.documentType, cur.Number+1).Height
		if len(cur.Blocks) > 0 || b.Height <= nextHeight {
			// Fits a page, just not this one: close and retry against a
			// fresh page. Pages are pushed even when they closed empty
			// (a reduced first page, say) to preserve strict page-number
			// sequencing.
			closePage()
			continue
		}

		// The page is empty and the block still does not fit: force-place
		// it alone rather than drop content.
		p.logger.Warn("oversized block force-placed on its own page",
			"kind", b.Kind.String(), "height", b.Height,
			"pageHeight", cur.UsableHeight)
		cur = placeBlock(cur, b)
		cur.Oversized = true
		work = work[1:]
		closePage()
	}

	if len(cur.Blocks) > 0 {
		pages = append(pages, cur)
	}

	pages = p.balance(pages)

	return &Result{
		Pages:       pages,
		TotalPages:  len(pages),
		HasOverflow: false,
	}, nil
}

// openPage creates a fresh page with the usable area for its page number;
// margins may differ from page 1.
func (p *Paginator) openPage(number int) Page {
	area := p.provider.UsablePageArea(p.documentType, number)
	return Page{
		Number:       number,
		UsableHeight: area.Height,
		Remaining:    area.Height,
	}
}

// placeBlock appends a block to a page and returns the updated page value.
// The remaining budget never goes negative; a force-placed oversized block
// consumes it entirely.
func placeBlock(pg Page, b layout.Block) Page {
	blocks := make([]layout.Block, len(pg.Blocks), len(pg.Blocks)+1)
	copy(blocks, pg.Blocks)
	pg.Blocks = append(blocks, b)
	pg.Remaining -= b.Height
	if pg.Remaining < 0 {
		pg.Remaining = 0
	}
	return pg
}

// groupSpan returns the length of the keep-together group starting at
// work[0]. The group extends through every member whose own KeepWithNext is
// set, and two adjacent signature blocks are always grouped regardless of
// their individual flags. A span of 1 means no grouping applies.
func groupSpan(work []layout.Block) int {
	n := 1
	for n < len(work) {
		prev := work[n-1]
		adjacentSignatures := prev.Kind == layout.Signature && work[n].Kind == layout.Signature
		if !prev.KeepWithNext && !adjacentSignatures {
			break
		}
		n++
	}
	return n
}

// groupHeight sums the heights of a keep-together group.
func groupHeight(group []layout.Block) float64 {
	var h float64
	for _, b := range group {
		h += b.Height
	}
	return h
}
