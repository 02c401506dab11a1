package pagination

import (
	"github.com/briefpdf/briefpdf/internal/layout"
)

// balance is the orphan/widow post-pass. It scans adjacent page boundaries
// and may migrate the single trailing breakable text block of a page to the
// start of the following page when the boundary leaves a lone text block as
// an orphan or widow. The pass never moves non-breakable blocks, never
// empties a page, and never touches a force-placed oversized page.
func (p *Paginator) balance(pages []Page) []Page {
	for i := 0; i+1 < len(pages); i++ {
		src := pages[i]
		dst := pages[i+1]
		if src.Oversized || dst.Oversized {
			continue
		}
		if len(src.Blocks) == 0 || len(dst.Blocks) == 0 {
			continue
		}

		orphan := trailingTextRun(src.Blocks) > 0 && trailingTextRun(src.Blocks) < minTextRun
		widow := leadingTextRun(dst.Blocks) > 0 && leadingTextRun(dst.Blocks) < minTextRun
		if !orphan && !widow {
			continue
		}

		last := src.Blocks[len(src.Blocks)-1]
		if !last.Breakable || last.Kind != layout.Text {
			continue
		}
		if last.Continued {
			// The paragraph continues on the next page; this boundary is
			// a split, not an orphan.
			continue
		}
		if len(src.Blocks) < 2 {
			p.logger.Debug("orphan/widow left in place, correction would empty the page",
				"page", src.Number)
			continue
		}
		if last.Height > dst.Remaining {
			p.logger.Debug("orphan/widow left in place, block does not fit the next page",
				"page", src.Number, "height", last.Height, "remaining", dst.Remaining)
			continue
		}

		src.Blocks = src.Blocks[:len(src.Blocks)-1]
		src.Remaining += last.Height
		if src.Remaining > src.UsableHeight {
			src.Remaining = src.UsableHeight
		}
		moved := make([]layout.Block, 0, len(dst.Blocks)+1)
		moved = append(moved, last)
		moved = append(moved, dst.Blocks...)
		dst.Blocks = moved
		dst.Remaining -= last.Height

		pages[i] = src
		pages[i+1] = dst
		p.logger.Debug("migrated trailing text block across page boundary",
			"from", src.Number, "to", dst.Number)
	}
	return pages
}

// trailingTextRun counts the consecutive text blocks at the end of a page.
// A zero count means the page ends with a non-text block and no orphan can
// exist at the boundary.
func trailingTextRun(blocks []layout.Block) int {
	run := 0
	for i := len(blocks) - 1; i >= 0; i-- {
		if blocks[i].Kind != layout.Text {
			break
		}
		run++
	}
	return run
}

// leadingTextRun counts the consecutive text blocks at the start of a page.
func leadingTextRun(blocks []layout.Block) int {
	run := 0
	for _, b := range blocks {
		if b.Kind != layout.Text {
			break
		}
		run++
	}
	return run
}
