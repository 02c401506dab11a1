package pagination

import (
	"log/slog"

	"github.com/briefpdf/briefpdf/internal/layout"
	"github.com/briefpdf/briefpdf/internal/rules"
)

// Engine handles the pagination process
type Engine struct {
	provider *rules.Provider
	logger   *slog.Logger
}

// NewEngine creates a new pagination engine
func NewEngine(provider *rules.Provider, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		provider: provider,
		logger:   logger,
	}
}

// Paginate assigns the measured blocks of a document to pages according to
// the formatting rules of the document type.
func (e *Engine) Paginate(documentType string, blocks []layout.Block) (*Result, error) {
	paginator := NewPaginator(e.provider, documentType, e.logger)
	return paginator.Paginate(blocks)
}
