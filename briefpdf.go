package briefpdf

import (
	"github.com/briefpdf/briefpdf/pkg/api"
)

type Converter = api.Converter
type Options = api.Options
type Option = api.Option

func New() *Converter                           { return api.New() }
func NewWithOptions(options Options) *Converter { return api.NewWithOptions(options) }
func DefaultOptions() Options                   { return api.DefaultOptions() }

var (
	WithDocumentType = api.WithDocumentType
	WithRulesFile    = api.WithRulesFile
	WithTitle        = api.WithTitle
	WithAuthor       = api.WithAuthor
	WithSubject      = api.WithSubject
	WithKeywords     = api.WithKeywords
	WithDebug        = api.WithDebug
	WithLogger       = api.WithLogger
)
