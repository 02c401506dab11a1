package api

import (
	"log/slog"
)

// Options represents configuration options for the document converter
type Options struct {
	// DocumentType selects the formatting rule set. When empty, the type
	// declared by the input document is used.
	DocumentType string

	// RulesFile is an optional YAML file of formatting rule overrides
	// merged over the built-in rule sets.
	RulesFile string

	// Document metadata
	Title    string
	Author   string
	Subject  string
	Keywords string

	// Debug enables verbose logging of the layout and render stages
	Debug bool

	// Logger receives warnings for degraded conditions (unknown document
	// types, oversized blocks, signature layout fallbacks). Defaults to
	// slog.Default().
	Logger *slog.Logger
}

// Option is a function that modifies Options
type Option func(*Options)

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{}
}

// WithDocumentType sets the document type
func WithDocumentType(documentType string) Option {
	return func(o *Options) {
		o.DocumentType = documentType
	}
}

// WithRulesFile sets the YAML rules override file
func WithRulesFile(path string) Option {
	return func(o *Options) {
		o.RulesFile = path
	}
}

// WithTitle sets the document title
func WithTitle(title string) Option {
	return func(o *Options) {
		o.Title = title
	}
}

// WithAuthor sets the document author
func WithAuthor(author string) Option {
	return func(o *Options) {
		o.Author = author
	}
}

// WithSubject sets the document subject
func WithSubject(subject string) Option {
	return func(o *Options) {
		o.Subject = subject
	}
}

// WithKeywords sets the document keywords
func WithKeywords(keywords string) Option {
	return func(o *Options) {
		o.Keywords = keywords
	}
}

// WithDebug sets the debug mode
func WithDebug(debug bool) Option {
	return func(o *Options) {
		o.Debug = debug
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}
