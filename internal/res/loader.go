// Package res loads document sources (JSON templates, HTML) from local
// paths or URLs for the converter and the CLI.
package res

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// SourceKind classifies a loaded document source by its format.
type SourceKind int

const (
	// SourceUnknown is an unrecognized source format
	SourceUnknown SourceKind = iota
	// SourceTemplate is a JSON document template
	SourceTemplate
	// SourceHTML is an HTML document
	SourceHTML
)

// Source is a loaded document source
type Source struct {
	Location string
	Kind     SourceKind
	Data     []byte
}

// GetString returns the source content as a string
func (s *Source) GetString() string {
	return string(s.Data)
}

// Loader resolves and loads document sources, caching by location.
type Loader struct {
	cache     map[string]*Source
	cacheLock sync.RWMutex
	client    *http.Client
}

// NewLoader creates a new source loader
func NewLoader() *Loader {
	return &Loader{
		cache: make(map[string]*Source),
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Load reads a document source from a file path or an http(s) URL and
// classifies its format from the extension.
func (l *Loader) Load(location string) (*Source, error) {
	l.cacheLock.RLock()
	cached, ok := l.cache[location]
	l.cacheLock.RUnlock()
	if ok {
		return cached, nil
	}

	var data []byte
	var err error
	if isRemote(location) {
		data, err = l.fetch(location)
	} else {
		data, err = os.ReadFile(location)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load source %s: %w", location, err)
	}

	src := &Source{
		Location: location,
		Kind:     kindOf(location),
		Data:     data,
	}

	l.cacheLock.Lock()
	l.cache[location] = src
	l.cacheLock.Unlock()

	return src, nil
}

func (l *Loader) fetch(location string) ([]byte, error) {
	resp, err := l.client.Get(location)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

func isRemote(location string) bool {
	u, err := url.Parse(location)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https")
}

// kindOf classifies a source by its file extension.
func kindOf(location string) SourceKind {
	if isRemote(location) {
		if u, err := url.Parse(location); err == nil {
			location = u.Path
		}
	}
	switch strings.ToLower(filepath.Ext(location)) {
	case ".json":
		return SourceTemplate
	case ".html", ".htm":
		return SourceHTML
	default:
		return SourceUnknown
	}
}
