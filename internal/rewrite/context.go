// Package rewrite maps the URLs a replayed page requests back onto the
// entry paths the archive actually stores. Resolution happens against an
// archival context: the page being replayed, the site it was captured from,
// and the path prefix the replay host serves everything under.
package rewrite

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/arcpath/arcpath/internal/observability"
)

// Context bundles the addressing state for one replayed page or frame. It is
// built once per page, never mutated afterwards, and safe for concurrent use.
type Context struct {
	CurrentURL     string
	OriginalHost   string
	OriginalScheme string
	OriginalURL    string
	ServingPrefix  string

	currentBase  *url.URL
	originalBase *url.URL
	metrics      *observability.Metrics
}

// NewContext parses both resolution bases up front so that per-call rewrites
// only ever fail on their own input.
func NewContext(currentURL, originalHost, originalScheme, originalURL, servingPrefix string) (*Context, error) {
	if currentURL == "" || originalHost == "" || originalScheme == "" || originalURL == "" {
		return nil, errors.New("currentURL, originalHost, originalScheme and originalURL are required")
	}
	if !strings.HasSuffix(originalScheme, ":") {
		return nil, fmt.Errorf("original scheme %q must end with a colon", originalScheme)
	}
	if !strings.HasPrefix(servingPrefix, "/") {
		return nil, fmt.Errorf("serving prefix %q must be an absolute path", servingPrefix)
	}
	if !strings.HasSuffix(servingPrefix, "/") {
		return nil, fmt.Errorf("serving prefix %q must end with a slash", servingPrefix)
	}

	currentBase, err := url.Parse(currentURL)
	if err != nil {
		return nil, fmt.Errorf("parse current url: %w", err)
	}
	originalBase, err := url.Parse(originalURL)
	if err != nil {
		return nil, fmt.Errorf("parse original url: %w", err)
	}

	return &Context{
		CurrentURL:     currentURL,
		OriginalHost:   originalHost,
		OriginalScheme: originalScheme,
		OriginalURL:    originalURL,
		ServingPrefix:  servingPrefix,
		currentBase:    currentBase,
		originalBase:   originalBase,
	}, nil
}

// SetMetrics attaches rewrite counters. Call before the context is shared.
func (c *Context) SetMetrics(metrics *observability.Metrics) {
	c.metrics = metrics
}
