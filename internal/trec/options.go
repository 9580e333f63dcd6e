package trec

import (
	"log/slog"
	"net/http"

	"github.com/sbeeredd04/trecgen/internal/catalog"
)

// Option is a functional option for configuring a Generator.
type Option func(*Generator)

// WithCatalog replaces the compiled-in form catalog, e.g. with one loaded
// from a YAML override for a newer form revision.
func WithCatalog(c *catalog.Catalog) Option {
	return func(g *Generator) {
		g.cat = c
	}
}

// WithTemplatePath sets the blank template PDF whose leading pages are
// imported as the report's fixed front pages. When empty, a cover page is
// synthesized instead.
func WithTemplatePath(path string) Option {
	return func(g *Generator) {
		g.templatePath = path
	}
}

// WithWorkers bounds the number of concurrent media downloads.
func WithWorkers(n int) Option {
	return func(g *Generator) {
		g.workers = n
	}
}

// WithHTTPClient sets the client used for media downloads.
func WithHTTPClient(c *http.Client) Option {
	return func(g *Generator) {
		g.client = c
	}
}

// WithMaxImageBytes caps the size of a downloaded image.
func WithMaxImageBytes(n int64) Option {
	return func(g *Generator) {
		g.maxImageBytes = n
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = l
	}
}
