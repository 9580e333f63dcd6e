// Package trec assembles complete inspection reports: it classifies items
// onto the fixed form, builds the page plan, counts pages, prefetches media,
// replays the plan through the renderer, and serializes the document.
package trec

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/sbeeredd04/trecgen/internal/catalog"
	"github.com/sbeeredd04/trecgen/internal/doc"
	"github.com/sbeeredd04/trecgen/internal/layout"
	"github.com/sbeeredd04/trecgen/internal/media"
	"github.com/sbeeredd04/trecgen/internal/render"
	"github.com/sbeeredd04/trecgen/internal/report"
)

// ErrPlanDivergence signals that the rendering pass emitted a different
// number of pages than the counting pass anticipated, beyond what recorded
// media skips account for. It indicates a defect, never a recoverable
// runtime condition.
var ErrPlanDivergence = errors.New("trec: rendered pages diverged from plan")

// Generator turns validated inspection reports into PDF bytes. A Generator
// is safe to reuse across reports; each Generate call owns its plan and page
// counter exclusively.
type Generator struct {
	cat           *catalog.Catalog
	templatePath  string
	workers       int
	maxImageBytes int64
	client        *http.Client
	logger        *slog.Logger
}

// New builds a Generator, validating the form catalog up front so a broken
// form contract fails fast instead of mid-document.
func New(opts ...Option) (*Generator, error) {
	g := &Generator{
		cat:    catalog.Default(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if err := g.cat.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Generate produces the finished report as PDF bytes. It either completes
// and returns the whole document or fails with nothing written; partial
// documents are never returned. ctx bounds media fetching only — document
// assembly is synchronous and runs to completion once rendering starts.
func (g *Generator) Generate(ctx context.Context, rep *report.Report) ([]byte, error) {
	if err := rep.Validate(); err != nil {
		return nil, err
	}

	mapper := catalog.NewMapper(g.cat)
	assignments := layout.Assign(rep.Items(), mapper)
	plan := layout.BuildPlan(g.cat, assignments)

	d := doc.New(g.templatePath)
	d.SetTitle("Property Inspection Report - " + rep.Header.PropertyAddress)

	// Counting pass: one traversal of the plan fixes N for every footer.
	fixed := render.FixedPageCount(d.HasTemplate())
	total := fixed + plan.Count()
	g.logger.Info("layout plan built",
		"items", len(assignments), "specs", plan.Count(), "pages", total)

	fetcher := media.NewFetcher(g.logger)
	if g.client != nil {
		fetcher.Client = g.client
	}
	if g.workers > 0 {
		fetcher.Workers = g.workers
	}
	if g.maxImageBytes > 0 {
		fetcher.MaxBytes = g.maxImageBytes
	}
	images := fetcher.FetchAll(ctx, plan)

	// Rendering pass: the identical plan replayed against the document.
	r := render.New(d, g.cat, g.logger)
	r.Total = total
	r.ReportID = rep.ID

	if err := r.RenderFront(&rep.Header); err != nil {
		return nil, err
	}
	for i, spec := range plan {
		if err := r.Render(spec, images[i]); err != nil {
			return nil, fmt.Errorf("rendering %s page: %w", spec.Kind, err)
		}
	}

	if r.Emitted()+r.Skipped() != total {
		return nil, fmt.Errorf("%w: emitted %d, skipped %d, planned %d",
			ErrPlanDivergence, r.Emitted(), r.Skipped(), total)
	}
	if r.Skipped() > 0 {
		g.logger.Warn("document completed with skipped media pages",
			"skipped", r.Skipped(), "pages", r.Emitted())
	}

	return d.Output()
}

// FieldPreview returns the form field values the report would produce,
// without generating a document: the identification block plus one checked
// checkbox address per classified item. Useful for debugging the mapping.
func (g *Generator) FieldPreview(rep *report.Report) (map[string]string, error) {
	if err := rep.Validate(); err != nil {
		return nil, err
	}

	fields := map[string]string{
		"Name of Client":                rep.Header.ClientName,
		"Date of Inspection":            rep.Header.InspectionDate,
		"Address of Inspected Property": rep.Header.PropertyAddress,
		"Name of Inspector":             rep.Header.InspectorName,
		"TREC License":                  rep.Header.InspectorLicense,
		"Name of Sponsor if applicable": rep.Header.SponsorName,
		"TREC License_2":                rep.Header.SponsorLicense,
	}

	mapper := catalog.NewMapper(g.cat)
	for _, a := range layout.Assign(rep.Items(), mapper) {
		if a.Sub == nil {
			continue
		}
		addr, err := g.cat.ResolveAddress(a.Sub, a.Item.Status)
		if err != nil {
			return nil, err
		}
		if addr != nil {
			fields[addr.Name] = "Yes"
		}
	}
	return fields, nil
}
