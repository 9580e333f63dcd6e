// Package render consumes page specs one at a time and emits the
// corresponding document pages. It owns the running page counter; all
// document mutation happens here, single-threaded, in plan order.
package render

import (
	"fmt"
	"log/slog"

	"github.com/sbeeredd04/trecgen/internal/catalog"
	"github.com/sbeeredd04/trecgen/internal/doc"
	"github.com/sbeeredd04/trecgen/internal/layout"
	"github.com/sbeeredd04/trecgen/internal/media"
	"github.com/sbeeredd04/trecgen/internal/report"
)

const qrSizePx = 512

// Renderer draws page specs against the document-primitive surface.
type Renderer struct {
	Doc      *doc.Document
	Cat      *catalog.Catalog
	Logger   *slog.Logger
	ReportID string

	// Total is N from the counting pass; every footer references it.
	Total int

	pageNum int
	skipped int
}

// New returns a Renderer over the given document and catalog.
func New(d *doc.Document, cat *catalog.Catalog, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{Doc: d, Cat: cat, Logger: logger}
}

// Emitted reports how many pages have been drawn so far.
func (r *Renderer) Emitted() int { return r.pageNum }

// Skipped reports how many media pages were dropped due to fetch or decode
// failures.
func (r *Renderer) Skipped() int { return r.skipped }

// newPage advances the running counter, adds a page, and draws the shared
// chrome. The counter must never pass Total; if it would, the plan and the
// renderer have diverged, which is a defect rather than a runtime condition.
func (r *Renderer) newPage(withLegend bool) error {
	if r.pageNum+1 > r.Total {
		return fmt.Errorf("render: page %d exceeds planned total %d", r.pageNum+1, r.Total)
	}
	r.pageNum++
	r.Doc.AddPage()
	if withLegend {
		r.drawHeader()
	}
	r.drawFooter(r.pageNum, r.Total)
	return nil
}

// countPage advances the counter for a page added outside newPage (imported
// template pages draw their own chrome via form fields).
func (r *Renderer) countPage() error {
	if r.pageNum+1 > r.Total {
		return fmt.Errorf("render: page %d exceeds planned total %d", r.pageNum+1, r.Total)
	}
	r.pageNum++
	return nil
}

// Render emits the page for one spec. img carries the prefetched photo for
// PhotoPage specs and is ignored otherwise; a nil img on a PhotoPage means
// the fetch failed and the page is skipped.
func (r *Renderer) Render(spec layout.PageSpec, img *media.Image) error {
	switch spec.Kind {
	case layout.KindSectionHeader:
		return r.renderSectionHeader(spec)
	case layout.KindItemBlock:
		return r.renderItemBlock(spec)
	case layout.KindPhotoPage:
		return r.renderPhotoPage(spec, img)
	case layout.KindVideoPage:
		return r.renderVideoPage(spec)
	}
	return fmt.Errorf("render: unknown page spec kind %d", spec.Kind)
}

func (r *Renderer) renderSectionHeader(spec layout.PageSpec) error {
	if err := r.newPage(true); err != nil {
		return err
	}
	d := r.Doc

	title := spec.SectionName
	if spec.SectionNumeral != "" {
		title = spec.SectionNumeral + ". " + spec.SectionName
	}

	d.SetFont("Helvetica", "B", fontSection)
	w := d.TextWidth(title)
	y := marginTop + 40
	d.Text((pageWidth-w)/2, y, title)
	d.SetLineWidth(1)
	d.Line((pageWidth-w)/2, y+4, (pageWidth+w)/2, y+4)
	return nil
}

func (r *Renderer) renderItemBlock(spec layout.PageSpec) error {
	if err := r.newPage(true); err != nil {
		return err
	}
	d := r.Doc
	item := spec.Item
	y := marginTop + 20

	// Heading: canonical subsection when matched, raw item title otherwise.
	d.SetFont("Helvetica", "B", fontTitle)
	if spec.Sub != nil {
		d.Text(marginLeft, y, spec.Sub.Letter+". "+spec.Sub.Name)
		y += lineHeightBody + 2
		if item.Title != spec.Sub.Name {
			d.SetFont("Helvetica", "I", fontBody)
			d.Text(marginLeft, y, item.Title)
			y += lineHeightBody
		}
	} else {
		d.Text(marginLeft, y, item.Title)
		y += lineHeightBody + 2
	}
	y += 8

	if err := r.drawStatusRow(spec, y); err != nil {
		return err
	}
	y += 26

	r.drawComments(item.Comments, y)
	return nil
}

// drawStatusRow draws the four checkbox columns in form order. The checkbox
// resolved for the item's status is registered as a named form field using
// the fixed form's address so the flattened output stays field-compatible;
// the other three are static art. An absent status draws four empty boxes.
func (r *Renderer) drawStatusRow(spec layout.PageSpec, y float64) error {
	d := r.Doc
	const boxSize = 10.0
	const step = 64.0

	var addr *catalog.FieldAddress
	if spec.Sub != nil {
		var err error
		addr, err = r.Cat.ResolveAddress(spec.Sub, spec.Item.Status)
		if err != nil {
			return err
		}
	}

	columns := []struct {
		label  string
		status report.Status
	}{
		{"NI", report.StatusNotInspected},
		{"I", report.StatusInspected},
		{"NP", report.StatusNotPresent},
		{"D", report.StatusDeficient},
	}

	x := marginLeft
	for _, col := range columns {
		checked := spec.Item.Status != report.StatusNone && col.status == spec.Item.Status

		if checked && addr != nil {
			name := addr.Name
			err := d.AddCheckbox(name, d.PageCount(), x, y, boxSize)
			if err != nil {
				// Two items in the same subsection with the same status
				// resolve to the same fixed-form slot; only the first owns
				// the named field, the rest are drawn statically.
				r.Logger.Debug("checkbox field already registered", "field", name)
				r.drawStaticBox(x, y, boxSize, true)
			} else if err := d.SetField(name, "Yes"); err != nil {
				return err
			}
		} else {
			r.drawStaticBox(x, y, boxSize, checked)
		}

		d.SetFont("Helvetica", "", fontSmall)
		d.Text(x+boxSize+4, y+boxSize-2, col.label)
		x += step
	}
	return nil
}

func (r *Renderer) drawStaticBox(x, y, size float64, checked bool) {
	d := r.Doc
	d.SetLineWidth(0.5)
	d.Rect(x, y, size, size)
	if checked {
		d.SetFont("Helvetica", "B", size)
		w := d.TextWidth("X")
		d.Text(x+(size-w)/2, y+size-size*0.18, "X")
	}
}

// drawComments renders each comment as bulleted wrapped lines. Each embedded
// line break starts a new bulleted logical line; continuation lines are
// indented. Lines past the bottom margin are dropped with a warning.
func (r *Renderer) drawComments(comments []string, y float64) {
	d := r.Doc
	const indent = 12.0

	d.SetFont("Helvetica", "", fontBody)
	maxWidth := contentWidth - indent
	bottom := pageHeight - marginBottom - lineHeightBody

	for _, comment := range comments {
		lines := layout.Wrap(comment, maxWidth, d.TextWidth)
		for _, line := range lines {
			if y > bottom {
				r.Logger.Warn("comment text truncated at page bottom")
				return
			}
			if line.Bullet {
				d.Text(marginLeft, y, "-")
			}
			d.Text(marginLeft+indent, y, line.Text)
			y += lineHeightBody
		}
		y += 4
	}
}

func (r *Renderer) renderPhotoPage(spec layout.PageSpec, img *media.Image) error {
	if img == nil {
		r.skipped++
		r.Logger.Warn("skipping photo page",
			"item", spec.Item.Title, "ordinal", spec.MediaOrdinal, "url", spec.Media.URL)
		return nil
	}

	name, w, h, err := r.Doc.EmbedImage(img.JPEG, "JPG")
	if err != nil {
		r.skipped++
		r.Logger.Warn("skipping photo page: embed failed",
			"item", spec.Item.Title, "ordinal", spec.MediaOrdinal, "err", err)
		return nil
	}

	if err := r.newPage(true); err != nil {
		return err
	}
	d := r.Doc

	label := fmt.Sprintf("Photo %d - %s", spec.MediaOrdinal, spec.Item.Title)
	d.SetFont("Helvetica", "B", fontTitle)
	d.Text(marginLeft, marginTop+14, label)

	dw, dh := fitBox(w, h, contentWidth, pageHeight-marginTop-marginBottom-100)
	x := (pageWidth - dw) / 2
	yTop := marginTop + 40
	d.DrawImage(name, x, yTop, dw, dh)

	if spec.Media.Caption != "" {
		d.SetFont("Helvetica", "I", fontBody)
		cw := d.TextWidth(spec.Media.Caption)
		d.Text((pageWidth-cw)/2, yTop+dh+18, spec.Media.Caption)
	}
	return nil
}

func (r *Renderer) renderVideoPage(spec layout.PageSpec) error {
	qrPNG, err := media.QRCode(spec.Media.URL, qrSizePx)
	if err != nil {
		r.skipped++
		r.Logger.Warn("skipping video page: QR encode failed",
			"item", spec.Item.Title, "url", spec.Media.URL, "err", err)
		return nil
	}
	name, _, _, err := r.Doc.EmbedImage(qrPNG, "PNG")
	if err != nil {
		r.skipped++
		r.Logger.Warn("skipping video page: embed failed",
			"item", spec.Item.Title, "err", err)
		return nil
	}

	if err := r.newPage(true); err != nil {
		return err
	}
	d := r.Doc

	label := fmt.Sprintf("Video %d - %s", spec.MediaOrdinal, spec.Item.Title)
	d.SetFont("Helvetica", "B", fontTitle)
	d.Text(marginLeft, marginTop+14, label)

	const qrDisplay = 216.0 // 3 inches
	x := (pageWidth - qrDisplay) / 2
	yTop := marginTop + 60
	d.DrawImage(name, x, yTop, qrDisplay, qrDisplay)

	d.SetFont("Helvetica", "", fontBody)
	hint := "Scan to view the video recording"
	hw := d.TextWidth(hint)
	d.Text((pageWidth-hw)/2, yTop+qrDisplay+20, hint)

	d.SetFont("Helvetica", "", fontSmall)
	uw := d.TextWidth(spec.Media.URL)
	ux := (pageWidth - uw) / 2
	uy := yTop + qrDisplay + 36
	d.Text(ux, uy, spec.Media.URL)
	d.Link(ux, uy-fontSmall, uw, fontSmall+2, spec.Media.URL)

	if spec.Media.Caption != "" {
		d.SetFont("Helvetica", "I", fontBody)
		cw := d.TextWidth(spec.Media.Caption)
		d.Text((pageWidth-cw)/2, uy+20, spec.Media.Caption)
	}
	return nil
}

// fitBox scales (w, h) to fit inside (maxW, maxH) preserving aspect ratio.
func fitBox(w, h, maxW, maxH float64) (float64, float64) {
	if w <= 0 || h <= 0 {
		return maxW, maxH
	}
	scale := 1.0
	if w*scale > maxW {
		scale = maxW / w
	}
	if h*scale > maxH {
		scale = maxH / h
	}
	return w * scale, h * scale
}
