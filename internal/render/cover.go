package render

import (
	"fmt"
	"strconv"

	"github.com/sbeeredd04/trecgen/internal/media"
	"github.com/sbeeredd04/trecgen/internal/report"
)

// Header field names and coordinates on the official template's first page.
// Names must match the template's AcroForm exactly; coordinates are where the
// flattened values are drawn.
var headerFieldSlots = []struct {
	name  string
	value func(*report.Header) string
	x, y  float64
}{
	{"Name of Client", func(h *report.Header) string { return h.ClientName }, 210, 136},
	{"Date of Inspection", func(h *report.Header) string { return h.InspectionDate }, 455, 136},
	{"Address of Inspected Property", func(h *report.Header) string { return h.PropertyAddress }, 210, 158},
	{"Name of Inspector", func(h *report.Header) string { return h.InspectorName }, 210, 180},
	{"TREC License", func(h *report.Header) string { return h.InspectorLicense }, 455, 180},
	{"Name of Sponsor if applicable", func(h *report.Header) string { return h.SponsorName }, 210, 202},
	{"TREC License_2", func(h *report.Header) string { return h.SponsorLicense }, 455, 202},
}

// templateFixedPages is how many leading pages of the official template are
// carried into every report: the identification page and the notice page.
const templateFixedPages = 2

// FixedPageCount reports how many front pages precede the planned content
// pages: the imported template pages when a template is configured, or one
// synthesized cover otherwise. The counting pass includes this in N.
func FixedPageCount(hasTemplate bool) int {
	if hasTemplate {
		return templateFixedPages
	}
	return 1
}

// RenderFront emits the fixed front pages and fills the identification block.
func (r *Renderer) RenderFront(h *report.Header) error {
	if r.Doc.HasTemplate() {
		return r.renderTemplateFront(h)
	}
	return r.renderCover(h)
}

// renderTemplateFront imports the template's leading pages as background art
// and writes the identification values through named form fields at the
// template's own addresses.
func (r *Renderer) renderTemplateFront(h *report.Header) error {
	for n := 1; n <= templateFixedPages; n++ {
		if err := r.Doc.ImportTemplatePage(n); err != nil {
			return err
		}
		if err := r.countPage(); err != nil {
			return err
		}
	}

	for _, slot := range headerFieldSlots {
		if err := r.Doc.AddTextField(slot.name, 1, slot.x, slot.y, 180, 12, fontBody); err != nil {
			return err
		}
		if err := r.Doc.SetField(slot.name, slot.value(h)); err != nil {
			return err
		}
	}

	// The notice page carries the document's total page count.
	if err := r.Doc.AddTextField("Page 2 of", 2, 330, 748, 30, 12, fontSmall); err != nil {
		return err
	}
	return r.Doc.SetField("Page 2 of", strconv.Itoa(r.Total))
}

// renderCover synthesizes a single identification page when no template file
// is configured, so generation (and tests) work without binary assets.
func (r *Renderer) renderCover(h *report.Header) error {
	if err := r.newPage(false); err != nil {
		return err
	}
	d := r.Doc

	title := "PROPERTY INSPECTION REPORT"
	d.SetFont("Helvetica", "B", 18)
	w := d.TextWidth(title)
	d.Text((pageWidth-w)/2, marginTop+30, title)

	sub := fmt.Sprintf("Promulgated form %s", formReference)
	d.SetFont("Helvetica", "", fontBody)
	sw := d.TextWidth(sub)
	d.Text((pageWidth-sw)/2, marginTop+48, sub)

	y := marginTop + 100.0
	page := d.PageCount()
	for _, slot := range headerFieldSlots {
		d.SetFont("Helvetica", "B", fontBody)
		d.Text(marginLeft, y, slot.name+":")

		if err := d.AddTextField(slot.name, page, marginLeft+200, y-10, 280, 12, fontBody); err != nil {
			return err
		}
		if err := d.SetField(slot.name, slot.value(h)); err != nil {
			return err
		}

		d.SetLineWidth(0.5)
		d.Line(marginLeft+200, y+3, pageWidth-marginRight, y+3)
		y += 24
	}

	if r.ReportID != "" {
		strip, err := media.Code128(r.ReportID, 600, 60)
		if err == nil {
			name, _, _, embedErr := d.EmbedImage(strip, "PNG")
			if embedErr == nil {
				d.DrawImage(name, (pageWidth-200)/2, y+30, 200, 20)
				d.SetFont("Helvetica", "", fontSmall)
				idw := d.TextWidth(r.ReportID)
				d.Text((pageWidth-idw)/2, y+62, r.ReportID)
			} else {
				r.Logger.Warn("cover barcode embed failed", "err", embedErr)
			}
		} else {
			r.Logger.Warn("cover barcode encode failed", "err", err)
		}
	}
	return nil
}
