package doc

import (
	"fmt"
	"os"

	"github.com/go-pdf/fpdf/contrib/gofpdi"
)

// HasTemplate reports whether a template file is configured and readable.
func (d *Document) HasTemplate() bool {
	if d.templatePath == "" {
		return false
	}
	_, err := os.Stat(d.templatePath)
	return err == nil
}

// ImportTemplatePage appends a new page carrying page n of the configured
// template as full-page background art. Field widgets of the template are not
// carried over; values are written through this document's own field
// registry.
func (d *Document) ImportTemplatePage(n int) error {
	if !d.HasTemplate() {
		return opErr("ImportTemplatePage", fmt.Errorf("%w: %q", ErrNoTemplate, d.templatePath))
	}

	imp := gofpdi.NewImporter()
	tplID := imp.ImportPage(d.pdf, d.templatePath, n, "/MediaBox")

	w, h := PageWidth, PageHeight
	if dims, ok := imp.GetPageSizes()[n]; ok {
		if mb, ok := dims["/MediaBox"]; ok && mb["w"] > 0 && mb["h"] > 0 {
			w, h = mb["w"], mb["h"]
		}
	}

	d.pdf.AddPage()
	imp.UseImportedTemplate(d.pdf, tplID, 0, 0, w, h)

	if err := d.pdf.Error(); err != nil {
		return opErr("ImportTemplatePage", err)
	}
	return nil
}
