// Package doc is the document-primitive surface the layout engine draws
// against: page creation, positioned text with width measurement, rectangles
// and lines, raster embedding, named form fields with flattening, template
// page import, and serialization. It wraps the fpdf writer and keeps all
// mutation on one logical timeline; nothing here is safe for concurrent use.
package doc

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// US Letter, in points.
const (
	PageWidth  = 612.0
	PageHeight = 792.0
)

// Document accumulates pages and form fields and serializes to PDF bytes.
type Document struct {
	pdf *fpdf.Fpdf

	templatePath string
	tplIDs       map[int]int // template page number -> imported template id

	fields    map[string]*Field
	fieldList []*Field

	imageSeq int
}

// New creates an empty Letter-sized document. templatePath may be empty; in
// that case the fixed form pages are synthesized instead of imported (see
// ImportTemplatePage).
func New(templatePath string) *Document {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.SetCreator("trecgen", true)
	return &Document{
		pdf:          pdf,
		templatePath: templatePath,
		tplIDs:       make(map[int]int),
		fields:       make(map[string]*Field),
	}
}

// AddPage appends a blank page and makes it current.
func (d *Document) AddPage() {
	d.pdf.AddPage()
}

// PageCount reports the number of pages added so far.
func (d *Document) PageCount() int {
	return d.pdf.PageCount()
}

// SetFont selects the current core font ("Helvetica", "Courier", "Times")
// with style "" / "B" / "I" / "BI" at the given size in points.
func (d *Document) SetFont(family, style string, size float64) {
	d.pdf.SetFont(family, style, size)
}

// Text draws s with its baseline at (x, y) in the current font.
func (d *Document) Text(x, y float64, s string) {
	d.pdf.Text(x, y, s)
}

// TextWidth measures the rendered width of s in the current font. This is
// the measure function the text wrapper runs against.
func (d *Document) TextWidth(s string) float64 {
	return d.pdf.GetStringWidth(s)
}

// Rect draws a rectangle outline at (x, y) of size w by h.
func (d *Document) Rect(x, y, w, h float64) {
	d.pdf.Rect(x, y, w, h, "D")
}

// FillRect draws a filled rectangle using the current fill color.
func (d *Document) FillRect(x, y, w, h float64) {
	d.pdf.Rect(x, y, w, h, "F")
}

// Line draws a line from (x1, y1) to (x2, y2).
func (d *Document) Line(x1, y1, x2, y2 float64) {
	d.pdf.Line(x1, y1, x2, y2)
}

// SetDrawColor sets the stroke color.
func (d *Document) SetDrawColor(r, g, b int) {
	d.pdf.SetDrawColor(r, g, b)
}

// SetFillColor sets the fill color.
func (d *Document) SetFillColor(r, g, b int) {
	d.pdf.SetFillColor(r, g, b)
}

// SetTextColor sets the text color.
func (d *Document) SetTextColor(r, g, b int) {
	d.pdf.SetTextColor(r, g, b)
}

// SetLineWidth sets the stroke width in points.
func (d *Document) SetLineWidth(w float64) {
	d.pdf.SetLineWidth(w)
}

// Link makes the rectangle at (x, y, w, h) a hyperlink to url.
func (d *Document) Link(x, y, w, h float64, url string) {
	d.pdf.LinkString(x, y, w, h, url)
}

// SetTitle sets the document title metadata.
func (d *Document) SetTitle(title string) {
	d.pdf.SetTitle(title, true)
}

// EmbedImage registers raster bytes with the document and returns the handle
// to draw it with, plus the intrinsic size in points at 72 dpi. kind is
// "JPG" or "PNG".
func (d *Document) EmbedImage(data []byte, kind string) (name string, w, h float64, err error) {
	d.imageSeq++
	name = fmt.Sprintf("img-%d", d.imageSeq)
	info := d.pdf.RegisterImageOptionsReader(name,
		fpdf.ImageOptions{ImageType: kind}, bytes.NewReader(data))
	if err := d.pdf.Error(); err != nil {
		// Registration failures poison the whole fpdf instance; clear the
		// error so one bad image only skips its own page.
		d.pdf.ClearError()
		return "", 0, 0, opErr("EmbedImage", err)
	}
	if info == nil {
		return "", 0, 0, opErr("EmbedImage", fmt.Errorf("no image info for %s", name))
	}
	return name, info.Width(), info.Height(), nil
}

// DrawImage places a previously embedded image at (x, y) scaled to w by h.
func (d *Document) DrawImage(name string, x, y, w, h float64) {
	d.pdf.ImageOptions(name, x, y, w, h, false, fpdf.ImageOptions{}, 0, "")
}

// Output flattens any remaining form fields and serializes the document.
func (d *Document) Output() ([]byte, error) {
	if d.pdf.PageCount() == 0 {
		return nil, opErr("Output", ErrNoPage)
	}
	if err := d.Flatten(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, opErr("Output", err)
	}
	return buf.Bytes(), nil
}
