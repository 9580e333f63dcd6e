package render

import "fmt"

// Page geometry in points (US Letter).
const (
	marginLeft   = 54.0
	marginRight  = 54.0
	marginTop    = 54.0
	marginBottom = 54.0

	contentWidth = 612.0 - marginLeft - marginRight
	pageWidth    = 612.0
	pageHeight   = 792.0
)

const (
	fontBody    = 9.0
	fontSmall   = 8.0
	fontSection = 14.0
	fontTitle   = 11.0

	lineHeightBody = 12.0
)

// Fixed chrome text. The reference identifies the promulgated form revision;
// every content page carries it in the footer, as the form requires.
const (
	formReference = "REI 7-6 (8/9/21)"
	agencyURL     = "https://www.trec.texas.gov"
	legendText    = "I=Inspected    NI=Not Inspected    NP=Not Present    D=Deficient"
)

// drawHeader draws the status-code legend shared by every generated content
// page.
func (r *Renderer) drawHeader() {
	d := r.Doc
	d.SetFont("Helvetica", "B", fontSmall)
	d.SetTextColor(0, 0, 0)
	w := d.TextWidth(legendText)
	d.Text((pageWidth-w)/2, marginTop-18, legendText)
	d.SetLineWidth(0.5)
	d.Line(marginLeft, marginTop-10, pageWidth-marginRight, marginTop-10)
}

// drawFooter draws "Page k of N", the form reference (hyperlinked to the
// promulgating agency) and the report identification line.
func (r *Renderer) drawFooter(pageNum, total int) {
	d := r.Doc
	y := pageHeight - marginBottom/2

	d.SetFont("Helvetica", "", fontSmall)
	d.SetTextColor(0, 0, 0)

	d.Text(marginLeft, y, formReference)
	refW := d.TextWidth(formReference)
	d.Link(marginLeft, y-fontSmall, refW, fontSmall+2, agencyURL)

	pageText := fmt.Sprintf("Page %d of %d", pageNum, total)
	w := d.TextWidth(pageText)
	d.Text((pageWidth-w)/2, y, pageText)

	if r.ReportID != "" {
		idW := d.TextWidth(r.ReportID)
		d.Text(pageWidth-marginRight-idW, y, r.ReportID)
	}
}
