package render_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/sbeeredd04/trecgen/internal/catalog"
	"github.com/sbeeredd04/trecgen/internal/doc"
	"github.com/sbeeredd04/trecgen/internal/layout"
	"github.com/sbeeredd04/trecgen/internal/media"
	"github.com/sbeeredd04/trecgen/internal/render"
	"github.com/sbeeredd04/trecgen/internal/report"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func newTestRenderer(t *testing.T, total int) (*render.Renderer, *doc.Document) {
	t.Helper()
	d := doc.New("")
	cat := catalog.Default()
	r := render.New(d, cat, nil)
	r.Total = total
	r.ReportID = "INS-TEST-1"
	return r, d
}

func TestFixedPageCount(t *testing.T) {
	if got := render.FixedPageCount(true); got != 2 {
		t.Errorf("with template = %d, want 2", got)
	}
	if got := render.FixedPageCount(false); got != 1 {
		t.Errorf("without template = %d, want 1", got)
	}
}

func TestRenderCoverFillsIdentification(t *testing.T) {
	r, d := newTestRenderer(t, 1)
	h := &report.Header{
		ClientName:       "Jordan Pruitt",
		InspectionDate:   "06/10/2024 4:30PM",
		PropertyAddress:  "1402 Bluebonnet Ln, Austin, TX",
		InspectorName:    "Casey Mott",
		InspectorLicense: "TREC-24680",
	}
	if err := r.RenderFront(h); err != nil {
		t.Fatalf("render front: %v", err)
	}
	if r.Emitted() != 1 {
		t.Errorf("emitted = %d, want 1", r.Emitted())
	}

	values := d.FieldValues()
	if values["Name of Client"] != "Jordan Pruitt" {
		t.Errorf("client field = %q", values["Name of Client"])
	}
	if values["TREC License"] != "TREC-24680" {
		t.Errorf("license field = %q", values["TREC License"])
	}
}

func TestRenderItemBlockRegistersCheckbox(t *testing.T) {
	r, d := newTestRenderer(t, 1)
	cat := catalog.Default()
	sub := cat.SubsectionByID("I.A")

	item := &report.Item{
		Title:    "Foundation",
		Status:   report.StatusDeficient,
		Comments: []string{"cracking at the east corner\nrecommend structural evaluation"},
	}
	spec := layout.PageSpec{Kind: layout.KindItemBlock, Item: item, Sub: sub}

	if err := r.Render(spec, nil); err != nil {
		t.Fatalf("render: %v", err)
	}

	// I.A deficient sits at page 3 slot 3 of the fixed form.
	const want = "topmostSubform[0].Page3[0].CheckBox1[3]"
	v, err := d.ReadField(want)
	if err != nil {
		t.Fatalf("checkbox field not registered: %v", err)
	}
	if v != "Yes" {
		t.Errorf("checkbox value = %q, want Yes", v)
	}
}

// Two items landing on the same fixed-form slot must not fail the document;
// only the first registration owns the named field.
func TestRenderItemBlockDuplicateSlot(t *testing.T) {
	r, _ := newTestRenderer(t, 2)
	sub := catalog.Default().SubsectionByID("I.H")

	first := &report.Item{Title: "Living room window", Status: report.StatusDeficient}
	second := &report.Item{Title: "Bedroom window", Status: report.StatusDeficient}

	if err := r.Render(layout.PageSpec{Kind: layout.KindItemBlock, Item: first, Sub: sub}, nil); err != nil {
		t.Fatalf("first item: %v", err)
	}
	if err := r.Render(layout.PageSpec{Kind: layout.KindItemBlock, Item: second, Sub: sub}, nil); err != nil {
		t.Fatalf("second item on same slot: %v", err)
	}
	if r.Emitted() != 2 {
		t.Errorf("emitted = %d, want 2", r.Emitted())
	}
}

func TestRenderUnmatchedItemDrawsStatically(t *testing.T) {
	r, d := newTestRenderer(t, 1)
	item := &report.Item{Title: "Smart thermostat", Status: report.StatusInspected}
	spec := layout.PageSpec{Kind: layout.KindItemBlock, Item: item, Sub: nil}

	if err := r.Render(spec, nil); err != nil {
		t.Fatalf("render: %v", err)
	}
	// No form field is registered for an unmatched item.
	if n := len(d.FieldValues()); n != 0 {
		t.Errorf("expected no form fields, got %d", n)
	}
}

func TestRenderPhotoPageSkipsMissingImage(t *testing.T) {
	r, _ := newTestRenderer(t, 1)
	item := &report.Item{Title: "Water Heater"}
	spec := layout.PageSpec{
		Kind:         layout.KindPhotoPage,
		Item:         item,
		Media:        &report.MediaRef{URL: "https://example.com/gone.jpg"},
		MediaOrdinal: 1,
	}

	if err := r.Render(spec, nil); err != nil {
		t.Fatalf("render: %v", err)
	}
	if r.Emitted() != 0 {
		t.Errorf("emitted = %d, want 0: skipped pages add nothing", r.Emitted())
	}
	if r.Skipped() != 1 {
		t.Errorf("skipped = %d, want 1", r.Skipped())
	}
}

func TestRenderVideoPage(t *testing.T) {
	r, _ := newTestRenderer(t, 1)
	item := &report.Item{Title: "Foundation"}
	spec := layout.PageSpec{
		Kind:         layout.KindVideoPage,
		Item:         item,
		Media:        &report.MediaRef{URL: "https://example.com/walkthrough.mp4", Caption: "slab walkthrough"},
		MediaOrdinal: 1,
	}

	if err := r.Render(spec, nil); err != nil {
		t.Fatalf("render: %v", err)
	}
	if r.Emitted() != 1 {
		t.Errorf("emitted = %d, want 1", r.Emitted())
	}
	if r.Skipped() != 0 {
		t.Errorf("skipped = %d, want 0", r.Skipped())
	}
}

// Emitting more pages than the counting pass planned is a defect the renderer
// must refuse, not paper over.
func TestRenderRefusesToExceedTotal(t *testing.T) {
	r, _ := newTestRenderer(t, 1)
	spec := layout.PageSpec{Kind: layout.KindSectionHeader, SectionNumeral: "I", SectionName: "STRUCTURAL SYSTEMS"}

	if err := r.Render(spec, nil); err != nil {
		t.Fatalf("first page: %v", err)
	}
	err := r.Render(spec, nil)
	if err == nil {
		t.Fatal("expected error when exceeding the planned total")
	}
	if !strings.Contains(err.Error(), "exceeds planned total") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRenderSectionHeaderOutput(t *testing.T) {
	r, d := newTestRenderer(t, 2)
	specs := []layout.PageSpec{
		{Kind: layout.KindSectionHeader, SectionNumeral: "IV", SectionName: "PLUMBING SYSTEMS"},
		{Kind: layout.KindSectionHeader, SectionName: layout.AdditionalSectionName},
	}
	for _, spec := range specs {
		if err := r.Render(spec, nil); err != nil {
			t.Fatalf("render %q: %v", spec.SectionName, err)
		}
	}
	out, err := d.Output()
	if err != nil {
		t.Fatalf("output: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("empty document")
	}
}

// Photo pages draw the prefetched image without touching the network.
func TestRenderPhotoPageWithImage(t *testing.T) {
	r, d := newTestRenderer(t, 1)

	img, err := media.Process(pngBytes(t, 300, 200))
	if err != nil {
		t.Fatalf("process: %v", err)
	}

	item := &report.Item{Title: "Roof Covering"}
	spec := layout.PageSpec{
		Kind:         layout.KindPhotoPage,
		Item:         item,
		Media:        &report.MediaRef{URL: "https://example.com/roof.jpg", Caption: "hail damage"},
		MediaOrdinal: 2,
	}
	if err := r.Render(spec, img); err != nil {
		t.Fatalf("render: %v", err)
	}
	if r.Emitted() != 1 {
		t.Errorf("emitted = %d, want 1", r.Emitted())
	}
	if _, err := d.Output(); err != nil {
		t.Fatalf("output: %v", err)
	}
}
