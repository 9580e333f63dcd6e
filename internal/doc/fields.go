package doc

import (
	"fmt"
	"strings"
)

// FieldType specifies the type of form field.
type FieldType int

const (
	TypeText     FieldType = iota // single-line text
	TypeCheckbox                  // checkbox (on/off)
)

// Field is a named form field placed on a page. Fields keep the official
// template's naming scheme so the generated document stays address-compatible
// with the fixed form, and are flattened into static page content at output.
type Field struct {
	Name     string
	Type     FieldType
	Page     int     // 1-based page number in this document
	X, Y     float64 // top-left corner, points
	W, H     float64
	Value    string
	FontSize float64

	flattened bool
}

// AddTextField registers a text field on the given page.
func (d *Document) AddTextField(name string, page int, x, y, w, h, fontSize float64) error {
	return d.addField(&Field{
		Name: name, Type: TypeText,
		Page: page, X: x, Y: y, W: w, H: h,
		FontSize: fontSize,
	})
}

// AddCheckbox registers a checkbox of the given size on the given page.
func (d *Document) AddCheckbox(name string, page int, x, y, size float64) error {
	return d.addField(&Field{
		Name: name, Type: TypeCheckbox,
		Page: page, X: x, Y: y, W: size, H: size,
	})
}

func (d *Document) addField(f *Field) error {
	if f.Page < 1 || f.Page > d.pdf.PageCount() {
		return opErr("AddField", fmt.Errorf("page %d does not exist", f.Page))
	}
	if _, dup := d.fields[f.Name]; dup {
		return opErr("AddField", fmt.Errorf("%w: %s", ErrFieldExists, f.Name))
	}
	d.fields[f.Name] = f
	d.fieldList = append(d.fieldList, f)
	return nil
}

// SetField writes a named field's value. Checkboxes treat "Yes", "true" and
// "on" as checked, anything else as unchecked.
func (d *Document) SetField(name, value string) error {
	f, ok := d.fields[name]
	if !ok {
		return opErr("SetField", fmt.Errorf("%w: %s", ErrUnknownField, name))
	}
	f.Value = value
	return nil
}

// ReadField returns a named field's current value.
func (d *Document) ReadField(name string) (string, error) {
	f, ok := d.fields[name]
	if !ok {
		return "", opErr("ReadField", fmt.Errorf("%w: %s", ErrUnknownField, name))
	}
	return f.Value, nil
}

// FieldValues returns a snapshot of all field values keyed by name.
func (d *Document) FieldValues() map[string]string {
	out := make(map[string]string, len(d.fields))
	for name, f := range d.fields {
		out[name] = f.Value
	}
	return out
}

// Flatten converts every registered field into static page content: text
// fields draw their value, checked checkboxes draw their box and mark.
// Flattening is idempotent; fields already flattened are skipped.
func (d *Document) Flatten() error {
	if len(d.fieldList) == 0 {
		return nil
	}
	restore := d.pdf.PageNo()

	for _, f := range d.fieldList {
		if f.flattened {
			continue
		}
		f.flattened = true
		d.pdf.SetPage(f.Page)

		switch f.Type {
		case TypeText:
			if f.Value == "" {
				continue
			}
			size := f.FontSize
			if size == 0 {
				size = 9
			}
			d.pdf.SetFont("Helvetica", "", size)
			// Baseline sits a typographic descender above the box bottom.
			d.pdf.Text(f.X+1, f.Y+f.H-size*0.25, f.Value)

		case TypeCheckbox:
			d.pdf.SetLineWidth(0.5)
			d.pdf.Rect(f.X, f.Y, f.W, f.H, "D")
			if isChecked(f.Value) {
				d.pdf.SetFont("Helvetica", "B", f.H)
				w := d.pdf.GetStringWidth("X")
				d.pdf.Text(f.X+(f.W-w)/2, f.Y+f.H-f.H*0.18, "X")
			}
		}
	}

	if restore > 0 {
		d.pdf.SetPage(restore)
	}
	if err := d.pdf.Error(); err != nil {
		return opErr("Flatten", err)
	}
	return nil
}

func isChecked(v string) bool {
	switch strings.ToLower(v) {
	case "yes", "true", "on", "/yes":
		return true
	}
	return false
}
