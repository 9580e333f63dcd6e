package catalog

import (
	"errors"
	"fmt"

	"github.com/sbeeredd04/trecgen/internal/report"
)

// ErrFormCapacity signals that a subsection's checkbox base falls outside the
// template's grid. The form contract has changed incompatibly; generation
// must abort rather than mis-render.
var ErrFormCapacity = errors.New("catalog: checkbox base outside form capacity")

// FieldAddress identifies one checkbox slot of the fixed form.
type FieldAddress struct {
	Page  int    // template page the widget lives on
	Index int    // page-relative checkbox index
	Name  string // fully qualified AcroForm field name
}

// statusOffset gives each status its column inside a row's four consecutive
// slots. The template orders the columns NI, I, NP, D.
func statusOffset(s report.Status) (int, bool) {
	switch s {
	case report.StatusNotInspected:
		return 0, true
	case report.StatusInspected:
		return 1, true
	case report.StatusNotPresent:
		return 2, true
	case report.StatusDeficient:
		return 3, true
	}
	return 0, false
}

// ResolveAddress computes the unique checkbox field address for a subsection
// and status. An absent status resolves to nil with no error: no checkbox is
// ever marked for it. The mapping over all (subsection, status) pairs is
// injective because base offsets are unique (enforced by Catalog.Validate)
// and each row owns four disjoint slots.
func (c *Catalog) ResolveAddress(sub *Subsection, status report.Status) (*FieldAddress, error) {
	offset, ok := statusOffset(status)
	if !ok {
		return nil, nil
	}

	row := sub.CheckboxBase
	for _, pg := range c.Capacities {
		if row < pg.Rows {
			index := row*4 + offset
			return &FieldAddress{
				Page:  pg.Page,
				Index: index,
				Name:  fmt.Sprintf("topmostSubform[0].Page%d[0].CheckBox1[%d]", pg.Page, index),
			}, nil
		}
		row -= pg.Rows
	}
	return nil, fmt.Errorf("%w: subsection %s base %d", ErrFormCapacity, sub.ID(), sub.CheckboxBase)
}
