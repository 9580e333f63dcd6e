// Package report defines the inspection input record consumed by the layout
// engine: header metadata plus ordered sections of inspection items with
// comments and media references. Values are read once from JSON and never
// mutated afterwards.
package report

// Status is the inspection outcome of a single item, mirroring the four
// checkbox columns of the TREC form. The zero value means no status was
// reported; no checkbox is ever marked for it.
type Status int

const (
	StatusNone         Status = iota // absent
	StatusNotInspected               // NI
	StatusInspected                  // I
	StatusNotPresent                 // NP
	StatusDeficient                  // D
)

// Code returns the short form code printed in the legend ("I", "NI", "NP",
// "D"), or "" for an absent status.
func (s Status) Code() string {
	switch s {
	case StatusNotInspected:
		return "NI"
	case StatusInspected:
		return "I"
	case StatusNotPresent:
		return "NP"
	case StatusDeficient:
		return "D"
	}
	return ""
}

func (s Status) String() string {
	switch s {
	case StatusNotInspected:
		return "Not Inspected"
	case StatusInspected:
		return "Inspected"
	case StatusNotPresent:
		return "Not Present"
	case StatusDeficient:
		return "Deficient"
	}
	return "None"
}

// MediaRef points at one photo or video attached to an item.
type MediaRef struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

// Item is a single inspection line item.
type Item struct {
	Title    string     `json:"title"`
	Section  string     `json:"-"` // parent section name, set during parsing
	Status   Status     `json:"-"` // derived, see deriveStatus
	Comments []string   `json:"-"`
	Photos   []MediaRef `json:"-"`
	Videos   []MediaRef `json:"-"`
}

// Section is an ordered group of items as reported by the inspection tool.
// Section names are free-form; classification onto the fixed form happens
// later via keyword matching.
type Section struct {
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

// Header carries the identification block filled on the form's first page.
type Header struct {
	ClientName       string `json:"clientName"`
	InspectionDate   string `json:"inspectionDate"`
	PropertyAddress  string `json:"propertyAddress"`
	InspectorName    string `json:"inspectorName"`
	InspectorLicense string `json:"inspectorLicense,omitempty"`
	SponsorName      string `json:"sponsorName,omitempty"`
	SponsorLicense   string `json:"sponsorLicense,omitempty"`
}

// Report is the validated input record.
type Report struct {
	ID       string    `json:"id,omitempty"`
	Header   Header    `json:"header"`
	Sections []Section `json:"sections"`
}

// Items returns all items across all sections in document order.
func (r *Report) Items() []Item {
	var out []Item
	for _, s := range r.Sections {
		out = append(out, s.Items...)
	}
	return out
}
