package report

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput marks validation failures. Generation must abort before any
// page is produced when a report fails validation.
var ErrInvalidInput = errors.New("report: invalid input")

// requiredHeaderFields lists the identification fields the form cannot be
// issued without.
var requiredHeaderFields = []struct {
	name  string
	value func(*Header) string
}{
	{"client name", func(h *Header) string { return h.ClientName }},
	{"inspection date", func(h *Header) string { return h.InspectionDate }},
	{"property address", func(h *Header) string { return h.PropertyAddress }},
	{"inspector name", func(h *Header) string { return h.InspectorName }},
}

// Validate checks the structural requirements of the record: required header
// fields present, every section named, every item titled.
func (r *Report) Validate() error {
	var missing []string
	for _, f := range requiredHeaderFields {
		if strings.TrimSpace(f.value(&r.Header)) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required header fields: %s",
			ErrInvalidInput, strings.Join(missing, ", "))
	}

	for si, s := range r.Sections {
		if strings.TrimSpace(s.Name) == "" {
			return fmt.Errorf("%w: section %d has no name", ErrInvalidInput, si)
		}
		for ii, item := range s.Items {
			if strings.TrimSpace(item.Title) == "" {
				return fmt.Errorf("%w: section %q item %d has no title",
					ErrInvalidInput, s.Name, ii)
			}
		}
	}
	return nil
}
