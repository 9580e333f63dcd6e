package catalog

import "strings"

// Mapper classifies free-form inspection items onto the catalog's canonical
// subsections by keyword search. It is a pure function over the injected
// catalog and the input strings.
type Mapper struct {
	cat *Catalog
}

// NewMapper returns a Mapper over the given catalog.
func NewMapper(cat *Catalog) *Mapper {
	return &Mapper{cat: cat}
}

// Match finds the canonical subsection for an item, or nil when no keyword
// matches. The item title and its parent section name are concatenated and
// lowercased; subsections are tried in the catalog's priority order and the
// first keyword hit wins. Text matching keywords of two subsections therefore
// resolves to whichever appears earlier in the priority order; that is the
// documented tie-break, not an error.
func (m *Mapper) Match(itemTitle, sectionName string) *Subsection {
	text := strings.ToLower(itemTitle + " " + sectionName)
	for _, id := range m.cat.Priority {
		sub := m.cat.SubsectionByID(id)
		if sub == nil {
			continue
		}
		for _, kw := range sub.Keywords {
			if strings.Contains(text, kw) {
				return sub
			}
		}
	}
	return nil
}
