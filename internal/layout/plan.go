// Package layout turns the classified item set into the ordered, replayable
// sequence of page specs that drives generation. The same plan is traversed
// twice: once to compute the total page count, once to render with correct
// "Page k of N" footers. Keeping the traversal in one data structure instead
// of two code paths is what guarantees the passes cannot diverge.
package layout

import (
	"sort"

	"github.com/sbeeredd04/trecgen/internal/catalog"
	"github.com/sbeeredd04/trecgen/internal/report"
)

// Kind tags a PageSpec variant. The set of page kinds is closed; the renderer
// switches exhaustively over it.
type Kind int

const (
	KindSectionHeader Kind = iota
	KindItemBlock
	KindPhotoPage
	KindVideoPage
)

func (k Kind) String() string {
	switch k {
	case KindSectionHeader:
		return "section-header"
	case KindItemBlock:
		return "item-block"
	case KindPhotoPage:
		return "photo-page"
	case KindVideoPage:
		return "video-page"
	}
	return "unknown"
}

// AdditionalSectionName heads the trailing pseudo-section collecting items
// that match no canonical subsection.
const AdditionalSectionName = "ADDITIONAL ITEMS"

// PageSpec describes exactly one page of output.
type PageSpec struct {
	Kind Kind

	// SectionHeader pages. Numeral is empty for the Additional Items group.
	SectionNumeral string
	SectionName    string

	// ItemBlock, PhotoPage and VideoPage pages.
	Item *report.Item
	Sub  *catalog.Subsection // nil when the item is unmatched

	// PhotoPage and VideoPage pages.
	Media        *report.MediaRef
	MediaOrdinal int // 1-based position within the item's photos or videos
}

// Plan is the ordered page-spec sequence. It is built once and traversed by
// both passes; traversing it twice yields identical length and content.
type Plan []PageSpec

// Count walks the plan and returns the number of pages it describes.
func (p Plan) Count() int {
	n := 0
	for range p {
		n++
	}
	return n
}

// Assignment pairs an item with its matched subsection, or nil when the
// mapper found no keyword match. Recomputed per run, never persisted.
type Assignment struct {
	Item report.Item
	Sub  *catalog.Subsection
}

// Assign classifies every item via the mapper, preserving input order.
func Assign(items []report.Item, m *catalog.Mapper) []Assignment {
	out := make([]Assignment, 0, len(items))
	for _, item := range items {
		out = append(out, Assignment{
			Item: item,
			Sub:  m.Match(item.Title, item.Section),
		})
	}
	return out
}

// BuildPlan orders the assignments and expands them into page specs:
// canonical sections in catalog order, items within a section by subsection
// letter ascending (stable), unmatched items last in original relative order
// under the Additional Items group. Each item contributes one ItemBlock page
// followed by one page per photo and one per video; comments render inside
// the ItemBlock page.
func BuildPlan(cat *catalog.Catalog, assignments []Assignment) Plan {
	grouped := make(map[string][]Assignment)
	var unmatched []Assignment
	for _, a := range assignments {
		if a.Sub == nil {
			unmatched = append(unmatched, a)
			continue
		}
		key := a.Sub.SectionNumeral
		grouped[key] = append(grouped[key], a)
	}

	var plan Plan
	for _, section := range cat.Sections {
		group := grouped[section.Numeral]
		if len(group) == 0 {
			continue
		}
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Sub.Letter < group[j].Sub.Letter
		})

		plan = append(plan, PageSpec{
			Kind:           KindSectionHeader,
			SectionNumeral: section.Numeral,
			SectionName:    section.Name,
		})
		plan = appendItems(plan, group)
	}

	if len(unmatched) > 0 {
		plan = append(plan, PageSpec{
			Kind:        KindSectionHeader,
			SectionName: AdditionalSectionName,
		})
		plan = appendItems(plan, unmatched)
	}
	return plan
}

func appendItems(plan Plan, group []Assignment) Plan {
	for i := range group {
		a := group[i]
		item := a.Item
		plan = append(plan, PageSpec{
			Kind: KindItemBlock,
			Item: &group[i].Item,
			Sub:  a.Sub,
		})
		for pi := range item.Photos {
			plan = append(plan, PageSpec{
				Kind:         KindPhotoPage,
				Item:         &group[i].Item,
				Sub:          a.Sub,
				Media:        &group[i].Item.Photos[pi],
				MediaOrdinal: pi + 1,
			})
		}
		for vi := range item.Videos {
			plan = append(plan, PageSpec{
				Kind:         KindVideoPage,
				Item:         &group[i].Item,
				Sub:          a.Sub,
				Media:        &group[i].Item.Videos[vi],
				MediaOrdinal: vi + 1,
			})
		}
	}
	return plan
}
