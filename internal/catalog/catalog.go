// Package catalog models the fixed layout contract of the TREC REI 7-6 form:
// the canonical sections and subsections items are classified into, the
// keyword sets used for classification, and the arithmetic that turns a
// (subsection, status) pair into the form's unique checkbox field address.
//
// The catalog is an explicit immutable configuration object. A compiled-in
// default matches the current form revision; a YAML override can be loaded
// for future revisions without a rebuild.
package catalog

import (
	"fmt"
	"strings"
)

// Section is one roman-numeral division of the form.
type Section struct {
	Numeral string `yaml:"numeral"`
	Name    string `yaml:"name"`
}

// Subsection is one lettered row of the form's checkbox grid.
type Subsection struct {
	SectionNumeral string   `yaml:"section"`
	Letter         string   `yaml:"letter"`
	Name           string   `yaml:"name"`
	Keywords       []string `yaml:"keywords"`
	// CheckboxBase is the row's 0-based index across the whole form. Each
	// row owns four consecutive checkbox slots starting at CheckboxBase*4.
	CheckboxBase int `yaml:"checkboxBase"`
	// Page is the template page the row's checkboxes live on.
	Page int `yaml:"page"`
}

// ID returns the row's catalog key, e.g. "I.A".
func (s *Subsection) ID() string {
	return s.SectionNumeral + "." + s.Letter
}

// PageRows gives the number of checkbox rows a template page holds.
type PageRows struct {
	Page int `yaml:"page"`
	Rows int `yaml:"rows"`
}

// Catalog is the full form contract. Priority lists subsection IDs in the
// order the mapper tries them; it is the explicit tie-break for item text
// matching keywords of more than one subsection.
type Catalog struct {
	Sections    []Section    `yaml:"sections"`
	Subsections []Subsection `yaml:"subsections"`
	Priority    []string     `yaml:"priority"`
	Capacities  []PageRows   `yaml:"capacities"`

	byID map[string]*Subsection
}

// Validate checks the catalog's internal consistency: unique IDs and base
// offsets, bases within the form's capacity, every subsection reachable from
// the priority order, every subsection's section known.
func (c *Catalog) Validate() error {
	sections := make(map[string]bool, len(c.Sections))
	for _, s := range c.Sections {
		if sections[s.Numeral] {
			return fmt.Errorf("catalog: duplicate section %s", s.Numeral)
		}
		sections[s.Numeral] = true
	}

	total := 0
	for _, p := range c.Capacities {
		total += p.Rows
	}

	ids := make(map[string]bool, len(c.Subsections))
	bases := make(map[int]string, len(c.Subsections))
	for i := range c.Subsections {
		sub := &c.Subsections[i]
		if !sections[sub.SectionNumeral] {
			return fmt.Errorf("catalog: subsection %s references unknown section", sub.ID())
		}
		if ids[sub.ID()] {
			return fmt.Errorf("catalog: duplicate subsection %s", sub.ID())
		}
		ids[sub.ID()] = true
		if prev, taken := bases[sub.CheckboxBase]; taken {
			return fmt.Errorf("catalog: subsections %s and %s share checkbox base %d",
				prev, sub.ID(), sub.CheckboxBase)
		}
		bases[sub.CheckboxBase] = sub.ID()
		if sub.CheckboxBase < 0 || sub.CheckboxBase >= total {
			return fmt.Errorf("catalog: subsection %s base %d outside form capacity %d",
				sub.ID(), sub.CheckboxBase, total)
		}
	}

	seen := make(map[string]bool, len(c.Priority))
	for _, id := range c.Priority {
		if !ids[id] {
			return fmt.Errorf("catalog: priority entry %s has no subsection", id)
		}
		if seen[id] {
			return fmt.Errorf("catalog: duplicate priority entry %s", id)
		}
		seen[id] = true
	}
	for id := range ids {
		if !seen[id] {
			return fmt.Errorf("catalog: subsection %s missing from priority order", id)
		}
	}
	return nil
}

// SubsectionByID returns the row with the given "numeral.letter" key.
func (c *Catalog) SubsectionByID(id string) *Subsection {
	if c.byID == nil {
		c.byID = make(map[string]*Subsection, len(c.Subsections))
		for i := range c.Subsections {
			c.byID[c.Subsections[i].ID()] = &c.Subsections[i]
		}
	}
	return c.byID[id]
}

// SectionByNumeral returns the named division, or nil.
func (c *Catalog) SectionByNumeral(numeral string) *Section {
	for i := range c.Sections {
		if c.Sections[i].Numeral == numeral {
			return &c.Sections[i]
		}
	}
	return nil
}

// SubsectionsOf returns the rows of one section, sorted by letter.
func (c *Catalog) SubsectionsOf(numeral string) []*Subsection {
	var out []*Subsection
	for i := range c.Subsections {
		if c.Subsections[i].SectionNumeral == numeral {
			out = append(out, &c.Subsections[i])
		}
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Letter < out[j-1].Letter; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func sub(section, letter, name string, base, page int, keywords ...string) Subsection {
	for i, k := range keywords {
		keywords[i] = strings.ToLower(k)
	}
	return Subsection{
		SectionNumeral: section,
		Letter:         letter,
		Name:           name,
		Keywords:       keywords,
		CheckboxBase:   base,
		Page:           page,
	}
}

// Default returns the catalog for the current form revision. Checkbox rows
// are numbered in form order; capacities mirror the template's per-page grid.
func Default() *Catalog {
	c := &Catalog{
		Sections: []Section{
			{"I", "STRUCTURAL SYSTEMS"},
			{"II", "ELECTRICAL SYSTEMS"},
			{"III", "HEATING, VENTILATION AND AIR CONDITIONING SYSTEMS"},
			{"IV", "PLUMBING SYSTEMS"},
			{"V", "APPLIANCES"},
			{"VI", "OPTIONAL SYSTEMS"},
		},
		Subsections: []Subsection{
			sub("I", "A", "Foundations", 0, 3, "foundation", "slab", "pier", "footing", "crawl space"),
			sub("I", "B", "Grading and Drainage", 1, 3, "grading", "drainage", "grade", "gutter", "downspout"),
			sub("I", "C", "Roof Covering Materials", 2, 3, "roof covering", "shingle", "roofing", "flashing"),
			sub("I", "D", "Roof Structures and Attics", 3, 3, "attic", "roof structure", "rafter", "roof decking", "insulation"),
			sub("I", "E", "Walls (Interior and Exterior)", 4, 3, "wall", "siding", "brick veneer", "drywall"),
			sub("I", "F", "Ceilings and Floors", 5, 3, "ceiling", "floor", "subfloor"),
			sub("I", "G", "Doors (Interior and Exterior)", 6, 3, "door"),
			sub("I", "H", "Windows", 7, 3, "window", "glazing", "screen"),
			sub("I", "I", "Stairways (Interior and Exterior)", 8, 3, "stair", "handrail", "baluster", "guardrail"),
			sub("I", "J", "Fireplaces and Chimneys", 9, 3, "fireplace", "chimney", "hearth", "firebox"),
			sub("I", "K", "Porches, Balconies, Decks, and Carports", 10, 3, "porch", "balcon", "deck", "carport"),
			sub("I", "L", "Other Structural", 11, 3, "structural"),

			sub("II", "A", "Service Entrance and Panels", 12, 4, "service entrance", "panel", "breaker", "meter base", "grounding"),
			sub("II", "B", "Branch Circuits, Connected Devices, and Fixtures", 13, 4,
				"outlet", "receptacle", "gfci", "afci", "wiring", "switch", "light fixture", "smoke detector", "electrical"),

			sub("III", "A", "Heating Equipment", 14, 4, "furnace", "heating", "heat pump", "heat exchanger"),
			sub("III", "B", "Cooling Equipment", 15, 4, "air condition", "cooling", "condens", "evaporator", "refrigerant", "hvac"),
			sub("III", "C", "Duct Systems, Chases, and Vents", 16, 4, "duct", "register", "plenum", "vent"),

			sub("IV", "A", "Plumbing Supply, Distribution Systems and Fixtures", 17, 4,
				"plumbing", "faucet", "sink", "toilet", "shower", "tub", "water supply", "water pressure", "hose bibb"),
			sub("IV", "B", "Drains, Wastes, and Vents", 18, 4, "drain", "waste", "sewer"),
			sub("IV", "C", "Water Heating Equipment", 19, 4, "water heater", "water heating"),
			sub("IV", "D", "Hydro-Massage Therapy Equipment", 20, 4, "hydro-massage", "hydro massage", "whirlpool", "jetted"),
			sub("IV", "E", "Gas Distribution Systems", 21, 4, "gas distribution", "gas line", "gas piping", "propane", "gas"),
			sub("IV", "F", "Other Plumbing", 22, 4, "water softener", "filtration"),

			sub("V", "A", "Dishwashers", 23, 5, "dishwasher"),
			sub("V", "B", "Food Waste Disposers", 24, 5, "disposer", "disposal"),
			sub("V", "C", "Range Hood and Exhaust Systems", 25, 5, "range hood", "vent hood", "exhaust hood"),
			sub("V", "D", "Ranges, Cooktops, and Ovens", 26, 5, "range", "cooktop", "oven", "stove"),
			sub("V", "E", "Microwave Ovens", 27, 5, "microwave"),
			sub("V", "F", "Mechanical Exhaust Vents and Bathroom Heaters", 28, 5,
				"bathroom exhaust", "exhaust fan", "bath fan", "bathroom heater"),
			sub("V", "G", "Garage Door Operators", 29, 5, "garage door", "door operator", "opener"),
			sub("V", "H", "Dryer Exhaust Systems", 30, 5, "dryer exhaust", "dryer vent", "dryer"),
			sub("V", "I", "Other Appliances", 31, 5, "appliance"),

			sub("VI", "A", "Landscape Irrigation (Sprinkler) Systems", 32, 6, "sprinkler", "irrigation"),
			sub("VI", "B", "Swimming Pools, Spas, Hot Tubs, and Equipment", 33, 6, "pool", "spa", "hot tub"),
			sub("VI", "C", "Outbuildings", 34, 6, "outbuilding", "shed", "detached garage"),
			sub("VI", "D", "Private Water Wells", 35, 6, "water well", "well pump"),
			sub("VI", "E", "Private Sewage Disposal Systems", 36, 6, "septic", "sewage", "aerobic system"),
			sub("VI", "F", "Other Built-in Appliances", 37, 6, "built-in"),
			sub("VI", "G", "Other Optional Systems", 38, 6, "optional"),
		},
		// Most-specific keywords first so compound phrases beat the generic
		// rows they contain ("garage door" before "door", "range hood"
		// before "range", "dryer exhaust" and "bathroom exhaust" before
		// duct "vent", "water heater" before plumbing "water supply").
		Priority: []string{
			"V.G", "V.C", "V.H", "V.F", "V.A", "V.B", "V.E", "V.D",
			"IV.C", "IV.D", "IV.E", "IV.F",
			"VI.A", "VI.B", "VI.C", "VI.D", "VI.E",
			"I.J", "I.K", "I.I", "I.A", "I.B", "I.C", "I.D", "I.H", "I.F", "I.E", "I.G",
			"II.A", "II.B",
			"III.A", "III.B", "III.C",
			"IV.A", "IV.B",
			"V.I", "VI.F", "VI.G", "I.L",
		},
		Capacities: []PageRows{
			{Page: 3, Rows: 12},
			{Page: 4, Rows: 11},
			{Page: 5, Rows: 9},
			{Page: 6, Rows: 7},
		},
	}
	return c
}
