package catalog_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/sbeeredd04/trecgen/internal/catalog"
	"github.com/sbeeredd04/trecgen/internal/report"
)

func TestDefaultValidates(t *testing.T) {
	if err := catalog.Default().Validate(); err != nil {
		t.Fatalf("default catalog should validate: %v", err)
	}
}

func TestValidateRejectsDuplicateBase(t *testing.T) {
	c := catalog.Default()
	c.Subsections[1].CheckboxBase = c.Subsections[0].CheckboxBase
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for duplicate checkbox base")
	}
}

func TestValidateRejectsIncompletePriority(t *testing.T) {
	c := catalog.Default()
	c.Priority = c.Priority[:len(c.Priority)-1]
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for subsection missing from priority order")
	}
}

func TestValidateRejectsBaseBeyondCapacity(t *testing.T) {
	c := catalog.Default()
	c.Subsections[0].CheckboxBase = 1000
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for base outside form capacity")
	}
}

func TestSubsectionByID(t *testing.T) {
	c := catalog.Default()
	sub := c.SubsectionByID("I.A")
	if sub == nil {
		t.Fatal("I.A should exist")
	}
	if sub.Name != "Foundations" {
		t.Errorf("I.A name = %q, want Foundations", sub.Name)
	}
	if c.SubsectionByID("IX.Z") != nil {
		t.Error("unknown ID should return nil")
	}
}

func TestResolveAddressAbsentStatus(t *testing.T) {
	c := catalog.Default()
	addr, err := c.ResolveAddress(c.SubsectionByID("I.A"), report.StatusNone)
	if err != nil {
		t.Fatalf("absent status: %v", err)
	}
	if addr != nil {
		t.Errorf("absent status should resolve to no address, got %+v", addr)
	}
}

func TestResolveAddressKnownSlots(t *testing.T) {
	c := catalog.Default()
	cases := []struct {
		id     string
		status report.Status
		page   int
		index  int
	}{
		// Base 0, first page of the grid.
		{"I.A", report.StatusNotInspected, 3, 0},
		{"I.A", report.StatusInspected, 3, 1},
		{"I.A", report.StatusNotPresent, 3, 2},
		{"I.A", report.StatusDeficient, 3, 3},
		// Last row of page 3.
		{"I.L", report.StatusDeficient, 3, 47},
		// First row of page 4: bases restart page-relative.
		{"II.A", report.StatusNotInspected, 4, 0},
		// Page 5 begins after 12+11 rows.
		{"V.A", report.StatusInspected, 5, 1},
		// Page 6 begins after 12+11+9 rows.
		{"VI.A", report.StatusNotPresent, 6, 2},
	}
	for _, tc := range cases {
		sub := c.SubsectionByID(tc.id)
		if sub == nil {
			t.Fatalf("subsection %s missing", tc.id)
		}
		addr, err := c.ResolveAddress(sub, tc.status)
		if err != nil {
			t.Fatalf("%s/%s: %v", tc.id, tc.status, err)
		}
		if addr.Page != tc.page || addr.Index != tc.index {
			t.Errorf("%s/%s = page %d index %d, want page %d index %d",
				tc.id, tc.status, addr.Page, addr.Index, tc.page, tc.index)
		}
		want := fmt.Sprintf("topmostSubform[0].Page%d[0].CheckBox1[%d]", tc.page, tc.index)
		if addr.Name != want {
			t.Errorf("%s/%s name = %q, want %q", tc.id, tc.status, addr.Name, want)
		}
	}
}

// Every (subsection, status) pair must map to a distinct field name; two
// distinct pairs sharing a name would silently merge checkmarks.
func TestResolveAddressInjective(t *testing.T) {
	c := catalog.Default()
	statuses := []report.Status{
		report.StatusNotInspected,
		report.StatusInspected,
		report.StatusNotPresent,
		report.StatusDeficient,
	}
	seen := make(map[string]string)
	for i := range c.Subsections {
		sub := &c.Subsections[i]
		for _, st := range statuses {
			addr, err := c.ResolveAddress(sub, st)
			if err != nil {
				t.Fatalf("%s/%s: %v", sub.ID(), st, err)
			}
			key := sub.ID() + "/" + st.Code()
			if prev, dup := seen[addr.Name]; dup {
				t.Fatalf("field %s assigned to both %s and %s", addr.Name, prev, key)
			}
			seen[addr.Name] = key
		}
	}
	if len(seen) != len(c.Subsections)*len(statuses) {
		t.Errorf("expected %d distinct addresses, got %d", len(c.Subsections)*4, len(seen))
	}
}

func TestResolveAddressCapacityError(t *testing.T) {
	c := catalog.Default()
	sub := &catalog.Subsection{SectionNumeral: "I", Letter: "Z", CheckboxBase: 99}
	_, err := c.ResolveAddress(sub, report.StatusInspected)
	if !errors.Is(err, catalog.ErrFormCapacity) {
		t.Fatalf("expected ErrFormCapacity, got %v", err)
	}
}
