package layout_test

import (
	"strings"
	"testing"

	"github.com/sbeeredd04/trecgen/internal/layout"
)

// charWidth measures one unit per rune, so maxWidth is a character budget.
func charWidth(s string) float64 { return float64(len(s)) }

func TestWrapSingleShortLine(t *testing.T) {
	lines := layout.Wrap("minor cracking observed", 100, charWidth)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Text != "minor cracking observed" {
		t.Errorf("text = %q", lines[0].Text)
	}
	if !lines[0].Bullet {
		t.Error("first line of a logical line should carry the bullet")
	}
}

func TestWrapContinuationsUnbulleted(t *testing.T) {
	lines := layout.Wrap("one two three four five six", 10, charWidth)
	if len(lines) < 2 {
		t.Fatalf("expected wrapping, got %d lines", len(lines))
	}
	if !lines[0].Bullet {
		t.Error("first line should be bulleted")
	}
	for i, ln := range lines[1:] {
		if ln.Bullet {
			t.Errorf("continuation line %d should not be bulleted", i+1)
		}
	}
}

// No emitted line may exceed the width, except a single word that alone is
// wider than the budget.
func TestWrapRespectsWidth(t *testing.T) {
	raw := "the evaporator coil cabinet shows significant corrosion and rust staining at the secondary drain pan"
	lines := layout.Wrap(raw, 24, charWidth)
	for _, ln := range lines {
		if charWidth(ln.Text) > 24 && strings.Contains(ln.Text, " ") {
			t.Errorf("line %q exceeds width %v", ln.Text, 24)
		}
	}
}

func TestWrapOversizedWordEmittedAlone(t *testing.T) {
	lines := layout.Wrap("see supercalifragilistic notes", 10, charWidth)
	found := false
	for _, ln := range lines {
		if ln.Text == "supercalifragilistic" {
			found = true
		}
	}
	if !found {
		t.Fatalf("oversized word should be emitted on its own line, got %+v", lines)
	}
}

// Concatenating the emitted words must reproduce the input word sequence.
func TestWrapPreservesWordSequence(t *testing.T) {
	raw := "water stains noted at ceiling below upstairs bathroom\nrecommend further evaluation by licensed plumber"
	lines := layout.Wrap(raw, 20, charWidth)

	var got []string
	for _, ln := range lines {
		got = append(got, strings.Fields(ln.Text)...)
	}
	want := strings.Fields(strings.ReplaceAll(raw, "\n", " "))
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("word sequence changed:\n got %v\nwant %v", got, want)
	}
}

// k embedded line breaks produce exactly k+1 bulleted logical lines.
func TestWrapEmbeddedBreaks(t *testing.T) {
	raw := "first observation\r\nsecond observation\nthird observation"
	lines := layout.Wrap(raw, 100, charWidth)

	bullets := 0
	for _, ln := range lines {
		if ln.Bullet {
			bullets++
		}
	}
	if bullets != 3 {
		t.Errorf("expected 3 bulleted logical lines, got %d", bullets)
	}
}

func TestWrapDeterministic(t *testing.T) {
	raw := "gas shutoff valve not accessible\nno sediment trap installed at furnace"
	first := layout.Wrap(raw, 18, charWidth)
	for i := 0; i < 5; i++ {
		again := layout.Wrap(raw, 18, charWidth)
		if len(again) != len(first) {
			t.Fatalf("run %d produced %d lines, first run %d", i, len(again), len(first))
		}
		for j := range again {
			if again[j] != first[j] {
				t.Fatalf("run %d line %d = %+v, first run %+v", i, j, again[j], first[j])
			}
		}
	}
}
