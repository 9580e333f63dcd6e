package layout

import "strings"

// Line is one display line produced by Wrap. The first line of each logical
// line (a segment between embedded line breaks) carries the bullet marker;
// width-forced continuations are indented by the renderer and carry none.
type Line struct {
	Text   string
	Bullet bool
}

// MeasureFunc reports the rendered width of a string at the font and size the
// lines will be drawn with. Injected so wrapping stays independent of the
// document backend.
type MeasureFunc func(string) float64

// Wrap splits raw comment text into display lines that fit maxWidth. Embedded
// line breaks are honored first: each segment becomes its own bulleted
// logical line. Within a segment, words accumulate greedily while the
// candidate line still measures within maxWidth. A single word wider than
// maxWidth is emitted on its own line rather than dropped, so the emitted
// words always reproduce the input word sequence exactly.
//
// Wrap is pure; calling it again with the same inputs yields the same lines.
func Wrap(raw string, maxWidth float64, measure MeasureFunc) []Line {
	var out []Line

	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	for _, segment := range strings.Split(raw, "\n") {
		out = appendSegment(out, segment, maxWidth, measure)
	}
	return out
}

func appendSegment(out []Line, segment string, maxWidth float64, measure MeasureFunc) []Line {
	words := strings.Fields(segment)
	if len(words) == 0 {
		return append(out, Line{Bullet: true})
	}

	first := true
	current := ""
	for _, word := range words {
		if current == "" {
			current = word
			continue
		}
		candidate := current + " " + word
		if measure(candidate) <= maxWidth {
			current = candidate
			continue
		}
		out = append(out, Line{Text: current, Bullet: first})
		first = false
		current = word
	}
	return append(out, Line{Text: current, Bullet: first})
}
