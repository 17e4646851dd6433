package charseq

import (
	"unicode/utf16"

	"github.com/rivo/uniseg"
)

// Graphemes classifies full Unicode grapheme clusters (UAX #29) as
// logical characters: combining marks, ZWJ emoji sequences, Hangul
// syllables, and regional-indicator flags all merge into one
// character. Spans can be arbitrarily long, and CR LF counts as a
// single two-unit character.
//
// Cluster boundaries are delegated to the rivo/uniseg segmenter over a
// decoded window of the text, so SpanAt is noticeably more expensive
// than under [Pairs] or [Visual].
var Graphemes Classifier = graphemes{}

// graphemeWindow is the number of code units decoded ahead of a
// position when looking for a cluster boundary. The window doubles
// whenever a cluster runs up against its edge.
const graphemeWindow = 32

type graphemes struct{}

func (graphemes) SpanAt(t Text, pos int) int {
	if pos < 0 || pos >= len(t) {
		return 0
	}
	for window := graphemeWindow; ; window *= 2 {
		end := pos + window
		if end >= len(t) || end < pos {
			end = len(t)
		}
		cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(string(utf16.Decode(t[pos:end])), -1)

		// The decoded cluster's UTF-16 width is the span: two units
		// per supplementary code point, one otherwise. A lone
		// surrogate decodes to U+FFFD, which is one unit wide, so the
		// arithmetic stays aligned with the undecoded text.
		span := 0
		for _, r := range cluster {
			if r >= surrSelf {
				span += 2
			} else {
				span++
			}
		}
		if span < 1 {
			return 1
		}

		// A cluster that stops short of the window edge cannot grow
		// with more lookahead. Two units of slack keep a surrogate
		// pair split by the window from faking a boundary.
		if end == len(t) || span+2 <= end-pos {
			return span
		}
	}
}

func (graphemes) ContainsMultiUnit(t Text) bool {
	// ASCII text without a carriage return never merges: every
	// combining character, joiner, and surrogate is non-ASCII, and
	// the only ASCII cluster rule is CR LF.
	for _, u := range t {
		if u >= 0x80 || u == '\r' {
			return true
		}
	}
	return false
}
