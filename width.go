package charseq

import "github.com/mattn/go-runewidth"

// Width returns the display width of t in monospace font cells, summed
// over t's logical characters. Most characters are one cell wide, East
// Asian wide and fullwidth characters and emoji are two, and combining
// marks are zero.
//
// Actual rendering depends on the terminal and font; the calculation
// follows common conventions but may not match all environments.
func (ix *Indexer) Width(t Text) int {
	w := 0
	for _, c := range ix.chars(t) {
		w += runewidth.StringWidth(c.String())
	}
	return w
}
