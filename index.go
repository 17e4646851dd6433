package charseq

// An Indexer maps between logical-character indices and code-unit
// indices under the classifier chosen at construction. The zero value
// is not usable; call [New].
//
// All methods are pure and safe for concurrent use.
type Indexer struct {
	c Classifier
}

// New returns an Indexer using the given classifier. A nil classifier
// means [Pairs].
func New(c Classifier) *Indexer {
	if c == nil {
		c = Pairs
	}
	return &Indexer{c: c}
}

// std backs the package-level convenience functions.
var std = New(Pairs)

// Classifier returns the classifier the Indexer was constructed with.
func (ix *Indexer) Classifier() Classifier {
	return ix.c
}

// IsMultiUnitSpanAt reports whether a recognized multi-unit span
// begins at code-unit position pos.
func (ix *Indexer) IsMultiUnitSpanAt(t Text, pos int) bool {
	return ix.c.SpanAt(t, pos) > 1
}

// CodeUnitIndex returns the code-unit offset at which the charIndex-th
// logical character of t starts, or -1 if charIndex is negative or not
// less than the logical length of t.
//
// When t contains no multi-unit spans the mapping is the identity and
// costs O(1) beyond the containment probe; otherwise the text is
// scanned span by span up to charIndex.
func (ix *Indexer) CodeUnitIndex(t Text, charIndex int) int {
	if charIndex < 0 {
		return -1
	}
	if !ix.c.ContainsMultiUnit(t) {
		if charIndex >= len(t) {
			return -1
		}
		return charIndex
	}
	pos, count := 0, 0
	for pos < len(t) {
		if count == charIndex {
			return pos
		}
		pos += ix.spanAt(t, pos)
		count++
	}
	return -1
}

// CharIndex is the inverse of [Indexer.CodeUnitIndex]: it returns the
// logical index of the character whose span covers the given code-unit
// offset, or -1 if the offset is negative or not less than t's
// code-unit length. An offset in the middle of a multi-unit span maps
// to that span's character.
func (ix *Indexer) CharIndex(t Text, codeUnitIndex int) int {
	if codeUnitIndex < 0 || codeUnitIndex >= len(t) {
		return -1
	}
	if !ix.c.ContainsMultiUnit(t) {
		return codeUnitIndex
	}
	pos, count := 0, 0
	for pos < len(t) {
		pos += ix.spanAt(t, pos)
		if codeUnitIndex < pos {
			return count
		}
		count++
	}
	return -1
}

// Length returns the number of logical characters in t. An empty Text
// has length 0.
func (ix *Indexer) Length(t Text) int {
	if !ix.c.ContainsMultiUnit(t) {
		return len(t)
	}
	pos, count := 0, 0
	for pos < len(t) {
		pos += ix.spanAt(t, pos)
		count++
	}
	return count
}

// spanAt wraps the classifier's SpanAt with the guarantees the scan
// loops rely on: always advance, never past the end.
func (ix *Indexer) spanAt(t Text, pos int) int {
	span := ix.c.SpanAt(t, pos)
	if span < 1 {
		span = 1
	}
	if pos+span > len(t) {
		span = len(t) - pos
	}
	return span
}

// chars splits t into its logical characters, each sharing t's backing
// storage.
func (ix *Indexer) chars(t Text) []Text {
	if len(t) == 0 {
		return nil
	}
	out := make([]Text, 0, len(t))
	for pos := 0; pos < len(t); {
		span := ix.spanAt(t, pos)
		out = append(out, t[pos:pos+span])
		pos += span
	}
	return out
}
