package charseq

// UTF-16 surrogate ranges and the regional-indicator block.
const (
	surrHigh = 0xd800 // 0xd800-0xdbff encode the high 10 bits of a pair.
	surrLow  = 0xdc00 // 0xdc00-0xdfff encode the low 10 bits of a pair.
	surrEnd  = 0xe000

	surrSelf = 0x10000 // Pairs encode code points at or above this value.

	riFirst = 0x1f1e6 // Regional Indicator Symbol Letter A
	riLast  = 0x1f1ff // Regional Indicator Symbol Letter Z
)

// A Classifier decides which code-unit spans count as one logical
// character. It is a pure policy: implementations hold no state and
// may be shared freely.
//
// The package provides [Pairs], [Visual], and [Graphemes]. A
// classifier is selected once, when constructing an [Indexer] with
// [New].
type Classifier interface {
	// SpanAt returns the code-unit length of the logical character
	// starting at code-unit position pos, or 0 if pos is out of range.
	// The result is at least 1 for any in-range position; a position
	// inside a multi-unit span is answered as if a character started
	// there.
	SpanAt(t Text, pos int) int

	// ContainsMultiUnit reports whether t contains any logical
	// character wider than one code unit. A false result guarantees
	// the identity mapping between character and code-unit indices;
	// implementations may answer true conservatively.
	ContainsMultiUnit(t Text) bool
}

// Pairs is the default classifier. It recognizes surrogate pairs as
// two-unit characters and nothing else. A lone surrogate counts as a
// single one-unit character.
var Pairs Classifier = pairs{}

// Visual recognizes everything [Pairs] does and additionally merges
// two adjacent regional-indicator code points into one four-unit
// character, so a flag emoji counts as a single character.
var Visual Classifier = visual{}

func isHighSurrogate(u uint16) bool {
	return u >= surrHigh && u < surrLow
}

func isLowSurrogate(u uint16) bool {
	return u >= surrLow && u < surrEnd
}

// pairAt reports whether a well-formed surrogate pair begins at pos.
func pairAt(t Text, pos int) bool {
	return pos >= 0 && pos+1 < len(t) && isHighSurrogate(t[pos]) && isLowSurrogate(t[pos+1])
}

// decodePair returns the code point encoded by the surrogate pair at
// pos. pairAt(t, pos) must hold.
func decodePair(t Text, pos int) rune {
	return (rune(t[pos])-surrHigh)<<10 | (rune(t[pos+1]) - surrLow) + surrSelf
}

func isRegionalIndicator(r rune) bool {
	return r >= riFirst && r <= riLast
}

// anyPair is the shared multi-unit probe: every span wider than one
// unit, under any of the pair-based classifiers, starts with a
// surrogate pair.
func anyPair(t Text) bool {
	for i := 0; i+1 < len(t); i++ {
		if isHighSurrogate(t[i]) && isLowSurrogate(t[i+1]) {
			return true
		}
	}
	return false
}

type pairs struct{}

func (pairs) SpanAt(t Text, pos int) int {
	if pos < 0 || pos >= len(t) {
		return 0
	}
	if pairAt(t, pos) {
		return 2
	}
	return 1
}

func (pairs) ContainsMultiUnit(t Text) bool {
	return anyPair(t)
}

type visual struct{}

func (visual) SpanAt(t Text, pos int) int {
	if pos < 0 || pos >= len(t) {
		return 0
	}
	if !pairAt(t, pos) {
		return 1
	}
	if isRegionalIndicator(decodePair(t, pos)) && pairAt(t, pos+2) && isRegionalIndicator(decodePair(t, pos+2)) {
		return 4
	}
	return 2
}

func (visual) ContainsMultiUnit(t Text) bool {
	return anyPair(t)
}
