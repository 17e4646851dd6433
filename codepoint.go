package charseq

const (
	maxCodePoint    = 0x10ffff
	replacementChar = 0xfffd
)

// CodePoints returns the Unicode code points of t, walking its logical
// characters. A surrogate pair contributes one code point; a
// multi-pair character such as a flag under [Visual] contributes one
// code point per pair. A lone surrogate passes through as its own
// value.
func (ix *Indexer) CodePoints(t Text) []rune {
	if len(t) == 0 {
		return nil
	}
	out := make([]rune, 0, len(t))
	for pos := 0; pos < len(t); {
		end := pos + ix.spanAt(t, pos)
		for pos < end {
			if pos+1 < end && pairAt(t, pos) {
				out = append(out, decodePair(t, pos))
				pos += 2
				continue
			}
			out = append(out, rune(t[pos]))
			pos++
		}
	}
	return out
}

// FromCodePoints returns the UTF-16 encoding of the given code points.
// Values above 0xFFFF split into a surrogate pair. Inputs are
// normalized rather than rejected: a negative value becomes 0, a value
// above the Unicode range becomes U+FFFD, and a value in the surrogate
// range passes through as a single code unit.
func FromCodePoints(points []rune) Text {
	out := make(Text, 0, len(points))
	for _, p := range points {
		if p < 0 {
			p = 0
		}
		if p > maxCodePoint {
			p = replacementChar
		}
		if p >= surrSelf {
			v := p - surrSelf
			out = append(out, uint16(surrHigh+v>>10), uint16(surrLow+v&0x3ff))
			continue
		}
		out = append(out, uint16(p))
	}
	return out
}
