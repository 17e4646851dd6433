package charseq

import "math"

// End, passed as the end argument of [Indexer.Slice] or [Indexer.Substring],
// selects everything through the end of the text. Any end at or beyond
// the logical length behaves the same way.
const End = math.MaxInt

// Slice returns the logical characters of t in [start, end). Negative
// bounds count back from the logical length. A bound past the end of
// the text clamps to the end, and a start at or past end yields an
// empty Text. The result shares t's backing storage.
func (ix *Indexer) Slice(t Text, start, end int) Text {
	n := ix.Length(t)
	if start < 0 {
		start += n
		if start < 0 {
			start = 0
		}
	}
	if end < 0 {
		end += n
		if end < 0 {
			end = 0
		}
	}
	from := ix.CodeUnitIndex(t, start)
	if from < 0 {
		from = len(t)
	}
	to := ix.CodeUnitIndex(t, end)
	if to < 0 {
		to = len(t)
	}
	if from >= to {
		return nil
	}
	return t[from:to]
}

// Substr returns up to length logical characters of t starting at
// start. A negative start counts back from the logical length,
// clamping at 0. A non-positive length yields an empty Text.
func (ix *Indexer) Substr(t Text, start, length int) Text {
	if length <= 0 {
		return nil
	}
	if start < 0 {
		start += ix.Length(t)
		if start < 0 {
			start = 0
		}
	}
	end := start + length
	if end < start { // overflow
		end = End
	}
	return ix.Slice(t, start, end)
}

// Substring returns the logical characters of t in [start, end), with
// both bounds clamped to [0, Length] and swapped if start > end.
func (ix *Indexer) Substring(t Text, start, end int) Text {
	n := ix.Length(t)
	if start < 0 {
		start = 0
	} else if start > n {
		start = n
	}
	if end < 0 {
		end = 0
	} else if end > n {
		end = n
	}
	if start > end {
		start, end = end, start
	}
	return ix.Slice(t, start, end)
}

// CharAt returns the charIndex-th logical character of t, which may be
// one code unit or several. The result is empty if charIndex is out of
// range.
func (ix *Indexer) CharAt(t Text, charIndex int) Text {
	pos := ix.CodeUnitIndex(t, charIndex)
	if pos < 0 {
		return nil
	}
	return t[pos : pos+ix.spanAt(t, pos)]
}

// IndexOf returns the logical index of the first occurrence of needle
// in t at or after the logical position from, or -1 if there is none.
// A negative from is treated as 0. An empty needle matches at the
// clamped from position. A match beginning inside a multi-unit span
// reports that span's character index.
func (ix *Indexer) IndexOf(t, needle Text, from int) int {
	n := ix.Length(t)
	if from < 0 {
		from = 0
	}
	if len(needle) == 0 {
		if from > n {
			return n
		}
		return from
	}
	if from >= n {
		return -1
	}
	for pos := ix.CodeUnitIndex(t, from); pos+len(needle) <= len(t); pos++ {
		if unitsMatch(t, needle, pos) {
			return ix.CharIndex(t, pos)
		}
	}
	return -1
}

// LastIndexOf returns the logical index of the last occurrence of
// needle in t beginning at or before the logical position from, or -1
// if there is none. A from at or beyond the end searches the whole
// text; a negative from restricts the search to position 0. An empty
// needle matches at the clamped from position.
func (ix *Indexer) LastIndexOf(t, needle Text, from int) int {
	n := ix.Length(t)
	if from < 0 {
		from = 0
	}
	if from > n {
		from = n
	}
	if len(needle) == 0 {
		return from
	}
	limit := len(t)
	if from < n {
		limit = ix.CodeUnitIndex(t, from)
	}
	if limit > len(t)-len(needle) {
		limit = len(t) - len(needle)
	}
	for pos := limit; pos >= 0; pos-- {
		if unitsMatch(t, needle, pos) {
			return ix.CharIndex(t, pos)
		}
	}
	return -1
}

// unitsMatch reports whether needle occurs in t at code-unit offset
// pos. The caller guarantees pos+len(needle) <= len(t).
func unitsMatch(t, needle Text, pos int) bool {
	for i, u := range needle {
		if t[pos+i] != u {
			return false
		}
	}
	return true
}

// PadStart prepends logical characters drawn cyclically from pad until
// t's logical length reaches target. An empty pad means a single
// space. Text already at or beyond target is returned unchanged. A pad
// whose characters merge into their neighbors keeps growing until the
// target is reached, or stops once growth is impossible.
func (ix *Indexer) PadStart(t Text, target int, pad Text) Text {
	return ix.padText(t, target, pad, true)
}

// PadEnd is like [Indexer.PadStart] but appends.
func (ix *Indexer) PadEnd(t Text, target int, pad Text) Text {
	return ix.padText(t, target, pad, false)
}

// padText grows t with logical characters drawn cyclically from pad,
// re-measuring the result after every appended character: pad
// characters can merge with their neighbors (regional indicators into
// a flag, a lone high surrogate into a pair with a following low
// surrogate), so the number of characters needed cannot be computed up
// front.
func (ix *Indexer) padText(t Text, target int, pad Text, atStart bool) Text {
	length := ix.Length(t)
	if length >= target {
		return t
	}
	if len(pad) == 0 {
		pad = Text{' '}
	}
	chars := ix.chars(pad)

	var block Text
	stall := 0
	for i := 0; ; i++ {
		block = append(block, chars[i%len(chars)]...)
		var merged Text
		if atStart {
			merged = concat(block, t)
		} else {
			merged = concat(t, block)
		}
		n := ix.Length(merged)
		if n >= target {
			return merged
		}
		if n > length {
			length, stall = n, 0
			continue
		}
		// A pad that only merges into its neighbors, such as a bare
		// combining mark under [Graphemes], can never reach the
		// target. Give up after two full cycles without growth.
		stall++
		if stall >= 2*len(chars) {
			return merged
		}
	}
}

// concat returns a new Text holding a followed by b.
func concat(a, b Text) Text {
	out := make(Text, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
