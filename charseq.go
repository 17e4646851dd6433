package charseq

// Package-level convenience functions. They use the default [Pairs]
// classifier; construct an [Indexer] with [New] to use [Visual] or
// [Graphemes].

// IsMultiUnitSpanAt reports whether a surrogate pair begins at
// code-unit position pos.
func IsMultiUnitSpanAt(t Text, pos int) bool {
	return std.IsMultiUnitSpanAt(t, pos)
}

// CodeUnitIndex returns the code-unit offset of the charIndex-th
// logical character of t, or -1 if charIndex is out of range.
func CodeUnitIndex(t Text, charIndex int) int {
	return std.CodeUnitIndex(t, charIndex)
}

// CharIndex returns the logical index of the character covering the
// given code-unit offset, or -1 if the offset is out of range.
func CharIndex(t Text, codeUnitIndex int) int {
	return std.CharIndex(t, codeUnitIndex)
}

// Length returns the number of logical characters in t.
func Length(t Text) int {
	return std.Length(t)
}

// Slice returns the logical characters of t in [start, end). See
// [Indexer.Slice].
func Slice(t Text, start, end int) Text {
	return std.Slice(t, start, end)
}

// Substr returns up to length logical characters of t starting at
// start. See [Indexer.Substr].
func Substr(t Text, start, length int) Text {
	return std.Substr(t, start, length)
}

// Substring returns the logical characters of t in [start, end) with
// clamped, order-normalized bounds. See [Indexer.Substring].
func Substring(t Text, start, end int) Text {
	return std.Substring(t, start, end)
}

// CharAt returns the charIndex-th logical character of t, or an empty
// Text if charIndex is out of range.
func CharAt(t Text, charIndex int) Text {
	return std.CharAt(t, charIndex)
}

// IndexOf returns the logical index of the first occurrence of needle
// at or after from, or -1. See [Indexer.IndexOf].
func IndexOf(t, needle Text, from int) int {
	return std.IndexOf(t, needle, from)
}

// LastIndexOf returns the logical index of the last occurrence of
// needle beginning at or before from, or -1. See [Indexer.LastIndexOf].
func LastIndexOf(t, needle Text, from int) int {
	return std.LastIndexOf(t, needle, from)
}

// PadStart prepends characters cycled from pad until t is target
// logical characters long. See [Indexer.PadStart].
func PadStart(t Text, target int, pad Text) Text {
	return std.PadStart(t, target, pad)
}

// PadEnd appends characters cycled from pad until t is target logical
// characters long. See [Indexer.PadEnd].
func PadEnd(t Text, target int, pad Text) Text {
	return std.PadEnd(t, target, pad)
}

// CodePoints returns the Unicode code points of t.
func CodePoints(t Text) []rune {
	return std.CodePoints(t)
}

// Width returns the monospace display width of t.
func Width(t Text) int {
	return std.Width(t)
}
