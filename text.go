package charseq

import (
	"encoding/binary"
	"unicode/utf16"
)

// Text is a sequence of UTF-16 code units. It is the unit of storage
// for every operation in this package.
//
// A Text is treated as immutable: no function in this package writes
// through one, and results may share backing storage with their
// inputs. Callers who mutate a Text after handing it out break that
// contract for everyone holding a view of it.
type Text []uint16

// FromString returns the UTF-16 encoding of s.
func FromString(s string) Text {
	return utf16.Encode([]rune(s))
}

// FromCodeUnits returns a Text holding a copy of the given code units.
// The units are taken as-is. Lone surrogates are preserved.
func FromCodeUnits(units []uint16) Text {
	t := make(Text, len(units))
	copy(t, units)
	return t
}

// String returns t decoded to a Go string. Lone surrogate code units
// decode to U+FFFD.
func (t Text) String() string {
	return string(utf16.Decode(t))
}

// CodeUnits returns a copy of t's code units.
func (t Text) CodeUnits() []uint16 {
	units := make([]uint16, len(t))
	copy(units, t)
	return units
}

// UnitLen returns the number of code units in t. Compare [Length],
// which counts logical characters.
func (t Text) UnitLen() int {
	return len(t)
}

// Bytes returns t as two big-endian bytes per code unit. This is a
// fixed-width pairing for round-tripping through [FromBytes], not a
// UTF-8 or UTF-16LE transform.
func (t Text) Bytes() []byte {
	b := make([]byte, 2*len(t))
	for i, u := range t {
		binary.BigEndian.PutUint16(b[2*i:], u)
	}
	return b
}

// FromBytes is the inverse of [Text.Bytes]: every two big-endian bytes
// become one code unit. A trailing odd byte is dropped.
func FromBytes(b []byte) Text {
	t := make(Text, 0, len(b)/2)
	for i := 0; i+1 < len(b); i += 2 {
		t = append(t, binary.BigEndian.Uint16(b[i:]))
	}
	return t
}
