/*
Package charseq implements logical-character indexing over UTF-16
encoded text.

A UTF-16 sequence stores one user-visible character in one code unit
for the Basic Multilingual Plane, but in two code units (a surrogate
pair) for everything above it, and flag emoji take two whole code
points. Indexing such text by raw code unit silently splits characters:

	t := charseq.FromString("a🙂b")
	t.UnitLen()       // 4 code units
	charseq.Length(t) // 3 characters, which is what users see

This package addresses text by logical-character index instead, so
slicing, searching, and padding never land inside a multi-unit span.

# Overview

Using this package, you can:
  - Convert between logical-character indices and code-unit indices
  - Slice, extract, and search text by visible position
  - Pad text with multi-unit pad characters without corrupting them
  - Round-trip text through code points or big-endian byte pairs
  - Calculate display width for monospace fonts

# Getting Started

For simple use cases the package-level functions operate with the
default [Pairs] classifier:
  - [Length] - Count logical characters
  - [CharAt] - Extract one logical character
  - [Slice], [Substr], [Substring] - Extract ranges
  - [IndexOf], [LastIndexOf] - Search by logical position
  - [PadStart], [PadEnd] - Pad to a logical length

For index mapping:
  - [CodeUnitIndex] - Logical index to code-unit offset
  - [CharIndex] - Code-unit offset to logical index

# Texts

[Text] is a sequence of 16-bit code units, built with [FromString],
[FromCodeUnits], [FromCodePoints], or [FromBytes]. A Text is never
modified in place. Every operation returns a new Text (possibly sharing
backing storage with its input), so Text values can be shared freely
between goroutines without coordination.

# Classifiers

A [Classifier] decides which code-unit spans count as one logical
character. Three are provided:
  - [Pairs] - surrogate pairs only (the default)
  - [Visual] - also merges two adjacent regional-indicator pairs, so a
    flag like 🇩🇪 counts as one character
  - [Graphemes] - full Unicode grapheme clusters, so combining marks
    and ZWJ emoji sequences count as one character

The classifier is chosen once, by constructing an [Indexer] with [New].
All Indexer methods then agree on the same notion of "character".

# Errors

Out-of-range indices are not errors. Every index-returning operation
reports "beyond the end" with a -1 result, extraction operations return
an empty Text, and malformed input degrades instead of faulting: a lone
surrogate code unit is treated as a single one-unit character.

# Performance

Text containing no multi-unit spans is detected with one O(n) probe and
then mapped with O(1) index arithmetic. Otherwise mapping scans spans
up to the target index, so operations cost O(index) in the worst case.
*/
package charseq
