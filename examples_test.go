package charseq_test

import (
	"fmt"

	"github.com/scalecode-solutions/charseq"
)

func ExampleLength() {
	t := charseq.FromString("a🙂b")
	fmt.Println(t.UnitLen(), charseq.Length(t))
	// Output: 4 3
}

func ExampleCharAt() {
	t := charseq.FromString("a🙂b")
	fmt.Println(charseq.CharAt(t, 1))
	// Output: 🙂
}

func ExampleSlice() {
	t := charseq.FromString("a🙂b")
	fmt.Println(charseq.Slice(t, 1, charseq.End))
	// Output: 🙂b
}

func ExampleSubstr() {
	t := charseq.FromString("a🙂b")
	fmt.Println(charseq.Substr(t, -1, 1))
	// Output: b
}

func ExampleIndexOf() {
	t := charseq.FromString("a🙂b")
	fmt.Println(charseq.IndexOf(t, charseq.FromString("b"), 0))
	// Output: 2
}

func ExamplePadStart() {
	t := charseq.FromString("x")
	fmt.Println(charseq.PadStart(t, 3, charseq.FromString("ab")))
	// Output: abx
}

func ExampleCodeUnitIndex() {
	t := charseq.FromString("a🙂b")
	fmt.Println(charseq.CodeUnitIndex(t, 2))
	fmt.Println(charseq.CodeUnitIndex(t, 3))
	// Output: 3
	// -1
}

func ExampleCodePoints() {
	t := charseq.FromString("a🙂")
	for _, p := range charseq.CodePoints(t) {
		fmt.Printf("%U\n", p)
	}
	// Output: U+0061
	// U+1F642
}

func ExampleNew_visual() {
	t := charseq.FromString("🇩🇪x")
	ix := charseq.New(charseq.Visual)
	fmt.Println(charseq.Length(t), ix.Length(t))
	// Output: 3 2
}

func ExampleNew_graphemes() {
	t := charseq.FromString("🇩🇪🏳️‍🌈!")
	ix := charseq.New(charseq.Graphemes)
	fmt.Println(ix.Length(t))
	fmt.Println(ix.CharAt(t, 1))
	// Output: 3
	// 🏳️‍🌈
}

func ExampleWidth() {
	fmt.Println(charseq.Width(charseq.FromString("Hello, 世界")))
	// Output: 11
}
