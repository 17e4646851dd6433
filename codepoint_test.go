package charseq

import "testing"

func TestCodePoints(t *testing.T) {
	tests := []struct {
		name  string
		input Text
		want  []rune
	}{
		{"empty", nil, nil},
		{"ascii", FromString("ab"), []rune{'a', 'b'}},
		{"pair decodes", FromString("a🙂b"), []rune{'a', 0x1f642, 'b'}},
		{"lone surrogate passes through", Text{'a', 0xd800, 'b'}, []rune{'a', 0xd800, 'b'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CodePoints(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("CodePoints = %U, want %U", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("CodePoints[%d] = %U, want %U", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// TestCodePointsVisualFlag checks that a merged flag character still
// yields one code point per regional indicator.
func TestCodePointsVisualFlag(t *testing.T) {
	got := New(Visual).CodePoints(FromString("🇩🇪"))
	want := []rune{0x1f1e9, 0x1f1ea}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("CodePoints = %U, want %U", got, want)
	}
}

func TestFromCodePoints(t *testing.T) {
	tests := []struct {
		name  string
		input []rune
		want  Text
	}{
		{"bmp", []rune{'a', 0x4e16}, Text{'a', 0x4e16}},
		{"astral splits", []rune{0x1f642}, Text{0xd83d, 0xde42}},
		{"negative becomes zero", []rune{-7}, Text{0}},
		{"beyond unicode becomes replacement", []rune{0x110000}, Text{0xfffd}},
		{"surrogate value passes through", []rune{0xd800}, Text{0xd800}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromCodePoints(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("FromCodePoints = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("unit %d = %#x, want %#x", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// TestCodePointRoundTrip checks FromCodePoints(CodePoints(t)) == t for
// text with only valid paired surrogates.
func TestCodePointRoundTrip(t *testing.T) {
	for _, input := range []string{"", "abc", "a🙂b", "🇩🇪x", "🙂🙂", "héllo 世界"} {
		text := FromString(input)
		got := FromCodePoints(CodePoints(text))
		if len(got) != len(text) {
			t.Errorf("round trip of %q has %d units, want %d", input, len(got), len(text))
			continue
		}
		for i := range got {
			if got[i] != text[i] {
				t.Errorf("round trip of %q differs at unit %d", input, i)
				break
			}
		}
	}
}
