package prefix

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestCommonLength(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"both empty", "", "", 0},
		{"first empty", "", "apple", 0},
		{"second empty", "apple", "", 0},
		{"equal", "apple", "apple", 5},
		{"a is prefix of b", "apple", "applesauce", 5},
		{"b is prefix of a", "applesauce", "apple", 5},
		{"no shared prefix", "apple", "banana", 0},
		{"partial", "apply", "apple", 4},
		{"first byte differs", "xyz", "ayz", 0},
		{"case sensitive", "Apple", "apple", 0},
		{"spaces", "ice cream", "ice tea", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, CommonLength(tt.a, tt.b))
		})
	}
}

func TestCommonLength_Properties(t *testing.T) {
	words := []string{"", "a", "ab", "abc", "abd", "b", "banana", "band", "bandana", "日本", "日本語"}

	for _, a := range words {
		require.Equal(t, len(a), CommonLength(a, a), "reflexive for %q", a)
		require.Equal(t, 0, CommonLength("", a), "empty prefix for %q", a)

		for _, b := range words {
			n := CommonLength(a, b)
			require.Equal(t, n, CommonLength(b, a), "symmetric for %q, %q", a, b)
			require.GreaterOrEqual(t, n, 0)
			require.LessOrEqual(t, n, min(len(a), len(b)))
			require.Equal(t, a[:n], b[:n])

			isPrefix := len(a) <= len(b) && b[:len(a)] == a || len(b) <= len(a) && a[:len(b)] == b
			require.Equal(t, isPrefix, n == min(len(a), len(b)), "prefix iff min for %q, %q", a, b)
		}
	}
}

func TestCommonRuneLength(t *testing.T) {
	// "é" is 0xC3 0xA9 and "è" is 0xC3 0xA8: they share one byte.
	require.Equal(t, 3, CommonLength("caé", "caè"))
	require.Equal(t, 2, CommonRuneLength("caé", "caè"))
	require.True(t, utf8.ValidString("caè"[CommonRuneLength("caé", "caè"):]))

	require.Equal(t, len("日本"), CommonRuneLength("日本", "日本語"))
	require.Equal(t, 5, CommonRuneLength("apple", "applesauce"))
	require.Equal(t, 0, CommonRuneLength("", "日本"))
	require.Equal(t, 0, CommonRuneLength("é", "è"))
}

func BenchmarkCommonLength(b *testing.B) {
	x := "internationalization"
	y := "internationalizations"

	for b.Loop() {
		_ = CommonLength(x, y)
	}
}
