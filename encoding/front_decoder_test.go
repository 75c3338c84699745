package encoding

import (
	"fmt"
	"strings"
	"testing"

	"github.com/arloliu/frontcode/errs"
	"github.com/stretchr/testify/require"
)

func benchmarkWords(n int) []string {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("metric.host%03d.cpu.core%02d", i/64, i%64)
	}

	return words
}

func TestFrontDecoder_Next(t *testing.T) {
	decoder := NewFrontDecoder("0 apple\n5 sauce\n4 y\n")

	line, ok := decoder.Next()
	require.True(t, ok)
	require.Equal(t, "apple", line)
	require.Equal(t, Record{0, "apple"}, decoder.Record())
	require.Equal(t, 1, decoder.Index())

	line, ok = decoder.Next()
	require.True(t, ok)
	require.Equal(t, "applesauce", line)
	require.Equal(t, Record{5, "sauce"}, decoder.Record())

	line, ok = decoder.Next()
	require.True(t, ok)
	require.Equal(t, "apply", line)

	_, ok = decoder.Next()
	require.False(t, ok)
	require.NoError(t, decoder.Err())
	require.Equal(t, 3, decoder.Index())
}

func TestDecodeLines(t *testing.T) {
	tests := []struct {
		name string
		data string
		want []string
	}{
		{"empty", "", nil},
		{"single record", "0 apple\n", []string{"apple"}},
		{"unterminated last record", "0 apple\n5 sauce", []string{"apple", "applesauce"}},
		{"no shared prefix", "0 apple\n0 banana\n", []string{"apple", "banana"}},
		{"empty lines", "0 \n0 a\n0 \n", []string{"", "a", ""}},
		{"identical lines", "0 kiwi\n4 \n", []string{"kiwi", "kiwi"}},
		{"suffix with spaces", "0 ice cream\n4 tea\n", []string{"ice cream", "ice tea"}},
		{
			// Each prefix comes from the line decoded just before, not from an earlier
			// cached prefix: "carton" must be built from "cart", and "do" from "dog".
			"prefix from previous decoded line",
			"0 car\n3 t\n4 on\n0 dog\n2 \n1 ot\n",
			[]string{"car", "cart", "carton", "dog", "do", "dot"},
		},
		{
			"nonzero prefixes of different lengths",
			"0 abcdef\n4 xy\n2 z\n3 w\n",
			[]string{"abcdef", "abcdxy", "abz", "abzw"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeLines(tt.data)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeLines_Errors(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		cause error
		index int
	}{
		{"missing separator", "0 apple\n5sauce\n", errs.ErrMissingSeparator, 1},
		{"blank record", "0 apple\n\n5 sauce\n", errs.ErrMissingSeparator, 1},
		{"lone newline", "\n", errs.ErrMissingSeparator, 0},
		{"non-numeric prefix", "x apple\n", errs.ErrInvalidPrefixLength, 0},
		{"negative prefix", "0 apple\n-1 x\n", errs.ErrInvalidPrefixLength, 1},
		{"first record with prefix", "3 apple\n", errs.ErrPrefixOutOfRange, 0},
		{"prefix longer than previous line", "0 app\n4 le\n", errs.ErrPrefixOutOfRange, 1},
		{"out of range after shrink", "0 abcdef\n1 x\n3 y\n", errs.ErrPrefixOutOfRange, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeLines(tt.data)
			require.Nil(t, got)
			require.ErrorIs(t, err, errs.ErrMalformedRecord)
			require.ErrorIs(t, err, tt.cause)
			require.Contains(t, err.Error(), fmt.Sprintf("record %d", tt.index))
		})
	}
}

func TestFrontDecoder_StopsAfterError(t *testing.T) {
	decoder := NewFrontDecoder("0 apple\nbad\n0 pear\n")

	line, ok := decoder.Next()
	require.True(t, ok)
	require.Equal(t, "apple", line)

	_, ok = decoder.Next()
	require.False(t, ok)
	require.Error(t, decoder.Err())

	_, ok = decoder.Next()
	require.False(t, ok, "decoder stays failed")
	require.Equal(t, 1, decoder.Index())
}

func TestFrontDecoder_All(t *testing.T) {
	decoder := NewFrontDecoder("0 apple\n5 sauce\n0 banana\n")

	var indexes []int
	var lines []string
	for i, line := range decoder.All() {
		indexes = append(indexes, i)
		lines = append(lines, line)
	}

	require.NoError(t, decoder.Err())
	require.Equal(t, []int{0, 1, 2}, indexes)
	require.Equal(t, []string{"apple", "applesauce", "banana"}, lines)

	t.Run("early break", func(t *testing.T) {
		decoder := NewFrontDecoder("0 apple\n5 sauce\n0 banana\n")
		for i := range decoder.All() {
			if i == 1 {
				break
			}
		}

		line, ok := decoder.Next()
		require.True(t, ok)
		require.Equal(t, "banana", line)
	})

	t.Run("error stops iteration", func(t *testing.T) {
		decoder := NewFrontDecoder("0 apple\n9 x\n0 pear\n")
		count := 0
		for range decoder.All() {
			count++
		}
		require.Equal(t, 1, count)
		require.ErrorIs(t, decoder.Err(), errs.ErrPrefixOutOfRange)
	})
}

func TestRoundTrip(t *testing.T) {
	corpora := [][]string{
		{"apple"},
		{"apple", "applesauce", "apply", "banana", "band", "bandana"},
		{"", "", "a", ""},
		{"New York", "New York City", "Newark", "Newcastle upon Tyne"},
		{"zeta", "alpha", "alphabet", "z"},
		{"über", "überall", "übung", "日本", "日本語"},
		benchmarkWords(500),
	}

	for _, aligned := range []bool{false, true} {
		for i, lines := range corpora {
			t.Run(fmt.Sprintf("aligned=%v/%d", aligned, i), func(t *testing.T) {
				encoder := NewFrontEncoder(WithRuneAlignedPrefixes(aligned))
				defer encoder.Reset()
				encoder.WriteSlice(lines)

				records := BuildRecords(lines, aligned)
				decoder := NewFrontDecoder(encoder.String())
				for k, line := range decoder.All() {
					require.Equal(t, lines[k], line)
					require.Equal(t, records[k], decoder.Record())
					require.Equal(t, records[k].Len(), len(line))
				}
				require.NoError(t, decoder.Err())
				require.Equal(t, len(lines), decoder.Index())
			})
		}
	}
}

func TestRoundTrip_SplitAndJoin(t *testing.T) {
	corpus := strings.Join(benchmarkWords(200), "\n") + "\n"

	encoder := NewFrontEncoder()
	defer encoder.Reset()
	encoder.WriteSlice(SplitLines(corpus))

	lines, err := DecodeLines(encoder.String())
	require.NoError(t, err)
	require.Equal(t, corpus, JoinLines(lines))
	require.Less(t, encoder.Size(), len(corpus))
}

func BenchmarkDecodeLines(b *testing.B) {
	encoder := NewFrontEncoder()
	encoder.WriteSlice(benchmarkWords(10000))
	data := encoder.String()
	encoder.Reset()

	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	for b.Loop() {
		if _, err := DecodeLines(data); err != nil {
			b.Fatal(err)
		}
	}
}
