package hexstr

import (
	"errors"
	"strings"
	"testing"

	"github.com/hupe1980/hexstr/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		text  string
		bytes []byte
	}{
		{name: "empty", input: "", text: "", bytes: []byte{}},
		{name: "lowercase", input: "ab12", text: "ab12", bytes: []byte{0xab, 0x12}},
		{name: "uppercase", input: "AB12", text: "ab12", bytes: []byte{0xab, 0x12}},
		{name: "mixed case", input: "DeAdBeEf", text: "deadbeef", bytes: []byte{0xde, 0xad, 0xbe, 0xef}},
		{name: "zero padded", input: "00ff05", text: "00ff05", bytes: []byte{0x00, 0xff, 0x05}},
		{name: "all digits", input: "0123456789", text: "0123456789", bytes: []byte{0x01, 0x23, 0x45, 0x67, 0x89}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.text, h.String())
			assert.Equal(t, tt.bytes, h.Bytes())
			assert.Equal(t, len(tt.bytes), h.Len())
		})
	}
}

func TestParseInvalid(t *testing.T) {
	t.Run("odd length", func(t *testing.T) {
		_, err := Parse("abc")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidFormat)

		var ol *ErrOddLength
		require.ErrorAs(t, err, &ol)
		assert.Equal(t, 3, ol.Length)
	})

	t.Run("invalid character", func(t *testing.T) {
		_, err := Parse("zz11")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidFormat)

		var ic *ErrInvalidChar
		require.ErrorAs(t, err, &ic)
		assert.Equal(t, 0, ic.Offset)
		assert.Equal(t, 'z', ic.Char)
	})

	t.Run("first violation wins", func(t *testing.T) {
		_, err := Parse("12g4x6")

		var ic *ErrInvalidChar
		require.ErrorAs(t, err, &ic)
		assert.Equal(t, 2, ic.Offset)
		assert.Equal(t, 'g', ic.Char)
	})

	t.Run("length checked before characters", func(t *testing.T) {
		_, err := Parse("zzz")

		var ol *ErrOddLength
		assert.ErrorAs(t, err, &ol)
	})

	t.Run("non ascii", func(t *testing.T) {
		_, err := Parse("aé") // 'é' is two bytes, length 3

		assert.ErrorIs(t, err, ErrInvalidFormat)

		_, err = Parse("abé00")

		var ic *ErrInvalidChar
		require.ErrorAs(t, err, &ic)
		assert.Equal(t, 2, ic.Offset)
		assert.Equal(t, 'é', ic.Char)
	})

	t.Run("prefix and separators", func(t *testing.T) {
		for _, s := range []string{"0x12", "12 34", "12-34", " 1234", "12\n"} {
			_, err := Parse(s)
			assert.ErrorIs(t, err, ErrInvalidFormat, s)
		}
	})

	t.Run("not a null argument", func(t *testing.T) {
		_, err := Parse("abc")
		assert.False(t, errors.Is(err, ErrNullArgument))
	})
}

func TestNullArgument(t *testing.T) {
	t.Run("nil text", func(t *testing.T) {
		_, err := ParsePtr(nil)
		assert.ErrorIs(t, err, ErrNullArgument)
		assert.False(t, errors.Is(err, ErrInvalidFormat))
	})

	t.Run("nil bytes", func(t *testing.T) {
		_, err := FromBytes(nil)
		assert.ErrorIs(t, err, ErrNullArgument)
	})

	t.Run("non-nil text pointer", func(t *testing.T) {
		s := "CAFE"
		h, err := ParsePtr(&s)
		require.NoError(t, err)
		assert.Equal(t, "cafe", h.String())
		assert.Equal(t, "CAFE", s)
	})
}

func TestFromBytes(t *testing.T) {
	t.Run("zero padded lowercase", func(t *testing.T) {
		h, err := FromBytes([]byte{0x05, 0xab, 0x00, 0xff})
		require.NoError(t, err)
		assert.Equal(t, "05ab00ff", h.String())
	})

	t.Run("empty", func(t *testing.T) {
		h, err := FromBytes([]byte{})
		require.NoError(t, err)
		assert.Equal(t, "", h.String())
		assert.Equal(t, []byte{}, h.Bytes())
		assert.True(t, h.IsEmpty())
	})

	t.Run("input is copied", func(t *testing.T) {
		in := []byte{0x01, 0x02}
		h, err := FromBytes(in)
		require.NoError(t, err)

		in[0] = 0xff

		assert.Equal(t, []byte{0x01, 0x02}, h.Bytes())
		assert.Equal(t, "0102", h.String())
	})
}

func TestBytesCopyIndependence(t *testing.T) {
	h := MustParse("ab12")

	b1 := h.Bytes()
	b1[0] = 0x00
	b1 = append(b1, 0x99)

	b2 := h.Bytes()
	assert.Equal(t, []byte{0xab, 0x12}, b2)
	assert.NotEqual(t, b1, b2)

	b2[1] = 0x00
	assert.Equal(t, []byte{0xab, 0x12}, h.Bytes())
}

func TestCaseNormalization(t *testing.T) {
	upper := MustParse("AB12")
	lower := MustParse("ab12")

	assert.Equal(t, "ab12", upper.String())
	assert.Equal(t, upper.String(), lower.String())
	assert.Equal(t, []byte{0xAB, 0x12}, upper.Bytes())
	assert.Equal(t, upper.Bytes(), lower.Bytes())
	assert.True(t, upper.Equal(lower))
}

func TestZeroValue(t *testing.T) {
	var h HexString

	assert.Equal(t, "", h.String())
	assert.Equal(t, []byte{}, h.Bytes())
	assert.True(t, h.IsEmpty())
	assert.True(t, h.Equal(MustFromBytes([]byte{})))
	assert.True(t, h.Equal(MustParse("")))
}

func TestMust(t *testing.T) {
	assert.Panics(t, func() { MustParse("abc") })
	assert.Panics(t, func() { MustFromBytes(nil) })
	assert.NotPanics(t, func() { MustParse("00") })
	assert.NotPanics(t, func() { MustFromBytes([]byte{0}) })
}

func TestParseAllocs(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		if _, err := Parse("deadbeef"); err != nil {
			t.Fatal(err)
		}
	})

	// Only the decoded byte slice is allocated for canonical input.
	assert.LessOrEqual(t, allocs, 1.0)
}

func TestRoundTrip(t *testing.T) {
	rng := util.NewRNG(4711)

	t.Run("bytes", func(t *testing.T) {
		for _, b := range rng.GenerateRandomBytes(256, 64) {
			h, err := FromBytes(b)
			require.NoError(t, err)
			assert.Equal(t, b, h.Bytes())
			assert.Equal(t, 2*len(b), len(h.String()))

			back, err := Parse(h.String())
			require.NoError(t, err)
			assert.True(t, h.Equal(back))
		}
	})

	t.Run("text", func(t *testing.T) {
		for _, s := range rng.GenerateRandomHex(256, 64) {
			h, err := Parse(s)
			require.NoError(t, err)
			assert.Equal(t, strings.ToLower(s), h.String())

			canonical, err := Parse(h.String())
			require.NoError(t, err)
			assert.Equal(t, h.String(), canonical.String())

			fromBytes, err := FromBytes(h.Bytes())
			require.NoError(t, err)
			assert.Equal(t, h.String(), fromBytes.String())
		}
	})
}

func BenchmarkParse(b *testing.B) {
	s := MustFromBytes(util.NewRNG(1).GenerateRandomBytes(1, 4096)[0]).String()

	b.ReportAllocs()
	b.SetBytes(int64(len(s)))

	for b.Loop() {
		if _, err := Parse(s); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFromBytes(b *testing.B) {
	data := make([]byte, 4096)

	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	for b.Loop() {
		if _, err := FromBytes(data); err != nil {
			b.Fatal(err)
		}
	}
}
