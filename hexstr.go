package hexstr

import (
	"encoding/hex"
	"fmt"
	"unicode/utf8"
)

// HexString is an immutable value holding both the canonical lowercase
// hexadecimal text and the bytes it represents.
//
// The zero value is the empty HexString.
type HexString struct {
	text  string
	bytes []byte
}

// Parse creates a HexString from hexadecimal text.
//
// The text must have even length and consist of the characters 0-9, a-f and
// A-F only. Letters are stored lowercased.
func Parse(text string) (HexString, error) {
	return parse(text)
}

// ParsePtr is like Parse but accepts an optional text.
// A nil text yields ErrNullArgument.
func ParsePtr(text *string) (HexString, error) {
	if text == nil {
		return HexString{}, fmt.Errorf("%w: text", ErrNullArgument)
	}

	return parse(*text)
}

func parse(s string) (HexString, error) {
	if err := validate(s); err != nil {
		return HexString{}, err
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		// unreachable after validate
		return HexString{}, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}

	return HexString{
		text:  toLower(s),
		bytes: b,
	}, nil
}

// FromBytes creates a HexString from a byte slice.
//
// The slice is copied. A nil slice yields ErrNullArgument, an empty non-nil
// slice yields the empty HexString.
func FromBytes(b []byte) (HexString, error) {
	if b == nil {
		return HexString{}, fmt.Errorf("%w: bytes", ErrNullArgument)
	}

	cp := make([]byte, len(b))
	copy(cp, b)

	return HexString{
		text:  hex.EncodeToString(cp),
		bytes: cp,
	}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(text string) HexString {
	h, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return h
}

// MustFromBytes is like FromBytes but panics on error.
func MustFromBytes(b []byte) HexString {
	h, err := FromBytes(b)
	if err != nil {
		panic(err)
	}

	return h
}

// Bytes returns a copy of the bytes. Callers may modify the result.
func (h HexString) Bytes() []byte {
	cp := make([]byte, len(h.bytes))
	copy(cp, h.bytes)

	return cp
}

// String returns the canonical lowercase hexadecimal text.
func (h HexString) String() string { return h.text }

// Len returns the number of bytes.
func (h HexString) Len() int { return len(h.bytes) }

// IsEmpty reports whether h holds no bytes.
func (h HexString) IsEmpty() bool { return len(h.bytes) == 0 }

// Equal reports whether h and other represent the same bytes.
func (h HexString) Equal(other HexString) bool { return h.text == other.text }

// validate checks length first, then characters left to right.
func validate(s string) error {
	if len(s)%2 != 0 {
		return &ErrOddLength{Length: len(s)}
	}

	for i := 0; i < len(s); i++ {
		if !isHexChar(s[i]) {
			r, _ := utf8.DecodeRuneInString(s[i:])
			return &ErrInvalidChar{Offset: i, Char: r}
		}
	}

	return nil
}

func isHexChar(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	default:
		return false
	}
}

// toLower lowercases validated hex text without allocating when it is
// already canonical.
func toLower(s string) string {
	upper := false

	for i := 0; i < len(s); i++ {
		if 'A' <= s[i] && s[i] <= 'F' {
			upper = true
			break
		}
	}

	if !upper {
		return s
	}

	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'F' {
			b[i] = c + ('a' - 'A')
		}
	}

	return string(b)
}
