package hexstr

import (
	"errors"
	"fmt"
)

var (
	// ErrNullArgument is returned when a required constructor input is absent.
	ErrNullArgument = errors.New("null argument")

	// ErrInvalidFormat is returned when text is not valid hexadecimal.
	//
	// The concrete error is either *ErrOddLength or *ErrInvalidChar; both
	// unwrap to ErrInvalidFormat.
	ErrInvalidFormat = errors.New("invalid hex format")
)

// ErrOddLength indicates hexadecimal text with an odd number of characters.
type ErrOddLength struct {
	Length int
}

func (e *ErrOddLength) Error() string {
	return fmt.Sprintf("%s: odd length %d", ErrInvalidFormat, e.Length)
}

func (e *ErrOddLength) Unwrap() error { return ErrInvalidFormat }

// ErrInvalidChar indicates a character outside 0-9, a-f and A-F.
//
// Offset is the byte offset of the first offending character.
type ErrInvalidChar struct {
	Offset int
	Char   rune
}

func (e *ErrInvalidChar) Error() string {
	return fmt.Sprintf("%s: invalid character %q at offset %d", ErrInvalidFormat, e.Char, e.Offset)
}

func (e *ErrInvalidChar) Unwrap() error { return ErrInvalidFormat }
