// Package hexstr provides HexString, an immutable value that holds a byte
// sequence together with its canonical lowercase hexadecimal text.
//
// # Construction
//
// A HexString is built from either representation; the other one is derived
// immediately and both are cached:
//
//	h, err := hexstr.Parse("DEADbeef")   // text "deadbeef", bytes de ad be ef
//	h, err := hexstr.FromBytes([]byte{5}) // text "05"
//
// Parse accepts even-length text over 0-9, a-f and A-F. Anything else fails
// with an error matching ErrInvalidFormat:
//
//	_, err := hexstr.Parse("abc")
//	errors.Is(err, hexstr.ErrInvalidFormat) // true
//
//	var ic *hexstr.ErrInvalidChar
//	_, err = hexstr.Parse("zz11")
//	errors.As(err, &ic) // true, ic.Offset == 0
//
// Absent input (a nil text pointer passed to ParsePtr, a nil slice passed to
// FromBytes, a JSON null) fails with ErrNullArgument.
//
// # Immutability
//
// FromBytes copies its input and Bytes returns a fresh copy on every call, so
// a HexString can be shared between goroutines without synchronization.
//
// # Serialization
//
// HexString implements encoding.TextMarshaler, encoding.TextUnmarshaler,
// json.Marshaler and json.Unmarshaler using the canonical text. The codec
// subpackage offers named renderers for command-line and storage use.
package hexstr
