package codec

import (
	"bytes"

	"github.com/hupe1980/hexstr"
)

// Text is the raw canonical text without any framing.
//
// Decode ignores leading and trailing ASCII whitespace so that output of
// tools like `echo` or `xxd -p` on a single line can be fed back in.
type Text struct{}

// Encode returns the canonical text.
func (Text) Encode(h hexstr.HexString) ([]byte, error) { return h.MarshalText() }

// Decode parses the trimmed data as hexadecimal text.
func (Text) Decode(data []byte) (hexstr.HexString, error) {
	return hexstr.Parse(string(bytes.TrimSpace(data)))
}

// Name returns the unique name of the codec ("text").
func (Text) Name() string { return "text" }
