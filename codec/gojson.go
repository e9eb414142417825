package codec

import (
	"fmt"

	gojson "github.com/goccy/go-json"
	"github.com/hupe1980/hexstr"
)

// GoJSON is a JSON codec backed by github.com/goccy/go-json.
//
// The output is byte-identical to JSON.
type GoJSON struct{}

// Encode encodes the value as a JSON string.
func (GoJSON) Encode(h hexstr.HexString) ([]byte, error) { return gojson.Marshal(h.String()) }

// Decode decodes a JSON string.
func (GoJSON) Decode(data []byte) (hexstr.HexString, error) {
	var s *string
	if err := gojson.Unmarshal(data, &s); err != nil {
		return hexstr.HexString{}, fmt.Errorf("%w: %w", hexstr.ErrInvalidFormat, err)
	}

	return hexstr.ParsePtr(s)
}

// Name returns the unique name of the codec ("go-json").
func (GoJSON) Name() string { return "go-json" }

// Append encodes the value and appends it to dst.
func (c GoJSON) Append(dst []byte, h hexstr.HexString) ([]byte, error) {
	b, err := c.Encode(h)
	if err != nil {
		return nil, err
	}

	return append(dst, b...), nil
}
