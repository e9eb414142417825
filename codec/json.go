package codec

import (
	"encoding/json"
	"fmt"

	"github.com/hupe1980/hexstr"
)

// JSON is the standard-library JSON codec.
//
// Values are encoded as a JSON string. A JSON null decodes to
// hexstr.ErrNullArgument.
type JSON struct{}

// Encode encodes the value as a JSON string.
func (JSON) Encode(h hexstr.HexString) ([]byte, error) { return json.Marshal(h.String()) }

// Decode decodes a JSON string.
func (JSON) Decode(data []byte) (hexstr.HexString, error) {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return hexstr.HexString{}, fmt.Errorf("%w: %w", hexstr.ErrInvalidFormat, err)
	}

	return hexstr.ParsePtr(s)
}

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the codec used by library callers that pass a nil Codec, such
// as MustEncode. It frames values for embedding in JSON documents. The hexstr
// tool prints unframed Text by default instead.
var Default Codec = GoJSON{}
