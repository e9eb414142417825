// Package codec renders HexString values in named wire formats.
//
// Every codec writes the canonical lowercase text; they differ only in the
// framing around it. Tools select a codec by its stable name, so renaming one
// is a breaking change for configuration files and scripts.
package codec

import (
	"fmt"
	"sort"

	"github.com/hupe1980/hexstr"
)

// Codec encodes/decodes HexString values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Encode(h hexstr.HexString) ([]byte, error)
	Decode(data []byte) (hexstr.HexString, error)
	Name() string
}

var registry = map[string]Codec{
	Text{}.Name():   Text{},
	JSON{}.Name():   JSON{},
	GoJSON{}.Name(): GoJSON{},
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	c, ok := registry[name]
	return c, ok
}

// Names returns the names of all built-in codecs in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// MustEncode is a helper for internal tests/benchmarks.
func MustEncode(c Codec, h hexstr.HexString) []byte {
	if c == nil {
		c = Default
	}

	b, err := c.Encode(h)
	if err != nil {
		panic(fmt.Errorf("codec %s encode failed: %w", c.Name(), err))
	}

	return b
}
