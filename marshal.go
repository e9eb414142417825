package hexstr

import (
	"encoding/json"
	"fmt"
)

// MarshalText implements encoding.TextMarshaler.
func (h HexString) MarshalText() ([]byte, error) {
	return []byte(h.text), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *HexString) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}

	*h = v

	return nil
}

// MarshalJSON encodes h as a JSON string holding the canonical text.
func (h HexString) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.text)
}

// UnmarshalJSON decodes a JSON string. A JSON null yields ErrNullArgument.
func (h *HexString) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}

	v, err := ParsePtr(s)
	if err != nil {
		return err
	}

	*h = v

	return nil
}
