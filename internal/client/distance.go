package client

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// Distance is the distance_km value exactly as the API sent it. The API may
// answer with a JSON number or a pre-formatted string; both are kept verbatim
// for display and never rounded.
type Distance string

func (d *Distance) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		return fmt.Errorf("distance_km is null")
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("distance_km: %w", err)
		}
		*d = Distance(s)
	case data[0] == '-' || (data[0] >= '0' && data[0] <= '9'):
		*d = Distance(data)
	default:
		return fmt.Errorf("distance_km has unsupported type: %s", data)
	}

	return nil
}

func (d Distance) String() string { return string(d) }
