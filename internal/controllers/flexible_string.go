package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// FlexibleString is a request field holding the text a menu user would type.
// Clients may send "2.5" or 2.5 for hours, and "1,3" or [1,3] for unit lists.
type FlexibleString string

func (fs *FlexibleString) UnmarshalJSON(data []byte) error {
	if fs == nil {
		return fmt.Errorf("FlexibleString: nil receiver")
	}
	raw := bytes.TrimSpace(data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return fmt.Errorf("FlexibleString: %w", err)
		}
		*fs = FlexibleString(strings.TrimSpace(s))
	case '[':
		var units []json.Number
		if err := json.Unmarshal(raw, &units); err != nil {
			return fmt.Errorf("FlexibleString: unit list must hold numbers: %w", err)
		}
		parts := make([]string, len(units))
		for i, u := range units {
			parts[i] = u.String()
		}
		*fs = FlexibleString(strings.Join(parts, ","))
	default:
		var num json.Number
		if err := json.Unmarshal(raw, &num); err != nil {
			return fmt.Errorf("FlexibleString: expected string, number or number list, got %s", string(data))
		}
		*fs = FlexibleString(num.String())
	}
	return nil
}

func (fs FlexibleString) String() string {
	return string(fs)
}
