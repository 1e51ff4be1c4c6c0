package request

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strconv"
)

// Number keeps the literal text of a JSON number or string, so 15 and "15" both
// arrive and a rule can still report "1.5" or "abc" by field name.
type Number string

func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = Number(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return &json.UnmarshalTypeError{Value: string(b), Type: reflect.TypeOf(*n)}
	}
	*n = Number(num)
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseFloat(string(n), 64); err == nil && json.Valid([]byte(n)) {
		return []byte(n), nil
	}
	return json.Marshal(string(n))
}
