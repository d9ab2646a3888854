package form

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Number is a raw numeric form input. It accepts a JSON number, a JSON
// string or null, and keeps the text so parsing can stay lenient.
type Number string

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Number(strings.TrimSpace(s))
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*n = Number(num.String())
	return nil
}

func (n Number) String() string {
	return string(n)
}
