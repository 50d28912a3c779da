package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Reading is a sensor value the provider may send either as a JSON number or
// as a preformatted string.
type Reading struct {
	Text    string
	Number  float64
	Numeric bool
}

func NumericReading(v float64) Reading {
	return Reading{Number: v, Numeric: true, Text: strconv.FormatFloat(v, 'f', -1, 64)}
}

func TextReading(s string) Reading {
	return Reading{Text: s}
}

func (r Reading) IsZero() bool {
	return !r.Numeric && r.Text == ""
}

func (r Reading) MarshalJSON() ([]byte, error) {
	if r.Numeric {
		return json.Marshal(r.Number)
	}
	return json.Marshal(r.Text)
}

func (r *Reading) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*r = Reading{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = TextReading(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*r = NumericReading(f)
	return nil
}

// Format renders numeric readings with the given precision and passes text
// readings through untouched.
func (r Reading) Format(precision int) string {
	if r.Numeric {
		return strconv.FormatFloat(r.Number, 'f', precision, 64)
	}
	return r.Text
}
