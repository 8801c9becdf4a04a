package models

import (
	"bytes"
	"encoding/json"
)

// Field is a loosely typed input value. Clients send the same field as a
// JSON string, a JSON number or a form value, and the validator needs to
// tell "absent" apart from "present but empty".
type Field struct {
	Set   bool
	Value string
}

func NewField(v string) Field {
	return Field{Set: true, Value: v}
}

// UnmarshalJSON keeps the raw text of non-string values so that 30 and "30"
// are treated alike. JSON null and false count as absent.
func (f *Field) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) || bytes.Equal(data, []byte("false")) {
		*f = Field{}
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = NewField(s)
		return nil
	}

	*f = NewField(string(data))
	return nil
}
