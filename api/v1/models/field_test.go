package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestField_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
		want Field
	}{
		{"string", `{"duration":"30"}`, NewField("30")},
		{"number", `{"duration":30}`, NewField("30")},
		{"float", `{"duration":1.5e1}`, NewField("1.5e1")},
		{"empty string", `{"duration":""}`, NewField("")},
		{"null", `{"duration":null}`, Field{}},
		{"absent", `{}`, Field{}},
		{"true", `{"duration":true}`, NewField("true")},
		{"false", `{"duration":false}`, Field{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in ExerciseInput
			require.NoError(t, json.Unmarshal([]byte(tt.body), &in))
			assert.Equal(t, tt.want, in.Duration)
		})
	}
}

func TestField_UnmarshalJSON_BadString(t *testing.T) {
	var f Field
	err := f.UnmarshalJSON([]byte(`"unterminated`))
	assert.Error(t, err)
}
