package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidField(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "valid body", body: `{"location":"Mumbai","radius":800,"fields":{"map":true}}`, want: ""},
		{name: "null values", body: `{"location":null,"radius":null,"fields":null}`, want: ""},
		{name: "fractional radius", body: `{"location":"Mumbai","radius":5000.5}`, want: "radius must be an integer number of meters"},
		{name: "string radius", body: `{"location":"Mumbai","radius":"far"}`, want: "radius must be an integer number of meters"},
		{name: "numeric location", body: `{"location":42}`, want: "location must be a string"},
		{name: "non-boolean field flag", body: `{"location":"Pune","fields":{"map":"yes"}}`, want: "fields must be an object of booleans"},
		{name: "not an object", body: `["Mumbai"]`, want: ""},
		{name: "truncated json", body: `{"location":"Mumbai"`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InvalidField([]byte(tt.body)))
		})
	}
}
