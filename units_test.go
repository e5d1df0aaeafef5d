package stylesys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToCSSUnit(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  any
	}{
		{"int", 10, "10px"},
		{"zero", 0, "0px"},
		{"negative", -4, "-4px"},
		{"int64", int64(7), "7px"},
		{"uint", uint(3), "3px"},
		{"float", 1.5, "1.5px"},
		{"float32", float32(2.25), "2.25px"},
		{"whole float", 100.0, "100px"},
		{"string passes through", "10rem", "10rem"},
		{"nil passes through", nil, nil},
		{"bool passes through", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToCSSUnit(tt.value))
		})
	}
}
