package car

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeBoolean(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  bool
	}{
		{"bool true", true, true},
		{"bool false", false, false},
		{"string true", "true", true},
		{"string true mixed case", "True", true},
		{"string true with spaces", "  true ", true},
		{"string false", "false", false},
		{"arbitrary string", "yes", false},
		{"nil", nil, false},
		{"number", float64(1), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeBoolean(tc.value))
		})
	}
}
