package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingFields(t *testing.T) {
	required := []string{"name", "email", "password"}

	cases := []struct {
		name    string
		data    map[string]any
		missing []string
	}{
		{
			name:    "all present",
			data:    map[string]any{"name": "Sam", "email": "sam@example.com", "password": "secret"},
			missing: nil,
		},
		{
			name:    "absent field",
			data:    map[string]any{"name": "Sam", "email": "sam@example.com"},
			missing: []string{"password"},
		},
		{
			name:    "blank string counts as missing",
			data:    map[string]any{"name": "  ", "email": "sam@example.com", "password": "secret"},
			missing: []string{"name"},
		},
		{
			name:    "nil value counts as missing",
			data:    map[string]any{"name": nil, "email": "sam@example.com", "password": "secret"},
			missing: []string{"name"},
		},
		{
			name:    "multiple missing, in required order",
			data:    map[string]any{"email": ""},
			missing: []string{"name", "email", "password"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.missing, MissingFields(tc.data, required))
		})
	}
}

func TestMissingFieldsNumbers(t *testing.T) {
	required := []string{"max_passengers", "cost"}

	missing := MissingFields(map[string]any{
		"max_passengers": float64(0),
		"cost":           float64(12.5),
	}, required)
	assert.Equal(t, []string{"max_passengers"}, missing)
}

func TestRequiredFieldsError(t *testing.T) {
	message := RequiredFieldsError([]string{"from", "to"})
	assert.Equal(t, "Missing or empty required field(s): from, to", message)
}
