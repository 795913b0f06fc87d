package utils

import (
	"strings"
)

// MissingFields reports which required fields are absent or empty in a
// decoded JSON payload. Strings are empty after trimming, numbers at zero and
// nil values all count as missing.
func MissingFields(data map[string]any, required []string) []string {
	var missing []string
	for _, field := range required {
		value, ok := data[field]
		if !ok || isEmptyValue(value) {
			missing = append(missing, field)
		}
	}
	return missing
}

// RequiredFieldsError builds the 400 message listing every missing field.
func RequiredFieldsError(missing []string) string {
	return "Missing or empty required field(s): " + strings.Join(missing, ", ")
}

func isEmptyValue(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case bool:
		return false
	case float64:
		return v == 0
	case int:
		return v == 0
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	default:
		return false
	}
}
