package report

import (
	"fmt"
	"strconv"
	"strings"
)

// toFloat parses a cell value as a float64. String values are trimmed
// before parsing; anything unparseable reports false.
func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case nil:
		return 0, false
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// numericOrZero parses a cell value as a float64, degrading to 0 on
// failure instead of erroring.
func numericOrZero(v any) float64 {
	f, ok := toFloat(v)
	if !ok {
		return 0
	}
	return f
}

// asString renders a cell value for comparison and grouping.
func asString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
