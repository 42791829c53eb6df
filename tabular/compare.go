package tabular

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// coerceString renders a resolved cell value for search, filter,
// export, and lexicographic comparison. nil becomes the empty string so
// missing values match nothing and sort lowest.
func coerceString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Time:
		return v.Format(time.RFC3339)
	case *time.Time:
		if v == nil {
			return ""
		}
		return v.Format(time.RFC3339)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// numericValue extracts a float64 when the value is numeric.
func numericValue(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

// compareValues is the single comparator behind the sort stage,
// parameterized by direction: descending inverts the comparison itself
// rather than reversing an ascending result, so ties behave identically
// in both directions under a stable sort.
//
// Both values numeric compares numerically; anything else compares
// lexicographically on the string-coerced forms. nil is the lowest
// value.
func compareValues(a, b any, descending bool) int {
	result := compareAscending(a, b)
	if descending {
		return -result
	}
	return result
}

func compareAscending(a, b any) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	aNum, aOK := numericValue(a)
	bNum, bOK := numericValue(b)
	if aOK && bOK {
		switch {
		case aNum < bNum:
			return -1
		case aNum > bNum:
			return 1
		default:
			return 0
		}
	}

	return strings.Compare(coerceString(a), coerceString(b))
}
