package tabular

import "strings"

// Filter is one entry in a view's active filter set. Exactly one of
// the two modes is populated:
//
//   - Text: case-insensitive substring match against the string-coerced
//     field value.
//   - In: exact membership. The field's string-coerced value must equal
//     one of the selected values. No substring matching in this mode.
type Filter struct {
	Text string
	In   []string
}

// Match builds a single-value (substring) filter.
func Match(text string) Filter {
	return Filter{Text: text}
}

// OneOf builds a multi-select (membership) filter.
func OneOf(values ...string) Filter {
	return Filter{In: values}
}

// IsZero reports whether the filter has no effect and should be
// removed from the active set.
func (f Filter) IsZero() bool {
	return f.Text == "" && len(f.In) == 0
}

// Matches applies the filter to a resolved field value.
func (f Filter) Matches(value any) bool {
	coerced := coerceString(value)

	if len(f.In) > 0 {
		for _, candidate := range f.In {
			if coerced == candidate {
				return true
			}
		}
		return false
	}

	return containsFold(coerced, f.Text)
}

// containsFold reports whether s contains substr, case-insensitively.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
