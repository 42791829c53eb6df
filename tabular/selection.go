package tabular

import "sort"

// HeaderState is the tri-state value of the select-all header control.
type HeaderState int

const (
	HeaderUnchecked HeaderState = iota
	HeaderIndeterminate
	HeaderChecked
)

// OnSelectionChange registers the callback invoked with the full
// updated selection set after every selection mutation.
func (v *View[T]) OnSelectionChange(callback func([]int64)) {
	v.onSelectionChange = callback
}

// Selection returns the selected record identifiers in ascending order.
func (v *View[T]) Selection() []int64 {
	ids := make([]int64, 0, len(v.selection))
	for id := range v.selection {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// IsSelected reports whether a record identifier is selected.
func (v *View[T]) IsSelected(id int64) bool {
	_, ok := v.selection[id]
	return ok
}

// ToggleRow flips one row's selection.
func (v *View[T]) ToggleRow(id int64) {
	if !v.options.Selectable {
		return
	}
	if _, ok := v.selection[id]; ok {
		delete(v.selection, id)
	} else {
		v.selection[id] = struct{}{}
	}
	v.notifySelection()
}

// SelectAll is the header checkbox: checking replaces the selection
// with the current page's rows (not the full filtered set); unchecking
// clears the selection entirely.
func (v *View[T]) SelectAll(checked bool) {
	if !v.options.Selectable {
		return
	}
	v.selection = make(map[int64]struct{})
	if checked {
		for _, row := range v.Rows() {
			v.selection[v.id(row)] = struct{}{}
		}
	}
	v.notifySelection()
}

// ClearSelection deselects everything.
func (v *View[T]) ClearSelection() {
	if len(v.selection) == 0 {
		return
	}
	v.selection = make(map[int64]struct{})
	v.notifySelection()
}

// HeaderSelectionState derives the tri-state header value from the
// current page: checked when every row on the page is selected,
// indeterminate when some are, unchecked otherwise.
func (v *View[T]) HeaderSelectionState() HeaderState {
	rows := v.Rows()
	if len(rows) == 0 {
		return HeaderUnchecked
	}

	selectedOnPage := 0
	for _, row := range rows {
		if v.IsSelected(v.id(row)) {
			selectedOnPage++
		}
	}

	switch selectedOnPage {
	case 0:
		return HeaderUnchecked
	case len(rows):
		return HeaderChecked
	default:
		return HeaderIndeterminate
	}
}

func (v *View[T]) notifySelection() {
	if v.onSelectionChange != nil {
		v.onSelectionChange(v.Selection())
	}
}
