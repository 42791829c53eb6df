package tabular_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/homemanager/hmctl/tabular"
)

func newSelectableView(pageSize int) *tabular.View[person] {
	view := newPersonView(tabular.Options{Selectable: true, PageSize: pageSize})
	view.SetRows(samplePeople())
	return view
}

func TestToggleRowSelection(t *testing.T) {
	view := newSelectableView(10)

	view.ToggleRow(2)
	require.True(t, view.IsSelected(2))
	require.Equal(t, []int64{2}, view.Selection())

	view.ToggleRow(2)
	require.False(t, view.IsSelected(2))
	require.Empty(t, view.Selection())
}

func TestToggleRowIgnoredWhenNotSelectable(t *testing.T) {
	view := newPersonView(tabular.Options{})
	view.SetRows(samplePeople())

	view.ToggleRow(1)
	require.Empty(t, view.Selection())
}

func TestSelectAllCoversCurrentPageOnly(t *testing.T) {
	view := newSelectableView(2)

	view.SelectAll(true)
	require.Equal(t, []int64{1, 2}, view.Selection())

	// Checking on another page replaces the selection rather than
	// accumulating across pages.
	view.SetPage(1)
	view.SelectAll(true)
	require.Equal(t, []int64{3, 4}, view.Selection())
}

func TestSelectAllUncheckClearsEverything(t *testing.T) {
	view := newSelectableView(2)
	view.ToggleRow(1)
	view.ToggleRow(3)

	view.SelectAll(false)
	require.Empty(t, view.Selection())
}

func TestHeaderSelectionState(t *testing.T) {
	view := newSelectableView(2)
	require.Equal(t, tabular.HeaderUnchecked, view.HeaderSelectionState())

	view.ToggleRow(1)
	require.Equal(t, tabular.HeaderIndeterminate, view.HeaderSelectionState())

	view.ToggleRow(2)
	require.Equal(t, tabular.HeaderChecked, view.HeaderSelectionState())

	// A selected row on another page does not affect this page's
	// header state.
	view.SetPage(1)
	require.Equal(t, tabular.HeaderUnchecked, view.HeaderSelectionState())
}

func TestHeaderSelectionStateEmptyPage(t *testing.T) {
	view := newSelectableView(2)
	view.SetPage(99)
	require.Equal(t, tabular.HeaderUnchecked, view.HeaderSelectionState())
}

func TestSelectionChangeCallback(t *testing.T) {
	view := newSelectableView(10)

	var got [][]int64
	view.OnSelectionChange(func(ids []int64) {
		got = append(got, ids)
	})

	view.ToggleRow(2)
	view.ToggleRow(4)
	view.ClearSelection()

	require.Equal(t, [][]int64{{2}, {2, 4}, {}}, got)
}

func TestClearSelectionWithoutSelectionDoesNotNotify(t *testing.T) {
	view := newSelectableView(10)

	notified := 0
	view.OnSelectionChange(func([]int64) { notified++ })

	view.ClearSelection()
	require.Zero(t, notified)
}
