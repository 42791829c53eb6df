package tabular_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/homemanager/hmctl/tabular"
)

type person struct {
	ID     int64
	Name   string
	Email  string
	Status string
	Age    int
}

func personColumns() []tabular.Column[person] {
	return []tabular.Column[person]{
		{ID: "name", Label: "Name", Value: func(p person) any { return p.Name },
			Searchable: true, Sortable: true, Exportable: true},
		{ID: "email", Label: "Email", Value: func(p person) any { return p.Email },
			Searchable: true, Sortable: true, Exportable: true},
		{ID: "status", Label: "Status", Value: func(p person) any { return p.Status },
			Sortable: true, Exportable: true},
		{ID: "age", Label: "Age", Value: func(p person) any { return p.Age },
			Sortable: true, Exportable: true},
	}
}

func newPersonView(options tabular.Options) *tabular.View[person] {
	return tabular.New(personColumns(), func(p person) int64 { return p.ID }, options)
}

func samplePeople() []person {
	return []person{
		{ID: 1, Name: "Alice Smith", Email: "alice@example.com", Status: "active", Age: 34},
		{ID: 2, Name: "Bob Jones", Email: "bob@example.com", Status: "pending", Age: 28},
		{ID: 3, Name: "Carol White", Email: "carol@alice.org", Status: "active", Age: 41},
		{ID: 4, Name: "Dan Brown", Email: "dan@example.com", Status: "inactive", Age: 52},
	}
}

func names(rows []person) []string {
	result := make([]string, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.Name)
	}
	return result
}

func TestSearchMatchesAnySearchableColumn(t *testing.T) {
	view := newPersonView(tabular.Options{Searchable: true})
	view.SetRows(samplePeople())

	// "alice" appears in Alice's name and in Carol's email domain.
	view.SetQuery("alice")
	require.Equal(t, []string{"Alice Smith", "Carol White"}, names(view.Derived()))
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	view := newPersonView(tabular.Options{Searchable: true})
	view.SetRows(samplePeople())

	view.SetQuery("ALICE")
	require.Equal(t, []string{"Alice Smith", "Carol White"}, names(view.Derived()))
}

func TestSearchIgnoresNonSearchableColumns(t *testing.T) {
	view := newPersonView(tabular.Options{Searchable: true})
	view.SetRows(samplePeople())

	// Status is not a searchable column.
	view.SetQuery("pending")
	require.Empty(t, view.Derived())
}

func TestShortQueryIsIgnored(t *testing.T) {
	view := newPersonView(tabular.Options{Searchable: true, MinSearchLength: 2})
	view.SetRows(samplePeople())

	view.SetQuery("a")
	require.Len(t, view.Derived(), 4)
	require.False(t, view.HasActiveCriteria())
}

func TestSearchDisabledLeavesRowsUntouched(t *testing.T) {
	view := newPersonView(tabular.Options{})
	view.SetRows(samplePeople())

	view.SetQuery("alice")
	require.Len(t, view.Derived(), 4)
}

func TestSingleValueFilterIsSubstringMatch(t *testing.T) {
	view := newPersonView(tabular.Options{Filterable: true})
	view.SetRows(samplePeople())

	// "active" is a substring of both "active" and "inactive".
	view.SetFilter("status", tabular.Match("active"))
	require.Equal(t, []string{"Alice Smith", "Carol White", "Dan Brown"}, names(view.Derived()))
}

func TestMultiSelectFilterIsExactMembership(t *testing.T) {
	view := newPersonView(tabular.Options{Filterable: true})
	view.SetRows(samplePeople())

	view.SetFilter("status", tabular.OneOf("active"))
	require.Equal(t, []string{"Alice Smith", "Carol White"}, names(view.Derived()))

	view.SetFilter("status", tabular.OneOf("active", "pending"))
	require.Equal(t, []string{"Alice Smith", "Bob Jones", "Carol White"}, names(view.Derived()))
}

func TestFiltersCombineConjunctively(t *testing.T) {
	view := newPersonView(tabular.Options{Searchable: true, Filterable: true})
	view.SetRows(samplePeople())

	view.SetQuery("example.com")
	view.SetFilter("status", tabular.OneOf("active", "pending"))
	require.Equal(t, []string{"Alice Smith", "Bob Jones"}, names(view.Derived()))
}

func TestZeroFilterRemovesEntry(t *testing.T) {
	view := newPersonView(tabular.Options{Filterable: true})
	view.SetRows(samplePeople())

	view.SetFilter("status", tabular.OneOf("active"))
	require.Len(t, view.Derived(), 2)

	view.SetFilter("status", tabular.Filter{})
	require.Len(t, view.Derived(), 4)
	require.False(t, view.HasActiveCriteria())
}

func TestRegisteredFilterField(t *testing.T) {
	view := newPersonView(tabular.Options{Filterable: true})
	view.RegisterFilterField("age_band", func(p person) any {
		if p.Age >= 40 {
			return "senior"
		}
		return "junior"
	})
	view.SetRows(samplePeople())

	view.SetFilter("age_band", tabular.OneOf("senior"))
	require.Equal(t, []string{"Carol White", "Dan Brown"}, names(view.Derived()))
}

func TestUnknownFilterKeyMatchesNothing(t *testing.T) {
	view := newPersonView(tabular.Options{Filterable: true})
	view.SetRows(samplePeople())

	view.SetFilter("missing", tabular.Match("x"))
	require.Empty(t, view.Derived())
}

func TestSortAscendingAndDescending(t *testing.T) {
	view := newPersonView(tabular.Options{})
	view.SetRows(samplePeople())

	view.SortBy("name", tabular.Ascending)
	require.Equal(t, []string{"Alice Smith", "Bob Jones", "Carol White", "Dan Brown"}, names(view.Derived()))

	view.SortBy("name", tabular.Descending)
	require.Equal(t, []string{"Dan Brown", "Carol White", "Bob Jones", "Alice Smith"}, names(view.Derived()))
}

func TestSortNumericColumn(t *testing.T) {
	view := newPersonView(tabular.Options{})
	view.SetRows(samplePeople())

	view.SortBy("age", tabular.Ascending)
	require.Equal(t, []string{"Bob Jones", "Alice Smith", "Carol White", "Dan Brown"}, names(view.Derived()))
}

func TestSortIsStableInBothDirections(t *testing.T) {
	rows := []person{
		{ID: 1, Name: "first", Status: "same"},
		{ID: 2, Name: "second", Status: "same"},
		{ID: 3, Name: "third", Status: "same"},
	}
	view := newPersonView(tabular.Options{})
	view.SetRows(rows)

	view.SortBy("status", tabular.Ascending)
	require.Equal(t, []string{"first", "second", "third"}, names(view.Derived()))

	// Equal keys keep input order under descending too; the order is
	// not the reverse of the ascending pass.
	view.SortBy("status", tabular.Descending)
	require.Equal(t, []string{"first", "second", "third"}, names(view.Derived()))
}

func TestSortNilValuesSortLowest(t *testing.T) {
	columns := []tabular.Column[person]{
		{ID: "email", Label: "Email", Value: func(p person) any {
			if p.Email == "" {
				return nil
			}
			return p.Email
		}, Sortable: true},
	}
	view := tabular.New(columns, func(p person) int64 { return p.ID }, tabular.Options{})
	view.SetRows([]person{
		{ID: 1, Name: "has", Email: "z@example.com"},
		{ID: 2, Name: "none", Email: ""},
	})

	view.SortBy("email", tabular.Ascending)
	require.Equal(t, []string{"none", "has"}, names(view.Derived()))

	view.SortBy("email", tabular.Descending)
	require.Equal(t, []string{"has", "none"}, names(view.Derived()))
}

func TestToggleSort(t *testing.T) {
	view := newPersonView(tabular.Options{DefaultSortColumn: "name"})
	view.SetRows(samplePeople())

	view.ToggleSort("name")
	column, direction := view.Sort()
	require.Equal(t, "name", column)
	require.Equal(t, tabular.Descending, direction)

	view.ToggleSort("age")
	column, direction = view.Sort()
	require.Equal(t, "age", column)
	require.Equal(t, tabular.Ascending, direction)
}

func TestSortIgnoresNonSortableColumn(t *testing.T) {
	columns := []tabular.Column[person]{
		{ID: "name", Label: "Name", Value: func(p person) any { return p.Name }, Sortable: true},
		{ID: "avatar", Label: "Avatar", Value: func(p person) any { return p.Email }},
	}
	view := tabular.New(columns, func(p person) int64 { return p.ID }, tabular.Options{
		DefaultSortColumn: "name",
	})
	view.SetRows(samplePeople())

	view.SortBy("avatar", tabular.Descending)
	column, direction := view.Sort()
	require.Equal(t, "name", column)
	require.Equal(t, tabular.Ascending, direction)

	view.ToggleSort("avatar")
	column, _ = view.Sort()
	require.Equal(t, "name", column)

	view.SortBy("missing", tabular.Descending)
	column, _ = view.Sort()
	require.Equal(t, "name", column)
}

func TestPagination(t *testing.T) {
	view := newPersonView(tabular.Options{PageSize: 1})
	view.SetRows(samplePeople())
	view.SortBy("name", tabular.Ascending)

	require.Equal(t, 4, view.Total())
	require.Equal(t, []string{"Alice Smith"}, names(view.Rows()))

	view.SetPage(1)
	require.Equal(t, []string{"Bob Jones"}, names(view.Rows()))

	view.SetPage(3)
	require.Equal(t, []string{"Dan Brown"}, names(view.Rows()))
}

func TestOutOfRangePageYieldsEmptyPage(t *testing.T) {
	view := newPersonView(tabular.Options{PageSize: 2})
	view.SetRows(samplePeople())

	view.SetPage(99)
	require.Empty(t, view.Rows())
	require.Equal(t, 4, view.Total())
}

func TestNegativePageClampsToZero(t *testing.T) {
	view := newPersonView(tabular.Options{PageSize: 2})
	view.SetRows(samplePeople())

	view.SetPage(-3)
	require.Equal(t, 0, view.CurrentPage())
	require.Len(t, view.Rows(), 2)
}

func TestPageResetsOnCriteriaChangeButNotOnSort(t *testing.T) {
	view := newPersonView(tabular.Options{Searchable: true, Filterable: true, PageSize: 1})
	view.SetRows(samplePeople())

	view.SetPage(2)
	view.SetQuery("example")
	require.Equal(t, 0, view.CurrentPage())

	view.SetPage(2)
	view.SetFilter("status", tabular.OneOf("active"))
	require.Equal(t, 0, view.CurrentPage())

	view.SetPage(1)
	view.SortBy("name", tabular.Descending)
	require.Equal(t, 1, view.CurrentPage())

	view.SetPageSize(2)
	require.Equal(t, 0, view.CurrentPage())

	view.SetPage(1)
	view.SetRows(samplePeople())
	require.Equal(t, 0, view.CurrentPage())
}

func TestLastPartialPage(t *testing.T) {
	view := newPersonView(tabular.Options{PageSize: 3})
	view.SetRows(samplePeople())

	view.SetPage(1)
	require.Len(t, view.Rows(), 1)
}

func TestDefaultsApplied(t *testing.T) {
	view := newPersonView(tabular.Options{})

	require.Equal(t, 10, view.PageSize())
	require.Equal(t, []int{5, 10, 25, 50}, view.Config().PageSizeOptions)

	column, direction := view.Sort()
	require.Equal(t, "name", column)
	require.Equal(t, tabular.Ascending, direction)
}

func TestEmptyMessages(t *testing.T) {
	view := newPersonView(tabular.Options{Searchable: true})
	view.SetRows(nil)
	require.Equal(t, tabular.MsgNoData, view.EmptyMessage())

	view.SetRows(samplePeople())
	view.SetQuery("zzzz")
	require.Empty(t, view.Derived())
	require.Equal(t, tabular.MsgNoResults, view.EmptyMessage())
}
