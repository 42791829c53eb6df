package tabular_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/homemanager/hmctl/tabular"
)

func TestExportDataCoversFullFilteredSet(t *testing.T) {
	view := newPersonView(tabular.Options{Searchable: true, Exportable: true, PageSize: 1})
	view.SetRows(samplePeople())
	view.SetQuery("example.com")
	view.SortBy("name", tabular.Ascending)

	headers, rows := view.ExportData()
	require.Equal(t, []string{"Name", "Email", "Status", "Age"}, headers)

	// Three rows match the query even though the page holds one.
	require.Len(t, view.Rows(), 1)
	require.Len(t, rows, 3)
	require.Equal(t, []string{"Alice Smith", "alice@example.com", "active", "34"}, rows[0])
}

func TestExportDataOmitsNonExportableColumns(t *testing.T) {
	columns := []tabular.Column[person]{
		{ID: "name", Label: "Name", Value: func(p person) any { return p.Name }, Exportable: true},
		{ID: "email", Label: "Email", Value: func(p person) any { return p.Email }},
	}
	view := tabular.New(columns, func(p person) int64 { return p.ID }, tabular.Options{Exportable: true})
	view.SetRows(samplePeople())

	headers, rows := view.ExportData()
	require.Equal(t, []string{"Name"}, headers)
	require.Len(t, rows[0], 1)
}

func TestExportValueOverridesDisplayValue(t *testing.T) {
	columns := []tabular.Column[person]{
		{
			ID:          "name",
			Label:       "Name",
			Value:       func(p person) any { return p.Name },
			ExportValue: func(p person) any { return p.Email },
			Exportable:  true,
		},
	}
	view := tabular.New(columns, func(p person) int64 { return p.ID }, tabular.Options{Exportable: true})
	view.SetRows(samplePeople()[:1])

	_, rows := view.ExportData()
	require.Equal(t, "alice@example.com", rows[0][0])
}

func TestPageDataReflectsCurrentPage(t *testing.T) {
	view := newPersonView(tabular.Options{PageSize: 2})
	view.SetRows(samplePeople())
	view.SortBy("name", tabular.Ascending)
	view.SetPage(1)

	headers, rows := view.PageData()
	require.Equal(t, []string{"Name", "Email", "Status", "Age"}, headers)
	require.Len(t, rows, 2)
	require.Equal(t, "Carol White", rows[0][0])
	require.Equal(t, "52", rows[1][3])
}
