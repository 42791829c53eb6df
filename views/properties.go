package views

import (
	"context"

	"github.com/homemanager/hmctl/api"
	"github.com/homemanager/hmctl/model"
	"github.com/homemanager/hmctl/tabular"
)

// PropertiesTitle names the page and its export file.
const PropertiesTitle = "Properties"

// LoadProperties fetches the property collection.
func LoadProperties(ctx context.Context, client *api.Client) ([]model.Property, error) {
	return client.Properties.List(ctx)
}

// NewPropertiesView configures the property list page.
func NewPropertiesView(table TableOptions) *tabular.View[model.Property] {
	columns := []tabular.Column[model.Property]{
		{ID: "name", Label: "Name", Value: func(p model.Property) any { return p.Name },
			Searchable: true, Sortable: true, Exportable: true},
		{ID: "address", Label: "Address", Value: func(p model.Property) any { return p.Address },
			Searchable: true, Sortable: true, Exportable: true},
		{ID: "property_type", Label: "Type", Value: func(p model.Property) any { return p.PropertyType },
			Searchable: true, Sortable: true, Exportable: true},
		{ID: "unit_count", Label: "Units", Value: func(p model.Property) any { return p.UnitCount },
			Sortable: true, Exportable: true},
		{ID: "occupied_units", Label: "Occupied", Value: func(p model.Property) any { return p.OccupiedUnits },
			Sortable: true, Exportable: true},
		{ID: "monthly_income", Label: "Monthly Income", Value: func(p model.Property) any { return p.MonthlyIncome },
			Sortable: true, Exportable: true},
	}

	view := tabular.New(columns, func(p model.Property) int64 { return p.ID }, tabular.Options{
		Searchable:        true,
		Filterable:        true,
		Exportable:        true,
		DefaultSortColumn: "name",
		PageSize:          table.PageSize,
		PageSizeOptions:   table.PageSizeOptions,
		MinSearchLength:   table.MinSearchLength,
	})
	return view
}

// PropertyActions is the property row menu.
func PropertyActions(handler func(tabular.ActionKind, model.Property) error) tabular.ActionSet[model.Property] {
	return tabular.ActionSet[model.Property]{
		Items: []tabular.Action{
			{Kind: tabular.ActionView, Label: "View Details", Icon: "eye"},
			{Kind: tabular.ActionEdit, Label: "Edit", Icon: "pencil"},
			{Kind: tabular.ActionDelete, Label: "Delete", Icon: "trash", Color: "red"},
		},
		Handler: handler,
	}
}
