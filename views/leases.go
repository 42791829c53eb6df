package views

import (
	"context"

	"github.com/homemanager/hmctl/api"
	"github.com/homemanager/hmctl/tabular"
)

const LeasesTitle = "Leases"

// LoadLeaseRows fetches leases with the collections needed to join
// them. The second result counts leases dropped for dangling unit or
// tenant references.
func LoadLeaseRows(ctx context.Context, client *api.Client) ([]LeaseRow, int, error) {
	leases, err := client.Tenants.Leases(ctx)
	if err != nil {
		return nil, 0, err
	}
	units, err := client.Properties.Units(ctx)
	if err != nil {
		return nil, 0, err
	}
	tenants, err := client.Tenants.List(ctx)
	if err != nil {
		return nil, 0, err
	}
	properties, err := client.Properties.List(ctx)
	if err != nil {
		return nil, 0, err
	}
	rows, dropped := BuildLeaseRows(leases, units, tenants, properties)
	return rows, dropped, nil
}

// NewLeasesView configures the lease list page.
func NewLeasesView(table TableOptions) *tabular.View[LeaseRow] {
	columns := []tabular.Column[LeaseRow]{
		{ID: "tenant_name", Label: "Tenant", Value: func(r LeaseRow) any { return r.Tenant.Name },
			Searchable: true, Sortable: true, Exportable: true},
		{ID: "property_name", Label: "Property", Value: func(r LeaseRow) any {
			if r.Property == nil {
				return nil
			}
			return r.Property.Name
		}, Searchable: true, Sortable: true, Exportable: true},
		{ID: "unit_number", Label: "Unit", Value: func(r LeaseRow) any { return r.Unit.UnitNumber },
			Searchable: true, Sortable: true, Exportable: true},
		{ID: "start_date", Label: "Start", Value: func(r LeaseRow) any { return r.Lease.StartDate },
			Sortable: true, Exportable: true},
		{ID: "end_date", Label: "End", Value: func(r LeaseRow) any { return r.Lease.EndDate },
			Sortable: true, Exportable: true},
		{ID: "is_active", Label: "Active", Value: func(r LeaseRow) any { return r.Lease.IsActive },
			Sortable: true, Exportable: true},
	}

	return tabular.New(columns, func(r LeaseRow) int64 { return r.Lease.ID }, tabular.Options{
		Searchable:           true,
		Filterable:           true,
		Exportable:           true,
		DefaultSortColumn:    "end_date",
		DefaultSortDirection: tabular.Ascending,
		PageSize:             table.PageSize,
		PageSizeOptions:      table.PageSizeOptions,
		MinSearchLength:      table.MinSearchLength,
	})
}

// LeaseActions is the lease row menu.
func LeaseActions(handler func(tabular.ActionKind, LeaseRow) error) tabular.ActionSet[LeaseRow] {
	return tabular.ActionSet[LeaseRow]{
		Items: []tabular.Action{
			{Kind: tabular.ActionView, Label: "View", Icon: "eye"},
			{Kind: tabular.ActionEdit, Label: "Edit", Icon: "pencil"},
			{Kind: tabular.ActionDelete, Label: "Delete", Icon: "trash", Color: "red"},
		},
		Handler: handler,
	}
}
