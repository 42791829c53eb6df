package views

import (
	"context"

	"github.com/homemanager/hmctl/api"
	"github.com/homemanager/hmctl/tabular"
)

const TenantsTitle = "Tenants"

// LoadTenantRows fetches tenants with the collections needed to enrich
// them.
func LoadTenantRows(ctx context.Context, client *api.Client) ([]TenantRow, error) {
	tenants, err := client.Tenants.List(ctx)
	if err != nil {
		return nil, err
	}
	units, err := client.Properties.Units(ctx)
	if err != nil {
		return nil, err
	}
	properties, err := client.Properties.List(ctx)
	if err != nil {
		return nil, err
	}
	return BuildTenantRows(tenants, units, properties), nil
}

// NewTenantsView configures the tenant list page.
func NewTenantsView(table TableOptions) *tabular.View[TenantRow] {
	columns := []tabular.Column[TenantRow]{
		{ID: "name", Label: "Name", Value: func(r TenantRow) any { return r.Tenant.Name },
			Searchable: true, Sortable: true, Exportable: true},
		{ID: "phone_number", Label: "Phone", Value: func(r TenantRow) any { return r.Tenant.PhoneNumber },
			Searchable: true, Sortable: true, Exportable: true},
		{ID: "email", Label: "Email", Value: func(r TenantRow) any { return r.Tenant.Email },
			Searchable: true, Sortable: true, Exportable: true},
		{ID: "unit_number", Label: "Unit", Value: func(r TenantRow) any {
			if r.Unit == nil {
				return nil
			}
			return r.Unit.UnitNumber
		}, Searchable: true, Sortable: true, Exportable: true},
		{ID: "property_name", Label: "Property", Value: func(r TenantRow) any {
			if r.Property == nil {
				return nil
			}
			return r.Property.Name
		}, Searchable: true, Sortable: true, Exportable: true},
		{ID: "move_in_date", Label: "Move-in", Value: func(r TenantRow) any { return r.Tenant.MoveInDate },
			Sortable: true, Exportable: true},
	}

	view := tabular.New(columns, func(r TenantRow) int64 { return r.Tenant.ID }, tabular.Options{
		Searchable:        true,
		Filterable:        true,
		Exportable:        true,
		Selectable:        true,
		DefaultSortColumn: "name",
		PageSize:          table.PageSize,
		PageSizeOptions:   table.PageSizeOptions,
		MinSearchLength:   table.MinSearchLength,
	})

	// Property filter keys off the joined property's ID, not a column.
	view.RegisterFilterField("property", func(r TenantRow) any {
		if r.Property == nil {
			return nil
		}
		return r.Property.ID
	})
	return view
}

// TenantActions is the tenant row menu.
func TenantActions(handler func(tabular.ActionKind, TenantRow) error) tabular.ActionSet[TenantRow] {
	return tabular.ActionSet[TenantRow]{
		Items: []tabular.Action{
			{Kind: tabular.ActionEdit, Label: "Edit", Icon: "pencil"},
			{Kind: tabular.ActionEmail, Label: "Send Email", Icon: "mail"},
			{Kind: tabular.ActionSMS, Label: "Send SMS", Icon: "message"},
			{Kind: tabular.ActionCall, Label: "Call", Icon: "phone"},
			{Kind: tabular.ActionDelete, Label: "Delete", Icon: "trash", Color: "red"},
		},
		Handler: handler,
	}
}
