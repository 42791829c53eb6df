package views

import (
	"context"

	"github.com/homemanager/hmctl/api"
	"github.com/homemanager/hmctl/tabular"
)

const TicketsTitle = "Maintenance Tickets"

// LoadTicketRows fetches maintenance tickets with the collections
// needed to enrich them.
func LoadTicketRows(ctx context.Context, client *api.Client) ([]TicketRow, error) {
	tickets, err := client.Maintenance.ListTickets(ctx)
	if err != nil {
		return nil, err
	}
	properties, err := client.Properties.List(ctx)
	if err != nil {
		return nil, err
	}
	units, err := client.Properties.Units(ctx)
	if err != nil {
		return nil, err
	}
	tenants, err := client.Tenants.List(ctx)
	if err != nil {
		return nil, err
	}
	providers, err := client.Maintenance.ServiceProviders(ctx)
	if err != nil {
		return nil, err
	}
	return BuildTicketRows(tickets, properties, units, tenants, providers), nil
}

// NewTicketsView configures the maintenance ticket list page.
func NewTicketsView(table TableOptions) *tabular.View[TicketRow] {
	columns := []tabular.Column[TicketRow]{
		{ID: "title", Label: "Title", Value: func(r TicketRow) any { return r.Ticket.Title },
			Searchable: true, Sortable: true, Exportable: true},
		{ID: "property_name", Label: "Property", Value: func(r TicketRow) any {
			if r.Property == nil {
				return nil
			}
			return r.Property.Name
		}, Searchable: true, Sortable: true, Exportable: true},
		{ID: "unit_number", Label: "Unit", Value: func(r TicketRow) any {
			if r.Unit == nil {
				return nil
			}
			return r.Unit.UnitNumber
		}, Searchable: true, Sortable: true, Exportable: true},
		{ID: "status", Label: "Status", Value: func(r TicketRow) any { return r.Ticket.Status },
			Sortable: true, Exportable: true},
		{ID: "priority", Label: "Priority", Value: func(r TicketRow) any { return r.Ticket.Priority },
			Sortable: true, Exportable: true},
		{ID: "assignee", Label: "Assigned To", Value: func(r TicketRow) any {
			if r.Assignee == nil {
				return nil
			}
			return r.Assignee.Name
		}, Searchable: true, Sortable: true, Exportable: true},
		{ID: "created_at", Label: "Opened", Value: func(r TicketRow) any { return r.Ticket.CreatedAt },
			Sortable: true, Exportable: true},
	}

	view := tabular.New(columns, func(r TicketRow) int64 { return r.Ticket.ID }, tabular.Options{
		Searchable:           true,
		Filterable:           true,
		Exportable:           true,
		DefaultSortColumn:    "created_at",
		DefaultSortDirection: tabular.Descending,
		PageSize:             table.PageSize,
		PageSizeOptions:      table.PageSizeOptions,
		MinSearchLength:      table.MinSearchLength,
	})
	return view
}

// TicketActions is the ticket row menu.
func TicketActions(handler func(tabular.ActionKind, TicketRow) error) tabular.ActionSet[TicketRow] {
	return tabular.ActionSet[TicketRow]{
		Items: []tabular.Action{
			{Kind: tabular.ActionView, Label: "View Details", Icon: "eye"},
			{Kind: tabular.ActionAssign, Label: "Assign Provider", Icon: "user"},
			{Kind: tabular.ActionResolve, Label: "Mark Resolved", Icon: "check", Color: "green"},
			{Kind: tabular.ActionEdit, Label: "Edit", Icon: "pencil"},
			{Kind: tabular.ActionDelete, Label: "Delete", Icon: "trash", Color: "red"},
		},
		Handler: handler,
	}
}
