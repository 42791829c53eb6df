package views

import (
	"context"

	"github.com/homemanager/hmctl/api"
	"github.com/homemanager/hmctl/tabular"
)

const PaymentsTitle = "Rent Payments"

// LoadPaymentRows fetches rent payments with the collections needed to
// enrich them.
func LoadPaymentRows(ctx context.Context, client *api.Client) ([]PaymentRow, error) {
	payments, err := client.Payments.List(ctx)
	if err != nil {
		return nil, err
	}
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
	return BuildPaymentRows(payments, tenants, units, properties), nil
}

// NewPaymentsView configures the rent payment list page.
func NewPaymentsView(table TableOptions) *tabular.View[PaymentRow] {
	columns := []tabular.Column[PaymentRow]{
		{ID: "tenant_name", Label: "Tenant", Value: func(r PaymentRow) any {
			if r.Tenant == nil {
				return nil
			}
			return r.Tenant.Name
		}, Searchable: true, Sortable: true, Exportable: true},
		{ID: "unit_number", Label: "Unit", Value: func(r PaymentRow) any {
			if r.Unit == nil {
				return nil
			}
			return r.Unit.UnitNumber
		}, Searchable: true, Sortable: true, Exportable: true},
		{ID: "property_name", Label: "Property", Value: func(r PaymentRow) any {
			if r.Property == nil {
				return nil
			}
			return r.Property.Name
		}, Searchable: true, Sortable: true, Exportable: true},
		{ID: "amount", Label: "Amount", Value: func(r PaymentRow) any { return r.Payment.Amount },
			Sortable: true, Exportable: true},
		{ID: "due_date", Label: "Due", Value: func(r PaymentRow) any { return r.Payment.DueDate },
			Sortable: true, Exportable: true},
		{ID: "status", Label: "Status", Value: func(r PaymentRow) any { return r.Payment.Status },
			Sortable: true, Exportable: true},
		{ID: "transaction_id", Label: "Transaction", Value: func(r PaymentRow) any { return r.Payment.TransactionID },
			Searchable: true, Exportable: false},
	}

	view := tabular.New(columns, func(r PaymentRow) int64 { return r.Payment.ID }, tabular.Options{
		Searchable:           true,
		Filterable:           true,
		Exportable:           true,
		Selectable:           true,
		DefaultSortColumn:    "due_date",
		DefaultSortDirection: tabular.Descending,
		PageSize:             table.PageSize,
		PageSizeOptions:      table.PageSizeOptions,
		MinSearchLength:      table.MinSearchLength,
	})
	return view
}

// PaymentActions is the payment row menu.
func PaymentActions(handler func(tabular.ActionKind, PaymentRow) error) tabular.ActionSet[PaymentRow] {
	return tabular.ActionSet[PaymentRow]{
		Items: []tabular.Action{
			{Kind: tabular.ActionView, Label: "View Details", Icon: "eye"},
			{Kind: tabular.ActionMarkPaid, Label: "Mark as Paid", Icon: "check", Color: "green"},
			{Kind: tabular.ActionEdit, Label: "Edit", Icon: "pencil"},
			{Kind: tabular.ActionDelete, Label: "Delete", Icon: "trash", Color: "red"},
		},
		Handler: handler,
	}
}
