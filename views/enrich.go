// Package views assembles the list pages: it loads collections through
// the API client, joins them into typed enriched rows, and configures a
// tabular.View per page with that page's columns, filters, and row
// actions.
package views

import (
	"github.com/homemanager/hmctl/model"
)

// TenantRow is a tenant joined with its unit and property.
// Relations: tenant required; unit and property optional. A dangling
// foreign key leaves the pointer nil and the derived cells empty.
type TenantRow struct {
	Tenant   model.Tenant
	Unit     *model.Unit
	Property *model.Property
}

// PaymentRow is a rent payment joined with its tenant, unit, and
// property. Relations: payment required; the rest optional.
type PaymentRow struct {
	Payment  model.RentPayment
	Tenant   *model.Tenant
	Unit     *model.Unit
	Property *model.Property
}

// TicketRow is a maintenance ticket joined with its property, unit,
// tenant, and assigned provider. Relations: ticket required; the rest
// optional.
type TicketRow struct {
	Ticket   model.Ticket
	Property *model.Property
	Unit     *model.Unit
	Tenant   *model.Tenant
	Assignee *model.ServiceProvider
}

// LeaseRow is a lease joined with its unit and tenant. Relations: unit
// and tenant are required; a lease with a dangling unit or tenant
// reference is dropped and counted in the result's Dropped field.
type LeaseRow struct {
	Lease    model.Lease
	Unit     model.Unit
	Tenant   model.Tenant
	Property *model.Property
}

// NoticeRow is a notice joined with its property. Relations: notice
// required; property optional.
type NoticeRow struct {
	Notice   model.Notice
	Property *model.Property
}

func indexUnits(units []model.Unit) map[int64]*model.Unit {
	index := make(map[int64]*model.Unit, len(units))
	for i := range units {
		index[units[i].ID] = &units[i]
	}
	return index
}

func indexProperties(properties []model.Property) map[int64]*model.Property {
	index := make(map[int64]*model.Property, len(properties))
	for i := range properties {
		index[properties[i].ID] = &properties[i]
	}
	return index
}

func indexTenants(tenants []model.Tenant) map[int64]*model.Tenant {
	index := make(map[int64]*model.Tenant, len(tenants))
	for i := range tenants {
		index[tenants[i].ID] = &tenants[i]
	}
	return index
}

func indexProviders(providers []model.ServiceProvider) map[int64]*model.ServiceProvider {
	index := make(map[int64]*model.ServiceProvider, len(providers))
	for i := range providers {
		index[providers[i].ID] = &providers[i]
	}
	return index
}

// BuildTenantRows joins tenants with units and properties.
func BuildTenantRows(tenants []model.Tenant, units []model.Unit, properties []model.Property) []TenantRow {
	unitIndex := indexUnits(units)
	propertyIndex := indexProperties(properties)

	rows := make([]TenantRow, 0, len(tenants))
	for _, tenant := range tenants {
		row := TenantRow{Tenant: tenant}
		if unit, ok := unitIndex[tenant.UnitID]; ok {
			row.Unit = unit
			if property, ok := propertyIndex[unit.PropertyID]; ok {
				row.Property = property
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// BuildPaymentRows joins rent payments with tenants, units, and
// properties.
func BuildPaymentRows(payments []model.RentPayment, tenants []model.Tenant, units []model.Unit, properties []model.Property) []PaymentRow {
	tenantIndex := indexTenants(tenants)
	unitIndex := indexUnits(units)
	propertyIndex := indexProperties(properties)

	rows := make([]PaymentRow, 0, len(payments))
	for _, payment := range payments {
		row := PaymentRow{Payment: payment}
		row.Tenant = tenantIndex[payment.TenantID]
		if unit, ok := unitIndex[payment.UnitID]; ok {
			row.Unit = unit
			row.Property = propertyIndex[unit.PropertyID]
		}
		rows = append(rows, row)
	}
	return rows
}

// BuildTicketRows joins tickets with their related records.
func BuildTicketRows(tickets []model.Ticket, properties []model.Property, units []model.Unit, tenants []model.Tenant, providers []model.ServiceProvider) []TicketRow {
	propertyIndex := indexProperties(properties)
	unitIndex := indexUnits(units)
	tenantIndex := indexTenants(tenants)
	providerIndex := indexProviders(providers)

	rows := make([]TicketRow, 0, len(tickets))
	for _, ticket := range tickets {
		row := TicketRow{Ticket: ticket}
		row.Property = propertyIndex[ticket.PropertyID]
		row.Unit = unitIndex[ticket.UnitID]
		row.Tenant = tenantIndex[ticket.TenantID]
		if ticket.AssignedToID != nil {
			row.Assignee = providerIndex[*ticket.AssignedToID]
		}
		rows = append(rows, row)
	}
	return rows
}

// BuildLeaseRows joins leases with units and tenants. Leases whose unit
// or tenant cannot be resolved are dropped; the count of dropped rows
// is returned so pages can surface the inconsistency.
func BuildLeaseRows(leases []model.Lease, units []model.Unit, tenants []model.Tenant, properties []model.Property) (rows []LeaseRow, dropped int) {
	unitIndex := indexUnits(units)
	tenantIndex := indexTenants(tenants)
	propertyIndex := indexProperties(properties)

	for _, lease := range leases {
		unit, unitOK := unitIndex[lease.UnitID]
		tenant, tenantOK := tenantIndex[lease.TenantID]
		if !unitOK || !tenantOK {
			dropped++
			continue
		}
		rows = append(rows, LeaseRow{
			Lease:    lease,
			Unit:     *unit,
			Tenant:   *tenant,
			Property: propertyIndex[unit.PropertyID],
		})
	}
	return rows, dropped
}

// BuildNoticeRows joins notices with their properties.
func BuildNoticeRows(notices []model.Notice, properties []model.Property) []NoticeRow {
	propertyIndex := indexProperties(properties)

	rows := make([]NoticeRow, 0, len(notices))
	for _, notice := range notices {
		rows = append(rows, NoticeRow{
			Notice:   notice,
			Property: propertyIndex[notice.PropertyID],
		})
	}
	return rows
}
