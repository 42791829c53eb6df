package views

import (
	"context"
	"fmt"

	"github.com/homemanager/hmctl/api"
	"github.com/homemanager/hmctl/model"
)

const DashboardTitle = "Dashboard"

// KPI is one labelled figure on the landing dashboard.
type KPI struct {
	Label string
	Value string
}

// LoadDashboard fetches the analytics summary block.
func LoadDashboard(ctx context.Context, client *api.Client) (*model.DashboardSummary, error) {
	return client.Dashboard.Summary(ctx)
}

// DashboardKPIs formats the summary into display rows.
func DashboardKPIs(summary *model.DashboardSummary) []KPI {
	return []KPI{
		{Label: "Properties", Value: fmt.Sprintf("%d", summary.TotalProperties)},
		{Label: "Units", Value: fmt.Sprintf("%d (%d occupied)", summary.TotalUnits, summary.OccupiedUnits)},
		{Label: "Occupancy Rate", Value: fmt.Sprintf("%.1f%%", summary.OccupancyRate)},
		{Label: "Active Tenants", Value: fmt.Sprintf("%d", summary.ActiveTenants)},
		{Label: "Open Tickets", Value: fmt.Sprintf("%d", summary.OpenTickets)},
		{Label: "Pending Payments", Value: fmt.Sprintf("%d", summary.PendingPayments)},
		{Label: "Paid This Month", Value: fmt.Sprintf("$%.2f", summary.PaidThisMonth)},
		{Label: "Expected Income", Value: fmt.Sprintf("$%.2f", summary.ExpectedIncome)},
	}
}
