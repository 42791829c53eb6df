package api

import (
	"context"

	"github.com/homemanager/hmctl/model"
)

// DashboardAPI wraps the analytics summary endpoint backing the landing
// dashboard.
type DashboardAPI struct {
	client *Client
}

// Summary returns the KPI block.
func (d *DashboardAPI) Summary(ctx context.Context) (*model.DashboardSummary, error) {
	var summary model.DashboardSummary
	if err := d.client.get(ctx, "/api/analytics/dashboards/summary_data/", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
