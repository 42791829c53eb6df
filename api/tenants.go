package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/homemanager/hmctl/model"
)

const (
	tenantsPath = "/api/tenants/tenants/"
	leasesPath  = "/api/tenants/leases/"
)

// TenantsAPI wraps the tenant and lease endpoints.
type TenantsAPI struct {
	client *Client
}

func (t *TenantsAPI) List(ctx context.Context) ([]model.Tenant, error) {
	var tenants []model.Tenant
	if err := t.client.get(ctx, tenantsPath, nil, &tenants); err != nil {
		return nil, err
	}
	return tenants, nil
}

func (t *TenantsAPI) Get(ctx context.Context, id int64) (*model.Tenant, error) {
	var tenant model.Tenant
	if err := t.client.get(ctx, idPath(tenantsPath, id), nil, &tenant); err != nil {
		return nil, err
	}
	return &tenant, nil
}

func (t *TenantsAPI) Create(ctx context.Context, body any) (*model.Tenant, error) {
	var tenant model.Tenant
	if err := t.client.post(ctx, tenantsPath, body, &tenant); err != nil {
		return nil, err
	}
	return &tenant, nil
}

// Update is a partial (PATCH) update, matching how the web client edits
// tenants.
func (t *TenantsAPI) Update(ctx context.Context, id int64, body any) (*model.Tenant, error) {
	var tenant model.Tenant
	if err := t.client.patch(ctx, idPath(tenantsPath, id), body, &tenant); err != nil {
		return nil, err
	}
	return &tenant, nil
}

func (t *TenantsAPI) Delete(ctx context.Context, id int64) error {
	return t.client.delete(ctx, idPath(tenantsPath, id))
}

// Leases lists every lease the caller can see.
func (t *TenantsAPI) Leases(ctx context.Context) ([]model.Lease, error) {
	var leases []model.Lease
	if err := t.client.get(ctx, leasesPath, nil, &leases); err != nil {
		return nil, err
	}
	return leases, nil
}

// LeasesByTenant lists one tenant's leases.
func (t *TenantsAPI) LeasesByTenant(ctx context.Context, tenantID int64) ([]model.Lease, error) {
	query := url.Values{"tenant": []string{strconv.FormatInt(tenantID, 10)}}
	var leases []model.Lease
	if err := t.client.get(ctx, leasesPath, query, &leases); err != nil {
		return nil, err
	}
	return leases, nil
}

func (t *TenantsAPI) CreateLease(ctx context.Context, body any) (*model.Lease, error) {
	var lease model.Lease
	if err := t.client.post(ctx, leasesPath, body, &lease); err != nil {
		return nil, err
	}
	return &lease, nil
}

func (t *TenantsAPI) DeleteLease(ctx context.Context, id int64) error {
	return t.client.delete(ctx, idPath(leasesPath, id))
}
