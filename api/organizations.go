package api

import (
	"context"

	"github.com/homemanager/hmctl/model"
)

const (
	organizationsPath = "/api/organizations/organizations/"
	membersPath       = "/api/organizations/members/"
)

// OrganizationsAPI wraps the organization and team-membership
// endpoints.
type OrganizationsAPI struct {
	client *Client
}

// Current returns the caller's organization.
func (o *OrganizationsAPI) Current(ctx context.Context) (*model.Organization, error) {
	var organization model.Organization
	if err := o.client.get(ctx, organizationsPath+"current/", nil, &organization); err != nil {
		return nil, err
	}
	return &organization, nil
}

func (o *OrganizationsAPI) Update(ctx context.Context, id int64, body any) (*model.Organization, error) {
	var organization model.Organization
	if err := o.client.patch(ctx, idPath(organizationsPath, id), body, &organization); err != nil {
		return nil, err
	}
	return &organization, nil
}

// Members lists the organization's team members.
func (o *OrganizationsAPI) Members(ctx context.Context) ([]model.Member, error) {
	var members []model.Member
	if err := o.client.get(ctx, membersPath, nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// InviteRequest invites a user into the organization with a role.
type InviteRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (o *OrganizationsAPI) Invite(ctx context.Context, req InviteRequest) (*model.Member, error) {
	var member model.Member
	if err := o.client.post(ctx, membersPath+"invite/", req, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

// UpdateMemberRole changes a member's role.
func (o *OrganizationsAPI) UpdateMemberRole(ctx context.Context, memberID int64, role string) (*model.Member, error) {
	var member model.Member
	body := map[string]string{"role": role}
	if err := o.client.patch(ctx, idPath(membersPath, memberID), body, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

// RemoveMember removes a member from the organization.
func (o *OrganizationsAPI) RemoveMember(ctx context.Context, memberID int64) error {
	return o.client.delete(ctx, idPath(membersPath, memberID))
}
