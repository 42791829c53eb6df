package api

import (
	"context"

	"github.com/homemanager/hmctl/model"
	"github.com/homemanager/hmctl/session"
)

// UsersAPI wraps the user profile endpoints. It is the profile
// collaborator the session manager populates identity from.
type UsersAPI struct {
	client *Client
}

var _ session.ProfileClient = (*UsersAPI)(nil)

// CurrentUser returns the authenticated user's profile.
func (u *UsersAPI) CurrentUser(ctx context.Context) (*model.User, error) {
	var user model.User
	if err := u.client.get(ctx, "/api/users/me/", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ProfileUpdate is a partial profile edit.
type ProfileUpdate struct {
	Email     *string `json:"email,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

// UpdateProfile patches the current user's profile and returns the
// updated record.
func (u *UsersAPI) UpdateProfile(ctx context.Context, update ProfileUpdate) (*model.User, error) {
	var user model.User
	if err := u.client.patch(ctx, "/api/users/me/", update, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
