package api

import (
	"context"
	"net/http"

	"github.com/homemanager/hmctl/internal/errors"
	"github.com/homemanager/hmctl/session"
)

// AuthAPI wraps the token and registration endpoints. These are public:
// no bearer token is attached, and a 401 here means bad credentials,
// not an expired session.
type AuthAPI struct {
	client *Client
}

var _ session.AuthClient = (*AuthAPI)(nil)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ObtainToken exchanges a username/password for an access/refresh pair.
func (a *AuthAPI) ObtainToken(ctx context.Context, username, password string) (*session.TokenPair, error) {
	var pair session.TokenPair
	err := a.client.public(ctx, http.MethodPost, "/api/auth/token/", credentials{Username: username, Password: password}, &pair)
	if err != nil {
		return nil, err
	}
	if pair.Access == "" || pair.Refresh == "" {
		return nil, errors.Wrapf(errors.ErrAuthenticationFailed, "[AuthAPI.ObtainToken] malformed token response")
	}
	return &pair, nil
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

type refreshResponse struct {
	Access string `json:"access"`
}

// RefreshToken exchanges a refresh token for a new access token.
func (a *AuthAPI) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	var resp refreshResponse
	err := a.client.public(ctx, http.MethodPost, "/api/auth/token/refresh/", refreshRequest{Refresh: refreshToken}, &resp)
	if err != nil {
		return "", err
	}
	if resp.Access == "" {
		return "", errors.Wrapf(errors.ErrRefreshFailed, "[AuthAPI.RefreshToken] empty access token")
	}
	return resp.Access, nil
}

// RegisterRequest is the signup payload.
type RegisterRequest struct {
	Username         string `json:"username"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	FirstName        string `json:"first_name,omitempty"`
	LastName         string `json:"last_name,omitempty"`
	OrganizationName string `json:"organization_name,omitempty"`
}

// Register creates a new account.
func (a *AuthAPI) Register(ctx context.Context, req RegisterRequest) error {
	return a.client.public(ctx, http.MethodPost, "/api/users/register/", req, nil)
}

type passwordResetRequest struct {
	Email string `json:"email"`
}

// RequestPasswordReset starts the email-based password reset flow.
func (a *AuthAPI) RequestPasswordReset(ctx context.Context, email string) error {
	return a.client.public(ctx, http.MethodPost, "/api/auth/password/reset/", passwordResetRequest{Email: email}, nil)
}

// ChangePasswordRequest carries an authenticated password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ChangePassword changes the current user's password.
func (a *AuthAPI) ChangePassword(ctx context.Context, req ChangePasswordRequest) error {
	return a.client.post(ctx, "/api/users/change-password/", req, nil)
}
