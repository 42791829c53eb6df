// Package api is the HTTP client for the HomeManager REST backend. It
// owns request construction (bearer credentials, organization scoping,
// request IDs), JSON codec, and the mapping from HTTP statuses to the
// client's error taxonomy. It never owns table state: list endpoints
// return plain slices for the views layer to derive from.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/homemanager/hmctl/internal/errors"
)

// TokenSource supplies the bearer token and organization scope for
// outgoing requests, and receives the 401 signal when the backend
// rejects the credentials. *session.Manager satisfies it.
type TokenSource interface {
	AccessToken() string
	OrganizationSlug() string
	HandleUnauthorized()
}

// Client is the shared HTTP client all endpoint groups hang off.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     zerolog.Logger

	Auth          *AuthAPI
	Users         *UsersAPI
	Properties    *PropertiesAPI
	Tenants       *TenantsAPI
	Payments      *PaymentsAPI
	Maintenance   *MaintenanceAPI
	Notices       *NoticesAPI
	Organizations *OrganizationsAPI
	Dashboard     *DashboardAPI
}

// NewClient creates a client for the given base URL. tokens may be nil
// for a purely unauthenticated client (login flows construct the
// session manager after the client).
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, log zerolog.Logger) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}
	c.Auth = &AuthAPI{client: c}
	c.Users = &UsersAPI{client: c}
	c.Properties = &PropertiesAPI{client: c}
	c.Tenants = &TenantsAPI{client: c}
	c.Payments = &PaymentsAPI{client: c}
	c.Maintenance = &MaintenanceAPI{client: c}
	c.Notices = &NoticesAPI{client: c}
	c.Organizations = &OrganizationsAPI{client: c}
	c.Dashboard = &DashboardAPI{client: c}
	return c
}

// SetTokenSource wires the session manager in after construction.
// The manager needs the client's auth endpoints, so it is built second.
func (c *Client) SetTokenSource(tokens TokenSource) {
	c.tokens = tokens
}

// get issues an authenticated GET with optional query parameters.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out, true)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out, true)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out, true)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out, true)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil, true)
}

// public issues a request without credentials, used by the token
// obtain, refresh, register, and password-reset endpoints.
func (c *Client) public(ctx context.Context, method, path string, body, out any) error {
	return c.do(ctx, method, path, nil, body, out, false)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any, authenticated bool) error {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrapf(err, "[Client.do] marshal request body")
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return errors.Wrapf(err, "[Client.do] build request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if authenticated && c.tokens != nil {
		if token := c.tokens.AccessToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		if slug := c.tokens.OrganizationSlug(); slug != "" {
			req.Header.Set("X-Organization", slug)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "[Client.do] %s %s", method, path)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("request completed")

	if resp.StatusCode >= 400 {
		apiErr := decodeAPIError(resp)
		if resp.StatusCode == http.StatusUnauthorized && authenticated && c.tokens != nil {
			c.tokens.HandleUnauthorized()
		}
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "[Client.do] decode response")
	}
	return nil
}

// idPath formats a detail-route path like /api/tenants/tenants/42/.
func idPath(collection string, id int64) string {
	return fmt.Sprintf("%s%d/", collection, id)
}
