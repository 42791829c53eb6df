// Package session owns the authenticated-session lifecycle: the bearer
// token pair, its decoded claims, the cached user profile and
// organization, and the persisted copies of all three. One Manager is
// constructed per process and injected into anything that needs
// authentication state.
package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/homemanager/hmctl/internal/errors"
	"github.com/homemanager/hmctl/model"
)

// TokenPair is the access/refresh pair returned by the auth collaborator.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// AuthClient is the external auth collaborator: credential exchange and
// refresh-token exchange.
type AuthClient interface {
	ObtainToken(ctx context.Context, username, password string) (*TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, error)
}

// ProfileClient is the external profile collaborator.
type ProfileClient interface {
	CurrentUser(ctx context.Context) (*model.User, error)
}

// Manager holds the process-wide session. All exported methods are safe
// for concurrent use; mutation is last-writer-wins except that writes
// from stale async completions are discarded via an epoch check.
type Manager struct {
	store   Store
	auth    AuthClient
	profile ProfileClient
	log     zerolog.Logger

	lock         sync.RWMutex
	accessToken  string
	refreshToken string
	user         *model.User
	organization *model.Organization
	epoch        uint64

	// refreshLock serializes Refresh so concurrent expiry detections
	// collapse onto a single token exchange.
	refreshLock sync.Mutex
}

// NewManager initializes a session Manager with its required
// collaborators.
func NewManager(store Store, auth AuthClient, profile ProfileClient, log zerolog.Logger) (*Manager, error) {
	if store == nil {
		return nil, errors.Wrapf(errors.ErrInternal, "[NewManager] store is required")
	}
	if auth == nil {
		return nil, errors.Wrapf(errors.ErrInternal, "[NewManager] auth client is required")
	}
	if profile == nil {
		return nil, errors.Wrapf(errors.ErrInternal, "[NewManager] profile client is required")
	}

	return &Manager{
		store:   store,
		auth:    auth,
		profile: profile,
		log:     log,
	}, nil
}

// Initialize restores a persisted session at startup. It never returns
// an error: every failure path degrades to an unauthenticated session,
// since this runs before any error surface exists.
func (m *Manager) Initialize(ctx context.Context) {
	accessToken, err := m.store.Get(KeyAccessToken)
	if err != nil || accessToken == "" {
		return
	}
	refreshToken, _ := m.store.Get(KeyRefreshToken)

	m.lock.Lock()
	m.accessToken = accessToken
	m.refreshToken = refreshToken
	m.loadCachedOrganization()
	epoch := m.epoch
	m.lock.Unlock()

	if IsExpired(accessToken) {
		if err := m.Refresh(ctx); err != nil {
			m.log.Debug().Err(err).Msg("session restore: refresh failed")
			return
		}
	}

	if err := m.fetchProfile(ctx, epoch); err != nil {
		m.log.Debug().Err(err).Msg("session restore: profile fetch failed")
		m.Logout()
	}
}

// Login exchanges credentials for a token pair, persists it, and
// populates the cached profile. A failed profile fetch after a
// successful token exchange is logged but not fatal. The returned error
// wraps ErrAuthenticationFailed and carries the collaborator's payload.
func (m *Manager) Login(ctx context.Context, username, password string) error {
	pair, err := m.auth.ObtainToken(ctx, username, password)
	if err != nil {
		return errors.Wrapf(err, "%w", errors.ErrAuthenticationFailed)
	}

	if err := m.store.Set(KeyAccessToken, pair.Access); err != nil {
		return errors.Wrapf(err, "[Manager.Login] persist access token")
	}
	if err := m.store.Set(KeyRefreshToken, pair.Refresh); err != nil {
		return errors.Wrapf(err, "[Manager.Login] persist refresh token")
	}

	m.lock.Lock()
	m.accessToken = pair.Access
	m.refreshToken = pair.Refresh
	m.user = nil
	m.organization = nil
	m.epoch++
	epoch := m.epoch
	m.lock.Unlock()

	if err := m.fetchProfile(ctx, epoch); err != nil {
		m.log.Warn().Err(err).Msg("could not fetch profile after login")
	}
	return nil
}

// Refresh exchanges the stored refresh token for a new access token.
// Failure is equivalent to logout: the session is cleared and
// ErrRefreshFailed returned. Concurrent callers are serialized; callers
// that waited behind a successful refresh return without a second
// exchange.
func (m *Manager) Refresh(ctx context.Context) error {
	m.refreshLock.Lock()
	defer m.refreshLock.Unlock()

	m.lock.RLock()
	accessToken := m.accessToken
	refreshToken := m.refreshToken
	epoch := m.epoch
	m.lock.RUnlock()

	// Another caller may have refreshed while we waited for the lock.
	if accessToken != "" && !IsExpired(accessToken) {
		return nil
	}

	if refreshToken == "" {
		m.Logout()
		return errors.Wrapf(errors.ErrRefreshFailed, "[Manager.Refresh] no refresh token")
	}

	newAccess, err := m.auth.RefreshToken(ctx, refreshToken)
	if err != nil {
		m.Logout()
		return errors.Wrapf(err, "%w", errors.ErrRefreshFailed)
	}

	m.lock.Lock()
	if m.epoch != epoch {
		// Session was replaced or cleared while the exchange was in
		// flight; discard the stale result.
		m.lock.Unlock()
		return nil
	}
	m.accessToken = newAccess
	m.lock.Unlock()

	if err := m.store.Set(KeyAccessToken, newAccess); err != nil {
		return errors.Wrapf(err, "[Manager.Refresh] persist access token")
	}
	return nil
}

// Logout synchronously clears all in-memory and persisted session state.
func (m *Manager) Logout() {
	m.lock.Lock()
	m.accessToken = ""
	m.refreshToken = ""
	m.user = nil
	m.organization = nil
	m.epoch++
	m.lock.Unlock()

	_ = m.store.Delete(KeyAccessToken)
	_ = m.store.Delete(KeyRefreshToken)
	_ = m.store.Delete(KeyOrganization)
}

// IsAuthenticated reports whether the session holds a decodable,
// unexpired access token.
func (m *Manager) IsAuthenticated() bool {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.accessToken != "" && !IsExpired(m.accessToken)
}

// AccessToken returns the current bearer token, empty when
// unauthenticated.
func (m *Manager) AccessToken() string {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.accessToken
}

// Claims returns the decoded claims of the current access token, or nil
// when there is no decodable token.
func (m *Manager) Claims() *Claims {
	m.lock.RLock()
	defer m.lock.RUnlock()
	if m.accessToken == "" {
		return nil
	}
	claims, err := DecodeClaims(m.accessToken)
	if err != nil {
		return nil
	}
	return claims
}

// User returns the cached profile, nil when not yet fetched.
func (m *Manager) User() *model.User {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.user
}

// Organization returns the cached organization summary, nil when the
// user has none.
func (m *Manager) Organization() *model.Organization {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.organization
}

// OrganizationSlug returns the cached organization slug, empty when
// there is none. Used by the API client to scope requests.
func (m *Manager) OrganizationSlug() string {
	m.lock.RLock()
	defer m.lock.RUnlock()
	if m.organization == nil {
		return ""
	}
	return m.organization.Slug
}

// UserPatch is a merge-patch for the cached user profile.
type UserPatch struct {
	Email     *string
	FirstName *string
	LastName  *string
}

// UpdateUser merge-patches the cached profile without a network call,
// used after profile-edit flows. No-op when there is no cached user.
func (m *Manager) UpdateUser(patch UserPatch) {
	m.lock.Lock()
	defer m.lock.Unlock()
	if m.user == nil {
		return
	}
	if patch.Email != nil {
		m.user.Email = *patch.Email
	}
	if patch.FirstName != nil {
		m.user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		m.user.LastName = *patch.LastName
	}
}

// OrganizationPatch is a merge-patch for the cached organization.
type OrganizationPatch struct {
	Name        *string
	Description *string
	Email       *string
	Phone       *string
}

// UpdateOrganization merge-patches the cached organization without a
// network call. No-op when there is no cached organization.
func (m *Manager) UpdateOrganization(patch OrganizationPatch) {
	m.lock.Lock()
	defer m.lock.Unlock()
	if m.organization == nil {
		return
	}
	if patch.Name != nil {
		m.organization.Name = *patch.Name
	}
	if patch.Description != nil {
		m.organization.Description = *patch.Description
	}
	if patch.Email != nil {
		m.organization.Email = *patch.Email
	}
	if patch.Phone != nil {
		m.organization.Phone = *patch.Phone
	}
}

// HandleUnauthorized is the API client's 401 hook: the backend rejected
// the bearer token, so the session is no longer valid.
func (m *Manager) HandleUnauthorized() {
	m.Logout()
}

// fetchProfile populates the cached user and organization from the
// profile collaborator. The epoch captured before the call guards
// against a stale completion writing into a newer session.
func (m *Manager) fetchProfile(ctx context.Context, epoch uint64) error {
	user, err := m.profile.CurrentUser(ctx)
	if err != nil {
		return errors.Wrapf(err, "%w", errors.ErrProfileFetchFailed)
	}

	var organization *model.Organization
	if user.OrganizationName != "" {
		organization = &model.Organization{
			ID:   user.OrganizationID,
			Name: user.OrganizationName,
			Slug: user.OrganizationSlug,
		}
	}

	m.lock.Lock()
	if m.epoch != epoch {
		m.lock.Unlock()
		return nil
	}
	m.user = user
	m.organization = organization
	m.lock.Unlock()

	if organization != nil {
		data, err := json.Marshal(organization)
		if err == nil {
			_ = m.store.Set(KeyOrganization, string(data))
		}
	}
	return nil
}

// loadCachedOrganization restores the persisted organization summary.
// Callers must hold m.lock.
func (m *Manager) loadCachedOrganization() {
	raw, err := m.store.Get(KeyOrganization)
	if err != nil || raw == "" {
		return
	}
	var organization model.Organization
	if err := json.Unmarshal([]byte(raw), &organization); err != nil {
		return
	}
	m.organization = &organization
}
