package session_test

import (
	"context"
	"sync"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/homemanager/hmctl/internal/errors"
	"github.com/homemanager/hmctl/model"
	"github.com/homemanager/hmctl/session"
	"github.com/homemanager/hmctl/session/storefakes"
)

var _ session.AuthClient = (*fakeAuthClient)(nil)

type fakeAuthClient struct {
	lock         sync.Mutex
	pair         *session.TokenPair
	obtainErr    error
	refreshed    string
	refreshErr   error
	refreshCalls int
}

func (f *fakeAuthClient) ObtainToken(_ context.Context, username, password string) (*session.TokenPair, error) {
	if f.obtainErr != nil {
		return nil, f.obtainErr
	}
	return f.pair, nil
}

func (f *fakeAuthClient) RefreshToken(_ context.Context, refreshToken string) (string, error) {
	f.lock.Lock()
	f.refreshCalls++
	f.lock.Unlock()
	if f.refreshErr != nil {
		return "", f.refreshErr
	}
	return f.refreshed, nil
}

func (f *fakeAuthClient) calls() int {
	f.lock.Lock()
	defer f.lock.Unlock()
	return f.refreshCalls
}

var _ session.ProfileClient = (*fakeProfileClient)(nil)

type fakeProfileClient struct {
	user *model.User
	err  error
}

func (f *fakeProfileClient) CurrentUser(_ context.Context) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

type managerFixture struct {
	store   *storefakes.FakeStore
	auth    *fakeAuthClient
	profile *fakeProfileClient
	manager *session.Manager
}

func newFixture(t *testing.T) *managerFixture {
	t.Helper()
	fixture := &managerFixture{
		store: storefakes.NewFakeStore(),
		auth:  &fakeAuthClient{},
		profile: &fakeProfileClient{user: &model.User{
			ID:               1,
			Username:         "alice",
			Email:            "alice@example.com",
			OrganizationID:   7,
			OrganizationName: "Sunrise Properties",
			OrganizationSlug: "sunrise-properties",
		}},
	}
	manager, err := session.NewManager(fixture.store, fixture.auth, fixture.profile, zerolog.Nop())
	require.NoError(t, err)
	fixture.manager = manager
	return fixture
}

func tokenExpiring(t *testing.T, in time.Duration) string {
	t.Helper()
	return makeToken(t, jwtlib.MapClaims{
		"user_id":  float64(1),
		"username": "alice",
		"exp":      float64(time.Now().Add(in).Unix()),
	})
}

func TestNewManagerRequiresCollaborators(t *testing.T) {
	store := storefakes.NewFakeStore()
	auth := &fakeAuthClient{}
	profile := &fakeProfileClient{}

	_, err := session.NewManager(nil, auth, profile, zerolog.Nop())
	require.Error(t, err)
	_, err = session.NewManager(store, nil, profile, zerolog.Nop())
	require.Error(t, err)
	_, err = session.NewManager(store, auth, nil, zerolog.Nop())
	require.Error(t, err)
}

func TestLoginStoresTokensAndProfile(t *testing.T) {
	fixture := newFixture(t)
	access := tokenExpiring(t, time.Hour)
	fixture.auth.pair = &session.TokenPair{Access: access, Refresh: "refresh-1"}

	require.NoError(t, fixture.manager.Login(context.Background(), "alice", "secret"))

	require.True(t, fixture.manager.IsAuthenticated())
	require.Equal(t, access, fixture.manager.AccessToken())

	stored, _ := fixture.store.Get(session.KeyAccessToken)
	require.Equal(t, access, stored)
	storedRefresh, _ := fixture.store.Get(session.KeyRefreshToken)
	require.Equal(t, "refresh-1", storedRefresh)

	user := fixture.manager.User()
	require.NotNil(t, user)
	require.Equal(t, "alice", user.Username)

	organization := fixture.manager.Organization()
	require.NotNil(t, organization)
	require.Equal(t, "sunrise-properties", organization.Slug)
	require.Equal(t, "sunrise-properties", fixture.manager.OrganizationSlug())
}

func TestLoginFailureWrapsAuthenticationError(t *testing.T) {
	fixture := newFixture(t)
	fixture.auth.obtainErr = errors.ErrValidation

	err := fixture.manager.Login(context.Background(), "alice", "wrong")
	require.Error(t, err)
	require.True(t, errors.Is(err, errors.ErrAuthenticationFailed))
	require.False(t, fixture.manager.IsAuthenticated())
}

func TestLoginSucceedsWhenProfileFetchFails(t *testing.T) {
	fixture := newFixture(t)
	fixture.auth.pair = &session.TokenPair{Access: tokenExpiring(t, time.Hour), Refresh: "refresh-1"}
	fixture.profile.err = errors.ErrServer

	require.NoError(t, fixture.manager.Login(context.Background(), "alice", "secret"))
	require.True(t, fixture.manager.IsAuthenticated())
	require.Nil(t, fixture.manager.User())
}

func TestLogoutClearsEverything(t *testing.T) {
	fixture := newFixture(t)
	fixture.auth.pair = &session.TokenPair{Access: tokenExpiring(t, time.Hour), Refresh: "refresh-1"}
	require.NoError(t, fixture.manager.Login(context.Background(), "alice", "secret"))

	fixture.manager.Logout()

	require.False(t, fixture.manager.IsAuthenticated())
	require.Empty(t, fixture.manager.AccessToken())
	require.Nil(t, fixture.manager.User())
	require.Nil(t, fixture.manager.Organization())
	require.Zero(t, fixture.store.Len())
}

func TestInitializeRestoresSession(t *testing.T) {
	fixture := newFixture(t)
	access := tokenExpiring(t, time.Hour)
	require.NoError(t, fixture.store.Set(session.KeyAccessToken, access))
	require.NoError(t, fixture.store.Set(session.KeyRefreshToken, "refresh-1"))

	fixture.manager.Initialize(context.Background())

	require.True(t, fixture.manager.IsAuthenticated())
	require.NotNil(t, fixture.manager.User())
}

func TestInitializeWithEmptyStoreStaysUnauthenticated(t *testing.T) {
	fixture := newFixture(t)
	fixture.manager.Initialize(context.Background())
	require.False(t, fixture.manager.IsAuthenticated())
	require.Nil(t, fixture.manager.User())
}

func TestInitializeRefreshesExpiredToken(t *testing.T) {
	fixture := newFixture(t)
	fresh := tokenExpiring(t, time.Hour)
	require.NoError(t, fixture.store.Set(session.KeyAccessToken, tokenExpiring(t, -time.Minute)))
	require.NoError(t, fixture.store.Set(session.KeyRefreshToken, "refresh-1"))
	fixture.auth.refreshed = fresh

	fixture.manager.Initialize(context.Background())

	require.True(t, fixture.manager.IsAuthenticated())
	require.Equal(t, fresh, fixture.manager.AccessToken())
	stored, _ := fixture.store.Get(session.KeyAccessToken)
	require.Equal(t, fresh, stored)
}

func TestInitializeLogsOutWhenProfileFetchFails(t *testing.T) {
	fixture := newFixture(t)
	require.NoError(t, fixture.store.Set(session.KeyAccessToken, tokenExpiring(t, time.Hour)))
	fixture.profile.err = errors.ErrServer

	fixture.manager.Initialize(context.Background())

	require.False(t, fixture.manager.IsAuthenticated())
	require.Zero(t, fixture.store.Len())
}

func TestRefreshFailureClearsSession(t *testing.T) {
	fixture := newFixture(t)
	fixture.auth.pair = &session.TokenPair{Access: tokenExpiring(t, -time.Minute), Refresh: "refresh-1"}
	fixture.auth.refreshErr = errors.ErrValidation
	require.NoError(t, fixture.manager.Login(context.Background(), "alice", "secret"))

	err := fixture.manager.Refresh(context.Background())
	require.Error(t, err)
	require.True(t, errors.Is(err, errors.ErrRefreshFailed))
	require.False(t, fixture.manager.IsAuthenticated())
	require.Zero(t, fixture.store.Len())
}

func TestRefreshWithoutRefreshTokenClearsSession(t *testing.T) {
	fixture := newFixture(t)

	err := fixture.manager.Refresh(context.Background())
	require.Error(t, err)
	require.True(t, errors.Is(err, errors.ErrRefreshFailed))
}

func TestRefreshSkipsWhenTokenStillValid(t *testing.T) {
	fixture := newFixture(t)
	fixture.auth.pair = &session.TokenPair{Access: tokenExpiring(t, time.Hour), Refresh: "refresh-1"}
	require.NoError(t, fixture.manager.Login(context.Background(), "alice", "secret"))

	require.NoError(t, fixture.manager.Refresh(context.Background()))
	require.Zero(t, fixture.auth.calls())
}

func TestConcurrentRefreshesCollapse(t *testing.T) {
	fixture := newFixture(t)
	fixture.auth.pair = &session.TokenPair{Access: tokenExpiring(t, -time.Minute), Refresh: "refresh-1"}
	fixture.auth.refreshed = tokenExpiring(t, time.Hour)
	require.NoError(t, fixture.manager.Login(context.Background(), "alice", "secret"))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = fixture.manager.Refresh(context.Background())
		}()
	}
	wg.Wait()

	require.Equal(t, 1, fixture.auth.calls())
	require.True(t, fixture.manager.IsAuthenticated())
}

func TestHandleUnauthorizedLogsOut(t *testing.T) {
	fixture := newFixture(t)
	fixture.auth.pair = &session.TokenPair{Access: tokenExpiring(t, time.Hour), Refresh: "refresh-1"}
	require.NoError(t, fixture.manager.Login(context.Background(), "alice", "secret"))

	fixture.manager.HandleUnauthorized()
	require.False(t, fixture.manager.IsAuthenticated())
}

func TestClaimsReflectCurrentToken(t *testing.T) {
	fixture := newFixture(t)
	require.Nil(t, fixture.manager.Claims())

	fixture.auth.pair = &session.TokenPair{Access: tokenExpiring(t, time.Hour), Refresh: "refresh-1"}
	require.NoError(t, fixture.manager.Login(context.Background(), "alice", "secret"))

	claims := fixture.manager.Claims()
	require.NotNil(t, claims)
	require.Equal(t, "alice", claims.Username)
}

func TestUpdateUserMergesPatch(t *testing.T) {
	fixture := newFixture(t)
	fixture.auth.pair = &session.TokenPair{Access: tokenExpiring(t, time.Hour), Refresh: "refresh-1"}
	require.NoError(t, fixture.manager.Login(context.Background(), "alice", "secret"))

	email := "new@example.com"
	fixture.manager.UpdateUser(session.UserPatch{Email: &email})

	user := fixture.manager.User()
	require.NotNil(t, user)
	require.Equal(t, "new@example.com", user.Email)
	require.Equal(t, "alice", user.Username)
}

func TestUpdateUserWithoutProfileIsNoop(t *testing.T) {
	fixture := newFixture(t)
	email := "new@example.com"
	fixture.manager.UpdateUser(session.UserPatch{Email: &email})
	require.Nil(t, fixture.manager.User())
}
