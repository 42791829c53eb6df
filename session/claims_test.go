package session_test

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/homemanager/hmctl/session"
)

const signingKey = "test-signing-key"

func makeToken(t *testing.T, claims jwtlib.MapClaims) string {
	t.Helper()
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte(signingKey))
	require.NoError(t, err)
	return token
}

func TestDecodeClaims(t *testing.T) {
	raw := makeToken(t, jwtlib.MapClaims{
		"user_id":           float64(42),
		"username":          "alice",
		"email":             "alice@example.com",
		"first_name":        "Alice",
		"last_name":         "Anderson",
		"is_staff":          true,
		"organization_id":   float64(7),
		"organization_name": "Sunrise Properties",
		"organization_slug": "sunrise-properties",
		"exp":               float64(time.Now().Add(time.Hour).Unix()),
	})

	claims, err := session.DecodeClaims(raw)
	require.NoError(t, err)
	require.Equal(t, int64(42), claims.UserID)
	require.Equal(t, "alice", claims.Username)
	require.Equal(t, "alice@example.com", claims.Email)
	require.Equal(t, "Alice", claims.FirstName)
	require.Equal(t, "Anderson", claims.LastName)
	require.True(t, claims.IsStaff)
	require.False(t, claims.IsSuperuser)
	require.Equal(t, int64(7), claims.OrganizationID)
	require.Equal(t, "sunrise-properties", claims.OrganizationSlug)
	require.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second)
}

func TestDecodeClaimsRejectsMalformedToken(t *testing.T) {
	_, err := session.DecodeClaims("not-a-token")
	require.Error(t, err)
}

func TestDecodeClaimsRequiresExpiry(t *testing.T) {
	raw := makeToken(t, jwtlib.MapClaims{"user_id": float64(1)})
	_, err := session.DecodeClaims(raw)
	require.Error(t, err)
}

func TestIsExpired(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	session.NowTimeFunc = func() time.Time { return now }
	defer func() { session.NowTimeFunc = time.Now }()

	valid := makeToken(t, jwtlib.MapClaims{"exp": float64(now.Add(time.Minute).Unix())})
	expired := makeToken(t, jwtlib.MapClaims{"exp": float64(now.Add(-time.Minute).Unix())})
	atBoundary := makeToken(t, jwtlib.MapClaims{"exp": float64(now.Unix())})

	require.False(t, session.IsExpired(valid))
	require.True(t, session.IsExpired(expired))
	require.True(t, session.IsExpired(atBoundary))
}

func TestIsExpiredFailsClosed(t *testing.T) {
	require.True(t, session.IsExpired(""))
	require.True(t, session.IsExpired("garbage"))

	noExpiry := makeToken(t, jwtlib.MapClaims{"user_id": float64(1)})
	require.True(t, session.IsExpired(noExpiry))
}

func TestExpiresAt(t *testing.T) {
	expiry := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	raw := makeToken(t, jwtlib.MapClaims{"exp": float64(expiry.Unix())})

	got := session.ExpiresAt(raw)
	require.NotNil(t, got)
	require.Equal(t, expiry.Unix(), got.Unix())

	require.Nil(t, session.ExpiresAt("garbage"))
}
