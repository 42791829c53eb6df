package session

import (
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// Claims holds the identity payload embedded in a HomeManager access
// token. The client never verifies signatures (the backend does); it
// only reads claims for expiry checks and identity hints.
type Claims struct {
	UserID           int64
	Username         string
	Email            string
	FirstName        string
	LastName         string
	IsStaff          bool
	IsSuperuser      bool
	OrganizationID   int64
	OrganizationName string
	OrganizationSlug string
	ExpiresAt        time.Time
}

// DecodeClaims parses a raw bearer token without verifying its
// signature and extracts the claims the client cares about.
func DecodeClaims(rawToken string) (*Claims, error) {
	parsed, _, err := jwtlib.NewParser().ParseUnverified(rawToken, jwtlib.MapClaims{})
	if err != nil {
		return nil, err
	}

	mapClaims, ok := parsed.Claims.(jwtlib.MapClaims)
	if !ok {
		return nil, jwtlib.ErrTokenMalformed
	}

	claims := &Claims{}
	if userID, ok := mapClaims["user_id"].(float64); ok {
		claims.UserID = int64(userID)
	}
	claims.Username, _ = mapClaims["username"].(string)
	claims.Email, _ = mapClaims["email"].(string)
	claims.FirstName, _ = mapClaims["first_name"].(string)
	claims.LastName, _ = mapClaims["last_name"].(string)
	claims.IsStaff, _ = mapClaims["is_staff"].(bool)
	claims.IsSuperuser, _ = mapClaims["is_superuser"].(bool)
	if orgID, ok := mapClaims["organization_id"].(float64); ok {
		claims.OrganizationID = int64(orgID)
	}
	claims.OrganizationName, _ = mapClaims["organization_name"].(string)
	claims.OrganizationSlug, _ = mapClaims["organization_slug"].(string)

	exp, ok := mapClaims["exp"].(float64)
	if !ok {
		return nil, jwtlib.ErrTokenRequiredClaimMissing
	}
	claims.ExpiresAt = time.Unix(int64(exp), 0)

	return claims, nil
}

// IsExpired reports whether a raw token has expired. A token that fails
// to decode, or carries no expiry claim, is treated as expired.
func IsExpired(rawToken string) bool {
	if rawToken == "" {
		return true
	}
	claims, err := DecodeClaims(rawToken)
	if err != nil {
		return true
	}
	return !claims.ExpiresAt.After(NowTimeFunc())
}

// ExpiresAt returns the expiry time of a raw token, or nil if the token
// cannot be decoded.
func ExpiresAt(rawToken string) *time.Time {
	claims, err := DecodeClaims(rawToken)
	if err != nil {
		return nil
	}
	return &claims.ExpiresAt
}
