package session

// Storage keys for the persisted session fields. These mirror the three
// values the web client kept in browser storage.
const (
	KeyAccessToken  = "token"
	KeyRefreshToken = "refreshToken"
	KeyOrganization = "currentOrganization"
)

// Store is the persisted-state collaborator: a small synchronous
// key-value store for the token pair and the cached organization.
// Absence of a key is reported as an empty value, not an error.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}
