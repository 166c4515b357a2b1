package ports

// TokenManager issues and verifies bearer tokens carrying a user identity.
type TokenManager interface {
	Issue(userID string) (string, error)
	Verify(token string) (string, error)
}
