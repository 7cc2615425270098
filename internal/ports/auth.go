package ports

import "time"

// PasswordHasher derives and verifies salted one-way password hashes
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenClaims is the identity carried by an access token
type TokenClaims struct {
	UserID    uint
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and verifies bearer access tokens
type TokenService interface {
	Issue(userID uint) (string, error)
	Verify(token string) (*TokenClaims, error)
}
