package security

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"tripplanner.app/pkg/errors"
)

func TestBcryptPasswordHasher(t *testing.T) {
	hasher := NewBcryptPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))

	assert.NoError(t, hasher.Compare(hash, "correct horse"))

	err = hasher.Compare(hash, "wrong horse")
	assert.True(t, errors.IsAuthError(err))

	other, err := hasher.Hash("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other)

	_, err = hasher.Hash(strings.Repeat("x", 80))
	assert.True(t, errors.IsValidationError(err))
}

func newTestTokenService(t *testing.T, now time.Time) *JWTTokenService {
	t.Helper()
	svc, err := NewJWTTokenService(JWTTokenServiceParams{Secret: "test-secret-0123456789", Issuer: "tripplanner-api", TTL: time.Hour})
	require.NoError(t, err)
	svc.now = func() time.Time { return now }
	return svc
}

func TestJWTTokenService_IssueAndVerify(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	svc := newTestTokenService(t, now)

	token, err := svc.Issue(42)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.NotEmpty(t, claims.TokenID)
	assert.True(t, claims.ExpiresAt.Equal(now.Add(time.Hour)))

	second, err := svc.Issue(42)
	require.NoError(t, err)
	assert.NotEqual(t, token, second)
}

func TestJWTTokenService_Rejects(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	svc := newTestTokenService(t, now)
	token, err := svc.Issue(7)
	require.NoError(t, err)

	t.Run("Expired", func(t *testing.T) {
		later := newTestTokenService(t, now.Add(2*time.Hour))
		_, err := later.Verify(token)
		require.True(t, errors.IsAuthError(err))
		assert.Contains(t, err.Error(), "Token has expired")
	})

	t.Run("WrongSecret", func(t *testing.T) {
		other, err := NewJWTTokenService(JWTTokenServiceParams{Secret: "another-secret-9876543210", Issuer: "tripplanner-api", TTL: time.Hour})
		require.NoError(t, err)
		_, err = other.Verify(token)
		require.True(t, errors.IsAuthError(err))
		assert.Contains(t, err.Error(), "Invalid token")
	})

	t.Run("WrongIssuer", func(t *testing.T) {
		other, err := NewJWTTokenService(JWTTokenServiceParams{Secret: "test-secret-0123456789", Issuer: "someone-else", TTL: time.Hour})
		require.NoError(t, err)
		_, err = other.Verify(token)
		assert.True(t, errors.IsAuthError(err))
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := svc.Verify("not.a.token")
		assert.True(t, errors.IsAuthError(err))
	})

	t.Run("NoneAlgorithm", func(t *testing.T) {
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
			Subject:   "7",
			Issuer:    "tripplanner-api",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.Verify(unsigned)
		assert.True(t, errors.IsAuthError(err))
	})

	t.Run("NonNumericSubject", func(t *testing.T) {
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   "admin",
			Issuer:    "tripplanner-api",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		}).SignedString([]byte("test-secret-0123456789"))
		require.NoError(t, err)

		_, err = svc.Verify(forged)
		assert.True(t, errors.IsAuthError(err))
	})
}

func TestNewJWTTokenService_RequiresSecret(t *testing.T) {
	_, err := NewJWTTokenService(JWTTokenServiceParams{})
	assert.True(t, errors.IsConfigurationError(err))
}
