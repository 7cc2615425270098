package security

import (
	stderrors "errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"tripplanner.app/internal/ports"
	"tripplanner.app/pkg/errors"
)

// JWTTokenService issues and verifies HS256 access tokens
type JWTTokenService struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// JWTTokenServiceParams holds parameters for creating the token service
type JWTTokenServiceParams struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// NewJWTTokenService creates a token service; the secret must not be empty
func NewJWTTokenService(params JWTTokenServiceParams) (*JWTTokenService, error) {
	if params.Secret == "" {
		return nil, errors.NewConfigurationError("JWT secret not configured", nil)
	}
	ttl := params.TTL
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &JWTTokenService{
		secret: []byte(params.Secret),
		issuer: params.Issuer,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

func (s *JWTTokenService) Issue(userID uint) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		Issuer:    s.issuer,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(errors.ErrorTypeUnknown, "failed to sign token", err)
	}
	return signed, nil
}

// Verify checks signature, algorithm, issuer and expiry
func (s *JWTTokenService) Verify(token string) (*ports.TokenClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		if stderrors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.NewAuthError("Token has expired")
		}
		return nil, errors.Wrap(errors.ErrorTypeAuth, "Invalid token", err)
	}
	if !parsed.Valid {
		return nil, errors.NewAuthError("Invalid token")
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 32)
	if err != nil || userID == 0 {
		return nil, errors.NewAuthError("Invalid token")
	}

	out := &ports.TokenClaims{UserID: uint(userID), TokenID: claims.ID}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
