package jwt

import (
	"errors"
	"fmt"
	"time"
)

const (
	MinSecretKeyLen = 32
	DefaultTTL      = 2 * time.Hour
)

var (
	ErrWeakSecret            = errors.New("jwt: secret key too short")
	ErrTokenExpired          = errors.New("jwt: token expired")
	ErrTokenInvalidSignature = errors.New("jwt: invalid signature")
	ErrTokenMalformed        = errors.New("jwt: malformed token")
	ErrMissingSubject        = errors.New("jwt: missing subject")
)

// Manager signs and verifies HS256 access tokens.
type Manager interface {
	GenerateToken(userID, email, role string) (string, error)
	// Verify returns the claims of a valid token. Failures are classified
	// as ErrTokenExpired, ErrTokenInvalidSignature or ErrTokenMalformed.
	Verify(token string) (Claims, error)
}

func New(cfg Config) (Manager, error) {
	if len(cfg.SecretKey) < MinSecretKeyLen {
		return nil, fmt.Errorf("%w: need %d characters, got %d", ErrWeakSecret, MinSecretKeyLen, len(cfg.SecretKey))
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &managerImpl{
		secretKey: []byte(cfg.SecretKey),
		issuer:    cfg.Issuer,
		ttl:       ttl,
		now:       time.Now,
	}, nil
}
