package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Config struct {
	SecretKey string
	Issuer    string
	TTL       time.Duration
}

// Claims is the access token payload. Subject carries the user id.
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

type managerImpl struct {
	secretKey []byte
	issuer    string
	ttl       time.Duration
	now       func() time.Time
}
