package credential

import "errors"

// Reasons carried by AuthError.
const (
	ReasonMissing          = "missing"
	ReasonExpired          = "expired"
	ReasonInvalidSignature = "invalid_signature"
	ReasonUnknown          = "unknown"
)

// PublicReason is the only reason streaming callers ever see.
const PublicReason = "unauthorized"

// AuthError is returned when a credential cannot be resolved.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return "credential: " + e.Reason
}

// Public collapses the reason to a single generic value.
func (e *AuthError) Public() string {
	return PublicReason
}

func NewAuthError(reason string) *AuthError {
	return &AuthError{Reason: reason}
}

// ReasonOf returns the AuthError reason of err, or ReasonUnknown.
func ReasonOf(err error) string {
	var ae *AuthError
	if errors.As(err, &ae) {
		return ae.Reason
	}
	return ReasonUnknown
}
