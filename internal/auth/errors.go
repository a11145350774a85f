package auth

import "errors"

// ErrMissingSigningSecret means the process was started without a signing
// secret. This is a configuration error and must abort startup.
var ErrMissingSigningSecret = errors.New("signing secret is not configured")

// ErrTokenMalformed is the verification failure for structurally invalid tokens
var ErrTokenMalformed = errors.New("token is malformed")

// ErrTokenExpired is the verification failure for tokens past their lifetime
var ErrTokenExpired = errors.New("token is expired")

// ErrTokenSignatureInvalid is the verification failure for a bad signature
var ErrTokenSignatureInvalid = errors.New("token signature is invalid")

// ErrIdentityNotFound is the error we return for non found identities
var ErrIdentityNotFound = errors.New("identity not found")

// ErrMismatchedHashAndPassword means the candidate password did not match
var ErrMismatchedHashAndPassword = errors.New("mismatched password and hash")

// ErrNoEmptyString rejects empty passwords before hashing
var ErrNoEmptyString = errors.New("password can not be an empty string")

// IsVerificationError reports whether err is one of the token verification
// failure kinds. All of them degrade to anonymous at the resolver; the
// distinction exists for tests and future differentiated handling.
func IsVerificationError(err error) bool {
	return errors.Is(err, ErrTokenMalformed) ||
		errors.Is(err, ErrTokenExpired) ||
		errors.Is(err, ErrTokenSignatureInvalid)
}

// IsTokenExpiredError will check for expired tokens
func IsTokenExpiredError(err error) bool {
	return errors.Is(err, ErrTokenExpired)
}

// IsMalformedError will check for structurally invalid tokens
func IsMalformedError(err error) bool {
	return errors.Is(err, ErrTokenMalformed)
}
