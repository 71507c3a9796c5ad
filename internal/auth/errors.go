package auth

import "errors"

// Business-rule failures the boundary turns into typed client responses.
// Anything else coming out of the manager is an infrastructure failure.
var (
	// ErrDuplicateEmail means the registration email is already taken.
	ErrDuplicateEmail = errors.New("email already in use")

	// ErrInvalidCredentials covers both "no such user" and "wrong
	// password" so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrMissingRefreshToken is returned before any store access when
	// the refresh plaintext is absent.
	ErrMissingRefreshToken = errors.New("refresh token missing")

	// ErrInvalidRefreshToken means no stored, unexpired record matched.
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")

	// ErrUnauthenticated means the access token failed signature or
	// expiry verification.
	ErrUnauthenticated = errors.New("unauthenticated")
)
