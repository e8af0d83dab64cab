package identsvc

import "errors"

var (
	// ErrSessionInvalid is returned when the session credential does not
	// resolve to an authenticated user.
	ErrSessionInvalid = errors.New("identsvc: session invalid or expired")

	// ErrUserNotFound is returned when the user id does not exist.
	ErrUserNotFound = errors.New("identsvc: user not found")

	// ErrInvalidResponse is returned when the identity service answers
	// with an unexpected payload or status code.
	ErrInvalidResponse = errors.New("identsvc: invalid response")

	// ErrInternal is returned on transport-level failures.
	ErrInternal = errors.New("identsvc: internal error")
)
