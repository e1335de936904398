package errors

import "errors"

// Sentinel errors shared by the API client, the cache and the HTTP layer.
// Everything that crosses a package boundary wraps one of these with %w, so the
// HTTP layer and the retry policy can classify failures with errors.Is.

var (
	// ErrNotFound signifies that a requested resource could not be located.
	// This is typically mapped to a 404 Not Found HTTP status.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation signifies that input data failed field-level validation,
	// either locally or as reported by the marketplace API (422).
	ErrValidation = errors.New("validation failed")

	// ErrConflict signifies that an operation conflicts with the current state
	// of a resource. Mapped to 409 Conflict.
	ErrConflict = errors.New("resource conflict")

	// ErrUnauthorized signifies a missing or expired session. Mapped to 401.
	ErrUnauthorized = errors.New("unauthenticated")

	// ErrPermission signifies that the authenticated user is not allowed to
	// perform the requested action. Mapped to 403 Forbidden.
	ErrPermission = errors.New("permission denied")

	// ErrNetwork signifies that the marketplace API could not be reached or
	// answered with a transient server error. These are the only failures the
	// cache retries.
	ErrNetwork = errors.New("network error")

	// ErrInternal signifies an unexpected error. Used to avoid leaking
	// implementation details to clients. Mapped to 500.
	ErrInternal = errors.New("internal server error")
)

// IsTransient reports whether err is worth retrying.
func IsTransient(err error) bool {
	return errors.Is(err, ErrNetwork)
}
