package catalog

import "errors"

// The sentinel errors below classify every failure that can cross the service boundary.
// Storage implementations join them with the underlying cause, e.g.
// errors.Join(ErrConflict, driverErr), so callers can test with errors.Is.
var (
	// ErrNotFound is returned when no record matches the given id or username.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a uniqueness constraint is violated (book ISBN, staff username).
	ErrConflict = errors.New("uniqueness constraint violated")

	// ErrPermissionDenied is returned when a protected record is targeted, e.g. deleting a superuser.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrInvalidCredentials is returned by an Authenticator for unknown users, inactive users
	// and wrong passwords alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInsufficientPrivilege is returned when a valid account is neither staff nor superuser.
	ErrInsufficientPrivilege = errors.New("insufficient privilege")

	// ErrInternal marks unexpected storage or runtime failures.
	ErrInternal = errors.New("internal failure")

	// ErrNilDatabaseConnection is returned when a storage engine is created without a connection.
	ErrNilDatabaseConnection = errors.New("database connection must not be nil")
)
