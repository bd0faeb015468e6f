package catalog

import (
	"context"
	"iter"
)

// Seq is a lazy, finite, non-restartable sequence of records pulled from a storage cursor.
//
// Each element is either a record or the error that ended the sequence. Breaking out of
// the range loop releases the underlying cursor without reading the remaining rows.
type Seq[T any] = iter.Seq2[T, error]

// BookRepository defines the persistence operations for books.
type BookRepository interface {
	// Create stores a new book. It returns ErrConflict if the ISBN is already taken.
	Create(ctx context.Context, book Book) error

	// Get returns the book with the given id or ErrNotFound.
	Get(ctx context.Context, id string) (Book, error)

	// Update overwrites title, author, isbn and both copy counters of the book.
	// It returns ErrNotFound for an unknown id and ErrConflict for a taken ISBN.
	Update(ctx context.Context, id string, update BookUpdate) error

	// Delete removes the book or returns ErrNotFound.
	Delete(ctx context.Context, id string) error

	// Search yields the books whose title or author contains query, case-insensitively,
	// ordered by title ascending. An empty query matches every book.
	Search(ctx context.Context, query string) Seq[Book]
}

// StaffAccountRepository defines the persistence operations for staff accounts.
type StaffAccountRepository interface {
	// Create stores a new account. It returns ErrConflict if the username is already taken.
	Create(ctx context.Context, account StaffAccount) error

	// Get returns the account with the given id or ErrNotFound.
	Get(ctx context.Context, id string) (StaffAccount, error)

	// GetByUsername returns the account with the given username or ErrNotFound.
	GetByUsername(ctx context.Context, username string) (StaffAccount, error)

	// ListPrivileged yields all accounts for which IsPrivileged holds, ordered by id ascending.
	ListPrivileged(ctx context.Context) Seq[StaffAccount]

	// DeleteUnprotected deletes the account unless IsProtected holds for it.
	// It reports false without error when no unprotected account with that id exists.
	DeleteUnprotected(ctx context.Context, id string) (bool, error)
}

// ClientRepository defines the persistence operations for library patrons.
type ClientRepository interface {
	// Create stores a new client.
	Create(ctx context.Context, client Client) error

	// Get returns the client with the given id or ErrNotFound.
	Get(ctx context.Context, id string) (Client, error)

	// List yields all clients ordered by id ascending.
	List(ctx context.Context) Seq[Client]

	// Update overwrites the mutable fields of the client or returns ErrNotFound.
	Update(ctx context.Context, id string, update ClientUpdate) error

	// Delete removes the client or returns ErrNotFound.
	Delete(ctx context.Context, id string) error
}

// Authenticator validates credentials against the credential store.
type Authenticator interface {
	// Authenticate returns the active account matching username and password.
	// Unknown users, inactive users and wrong passwords all yield ErrInvalidCredentials.
	Authenticate(ctx context.Context, username, password string) (StaffAccount, error)
}
