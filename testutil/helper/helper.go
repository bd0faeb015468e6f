package helper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-admin-rpc/catalog"
)

// GivenUniqueID returns a fresh UUIDv7 string.
func GivenUniqueID(t testing.TB) string {
	id, err := uuid.NewV7()
	assert.NoError(t, err, "error in arranging test data")

	return id.String()
}

// GivenUniqueISBN returns an ISBN-shaped string that no other call returns.
func GivenUniqueISBN(t testing.TB) string {
	return "978-" + GivenUniqueID(t)
}

// FixtureBook builds a book with a fresh id.
func FixtureBook(t testing.TB, title, author, isbn string, totalCopies int) catalog.Book {
	return catalog.BuildBook(GivenUniqueID(t), title, author, isbn, totalCopies, "")
}

// FixtureStaffAccount builds an active account with a fresh id and the given privileges.
func FixtureStaffAccount(t testing.TB, username string, isStaff, isSuperuser bool) catalog.StaffAccount {
	return catalog.StaffAccount{
		ID:           GivenUniqueID(t),
		Username:     username,
		PasswordHash: "not-a-real-hash",
		Email:        username + "@library.test",
		IsActive:     true,
		IsStaff:      isStaff,
		IsSuperuser:  isSuperuser,
		DateJoined:   time.Now().UTC().Truncate(time.Second),
	}
}

// FixtureClient builds a client with a fresh id registered now.
func FixtureClient(t testing.TB, nom string) catalog.Client {
	return catalog.Client{
		ID:              GivenUniqueID(t),
		Nom:             nom,
		Email:           "patron@library.test",
		Telephone:       "+33 1 23 45 67 89",
		Adresse:         "1 rue de la Bibliothèque, Paris",
		DateInscription: time.Now().UTC().Truncate(time.Second),
	}
}

// GivenBookWasCreated stores the book and fails the test on error.
func GivenBookWasCreated(t testing.TB, ctx context.Context, books catalog.BookRepository, book catalog.Book) catalog.Book {
	t.Helper()
	require.NoError(t, books.Create(ctx, book), "error in arranging test data")

	return book
}

// GivenStaffAccountWasCreated stores the account and fails the test on error.
func GivenStaffAccountWasCreated(t testing.TB, ctx context.Context, accounts catalog.StaffAccountRepository, account catalog.StaffAccount) catalog.StaffAccount {
	t.Helper()
	require.NoError(t, accounts.Create(ctx, account), "error in arranging test data")

	return account
}

// GivenClientWasCreated stores the client and fails the test on error.
func GivenClientWasCreated(t testing.TB, ctx context.Context, clients catalog.ClientRepository, client catalog.Client) catalog.Client {
	t.Helper()
	require.NoError(t, clients.Create(ctx, client), "error in arranging test data")

	return client
}

// Collect drains a sequence and fails the test on the first error.
func Collect[T any](t testing.TB, seq catalog.Seq[T]) []T {
	t.Helper()

	records := make([]T, 0)
	for record, err := range seq {
		require.NoError(t, err, "error while iterating")
		records = append(records, record)
	}

	return records
}
