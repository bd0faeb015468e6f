package credentials

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/AntonStoeckl/library-admin-rpc/catalog"
)

var _ catalog.Authenticator = (*Authenticator)(nil)

// Authenticator checks a username and password against the stored staff accounts.
type Authenticator struct {
	accounts catalog.StaffAccountRepository
	// dummyHash is compared against when the username is unknown, so unknown and known
	// usernames take about the same time to reject.
	dummyHash []byte
}

// NewAuthenticator creates an Authenticator reading accounts from the given repository.
func NewAuthenticator(accounts catalog.StaffAccountRepository) *Authenticator {
	dummyHash, err := bcrypt.GenerateFromPassword([]byte("library-admin-rpc"), bcrypt.DefaultCost)
	if err != nil {
		panic(err) // only fails for passwords longer than 72 bytes
	}

	return &Authenticator{accounts: accounts, dummyHash: dummyHash}
}

// Authenticate returns the active account matching username and password.
// Unknown usernames, inactive accounts and wrong passwords all yield catalog.ErrInvalidCredentials.
// Storage failures are returned as they are.
func (a *Authenticator) Authenticate(ctx context.Context, username, password string) (catalog.StaffAccount, error) {
	account, err := a.accounts.GetByUsername(ctx, username)
	if errors.Is(err, catalog.ErrNotFound) {
		_ = bcrypt.CompareHashAndPassword(a.dummyHash, []byte(password))
		return catalog.StaffAccount{}, catalog.ErrInvalidCredentials
	}

	if err != nil {
		return catalog.StaffAccount{}, err
	}

	if compareErr := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); compareErr != nil {
		return catalog.StaffAccount{}, catalog.ErrInvalidCredentials
	}

	if !account.IsActive {
		return catalog.StaffAccount{}, catalog.ErrInvalidCredentials
	}

	return account, nil
}
