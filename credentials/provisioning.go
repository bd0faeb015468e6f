package credentials

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/AntonStoeckl/library-admin-rpc/catalog"
)

var (
	// ErrEmptyUsername is returned when a staff account is provisioned without a username.
	ErrEmptyUsername = errors.New("username must not be empty")

	// ErrEmptyPassword is returned when a password to hash is empty.
	ErrEmptyPassword = errors.New("password must not be empty")
)

// HashPassword returns the bcrypt hash of password at the default cost.
// Passwords longer than 72 bytes are rejected with bcrypt.ErrPasswordTooLong.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// NewStaffAccount is a factory method for an active staff account with a freshly hashed password.
func NewStaffAccount(username, email, password string, isStaff, isSuperuser bool, now time.Time) (catalog.StaffAccount, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return catalog.StaffAccount{}, ErrEmptyUsername
	}

	hash, err := HashPassword(password)
	if err != nil {
		return catalog.StaffAccount{}, err
	}

	id, err := catalog.NewID()
	if err != nil {
		return catalog.StaffAccount{}, err
	}

	return catalog.StaffAccount{
		ID:           id,
		Username:     username,
		PasswordHash: hash,
		Email:        email,
		IsActive:     true,
		IsStaff:      isStaff,
		IsSuperuser:  isSuperuser,
		DateJoined:   now.UTC(),
	}, nil
}
