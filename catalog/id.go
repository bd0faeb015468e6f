package catalog

import (
	"errors"

	"github.com/google/uuid"
)

// NewID generates the identifier of a new book, staff account or client.
// IDs are UUIDv7 strings, so sorting them by value sorts them by creation time.
func NewID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", errors.Join(ErrInternal, err)
	}

	return id.String(), nil
}
