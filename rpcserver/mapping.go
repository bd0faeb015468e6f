package rpcserver

import (
	"time"

	"github.com/AntonStoeckl/library-admin-rpc/catalog"
	"github.com/AntonStoeckl/library-admin-rpc/rpc/librarypb"
)

func toWireBook(book catalog.Book) *librarypb.Book {
	return &librarypb.Book{
		ID:              book.ID,
		Title:           book.Title,
		Author:          book.Author,
		Isbn:            book.ISBN,
		TotalCopies:     int32(book.TotalCopies),
		AvailableCopies: int32(book.AvailableCopies),
		ImageURL:        book.ImageURL,
	}
}

// toWireUser leaves out the password hash.
func toWireUser(account catalog.StaffAccount) *librarypb.User {
	return &librarypb.User{
		ID:          account.ID,
		Username:    account.Username,
		Email:       account.Email,
		IsActive:    account.IsActive,
		IsStaff:     account.IsStaff,
		IsSuperuser: account.IsSuperuser,
		DateJoined:  formatTime(account.DateJoined),
	}
}

func toWireClient(client catalog.Client) *librarypb.Client {
	return &librarypb.Client{
		ID:              client.ID,
		Nom:             client.Nom,
		Email:           client.Email,
		Telephone:       client.Telephone,
		Adresse:         client.Adresse,
		DateInscription: formatTime(client.DateInscription),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.UTC().Format(time.RFC3339)
}
