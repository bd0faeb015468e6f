package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-admin-rpc/catalog"
)

func Test_BuildBook_ClampsTotalCopies(t *testing.T) {
	testCases := []struct {
		name          string
		totalCopies   int
		expectedTotal int
	}{
		{name: "negative", totalCopies: -3, expectedTotal: 1},
		{name: "zero", totalCopies: 0, expectedTotal: 1},
		{name: "one", totalCopies: 1, expectedTotal: 1},
		{name: "several", totalCopies: 7, expectedTotal: 7},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			book := catalog.BuildBook("book-1", "Dune", "Frank Herbert", "978-0441013593", tc.totalCopies, "")

			assert.Equal(t, tc.expectedTotal, book.TotalCopies)
			assert.Equal(t, tc.expectedTotal, book.AvailableCopies, "all copies start out available")
		})
	}
}

func Test_BuildBook_KeepsTheImageURL(t *testing.T) {
	book := catalog.BuildBook("book-1", "Dune", "Frank Herbert", "978-0441013593", 2, "https://covers.library.test/dune.jpg")

	assert.Equal(t, "https://covers.library.test/dune.jpg", book.ImageURL)
}

func Test_BookUpdate_Apply_OverwritesEverythingButIDAndImage(t *testing.T) {
	// arrange
	book := catalog.BuildBook("book-1", "Dune", "Frank Herbert", "978-0441013593", 3, "https://covers.library.test/dune.jpg")
	update := catalog.BookUpdate{Title: "Dune Messiah", Author: "F. Herbert", ISBN: "978-0593098233", TotalCopies: 2, AvailableCopies: 5}

	// act
	updated := update.Apply(book)

	// assert
	assert.Equal(t, catalog.Book{
		ID:              "book-1",
		Title:           "Dune Messiah",
		Author:          "F. Herbert",
		ISBN:            "978-0593098233",
		TotalCopies:     2,
		AvailableCopies: 5,
		ImageURL:        "https://covers.library.test/dune.jpg",
	}, updated)
	assert.Equal(t, "Dune", book.Title, "the original must stay untouched")
}
