package catalog

// minTotalCopies is the lower bound for the number of copies a book is created with.
const minTotalCopies = 1

// Book is a title in the library catalog together with its copy counters.
//
// ISBN is unique across the catalog; the store enforces it.
// ImageURL is optional, the empty string means "no image".
type Book struct {
	ID              string
	Title           string
	Author          string
	ISBN            string
	TotalCopies     int
	AvailableCopies int
	ImageURL        string
}

// BuildBook is a factory method for a new Book.
//
// A totalCopies value below 1 is clamped to 1, and all copies start out available.
func BuildBook(id, title, author, isbn string, totalCopies int, imageURL string) Book {
	if totalCopies < minTotalCopies {
		totalCopies = minTotalCopies
	}

	return Book{
		ID:              id,
		Title:           title,
		Author:          author,
		ISBN:            isbn,
		TotalCopies:     totalCopies,
		AvailableCopies: totalCopies,
		ImageURL:        imageURL,
	}
}

// BookUpdate carries the fields of a full overwrite of a Book. ImageURL is not part of it.
type BookUpdate struct {
	Title           string
	Author          string
	ISBN            string
	TotalCopies     int
	AvailableCopies int
}

// Apply returns a copy of the book with all fields of the update written over it.
func (u BookUpdate) Apply(book Book) Book {
	book.Title = u.Title
	book.Author = u.Author
	book.ISBN = u.ISBN
	book.TotalCopies = u.TotalCopies
	book.AvailableCopies = u.AvailableCopies

	return book
}
