package sqlengine

import (
	"context"
	"strings"

	"github.com/doug-martin/goqu/v9"

	"github.com/AntonStoeckl/library-admin-rpc/catalog"
	"github.com/AntonStoeckl/library-admin-rpc/catalog/sqlengine/internal/adapters"
)

const (
	colID              = "id"
	colTitle           = "title"
	colAuthor          = "author"
	colISBN            = "isbn"
	colTotalCopies     = "total_copies"
	colAvailableCopies = "available_copies"
	colImageURL        = "image_url"
	likeEscapeClause   = `LOWER(?) LIKE ? ESCAPE '\'`
)

const (
	operationBooksCreate = "books.create"
	operationBooksGet    = "books.get"
	operationBooksUpdate = "books.update"
	operationBooksDelete = "books.delete"
	operationBooksSearch = "books.search"
)

var bookColumns = []any{colID, colTitle, colAuthor, colISBN, colTotalCopies, colAvailableCopies, colImageURL}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

var _ catalog.BookRepository = (*Books)(nil)

// Books is the relational catalog.BookRepository.
type Books struct {
	store *Store
}

// Create inserts the book. A taken ISBN is reported by the unique index as catalog.ErrConflict.
func (r *Books) Create(ctx context.Context, book catalog.Book) error {
	s := r.store

	insertStmt := s.dialect.
		Insert(s.tables.books).
		Prepared(true).
		Rows(goqu.Record{
			colID:              book.ID,
			colTitle:           book.Title,
			colAuthor:          book.Author,
			colISBN:            book.ISBN,
			colTotalCopies:     book.TotalCopies,
			colAvailableCopies: book.AvailableCopies,
			colImageURL:        book.ImageURL,
		})

	return s.execOne(ctx, operationBooksCreate, insertStmt)
}

// Get returns the book with the given id or catalog.ErrNotFound.
func (r *Books) Get(ctx context.Context, id string) (catalog.Book, error) {
	s := r.store

	selectStmt := s.dialect.
		From(s.tables.books).
		Prepared(true).
		Select(bookColumns...).
		Where(goqu.C(colID).Eq(id))

	return queryOne(ctx, s, operationBooksGet, selectStmt, scanBook)
}

// Update overwrites title, author, isbn and both copy counters; the image URL stays as it is.
func (r *Books) Update(ctx context.Context, id string, update catalog.BookUpdate) error {
	s := r.store

	updateStmt := s.dialect.
		Update(s.tables.books).
		Prepared(true).
		Set(goqu.Record{
			colTitle:           update.Title,
			colAuthor:          update.Author,
			colISBN:            update.ISBN,
			colTotalCopies:     update.TotalCopies,
			colAvailableCopies: update.AvailableCopies,
		}).
		Where(goqu.C(colID).Eq(id))

	return s.execOne(ctx, operationBooksUpdate, updateStmt)
}

// Delete removes the book or returns catalog.ErrNotFound.
func (r *Books) Delete(ctx context.Context, id string) error {
	s := r.store

	deleteStmt := s.dialect.
		Delete(s.tables.books).
		Prepared(true).
		Where(goqu.C(colID).Eq(id))

	return s.execOne(ctx, operationBooksDelete, deleteStmt)
}

// Search yields the books whose title or author contains query, ignoring case.
// LIKE wildcards in query match literally.
func (r *Books) Search(ctx context.Context, query string) catalog.Seq[catalog.Book] {
	s := r.store

	selectStmt := s.dialect.
		From(s.tables.books).
		Prepared(true).
		Select(bookColumns...).
		Order(goqu.C(colTitle).Asc(), goqu.C(colID).Asc())

	if query != "" {
		pattern := "%" + strings.ToLower(likeEscaper.Replace(query)) + "%"
		selectStmt = selectStmt.Where(goqu.Or(
			goqu.L(likeEscapeClause, goqu.C(colTitle), pattern),
			goqu.L(likeEscapeClause, goqu.C(colAuthor), pattern),
		))
	}

	return queryEach(ctx, s, operationBooksSearch, selectStmt, scanBook)
}

func scanBook(rows adapters.DBRows) (catalog.Book, error) {
	var book catalog.Book

	err := rows.Scan(
		&book.ID,
		&book.Title,
		&book.Author,
		&book.ISBN,
		&book.TotalCopies,
		&book.AvailableCopies,
		&book.ImageURL,
	)

	return book, err
}
