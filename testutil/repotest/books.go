package repotest

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-admin-rpc/catalog"
	"github.com/AntonStoeckl/library-admin-rpc/testutil/helper"
)

// RunBookRepositoryTests runs the book repository suite against repositories built by newRepo.
func RunBookRepositoryTests(t *testing.T, newRepo func(t *testing.T) catalog.BookRepository) {
	t.Run("Create then Get returns the stored book", func(t *testing.T) {
		// setup
		ctx := context.Background()
		books := newRepo(t)

		// arrange
		book := helper.FixtureBook(t, "Dune", "Frank Herbert", helper.GivenUniqueISBN(t), 3)
		book.ImageURL = "https://covers.library.test/dune.jpg"

		// act
		err := books.Create(ctx, book)

		// assert
		require.NoError(t, err)
		found, err := books.Get(ctx, book.ID)
		require.NoError(t, err)
		assert.Equal(t, book, found)
	})

	t.Run("Create with a taken ISBN is a conflict", func(t *testing.T) {
		// setup
		ctx := context.Background()
		books := newRepo(t)

		// arrange
		isbn := helper.GivenUniqueISBN(t)
		first := helper.GivenBookWasCreated(t, ctx, books, helper.FixtureBook(t, "Dune", "Frank Herbert", isbn, 3))

		// act
		err := books.Create(ctx, helper.FixtureBook(t, "Dune Messiah", "Frank Herbert", isbn, 1))

		// assert
		assert.ErrorIs(t, err, catalog.ErrConflict)
		found, getErr := books.Get(ctx, first.ID)
		require.NoError(t, getErr)
		assert.Equal(t, first, found)
	})

	t.Run("racing creates with the same ISBN produce exactly one conflict", func(t *testing.T) {
		// setup
		ctx := context.Background()
		books := newRepo(t)

		// arrange
		isbn := helper.GivenUniqueISBN(t)
		candidates := []catalog.Book{
			helper.FixtureBook(t, "Dune", "Frank Herbert", isbn, 1),
			helper.FixtureBook(t, "Dune", "Frank Herbert", isbn, 1),
		}
		errs := make([]error, len(candidates))

		// act
		var wg sync.WaitGroup
		for i, candidate := range candidates {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs[i] = books.Create(ctx, candidate)
			}()
		}
		wg.Wait()

		// assert
		conflicts := 0
		for _, err := range errs {
			if err != nil {
				assert.ErrorIs(t, err, catalog.ErrConflict)
				conflicts++
			}
		}
		assert.Equal(t, 1, conflicts)
	})

	t.Run("Get with an unknown id is not found", func(t *testing.T) {
		books := newRepo(t)

		_, err := books.Get(context.Background(), helper.GivenUniqueID(t))

		assert.ErrorIs(t, err, catalog.ErrNotFound)
	})

	t.Run("Update overwrites all fields except the image", func(t *testing.T) {
		// setup
		ctx := context.Background()
		books := newRepo(t)

		// arrange
		book := helper.FixtureBook(t, "Dune", "Frank Herbert", helper.GivenUniqueISBN(t), 3)
		book.ImageURL = "https://covers.library.test/dune.jpg"
		helper.GivenBookWasCreated(t, ctx, books, book)
		update := catalog.BookUpdate{
			Title:           "Dune (Deluxe Edition)",
			Author:          "F. Herbert",
			ISBN:            helper.GivenUniqueISBN(t),
			TotalCopies:     5,
			AvailableCopies: 2,
		}

		// act
		err := books.Update(ctx, book.ID, update)

		// assert
		require.NoError(t, err)
		found, err := books.Get(ctx, book.ID)
		require.NoError(t, err)
		assert.Equal(t, update.Apply(book), found)
		assert.Equal(t, "https://covers.library.test/dune.jpg", found.ImageURL)
	})

	t.Run("Update keeping the own ISBN succeeds", func(t *testing.T) {
		// setup
		ctx := context.Background()
		books := newRepo(t)

		// arrange
		book := helper.GivenBookWasCreated(t, ctx, books, helper.FixtureBook(t, "Dune", "Frank Herbert", helper.GivenUniqueISBN(t), 3))
		update := catalog.BookUpdate{Title: book.Title, Author: book.Author, ISBN: book.ISBN, TotalCopies: 3, AvailableCopies: 0}

		// act
		err := books.Update(ctx, book.ID, update)

		// assert
		require.NoError(t, err)
		found, err := books.Get(ctx, book.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, found.AvailableCopies)
	})

	t.Run("Update with an unknown id is not found", func(t *testing.T) {
		books := newRepo(t)

		err := books.Update(context.Background(), helper.GivenUniqueID(t), catalog.BookUpdate{
			Title: "Ghost", Author: "Nobody", ISBN: helper.GivenUniqueISBN(t), TotalCopies: 1, AvailableCopies: 1,
		})

		assert.ErrorIs(t, err, catalog.ErrNotFound)
	})

	t.Run("Update to the ISBN of another book is a conflict", func(t *testing.T) {
		// setup
		ctx := context.Background()
		books := newRepo(t)

		// arrange
		dune := helper.GivenBookWasCreated(t, ctx, books, helper.FixtureBook(t, "Dune", "Frank Herbert", helper.GivenUniqueISBN(t), 3))
		emma := helper.GivenBookWasCreated(t, ctx, books, helper.FixtureBook(t, "Emma", "Jane Austen", helper.GivenUniqueISBN(t), 2))

		// act
		err := books.Update(ctx, emma.ID, catalog.BookUpdate{
			Title: emma.Title, Author: emma.Author, ISBN: dune.ISBN, TotalCopies: 2, AvailableCopies: 2,
		})

		// assert
		assert.ErrorIs(t, err, catalog.ErrConflict)
		found, getErr := books.Get(ctx, emma.ID)
		require.NoError(t, getErr)
		assert.Equal(t, emma, found)
	})

	t.Run("Delete removes the book", func(t *testing.T) {
		// setup
		ctx := context.Background()
		books := newRepo(t)

		// arrange
		book := helper.GivenBookWasCreated(t, ctx, books, helper.FixtureBook(t, "Dune", "Frank Herbert", helper.GivenUniqueISBN(t), 3))

		// act
		err := books.Delete(ctx, book.ID)

		// assert
		require.NoError(t, err)
		_, err = books.Get(ctx, book.ID)
		assert.ErrorIs(t, err, catalog.ErrNotFound)
		assert.ErrorIs(t, books.Delete(ctx, book.ID), catalog.ErrNotFound)
	})

	t.Run("Delete frees the ISBN", func(t *testing.T) {
		// setup
		ctx := context.Background()
		books := newRepo(t)

		// arrange
		isbn := helper.GivenUniqueISBN(t)
		book := helper.GivenBookWasCreated(t, ctx, books, helper.FixtureBook(t, "Dune", "Frank Herbert", isbn, 3))
		require.NoError(t, books.Delete(ctx, book.ID))

		// act
		err := books.Create(ctx, helper.FixtureBook(t, "Dune", "Frank Herbert", isbn, 3))

		// assert
		assert.NoError(t, err)
	})

	t.Run("Search matches title or author ignoring case, ordered by title", func(t *testing.T) {
		// setup
		ctx := context.Background()
		books := newRepo(t)

		// arrange
		dune := helper.GivenBookWasCreated(t, ctx, books, helper.FixtureBook(t, "Dune", "Frank Herbert", helper.GivenUniqueISBN(t), 3))
		messiah := helper.GivenBookWasCreated(t, ctx, books, helper.FixtureBook(t, "Dune Messiah", "Frank Herbert", helper.GivenUniqueISBN(t), 1))
		helper.GivenBookWasCreated(t, ctx, books, helper.FixtureBook(t, "Emma", "Jane Austen", helper.GivenUniqueISBN(t), 2))
		brothers := helper.GivenBookWasCreated(t, ctx, books, helper.FixtureBook(t, "Brothers of the Dunes", "Anonymous", helper.GivenUniqueISBN(t), 1))

		// act
		byTitle := helper.Collect(t, books.Search(ctx, "dUNe"))
		byAuthor := helper.Collect(t, books.Search(ctx, "HERBERT"))

		// assert
		assert.Equal(t, []catalog.Book{brothers, dune, messiah}, byTitle)
		assert.Equal(t, []catalog.Book{dune, messiah}, byAuthor)
	})

	t.Run("Search ignores case of accented letters", func(t *testing.T) {
		// setup
		ctx := context.Background()
		books := newRepo(t)

		// arrange
		elise := helper.GivenBookWasCreated(t, ctx, books, helper.FixtureBook(t, "Élise et l'Été", "Émile Zola", helper.GivenUniqueISBN(t), 1))
		helper.GivenBookWasCreated(t, ctx, books, helper.FixtureBook(t, "Emma", "Jane Austen", helper.GivenUniqueISBN(t), 2))

		// act
		byTitle := helper.Collect(t, books.Search(ctx, "été"))
		byAuthor := helper.Collect(t, books.Search(ctx, "ÉMILE"))

		// assert
		assert.Equal(t, []catalog.Book{elise}, byTitle)
		assert.Equal(t, []catalog.Book{elise}, byAuthor)
	})

	t.Run("Search with an empty query returns the whole catalog", func(t *testing.T) {
		// setup
		ctx := context.Background()
		books := newRepo(t)

		// arrange
		emma := helper.GivenBookWasCreated(t, ctx, books, helper.FixtureBook(t, "Emma", "Jane Austen", helper.GivenUniqueISBN(t), 2))
		dune := helper.GivenBookWasCreated(t, ctx, books, helper.FixtureBook(t, "Dune", "Frank Herbert", helper.GivenUniqueISBN(t), 3))

		// act
		found := helper.Collect(t, books.Search(ctx, ""))

		// assert
		assert.Equal(t, []catalog.Book{dune, emma}, found)
	})

	t.Run("Search orders books with equal titles by id", func(t *testing.T) {
		// setup
		ctx := context.Background()
		books := newRepo(t)

		// arrange
		first := helper.GivenBookWasCreated(t, ctx, books, helper.FixtureBook(t, "Dune", "Frank Herbert", helper.GivenUniqueISBN(t), 3))
		second := helper.GivenBookWasCreated(t, ctx, books, helper.FixtureBook(t, "Dune", "Frank Herbert", helper.GivenUniqueISBN(t), 1))

		// act
		found := helper.Collect(t, books.Search(ctx, "Dune"))

		// assert
		assert.Equal(t, []catalog.Book{first, second}, found)
	})

	t.Run("Search treats LIKE wildcards literally", func(t *testing.T) {
		// setup
		ctx := context.Background()
		books := newRepo(t)

		// arrange
		discount := helper.GivenBookWasCreated(t, ctx, books, helper.FixtureBook(t, "100% Discount", "Sale_Author", helper.GivenUniqueISBN(t), 1))
		helper.GivenBookWasCreated(t, ctx, books, helper.FixtureBook(t, "Dune", "Frank Herbert", helper.GivenUniqueISBN(t), 3))

		// act
		byPercent := helper.Collect(t, books.Search(ctx, "%"))
		byUnderscore := helper.Collect(t, books.Search(ctx, "_"))
		noMatch := helper.Collect(t, books.Search(ctx, "D_ne"))

		// assert
		assert.Equal(t, []catalog.Book{discount}, byPercent)
		assert.Equal(t, []catalog.Book{discount}, byUnderscore)
		assert.Empty(t, noMatch)
	})

	t.Run("Search can be abandoned early", func(t *testing.T) {
		// setup
		ctx := context.Background()
		books := newRepo(t)

		// arrange
		for _, title := range []string{"Alpha", "Beta", "Gamma"} {
			helper.GivenBookWasCreated(t, ctx, books, helper.FixtureBook(t, title, "Author", helper.GivenUniqueISBN(t), 1))
		}

		// act
		seen := 0
		for book, err := range books.Search(ctx, "") {
			require.NoError(t, err)
			assert.Equal(t, "Alpha", book.Title)
			seen++
			break
		}

		// assert
		assert.Equal(t, 1, seen)
		assert.Len(t, helper.Collect(t, books.Search(ctx, "")), 3, "the store must stay usable")
	})

	t.Run("Search stops with the context error once canceled", func(t *testing.T) {
		// setup
		books := newRepo(t)
		helper.GivenBookWasCreated(t, context.Background(), books, helper.FixtureBook(t, "Dune", "Frank Herbert", helper.GivenUniqueISBN(t), 3))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// act
		var iterErr error
		for _, err := range books.Search(ctx, "") {
			if err != nil {
				iterErr = err
				break
			}
		}

		// assert
		assert.ErrorIs(t, iterErr, context.Canceled)
	})
}
