package rpcserver_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/AntonStoeckl/library-admin-rpc/catalog"
	"github.com/AntonStoeckl/library-admin-rpc/rpc/librarypb"
	"github.com/AntonStoeckl/library-admin-rpc/testutil/helper"
)

func Test_CreateBook_ClampsCopiesAndRejectsDuplicateISBN(t *testing.T) {
	// setup
	ctx := context.Background()
	client, _ := givenClient(t)

	// act
	created, err := client.CreateBook(ctx, &librarypb.CreateBookRequest{
		Title:       "Dune",
		Author:      "Frank Herbert",
		Isbn:        "978-0441013593",
		TotalCopies: 0,
	})

	// assert
	require.NoError(t, err)
	assert.True(t, created.Success)
	assert.NotEmpty(t, created.EntityID)

	book, err := client.GetBook(ctx, &librarypb.GetBookRequest{ID: created.EntityID})
	require.NoError(t, err)
	assert.Equal(t, int32(1), book.TotalCopies)
	assert.Equal(t, int32(1), book.AvailableCopies)
	assert.Empty(t, book.ImageURL)

	// act
	_, err = client.CreateBook(ctx, &librarypb.CreateBookRequest{
		Title:       "Dune (reprint)",
		Author:      "Frank Herbert",
		Isbn:        "978-0441013593",
		TotalCopies: 2,
	})

	// assert
	assertStatusCode(t, err, codes.AlreadyExists)
}

func Test_CreateBook_RacingCreatesWithSameISBN_ExactlyOneSucceeds(t *testing.T) {
	// setup
	ctx := context.Background()
	client, _ := givenClient(t)
	isbn := helper.GivenUniqueISBN(t)

	const racers = 8
	results := make([]error, racers)

	var wg sync.WaitGroup

	// act
	for i := range racers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, results[i] = client.CreateBook(ctx, &librarypb.CreateBookRequest{
				Title: "Dune", Author: "Frank Herbert", Isbn: isbn, TotalCopies: 1,
			})
		}()
	}
	wg.Wait()

	// assert
	succeeded, conflicted := 0, 0
	for _, err := range results {
		switch status.Code(err) {
		case codes.OK:
			succeeded++
		case codes.AlreadyExists:
			conflicted++
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, racers-1, conflicted)
}

func Test_CreateBook_KeepsImageURL(t *testing.T) {
	ctx := context.Background()
	client, _ := givenClient(t)

	created, err := client.CreateBook(ctx, &librarypb.CreateBookRequest{
		Title: "Dune", Author: "Frank Herbert", Isbn: helper.GivenUniqueISBN(t), TotalCopies: 4,
		ImageURL: "https://covers.library.test/dune.jpg",
	})
	require.NoError(t, err)

	book, err := client.GetBook(ctx, &librarypb.GetBookRequest{ID: created.EntityID})
	require.NoError(t, err)
	assert.Equal(t, "https://covers.library.test/dune.jpg", book.ImageURL)
	assert.Equal(t, int32(4), book.AvailableCopies)
}

func Test_GetBook_UnknownID_IsNotFound(t *testing.T) {
	client, _ := givenClient(t)

	_, err := client.GetBook(context.Background(), &librarypb.GetBookRequest{ID: helper.GivenUniqueID(t)})

	assertStatusCode(t, err, codes.NotFound)
}

func Test_UpdateBookAvailability(t *testing.T) {
	// setup
	ctx := context.Background()
	client, store := givenClient(t)

	// arrange
	dune := helper.GivenBookWasCreated(t, ctx, store.Books(), helper.FixtureBook(t, "Dune", "Frank Herbert", helper.GivenUniqueISBN(t), 3))
	other := helper.GivenBookWasCreated(t, ctx, store.Books(), helper.FixtureBook(t, "Emma", "Jane Austen", helper.GivenUniqueISBN(t), 1))

	t.Run("overwrites all fields as sent", func(t *testing.T) {
		// act
		result, err := client.UpdateBookAvailability(ctx, &librarypb.UpdateBookRequest{
			ID: dune.ID, Title: "Dune", Author: "Frank Herbert", Isbn: dune.ISBN, TotalCopies: 2, AvailableCopies: 5,
		})

		// assert
		require.NoError(t, err)
		assert.True(t, result.Success)

		book, err := client.GetBook(ctx, &librarypb.GetBookRequest{ID: dune.ID})
		require.NoError(t, err)
		assert.Equal(t, int32(2), book.TotalCopies)
		assert.Equal(t, int32(5), book.AvailableCopies, "counters are taken as sent")
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := client.UpdateBookAvailability(ctx, &librarypb.UpdateBookRequest{
			ID: helper.GivenUniqueID(t), Title: "Ghost", Isbn: helper.GivenUniqueISBN(t), TotalCopies: 1,
		})

		assertStatusCode(t, err, codes.NotFound)
	})

	t.Run("isbn of another book", func(t *testing.T) {
		_, err := client.UpdateBookAvailability(ctx, &librarypb.UpdateBookRequest{
			ID: dune.ID, Title: "Dune", Author: "Frank Herbert", Isbn: other.ISBN, TotalCopies: 1, AvailableCopies: 1,
		})

		assertStatusCode(t, err, codes.AlreadyExists)
	})
}

func Test_DeleteBook(t *testing.T) {
	// setup
	ctx := context.Background()
	client, store := givenClient(t)

	// arrange
	book := helper.GivenBookWasCreated(t, ctx, store.Books(), helper.FixtureBook(t, "Dune", "Frank Herbert", helper.GivenUniqueISBN(t), 1))

	// act
	result, err := client.DeleteBook(ctx, &librarypb.DeleteBookRequest{ID: book.ID})

	// assert
	require.NoError(t, err)
	assert.True(t, result.Success)

	// act
	_, err = client.DeleteBook(ctx, &librarypb.DeleteBookRequest{ID: book.ID})

	// assert
	assertStatusCode(t, err, codes.NotFound)
	assert.Contains(t, status.Convert(err).Message(), "not found")
}

func Test_SearchBooks(t *testing.T) {
	// setup
	ctx := context.Background()
	client, store := givenClient(t)

	// arrange
	for _, fixture := range []struct{ title, author string }{
		{"Dune Messiah", "Frank Herbert"},
		{"Dune", "Frank Herbert"},
		{"Emma", "Jane Austen"},
		{"The Dosadi Experiment", "Frank Herbert"},
	} {
		helper.GivenBookWasCreated(t, ctx, store.Books(), helper.FixtureBook(t, fixture.title, fixture.author, helper.GivenUniqueISBN(t), 1))
	}

	testCases := []struct {
		name           string
		query          string
		expectedTitles []string
	}{
		{name: "title substring any case", query: "dUNE", expectedTitles: []string{"Dune", "Dune Messiah"}},
		{name: "author substring", query: "herbert", expectedTitles: []string{"Dune", "Dune Messiah", "The Dosadi Experiment"}},
		{name: "empty query lists everything", query: "", expectedTitles: []string{"Dune", "Dune Messiah", "Emma", "The Dosadi Experiment"}},
		{name: "no match", query: "tolkien", expectedTitles: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			stream, err := client.SearchBooks(ctx, &librarypb.SearchBooksRequest{Query: tc.query})
			require.NoError(t, err)
			books, err := drain(t, stream)

			// assert
			require.NoError(t, err)
			titles := make([]string, 0, len(books))
			for _, book := range books {
				titles = append(titles, book.Title)
			}
			assert.Equal(t, tc.expectedTitles, titles)

			// act
			again, err := client.SearchBooks(ctx, &librarypb.SearchBooksRequest{Query: tc.query})
			require.NoError(t, err)
			repeated, err := drain(t, again)

			// assert
			require.NoError(t, err)
			assert.Equal(t, books, repeated, "the same query on unchanged data yields the same sequence")
		})
	}
}

func Test_BookLifecycle_CreateSearchDeleteGet(t *testing.T) {
	// setup
	ctx := context.Background()
	client, _ := givenClient(t)

	// act
	created, err := client.CreateBook(ctx, &librarypb.CreateBookRequest{
		Title: "Dune", Author: "Frank Herbert", Isbn: helper.GivenUniqueISBN(t), TotalCopies: 3,
	})

	// assert
	require.NoError(t, err)
	require.True(t, created.Success)
	id := created.EntityID

	book, err := client.GetBook(ctx, &librarypb.GetBookRequest{ID: id})
	require.NoError(t, err)
	assert.Equal(t, int32(3), book.TotalCopies)
	assert.Equal(t, int32(3), book.AvailableCopies)

	stream, err := client.SearchBooks(ctx, &librarypb.SearchBooksRequest{Query: "dune"})
	require.NoError(t, err)
	found, err := drain(t, stream)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, id, found[0].ID)

	// act
	deleted, err := client.DeleteBook(ctx, &librarypb.DeleteBookRequest{ID: id})

	// assert
	require.NoError(t, err)
	assert.True(t, deleted.Success)

	_, err = client.GetBook(ctx, &librarypb.GetBookRequest{ID: id})
	assertStatusCode(t, err, codes.NotFound)
}

func Test_SearchBooks_CallerCancelsMidStream_ReleasesTheCursor(t *testing.T) {
	// setup
	repos, _ := givenMemoryRepositories()
	books := newBlockingSearchBooks(helper.FixtureBook(t, "Dune", "Frank Herbert", helper.GivenUniqueISBN(t), 1))
	repos.books = books
	client, _ := startServer(t, repos, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream, err := client.SearchBooks(ctx, &librarypb.SearchBooksRequest{Query: "dune"})
	require.NoError(t, err)

	first, err := stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, "Dune", first.Title)

	// act
	cancel()
	_, err = drain(t, stream)

	// assert
	assertStatusCode(t, err, codes.Canceled)
	select {
	case <-books.released:
	case <-time.After(5 * time.Second):
		t.Fatal("the search cursor was not released after the caller canceled")
	}
}

func Test_SearchBooks_FailureMidStream_EndsWithInternal(t *testing.T) {
	// setup
	repos, _ := givenMemoryRepositories()
	repos.books = &failingBooks{
		searchYields: []catalog.Book{helper.FixtureBook(t, "Dune", "Frank Herbert", helper.GivenUniqueISBN(t), 1)},
		err:          errors.Join(catalog.ErrInternal, errors.New("connection reset by peer")),
	}
	client, _ := startServer(t, repos, nil)

	// act
	stream, err := client.SearchBooks(context.Background(), &librarypb.SearchBooksRequest{})
	require.NoError(t, err)
	books, err := drain(t, stream)

	// assert
	assert.Len(t, books, 1, "records sent before the failure are delivered")
	assertStatusCode(t, err, codes.Internal)
	assert.Contains(t, status.Convert(err).Message(), "connection reset by peer")
}

func Test_CreateBook_StorageFailure_IsInternal(t *testing.T) {
	// setup
	repos, _ := givenMemoryRepositories()
	repos.books = &failingBooks{err: errors.Join(catalog.ErrInternal, errors.New("disk full"))}
	client, _ := startServer(t, repos, nil)

	// act
	_, err := client.CreateBook(context.Background(), &librarypb.CreateBookRequest{Title: "Dune", Isbn: "978-0441013593", TotalCopies: 1})

	// assert
	assertStatusCode(t, err, codes.Internal)
	assert.Contains(t, status.Convert(err).Message(), "disk full")
	assert.NotContains(t, status.Convert(err).Message(), "\n")
}
