package rpcserver_test

import (
	"context"
	"sync"

	"github.com/AntonStoeckl/library-admin-rpc/catalog"
)

// blockingSearchBooks yields its books and then blocks until the search context ends.
type blockingSearchBooks struct {
	catalog.BookRepository
	books    []catalog.Book
	released chan struct{}
	once     sync.Once
}

func newBlockingSearchBooks(books ...catalog.Book) *blockingSearchBooks {
	return &blockingSearchBooks{books: books, released: make(chan struct{})}
}

func (b *blockingSearchBooks) Search(ctx context.Context, _ string) catalog.Seq[catalog.Book] {
	return func(yield func(catalog.Book, error) bool) {
		defer b.once.Do(func() { close(b.released) })

		for _, book := range b.books {
			if !yield(book, nil) {
				return
			}
		}

		<-ctx.Done()
		yield(catalog.Book{}, ctx.Err())
	}
}

// failingBooks fails every call with err. Search first yields searchYields.
type failingBooks struct {
	catalog.BookRepository
	searchYields []catalog.Book
	err          error
}

func (f *failingBooks) Create(context.Context, catalog.Book) error {
	return f.err
}

func (f *failingBooks) Get(context.Context, string) (catalog.Book, error) {
	return catalog.Book{}, f.err
}

func (f *failingBooks) Search(context.Context, string) catalog.Seq[catalog.Book] {
	return func(yield func(catalog.Book, error) bool) {
		for _, book := range f.searchYields {
			if !yield(book, nil) {
				return
			}
		}

		yield(catalog.Book{}, f.err)
	}
}

// blockingBooks holds every Get until release is closed.
type blockingBooks struct {
	catalog.BookRepository
	entered chan struct{}
	release chan struct{}
}

func newBlockingBooks() *blockingBooks {
	return &blockingBooks{entered: make(chan struct{}, 16), release: make(chan struct{})}
}

func (b *blockingBooks) Get(ctx context.Context, _ string) (catalog.Book, error) {
	b.entered <- struct{}{}

	select {
	case <-b.release:
		return catalog.Book{}, catalog.ErrNotFound
	case <-ctx.Done():
		return catalog.Book{}, ctx.Err()
	}
}
