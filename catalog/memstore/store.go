package memstore

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/AntonStoeckl/library-admin-rpc/catalog"
)

// Store holds books, staff accounts and clients in memory. It is safe for concurrent use.
type Store struct {
	mu            sync.RWMutex
	books         map[string]catalog.Book
	booksByISBN   map[string]string
	staffAccounts map[string]catalog.StaffAccount
	staffByName   map[string]string
	clients       map[string]catalog.Client
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		books:         make(map[string]catalog.Book),
		booksByISBN:   make(map[string]string),
		staffAccounts: make(map[string]catalog.StaffAccount),
		staffByName:   make(map[string]string),
		clients:       make(map[string]catalog.Client),
	}
}

// Books returns the book repository backed by this store.
func (s *Store) Books() *Books {
	return &Books{store: s}
}

// StaffAccounts returns the staff account repository backed by this store.
func (s *Store) StaffAccounts() *StaffAccounts {
	return &StaffAccounts{store: s}
}

// Clients returns the client repository backed by this store.
func (s *Store) Clients() *Clients {
	return &Clients{store: s}
}

var (
	_ catalog.BookRepository         = (*Books)(nil)
	_ catalog.StaffAccountRepository = (*StaffAccounts)(nil)
	_ catalog.ClientRepository       = (*Clients)(nil)
)

// Books is the in-memory catalog.BookRepository.
type Books struct {
	store *Store
}

// Create stores the book unless its id or ISBN is taken.
func (r *Books) Create(ctx context.Context, book catalog.Book) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.books[book.ID]; taken {
		return catalog.ErrConflict
	}

	if _, taken := s.booksByISBN[book.ISBN]; taken {
		return catalog.ErrConflict
	}

	s.books[book.ID] = book
	s.booksByISBN[book.ISBN] = book.ID

	return nil
}

// Get returns the book or catalog.ErrNotFound.
func (r *Books) Get(ctx context.Context, id string) (catalog.Book, error) {
	if err := ctx.Err(); err != nil {
		return catalog.Book{}, err
	}

	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	book, ok := s.books[id]
	if !ok {
		return catalog.Book{}, catalog.ErrNotFound
	}

	return book, nil
}

// Update overwrites the mutable fields; a new ISBN must not belong to another book.
func (r *Books) Update(ctx context.Context, id string, update catalog.BookUpdate) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books[id]
	if !ok {
		return catalog.ErrNotFound
	}

	if owner, taken := s.booksByISBN[update.ISBN]; taken && owner != id {
		return catalog.ErrConflict
	}

	delete(s.booksByISBN, book.ISBN)
	book = update.Apply(book)
	s.books[id] = book
	s.booksByISBN[book.ISBN] = id

	return nil
}

// Delete removes the book or returns catalog.ErrNotFound.
func (r *Books) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books[id]
	if !ok {
		return catalog.ErrNotFound
	}

	delete(s.books, id)
	delete(s.booksByISBN, book.ISBN)

	return nil
}

// Search yields matching books ordered by title, then id.
func (r *Books) Search(ctx context.Context, query string) catalog.Seq[catalog.Book] {
	return func(yield func(catalog.Book, error) bool) {
		needle := strings.ToLower(query)

		s := r.store
		s.mu.RLock()
		matches := make([]catalog.Book, 0, len(s.books))
		for _, book := range s.books {
			if strings.Contains(strings.ToLower(book.Title), needle) ||
				strings.Contains(strings.ToLower(book.Author), needle) {
				matches = append(matches, book)
			}
		}
		s.mu.RUnlock()

		slices.SortFunc(matches, func(a, b catalog.Book) int {
			return cmp.Or(cmp.Compare(a.Title, b.Title), cmp.Compare(a.ID, b.ID))
		})

		emit(ctx, matches, yield)
	}
}

// StaffAccounts is the in-memory catalog.StaffAccountRepository.
type StaffAccounts struct {
	store *Store
}

// Create stores the account unless its id or username is taken.
func (r *StaffAccounts) Create(ctx context.Context, account catalog.StaffAccount) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.staffAccounts[account.ID]; taken {
		return catalog.ErrConflict
	}

	if _, taken := s.staffByName[account.Username]; taken {
		return catalog.ErrConflict
	}

	s.staffAccounts[account.ID] = account
	s.staffByName[account.Username] = account.ID

	return nil
}

// Get returns the account or catalog.ErrNotFound.
func (r *StaffAccounts) Get(ctx context.Context, id string) (catalog.StaffAccount, error) {
	if err := ctx.Err(); err != nil {
		return catalog.StaffAccount{}, err
	}

	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.staffAccounts[id]
	if !ok {
		return catalog.StaffAccount{}, catalog.ErrNotFound
	}

	return account, nil
}

// GetByUsername returns the account or catalog.ErrNotFound.
func (r *StaffAccounts) GetByUsername(ctx context.Context, username string) (catalog.StaffAccount, error) {
	if err := ctx.Err(); err != nil {
		return catalog.StaffAccount{}, err
	}

	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.staffByName[username]
	if !ok {
		return catalog.StaffAccount{}, catalog.ErrNotFound
	}

	return s.staffAccounts[id], nil
}

// ListPrivileged yields staff members and superusers ordered by id.
func (r *StaffAccounts) ListPrivileged(ctx context.Context) catalog.Seq[catalog.StaffAccount] {
	return func(yield func(catalog.StaffAccount, error) bool) {
		s := r.store
		s.mu.RLock()
		accounts := make([]catalog.StaffAccount, 0, len(s.staffAccounts))
		for _, account := range s.staffAccounts {
			if catalog.IsPrivileged(account) {
				accounts = append(accounts, account)
			}
		}
		s.mu.RUnlock()

		slices.SortFunc(accounts, func(a, b catalog.StaffAccount) int {
			return cmp.Compare(a.ID, b.ID)
		})

		emit(ctx, accounts, yield)
	}
}

// DeleteUnprotected deletes the account unless it is protected.
// The check and the delete happen under the same lock.
func (r *StaffAccounts) DeleteUnprotected(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.staffAccounts[id]
	if !ok || catalog.IsProtected(account) {
		return false, nil
	}

	delete(s.staffAccounts, id)
	delete(s.staffByName, account.Username)

	return true, nil
}

// Clients is the in-memory catalog.ClientRepository.
type Clients struct {
	store *Store
}

// Create stores the client unless its id is taken.
func (r *Clients) Create(ctx context.Context, client catalog.Client) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.clients[client.ID]; taken {
		return catalog.ErrConflict
	}

	s.clients[client.ID] = client

	return nil
}

// Get returns the client or catalog.ErrNotFound.
func (r *Clients) Get(ctx context.Context, id string) (catalog.Client, error) {
	if err := ctx.Err(); err != nil {
		return catalog.Client{}, err
	}

	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	client, ok := s.clients[id]
	if !ok {
		return catalog.Client{}, catalog.ErrNotFound
	}

	return client, nil
}

// List yields all clients ordered by id.
func (r *Clients) List(ctx context.Context) catalog.Seq[catalog.Client] {
	return func(yield func(catalog.Client, error) bool) {
		s := r.store
		s.mu.RLock()
		clients := make([]catalog.Client, 0, len(s.clients))
		for _, client := range s.clients {
			clients = append(clients, client)
		}
		s.mu.RUnlock()

		slices.SortFunc(clients, func(a, b catalog.Client) int {
			return cmp.Compare(a.ID, b.ID)
		})

		emit(ctx, clients, yield)
	}
}

// Update overwrites the mutable fields or returns catalog.ErrNotFound.
func (r *Clients) Update(ctx context.Context, id string, update catalog.ClientUpdate) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	client, ok := s.clients[id]
	if !ok {
		return catalog.ErrNotFound
	}

	s.clients[id] = update.Apply(client)

	return nil
}

// Delete removes the client or returns catalog.ErrNotFound.
func (r *Clients) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[id]; !ok {
		return catalog.ErrNotFound
	}

	delete(s.clients, id)

	return nil
}

// emit yields records until the consumer stops or ctx ends.
func emit[T any](ctx context.Context, records []T, yield func(T, error) bool) {
	for _, record := range records {
		if err := ctx.Err(); err != nil {
			var zero T
			yield(zero, err)
			return
		}

		if !yield(record, nil) {
			return
		}
	}
}
