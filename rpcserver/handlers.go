package rpcserver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/AntonStoeckl/library-admin-rpc/catalog"
	"github.com/AntonStoeckl/library-admin-rpc/rpc/librarypb"
)

var _ librarypb.LibraryServiceServer = (*Handlers)(nil)

// Handlers implements librarypb.LibraryServiceServer on top of the catalog repositories.
type Handlers struct {
	librarypb.UnimplementedLibraryServiceServer

	books         catalog.BookRepository
	accounts      catalog.StaffAccountRepository
	clients       catalog.ClientRepository
	authenticator catalog.Authenticator

	newID func() (string, error)
	now   func() time.Time
}

// HandlerOption defines a functional option for configuring Handlers.
type HandlerOption func(*Handlers) error

// WithIDGenerator replaces catalog.NewID as the source of new entity ids.
func WithIDGenerator(newID func() (string, error)) HandlerOption {
	return func(h *Handlers) error {
		if newID == nil {
			return errors.New("id generator must not be nil")
		}

		h.newID = newID
		return nil
	}
}

// WithClock replaces time.Now as the source of client registration dates.
func WithClock(now func() time.Time) HandlerOption {
	return func(h *Handlers) error {
		if now == nil {
			return errors.New("clock must not be nil")
		}

		h.now = now
		return nil
	}
}

// NewHandlers creates the handler set. All collaborators are required.
func NewHandlers(
	books catalog.BookRepository,
	accounts catalog.StaffAccountRepository,
	clients catalog.ClientRepository,
	authenticator catalog.Authenticator,
	options ...HandlerOption,
) (*Handlers, error) {
	if books == nil || accounts == nil || clients == nil || authenticator == nil {
		return nil, errors.New("rpcserver: repositories and authenticator must not be nil")
	}

	h := &Handlers{
		books:         books,
		accounts:      accounts,
		clients:       clients,
		authenticator: authenticator,
		newID:         catalog.NewID,
		now:           time.Now,
	}

	for _, option := range options {
		if err := option(h); err != nil {
			return nil, err
		}
	}

	return h, nil
}

/*** Login ***/

// UserLogin checks the credentials of a staff member. Failed logins are a regular result,
// not an error status; unknown users, inactive users and wrong passwords share one message.
func (h *Handlers) UserLogin(ctx context.Context, req *librarypb.LoginRequest) (*librarypb.LoginResult, error) {
	account, err := h.authenticator.Authenticate(ctx, req.Username, req.Password)
	if errors.Is(err, catalog.ErrInvalidCredentials) {
		return &librarypb.LoginResult{Success: false, Message: msgInvalidCredentials}, nil
	}

	if err != nil {
		return nil, toStatus(err, msgInvalidCredentials, msgInvalidCredentials)
	}

	if err := catalog.RequirePrivilege(account); errors.Is(err, catalog.ErrInsufficientPrivilege) {
		return &librarypb.LoginResult{Success: false, Message: msgInsufficientPrivilege}, nil
	}

	return &librarypb.LoginResult{
		Success: true,
		UserID:  account.ID,
		Message: fmt.Sprintf(msgWelcome, account.Username),
	}, nil
}

/*** Books ***/

// CreateBook stores a new book with all copies available.
// A taken ISBN is detected by the store alone and answered with codes.AlreadyExists.
func (h *Handlers) CreateBook(ctx context.Context, req *librarypb.CreateBookRequest) (*librarypb.StatusResult, error) {
	id, err := h.newID()
	if err != nil {
		return nil, toStatus(err, msgBookNotFound, msgIDTaken)
	}

	book := catalog.BuildBook(id, req.Title, req.Author, req.Isbn, int(req.TotalCopies), req.ImageURL)

	if err := h.books.Create(ctx, book); err != nil {
		return nil, toStatus(err, msgBookNotFound, msgISBNTaken)
	}

	return &librarypb.StatusResult{Success: true, Message: msgBookCreated, EntityID: id}, nil
}

func (h *Handlers) GetBook(ctx context.Context, req *librarypb.GetBookRequest) (*librarypb.Book, error) {
	book, err := h.books.Get(ctx, req.ID)
	if err != nil {
		return nil, toStatus(err, msgBookNotFound, msgISBNTaken)
	}

	return toWireBook(book), nil
}

// UpdateBookAvailability overwrites title, author, isbn and both copy counters.
// The counters are taken as sent.
func (h *Handlers) UpdateBookAvailability(ctx context.Context, req *librarypb.UpdateBookRequest) (*librarypb.StatusResult, error) {
	update := catalog.BookUpdate{
		Title:           req.Title,
		Author:          req.Author,
		ISBN:            req.Isbn,
		TotalCopies:     int(req.TotalCopies),
		AvailableCopies: int(req.AvailableCopies),
	}

	if err := h.books.Update(ctx, req.ID, update); err != nil {
		return nil, toStatus(err, msgBookNotFound, msgISBNTaken)
	}

	return &librarypb.StatusResult{Success: true, Message: msgBookUpdated}, nil
}

func (h *Handlers) DeleteBook(ctx context.Context, req *librarypb.DeleteBookRequest) (*librarypb.StatusResult, error) {
	if err := h.books.Delete(ctx, req.ID); err != nil {
		return nil, toStatus(err, msgBookNotFound, msgISBNTaken)
	}

	return &librarypb.StatusResult{Success: true, Message: msgBookDeleted}, nil
}

// SearchBooks streams the matching books ordered by title.
func (h *Handlers) SearchBooks(req *librarypb.SearchBooksRequest, stream grpc.ServerStreamingServer[librarypb.Book]) error {
	ctx := catalog.WithEventualConsistency(stream.Context())

	return sendAll(h.books.Search(ctx, req.Query), stream, toWireBook, msgBookNotFound)
}

/*** Staff accounts ***/

// GetAllUsers streams the staff and superuser accounts ordered by id.
func (h *Handlers) GetAllUsers(_ *librarypb.GetAllUsersRequest, stream grpc.ServerStreamingServer[librarypb.User]) error {
	ctx := catalog.WithEventualConsistency(stream.Context())

	return sendAll(h.accounts.ListPrivileged(ctx), stream, toWireUser, msgUserNotFound)
}

func (h *Handlers) GetUserDetail(ctx context.Context, req *librarypb.GetUserDetailRequest) (*librarypb.User, error) {
	account, err := h.accounts.Get(ctx, req.UserID)
	if err != nil {
		return nil, toStatus(err, msgUserNotFound, msgIDTaken)
	}

	return toWireUser(account), nil
}

// DeleteUser deletes an account unless it is a superuser.
// The protection check is part of the delete itself; the follow-up read only picks the status.
func (h *Handlers) DeleteUser(ctx context.Context, req *librarypb.DeleteUserRequest) (*librarypb.StatusResult, error) {
	deleted, err := h.accounts.DeleteUnprotected(ctx, req.UserID)
	if err != nil {
		return nil, toStatus(err, msgUserNotFound, msgIDTaken)
	}

	if deleted {
		return &librarypb.StatusResult{Success: true, Message: msgUserDeleted}, nil
	}

	if _, err := h.accounts.Get(ctx, req.UserID); err != nil {
		return nil, toStatus(err, msgUserNotFound, msgIDTaken)
	}

	return nil, status.Error(codes.PermissionDenied, msgSuperuserProtected)
}

/*** Clients ***/

// CreateClient registers a new patron, dated now.
func (h *Handlers) CreateClient(ctx context.Context, req *librarypb.CreateClientRequest) (*librarypb.StatusResult, error) {
	id, err := h.newID()
	if err != nil {
		return nil, toStatus(err, msgClientNotFound, msgIDTaken)
	}

	client := catalog.Client{
		ID:              id,
		Nom:             req.Nom,
		Email:           req.Email,
		Telephone:       req.Telephone,
		Adresse:         req.Adresse,
		DateInscription: h.now().UTC(),
	}

	if err := h.clients.Create(ctx, client); err != nil {
		return nil, toStatus(err, msgClientNotFound, msgIDTaken)
	}

	return &librarypb.StatusResult{Success: true, Message: msgClientCreated, EntityID: id}, nil
}

func (h *Handlers) GetClient(ctx context.Context, req *librarypb.GetClientRequest) (*librarypb.Client, error) {
	client, err := h.clients.Get(ctx, req.ID)
	if err != nil {
		return nil, toStatus(err, msgClientNotFound, msgIDTaken)
	}

	return toWireClient(client), nil
}

// GetAllClients streams all clients ordered by id.
func (h *Handlers) GetAllClients(_ *librarypb.GetAllClientsRequest, stream grpc.ServerStreamingServer[librarypb.Client]) error {
	ctx := catalog.WithEventualConsistency(stream.Context())

	return sendAll(h.clients.List(ctx), stream, toWireClient, msgClientNotFound)
}

// UpdateClient overwrites the contact fields. The registration date stays as it is.
func (h *Handlers) UpdateClient(ctx context.Context, req *librarypb.UpdateClientRequest) (*librarypb.StatusResult, error) {
	update := catalog.ClientUpdate{
		Nom:       req.Nom,
		Email:     req.Email,
		Telephone: req.Telephone,
		Adresse:   req.Adresse,
	}

	if err := h.clients.Update(ctx, req.ID, update); err != nil {
		return nil, toStatus(err, msgClientNotFound, msgIDTaken)
	}

	return &librarypb.StatusResult{Success: true, Message: msgClientUpdated}, nil
}

func (h *Handlers) DeleteClient(ctx context.Context, req *librarypb.DeleteClientRequest) (*librarypb.StatusResult, error) {
	if err := h.clients.Delete(ctx, req.ID); err != nil {
		return nil, toStatus(err, msgClientNotFound, msgIDTaken)
	}

	return &librarypb.StatusResult{Success: true, Message: msgClientDeleted}, nil
}

/*** Stream helper ***/

// sendAll pulls records from seq and sends them one by one.
// It stops at the first cursor or send failure; leaving the loop releases the cursor.
func sendAll[T, W any](
	seq catalog.Seq[T],
	stream grpc.ServerStreamingServer[W],
	toWire func(T) *W,
	notFound string,
) error {
	for record, err := range seq {
		if err != nil {
			return toStatus(err, notFound, msgIDTaken)
		}

		if err := stream.Send(toWire(record)); err != nil {
			return err
		}
	}

	return nil
}
