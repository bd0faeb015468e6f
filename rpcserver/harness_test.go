package rpcserver_test

import (
	"context"
	"errors"
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/AntonStoeckl/library-admin-rpc/catalog"
	"github.com/AntonStoeckl/library-admin-rpc/catalog/memstore"
	"github.com/AntonStoeckl/library-admin-rpc/credentials"
	"github.com/AntonStoeckl/library-admin-rpc/rpc/librarypb"
	"github.com/AntonStoeckl/library-admin-rpc/rpcserver"
)

const bufSize = 1024 * 1024

// testRepositories lets single tests swap in failing or blocking repositories.
type testRepositories struct {
	books    catalog.BookRepository
	accounts catalog.StaffAccountRepository
	clients  catalog.ClientRepository
}

func givenMemoryRepositories() (testRepositories, *memstore.Store) {
	store := memstore.New()

	return testRepositories{
		books:    store.Books(),
		accounts: store.StaffAccounts(),
		clients:  store.Clients(),
	}, store
}

// startServer serves the handlers over an in-memory listener and returns a connected client.
func startServer(
	t *testing.T,
	repos testRepositories,
	handlerOptions []rpcserver.HandlerOption,
	serverOptions ...rpcserver.Option,
) (librarypb.LibraryServiceClient, *grpc.ClientConn) {
	t.Helper()

	handlers, err := rpcserver.NewHandlers(
		repos.books,
		repos.accounts,
		repos.clients,
		credentials.NewAuthenticator(repos.accounts),
		handlerOptions...,
	)
	require.NoError(t, err)

	server, err := rpcserver.NewServer(handlers, serverOptions...)
	require.NoError(t, err)

	lis := bufconn.Listen(bufSize)
	go func() {
		_ = server.Serve(lis)
	}()

	conn, err := grpc.NewClient(
		"passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		server.Stop()
	})

	return librarypb.NewLibraryServiceClient(conn), conn
}

func givenClient(t *testing.T, serverOptions ...rpcserver.Option) (librarypb.LibraryServiceClient, *memstore.Store) {
	t.Helper()

	repos, store := givenMemoryRepositories()
	client, _ := startServer(t, repos, nil, serverOptions...)

	return client, store
}

// givenStaffAccountWithPassword provisions an account with a real bcrypt hash.
func givenStaffAccountWithPassword(
	t *testing.T,
	accounts catalog.StaffAccountRepository,
	username, password string,
	isStaff, isSuperuser, isActive bool,
) catalog.StaffAccount {
	t.Helper()

	account, err := credentials.NewStaffAccount(username, username+"@library.test", password, isStaff, isSuperuser, time.Now())
	require.NoError(t, err, "error in arranging test data")
	account.IsActive = isActive

	require.NoError(t, accounts.Create(context.Background(), account), "error in arranging test data")

	return account
}

func assertStatusCode(t *testing.T, err error, expected codes.Code) {
	t.Helper()

	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok, "expected a status error, got %v", err)
	assert.Equal(t, expected, st.Code(), "unexpected status: %s", st.Message())
}

// drain receives from a server stream until it ends and returns the received messages
// together with the error that ended the stream (nil for a clean end).
func drain[T any](t *testing.T, stream grpc.ServerStreamingClient[T]) ([]*T, error) {
	t.Helper()

	received := make([]*T, 0)
	for {
		msg, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return received, nil
		}

		if err != nil {
			return received, err
		}

		received = append(received, msg)
	}
}
