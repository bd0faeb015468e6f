package rpcserver

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/AntonStoeckl/library-admin-rpc/catalog"
)

// toStatus converts a repository or authenticator error into a gRPC status error.
// notFound is the message sent with codes.NotFound, conflict the one sent with codes.AlreadyExists.
func toStatus(err error, notFound, conflict string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "request deadline exceeded")
	case errors.Is(err, catalog.ErrNotFound):
		return status.Error(codes.NotFound, notFound)
	case errors.Is(err, catalog.ErrConflict):
		return status.Error(codes.AlreadyExists, conflict)
	case errors.Is(err, catalog.ErrPermissionDenied):
		return status.Error(codes.PermissionDenied, msgSuperuserProtected)
	default:
		return status.Error(codes.Internal, "internal error: "+flatten(err))
	}
}

// flatten renders joined errors on a single line.
func flatten(err error) string {
	return strings.ReplaceAll(err.Error(), "\n", ": ")
}
