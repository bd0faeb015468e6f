// Package rpcserver implements the library.LibraryService handlers and the gRPC server
// that hosts them.
//
// Handlers translate wire requests into one repository or authenticator call and map the
// outcome to a response message or a gRPC status. They hold no mutable state; every
// uniqueness decision is left to the store. Around the handlers the server installs a
// concurrency limiter (a fixed number of calls in flight) and per-call observability.
package rpcserver
