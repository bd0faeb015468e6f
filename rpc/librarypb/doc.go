// Package librarypb contains the wire messages of the library.LibraryService RPC service,
// its service descriptor, the server registration and a typed client.
//
// Messages travel as JSON under the "json" content-subtype. The codec registers itself
// with grpc's encoding registry on import; the typed client selects it on every call.
// rpc/library.proto describes the same service for callers in other languages.
package librarypb
