// Command libraryd runs the library administration RPC service.
//
// Usage:
//
//	libraryd migrate --driver postgres --dsn postgres://...
//	libraryd create-staff --username admin --superuser
//	libraryd serve --listen :50051 --workers 10
//
// Every flag has a LIBRARY_* environment variable counterpart; flags win.
package main

import (
	"os"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCommand(os.Stdin, os.Stdout, os.Stderr, os.LookupEnv).Execute(); err != nil {
		os.Exit(1)
	}
}
