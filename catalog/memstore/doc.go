// Package memstore provides an in-memory implementation of the catalog repositories.
//
// It backs the "memory" storage driver and the handler tests. A single mutex serializes all
// writes, and the isbn and username indexes play the role of the relational unique constraints.
// Listing operations iterate over a snapshot taken when iteration starts.
package memstore
