// Package credentials verifies staff passwords and provisions staff accounts with bcrypt hashes.
package credentials
