// Package helper provides fixtures, repository helpers and observability spies for tests.
package helper
