// Package repotest holds behavioural tests every implementation of the catalog repositories must pass.
//
// Each implementation runs the suites from its own _test.go file, passing a factory that
// returns fresh, empty repositories.
package repotest
