// Package mocks provides hand-written mock implementations of the store
// and auth interfaces for handler and middleware tests. Each mock has an
// in-memory default behavior plus per-method function fields for
// overriding individual calls.
package mocks
