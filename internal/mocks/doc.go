// Package mocks provides hand-rolled, map-backed implementations of the
// store interfaces for use in unit tests. Every method can be overridden
// through a function field when a test needs specific failure behavior.
package mocks
