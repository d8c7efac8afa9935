// Package ports declares the boundary interfaces of the bough module.
//
// Adapters under pkg/adapters implement these interfaces; the reusable
// compliance suites under pkg/ports/tests verify that an implementation
// honors the contract without duplicating the test matrix per backend.
package ports
