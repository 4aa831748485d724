// Package kernel provides core domain primitives for the restaurant system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package currently provides UUID, a value object for unique identifiers
// with validation and comparison capabilities. Constructor enforcement for
// commands and queries lives in internal/pkg/guard.
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are designed to be
// immutable and thread-safe, making them suitable for concurrent use.
package kernel
