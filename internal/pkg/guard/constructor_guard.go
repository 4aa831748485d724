// Package guard provides a defensive construction pattern for commands and
// value objects. Embedding a ConstructorGuard lets a type detect whether it
// was created through its designated constructor or as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by
// ConstructorGuard.Validate() when a nil error is passed as the validation
// error. This ensures that validation always fails with a meaningful message
// even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures objects are only created through their designated
// constructor functions. The guard works by maintaining an internal flag that
// is only set to true when the object is created through the proper
// constructor. Any attempt to use a zero-value struct will fail validation.
//
// Example usage:
//
//	type CreateOrderCommand struct {
//	    orgID kernel.UUID
//	    guard guard.ConstructorGuard
//	}
//
//	func NewCreateOrderCommand(orgID kernel.UUID) (CreateOrderCommand, error) {
//	    // validate inputs...
//	    return CreateOrderCommand{orgID: orgID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c CreateOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a ConstructorGuard that marks an object as
// properly constructed. This should be called in the constructor of commands
// and value objects.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was properly constructed.
// Returns nil for constructed objects, the provided validationError for zero
// values, and ErrDefaultConstructorGuard if validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
