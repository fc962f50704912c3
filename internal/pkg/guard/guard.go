// Package guard provides ConstructorGuard, a marker embedded in value objects and
// commands so that zero values created without their constructor are rejected.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether its owner was built by a constructor.
//
// Example:
//
//	type ReassignOrderCommand struct {
//	    itemID string
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewReassignOrderCommand(itemID string) ReassignOrderCommand {
//	    return ReassignOrderCommand{itemID: itemID, guard: guard.NewConstructorGuard()}
//	}
//
//	func (c ReassignOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrReassignOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that marks its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
