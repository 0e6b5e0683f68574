// Package guard provides ConstructorGuard, a marker that lets commands, queries
// and value objects detect whether they were built by their constructor or are
// an unchecked zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded into types whose invariants are only established
// by a constructor:
//
//	type AutoCancelStaleOrdersCommand struct {
//	    storeID    kernel.UUID
//	    staleAfter time.Duration
//	    guard      guard.ConstructorGuard
//	}
//
//	func (c AutoCancelStaleOrdersCommand) Validate() error {
//	    return c.guard.Validate(ErrAutoCancelStaleOrdersCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the enclosing value as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
