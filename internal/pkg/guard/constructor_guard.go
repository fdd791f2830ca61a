// Package guard provides ConstructorGuard, a marker embedded in value objects and
// aggregates to tell a value built by its constructor from a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is set only by NewConstructorGuard. Embedding it lets a type reject
// zero values that skipped validation, e.g. a LineItem declared as `var li order.LineItem`.
//
// Example:
//
//	var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem")
//
//	func (li LineItem) Validate() error {
//	    return li.guard.Validate(ErrLineItemIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil) if the
// owner was not created through its constructor.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
