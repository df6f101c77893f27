// Package guard holds small building blocks that protect domain invariants.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a
// nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value object or entity as built through its
// constructor. The zero value reports that the object was never constructed,
// so embedding a guard lets Validate reject struct literals such as
// request.Details{} or kernel.Location{}.
//
//	type TimeWindow struct {
//	    startHour int
//	    guard     guard.ConstructorGuard
//	}
//
//	func (w TimeWindow) Validate() error {
//	    return w.guard.Validate(ErrTimeWindowNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that validates successfully.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is
// nil) if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
