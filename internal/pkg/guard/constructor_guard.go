// Package guard provides a small helper for enforcing constructor usage on
// value objects, commands and queries. A zero-value guard fails validation,
// so any object that embeds a ConstructorGuard and is created by bypassing
// its constructor is detectable.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no custom error
// is supplied for an object that was not properly constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been created through its
// constructor. The zero value is invalid by design: only NewConstructorGuard
// produces a guard that passes Validate.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard creates a properly constructed guard.
// Call it from every constructor of the guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil when the guard was created via NewConstructorGuard.
// For a zero-value guard it returns notConstructedErr, or
// ErrDefaultConstructorGuard when notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.constructed {
		return nil
	}
	if notConstructedErr != nil {
		return notConstructedErr
	}
	return ErrDefaultConstructorGuard
}
