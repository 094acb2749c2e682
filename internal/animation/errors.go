package animation

import "errors"

var (
	// ErrNotArmed is returned when an animation is evaluated before its
	// snapshots were captured.
	ErrNotArmed = errors.New("animation not armed")
	// ErrAlreadyArmed is returned by a second Arm call.
	ErrAlreadyArmed = errors.New("animation already armed")
	// ErrKeyMismatch means initial and final snapshots govern different attributes.
	ErrKeyMismatch = errors.New("snapshot attribute keys differ")
	// ErrUnknownAttribute is returned by targets that do not carry the requested key.
	ErrUnknownAttribute = errors.New("unknown attribute")
	// ErrValueShape means two values with different component counts met.
	ErrValueShape = errors.New("attribute value shape mismatch")
)
