package sim

import "errors"

var (
	// ErrUnrecognizedContact is returned for a category pair the classifier
	// does not model.
	ErrUnrecognizedContact = errors.New("unrecognized contact")
	// ErrNoTransition is returned when an event has no entry for the
	// current round state.
	ErrNoTransition = errors.New("no round transition")
	// ErrGuardRejected is returned when a transition exists but its guard
	// refused it.
	ErrGuardRejected = errors.New("round transition guard rejected")
)
