package action

import "errors"

var (
	// ErrDuplicateAction is returned when a name is registered twice.
	ErrDuplicateAction = errors.New("duplicate action name")

	// ErrUnknownAction is returned when a relationship references a name
	// that was never registered.
	ErrUnknownAction = errors.New("unknown action name")

	// ErrUnknownFactors is returned when a registration references a
	// combination- or partial-safety-factor set missing from the library.
	ErrUnknownFactors = errors.New("unknown factor set")
)
