package walk

import "errors"

var (
	// ErrInvalidArgument is returned by constructors when a step or walker
	// count is not positive.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange is returned by Simulation.Walker when the index does not
	// address an owned walker.
	ErrOutOfRange = errors.New("index out of range")
)
