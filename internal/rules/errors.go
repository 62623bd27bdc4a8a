package rules

import "errors"

var (
	// ErrUnknownDifficulty is returned for a difficulty outside easy, medium and hard.
	ErrUnknownDifficulty = errors.New("difficulty must be one of easy, medium, hard")
	// ErrInvalidRoll is returned when a random roll is outside [0, 1).
	ErrInvalidRoll = errors.New("roll must be in [0, 1)")
	// ErrUnknownBlockKind is returned for a block kind outside the declared set.
	ErrUnknownBlockKind = errors.New("unknown block kind")
)
