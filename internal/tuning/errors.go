package tuning

import "errors"

var (
	// ErrLoadFailure wraps every reason a tuning load stopped early. It is
	// reported through Result only and never returned by Load.
	ErrLoadFailure = errors.New("tuning load failed")
	// ErrMissingValues is the cause when the file has no values line.
	ErrMissingValues = errors.New("values line missing")
	// ErrMissingField is the cause when the values line has fewer tokens than fields.
	ErrMissingField = errors.New("value missing for field")
)
