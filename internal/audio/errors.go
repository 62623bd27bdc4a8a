package audio

import "errors"

var (
	// ErrNotInitialized is returned when a clip is played before any bootstrap ran.
	ErrNotInitialized = errors.New("audio output not initialized")
	// ErrUnknownClip is returned for clip names outside the declared set.
	ErrUnknownClip = errors.New("unknown audio clip")
	// ErrNoOutput is returned when the output factory produced nothing.
	ErrNoOutput = errors.New("audio output factory returned no output")
)
