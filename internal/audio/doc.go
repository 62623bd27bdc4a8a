// Package audio owns the single process-wide audio output and the set of
// named sound events. A Bootstrap creates the output on the first
// activation and tears down every later, redundant audio source.
package audio
