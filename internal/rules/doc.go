// Package rules turns a tuning record into the values gameplay asks for:
// per-difficulty launch impulse and spawn delays, block kind selection by
// spawn probability, block scores and effect settings.
package rules
