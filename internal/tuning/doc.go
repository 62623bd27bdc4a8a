// Package tuning loads the game's difficulty, scoring and physics tuning
// parameters from the bundled ConfigurationData.csv asset. Loading never
// fails from the caller's point of view: any read or parse problem leaves
// the built-in defaults in place for every field that was not reached.
package tuning
