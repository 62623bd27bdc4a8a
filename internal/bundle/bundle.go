// Package bundle locates the bundled read-only assets directory the game
// reads its tuning file from.
package bundle

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when no matching assets directory exists.
var ErrNotFound = errors.New("assets directory not found")

// Resolve returns the absolute path of the assets directory dir. An absolute
// dir must exist as given. A relative dir is looked up from the working
// directory and then from each parent in turn, so binaries and tests run
// from nested directories find the same bundle.
func Resolve(dir string) (string, error) {
	if filepath.IsAbs(dir) {
		if isDir(dir) {
			return dir, nil
		}
		return "", fmt.Errorf("%w: %s", ErrNotFound, dir)
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return resolveFrom(wd, dir)
}

func resolveFrom(start, relative string) (string, error) {
	dir := start
	for {
		candidate := filepath.Join(dir, relative)
		if isDir(candidate) {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("%w: unable to locate %s from %s", ErrNotFound, relative, start)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
