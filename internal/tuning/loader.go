package tuning

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
)

// FileName is the name of the tuning asset inside the bundled assets directory.
const FileName = "ConfigurationData.csv"

// Status tells how much of a load made it into the record.
type Status int

const (
	// StatusDefaults means no field was read; the record equals Defaults().
	StatusDefaults Status = iota
	// StatusPartial means fields [0, Applied) were read and the rest are defaults.
	StatusPartial
	// StatusLoaded means every field was read from the asset.
	StatusLoaded
)

func (s Status) String() string {
	switch s {
	case StatusLoaded:
		return "loaded"
	case StatusPartial:
		return "partial"
	default:
		return "defaults"
	}
}

// Result describes the outcome of a load. Err is informational only.
type Result struct {
	Status  Status
	Applied int
	Err     error
}

// Complete reports whether every field came from the asset.
func (r Result) Complete() bool {
	return r.Status == StatusLoaded
}

// Load reads the tuning asset at path. It never fails: whatever could not
// be read keeps its default value.
func Load(path string) Record {
	rec, _ := LoadDetailed(path)
	return rec
}

// LoadDetailed behaves like Load and also reports how far the load got.
func LoadDetailed(path string) (Record, Result) {
	f, err := os.Open(path)
	if err != nil {
		return Defaults(), failed(0, fmt.Errorf("open %s: %w", path, err))
	}
	defer f.Close()

	return Parse(f)
}

// Parse runs the load pipeline over r: the first line is a header and is
// discarded, the second line holds the comma-separated values. Fields are
// assigned in order and assignment stops at the first token that is missing
// or does not parse.
func Parse(r io.Reader) (Record, Result) {
	rec := Defaults()

	br := bufio.NewReader(r)
	// header row, not used for lookup
	if _, err := readLine(br); err != nil {
		return rec, failed(0, err)
	}
	line, err := readLine(br)
	if err != nil {
		return rec, failed(0, err)
	}

	tokens := strings.Split(line, ",")
	for i, f := range fields {
		if i >= len(tokens) {
			return rec, failed(i, fmt.Errorf("%w %s at index %d", ErrMissingField, f.name, i))
		}
		if err := f.set(&rec, strings.TrimSpace(tokens[i])); err != nil {
			return rec, failed(i, err)
		}
	}

	return rec, Result{Status: StatusLoaded, Applied: FieldCount}
}

// readLine returns the next line without its terminator. Lines have no
// length limit.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	switch {
	case err == nil:
	case errors.Is(err, io.EOF) && line != "":
	case errors.Is(err, io.EOF):
		return "", ErrMissingValues
	default:
		return "", fmt.Errorf("read: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func failed(applied int, cause error) Result {
	status := StatusPartial
	if applied == 0 {
		status = StatusDefaults
	}
	return Result{
		Status:  status,
		Applied: applied,
		Err:     fmt.Errorf("%w: %w", ErrLoadFailure, cause),
	}
}

// Loader is Load with a logger attached for the swallowed failure.
type Loader struct {
	logger *zap.Logger
}

// NewLoader creates a Loader. A nil logger disables logging.
func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{logger: logger}
}

// Load reads path like LoadDetailed and logs the outcome.
func (l *Loader) Load(path string) (Record, Result) {
	rec, res := LoadDetailed(path)
	if res.Err != nil {
		l.logger.Warn("tuning asset not fully loaded, using defaults for remaining fields",
			zap.String("path", path),
			zap.Stringer("status", res.Status),
			zap.Int("applied", res.Applied),
			zap.Error(res.Err),
		)
		return rec, res
	}
	l.logger.Info("tuning asset loaded", zap.String("path", path), zap.Int("fields", res.Applied))
	return rec, res
}
