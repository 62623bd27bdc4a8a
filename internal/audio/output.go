package audio

import (
	"sync"

	"go.uber.org/zap"
)

// LogOutput is a headless Output that logs each play and keeps a tally.
type LogOutput struct {
	logger *zap.Logger

	mu    sync.Mutex
	plays map[ClipName]int
}

// NewLogOutput creates a LogOutput writing to logger.
func NewLogOutput(logger *zap.Logger) *LogOutput {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogOutput{
		logger: logger,
		plays:  make(map[ClipName]int),
	}
}

// Play implements Output.
func (o *LogOutput) Play(clip ClipName) error {
	if !clip.Valid() {
		return ErrUnknownClip
	}

	o.mu.Lock()
	o.plays[clip]++
	o.mu.Unlock()

	o.logger.Debug("audio clip played", zap.Stringer("clip", clip))
	return nil
}

// Count returns how many times clip was played.
func (o *LogOutput) Count(clip ClipName) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.plays[clip]
}
