package rules

import (
	"fmt"
	"strings"
	"time"
)

// Difficulty is the tier a game is played at.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

// ParseDifficulty accepts easy, medium or hard in any case.
func ParseDifficulty(raw string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDifficulty, raw)
	}
}

// DifficultySettings are the ball parameters for one difficulty.
type DifficultySettings struct {
	Difficulty   Difficulty
	ImpulseForce float64
	MinSpawn     time.Duration
	MaxSpawn     time.Duration
}

// BlockKind is the type of block placed in a level slot.
type BlockKind int

const (
	Standard BlockKind = iota
	Bonus
	Freezer
	Speedup
)

var blockKindNames = [...]string{
	Standard: "standard",
	Bonus:    "bonus",
	Freezer:  "freezer",
	Speedup:  "speedup",
}

func (k BlockKind) String() string {
	if k < 0 || int(k) >= len(blockKindNames) {
		return fmt.Sprintf("BlockKind(%d)", int(k))
	}
	return blockKindNames[k]
}

// IsEffect reports whether hitting the block triggers an effect.
func (k BlockKind) IsEffect() bool {
	return k == Freezer || k == Speedup
}

// Effect describes what an effect block does when hit. Factor is 1 for
// effects that do not scale ball speed.
type Effect struct {
	Kind     BlockKind
	Duration time.Duration
	Factor   float64
}
