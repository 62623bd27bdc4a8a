package rules

import (
	"fmt"
	"math"
	"time"

	"github.com/eugenenazirov/breakout/internal/tuning"
)

// ForDifficulty picks the impulse force and spawn interval bounds for d.
func ForDifficulty(rec tuning.Record, d Difficulty) (DifficultySettings, error) {
	var force, minSec, maxSec float64
	switch d {
	case Easy:
		force, minSec, maxSec = rec.EasyBallImpulseForce(), rec.EasyMinSpawnSeconds(), rec.EasyMaxSpawnSeconds()
	case Medium:
		force, minSec, maxSec = rec.MediumBallImpulseForce(), rec.MediumMinSpawnSeconds(), rec.MediumMaxSpawnSeconds()
	case Hard:
		force, minSec, maxSec = rec.HardBallImpulseForce(), rec.HardMinSpawnSeconds(), rec.HardMaxSpawnSeconds()
	default:
		return DifficultySettings{}, fmt.Errorf("%w: %s", ErrUnknownDifficulty, d)
	}

	return DifficultySettings{
		Difficulty:   d,
		ImpulseForce: force,
		MinSpawn:     seconds(minSec),
		MaxSpawn:     seconds(maxSec),
	}, nil
}

// SpawnDelay maps a uniform roll in [0, 1) onto the spawn interval.
func (s DifficultySettings) SpawnDelay(roll float64) (time.Duration, error) {
	if err := checkRoll(roll); err != nil {
		return 0, err
	}
	span := float64(s.MaxSpawn - s.MinSpawn)
	return s.MinSpawn + time.Duration(roll*span), nil
}

// PickBlockKind maps a uniform roll in [0, 1) onto a block kind using the
// cumulative spawn probabilities in standard, bonus, freezer, speedup order.
// Probabilities are not normalized; a roll past their sum yields Standard.
func PickBlockKind(rec tuning.Record, roll float64) (BlockKind, error) {
	if err := checkRoll(roll); err != nil {
		return 0, err
	}

	weights := [...]struct {
		kind BlockKind
		p    float64
	}{
		{Standard, rec.StandardBlockProbability()},
		{Bonus, rec.BonusBlockProbability()},
		{Freezer, rec.FreezerBlockProbability()},
		{Speedup, rec.SpeedupBlockProbability()},
	}

	cumulative := 0.0
	for _, w := range weights {
		cumulative += w.p
		if roll < cumulative {
			return w.kind, nil
		}
	}
	return Standard, nil
}

// Points returns the score for destroying a block of kind k.
func Points(rec tuning.Record, k BlockKind) (int, error) {
	switch k {
	case Standard:
		return rec.StandardBlockPoints(), nil
	case Bonus:
		return rec.BonusBlockPoints(), nil
	case Freezer, Speedup:
		return rec.EffectBlockPoints(), nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownBlockKind, k)
	}
}

// EffectFor returns the effect triggered by an effect block.
func EffectFor(rec tuning.Record, k BlockKind) (Effect, error) {
	switch k {
	case Freezer:
		return Effect{Kind: k, Duration: seconds(rec.FreezerSeconds()), Factor: 1}, nil
	case Speedup:
		return Effect{Kind: k, Duration: seconds(rec.SpeedupSeconds()), Factor: rec.SpeedupFactor()}, nil
	default:
		return Effect{}, fmt.Errorf("%w: %s blocks have no effect", ErrUnknownBlockKind, k)
	}
}

// BallLifetime returns how long a ball lives.
func BallLifetime(rec tuning.Record) time.Duration {
	return seconds(rec.BallLifeSeconds())
}

func checkRoll(roll float64) error {
	if math.IsNaN(roll) || roll < 0 || roll >= 1 {
		return fmt.Errorf("%w, got %v", ErrInvalidRoll, roll)
	}
	return nil
}

func seconds(v float64) time.Duration {
	return time.Duration(v * float64(time.Second))
}
