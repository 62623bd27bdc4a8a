package tuning

import (
	"fmt"
	"strconv"
	"strings"
)

// FieldCount is the number of positional values on the values line.
const FieldCount = 22

type fieldKind int

const (
	kindFloat fieldKind = iota
	kindInt
	kindPercent
)

// field describes one positional column of the values line.
type field struct {
	name  string
	kind  fieldKind
	apply func(r *Record, f float64, n int)
}

func floatField(name string, set func(r *Record, v float64)) field {
	return field{name: name, kind: kindFloat, apply: func(r *Record, f float64, _ int) { set(r, f) }}
}

func percentField(name string, set func(r *Record, v float64)) field {
	return field{name: name, kind: kindPercent, apply: func(r *Record, f float64, _ int) { set(r, f) }}
}

func intField(name string, set func(r *Record, v int)) field {
	return field{name: name, kind: kindInt, apply: func(r *Record, _ float64, n int) { set(r, n) }}
}

// fields is ordered exactly as the columns of ConfigurationData.csv.
var fields = [FieldCount]field{
	floatField("PaddleMoveUnitsPerSecond", func(r *Record, v float64) { r.paddleMoveUnitsPerSecond = v }),
	floatField("BallLifeSeconds", func(r *Record, v float64) { r.ballLifeSeconds = v }),
	floatField("EasyBallImpulseForce", func(r *Record, v float64) { r.easyBallImpulseForce = v }),
	floatField("EasyMinSpawnSeconds", func(r *Record, v float64) { r.easyMinSpawnSeconds = v }),
	floatField("EasyMaxSpawnSeconds", func(r *Record, v float64) { r.easyMaxSpawnSeconds = v }),
	floatField("MediumBallImpulseForce", func(r *Record, v float64) { r.mediumBallImpulseForce = v }),
	floatField("MediumMinSpawnSeconds", func(r *Record, v float64) { r.mediumMinSpawnSeconds = v }),
	floatField("MediumMaxSpawnSeconds", func(r *Record, v float64) { r.mediumMaxSpawnSeconds = v }),
	floatField("HardBallImpulseForce", func(r *Record, v float64) { r.hardBallImpulseForce = v }),
	floatField("HardMinSpawnSeconds", func(r *Record, v float64) { r.hardMinSpawnSeconds = v }),
	floatField("HardMaxSpawnSeconds", func(r *Record, v float64) { r.hardMaxSpawnSeconds = v }),
	intField("BallsPerGame", func(r *Record, v int) { r.ballsPerGame = v }),
	intField("StandardBlockPoints", func(r *Record, v int) { r.standardBlockPoints = v }),
	intField("BonusBlockPoints", func(r *Record, v int) { r.bonusBlockPoints = v }),
	intField("EffectBlockPoints", func(r *Record, v int) { r.effectBlockPoints = v }),
	percentField("StandardBlockProbability", func(r *Record, v float64) { r.standardBlockProbability = v }),
	percentField("BonusBlockProbability", func(r *Record, v float64) { r.bonusBlockProbability = v }),
	percentField("FreezerBlockProbability", func(r *Record, v float64) { r.freezerBlockProbability = v }),
	percentField("SpeedupBlockProbability", func(r *Record, v float64) { r.speedupBlockProbability = v }),
	floatField("FreezerSeconds", func(r *Record, v float64) { r.freezerSeconds = v }),
	floatField("SpeedupFactor", func(r *Record, v float64) { r.speedupFactor = v }),
	floatField("SpeedupSeconds", func(r *Record, v float64) { r.speedupSeconds = v }),
}

// FieldNames returns the column names in file order.
func FieldNames() []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.name
	}
	return names
}

// set parses token and assigns it to r. r is untouched on error.
func (f field) set(r *Record, token string) error {
	switch f.kind {
	case kindInt:
		n, err := strconv.ParseInt(token, 10, 32)
		if err != nil {
			return fmt.Errorf("field %s: invalid integer %q", f.name, token)
		}
		f.apply(r, 0, int(n))
	default:
		if !decimalForm(token) {
			return fmt.Errorf("field %s: invalid number %q", f.name, token)
		}
		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return fmt.Errorf("field %s: invalid number %q", f.name, token)
		}
		if f.kind == kindPercent {
			v /= 100
		}
		f.apply(r, v, 0)
	}
	return nil
}

// decimalForm rejects the Go literal forms ParseFloat accepts beyond plain
// decimal notation: hex mantissas and digit separators.
func decimalForm(token string) bool {
	if strings.ContainsRune(token, '_') {
		return false
	}
	unsigned := strings.TrimLeft(token, "+-")
	return !strings.HasPrefix(unsigned, "0x") && !strings.HasPrefix(unsigned, "0X")
}
