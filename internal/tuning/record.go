package tuning

// Record holds the tuning parameters consumed by the gameplay systems. The
// zero value is not useful; start from Defaults or one of the load functions.
type Record struct {
	paddleMoveUnitsPerSecond float64
	ballLifeSeconds          float64
	easyBallImpulseForce     float64
	easyMinSpawnSeconds      float64
	easyMaxSpawnSeconds      float64
	mediumBallImpulseForce   float64
	mediumMinSpawnSeconds    float64
	mediumMaxSpawnSeconds    float64
	hardBallImpulseForce     float64
	hardMinSpawnSeconds      float64
	hardMaxSpawnSeconds      float64
	ballsPerGame             int
	standardBlockPoints      int
	bonusBlockPoints         int
	effectBlockPoints        int
	standardBlockProbability float64
	bonusBlockProbability    float64
	freezerBlockProbability  float64
	speedupBlockProbability  float64
	freezerSeconds           float64
	speedupFactor            float64
	speedupSeconds           float64
}

// Defaults returns the built-in tuning used whenever the asset cannot be read.
func Defaults() Record {
	return Record{
		paddleMoveUnitsPerSecond: 10,
		ballLifeSeconds:          10,
		easyBallImpulseForce:     200,
		easyMinSpawnSeconds:      5,
		easyMaxSpawnSeconds:      10,
		mediumBallImpulseForce:   300,
		mediumMinSpawnSeconds:    3,
		mediumMaxSpawnSeconds:    7,
		hardBallImpulseForce:     400,
		hardMinSpawnSeconds:      2,
		hardMaxSpawnSeconds:      5,
		ballsPerGame:             5,
		standardBlockPoints:      1,
		bonusBlockPoints:         2,
		effectBlockPoints:        5,
		standardBlockProbability: 0.7,
		bonusBlockProbability:    0.2,
		freezerBlockProbability:  0.05,
		speedupBlockProbability:  0.05,
		freezerSeconds:           2,
		speedupFactor:            2,
		speedupSeconds:           2,
	}
}

// PaddleMoveUnitsPerSecond returns how fast the paddle moves.
func (r Record) PaddleMoveUnitsPerSecond() float64 { return r.paddleMoveUnitsPerSecond }

// BallLifeSeconds returns how long a ball lives before it is removed.
func (r Record) BallLifeSeconds() float64 { return r.ballLifeSeconds }

// EasyBallImpulseForce returns the launch impulse for a ball in an easy game.
func (r Record) EasyBallImpulseForce() float64 { return r.easyBallImpulseForce }

// EasyMinSpawnSeconds returns the shortest ball spawn interval in an easy game.
func (r Record) EasyMinSpawnSeconds() float64 { return r.easyMinSpawnSeconds }

// EasyMaxSpawnSeconds returns the longest ball spawn interval in an easy game.
func (r Record) EasyMaxSpawnSeconds() float64 { return r.easyMaxSpawnSeconds }

// MediumBallImpulseForce returns the launch impulse for a ball in a medium game.
func (r Record) MediumBallImpulseForce() float64 { return r.mediumBallImpulseForce }

// MediumMinSpawnSeconds returns the shortest ball spawn interval in a medium game.
func (r Record) MediumMinSpawnSeconds() float64 { return r.mediumMinSpawnSeconds }

// MediumMaxSpawnSeconds returns the longest ball spawn interval in a medium game.
func (r Record) MediumMaxSpawnSeconds() float64 { return r.mediumMaxSpawnSeconds }

// HardBallImpulseForce returns the launch impulse for a ball in a hard game.
func (r Record) HardBallImpulseForce() float64 { return r.hardBallImpulseForce }

// HardMinSpawnSeconds returns the shortest ball spawn interval in a hard game.
func (r Record) HardMinSpawnSeconds() float64 { return r.hardMinSpawnSeconds }

// HardMaxSpawnSeconds returns the longest ball spawn interval in a hard game.
func (r Record) HardMaxSpawnSeconds() float64 { return r.hardMaxSpawnSeconds }

// BallsPerGame returns the number of balls a player gets.
func (r Record) BallsPerGame() int { return r.ballsPerGame }

// StandardBlockPoints returns the score for a standard block.
func (r Record) StandardBlockPoints() int { return r.standardBlockPoints }

// BonusBlockPoints returns the score for a bonus block.
func (r Record) BonusBlockPoints() int { return r.bonusBlockPoints }

// EffectBlockPoints returns the score for a freezer or speedup block.
func (r Record) EffectBlockPoints() int { return r.effectBlockPoints }

// StandardBlockProbability returns the chance, as a fraction, that a level
// slot gets a standard block.
func (r Record) StandardBlockProbability() float64 { return r.standardBlockProbability }

// BonusBlockProbability returns the chance that a level slot gets a bonus block.
func (r Record) BonusBlockProbability() float64 { return r.bonusBlockProbability }

// FreezerBlockProbability returns the chance that a level slot gets a freezer block.
func (r Record) FreezerBlockProbability() float64 { return r.freezerBlockProbability }

// SpeedupBlockProbability returns the chance that a level slot gets a speedup block.
func (r Record) SpeedupBlockProbability() float64 { return r.speedupBlockProbability }

// FreezerSeconds returns how long the freezer effect lasts.
func (r Record) FreezerSeconds() float64 { return r.freezerSeconds }

// SpeedupFactor returns the ball speed multiplier of the speedup effect.
func (r Record) SpeedupFactor() float64 { return r.speedupFactor }

// SpeedupSeconds returns how long the speedup effect lasts.
func (r Record) SpeedupSeconds() float64 { return r.speedupSeconds }

// Values is an exported copy of a Record for serialization.
type Values struct {
	PaddleMoveUnitsPerSecond float64 `json:"paddleMoveUnitsPerSecond" yaml:"paddle_move_units_per_second" toml:"paddle_move_units_per_second"`
	BallLifeSeconds          float64 `json:"ballLifeSeconds" yaml:"ball_life_seconds" toml:"ball_life_seconds"`
	EasyBallImpulseForce     float64 `json:"easyBallImpulseForce" yaml:"easy_ball_impulse_force" toml:"easy_ball_impulse_force"`
	EasyMinSpawnSeconds      float64 `json:"easyMinSpawnSeconds" yaml:"easy_min_spawn_seconds" toml:"easy_min_spawn_seconds"`
	EasyMaxSpawnSeconds      float64 `json:"easyMaxSpawnSeconds" yaml:"easy_max_spawn_seconds" toml:"easy_max_spawn_seconds"`
	MediumBallImpulseForce   float64 `json:"mediumBallImpulseForce" yaml:"medium_ball_impulse_force" toml:"medium_ball_impulse_force"`
	MediumMinSpawnSeconds    float64 `json:"mediumMinSpawnSeconds" yaml:"medium_min_spawn_seconds" toml:"medium_min_spawn_seconds"`
	MediumMaxSpawnSeconds    float64 `json:"mediumMaxSpawnSeconds" yaml:"medium_max_spawn_seconds" toml:"medium_max_spawn_seconds"`
	HardBallImpulseForce     float64 `json:"hardBallImpulseForce" yaml:"hard_ball_impulse_force" toml:"hard_ball_impulse_force"`
	HardMinSpawnSeconds      float64 `json:"hardMinSpawnSeconds" yaml:"hard_min_spawn_seconds" toml:"hard_min_spawn_seconds"`
	HardMaxSpawnSeconds      float64 `json:"hardMaxSpawnSeconds" yaml:"hard_max_spawn_seconds" toml:"hard_max_spawn_seconds"`
	BallsPerGame             int     `json:"ballsPerGame" yaml:"balls_per_game" toml:"balls_per_game"`
	StandardBlockPoints      int     `json:"standardBlockPoints" yaml:"standard_block_points" toml:"standard_block_points"`
	BonusBlockPoints         int     `json:"bonusBlockPoints" yaml:"bonus_block_points" toml:"bonus_block_points"`
	EffectBlockPoints        int     `json:"effectBlockPoints" yaml:"effect_block_points" toml:"effect_block_points"`
	StandardBlockProbability float64 `json:"standardBlockProbability" yaml:"standard_block_probability" toml:"standard_block_probability"`
	BonusBlockProbability    float64 `json:"bonusBlockProbability" yaml:"bonus_block_probability" toml:"bonus_block_probability"`
	FreezerBlockProbability  float64 `json:"freezerBlockProbability" yaml:"freezer_block_probability" toml:"freezer_block_probability"`
	SpeedupBlockProbability  float64 `json:"speedupBlockProbability" yaml:"speedup_block_probability" toml:"speedup_block_probability"`
	FreezerSeconds           float64 `json:"freezerSeconds" yaml:"freezer_seconds" toml:"freezer_seconds"`
	SpeedupFactor            float64 `json:"speedupFactor" yaml:"speedup_factor" toml:"speedup_factor"`
	SpeedupSeconds           float64 `json:"speedupSeconds" yaml:"speedup_seconds" toml:"speedup_seconds"`
}

// Values copies the record into its serializable form.
func (r Record) Values() Values {
	return Values{
		PaddleMoveUnitsPerSecond: r.paddleMoveUnitsPerSecond,
		BallLifeSeconds:          r.ballLifeSeconds,
		EasyBallImpulseForce:     r.easyBallImpulseForce,
		EasyMinSpawnSeconds:      r.easyMinSpawnSeconds,
		EasyMaxSpawnSeconds:      r.easyMaxSpawnSeconds,
		MediumBallImpulseForce:   r.mediumBallImpulseForce,
		MediumMinSpawnSeconds:    r.mediumMinSpawnSeconds,
		MediumMaxSpawnSeconds:    r.mediumMaxSpawnSeconds,
		HardBallImpulseForce:     r.hardBallImpulseForce,
		HardMinSpawnSeconds:      r.hardMinSpawnSeconds,
		HardMaxSpawnSeconds:      r.hardMaxSpawnSeconds,
		BallsPerGame:             r.ballsPerGame,
		StandardBlockPoints:      r.standardBlockPoints,
		BonusBlockPoints:         r.bonusBlockPoints,
		EffectBlockPoints:        r.effectBlockPoints,
		StandardBlockProbability: r.standardBlockProbability,
		BonusBlockProbability:    r.bonusBlockProbability,
		FreezerBlockProbability:  r.freezerBlockProbability,
		SpeedupBlockProbability:  r.speedupBlockProbability,
		FreezerSeconds:           r.freezerSeconds,
		SpeedupFactor:            r.speedupFactor,
		SpeedupSeconds:           r.speedupSeconds,
	}
}
