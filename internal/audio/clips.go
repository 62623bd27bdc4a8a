package audio

import "fmt"

// ClipName identifies a sound event the game can play.
type ClipName int

const (
	BallCollision ClipName = iota
	BallLost
	BallSpawn
	FreezerEffectActivated
	FreezerEffectDeactivated
	GameLost
	MenuButtonClick
	SpeedupEffectActivated
	SpeedupEffectDeactivated
)

var clipNames = [...]string{
	BallCollision:            "BallCollision",
	BallLost:                 "BallLost",
	BallSpawn:                "BallSpawn",
	FreezerEffectActivated:   "FreezerEffectActivated",
	FreezerEffectDeactivated: "FreezerEffectDeactivated",
	GameLost:                 "GameLost",
	MenuButtonClick:          "MenuButtonClick",
	SpeedupEffectActivated:   "SpeedupEffectActivated",
	SpeedupEffectDeactivated: "SpeedupEffectDeactivated",
}

func (c ClipName) String() string {
	if !c.Valid() {
		return fmt.Sprintf("ClipName(%d)", int(c))
	}
	return clipNames[c]
}

// Valid reports whether c is one of the declared clips.
func (c ClipName) Valid() bool {
	return c >= 0 && int(c) < len(clipNames)
}

// Clips returns every clip in declaration order.
func Clips() []ClipName {
	out := make([]ClipName, len(clipNames))
	for i := range clipNames {
		out[i] = ClipName(i)
	}
	return out
}

// ParseClipName maps a clip's String form back to the clip.
func ParseClipName(name string) (ClipName, error) {
	for i, n := range clipNames {
		if n == name {
			return ClipName(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownClip, name)
}
