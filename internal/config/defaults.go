package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the hardcoded default configuration, used as the
// last fallback when even the embedded YAML fails to parse.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Gameplay: GameplayConfig{
			Lives:        5,
			DebugBitKeys: true,
		},
		Physics: PhysicsConfig{
			MoveSpeed:    450,
			Gravity:      120,
			JumpImpulse:  900,
			MaxFallSpeed: 800,
			CoyoteTicks:  3,
		},
	}
}
