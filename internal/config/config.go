// Package config provides YAML-based configuration loading for the game
// runtime: physics tuning, lives, and level source overrides.
package config

// GameConfig contains all tunable gameplay configuration.
type GameConfig struct {
	Gameplay GameplayConfig `yaml:"gameplay"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Levels   LevelsConfig   `yaml:"levels"`
}

// GameplayConfig defines run-level parameters. DebugBitKeys enables the
// number-row keys that flip mask bits directly, bypassing terminals.
type GameplayConfig struct {
	Lives        int  `yaml:"lives"`
	DebugBitKeys bool `yaml:"debug_bit_keys"`
}

// PhysicsConfig defines player movement parameters. Values are in
// fixed-point units per tick (1 cell = 1000 units) so the simulation stays
// deterministic across platforms.
type PhysicsConfig struct {
	MoveSpeed    int `yaml:"move_speed"`
	Gravity      int `yaml:"gravity"`
	JumpImpulse  int `yaml:"jump_impulse"`
	MaxFallSpeed int `yaml:"max_fall_speed"`
	CoyoteTicks  int `yaml:"coyote_ticks"`
}

// LevelsConfig points the loader at an alternate level directory.
// Empty means the embedded campaign.
type LevelsConfig struct {
	Dir string `yaml:"dir"`
}
