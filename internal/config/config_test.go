package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultGameConfig(t *testing.T) {
	cfg := DefaultGameConfig()
	if cfg.Gameplay.Lives <= 0 {
		t.Error("default lives should be positive")
	}
	if cfg.Physics.Gravity <= 0 {
		t.Error("default gravity should be positive")
	}
	if cfg.Physics.JumpImpulse <= 0 {
		t.Error("default jump impulse should be positive")
	}
}

func TestLoadGameEmbeddedMatchesDefaults(t *testing.T) {
	cfg, err := LoadGame("")
	if err != nil {
		t.Fatalf("LoadGame: %v", err)
	}
	want := DefaultGameConfig()
	if cfg.Gameplay.Lives != want.Gameplay.Lives {
		t.Errorf("lives = %d, want %d", cfg.Gameplay.Lives, want.Gameplay.Lives)
	}
	if cfg.Physics != want.Physics {
		t.Errorf("physics = %+v, want %+v", cfg.Physics, want.Physics)
	}
}

func TestLoadGameCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	content := []byte("gameplay:\n  lives: 2\nphysics:\n  move_speed: 100\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadGame(path)
	if err != nil {
		t.Fatalf("LoadGame: %v", err)
	}
	if cfg.Gameplay.Lives != 2 {
		t.Errorf("lives = %d, want 2", cfg.Gameplay.Lives)
	}
	if cfg.Physics.MoveSpeed != 100 {
		t.Errorf("move_speed = %d, want 100", cfg.Physics.MoveSpeed)
	}
}

func TestLoadGameMissingCustomPath(t *testing.T) {
	if _, err := LoadGame(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing custom config")
	}
}
