package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (easy, normal, hard)", name)
	}
}

// ApplyTrapJumpPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyTrapJumpPreset(cfg *TrapJumpConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = MaxLives
		cfg.Timing.DisappearDelayMS = 600
		cfg.Timing.ReverseDurationMS = 3000
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Timing.DisappearDelayMS = 150
		cfg.Timing.ReverseDurationMS = 8000
	}
}
