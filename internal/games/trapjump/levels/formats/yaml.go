// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"

	"github.com/vovakirdan/trapjump/internal/core"
	"github.com/vovakirdan/trapjump/internal/games/trapjump/engine"
	"gopkg.in/yaml.v3"
)

// YAMLCampaign is the top-level structure of a level file.
type YAMLCampaign struct {
	Levels []YAMLLevel `yaml:"levels"`
}

// YAMLLevel represents one level record.
type YAMLLevel struct {
	ID        int         `yaml:"id"`
	Name      string      `yaml:"name"`
	Spawn     YAMLPoint   `yaml:"spawn"`
	Exit      YAMLPoint   `yaml:"exit"`
	Platforms []YAMLPoint `yaml:"platforms"`
	Traps     []YAMLTrap  `yaml:"traps,omitempty"`
}

// YAMLPoint is a world position.
type YAMLPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// YAMLTrap represents a trap platform.
type YAMLTrap struct {
	ID     string  `yaml:"id"`
	Type   string  `yaml:"type"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ParseYAML parses a level file into engine levels.
// Structural checks (ids, kinds, bounds) are left to engine.ValidateLevels.
func ParseYAML(data []byte) ([]engine.Level, error) {
	var yc YAMLCampaign
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	levels := make([]engine.Level, 0, len(yc.Levels))
	for _, yl := range yc.Levels {
		lvl := engine.Level{
			ID:        yl.ID,
			Name:      yl.Name,
			Spawn:     core.Vec{X: yl.Spawn.X, Y: yl.Spawn.Y},
			Exit:      core.Vec{X: yl.Exit.X, Y: yl.Exit.Y},
			Platforms: make([]engine.Platform, 0, len(yl.Platforms)),
			Traps:     make([]engine.Trap, 0, len(yl.Traps)),
		}
		for _, p := range yl.Platforms {
			lvl.Platforms = append(lvl.Platforms, engine.Platform{X: p.X, Y: p.Y})
		}
		for _, t := range yl.Traps {
			lvl.Traps = append(lvl.Traps, engine.Trap{
				ID:   t.ID,
				Kind: engine.TrapKind(t.Type),
				X:    t.X,
				Y:    t.Y,
				W:    t.Width,
				H:    t.Height,
			})
		}
		levels = append(levels, lvl)
	}
	return levels, nil
}

// MarshalYAML encodes levels in the same shape ParseYAML reads.
func MarshalYAML(levels []engine.Level) ([]byte, error) {
	yc := YAMLCampaign{Levels: make([]YAMLLevel, 0, len(levels))}
	for _, lvl := range levels {
		yl := YAMLLevel{
			ID:    lvl.ID,
			Name:  lvl.Name,
			Spawn: YAMLPoint{X: lvl.Spawn.X, Y: lvl.Spawn.Y},
			Exit:  YAMLPoint{X: lvl.Exit.X, Y: lvl.Exit.Y},
		}
		for _, p := range lvl.Platforms {
			yl.Platforms = append(yl.Platforms, YAMLPoint{X: p.X, Y: p.Y})
		}
		for _, t := range lvl.Traps {
			yl.Traps = append(yl.Traps, YAMLTrap{
				ID:     t.ID,
				Type:   string(t.Kind),
				X:      t.X,
				Y:      t.Y,
				Width:  t.W,
				Height: t.H,
			})
		}
		yc.Levels = append(yc.Levels, yl)
	}

	data, err := yaml.Marshal(yc)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
