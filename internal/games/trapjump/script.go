package trapjump

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/trapjump/internal/core"
	"github.com/vovakirdan/trapjump/internal/games/trapjump/engine"
)

// ScriptStep holds a set of keys down for a number of ticks.
type ScriptStep struct {
	Hold  []string `yaml:"hold"`
	Ticks int      `yaml:"ticks"`
}

// Script is a recorded input sequence for headless runs.
//
//	seed: 7
//	steps:
//	  - { hold: [right], ticks: 40 }
//	  - { hold: [right, space], ticks: 3 }
type Script struct {
	Seed  int64        `yaml:"seed"`
	Steps []ScriptStep `yaml:"steps"`
}

// ScriptResult summarizes a headless run.
type ScriptResult struct {
	Ticks   int
	Events  map[engine.EventKind]int
	Final   engine.Snapshot
	Summary RunSummary
}

// ParseScript decodes and checks a YAML input script.
func ParseScript(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("script: %w", err)
	}
	if len(s.Steps) == 0 {
		return Script{}, errors.New("script: no steps")
	}
	for i, st := range s.Steps {
		if st.Ticks <= 0 {
			return Script{}, fmt.Errorf("script: step %d: ticks must be positive, got %d", i, st.Ticks)
		}
		for _, k := range st.Hold {
			switch core.ActionForKey(k) {
			case core.ActionNone:
				return Script{}, fmt.Errorf("script: step %d: unknown key %q", i, k)
			case core.ActionQuit:
				return Script{}, fmt.Errorf("script: step %d: %q is not a game key", i, k)
			}
		}
	}
	return s, nil
}

// Frames expands the script into one input frame per tick.
func (s Script) Frames() []core.InputFrame {
	var frames []core.InputFrame
	for _, st := range s.Steps {
		var f core.InputFrame
		for _, k := range st.Hold {
			f.Set(core.ActionForKey(k))
		}
		for i, n := 0, st.Ticks; i < n; i++ {
			frames = append(frames, f)
		}
	}
	return frames
}

// RunScript resets g with the script's seed and plays every frame.
// onEvent, if set, sees each engine event as it happens.
func RunScript(g *Game, s Script, runtime core.RuntimeConfig, onEvent func(engine.Event)) ScriptResult {
	runtime.Seed = s.Seed
	g.Reset(runtime)

	res := ScriptResult{Events: make(map[engine.EventKind]int)}
	for _, f := range s.Frames() {
		g.Step(f)
		res.Ticks++
		for _, ev := range g.LastEvents() {
			res.Events[ev.Kind]++
			if onEvent != nil {
				onEvent(ev)
			}
		}
	}
	res.Final = g.Snapshot()
	res.Summary = g.Summary()
	return res
}
