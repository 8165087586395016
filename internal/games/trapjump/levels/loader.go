// Package levels loads trapjump campaigns.
// This package depends on engine but engine does not depend on levels.
package levels

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/trapjump/internal/games/trapjump/engine"
	"github.com/vovakirdan/trapjump/internal/games/trapjump/levels/formats"
)

//go:embed campaign.yaml
var campaignYAML []byte

// Campaign returns the built-in levels.
func Campaign() ([]engine.Level, error) {
	levels, err := formats.ParseYAML(campaignYAML)
	if err != nil {
		return nil, fmt.Errorf("levels: built-in campaign: %w", err)
	}
	return levels, nil
}

// Load returns the levels at path, or the built-in campaign when path is
// empty. A directory is read file by file in name order and the levels are
// concatenated. The result is validated against rules.
func Load(path string, rules engine.Rules) ([]engine.Level, error) {
	var (
		levels []engine.Level
		err    error
	)
	switch {
	case path == "":
		levels, err = Campaign()
	default:
		levels, err = loadPath(path)
	}
	if err != nil {
		return nil, err
	}

	if err := engine.ValidateLevels(levels, rules); err != nil {
		return nil, fmt.Errorf("levels: %w", err)
	}
	return levels, nil
}

func loadPath(path string) ([]engine.Level, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("levels: %w", err)
	}
	if !info.IsDir() {
		return LoadFile(path)
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if isSupportedExtension(strings.ToLower(filepath.Ext(p))) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking directory %s: %w", path, err)
	}

	// Sort by path for determinism
	sort.Strings(files)

	var all []engine.Level
	for _, f := range files {
		lvls, err := LoadFile(f)
		if err != nil {
			return nil, err
		}
		all = append(all, lvls...)
	}
	return all, nil
}

// LoadFile parses a single level file without validating it.
func LoadFile(path string) ([]engine.Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	levels, err := parseByExtension(data, ext)
	if err != nil {
		return nil, fmt.Errorf("levels: parsing file %s: %w", path, err)
	}
	return levels, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) ([]engine.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return nil, fmt.Errorf("unsupported extension: %s", ext)
	}
}
