// Package keybindings combines a base keybinding file with an optional
// role-specific delta. Keybinding lists are ordered and positional, so a
// delta replaces the base wholesale instead of being merged into it.
package keybindings

import (
	"log/slog"
	"os"

	"github.com/mcncl/cfgmerge/internal/jsonc"
	"github.com/mcncl/cfgmerge/internal/models"
	"github.com/mcncl/cfgmerge/internal/parser"
)

// Resolve picks the document to write: delta when it is an array, base
// otherwise.
func Resolve(base, delta models.JSONValue) models.JSONValue {
	if models.IsArray(delta) {
		return delta
	}
	return base
}

// Merger loads keybinding files.
type Merger struct {
	Options jsonc.Options
}

// NewMerger creates a Merger that strips files with opts.
func NewMerger(opts jsonc.Options) *Merger {
	return &Merger{Options: opts}
}

// Merge loads basePath and, when deltaPath is non-empty and exists, the
// delta, and returns the resolved document. A missing base is an error; a
// missing delta leaves the base in effect.
func (m *Merger) Merge(basePath, deltaPath string) (models.JSONValue, error) {
	base, err := parser.LoadJSONC(basePath, m.Options)
	if err != nil {
		return nil, err
	}
	if !models.IsArray(base) {
		slog.Warn("Base keybindings are not an array", "path", basePath, "kind", models.KindOf(base).String())
	}

	if deltaPath == "" {
		return base, nil
	}
	if _, err := os.Stat(deltaPath); os.IsNotExist(err) {
		slog.Debug("Delta keybindings not found, keeping base", "path", deltaPath)
		return base, nil
	}

	delta, err := parser.LoadJSONC(deltaPath, m.Options)
	if err != nil {
		return nil, err
	}
	if !models.IsArray(delta) {
		slog.Warn("Delta keybindings are not an array, keeping base", "path", deltaPath, "kind", models.KindOf(delta).String())
	}
	return Resolve(base, delta), nil
}
