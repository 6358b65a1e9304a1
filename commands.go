package main

import (
	"fmt"
	"log/slog"

	"github.com/mcncl/cfgmerge/internal/errors"
	"github.com/mcncl/cfgmerge/internal/formatter"
	"github.com/mcncl/cfgmerge/internal/keybindings"
	"github.com/mcncl/cfgmerge/internal/listfilter"
	"github.com/mcncl/cfgmerge/internal/merge"
	"github.com/mcncl/cfgmerge/internal/models"
	"github.com/mcncl/cfgmerge/internal/output"
	"github.com/mcncl/cfgmerge/internal/parser"
)

// FilterListCmd merges list files into one.
type FilterListCmd struct {
	Output string   `arg:"" name:"output" help:"File to write the filtered entries to."`
	Inputs []string `arg:"" name:"input" help:"List files to read, in order."`
}

// Run filters every input and writes the entries to Output. Nothing is
// written when an input is missing.
func (c *FilterListCmd) Run(ctx *Context) error {
	entries, err := listfilter.NewFilterer(ctx.Config.List.CommentPrefix).FilterFiles(c.Inputs)
	if err != nil {
		return err
	}
	if err := output.WriteFile(c.Output, listfilter.Render(entries)); err != nil {
		return err
	}
	slog.Debug("Filtered lists", "inputs", len(c.Inputs), "entries", len(entries), "output", c.Output)
	return nil
}

// MergeCmd deep-merges JSONC documents.
type MergeCmd struct {
	Files []string `arg:"" name:"file" help:"JSONC files: the base first, then overrides in increasing precedence."`
}

// Run loads every file, merges them left to right and prints the result.
func (c *MergeCmd) Run(ctx *Context) error {
	opts := ctx.Config.JSONCOptions()
	docs := make([]models.JSONValue, 0, len(c.Files))
	for _, path := range c.Files {
		doc, err := parser.LoadJSONC(path, opts)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}

	merged, err := merge.All(docs...)
	if err != nil {
		return err
	}

	data, err := formatter.NewFormatter(ctx.Config.Output.Indent).Format(merged)
	if err != nil {
		return errors.NewOutputError("failed to render merged JSON", err)
	}
	return output.Write(ctx.Stdout, data)
}

// KeybindingsCmd writes keybindings, optionally replaced by a delta.
type KeybindingsCmd struct {
	Paths []string `arg:"" name:"path" help:"base.jsonc [delta.jsonc] output.json"`
}

// Validate checks the positional argument count.
func (c *KeybindingsCmd) Validate() error {
	if len(c.Paths) < 2 || len(c.Paths) > 3 {
		return fmt.Errorf("expected base.jsonc [delta.jsonc] output.json, got %d arguments", len(c.Paths))
	}
	return nil
}

func (c *KeybindingsCmd) basePath() string { return c.Paths[0] }
func (c *KeybindingsCmd) outputPath() string { return c.Paths[len(c.Paths)-1] }

func (c *KeybindingsCmd) deltaPath() string {
	if len(c.Paths) == 3 {
		return c.Paths[1]
	}
	return ""
}

// Run resolves the keybindings and writes them to the output path.
func (c *KeybindingsCmd) Run(ctx *Context) error {
	doc, err := keybindings.NewMerger(ctx.Config.JSONCOptions()).Merge(c.basePath(), c.deltaPath())
	if err != nil {
		return err
	}

	data, err := formatter.NewFormatter(ctx.Config.Output.Indent).Format(doc)
	if err != nil {
		return errors.NewOutputError("failed to render keybindings", err)
	}
	return output.WriteFile(c.outputPath(), data)
}
