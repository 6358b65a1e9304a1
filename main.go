package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/mcncl/cfgmerge/internal/config"
	"github.com/mcncl/cfgmerge/internal/errors"
	"github.com/mcncl/cfgmerge/internal/log"
)

// CLI defines the command-line interface
type CLI struct {
	Config      string           `help:"Path to a YAML config file. Defaults to .cfgmerge.yml in the working directory or a parent." short:"c" type:"path"`
	Indent      int              `help:"Spaces per indentation level in JSON output (overrides config)."`
	StringAware bool             `help:"Treat /* and trailing commas inside JSON strings as text instead of stripping them." name:"string-aware"`
	Debug       bool             `help:"Enable debug logging." short:"d"`
	Version     kong.VersionFlag `help:"Show version information." short:"v"`

	FilterList  FilterListCmd  `cmd:"" name:"filter-list" help:"Filter list files (drop blank and # comment lines) and concatenate them into one output file."`
	Merge       MergeCmd       `cmd:"" help:"Deep-merge JSONC files and print the result as JSON."`
	Keybindings KeybindingsCmd `cmd:"" help:"Write base keybindings, replaced wholesale by a delta list when one is given."`
}

// Context holds the runtime context
type Context struct {
	Config *config.Config
	Stdout io.Writer
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func newParser(cli *CLI, stdout, stderr io.Writer, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("cfgmerge"),
		kong.Description("Build-time configuration utilities: list filtering, JSONC deep-merge and keybinding merge."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Vars{"version": "cfgmerge version " + Version},
	}, options...)
	return kong.New(cli, options...)
}

// run parses args, executes the selected command and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	var cli CLI
	parser, err := newParser(&cli, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "%s\n", errors.UserFriendlyError(errors.NewUsageError(err.Error())))
		fmt.Fprintf(stderr, "\nFor help, run: cfgmerge --help\n")
		return 1
	}

	levels := log.Setup(cli.Debug)

	cfg, err := config.LoadConfigWithCLI(cli.Config, config.Overrides{
		Indent:      cli.Indent,
		StringAware: cli.StringAware,
		Debug:       cli.Debug,
	})
	if err != nil {
		fmt.Fprintf(stderr, "%s\n", errors.UserFriendlyError(errors.NewConfigError(err.Error(), err)))
		return 1
	}
	if cfg.Dev.Debug {
		levels.Set(slog.LevelDebug)
	}
	slog.Debug("Configuration loaded", "command", ctx.Command(), "indent", cfg.Output.Indent, "stringAware", cfg.JSONC.StringAware)

	if err := ctx.Run(&Context{Config: cfg, Stdout: stdout}); err != nil {
		fmt.Fprintf(stderr, "%s\n", errors.UserFriendlyError(err))
		return 1
	}
	return 0
}
