package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/reeflective/clargs"
	"github.com/reeflective/clargs/types"
)

//
// This file declares a small copy tool, showing most argument forms:
// counting flags, options with defaults and validation, multi-value
// options, and fixed, infinite and last positionals.
//

type copyArgs struct {
	Verbose   types.Counter `short:"v" desc:"increase verbosity (-vvv)"`
	Force     bool          `short:"f" desc:"overwrite existing files"`
	Mode      string        `short:"m" default:"0644" validate:"numeric" desc:"permissions of copied files"`
	Exclude   []string      `short:"x" alias:"ignore" desc:"patterns to exclude, comma-separated"`
	Backup    *string       `desc:"keep a backup of overwritten files, with an optional suffix"`
	Config    string        `short:"c" env:"COPY_CONFIG" desc:"defaults file (TOML)"`
	Source    string        `pos:"1" desc:"first file to copy"`
	Files     []string      `pos:"inf" desc:"other files to copy"`
	Directory string        `pos:"last" desc:"target directory"`
}

func main() {
	schema := clargs.Schema{
		Name:        "copy",
		Version:     "0.1.0",
		Description: "Copy files to a directory.",
		Doc:         "Copy copies one or more files to a target directory, optionally keeping backups of the files it overwrites.",
	}

	opts := []clargs.Option{
		clargs.WithEnvPrefix("COPY_"),
		clargs.WithValidation(),
	}

	if os.Getenv("COPY_DEBUG") != "" {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		opts = append(opts, clargs.WithLogger(logger))
	}

	args, err := clargs.Scan(&copyArgs{})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(int(clargs.ExitSoftware))
	}

	schema.Args = args

	reg, err := clargs.Parse(schema, opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(int(clargs.ExitSoftware))
	}

	if code, exited := reg.ExitArgs(os.Stdout, nil); exited {
		os.Exit(int(code))
	}

	if config := reg.Value("config"); config != "" {
		defaults, err := clargs.LoadTOML(config)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(int(clargs.ExitConfig))
		}

		opts = append(opts, clargs.WithDefaults(defaults))
	}

	cfg := &copyArgs{}

	reg, err = clargs.FromArgs(cfg, os.Args[1:], opts...)
	if err != nil {
		os.Exit(int(clargs.PrintUsageError(os.Stderr, reg, err)))
	}

	for _, file := range append([]string{cfg.Source}, cfg.Files...) {
		fmt.Printf("copying %s to %s (mode %s, verbosity %d)\n", file, cfg.Directory, cfg.Mode, cfg.Verbose)
	}
}
