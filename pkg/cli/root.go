/*
Copyright © 2025 verctl authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/verctl/verctl/pkg/logging"
	"github.com/verctl/verctl/pkg/serializer"
)

const (
	name           = "verctl"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Flag constructors shared across commands. Each command tree gets fresh
// flag instances since urfave flags carry their parsed state.
func outputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path for the result (default: stdout)",
	}
}

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatJSON),
		Usage:   fmt.Sprintf("Output format (supported values: %v)", serializer.SupportedFormats()),
	}
}

func configFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Sources: cli.EnvVars("VERCTL_CONFIG"),
		Usage:   "Path to config file (default: ./.verctl.yaml when present)",
	}
}

func fileFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "file",
		Aliases: []string{"f"},
		Usage:   "Build file carrying the version line (default: Makefile)",
	}
}

func keyFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "key",
		Usage: "Variable name of the version line in the build file (default: VERSION)",
	}
}

func envDirFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "env-dir",
		Usage: "Directory searched for env files (default: current directory)",
	}
}

func envPatternFlag() *cli.StringSliceFlag {
	return &cli.StringSliceFlag{
		Name:  "env-pattern",
		Usage: "Glob pattern selecting env files to patch, relative to --env-dir (can be repeated)",
	}
}

func envKeyFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "env-key",
		Usage: "Variable name written into env files (default: APP_VERSION)",
	}
}

func logLevelFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "log-level",
		Sources: cli.EnvVars("LOG_LEVEL"),
		Value:   "info",
		Usage:   "Log level (debug, info, warn, error)",
	}
}

// Root builds the verctl command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               version,
		EnableShellCompletion: true,
		Usage:                 "Bump the project version and propagate it into build and env files",
		Description: fmt.Sprintf(`verctl - version bump tool

Version: %s
Commit:  %s
Built:   %s

Reads the current version from the VERSION line of a Makefile-style build
file, bumps the requested component, writes the result back, and patches
matching env files. Versions keep the shape they came with: bumping minor
on "v1" yields "v1.1", bumping patch on "v2" yields "v2.0.1".`, version, commit, date),
		Flags: []cli.Flag{
			logLevelFlag(),
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			bumpCmd("major", "Bump the major version (resets minor and patch)"),
			bumpCmd("minor", "Bump the minor version (resets patch)"),
			bumpCmd("patch", "Bump the patch version"),
			currentCmd(),
		},
	}
}

// Execute runs the CLI and maps any failure to a non-zero exit.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := Root().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
