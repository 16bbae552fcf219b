/*
Copyright © 2025 verctl authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/verctl/verctl/pkg/config"
	"github.com/verctl/verctl/pkg/serializer"
	"github.com/verctl/verctl/pkg/store"
)

// parseOutputFormat resolves the --format flag into a serializer format.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported values: %v)",
			cmd.String("format"), serializer.SupportedFormats())
	}
	return f, nil
}

// loadConfig loads the config named by --config, or discovers the default
// config file in the working directory.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	if path := cmd.String("config"); path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("loading config %s: %w", path, err)
		}
		return cfg, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return config.LoadFromDir(wd)
}

// buildStore resolves config and flag overrides into a FileStore.
// Flags win over the config file, which wins over defaults.
func buildStore(cmd *cli.Command) (*store.FileStore, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	if f := cmd.String("file"); f != "" {
		cfg.File = f
	}
	if k := cmd.String("key"); k != "" {
		cfg.Key = k
	}
	if d := cmd.String("env-dir"); d != "" {
		cfg.EnvDir = d
	}
	if p := cmd.StringSlice("env-pattern"); len(p) > 0 {
		cfg.EnvPatterns = p
	}
	if k := cmd.String("env-key"); k != "" {
		cfg.EnvKey = k
	}

	return store.NewFileStore(
		filepath.Clean(cfg.File),
		cfg.Key,
		cfg.EnvDir,
		cfg.EnvKey,
		cfg.EnvPatterns,
	)
}

// newResultWriter builds the serializer for --output/--format.
func newResultWriter(cmd *cli.Command) (*serializer.Writer, error) {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return nil, err
	}
	return serializer.NewFileWriterOrStdout(format, cmd.String("output")), nil
}
