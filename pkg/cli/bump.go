/*
Copyright © 2025 verctl authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/verctl/verctl/pkg/release"
	verpkg "github.com/verctl/verctl/pkg/version"
)

func bumpCmd(component, usage string) *cli.Command {
	return &cli.Command{
		Name:                  component,
		EnableShellCompletion: true,
		Usage:                 usage,
		ArgsUsage:             "[-]",
		Description: fmt.Sprintf(`Bump the %s component of the current version.

The direction defaults to increment. Pass --down (or the legacy positional
"-") to decrement instead. Decrementing below zero fails; a patch decrement
borrows from the next higher non-zero component first.

The version keeps the shape it came with: components absent from the current
version stay absent unless the bump itself creates them.

# Examples

Increment and write back:
  verctl %[1]s

Decrement:
  verctl %[1]s --down

Preview without writing anything:
  verctl %[1]s --dry-run --format table`, component),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "down",
				Aliases: []string{"d"},
				Usage:   "Decrement instead of increment",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Compute the new version but write nothing",
			},
			configFlag(),
			fileFlag(),
			keyFlag(),
			envDirFlag(),
			envPatternFlag(),
			envKeyFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			c, err := verpkg.ParseComponent(component)
			if err != nil {
				return err
			}

			direction := verpkg.DirectionIncrement
			if cmd.Bool("down") || cmd.Args().First() == "-" {
				direction = verpkg.DirectionDecrement
			}

			writer, err := newResultWriter(cmd)
			if err != nil {
				return err
			}
			defer func() {
				if err := writer.Close(); err != nil {
					slog.Warn("failed to close result writer", "error", err)
				}
			}()

			s, err := buildStore(cmd)
			if err != nil {
				return err
			}

			bumper := release.New(s, release.WithDryRun(cmd.Bool("dry-run")))
			result, err := bumper.Bump(ctx, c, direction)
			if err != nil {
				return err
			}

			return writer.Serialize(result)
		},
	}
}
