/*
Copyright © 2025 verctl authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/verctl/verctl/pkg/release"
)

func currentCmd() *cli.Command {
	return &cli.Command{
		Name:                  "current",
		Aliases:               []string{"show"},
		EnableShellCompletion: true,
		Usage:                 "Print the current version without changing anything",
		Description: `Print the current version in canonical form and exit.

Nothing is mutated. A build file without a version line reports the zero
version ("v0"); a missing build file is an error.`,
		Flags: []cli.Flag{
			configFlag(),
			fileFlag(),
			keyFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := buildStore(cmd)
			if err != nil {
				return err
			}

			current, err := release.New(s).Current(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.Writer, current)
			return nil
		},
	}
}
