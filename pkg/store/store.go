/*
Copyright © 2025 verctl authors
SPDX-License-Identifier: Apache-2.0
*/
package store

import (
	"context"
	"errors"
)

// ErrSourceNotFound indicates the build file the version is read from
// does not exist.
var ErrSourceNotFound = errors.New("version source file not found")

// Store abstracts the external artifacts the version string is read from and
// written to, keeping the core transformer free of I/O.
//
// ReadVersion returns the current version string, or "" when the source file
// exists but carries no version line (the caller treats "" as the zero
// version). WriteVersion replaces the version line in the build file, or
// appends it when missing. PatchEnvFiles replaces or appends the derived
// key-value line in every matching env file and returns the files it touched.
type Store interface {
	// Source returns the path of the build file the version lives in.
	Source() string

	// ReadVersion reads the current version string from the build file.
	// Returns ErrSourceNotFound when the build file does not exist.
	ReadVersion(ctx context.Context) (string, error)

	// WriteVersion writes the new version string into the build file.
	WriteVersion(ctx context.Context, version string) error

	// EnvFiles lists the env files that PatchEnvFiles would touch,
	// without mutating anything. Used by dry runs.
	EnvFiles(ctx context.Context) ([]string, error)

	// PatchEnvFiles propagates the new version into every matching env
	// file and returns the paths that were updated.
	PatchEnvFiles(ctx context.Context, version string) ([]string, error)
}
