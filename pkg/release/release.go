/*
Copyright © 2025 verctl authors
SPDX-License-Identifier: Apache-2.0
*/
package release

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/verctl/verctl/pkg/store"
	"github.com/verctl/verctl/pkg/version"
)

// Result describes a completed (or dry-run) version bump.
type Result struct {
	// RunID correlates the result with log output.
	RunID string `json:"runId" yaml:"runId"`

	Previous  string `json:"previous" yaml:"previous"`
	Next      string `json:"next" yaml:"next"`
	Component string `json:"component" yaml:"component"`
	Direction string `json:"direction" yaml:"direction"`
	DryRun    bool   `json:"dryRun,omitempty" yaml:"dryRun,omitempty"`

	// UpdatedFiles lists every file written, build file first.
	// On a dry run it lists the files that would have been written.
	UpdatedFiles []string `json:"updatedFiles" yaml:"updatedFiles"`
}

// Option customizes a Bumper.
type Option func(*Bumper)

// WithDryRun makes the Bumper compute everything but write nothing.
func WithDryRun(dryRun bool) Option {
	return func(b *Bumper) {
		b.dryRun = dryRun
	}
}

// Bumper orchestrates a version bump: read the current version from the
// store, transform it, and propagate the result. The transformation is
// validated before any artifact is written, so a failed bump leaves every
// file untouched.
type Bumper struct {
	store  store.Store
	dryRun bool
}

// New creates a Bumper over the given store.
func New(s store.Store, opts ...Option) *Bumper {
	b := &Bumper{store: s}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Current returns the canonical form of the version currently in the store.
// A store without a version line yields the zero version ("v0").
// Nothing is mutated.
func (b *Bumper) Current(ctx context.Context) (string, error) {
	raw, err := b.store.ReadVersion(ctx)
	if err != nil {
		return "", err
	}
	v, err := version.ParseVersion(raw)
	if err != nil {
		return "", fmt.Errorf("stored version %q: %w", raw, err)
	}
	return v.String(), nil
}

// Bump applies the requested component bump and propagates the new version
// into the build file and every matching env file.
func (b *Bumper) Bump(ctx context.Context, c version.Component, d version.Direction) (*Result, error) {
	runID := uuid.NewString()
	log := slog.With("runId", runID, "component", c.String(), "direction", d.String())

	raw, err := b.store.ReadVersion(ctx)
	if err != nil {
		return nil, err
	}

	current, err := version.ParseVersion(raw)
	if err != nil {
		return nil, fmt.Errorf("stored version %q: %w", raw, err)
	}

	next, err := current.Bump(c, d)
	if err != nil {
		return nil, err
	}
	log.Debug("computed version", "previous", current.String(), "next", next.String())

	result := &Result{
		RunID:     runID,
		Previous:  current.String(),
		Next:      next.String(),
		Component: c.String(),
		Direction: d.String(),
		DryRun:    b.dryRun,
	}

	if b.dryRun {
		envFiles, err := b.store.EnvFiles(ctx)
		if err != nil {
			return nil, err
		}
		result.UpdatedFiles = append([]string{b.store.Source()}, envFiles...)
		log.Info("dry run, no files written", "files", len(result.UpdatedFiles))
		return result, nil
	}

	if err := b.store.WriteVersion(ctx, next.String()); err != nil {
		return nil, err
	}

	patched, err := b.store.PatchEnvFiles(ctx, next.String())
	if err != nil {
		return nil, fmt.Errorf("version written to %s but env file patching failed: %w",
			b.store.Source(), err)
	}

	result.UpdatedFiles = append([]string{b.store.Source()}, patched...)
	log.Info("version bumped",
		"previous", result.Previous,
		"next", result.Next,
		"files", len(result.UpdatedFiles))
	return result, nil
}
