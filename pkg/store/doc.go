// Package store isolates the external artifacts a version bump touches
// behind a small storage interface, keeping the core transformer pure.
//
// The Store interface covers three responsibilities:
//
//   - reading the current version from a Makefile-style build file
//     (a missing key line yields "" so the caller can default to the
//     zero version; a missing file is ErrSourceNotFound),
//   - writing the new version back, replacing the key line in place or
//     appending it,
//   - propagating the new version into env files discovered by glob
//     patterns, replacing or appending a derived key-value line.
//
// FileStore is the filesystem implementation. It preserves the surrounding
// formatting of the lines it rewrites ("VERSION ?= v1.2" stays a "?="
// assignment) and patches env files concurrently with fail-fast semantics.
package store
