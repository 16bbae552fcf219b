// Package release orchestrates a single version bump end to end: read the
// current version from a store, apply the requested transformation, and
// propagate the new version into the build file and env files.
//
// The orchestration is fail-fast: the new version is computed and validated
// before anything is written, so a rejected bump (for example one that would
// drive a component negative) leaves every external artifact untouched.
// Each run carries a RunID that ties the returned Result to log output.
package release
