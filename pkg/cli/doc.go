// Package cli implements the command-line interface for the verctl tool.
//
// # Overview
//
// verctl bumps a project version stored in a Makefile-style build file and
// propagates the new value into env files. The version grammar is
// ["v"]major["."minor["."patch]]["-"suffix]; versions keep the component
// shape they came with across bumps.
//
// # Commands
//
// major | minor | patch - Bump a version component:
//
//	verctl minor [--down] [--dry-run] [--output FILE] [--format json|yaml|table]
//
// Increments the component by default; --down (or the legacy positional "-")
// decrements. The bump result (previous and next version, files written) is
// serialized to stdout in JSON by default.
//
// current (alias: show) - Print the current version:
//
//	verctl current [--file Makefile] [--key VERSION]
//
// Read-only; never mutates any file.
//
// # Global Flags
//
//	--log-level    Log verbosity: debug, info, warn, error (default: info)
//
// # Command Flags
//
//	--config, -c      Config file path (default: ./.verctl.yaml when present)
//	--file, -f        Build file carrying the version line (default: Makefile)
//	--key             Version variable name in the build file (default: VERSION)
//	--env-dir         Directory searched for env files (default: .)
//	--env-pattern     Env file glob, relative to --env-dir (repeatable, default: *.env)
//	--env-key         Variable name written into env files (default: APP_VERSION)
//	--dry-run         Compute everything, write nothing
//	--output, -o      Result file path (default: stdout)
//	--format, -t      Result format: json, yaml, table (default: json)
//
// # Exit Codes
//
//	0  Success
//	1  Any error (invalid component, missing build file, rejected bump)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/version - Version parsing and transformation
//   - pkg/release - Bump orchestration
//   - pkg/store - Build file and env file access
//   - pkg/config - Config file loading
//   - pkg/serializer - Output formatting
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/verctl/verctl/pkg/cli.version=1.0.0'"
package cli
