// Package logging provides structured logging utilities for verctl.
//
// # Overview
//
// This package wraps the standard library slog package with verctl-specific
// defaults and conventions for consistent logging. It supports
// environment-based log level configuration, module/version context
// injection, and automatic source location tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("verctl", version)
//
//	    slog.Info("bumping version", "component", "minor")
//	    slog.Debug("detailed state", "data", complexObject)
//	    slog.Error("operation failed", "error", err)
//	}
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("verctl", "v1.0.0", "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug verctl patch
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "version bumped",
//	    "module": "verctl",
//	    "version": "v1.0.0",
//	    "next": "v1.3.0"
//	}
//
// Logs go to stderr so stdout stays clean for serialized results.
package logging
