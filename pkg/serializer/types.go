/*
Copyright © 2025 verctl authors
SPDX-License-Identifier: Apache-2.0
*/

// Package serializer provides utilities for serializing bump results to
// various output formats.
//
// The package supports three main output formats:
//   - JSON: Machine-readable structured data with proper indentation
//   - YAML: Human-readable configuration format
//   - Table: Human-readable tabular output with flattened keys
//
// Usage:
//
//	writer := serializer.NewWriter(serializer.FormatJSON, os.Stdout)
//	defer writer.Close() // Important: close to release file handles
//	if err := writer.Serialize(result); err != nil {
//		log.Fatal(err)
//	}
//
// The package automatically handles:
//   - Buffering and indentation per format
//   - Flattening nested structures for table format
//   - Resource cleanup via Close() method
package serializer

// Serializer is an interface for serializing result data.
// Implementations of this interface can serialize data to various formats
// such as JSON, YAML, or plain text.
type Serializer interface {
	Serialize(v any) error
}

// Closer is an optional interface that Serializers can implement
// if they need to release resources (e.g., close file handles).
type Closer interface {
	Close() error
}
