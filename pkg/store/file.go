/*
Copyright © 2025 verctl authors
SPDX-License-Identifier: Apache-2.0
*/
package store

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/gobwas/glob"
	"golang.org/x/sync/errgroup"
)

const filePerm = 0o644

// FileStore is the filesystem-backed Store implementation: the version lives
// in a Makefile-style build file and is propagated into env files discovered
// under a directory by glob patterns.
type FileStore struct {
	source   string
	key      string
	envDir   string
	envKey   string
	patterns []glob.Glob

	// matches "VERSION = value", "VERSION ?= value", "VERSION := value"
	keyLine *regexp.Regexp
	// matches "APP_VERSION=value" with optional leading "export"
	envLine *regexp.Regexp
}

// NewFileStore creates a FileStore reading the version from the key line of
// the given build file and patching envKey lines in files under envDir that
// match any of the glob patterns.
func NewFileStore(source, key, envDir, envKey string, envPatterns []string) (*FileStore, error) {
	globs := make([]glob.Glob, 0, len(envPatterns))
	for _, p := range envPatterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("compiling env file pattern %q: %w", p, err)
		}
		globs = append(globs, g)
	}

	return &FileStore{
		source:   source,
		key:      key,
		envDir:   envDir,
		envKey:   envKey,
		patterns: globs,
		keyLine: regexp.MustCompile(
			`^(\s*` + regexp.QuoteMeta(key) + `\s*[?:+]?=\s*)(.*?)(\s*)$`),
		envLine: regexp.MustCompile(
			`^(\s*(?:export\s+)?` + regexp.QuoteMeta(envKey) + `=)(.*?)(\s*)$`),
	}, nil
}

// Source returns the build file path.
func (s *FileStore) Source() string {
	return s.source
}

// ReadVersion locates the key line in the build file and returns its value.
// A build file without the key line yields "" so the caller can fall back to
// the zero version. A missing build file is an error.
func (s *FileStore) ReadVersion(_ context.Context) (string, error) {
	data, err := os.ReadFile(s.source)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrSourceNotFound, s.source)
		}
		return "", fmt.Errorf("reading %s: %w", s.source, err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		if m := s.keyLine.FindStringSubmatch(line); m != nil {
			return m[2], nil
		}
	}
	return "", nil
}

// WriteVersion replaces the key line in the build file with the new version,
// preserving the original assignment form, or appends a "key=version" line
// when the build file carries none.
func (s *FileStore) WriteVersion(_ context.Context, version string) error {
	data, err := os.ReadFile(s.source)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrSourceNotFound, s.source)
		}
		return fmt.Errorf("reading %s: %w", s.source, err)
	}

	content, replaced := replaceLine(string(data), s.keyLine, version)
	if !replaced {
		content = appendLine(content, s.key+"="+version)
	}

	if err := os.WriteFile(s.source, []byte(content), filePerm); err != nil {
		return fmt.Errorf("writing %s: %w", s.source, err)
	}
	return nil
}

// EnvFiles walks the env directory and returns the files matching any of the
// configured patterns, sorted for deterministic output. Patterns match paths
// relative to the env directory, slash-separated.
func (s *FileStore) EnvFiles(ctx context.Context) ([]string, error) {
	if len(s.patterns) == 0 {
		return nil, nil
	}

	var files []string
	err := filepath.WalkDir(s.envDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(s.envDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		for _, g := range s.patterns {
			if g.Match(rel) {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			// No env directory means nothing to patch
			return nil, nil
		}
		return nil, fmt.Errorf("discovering env files under %s: %w", s.envDir, err)
	}

	sort.Strings(files)
	return files, nil
}

// PatchEnvFiles writes the "envKey=version" line into every matching env
// file, replacing an existing line or appending one. Files are patched
// concurrently; the first failure cancels the remaining writes.
func (s *FileStore) PatchEnvFiles(ctx context.Context, version string) ([]string, error) {
	files, err := s.EnvFiles(ctx)
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	var updated []string

	g, ctx := errgroup.WithContext(ctx)
	for _, f := range files {
		f := f
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := s.patchEnvFile(f, version); err != nil {
				return err
			}
			mu.Lock()
			updated = append(updated, f)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Strings(updated)
	return updated, nil
}

func (s *FileStore) patchEnvFile(path, version string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	content, replaced := replaceLine(string(data), s.envLine, version)
	if !replaced {
		content = appendLine(content, s.envKey+"="+version)
	}

	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// replaceLine rewrites the value of the first line matching re, keeping the
// captured prefix (key and assignment operator) intact.
func replaceLine(content string, re *regexp.Regexp, value string) (string, bool) {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if m := re.FindStringSubmatch(line); m != nil {
			lines[i] = m[1] + value
			return strings.Join(lines, "\n"), true
		}
	}
	return content, false
}

// appendLine adds a line to the content, keeping a single trailing newline.
func appendLine(content, line string) string {
	if content == "" {
		return line + "\n"
	}
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return content + line + "\n"
}
