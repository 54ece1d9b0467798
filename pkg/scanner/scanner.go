// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package scanner walks a directory tree, applies the repair rule table to
// every matching file, and reports or rewrites the results.
package scanner

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/walteh/cssfix/pkg/report"
	"github.com/walteh/cssfix/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// DefaultExtension is the file extension scanned when none is configured
const DefaultExtension = ".css"

// skipDirName is always excluded from descent, independent of Excludes
const skipDirName = "node_modules"

// 🔧 Options contains configuration for the scanner
type Options struct {
	// Root is the directory to scan (required)
	Root string

	// Fix enables rewriting changed files in place
	Fix bool

	// Extension filters files by name suffix (default ".css")
	Extension string

	// Excludes are doublestar globs matched against the path relative
	// to Root; matching files and directories are skipped
	Excludes []string

	// Rules is the ordered replacement table (default text.DefaultCSSRules)
	Rules []text.ReplacementRule

	// Replacer applies the rules (default text.NewRegexReplacer)
	Replacer text.TextReplacer

	// Reporter writes console output (default report.New(os.Stdout))
	Reporter *report.Reporter
}

// 📊 Summary accumulates per-run counters, discarded at process exit
type Summary struct {
	// FilesProcessed is the number of files read and checked
	FilesProcessed int

	// FilesWithIssues is the number of files whose text changed after
	// applying all rules
	FilesWithIssues int
}

// 🔍 Scanner walks a tree and applies the rule table to matching files
type Scanner struct {
	opts Options
}

// 🏭 New creates a new scanner with the given options
func New(opts Options) (*Scanner, error) {
	if opts.Root == "" {
		return nil, errors.New("root path is required")
	}
	if opts.Extension == "" {
		opts.Extension = DefaultExtension
	}
	if !strings.HasPrefix(opts.Extension, ".") {
		opts.Extension = "." + opts.Extension
	}
	if opts.Replacer == nil {
		opts.Replacer = text.NewRegexReplacer()
	}
	if opts.Rules == nil {
		opts.Rules = text.DefaultCSSRules()
	}
	if opts.Reporter == nil {
		opts.Reporter = report.New(os.Stdout)
	}

	if err := opts.Replacer.ValidateRules(opts.Rules); err != nil {
		return nil, errors.Errorf("validating rules: %w", err)
	}
	for _, pattern := range opts.Excludes {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("invalid exclude pattern %q", pattern)
		}
	}

	return &Scanner{opts: opts}, nil
}

// 🏃 Run walks the tree once and returns the accumulated summary.
// Per-file errors are reported and swallowed; only a failure to walk the
// root itself is returned.
func (s *Scanner) Run(ctx context.Context) (Summary, error) {
	logger := zerolog.Ctx(ctx)
	s.opts.Reporter.Banner(ctx, s.opts.Fix, s.opts.Root)

	var summary Summary
	walkErr := filepath.WalkDir(s.opts.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == s.opts.Root {
				return errors.Errorf("walking %s: %w", path, err)
			}
			// unreadable subdirectory, report and keep going
			s.opts.Reporter.ReadError(ctx, path, err)
			return nil
		}

		if d.IsDir() {
			if d.Name() == skipDirName {
				logger.Debug().Str("dir", path).Msg("skipping node_modules")
				return fs.SkipDir
			}
			if path != s.opts.Root && s.excluded(ctx, path) {
				return fs.SkipDir
			}
			return nil
		}

		if !strings.HasSuffix(d.Name(), s.opts.Extension) {
			return nil
		}
		if s.excluded(ctx, path) {
			return nil
		}

		s.processFile(ctx, path, &summary)
		return nil
	})
	if walkErr != nil {
		return summary, walkErr
	}

	s.opts.Reporter.Summary(ctx, s.opts.Fix, summary.FilesWithIssues)
	return summary, nil
}

// 📄 processFile reads, transforms, and optionally rewrites a single file.
// All failures are reported and terminal for this file only.
func (s *Scanner) processFile(ctx context.Context, path string, summary *Summary) {
	logger := zerolog.Ctx(ctx)

	f, err := os.Open(path)
	if err != nil {
		s.opts.Reporter.ReadError(ctx, path, err)
		return
	}

	result, err := s.opts.Replacer.ReplaceText(ctx, f, s.opts.Rules)
	f.Close()
	if err != nil {
		s.opts.Reporter.ReadError(ctx, path, err)
		return
	}

	summary.FilesProcessed++

	if !result.WasModified {
		logger.Debug().Str("path", path).Msg("no issues found")
		return
	}

	summary.FilesWithIssues++

	if e := logger.Debug(); e.Enabled() {
		dmp := diffmatchpatch.New()
		diffs := dmp.DiffMain(string(result.OriginalContent), string(result.ModifiedContent), false)
		e.Str("path", path).
			Int("replacements", result.ReplacementCount).
			Str("delta", dmp.DiffToDelta(diffs)).
			Msg("computed fix")
	}

	if !s.opts.Fix {
		s.opts.Reporter.FileFound(ctx, path)
		return
	}

	if err := os.WriteFile(path, result.ModifiedContent, 0644); err != nil {
		s.opts.Reporter.WriteError(ctx, path, err)
		return
	}
	s.opts.Reporter.FileFixed(ctx, path)
}

// 🔍 excluded checks a path against the configured exclude globs
func (s *Scanner) excluded(ctx context.Context, path string) bool {
	if len(s.opts.Excludes) == 0 {
		return false
	}

	rel, err := filepath.Rel(s.opts.Root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)

	logger := zerolog.Ctx(ctx)
	for _, pattern := range s.opts.Excludes {
		matched, err := doublestar.Match(pattern, rel)
		if err != nil {
			logger.Debug().Str("pattern", pattern).Str("path", rel).Err(err).Msg("error matching pattern")
			continue
		}
		if matched {
			logger.Debug().Str("path", rel).Str("pattern", pattern).Msg("path excluded by pattern")
			return true
		}
	}

	return false
}
