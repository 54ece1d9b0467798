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

package report

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 Reporter writes the human-readable console lines of a scan run and
// mirrors every line as a structured zerolog event on the context logger.
type Reporter struct {
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new reporter writing console lines to the given writer
func New(console io.Writer) *Reporter {
	return &Reporter{
		console: console,
		mu:      sync.Mutex{},
	}
}

// 📝 Banner prints the startup line stating mode and target directory
func (r *Reporter) Banner(ctx context.Context, fix bool, dir string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	action := "Scanning for"
	if fix {
		action = "Fixing"
	}

	msg := fmt.Sprintf("%s CSS errors in: %s", action, dir)
	fmt.Fprintf(r.console, "🔍 %s\n", color.New(color.Bold, color.FgCyan).Sprint(msg))

	zerolog.Ctx(ctx).Info().
		Bool("fix", fix).
		Str("dir", dir).
		Msg("starting scan")
}

// ✅ FileFixed reports a file that was repaired and rewritten in place
func (r *Reporter) FileFixed(ctx context.Context, path string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	printer := pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).WithWriter(r.console)
	printer.Println("Fixed error in: " + path)

	zerolog.Ctx(ctx).Info().Str("path", path).Msg("fixed file")
}

// ❌ FileFound reports a file with an issue in scan-only mode
func (r *Reporter) FileFound(ctx context.Context, path string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	printer := pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).WithWriter(r.console)
	printer.Println("Found potential error in: " + path)

	zerolog.Ctx(ctx).Info().Str("path", path).Msg("found issue")
}

// ⚠️ ReadError reports a file that could not be read; the run continues
func (r *Reporter) ReadError(ctx context.Context, path string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	printer := pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).WithWriter(r.console)
	printer.Printfln("Could not read file %s: %v", path, err)

	zerolog.Ctx(ctx).Error().Err(err).Str("path", path).Msg("read failed")
}

// ⚠️ WriteError reports a file whose fix could not be written back
func (r *Reporter) WriteError(ctx context.Context, path string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	printer := pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).WithWriter(r.console)
	printer.Printfln("Could not write file %s: %v", path, err)

	zerolog.Ctx(ctx).Error().Err(err).Str("path", path).Msg("write failed")
}

// 📊 Summary prints the final line after traversal completes
func (r *Reporter) Summary(ctx context.Context, fix bool, issues int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch {
	case fix:
		msg := fmt.Sprintf("Scan complete. Fixed %d file(s).", issues)
		fmt.Fprintf(r.console, "\n%s\n", color.New(color.FgGreen).Sprint(msg))
	case issues > 0:
		msg := fmt.Sprintf("Scan complete. Found %d file(s) with potential errors.", issues)
		fmt.Fprintf(r.console, "\n%s\n", color.New(color.FgYellow).Sprint(msg))
		fmt.Fprintf(r.console, "%s\n", "Run 'cssfix --fix' to attempt automatic correction.")
	default:
		msg := "Scan complete. No common CSS errors found."
		fmt.Fprintf(r.console, "\n%s\n", color.New(color.FgGreen).Sprint(msg))
	}

	zerolog.Ctx(ctx).Info().
		Bool("fix", fix).
		Int("issues", issues).
		Msg("scan complete")
}
