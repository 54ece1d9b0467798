package report_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/walteh/cssfix/pkg/report"
	"gitlab.com/tozd/go/errors"
)

// 🧪 newTestReporter creates a reporter writing to a buffer
func newTestReporter(t *testing.T) (context.Context, *report.Reporter, *bytes.Buffer) {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	ctx := logger.WithContext(context.Background())

	buf := &bytes.Buffer{}
	return ctx, report.New(buf), buf
}

func TestReporter_Banner(t *testing.T) {
	tests := []struct {
		name string
		fix  bool
		want string
	}{
		{
			name: "scan_mode",
			fix:  false,
			want: "Scanning for CSS errors in: src/frontend/src",
		},
		{
			name: "fix_mode",
			fix:  true,
			want: "Fixing CSS errors in: src/frontend/src",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, reporter, buf := newTestReporter(t)
			reporter.Banner(ctx, tt.fix, "src/frontend/src")
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "🔍")
		})
	}
}

func TestReporter_FileNotices(t *testing.T) {
	ctx, reporter, buf := newTestReporter(t)

	reporter.FileFixed(ctx, "a.css")
	assert.Contains(t, buf.String(), "Fixed error in: a.css")

	reporter.FileFound(ctx, "b.css")
	assert.Contains(t, buf.String(), "Found potential error in: b.css")
}

func TestReporter_FileErrors(t *testing.T) {
	ctx, reporter, buf := newTestReporter(t)

	reporter.ReadError(ctx, "bad.css", errors.New("permission denied"))
	assert.Contains(t, buf.String(), "Could not read file bad.css: permission denied")

	reporter.WriteError(ctx, "ro.css", errors.New("read-only file system"))
	assert.Contains(t, buf.String(), "Could not write file ro.css: read-only file system")
}

func TestReporter_Summary(t *testing.T) {
	tests := []struct {
		name     string
		fix      bool
		issues   int
		want     []string
		wantHint bool
	}{
		{
			name:   "fix_mode",
			fix:    true,
			issues: 2,
			want:   []string{"Scan complete. Fixed 2 file(s)."},
		},
		{
			name:     "scan_mode_with_issues",
			fix:      false,
			issues:   3,
			want:     []string{"Scan complete. Found 3 file(s) with potential errors."},
			wantHint: true,
		},
		{
			name:   "scan_mode_clean",
			fix:    false,
			issues: 0,
			want:   []string{"Scan complete. No common CSS errors found."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, reporter, buf := newTestReporter(t)
			reporter.Summary(ctx, tt.fix, tt.issues)

			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
			if tt.wantHint {
				assert.Contains(t, buf.String(), "Run 'cssfix --fix' to attempt automatic correction.")
			} else {
				assert.NotContains(t, buf.String(), "--fix'")
			}
		})
	}
}
