package main

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/cssfix/pkg/report"
	"github.com/walteh/cssfix/pkg/scanner"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	rootDir   string
	fix       bool
	extension string
	excludes  []string
	debug     bool
)

// newRootCmd creates the root command
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cssfix",
		Short: "Scan CSS files for common syntax errors and optionally fix them",
		Long: `cssfix recursively scans a directory tree for CSS files and checks them
against a fixed table of known malformed patterns (stray comment closers
after @import, broken http:/* protocol prefixes, double-closed comments).

By default it only reports what it finds. With --fix, affected files are
rewritten in place. Directories named node_modules are always skipped.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, err := scanner.New(scanner.Options{
				Root:      rootDir,
				Fix:       fix,
				Extension: extension,
				Excludes:  excludes,
				Reporter:  report.New(cmd.OutOrStdout()),
			})
			if err != nil {
				return errors.Errorf("creating scanner: %w", err)
			}

			// Per-file errors are reported inline and never abort the
			// run; only a failure to walk the root surfaces here.
			if _, err := s.Run(ctx); err != nil {
				return errors.Errorf("scanning %s: %w", rootDir, err)
			}

			return nil
		},
	}

	addRootFlags(cmd)
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// addRootFlags adds flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&fix, "fix", false, "write fixes back to disk")
	cmd.Flags().StringVar(&rootDir, "root", filepath.Join("src", "frontend", "src"), "directory to scan")
	cmd.Flags().StringVar(&extension, "ext", scanner.DefaultExtension, "file extension to scan")
	cmd.Flags().StringSliceVar(&excludes, "exclude", nil, "glob patterns to skip, relative to the root")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}
