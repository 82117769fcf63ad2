// Package cli implements the hero-compose command-line interface.
//
// The CLI wraps the composition engine in a single cobra command: it loads
// the input images, removes their backgrounds, composes the hero canvas,
// and writes the hero file plus a resized copy of each input to the output
// directory. Logging goes to stderr via the charmbracelet/log library and
// is controlled by --verbose and --silent.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// Typically called by the main package with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the hero-compose CLI and returns an error if the run fails.
func Execute() error {
	var (
		verbose bool
		silent  bool
	)
	opts := defaultOptions()

	root := &cobra.Command{
		Use:   "hero-compose [flags] <input files...>",
		Short: "Compose a hero collage from object photographs",
		Long: `hero-compose removes the background from each input photograph and
scatters the objects onto a single transparent hero canvas at randomized
positions, rotations, and scales, keeping pairwise overlap within a
configurable budget. It also writes a proportionally resized copy of each
background-removed input.`,
		Version:      version,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			switch {
			case silent:
				level = charmlog.ErrorLevel
			case verbose:
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.applyConfigFile(cmd.Flags()); err != nil {
				return err
			}
			opts.seedSet = cmd.Flags().Changed("seed")
			return run(cmd.Context(), opts, args)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("hero-compose %s\ncommit: %s\nbuilt: %s\n", version, commit, date))

	flags := root.Flags()
	flags.StringVarP(&opts.outputDir, "output-dir", "o", "", "directory for output files (required)")
	flags.StringVarP(&opts.heroName, "hero-name", "n", opts.heroName, "file name of the composed hero image")
	flags.StringVarP(&opts.heroSize, "hero-size", "H", opts.heroSize, "hero canvas size as WxH, e.g. 1440x720")
	flags.IntVarP(&opts.maxOverlap, "overlap", "l", opts.maxOverlap, "allowed overlap between objects in percent (0-100)")
	flags.IntVarP(&opts.sizeVariation, "size-variation", "s", opts.sizeVariation, "random size variation level (0-10)")
	flags.IntVarP(&opts.orientationVariation, "orientation-variation", "r", opts.orientationVariation, "max random rotation in degrees (0-90)")
	flags.StringVar(&opts.resizedSuffix, "resized-suffix", opts.resizedSuffix, "suffix appended to resized input file names")
	flags.IntVarP(&opts.resizedWidth, "resized-width", "w", opts.resizedWidth, "width of the resized input files in pixels")
	flags.Int64Var(&opts.seed, "seed", 0, "random seed for reproducible compositions (default: time-based)")
	flags.StringVar(&opts.configPath, "config", "", "path to a TOML file with option defaults")

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().BoolVarP(&silent, "silent", "q", false, "suppress all output except errors")
	root.MarkFlagsMutuallyExclusive("verbose", "silent")

	if err := root.MarkFlagRequired("output-dir"); err != nil {
		return err
	}

	return root.ExecuteContext(context.Background())
}
