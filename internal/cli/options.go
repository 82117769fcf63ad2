package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
)

// options holds the resolved command-line options for one run.
// Precedence, lowest to highest: built-in defaults, --config file, flags.
type options struct {
	outputDir            string
	heroName             string
	heroSize             string // raw WxH string, parsed in run
	maxOverlap           int
	sizeVariation        int
	orientationVariation int
	resizedSuffix        string
	resizedWidth         int
	seed                 int64
	seedSet              bool
	configPath           string
}

func defaultOptions() *options {
	return &options{
		heroName:      "hero.png",
		heroSize:      "1440x720",
		resizedSuffix: "_resized",
		resizedWidth:  200,
	}
}

// fileConfig mirrors the recognized keys of the optional TOML defaults file.
// Pointer fields distinguish "absent" from zero values.
type fileConfig struct {
	OutputDir            *string `toml:"output_dir"`
	HeroName             *string `toml:"hero_name"`
	HeroSize             *string `toml:"hero_size"`
	MaxOverlap           *int    `toml:"max_overlap"`
	SizeVariation        *int    `toml:"size_variation"`
	OrientationVariation *int    `toml:"orientation_variation"`
	ResizedSuffix        *string `toml:"resized_suffix"`
	ResizedWidth         *int    `toml:"resized_width"`
}

// applyConfigFile folds values from the --config TOML file into o for every
// option the user did not set explicitly on the command line.
func (o *options) applyConfigFile(flags *pflag.FlagSet) error {
	if o.configPath == "" {
		return nil
	}

	data, err := os.ReadFile(o.configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", o.configPath, err)
	}

	setString := func(flag string, dst *string, src *string) {
		if src != nil && !flags.Changed(flag) {
			*dst = *src
		}
	}
	setInt := func(flag string, dst *int, src *int) {
		if src != nil && !flags.Changed(flag) {
			*dst = *src
		}
	}

	setString("output-dir", &o.outputDir, fc.OutputDir)
	setString("hero-name", &o.heroName, fc.HeroName)
	setString("hero-size", &o.heroSize, fc.HeroSize)
	setInt("overlap", &o.maxOverlap, fc.MaxOverlap)
	setInt("size-variation", &o.sizeVariation, fc.SizeVariation)
	setInt("orientation-variation", &o.orientationVariation, fc.OrientationVariation)
	setString("resized-suffix", &o.resizedSuffix, fc.ResizedSuffix)
	setInt("resized-width", &o.resizedWidth, fc.ResizedWidth)

	return nil
}
