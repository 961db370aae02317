package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wbrown/img2ascii"
)

// fileConfig is the YAML configuration file. Unset keys leave the
// built-in defaults in place.
type fileConfig struct {
	MaxSize       *int    `yaml:"max_size"`
	Color         *bool   `yaml:"color"`
	CorrectAspect *bool   `yaml:"correct_aspect"`
	Antialias     *bool   `yaml:"antialias"`
	Ramp          *string `yaml:"ramp"`
	Font          *string `yaml:"font"`
}

// loadFileConfig reads a YAML configuration file. Unknown keys are
// rejected so typos do not silently fall back to defaults.
func loadFileConfig(path string) (fileConfig, error) {
	var fc fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("reading config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fc, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return fc, nil
}

// buildConfig layers command-line options over the configuration file
// over the defaults, and returns the render configuration and the font
// path for snapshots.
func buildConfig(opts *options, fc fileConfig) (img2ascii.Config, string, error) {
	var cfgOpts []img2ascii.Option

	if fc.MaxSize != nil {
		cfgOpts = append(cfgOpts, img2ascii.WithMaxSize(*fc.MaxSize))
	}
	if opts.MaxSize != nil {
		cfgOpts = append(cfgOpts, img2ascii.WithMaxSize(*opts.MaxSize))
	}

	if fc.Color != nil {
		cfgOpts = append(cfgOpts, img2ascii.WithColor(*fc.Color))
	}
	if opts.Color {
		cfgOpts = append(cfgOpts, img2ascii.WithColor(true))
	}

	if fc.CorrectAspect != nil {
		cfgOpts = append(cfgOpts, img2ascii.WithAspectCorrection(*fc.CorrectAspect))
	}
	if opts.OmitAspect {
		cfgOpts = append(cfgOpts, img2ascii.WithAspectCorrection(false))
	}

	if fc.Antialias != nil {
		cfgOpts = append(cfgOpts, img2ascii.WithAntialias(*fc.Antialias))
	}
	if opts.NoAntialias {
		cfgOpts = append(cfgOpts, img2ascii.WithAntialias(false))
	}

	density := ""
	if fc.Ramp != nil {
		density = *fc.Ramp
	}
	if opts.Ramp != "" {
		density = opts.Ramp
	}
	if density != "" {
		ramp, err := img2ascii.NewRamp(density)
		if err != nil {
			return img2ascii.Config{}, "", fmt.Errorf("ramp %q: %w", density, err)
		}
		cfgOpts = append(cfgOpts, img2ascii.WithRamp(ramp))
	}

	font := ""
	if fc.Font != nil {
		font = *fc.Font
	}
	if opts.Font != "" {
		font = opts.Font
	}

	cfg := img2ascii.NewConfig(cfgOpts...)
	if err := cfg.Validate(); err != nil {
		return img2ascii.Config{}, "", err
	}
	return cfg, font, nil
}
