// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// struct for the colorcalc tool.
package config

import (
	"fmt"
	"strings"

	"cogentcore.org/colorcalc/base/errors"
	"cogentcore.org/colorcalc/cie"
	"cogentcore.org/colorcalc/colors"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/jinzhu/copier"
)

// Config is the main config struct that contains all of the
// configuration options for the colorcalc tool.
type Config struct {

	// other config files to include, relative to the directory of this one;
	// settings in this file override the included ones
	Includes []string `toml:",omitempty" desc:"other config files to include, relative to the directory of this one; settings in this file override the included ones"`

	// [def: sRGB] the RGB working space
	Space string `def:"sRGB" desc:"the RGB working space"`

	// [def: D50] the reference white of XYZ and L*a*b* values
	White string `def:"D50" desc:"the reference white of XYZ and L*a*b* values"`

	// [def: Bradford] the chromatic adaptation method between the white of the working space and the reference white
	Adaptation cie.Adaptation `def:"Bradford" desc:"the chromatic adaptation method between the white of the working space and the reference white"`

	// [def: text] the output format
	Format Format `def:"text" desc:"the output format (text, json, yaml, or toml)"`

	// [def: true] whether to show a color swatch when printing text to a terminal
	Swatch bool `def:"true" desc:"whether to show a color swatch when printing text to a terminal"`

	// whether to print debug log messages
	Verbose bool `desc:"whether to print debug log messages"`
}

// Default returns a new [Config] with all fields set to their defaults.
func Default() *Config {
	cfg := &Config{}
	SetFromDefaults(cfg)
	return cfg
}

// Clone returns a deep copy of the config.
func (c *Config) Clone() *Config {
	cc := &Config{}
	errors.Log(copier.CopyWithOption(cc, c, copier.Option{CaseSensitive: true, DeepCopy: true}))
	return cc
}

// Converter returns the [colors.Converter] for the working space,
// reference white, and adaptation method of the config. Unknown names
// are reported with the closest known name, if any is close.
func (c *Config) Converter() (*colors.Converter, error) {
	space, err := cie.WorkingSpaceByName(c.Space)
	if err != nil {
		names := make([]string, len(cie.WorkingSpaces))
		for i, ws := range cie.WorkingSpaces {
			names[i] = ws.Name
		}
		return nil, suggest(err, c.Space, names)
	}
	white, err := cie.IlluminantByName(c.White)
	if err != nil {
		names := make([]string, len(cie.Illuminants))
		for i, w := range cie.Illuminants {
			names[i] = w.Name
		}
		return nil, suggest(err, c.White, names)
	}
	cv, err := colors.NewConverter(space, white, c.Adaptation)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cv, nil
}

// suggest adds the candidate most similar to name to err,
// if its similarity is at least one half.
func suggest(err error, name string, candidates []string) error {
	best, sim := "", 0.5
	lev := metrics.NewLevenshtein()
	for _, cand := range candidates {
		if s := strutil.Similarity(strings.ToLower(name), strings.ToLower(cand), lev); s >= sim {
			best, sim = cand, s
		}
	}
	if best == "" {
		return err
	}
	return fmt.Errorf("%w; did you mean %q?", err, best)
}

// IncludesPtr returns a pointer to the Includes field.
func (c *Config) IncludesPtr() *[]string { return &c.Includes }
