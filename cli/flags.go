// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"cogentcore.org/colorcalc/config"
	"github.com/spf13/pflag"
)

// Flags are the command line flags of the colorcalc tool. Flags that
// are set override the corresponding values of the config file.
type Flags struct {

	// the config file to load instead of the default one
	Config string

	// the RGB working space
	Space string

	// the reference white of XYZ and L*a*b* values
	White string

	// the chromatic adaptation method
	Adaptation string

	// the output format
	Format string

	// a hex RGB color to use as the input
	Hex string

	// do not show a color swatch
	NoSwatch bool

	// print debug log messages
	Verbose bool
}

// Bind adds the flags to the given flag set.
func (f *Flags) Bind(fs *pflag.FlagSet) {
	def := config.Default()
	fs.StringVarP(&f.Config, "config", "c", "", "config file (default ~/.config/colorcalc/config.toml)")
	fs.StringVarP(&f.Space, "space", "s", def.Space, "RGB working space (see the spaces command)")
	fs.StringVarP(&f.White, "white", "w", def.White, "reference white of XYZ and L*a*b* values")
	fs.StringVarP(&f.Adaptation, "adaptation", "a", def.Adaptation.String(), "chromatic adaptation method (Bradford, VonKries, XYZScaling, or None)")
	fs.StringVarP(&f.Format, "format", "f", def.Format.String(), "output format (text, json, yaml, or toml)")
	fs.StringVar(&f.Hex, "hex", "", "hex RGB color to use as the input, such as #336699")
	fs.BoolVar(&f.NoSwatch, "no-swatch", false, "do not show a color swatch")
	fs.BoolVarP(&f.Verbose, "verbose", "v", false, "print debug log messages")
}

// Apply returns a copy of cfg with the values of the flags that
// were set on the command line.
func (f *Flags) Apply(fs *pflag.FlagSet, cfg *config.Config) (*config.Config, error) {
	cfg = cfg.Clone()
	if fs.Changed("space") {
		cfg.Space = f.Space
	}
	if fs.Changed("white") {
		cfg.White = f.White
	}
	if fs.Changed("adaptation") {
		if err := cfg.Adaptation.SetString(f.Adaptation); err != nil {
			return nil, err
		}
	}
	if fs.Changed("format") {
		if err := cfg.Format.SetString(f.Format); err != nil {
			return nil, err
		}
	}
	if f.NoSwatch {
		cfg.Swatch = false
	}
	if f.Verbose {
		cfg.Verbose = true
	}
	return cfg, nil
}
