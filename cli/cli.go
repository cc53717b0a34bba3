// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli implements the colorcalc command line interface: reading
// a color from arguments or interactive prompts, and printing its other
// representations.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"cogentcore.org/colorcalc/cie"
	"cogentcore.org/colorcalc/colors"
	"cogentcore.org/colorcalc/config"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Runner reads colors and prints reports about them.
type Runner struct {

	// Config is the configuration to use.
	Config *config.Config

	// In is where interactive answers are read from.
	In io.Reader

	// Out is where prompts and reports are written.
	Out io.Writer

	// Interactive is whether to prompt for a missing model or channels.
	Interactive bool

	// Terminal is the terminal output used for the color swatch,
	// or nil for no swatch.
	Terminal *termenv.Output
}

// IsTerminal returns whether the given file is a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Input returns the input color given by the command line arguments,
// which are a model and three channel values, or by a hex code. A
// missing model or missing channel values are asked for when the
// runner is interactive.
func (r *Runner) Input(args []string, hex string) (Input, error) {
	if hex != "" {
		if len(args) > 0 {
			return Input{}, errors.New("cannot give both a hex color and arguments")
		}
		return ParseHex(hex)
	}
	switch len(args) {
	case 4:
		return ParseArgs(args)
	case 1:
		m, err := ParseModel(args[0])
		if err != nil {
			return Input{}, err
		}
		if !r.Interactive {
			return Input{}, fmt.Errorf("missing the %d %v values", 3, m)
		}
		in := Input{Model: m}
		in.Channels, err = NewPrompter(r.In, r.Out).Channels(m)
		return in, err
	case 0:
		if !r.Interactive {
			return Input{}, errors.New("no color given and input is not a terminal")
		}
		return NewPrompter(r.In, r.Out).Input()
	}
	return Input{}, fmt.Errorf("expected a color model and 3 values, not %d arguments", len(args))
}

// Run converts the input color and writes the report about it
// in the configured format, followed by a swatch for text output.
func (r *Runner) Run(in Input) error {
	cv, err := r.Config.Converter()
	if err != nil {
		return err
	}
	c, err := in.Color(colors.WithTransformer(cv))
	if err != nil {
		return err
	}
	slog.Debug("converting", "color", c, "converter", cv)
	if err := Render(r.Out, NewReport(c, r.Config), r.Config.Format); err != nil {
		return err
	}
	if r.Terminal == nil || !r.Config.Swatch || r.Config.Format != config.Text {
		return nil
	}
	t := cv.Transform()
	return Swatch(r.Terminal, c.XYZ(), t.White, t.Method)
}

// Spaces writes the tables of working spaces, illuminants,
// and adaptation methods.
func Spaces(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "WORKING SPACE\tWHITE\tCURVE")
	for _, ws := range cie.WorkingSpaces {
		fmt.Fprintf(tw, "%s\t%s\t%v\n", ws.Name, ws.White.Name, ws.Curve)
	}
	fmt.Fprintln(tw, "\nILLUMINANT\tX\tZ")
	for _, il := range cie.Illuminants {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", il.Name, colors.FormatFloat(il.X), colors.FormatFloat(il.Z))
	}
	fmt.Fprintln(tw, "\nADAPTATION\tDESCRIPTION\t")
	for _, a := range cie.Bradford.Values() {
		fmt.Fprintf(tw, "%v\t%s\t\n", a, a.Desc())
	}
	return tw.Flush()
}
