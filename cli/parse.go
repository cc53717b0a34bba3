// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/colorcalc/colors"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrOutOfRange is returned for a channel value outside
// of the accepted range of its model.
var ErrOutOfRange = errors.New("value out of range")

// Input is a color model and three range checked channel values.
type Input struct {
	Model    colors.Model
	Channels [3]float64
}

// Color returns a new [colors.Color] made from the input.
func (in Input) Color(opts ...colors.Option) (*colors.Color, error) {
	return colors.New(in.Model, in.Channels[0], in.Channels[1], in.Channels[2], opts...)
}

// ParseModel parses a color model given by name ("rgb") or by
// its number in the interactive menu ("1").
func ParseModel(s string) (colors.Model, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		m := colors.Model(n - 1)
		if m.IsValid() {
			return m, nil
		}
		return m, fmt.Errorf("%w %q", colors.ErrUnknownModel, s)
	}
	var m colors.Model
	err := m.SetString(s)
	return m, err
}

// ParseChannel parses channel i of the given model and checks
// that it is in the accepted range.
func ParseChannel(m colors.Model, i int, s string) (float64, error) {
	name := m.Channels()[i]
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q", name, s)
	}
	rg := m.Ranges()[i]
	if !rg.Contains(v) {
		return 0, fmt.Errorf("%w: %s value %s is not in %v", ErrOutOfRange, name, colors.FormatFloat(v), rg)
	}
	return v, nil
}

// ParseArgs parses a model followed by its three channel values.
func ParseArgs(args []string) (Input, error) {
	if len(args) != 4 {
		return Input{}, fmt.Errorf("expected a color model and 3 values, not %d arguments", len(args))
	}
	m, err := ParseModel(args[0])
	if err != nil {
		return Input{}, err
	}
	in := Input{Model: m}
	for i := 0; i < 3; i++ {
		in.Channels[i], err = ParseChannel(m, i, args[i+1])
		if err != nil {
			return Input{}, err
		}
	}
	return in, nil
}

// ParseHex parses a hex RGB color such as "#336699", "336699", or "#369".
func ParseHex(s string) (Input, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Input{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return Input{Model: colors.ModelRGB, Channels: [3]float64{c.R, c.G, c.B}}, nil
}
