// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"context"
	"fmt"
	"log/slog"

	"cogentcore.org/colorcalc/base/bitflag"
	"cogentcore.org/colorcalc/cie"
)

// models is a bit set of [Model] values.
type models uint8

// Color is a color value that holds up to one of each of its [RGB],
// [HSV], [XYZ], and [Lab] representations. It is made from exactly one
// of them, and the others are computed from it on first access and then
// cached, so each conversion is done at most once per Color.
//
// The zero value is black in sRGB, converted with [DefaultConverter].
//
// The accessors populate the cache, so a Color must not be used from
// multiple goroutines at the same time without external locking.
// Distinct Colors are independent.
type Color struct {
	rgb RGB
	hsv HSV
	xyz XYZ
	lab Lab

	// valid is the set of representations that have been computed.
	valid models

	// source is the representation the color was made from.
	source Model

	// curve is the companding curve of the RGB representation.
	curve cie.Curve

	// transformer does the conversions; nil means [DefaultConverter].
	transformer Transformer
}

// Option is an option for making a new [Color].
type Option func(c *Color)

// WithTransformer returns an [Option] that makes the [Color] use the
// given [Transformer] for its conversions instead of [DefaultConverter].
func WithTransformer(t Transformer) Option {
	return func(c *Color) {
		c.transformer = t
	}
}

func newColor(source Model, opts []Option) *Color {
	c := &Color{source: source}
	for _, opt := range opts {
		opt(c)
	}
	if c.transformer == nil {
		c.transformer = DefaultConverter()
	}
	c.curve = curveOf(c.transformer)
	bitflag.Set(&c.valid, int(source))
	return c
}

// FromRGB returns a new [Color] made from the given RGB value.
// The RGB representation keeps the companding curve of rgb.
func FromRGB(rgb RGB, opts ...Option) *Color {
	c := newColor(ModelRGB, opts)
	c.rgb = rgb
	c.curve = rgb.curve
	return c
}

// FromHSV returns a new [Color] made from the given HSV value.
func FromHSV(hsv HSV, opts ...Option) *Color {
	c := newColor(ModelHSV, opts)
	c.hsv = hsv
	return c
}

// FromXYZ returns a new [Color] made from the given XYZ value.
func FromXYZ(xyz XYZ, opts ...Option) *Color {
	c := newColor(ModelXYZ, opts)
	c.xyz = xyz
	return c
}

// FromLab returns a new [Color] made from the given L*a*b* value.
func FromLab(lab Lab, opts ...Option) *Color {
	c := newColor(ModelLab, opts)
	c.lab = lab
	return c
}

// New returns a new [Color] of the given model made from three channel
// values, in the order given by [Model.Channels]. RGB channels use the
// native curve of the transformer. It returns [ErrUnknownModel] for an
// invalid model. The channel values are not range checked.
func New(model Model, c1, c2, c3 float64, opts ...Option) (*Color, error) {
	switch model {
	case ModelRGB:
		c := newColor(ModelRGB, opts)
		c.rgb = NewRGBCurve(c1, c2, c3, c.curve)
		return c, nil
	case ModelHSV:
		return FromHSV(NewHSV(c1, c2, c3), opts...), nil
	case ModelXYZ:
		return FromXYZ(NewXYZ(c1, c2, c3), opts...), nil
	case ModelLab:
		return FromLab(NewLab(c1, c2, c3), opts...), nil
	}
	return nil, fmt.Errorf("colors.New: %w %v", ErrUnknownModel, model)
}

// Has returns whether the given representation has been computed.
func (c *Color) Has(m Model) bool {
	if c.valid == 0 {
		return m == ModelRGB
	}
	return bitflag.Has(c.valid, int(m))
}

// tr returns the transformer of the color.
func (c *Color) tr() Transformer {
	if c.transformer == nil {
		return DefaultConverter()
	}
	return c.transformer
}

// Source returns the representation the color was made from.
func (c *Color) Source() Model {
	return c.source
}

// Clone returns an independent copy of the color, including
// its computed representations.
func (c *Color) Clone() *Color {
	cc := *c
	return &cc
}

// RGB returns the RGB representation of the color.
func (c *Color) RGB() RGB {
	c.resolveRGB()
	return c.rgb
}

// HSV returns the HSV representation of the color.
func (c *Color) HSV() HSV {
	c.resolveHSV()
	return c.hsv
}

// XYZ returns the XYZ representation of the color.
func (c *Color) XYZ() XYZ {
	c.resolveXYZ()
	return c.xyz
}

// Lab returns the L*a*b* representation of the color.
func (c *Color) Lab() Lab {
	c.resolveLab()
	return c.lab
}

// String returns the canonical form of the representation
// the color was made from.
func (c *Color) String() string {
	switch c.source {
	case ModelHSV:
		return c.hsv.String()
	case ModelXYZ:
		return c.xyz.String()
	case ModelLab:
		return c.lab.String()
	default:
		return c.rgb.String()
	}
}

// resolveRGB computes RGB from XYZ if it is known, else from HSV, and
// otherwise from L*a*b* by way of XYZ. The zero Color already has RGB.
func (c *Color) resolveRGB() {
	if c.Has(ModelRGB) {
		return
	}
	switch {
	case c.Has(ModelXYZ):
		c.rgb = c.tr().XYZToRGB(c.xyz, c.curve)
		c.converted(ModelXYZ, ModelRGB)
	case c.Has(ModelHSV):
		c.rgb = c.tr().HSVToRGB(c.hsv, c.curve)
		c.converted(ModelHSV, ModelRGB)
	case c.Has(ModelLab):
		c.resolveXYZ()
		c.rgb = c.tr().XYZToRGB(c.xyz, c.curve)
		c.converted(ModelXYZ, ModelRGB)
	}
}

func (c *Color) resolveHSV() {
	if c.Has(ModelHSV) {
		return
	}
	c.resolveRGB()
	c.hsv = c.tr().RGBToHSV(c.rgb)
	c.converted(ModelRGB, ModelHSV)
}

func (c *Color) resolveXYZ() {
	if c.Has(ModelXYZ) {
		return
	}
	if c.Has(ModelLab) {
		c.xyz = c.tr().LabToXYZ(c.lab)
		c.converted(ModelLab, ModelXYZ)
		return
	}
	c.resolveRGB()
	c.xyz = c.tr().RGBToXYZ(c.rgb)
	c.converted(ModelRGB, ModelXYZ)
}

func (c *Color) resolveLab() {
	if c.Has(ModelLab) {
		return
	}
	c.resolveXYZ()
	c.lab = c.tr().XYZToLab(c.xyz)
	c.converted(ModelXYZ, ModelLab)
}

// converted marks the to representation as computed from the from one.
func (c *Color) converted(from, to Model) {
	if c.valid == 0 {
		bitflag.Set(&c.valid, int(ModelRGB))
	}
	bitflag.Set(&c.valid, int(to))
	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		slog.Debug("colors: converted", "from", from, "to", to, "color", c.String())
	}
}
