// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"cogentcore.org/colorcalc/colors"
	"cogentcore.org/colorcalc/config"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// HSVReport is an HSV color with its lightness and relative luminance.
type HSVReport struct {
	Hue        float64 `json:"hue" yaml:"hue" toml:"hue"`
	Saturation float64 `json:"saturation" yaml:"saturation" toml:"saturation"`
	Value      float64 `json:"value" yaml:"value" toml:"value"`
	Lightness  float64 `json:"lightness" yaml:"lightness" toml:"lightness"`
	Luminance  float64 `json:"luminance" yaml:"luminance" toml:"luminance"`
}

// Report is every representation of a color, along with the
// settings used to compute them.
type Report struct {
	Input      string     `json:"input" yaml:"input" toml:"input"`
	Space      string     `json:"space" yaml:"space" toml:"space"`
	White      string     `json:"white" yaml:"white" toml:"white"`
	Adaptation string     `json:"adaptation" yaml:"adaptation" toml:"adaptation"`
	RGB        [3]float64 `json:"rgb" yaml:"rgb,flow" toml:"rgb"`
	XYZ        [3]float64 `json:"xyz" yaml:"xyz,flow" toml:"xyz"`
	Lab        [3]float64 `json:"lab" yaml:"lab,flow" toml:"lab"`
	HSV        HSVReport  `json:"hsv" yaml:"hsv" toml:"hsv"`

	color *colors.Color
}

// NewReport returns a new [Report] for the given color,
// computing all of its representations.
func NewReport(c *colors.Color, cfg *config.Config) *Report {
	h := c.HSV()
	return &Report{
		Input:      c.Source().String(),
		Space:      cfg.Space,
		White:      cfg.White,
		Adaptation: cfg.Adaptation.String(),
		RGB:        c.RGB().Channels(),
		XYZ:        c.XYZ().Channels(),
		Lab:        c.Lab().Channels(),
		HSV: HSVReport{
			Hue:        h.Hue(),
			Saturation: h.Saturation(),
			Value:      h.Value(),
			Lightness:  h.Lightness(),
			Luminance:  h.Luminance(),
		},
		color: c,
	}
}

// Text writes each representation of the color other than the one it
// was made from on its own line in canonical form. The HSV line also
// has the lightness and relative luminance.
func (r *Report) Text(w io.Writer) error {
	for _, m := range colors.ModelRGB.Values() {
		if m == r.color.Source() {
			continue
		}
		var line string
		switch m {
		case colors.ModelRGB:
			line = r.color.RGB().String()
		case colors.ModelHSV:
			h := r.color.HSV()
			line = fmt.Sprintf("%v, lightness:%s, relative luminance:%s", h,
				colors.FormatFloat(h.Lightness()), colors.FormatFloat(h.Luminance()))
		case colors.ModelXYZ:
			line = r.color.XYZ().String()
		case colors.ModelLab:
			line = r.color.Lab().String()
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Render writes the report to w in the given format.
func Render(w io.Writer, r *Report, format config.Format) error {
	switch format {
	case config.Text:
		return r.Text(w)
	case config.JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "\t")
		return enc.Encode(r)
	case config.YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case config.TOML:
		return toml.NewEncoder(w).Encode(r)
	}
	return fmt.Errorf("unknown output format %v", format)
}
