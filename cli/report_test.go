// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"cogentcore.org/colorcalc/colors"
	"cogentcore.org/colorcalc/config"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testReport(t *testing.T, in Input) *Report {
	t.Helper()
	cfg := config.Default()
	cv, err := cfg.Converter()
	require.NoError(t, err)
	c, err := in.Color(colors.WithTransformer(cv))
	require.NoError(t, err)
	return NewReport(c, cfg)
}

func TestTextRGB(t *testing.T) {
	r := testReport(t, Input{colors.ModelRGB, [3]float64{0.5, 0.2, 0.1}})
	var b bytes.Buffer
	require.NoError(t, Render(&b, r, config.Text))
	assert.Equal(t, `hsv(15, 0.8, 0.5), lightness:0.3, relative luminance:0.31523
xyz(0.107519, 0.0719648, 0.0133547)
lab(32.2501, 32.6873, 32.6011)
`, b.String())
}

func TestTextHSV(t *testing.T) {
	r := testReport(t, Input{colors.ModelHSV, [3]float64{15, 0.8, 0.5}})
	var b bytes.Buffer
	require.NoError(t, Render(&b, r, config.Text))
	assert.Equal(t, `rgb(0.5, 0.2, 0.1)
xyz(0.107519, 0.0719648, 0.0133547)
lab(32.2501, 32.6873, 32.6011)
`, b.String())
}

func TestTextLab(t *testing.T) {
	r := testReport(t, Input{colors.ModelLab, [3]float64{100, 0, 0}})
	var b bytes.Buffer
	require.NoError(t, Render(&b, r, config.Text))
	lines := strings.Split(b.String(), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "rgb(1, 1, 1)", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "hsv("))
	assert.True(t, strings.HasSuffix(lines[1], ", 1), lightness:1, relative luminance:1"))
	assert.Equal(t, "xyz(0.96422, 1, 0.82521)", lines[2])
	assert.Empty(t, lines[3])
}

func TestStructured(t *testing.T) {
	r := testReport(t, Input{colors.ModelRGB, [3]float64{0.5, 0.2, 0.1}})

	var b bytes.Buffer
	require.NoError(t, Render(&b, r, config.JSON))
	var fromJSON Report
	require.NoError(t, json.Unmarshal(b.Bytes(), &fromJSON))
	assertReport(t, r, &fromJSON)

	b.Reset()
	require.NoError(t, Render(&b, r, config.YAML))
	assert.Contains(t, b.String(), "input: RGB\n")
	var fromYAML Report
	require.NoError(t, yaml.Unmarshal(b.Bytes(), &fromYAML))
	assertReport(t, r, &fromYAML)

	b.Reset()
	require.NoError(t, Render(&b, r, config.TOML))
	assert.Contains(t, b.String(), "[hsv]")
	var fromTOML Report
	require.NoError(t, toml.Unmarshal(b.Bytes(), &fromTOML))
	assertReport(t, r, &fromTOML)

	assert.Error(t, Render(&b, r, config.Format(9)))
}

func assertReport(t *testing.T, want, got *Report) {
	t.Helper()
	assert.Equal(t, "RGB", got.Input)
	assert.Equal(t, "sRGB", got.Space)
	assert.Equal(t, "D50", got.White)
	assert.Equal(t, "Bradford", got.Adaptation)
	assert.Equal(t, want.RGB, got.RGB)
	assert.Equal(t, want.XYZ, got.XYZ)
	assert.Equal(t, want.Lab, got.Lab)
	assert.Equal(t, want.HSV, got.HSV)
}
