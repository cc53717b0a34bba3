// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"bytes"
	"strings"
	"testing"

	"cogentcore.org/colorcalc/cie"
	"cogentcore.org/colorcalc/colors"
	"cogentcore.org/colorcalc/config"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunnerInput(t *testing.T) {
	r := &Runner{Config: config.Default(), In: strings.NewReader("0.1\n0.2\n0.3\n"), Out: &bytes.Buffer{}}

	in, err := r.Input([]string{"xyz", "0.1", "0.2", "0.3"}, "")
	require.NoError(t, err)
	assert.Equal(t, Input{colors.ModelXYZ, [3]float64{0.1, 0.2, 0.3}}, in)

	in, err = r.Input(nil, "#ffffff")
	require.NoError(t, err)
	assert.Equal(t, Input{colors.ModelRGB, [3]float64{1, 1, 1}}, in)

	_, err = r.Input([]string{"rgb"}, "#ffffff")
	assert.Error(t, err)

	_, err = r.Input(nil, "")
	assert.ErrorContains(t, err, "not a terminal")

	_, err = r.Input([]string{"rgb"}, "")
	assert.ErrorContains(t, err, "missing the 3 RGB values")

	_, err = r.Input([]string{"rgb", "1", "2"}, "")
	assert.Error(t, err)

	r.Interactive = true
	in, err = r.Input([]string{"xyz"}, "")
	require.NoError(t, err)
	assert.Equal(t, Input{colors.ModelXYZ, [3]float64{0.1, 0.2, 0.3}}, in)
}

func TestRunnerRun(t *testing.T) {
	var out, term bytes.Buffer
	r := &Runner{
		Config:   config.Default(),
		Out:      &out,
		Terminal: termenv.NewOutput(&term, termenv.WithProfile(termenv.ANSI256)),
	}
	require.NoError(t, r.Run(Input{colors.ModelRGB, [3]float64{0.5, 0.2, 0.1}}))
	assert.True(t, strings.HasPrefix(out.String(), "hsv(15, 0.8, 0.5), lightness:0.3"))
	assert.Contains(t, term.String(), "#8033")

	out.Reset()
	term.Reset()
	r.Config.Format = config.JSON
	require.NoError(t, r.Run(Input{colors.ModelRGB, [3]float64{0.5, 0.2, 0.1}}))
	assert.Contains(t, out.String(), `"input": "RGB"`)
	assert.Empty(t, term.String())

	r.Config.Format = config.Text
	r.Config.Space = "nope"
	assert.ErrorIs(t, r.Run(Input{colors.ModelRGB, [3]float64{0.5, 0.2, 0.1}}), cie.ErrUnknownSpace)
}

func TestSpaces(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Spaces(&b))
	s := b.String()
	for _, ws := range cie.WorkingSpaces {
		assert.Contains(t, s, ws.Name)
	}
	assert.Contains(t, s, "gamma 1.8")
	assert.Contains(t, s, "L*")
	assert.Contains(t, s, "F11")
	assert.Contains(t, s, "XYZScaling")
}
