// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"math/rand"
	"testing"

	"cogentcore.org/colorcalc/base/tolassert"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformSRGB(t *testing.T) {
	tr, err := NewTransform(SRGBSpace, D50, Bradford)
	require.NoError(t, err)
	assert.Equal(t, "sRGB D50 Bradford", tr.String())

	x, y, z := tr.RGBToXYZ(1, 1, 1, SRGBCurve)
	tolassert.EqualTriple(t, [3]float64{0.96422, 1, 0.82521}, [3]float64{x, y, z}, 1e-9)
	l, a, b := tr.XYZToLab(x, y, z)
	tolassert.EqualTriple(t, [3]float64{100, 0, 0}, [3]float64{l, a, b}, 1e-9)

	for _, tc := range []struct {
		rgb, xyz, lab [3]float64
	}{
		{
			[3]float64{1, 0, 0},
			[3]float64{0.43607470368794093, 0.22250446932954537, 0.013932178635272898},
			[3]float64{54.29173053890108, 80.81247032110223, 69.88506098140832},
		},
		{
			[3]float64{0, 1, 0},
			[3]float64{0.38506490189436066, 0.7168785945926345, 0.09710453572052663},
			[3]float64{87.81812797837347, -79.28727920095707, 80.99024371625686},
		},
		{
			[3]float64{0, 0, 1},
			[3]float64{0.14308039441769838, 0.06061693607782029, 0.7141732856442007},
			[3]float64{29.56758190381747, 68.29861085642689, -112.02941304915508},
		},
		{
			[3]float64{0.5, 0.2, 0.1},
			[3]float64{0.10751948044110414, 0.07196476188853411, 0.013354716664741154},
			[3]float64{32.250070637714565, 32.68727498818699, 32.60109150874283},
		},
	} {
		x, y, z := tr.RGBToXYZ(tc.rgb[0], tc.rgb[1], tc.rgb[2], SRGBCurve)
		tolassert.EqualTriple(t, tc.xyz, [3]float64{x, y, z}, 1e-9, "%v", tc.rgb)
		l, a, b := tr.XYZToLab(x, y, z)
		tolassert.EqualTriple(t, tc.lab, [3]float64{l, a, b}, 1e-7, "%v", tc.rgb)
	}
}

func TestTransformColorful(t *testing.T) {
	tr, err := NewTransform(SRGBSpace, D65, NoAdaptation)
	require.NoError(t, err)
	for _, c := range []colorful.Color{
		{R: 1, G: 0, B: 0},
		{R: 0.2, G: 0.4, B: 0.8},
		{R: 0.5, G: 0.5, B: 0.5},
		{R: 0.01, G: 0.9, B: 0.3},
	} {
		cx, cy, cz := c.Xyz()
		x, y, z := tr.RGBToXYZ(c.R, c.G, c.B, SRGBCurve)
		tolassert.EqualTriple(t, [3]float64{cx, cy, cz}, [3]float64{x, y, z}, 1e-3, "%v", c.Hex())
	}
}

func TestTransformRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(1<<32 | 2))
	for _, ws := range WorkingSpaces {
		for _, m := range Bradford.Values() {
			tr, err := NewTransform(ws, D50, m)
			require.NoError(t, err)
			for _i := 0; _i < 20; _i++ {
				rgb := [3]float64{rnd.Float64(), rnd.Float64(), rnd.Float64()}
				x, y, z := tr.RGBToXYZ(rgb[0], rgb[1], rgb[2], ws.Curve)
				r, g, b := tr.XYZToRGB(x, y, z, ws.Curve)
				tolassert.EqualTriple(t, rgb, [3]float64{r, g, b}, 1e-9, "%v %v", tr, rgb)

				l, a, bb := tr.XYZToLab(x, y, z)
				x2, y2, z2 := tr.LabToXYZ(l, a, bb)
				tolassert.EqualTriple(t, [3]float64{x, y, z}, [3]float64{x2, y2, z2}, 1e-9, "%v %v", tr, rgb)
			}
		}
	}
}

func TestNewTransformErrors(t *testing.T) {
	_, err := NewTransform(nil, D50, Bradford)
	assert.ErrorIs(t, err, ErrUnknownSpace)

	_, err = NewTransform(SRGBSpace, D50, Adaptation(7))
	assert.ErrorIs(t, err, ErrUnknownAdaptation)

	bad := &WorkingSpace{Name: "bad", Red: Chromaticity{0.2, 0.2}, Green: Chromaticity{0.3, 0.3}, Blue: Chromaticity{0.4, 0.4}, White: D50}
	_, err = NewTransform(bad, D50, Bradford)
	assert.ErrorIs(t, err, ErrSingular)
}
