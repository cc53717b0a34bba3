// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"cogentcore.org/colorcalc/base/tolassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSRGBMatrices(t *testing.T) {
	toXYZ, fromXYZ, err := SRGBSpace.Matrices()
	require.NoError(t, err)
	assertMat3(t, Mat3{
		{0.4124564390896922, 0.357576077643909, 0.18043748326639894},
		{0.21267285140562253, 0.715152155287818, 0.07217499330655958},
		{0.0193338955823293, 0.11919202588130297, 0.9503040785363679},
	}, toXYZ, 1e-9)
	assertMat3(t, Identity3(), toXYZ.Mul(fromXYZ), 1e-12)
}

func TestWorkingSpaces(t *testing.T) {
	assert.Len(t, WorkingSpaces, 16)
	for _, ws := range WorkingSpaces {
		toXYZ, fromXYZ, err := ws.Matrices()
		require.NoError(t, err, ws.Name)

		x, y, z := toXYZ.MulVec(1, 1, 1)
		wx, wy, wz := ws.White.XYZ()
		tolassert.EqualTriple(t, [3]float64{wx, wy, wz}, [3]float64{x, y, z}, 1e-9, ws.Name)
		tolassert.EqualTol(t, 1, toXYZ[1][0]+toXYZ[1][1]+toXYZ[1][2], 1e-9, ws.Name)
		assertMat3(t, Identity3(), fromXYZ.Mul(toXYZ), 1e-9)

		r, g, b := fromXYZ.MulVec(wx, wy, wz)
		tolassert.EqualTriple(t, [3]float64{1, 1, 1}, [3]float64{r, g, b}, 1e-9, ws.Name)
	}
}

func TestNewWorkingSpace(t *testing.T) {
	ws, err := NewWorkingSpace("my sRGB", SRGBSpace.Red, SRGBSpace.Green, SRGBSpace.Blue, D65, SRGBCurve)
	require.NoError(t, err)
	a, _, _ := ws.Matrices()
	b, _, _ := SRGBSpace.Matrices()
	assert.Equal(t, b, a)

	_, err = NewWorkingSpace("line", Chromaticity{0.2, 0.2}, Chromaticity{0.3, 0.3}, Chromaticity{0.4, 0.4}, D50, SRGBCurve)
	assert.ErrorIs(t, err, ErrSingular)

	_, err = NewWorkingSpace("flat", Chromaticity{0.64, 0}, SRGBSpace.Green, SRGBSpace.Blue, D65, SRGBCurve)
	assert.Error(t, err)

	_, err = NewWorkingSpace("dark", SRGBSpace.Red, SRGBSpace.Green, SRGBSpace.Blue, Illuminant{}, SRGBCurve)
	assert.Error(t, err)
}

func TestWorkingSpaceByName(t *testing.T) {
	for name, want := range map[string]*WorkingSpace{
		"sRGB":             SRGBSpace,
		"srgb":             SRGBSpace,
		"Adobe RGB (1998)": AdobeRGB,
		"adobe-rgb-1998":   AdobeRGB,
		"PAL/SECAM RGB":    PALSECAMRGB,
		"palsecamrgb":      PALSECAMRGB,
		"ECI RGB v2":       ECIRGBv2,
		"SMPTE-C RGB":      SMPTECRGB,
	} {
		ws, err := WorkingSpaceByName(name)
		if assert.NoError(t, err, name) {
			assert.Same(t, want, ws, name)
		}
	}

	_, err := WorkingSpaceByName("Rec. 2020")
	assert.ErrorIs(t, err, ErrUnknownSpace)
}

func TestIlluminantByName(t *testing.T) {
	assert.Len(t, Illuminants, 11)
	w, err := IlluminantByName("d65")
	require.NoError(t, err)
	assert.Equal(t, D65, w)
	assert.True(t, w.Same(Illuminant{"other", 0.95047, 1.08883}))
	assert.False(t, w.Same(D50))

	_, err = IlluminantByName("D93")
	assert.ErrorIs(t, err, ErrUnknownIlluminant)
}
