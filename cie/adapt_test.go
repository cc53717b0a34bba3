// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"cogentcore.org/colorcalc/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestBradford(t *testing.T) {
	x, y, z := Bradford.Adapt(D65.X, 1, D65.Z, D65, D50)
	tolassert.EqualTriple(t, [3]float64{D50.X, 1, D50.Z}, [3]float64{x, y, z}, 1e-12)

	// columns of the D65 to D50 Bradford matrix
	cols := [3][3]float64{
		{1.0478112436606313, 0.029542398290574905, -0.009234489723309484},
		{0.02288660248169294, 0.9904844034904394, 0.015043616793498749},
		{-0.050126975968528914, -0.017049095628961564, 0.7521316354746059},
	}
	for i, col := range cols {
		var v [3]float64
		v[i] = 1
		x, y, z := Bradford.Adapt(v[0], v[1], v[2], D65, D50)
		tolassert.EqualTriple(t, col, [3]float64{x, y, z}, 1e-9)
	}
}

func TestAdaptRoundTrip(t *testing.T) {
	for _, m := range Bradford.Values() {
		for _, src := range Illuminants {
			for _, dst := range []Illuminant{D50, D65, A} {
				sx, sy, sz := src.XYZ()
				x, y, z := m.Adapt(sx, sy, sz, src, dst)
				if m != NoAdaptation {
					dx, dy, dz := dst.XYZ()
					tolassert.EqualTriple(t, [3]float64{dx, dy, dz}, [3]float64{x, y, z}, 1e-12, "%v %v %v", m, src, dst)
				}
				x, y, z = m.Adapt(0.3, 0.4, 0.5, src, dst)
				x, y, z = m.Adapt(x, y, z, dst, src)
				tolassert.EqualTriple(t, [3]float64{0.3, 0.4, 0.5}, [3]float64{x, y, z}, 1e-12, "%v %v %v", m, src, dst)
			}
		}
	}
}

func TestAdaptIdentity(t *testing.T) {
	x, y, z := NoAdaptation.Adapt(0.3, 0.4, 0.5, D65, A)
	assert.Equal(t, [3]float64{0.3, 0.4, 0.5}, [3]float64{x, y, z})

	x, y, z = Bradford.Adapt(0.3, 0.4, 0.5, D65, D65)
	assert.Equal(t, [3]float64{0.3, 0.4, 0.5}, [3]float64{x, y, z})

	x, y, z = Adaptation(42).Adapt(0.3, 0.4, 0.5, D65, A)
	assert.Equal(t, [3]float64{0.3, 0.4, 0.5}, [3]float64{x, y, z})

	x, y, z = XYZScaling.Adapt(0.3, 0.4, 0.5, E, D50)
	tolassert.EqualTriple(t, [3]float64{0.3 * D50.X, 0.4, 0.5 * D50.Z}, [3]float64{x, y, z}, 1e-15)

	assert.Equal(t, Identity3(), NoAdaptation.Matrix())
	assertMat3(t, Identity3(), VonKries.Matrix().Mul(VonKries.InverseMatrix()), 1e-12)
}

func TestAdaptationString(t *testing.T) {
	assert.Equal(t, "Bradford", Bradford.String())
	assert.Equal(t, "None", NoAdaptation.String())
	assert.Equal(t, "Adaptation(9)", Adaptation(9).String())

	var a Adaptation
	assert.NoError(t, a.SetString("von kries"))
	assert.Equal(t, VonKries, a)
	assert.NoError(t, a.UnmarshalText([]byte("xyz-scaling")))
	assert.Equal(t, XYZScaling, a)
	assert.ErrorIs(t, a.SetString("CAT02"), ErrUnknownAdaptation)

	b, err := NoAdaptation.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "None", string(b))
	assert.NotEmpty(t, Bradford.Desc())

	assert.Equal(t, "sRGB", SRGB.String())
	assert.Equal(t, "Companding(7)", Companding(7).String())
}
