// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownIlluminant is returned when looking up an illuminant
// by a name that is not in [Illuminants].
var ErrUnknownIlluminant = errors.New("cie: unknown illuminant")

// Illuminant is a reference white given by its XYZ tristimulus values,
// normalized so that Y = 1.
type Illuminant struct {

	// Name is the standard name of the illuminant, such as "D65".
	Name string

	// X is the X tristimulus value of the white.
	X float64

	// Z is the Z tristimulus value of the white.
	Z float64
}

// XYZ returns the tristimulus values of the white, with Y = 1.
func (w Illuminant) XYZ() (x, y, z float64) {
	return w.X, 1, w.Z
}

// Same returns whether the two illuminants have the same white point,
// regardless of their names.
func (w Illuminant) Same(o Illuminant) bool {
	return w.X == o.X && w.Z == o.Z
}

func (w Illuminant) String() string {
	return w.Name
}

// The standard illuminants (CIE 1931 2° observer).
var (
	// A is incandescent / tungsten light.
	A = Illuminant{"A", 1.09850, 0.35585}

	// B is obsolete direct sunlight at noon.
	B = Illuminant{"B", 0.99072, 0.85223}

	// C is obsolete average / north sky daylight.
	C = Illuminant{"C", 0.98074, 1.18232}

	// D50 is horizon light, the ICC profile connection space white.
	D50 = Illuminant{"D50", 0.96422, 0.82521}

	// D55 is mid-morning / mid-afternoon daylight.
	D55 = Illuminant{"D55", 0.95682, 0.92149}

	// D65 is noon daylight, the white of sRGB.
	D65 = Illuminant{"D65", 0.95047, 1.08883}

	// D75 is north sky daylight.
	D75 = Illuminant{"D75", 0.94972, 1.22638}

	// E is the equal energy white.
	E = Illuminant{"E", 1.00000, 1.00000}

	// F2 is cool white fluorescent.
	F2 = Illuminant{"F2", 0.99186, 0.67393}

	// F7 is D65 simulator fluorescent.
	F7 = Illuminant{"F7", 0.95041, 1.08747}

	// F11 is Philips TL84 fluorescent.
	F11 = Illuminant{"F11", 1.00962, 0.64350}
)

// DefaultWhite is the default reference white for XYZ and L*a*b* values.
var DefaultWhite = D50

// Illuminants are all of the standard illuminants, in table order.
var Illuminants = []Illuminant{A, B, C, D50, D55, D65, D75, E, F2, F7, F11}

// IlluminantByName returns the standard illuminant with the given name,
// ignoring case.
func IlluminantByName(name string) (Illuminant, error) {
	for _, w := range Illuminants {
		if strings.EqualFold(w.Name, strings.TrimSpace(name)) {
			return w, nil
		}
	}
	return Illuminant{}, fmt.Errorf("%w %q", ErrUnknownIlluminant, name)
}
