// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode"
)

// ErrUnknownSpace is returned when looking up a working space
// by a name that is not in [WorkingSpaces].
var ErrUnknownSpace = errors.New("cie: unknown working space")

// Chromaticity is a point on the CIE xy chromaticity diagram.
type Chromaticity struct {
	X, Y float64
}

// xyz returns the tristimulus values of the chromaticity scaled to Y = 1.
func (c Chromaticity) xyz() (x, y, z float64) {
	return c.X / c.Y, 1, (1 - c.X - c.Y) / c.Y
}

// WorkingSpace is an RGB color space defined by the chromaticities of its
// three primaries, its reference white, and its companding curve.
type WorkingSpace struct {

	// Name is the common name of the space, such as "sRGB".
	Name string

	// Red, Green, and Blue are the chromaticities of the primaries.
	Red, Green, Blue Chromaticity

	// White is the native reference white of the space.
	White Illuminant

	// Curve is the companding curve of the space.
	Curve Curve
}

// NewWorkingSpace returns a new custom working space. It returns an error
// if any primary has a zero y coordinate, or if the primaries are
// collinear so that the RGB to XYZ matrix cannot be inverted.
func NewWorkingSpace(name string, red, green, blue Chromaticity, white Illuminant, curve Curve) (*WorkingSpace, error) {
	ws := &WorkingSpace{Name: name, Red: red, Green: green, Blue: blue, White: white, Curve: curve}
	for _, p := range []Chromaticity{red, green, blue} {
		if p.Y == 0 || math.IsNaN(p.Y) {
			return nil, fmt.Errorf("cie: working space %q: primary %v has no luminance", name, p)
		}
	}
	if white.X <= 0 || white.Z <= 0 {
		return nil, fmt.Errorf("cie: working space %q: invalid white point %v", name, white)
	}
	if _, _, err := ws.Matrices(); err != nil {
		return nil, fmt.Errorf("cie: working space %q: %w", name, err)
	}
	return ws, nil
}

// Matrices returns the matrix that maps linear RGB in the space to XYZ
// relative to the native white of the space, and its inverse. The columns
// of the primaries matrix are scaled so that RGB (1, 1, 1) maps to the
// white point. It returns [ErrSingular] for degenerate primaries.
func (ws *WorkingSpace) Matrices() (toXYZ, fromXYZ Mat3, err error) {
	var prim Mat3
	prim[0][0], prim[0][1], prim[0][2] = ws.Red.xyz()
	prim[1][0], prim[1][1], prim[1][2] = ws.Green.xyz()
	prim[2][0], prim[2][1], prim[2][2] = ws.Blue.xyz()

	inv, err := prim.Inverse()
	if err != nil {
		return Mat3{}, Mat3{}, err
	}
	// row vector white * inv gives the per-primary scale
	sr, sg, sb := inv.Transpose().MulVec(ws.White.XYZ())
	toXYZ = prim.ScaleRows(sr, sg, sb).Transpose()

	fromXYZ, err = toXYZ.Inverse()
	if err != nil {
		return Mat3{}, Mat3{}, err
	}
	return toXYZ, fromXYZ, nil
}

func (ws *WorkingSpace) String() string {
	return ws.Name
}

// The standard RGB working spaces.
var (
	AdobeRGB = &WorkingSpace{"Adobe RGB (1998)",
		Chromaticity{0.6400, 0.3300}, Chromaticity{0.2100, 0.7100}, Chromaticity{0.1500, 0.0600},
		D65, GammaCurve(2.2)}

	AppleRGB = &WorkingSpace{"Apple RGB",
		Chromaticity{0.6250, 0.3400}, Chromaticity{0.2800, 0.5950}, Chromaticity{0.1550, 0.0700},
		D65, GammaCurve(1.8)}

	BestRGB = &WorkingSpace{"Best RGB",
		Chromaticity{0.7347, 0.2653}, Chromaticity{0.2150, 0.7750}, Chromaticity{0.1300, 0.0350},
		D50, GammaCurve(2.2)}

	BetaRGB = &WorkingSpace{"Beta RGB",
		Chromaticity{0.6888, 0.3112}, Chromaticity{0.1986, 0.7551}, Chromaticity{0.1265, 0.0352},
		D50, GammaCurve(2.2)}

	BruceRGB = &WorkingSpace{"Bruce RGB",
		Chromaticity{0.6400, 0.3300}, Chromaticity{0.2800, 0.6500}, Chromaticity{0.1500, 0.0600},
		D65, GammaCurve(2.2)}

	CIERGB = &WorkingSpace{"CIE RGB",
		Chromaticity{0.7350, 0.2650}, Chromaticity{0.2740, 0.7170}, Chromaticity{0.1670, 0.0090},
		E, GammaCurve(2.2)}

	ColorMatchRGB = &WorkingSpace{"ColorMatch RGB",
		Chromaticity{0.6300, 0.3400}, Chromaticity{0.2950, 0.6050}, Chromaticity{0.1500, 0.0750},
		D50, GammaCurve(1.8)}

	DonRGB4 = &WorkingSpace{"Don RGB 4",
		Chromaticity{0.6960, 0.3000}, Chromaticity{0.2150, 0.7650}, Chromaticity{0.1300, 0.0350},
		D50, GammaCurve(2.2)}

	ECIRGBv2 = &WorkingSpace{"ECI RGB v2",
		Chromaticity{0.6700, 0.3300}, Chromaticity{0.2100, 0.7100}, Chromaticity{0.1400, 0.0800},
		D50, LStarCurve}

	EktaSpacePS5 = &WorkingSpace{"Ekta Space PS5",
		Chromaticity{0.6950, 0.3050}, Chromaticity{0.2600, 0.7000}, Chromaticity{0.1100, 0.0050},
		D50, GammaCurve(2.2)}

	NTSCRGB = &WorkingSpace{"NTSC RGB",
		Chromaticity{0.6700, 0.3300}, Chromaticity{0.2100, 0.7100}, Chromaticity{0.1400, 0.0800},
		C, GammaCurve(2.2)}

	PALSECAMRGB = &WorkingSpace{"PAL/SECAM RGB",
		Chromaticity{0.6400, 0.3300}, Chromaticity{0.2900, 0.6000}, Chromaticity{0.1500, 0.0600},
		D65, GammaCurve(2.2)}

	ProPhotoRGB = &WorkingSpace{"ProPhoto RGB",
		Chromaticity{0.7347, 0.2653}, Chromaticity{0.1596, 0.8404}, Chromaticity{0.0366, 0.0001},
		D50, GammaCurve(1.8)}

	SMPTECRGB = &WorkingSpace{"SMPTE-C RGB",
		Chromaticity{0.6300, 0.3400}, Chromaticity{0.3100, 0.5950}, Chromaticity{0.1550, 0.0700},
		D65, GammaCurve(2.2)}

	SRGBSpace = &WorkingSpace{"sRGB",
		Chromaticity{0.6400, 0.3300}, Chromaticity{0.3000, 0.6000}, Chromaticity{0.1500, 0.0600},
		D65, SRGBCurve}

	WideGamutRGB = &WorkingSpace{"Wide Gamut RGB",
		Chromaticity{0.7350, 0.2650}, Chromaticity{0.1150, 0.8260}, Chromaticity{0.1570, 0.0180},
		D50, GammaCurve(2.2)}
)

// DefaultSpace is the default RGB working space.
var DefaultSpace = SRGBSpace

// WorkingSpaces are all of the standard working spaces, in table order.
var WorkingSpaces = []*WorkingSpace{
	AdobeRGB, AppleRGB, BestRGB, BetaRGB, BruceRGB, CIERGB, ColorMatchRGB, DonRGB4,
	ECIRGBv2, EktaSpacePS5, NTSCRGB, PALSECAMRGB, ProPhotoRGB, SMPTECRGB, SRGBSpace, WideGamutRGB,
}

// WorkingSpaceByName returns the standard working space with the given
// name. Case, spaces, and punctuation are ignored, so "adobe-rgb-1998",
// "AdobeRGB1998", and "Adobe RGB (1998)" all match.
func WorkingSpaceByName(name string) (*WorkingSpace, error) {
	key := nameKey(name)
	for _, ws := range WorkingSpaces {
		if nameKey(ws.Name) == key {
			return ws, nil
		}
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownSpace, name)
}

func nameKey(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, s)
}
