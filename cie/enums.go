// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"errors"
	"fmt"
)

// ErrUnknownAdaptation is returned for an invalid [Adaptation]
// value or name.
var ErrUnknownAdaptation = errors.New("cie: unknown adaptation method")

var _CompandingNames = []string{"sRGB", "Gamma", "LStar"}

// String returns the string representation of this Companding value.
func (i Companding) String() string {
	if i.IsValid() {
		return _CompandingNames[i]
	}
	return fmt.Sprintf("Companding(%d)", int32(i))
}

// IsValid returns whether the value is a valid option for type Companding.
func (i Companding) IsValid() bool { return i >= SRGB && i <= LStar }

var _AdaptationValues = []Adaptation{Bradford, VonKries, XYZScaling, NoAdaptation}

var _AdaptationNames = []string{"Bradford", "VonKries", "XYZScaling", "None"}

var _AdaptationDescs = []string{
	"the Bradford cone response transform",
	"the von Kries cone response transform",
	"direct scaling of XYZ by the ratio of the whites",
	"no chromatic adaptation",
}

// String returns the string representation of this Adaptation value.
func (i Adaptation) String() string {
	if i.IsValid() {
		return _AdaptationNames[i]
	}
	return fmt.Sprintf("Adaptation(%d)", int32(i))
}

// SetString sets the Adaptation value from its string representation,
// ignoring case, spaces, and punctuation, and returns an error if the
// string is invalid.
func (i *Adaptation) SetString(s string) error {
	key := nameKey(s)
	for j, n := range _AdaptationNames {
		if nameKey(n) == key {
			*i = _AdaptationValues[j]
			return nil
		}
	}
	return fmt.Errorf("%w %q", ErrUnknownAdaptation, s)
}

// Desc returns the description of the Adaptation value.
func (i Adaptation) Desc() string {
	if i.IsValid() {
		return _AdaptationDescs[i]
	}
	return i.String()
}

// Values returns all possible values for the type Adaptation.
func (i Adaptation) Values() []Adaptation { return _AdaptationValues }

// IsValid returns whether the value is a valid option for type Adaptation.
func (i Adaptation) IsValid() bool { return i >= Bradford && i <= NoAdaptation }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Adaptation) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Adaptation) UnmarshalText(text []byte) error { return i.SetString(string(text)) }
