// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownModel is returned for a [Model] that is not one of
// the four supported color models.
var ErrUnknownModel = errors.New("colors: unknown color model")

// Model is one of the representations of a [Color].
type Model int32

const (
	// ModelRGB is companded RGB in a working space.
	ModelRGB Model = iota

	// ModelHSV is hue, saturation, and value.
	ModelHSV

	// ModelXYZ is CIE XYZ tristimulus values.
	ModelXYZ

	// ModelLab is CIE L*a*b*.
	ModelLab
)

var _ModelValues = []Model{ModelRGB, ModelHSV, ModelXYZ, ModelLab}

var _ModelNames = []string{"RGB", "HSV", "XYZ", "Lab"}

// String returns the string representation of this Model value.
func (m Model) String() string {
	if m.IsValid() {
		return _ModelNames[m]
	}
	return fmt.Sprintf("Model(%d)", int32(m))
}

// SetString sets the Model value from its string representation,
// ignoring case, and returns an error if the string is invalid.
func (m *Model) SetString(s string) error {
	for i, n := range _ModelNames {
		if strings.EqualFold(n, strings.TrimSpace(s)) {
			*m = _ModelValues[i]
			return nil
		}
	}
	return fmt.Errorf("%w %q", ErrUnknownModel, s)
}

// Values returns all possible values for the type Model.
func (m Model) Values() []Model { return _ModelValues }

// IsValid returns whether the value is a valid option for type Model.
func (m Model) IsValid() bool { return m >= ModelRGB && m <= ModelLab }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (m Model) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (m *Model) UnmarshalText(text []byte) error { return m.SetString(string(text)) }

// Range is a closed interval of channel values.
type Range struct {
	Min, Max float64
}

// Contains returns whether v is within the range.
// NaN is never contained.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

func (r Range) String() string {
	return FormatFloat(r.Min) + ".." + FormatFloat(r.Max)
}

var modelRanges = [...][3]Range{
	ModelRGB: {{0, 1}, {0, 1}, {0, 1}},
	ModelHSV: {{0, 360}, {0, 1}, {0, 1}},
	ModelXYZ: {{0, 2}, {0, 1}, {0, 2}},
	ModelLab: {{0, 100}, {-128, 128}, {-128, 128}},
}

var modelChannels = [...][3]string{
	ModelRGB: {"red", "green", "blue"},
	ModelHSV: {"hue", "saturation", "value"},
	ModelXYZ: {"X", "Y", "Z"},
	ModelLab: {"L*", "a*", "b*"},
}

// Ranges returns the accepted input range of each channel of the model.
// The color types themselves do not enforce these ranges.
func (m Model) Ranges() [3]Range {
	if !m.IsValid() {
		return [3]Range{}
	}
	return modelRanges[m]
}

// Channels returns the names of the channels of the model.
func (m Model) Channels() [3]string {
	if !m.IsValid() {
		return [3]string{}
	}
	return modelChannels[m]
}
