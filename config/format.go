// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"strings"
)

// Format is an output format.
type Format int32

const (
	// Text prints one "kind(ch1, ch2, ch3)" line per representation.
	Text Format = iota

	// JSON prints a JSON object.
	JSON

	// YAML prints a YAML document.
	YAML

	// TOML prints a TOML document.
	TOML
)

var _FormatValues = []Format{Text, JSON, YAML, TOML}

var _FormatNames = []string{"text", "json", "yaml", "toml"}

// String returns the string representation of this Format value.
func (i Format) String() string {
	if i.IsValid() {
		return _FormatNames[i]
	}
	return fmt.Sprintf("Format(%d)", int32(i))
}

// SetString sets the Format value from its string representation,
// ignoring case, and returns an error if the string is invalid.
func (i *Format) SetString(s string) error {
	for j, n := range _FormatNames {
		if strings.EqualFold(n, s) {
			*i = _FormatValues[j]
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type Format", s)
}

// Values returns all possible values for the type Format.
func (i Format) Values() []Format { return _FormatValues }

// IsValid returns whether the value is a valid option for type Format.
func (i Format) IsValid() bool { return i >= Text && i <= TOML }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Format) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Format) UnmarshalText(text []byte) error { return i.SetString(string(text)) }
