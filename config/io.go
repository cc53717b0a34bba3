// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"slices"

	"cogentcore.org/colorcalc/base/errors"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// includer is a config type with an Includes field.
type includer interface {
	IncludesPtr() *[]string
}

// DefaultPath returns the default config file path,
// ~/.config/colorcalc/config.toml.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "colorcalc", "config.toml"), nil
}

// Read reads TOML config values from the given reader into cfg.
// Fields that are not present keep their current values, and unknown
// fields are an error.
func Read(cfg any, r io.Reader) error {
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

// Write writes cfg to the given writer in TOML.
func Write(cfg any, w io.Writer) error {
	return toml.NewEncoder(w).Encode(cfg)
}

// OpenFiles reads cfg from the given TOML files in order, so that
// later files override earlier ones.
func OpenFiles(cfg any, files ...string) error {
	for _, file := range files {
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		err = Read(cfg, f)
		f.Close()
		if err != nil {
			return fmt.Errorf("config: %s: %w", file, err)
		}
	}
	return nil
}

// Open reads cfg from the given TOML file. A leading ~ in the file name
// is expanded to the home directory. If cfg has Includes, they are opened
// first in the natural include order so that includers overwrite included
// settings, and the original file is then reopened. The Includes of cfg
// are set to the full include stack.
func Open(cfg any, file string) error {
	file, err := homedir.Expand(file)
	if err != nil {
		return err
	}
	if err := OpenFiles(cfg, file); err != nil {
		return err
	}
	incfg, ok := cfg.(includer)
	if !ok {
		return nil
	}
	incs, err := includeStack(incfg, file, []string{file})
	if err != nil {
		return err
	}
	if len(incs) == 0 {
		return nil
	}
	for i := len(incs) - 1; i >= 0; i-- {
		if err := OpenFiles(cfg, incs[i]); err != nil {
			return err
		}
	}
	// reopen original
	if err := OpenFiles(cfg, file); err != nil {
		return err
	}
	*incfg.IncludesPtr() = incs
	return nil
}

// includeStack returns the includes of cfg (just read from file) and,
// recursively, of those includes, with paths resolved relative to the
// including file. Cycles are an error.
func includeStack(cfg includer, file string, seen []string) ([]string, error) {
	var stack []string
	dir := filepath.Dir(file)
	for _, inc := range *cfg.IncludesPtr() {
		inc, err := homedir.Expand(inc)
		if err != nil {
			return nil, err
		}
		if !filepath.IsAbs(inc) {
			inc = filepath.Join(dir, inc)
		}
		if slices.Contains(seen, inc) {
			return nil, fmt.Errorf("config: include cycle: %s includes %s", file, inc)
		}
		stack = append(stack, inc)

		sub, err := newLike(cfg)
		if err != nil {
			return nil, err
		}
		if err := OpenFiles(sub, inc); err != nil {
			return nil, err
		}
		subs, err := includeStack(sub, inc, append(slices.Clone(seen), inc))
		if err != nil {
			return nil, err
		}
		stack = append(stack, subs...)
	}
	return stack, nil
}

// newLike returns a new zero config of the same type as cfg,
// which must be a pointer to a struct.
func newLike(cfg includer) (includer, error) {
	t := reflect.TypeOf(cfg)
	if t.Kind() != reflect.Pointer {
		return nil, fmt.Errorf("config: %T must be a pointer to read includes", cfg)
	}
	sub, ok := reflect.New(t.Elem()).Interface().(includer)
	if !ok {
		return nil, fmt.Errorf("config: %T is not an includer", sub)
	}
	return sub, nil
}

// Load returns the default config overlaid with the given config file.
// If file is empty, [DefaultPath] is used, and it is not an error for
// that file not to exist.
func Load(file string) (*Config, error) {
	cfg := Default()
	optional := file == ""
	if optional {
		var err error
		file, err = DefaultPath()
		if err != nil {
			return cfg, nil
		}
	}
	err := Open(cfg, file)
	if optional && errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
