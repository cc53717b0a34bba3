// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"

	"cogentcore.org/colorcalc/base/errors"
)

// SetFromDefaults sets the values of the given config object
// from `def:` struct field tag values. Errors are automatically
// logged in addition to being returned.
func SetFromDefaults(cfg any) error {
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return errors.Log(fmt.Errorf("config.SetFromDefaults: expected a pointer to a struct, not %T", cfg))
	}
	v = v.Elem()
	typ := v.Type()
	var errs []error
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		def, ok := f.Tag.Lookup("def")
		if !ok || !f.IsExported() {
			continue
		}
		if err := setFromString(v.Field(i), def); err != nil {
			errs = append(errs, fmt.Errorf("config.SetFromDefaults: field %s: %w", f.Name, err))
		}
	}
	return errors.Log(errors.Join(errs...))
}

// setFromString sets the field value from its string form,
// using [encoding.TextUnmarshaler] when the field implements it.
func setFromString(fv reflect.Value, s string) error {
	if tu, ok := fv.Addr().Interface().(encoding.TextUnmarshaler); ok {
		return tu.UnmarshalText([]byte(s))
	}
	switch fv.Kind() {
	case reflect.String:
		fv.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		fv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, fv.Type().Bits())
		if err != nil {
			return err
		}
		fv.SetInt(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(s, fv.Type().Bits())
		if err != nil {
			return err
		}
		fv.SetFloat(n)
	default:
		return fmt.Errorf("unsupported kind %v", fv.Kind())
	}
	return nil
}
