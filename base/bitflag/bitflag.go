// Copyright (c) 2018, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bitflag provides simple bit flag setting and checking
// functions that take bit position args as ints (from const int enum iota's)
// and do the bit shifting from there. Maintaining ordinal lists of bit
// positions is much more convenient than maintaining masks by hand.
package bitflag

// Bits is the set of unsigned integer types that can hold flags.
type Bits interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Mask makes a mask for checking multiple different flags
func Mask[B Bits](flags ...int) B {
	var mask B
	for _, f := range flags {
		mask |= 1 << uint(f)
	}
	return mask
}

// Set sets bit value(s) for ordinal bit position flags
func Set[B Bits](b *B, flags ...int) {
	*b |= Mask[B](flags...)
}

// Has checks if given bit value is set for ordinal bit position flag
func Has[B Bits](b B, flag int) bool {
	return b&(1<<uint(flag)) != 0
}
