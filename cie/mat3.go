// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"errors"
	"math"
)

// ErrSingular is returned when inverting a matrix whose
// determinant is zero (or not finite).
var ErrSingular = errors.New("cie: singular matrix")

// Mat3 is a 3x3 matrix stored in row-major order. It multiplies
// column vectors: the result of [Mat3.MulVec] is m * (x, y, z)^T.
type Mat3 [3][3]float64

// Identity3 returns the 3x3 identity matrix.
func Identity3() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Det returns the determinant of the matrix.
func (m Mat3) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Inverse returns the inverse of the matrix, computed as the adjugate
// divided by the determinant. It returns [ErrSingular] if the
// determinant is zero or not finite.
func (m Mat3) Inverse() (Mat3, error) {
	det := m.Det()
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Mat3{}, ErrSingular
	}
	id := 1 / det
	return Mat3{
		{
			(m[1][1]*m[2][2] - m[1][2]*m[2][1]) * id,
			(m[0][2]*m[2][1] - m[0][1]*m[2][2]) * id,
			(m[0][1]*m[1][2] - m[0][2]*m[1][1]) * id,
		},
		{
			(m[1][2]*m[2][0] - m[1][0]*m[2][2]) * id,
			(m[0][0]*m[2][2] - m[0][2]*m[2][0]) * id,
			(m[0][2]*m[1][0] - m[0][0]*m[1][2]) * id,
		},
		{
			(m[1][0]*m[2][1] - m[1][1]*m[2][0]) * id,
			(m[0][1]*m[2][0] - m[0][0]*m[2][1]) * id,
			(m[0][0]*m[1][1] - m[0][1]*m[1][0]) * id,
		},
	}, nil
}

// Transpose returns the transpose of the matrix.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}

// Mul returns the matrix product m * o.
func (m Mat3) Mul(o Mat3) Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j]
		}
	}
	return r
}

// MulVec returns the product of the matrix with the column vector (x, y, z).
func (m Mat3) MulVec(x, y, z float64) (a, b, c float64) {
	a = m[0][0]*x + m[0][1]*y + m[0][2]*z
	b = m[1][0]*x + m[1][1]*y + m[1][2]*z
	c = m[2][0]*x + m[2][1]*y + m[2][2]*z
	return
}

// ScaleRows returns the matrix with row i multiplied by s[i].
func (m Mat3) ScaleRows(s0, s1, s2 float64) Mat3 {
	s := [3]float64{s0, s1, s2}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] *= s[i]
		}
	}
	return m
}
