// Copyright 2026 The Mat3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat3d

import (
	"fmt"
	"strings"
)

// Matrix4 is a 4x4 homogeneous transform matrix stored as a flat
// 16-element slice in column-major order: element (row, column) lives
// at index column*4 + row. The slice is the storage: handles that
// share the slice share the matrix cells, which is what the aliasing
// constructors of [Mat3D] rely on, and what an external renderer can
// consume directly as the flat storage view.
//
// All Set* methods and the in-place transform methods mutate the
// shared storage; the remaining methods return new values.
type Matrix4 []float32

// Identity4 returns a new identity [Matrix4].
func Identity4() Matrix4 {
	m := make(Matrix4, 16)
	m.SetIdentity()
	return m
}

// NewMatrix4 returns a new [Matrix4] holding an independent copy of
// the given source matrix. A nil source yields the identity matrix.
func NewMatrix4(src Matrix4) Matrix4 {
	m := make(Matrix4, 16)
	if src == nil {
		m.SetIdentity()
	} else {
		copy(m, src)
	}
	return m
}

// Clone returns an independent copy of this matrix.
func (m Matrix4) Clone() Matrix4 {
	return NewMatrix4(m)
}

// SetIdentity sets this matrix to the identity matrix.
func (m Matrix4) SetIdentity() {
	for i := range m {
		m[i] = 0
	}
	m[0] = 1
	m[5] = 1
	m[10] = 1
	m[15] = 1
}

// IsIdentity returns whether this matrix is the exact identity matrix.
func (m Matrix4) IsIdentity() bool {
	for i, v := range m {
		id := float32(0)
		if i%5 == 0 {
			id = 1
		}
		if v != id {
			return false
		}
	}
	return true
}

// Translate post-multiplies this matrix in place by a translation by
// (x, y, z): m = m * T(x, y, z).
func (m Matrix4) Translate(x, y, z float32) {
	m[12] = m[0]*x + m[4]*y + m[8]*z + m[12]
	m[13] = m[1]*x + m[5]*y + m[9]*z + m[13]
	m[14] = m[2]*x + m[6]*y + m[10]*z + m[14]
	m[15] = m[3]*x + m[7]*y + m[11]*z + m[15]
}

// Scale post-multiplies this matrix in place by a scale by (x, y, z):
// m = m * S(x, y, z).
func (m Matrix4) Scale(x, y, z float32) {
	for i := 0; i < 4; i++ {
		m[i] *= x
		m[4+i] *= y
		m[8+i] *= z
	}
}

// RotateX post-multiplies this matrix in place by a rotation of angle
// radians around the X axis: m = m * Rx(angle).
func (m Matrix4) RotateX(angle float32) {
	c, s := Cos(angle), Sin(angle)
	for i := 0; i < 4; i++ {
		c1, c2 := m[4+i], m[8+i]
		m[4+i] = c*c1 + s*c2
		m[8+i] = c*c2 - s*c1
	}
}

// RotateY post-multiplies this matrix in place by a rotation of angle
// radians around the Y axis: m = m * Ry(angle).
func (m Matrix4) RotateY(angle float32) {
	c, s := Cos(angle), Sin(angle)
	for i := 0; i < 4; i++ {
		c0, c2 := m[i], m[8+i]
		m[i] = c*c0 - s*c2
		m[8+i] = s*c0 + c*c2
	}
}

// RotateZ post-multiplies this matrix in place by a rotation of angle
// radians around the Z axis: m = m * Rz(angle).
func (m Matrix4) RotateZ(angle float32) {
	c, s := Cos(angle), Sin(angle)
	for i := 0; i < 4; i++ {
		c0, c1 := m[i], m[4+i]
		m[i] = c*c0 + s*c1
		m[4+i] = c*c1 - s*c0
	}
}

// SetMul post-multiplies this matrix in place by the other given
// matrix: m = m * other.
func (m Matrix4) SetMul(other Matrix4) {
	var t [16]float32
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			t[c*4+r] = m[r]*other[c*4] + m[4+r]*other[c*4+1] +
				m[8+r]*other[c*4+2] + m[12+r]*other[c*4+3]
		}
	}
	copy(m, t[:])
}

// SetAdd adds the other given matrix to this one in place,
// element-wise.
func (m Matrix4) SetAdd(other Matrix4) {
	for i := range m {
		m[i] += other[i]
	}
}

// SetSub subtracts the other given matrix from this one in place,
// element-wise.
func (m Matrix4) SetSub(other Matrix4) {
	for i := range m {
		m[i] -= other[i]
	}
}

// SetTranspose transposes this matrix in place.
func (m Matrix4) SetTranspose() {
	for c := 0; c < 4; c++ {
		for r := c + 1; r < 4; r++ {
			m[c*4+r], m[r*4+c] = m[r*4+c], m[c*4+r]
		}
	}
}

// MulVector3AsPoint returns the given vector transformed by this
// matrix as a point (w = 1), with a perspective divide when the
// resulting w is not 1.
func (m Matrix4) MulVector3AsPoint(v Vector3) Vector3 {
	x := m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]
	y := m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]
	z := m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]
	w := m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]
	if w != 0 && w != 1 {
		x /= w
		y /= w
		z /= w
	}
	return Vector3{x, y, z}
}

// EqualTol returns whether this matrix equals the other given matrix
// within the given element-wise tolerance.
func (m Matrix4) EqualTol(other Matrix4, tol float32) bool {
	for i := range m {
		if Abs(m[i]-other[i]) > tol {
			return false
		}
	}
	return true
}

func (m Matrix4) String() string {
	var sb strings.Builder
	for r := 0; r < 4; r++ {
		fmt.Fprintf(&sb, "[%v, %v, %v, %v]\n", m[r], m[4+r], m[8+r], m[12+r])
	}
	return sb.String()
}
