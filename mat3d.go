// Copyright 2026 The Mat3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mat3d provides a pivot-aware affine transform state: a 4x4
// homogeneous transform matrix paired with the bounding rectangle of
// the content it transforms. Every transform operation (translate,
// scale, tilt, rotate, flip, combine) is composed around a pivot that
// defaults to the rectangle's center, so that content scales and
// rotates in place the way on-screen objects are expected to.
//
// States are mutated in place and returned for chaining. Matrix
// storage is a flat slice, so constructors can either copy it (owning)
// or share it (aliasing) with the caller; see [FromMatrix],
// [ShareMatrix], and [From].
package mat3d

// Mat3D is a transform state: a 4x4 homogeneous transform matrix
// together with the bounding rectangle of the transformed content.
// The rectangle's center is the default pivot for all operations.
//
// All transform operations mutate the state in place and return the
// same state for chaining. Mutations are visible through every handle
// sharing the same matrix storage (see [ShareMatrix] and [From]).
type Mat3D struct {
	matrix Matrix4
	rect   *Box2
}

// New returns a new identity transform state with empty bounds at the
// origin.
func New() *Mat3D {
	return &Mat3D{matrix: Identity4(), rect: &Box2{}}
}

// FromMatrix returns a new transform state holding an independent
// copy of the given matrix (owning construction): later mutations of
// the state never affect the caller's matrix, and vice versa. A nil
// matrix yields the identity.
func FromMatrix(matrix Matrix4, rect Box2) *Mat3D {
	return &Mat3D{matrix: NewMatrix4(matrix), rect: &rect}
}

// ShareMatrix returns a new transform state sharing the given matrix
// storage (aliasing construction): mutations through the state are
// visible through the caller's slice and vice versa. The storage
// lives as long as its longest holder. A nil matrix yields an
// identity state equivalent to [New].
func ShareMatrix(matrix Matrix4, rect Box2) *Mat3D {
	if matrix == nil {
		matrix = Identity4()
	}
	return &Mat3D{matrix: matrix, rect: &rect}
}

// From returns a new transform state sharing the other state's matrix
// and bounds storage: the two states remain live views of the same
// underlying transform, not independent copies.
func From(other *Mat3D) *Mat3D {
	return &Mat3D{matrix: other.matrix, rect: other.rect}
}

// Combine returns a new owning transform state that folds the given
// states into an identity state by repeated [Mat3D.Multiply], left to
// right. No states yields the identity state with empty bounds.
func Combine(parts ...*Mat3D) *Mat3D {
	t := New()
	for _, p := range parts {
		t.Multiply(p)
	}
	return t
}

// Matrix returns the state's matrix storage. This is a live
// read/write view, not a copy: writes through the returned slice are
// seen by the state and by every other holder of the storage.
func (t *Mat3D) Matrix() Matrix4 {
	return t.matrix
}

// Rect returns the state's current bounding rectangle.
func (t *Mat3D) Rect() Box2 {
	return *t.rect
}

// SetRect sets the state's bounding rectangle, which external layout
// determines; it keeps the default pivot meaningful for on-screen
// content. The new value is seen by every state sharing this bounds
// storage.
func (t *Mat3D) SetRect(rect Box2) *Mat3D {
	*t.rect = rect
	return t
}

// Center returns the midpoint of the bounding rectangle, the default
// pivot of all transform operations. It is recomputed on every call,
// since the rectangle may change between calls.
func (t *Mat3D) Center() Vector2 {
	return t.rect.Center()
}
