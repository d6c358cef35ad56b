// Copyright 2026 The Mat3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat3d

// Transformer is implemented by anything carrying a transform state.
// [Transformable] is the standard implementation, meant to be
// embedded; a type only has to feed its layout bounds in through
// SetBounds to make the pivot meaningful.
type Transformer interface {
	// Mat returns the underlying transform state.
	Mat() *Mat3D
}

// Transformable equips an embedding type with the full transform
// operation set, backed by an owned [Mat3D] created on first use.
// This is a single-level capability: embed it, set the bounds, and
// chain operations.
//
//	type sprite struct {
//		mat3d.Transformable
//	}
//
//	sp.SetBounds(mat3d.B2(0, 0, 64, 64))
//	sp.Rotate(45).ScaleX(2)
type Transformable struct {
	mat *Mat3D
}

// Mat returns the underlying transform state, creating an identity
// state on first use.
func (t *Transformable) Mat() *Mat3D {
	if t.mat == nil {
		t.mat = New()
	}
	return t.mat
}

// Bounds returns the current bounding rectangle.
func (t *Transformable) Bounds() Box2 {
	return t.Mat().Rect()
}

// SetBounds sets the bounding rectangle, normally from an external
// layout pass.
func (t *Transformable) SetBounds(bounds Box2) {
	t.Mat().SetRect(bounds)
}

// Matrix returns the live matrix storage view; see [Mat3D.Matrix].
func (t *Transformable) Matrix() Matrix4 {
	return t.Mat().Matrix()
}

// Center returns the default pivot; see [Mat3D.Center].
func (t *Transformable) Center() Vector2 {
	return t.Mat().Center()
}

// Translate forwards to [Mat3D.Translate].
func (t *Transformable) Translate(x, y, z float32) *Transformable {
	t.Mat().Translate(x, y, z)
	return t
}

// Shift forwards to [Mat3D.Shift].
func (t *Transformable) Shift(offset Vector2, origin ...Vector2) *Transformable {
	t.Mat().Shift(offset, origin...)
	return t
}

// TranslateX forwards to [Mat3D.TranslateX].
func (t *Transformable) TranslateX(offset float32, origin ...Vector2) *Transformable {
	t.Mat().TranslateX(offset, origin...)
	return t
}

// TranslateY forwards to [Mat3D.TranslateY].
func (t *Transformable) TranslateY(offset float32, origin ...Vector2) *Transformable {
	t.Mat().TranslateY(offset, origin...)
	return t
}

// TranslateZ forwards to [Mat3D.TranslateZ].
func (t *Transformable) TranslateZ(offset float32, origin ...Vector2) *Transformable {
	t.Mat().TranslateZ(offset, origin...)
	return t
}

// Upward forwards to [Mat3D.Upward].
func (t *Transformable) Upward(offset float32, origin ...Vector2) *Transformable {
	t.Mat().Upward(offset, origin...)
	return t
}

// Downward forwards to [Mat3D.Downward].
func (t *Transformable) Downward(offset float32, origin ...Vector2) *Transformable {
	t.Mat().Downward(offset, origin...)
	return t
}

// Forward forwards to [Mat3D.Forward].
func (t *Transformable) Forward(offset float32, dir Direction, origin ...Vector2) *Transformable {
	t.Mat().Forward(offset, dir, origin...)
	return t
}

// Backward forwards to [Mat3D.Backward].
func (t *Transformable) Backward(offset float32, dir Direction, origin ...Vector2) *Transformable {
	t.Mat().Backward(offset, dir, origin...)
	return t
}

// Inward forwards to [Mat3D.Inward].
func (t *Transformable) Inward(offset float32, origin ...Vector2) *Transformable {
	t.Mat().Inward(offset, origin...)
	return t
}

// Outward forwards to [Mat3D.Outward].
func (t *Transformable) Outward(offset float32, origin ...Vector2) *Transformable {
	t.Mat().Outward(offset, origin...)
	return t
}

// Scale forwards to [Mat3D.Scale].
func (t *Transformable) Scale(x, y, z float32) *Transformable {
	t.Mat().Scale(x, y, z)
	return t
}

// ScaleX forwards to [Mat3D.ScaleX].
func (t *Transformable) ScaleX(ratio float32, origin ...Vector2) *Transformable {
	t.Mat().ScaleX(ratio, origin...)
	return t
}

// ScaleY forwards to [Mat3D.ScaleY].
func (t *Transformable) ScaleY(ratio float32, origin ...Vector2) *Transformable {
	t.Mat().ScaleY(ratio, origin...)
	return t
}

// ScaleZ forwards to [Mat3D.ScaleZ].
func (t *Transformable) ScaleZ(ratio float32, origin ...Vector2) *Transformable {
	t.Mat().ScaleZ(ratio, origin...)
	return t
}

// Tilt forwards to [Mat3D.Tilt].
func (t *Transformable) Tilt(x, y, z float32) *Transformable {
	t.Mat().Tilt(x, y, z)
	return t
}

// TiltX forwards to [Mat3D.TiltX].
func (t *Transformable) TiltX(degrees float32, origin ...Vector2) *Transformable {
	t.Mat().TiltX(degrees, origin...)
	return t
}

// TiltY forwards to [Mat3D.TiltY].
func (t *Transformable) TiltY(degrees float32, origin ...Vector2) *Transformable {
	t.Mat().TiltY(degrees, origin...)
	return t
}

// TiltZ forwards to [Mat3D.TiltZ].
func (t *Transformable) TiltZ(degrees float32, origin ...Vector2) *Transformable {
	t.Mat().TiltZ(degrees, origin...)
	return t
}

// Rotate forwards to [Mat3D.Rotate].
func (t *Transformable) Rotate(degrees float32, origin ...Vector2) *Transformable {
	t.Mat().Rotate(degrees, origin...)
	return t
}

// FlipX forwards to [Mat3D.FlipX].
func (t *Transformable) FlipX(origin ...Vector2) *Transformable {
	t.Mat().FlipX(origin...)
	return t
}

// FlipY forwards to [Mat3D.FlipY].
func (t *Transformable) FlipY(origin ...Vector2) *Transformable {
	t.Mat().FlipY(origin...)
	return t
}

// FlipZ forwards to [Mat3D.FlipZ], flipping around the Z axis like
// the core state does.
func (t *Transformable) FlipZ(origin ...Vector2) *Transformable {
	t.Mat().FlipZ(origin...)
	return t
}

// Multiply forwards to [Mat3D.Multiply].
func (t *Transformable) Multiply(other *Mat3D) *Transformable {
	t.Mat().Multiply(other)
	return t
}

// Add forwards to [Mat3D.Add].
func (t *Transformable) Add(other *Mat3D) *Transformable {
	t.Mat().Add(other)
	return t
}

// Subtract forwards to [Mat3D.Subtract].
func (t *Transformable) Subtract(other *Mat3D) *Transformable {
	t.Mat().Subtract(other)
	return t
}

// Negate forwards to [Mat3D.Negate] (a transpose; see there).
func (t *Transformable) Negate() *Transformable {
	t.Mat().Negate()
	return t
}

func (t *Transformable) String() string {
	return t.Mat().String()
}
