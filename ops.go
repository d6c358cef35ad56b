// Copyright 2026 The Mat3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat3d

// Direction is the horizontal layout direction that [Mat3D.Forward]
// and [Mat3D.Backward] use to resolve which way along X is forward.
type Direction int32

const (
	// LeftToRight lays content out left to right; forward is +X.
	LeftToRight Direction = iota

	// RightToLeft lays content out right to left; forward is -X.
	RightToLeft
)

func (d Direction) String() string {
	if d == RightToLeft {
		return "RightToLeft"
	}
	return "LeftToRight"
}

// pivot resolves the pivot point for an operation: the first origin
// argument if given (used as a raw offset, bypassing the rectangle),
// otherwise the rectangle's center expressed in the rectangle's local
// frame (center minus top-left corner).
func (t *Mat3D) pivot(origin []Vector2) Vector2 {
	if len(origin) > 0 {
		return origin[0]
	}
	return t.Center().Sub(t.rect.Min)
}

// around applies an elementary matrix operation anchored at the
// resolved pivot p: translate by +p, apply, translate by -p.
func (t *Mat3D) around(origin []Vector2, apply func(m Matrix4)) *Mat3D {
	p := t.pivot(origin)
	t.matrix.Translate(p.X, p.Y, 0)
	apply(t.matrix)
	t.matrix.Translate(-p.X, -p.Y, 0)
	return t
}

// Translate translates the state by (x, y, z) around the default
// pivot and returns the state.
func (t *Mat3D) Translate(x, y, z float32) *Mat3D {
	return t.around(nil, func(m Matrix4) { m.Translate(x, y, z) })
}

// Shift translates the state by the given 2D offset around origin
// (default pivot when omitted) and returns the state.
func (t *Mat3D) Shift(offset Vector2, origin ...Vector2) *Mat3D {
	return t.around(origin, func(m Matrix4) { m.Translate(offset.X, offset.Y, 0) })
}

// TranslateX translates the state along the X axis by offset around
// origin (default pivot when omitted) and returns the state.
func (t *Mat3D) TranslateX(offset float32, origin ...Vector2) *Mat3D {
	return t.around(origin, func(m Matrix4) { m.Translate(offset, 0, 0) })
}

// TranslateY translates the state along the Y axis by offset around
// origin (default pivot when omitted) and returns the state.
func (t *Mat3D) TranslateY(offset float32, origin ...Vector2) *Mat3D {
	return t.around(origin, func(m Matrix4) { m.Translate(0, offset, 0) })
}

// TranslateZ translates the state along the Z axis by offset around
// origin (default pivot when omitted) and returns the state.
func (t *Mat3D) TranslateZ(offset float32, origin ...Vector2) *Mat3D {
	return t.around(origin, func(m Matrix4) { m.Translate(0, 0, offset) })
}

// Upward translates the state up the screen (negative Y) by offset
// and returns the state.
func (t *Mat3D) Upward(offset float32, origin ...Vector2) *Mat3D {
	return t.TranslateY(-offset, origin...)
}

// Downward translates the state down the screen (positive Y) by
// offset and returns the state.
func (t *Mat3D) Downward(offset float32, origin ...Vector2) *Mat3D {
	return t.TranslateY(offset, origin...)
}

// Forward translates the state forward along the layout direction by
// offset and returns the state: +X under [LeftToRight], -X under
// [RightToLeft].
func (t *Mat3D) Forward(offset float32, dir Direction, origin ...Vector2) *Mat3D {
	if dir == RightToLeft {
		offset = -offset
	}
	return t.TranslateX(offset, origin...)
}

// Backward translates the state against the layout direction by
// offset and returns the state; it is the inverse of [Mat3D.Forward].
func (t *Mat3D) Backward(offset float32, dir Direction, origin ...Vector2) *Mat3D {
	return t.Forward(-offset, dir, origin...)
}

// Inward translates the state into the screen (negative Z) by offset
// and returns the state.
func (t *Mat3D) Inward(offset float32, origin ...Vector2) *Mat3D {
	return t.TranslateZ(-offset, origin...)
}

// Outward translates the state out of the screen (positive Z) by
// offset and returns the state.
func (t *Mat3D) Outward(offset float32, origin ...Vector2) *Mat3D {
	return t.TranslateZ(offset, origin...)
}

// Scale scales the state by (x, y, z) around the default pivot and
// returns the state.
func (t *Mat3D) Scale(x, y, z float32) *Mat3D {
	return t.around(nil, func(m Matrix4) { m.Scale(x, y, z) })
}

// ScaleX scales the state along the X axis by ratio around origin
// (default pivot when omitted) and returns the state.
func (t *Mat3D) ScaleX(ratio float32, origin ...Vector2) *Mat3D {
	return t.around(origin, func(m Matrix4) { m.Scale(ratio, 1, 1) })
}

// ScaleY scales the state along the Y axis by ratio around origin
// (default pivot when omitted) and returns the state.
func (t *Mat3D) ScaleY(ratio float32, origin ...Vector2) *Mat3D {
	return t.around(origin, func(m Matrix4) { m.Scale(1, ratio, 1) })
}

// ScaleZ scales the state along the Z axis by ratio around origin
// (default pivot when omitted) and returns the state.
func (t *Mat3D) ScaleZ(ratio float32, origin ...Vector2) *Mat3D {
	return t.around(origin, func(m Matrix4) { m.Scale(1, 1, ratio) })
}

// TiltX rotates the state by degrees around the X axis, anchored at
// origin (default pivot when omitted), and returns the state.
func (t *Mat3D) TiltX(degrees float32, origin ...Vector2) *Mat3D {
	return t.around(origin, func(m Matrix4) { m.RotateX(DegToRad(degrees)) })
}

// TiltY rotates the state by degrees around the Y axis, anchored at
// origin (default pivot when omitted), and returns the state.
func (t *Mat3D) TiltY(degrees float32, origin ...Vector2) *Mat3D {
	return t.around(origin, func(m Matrix4) { m.RotateY(DegToRad(degrees)) })
}

// TiltZ rotates the state by degrees around the Z axis, anchored at
// origin (default pivot when omitted), and returns the state. It is
// the same operation as [Mat3D.Rotate].
func (t *Mat3D) TiltZ(degrees float32, origin ...Vector2) *Mat3D {
	return t.around(origin, func(m Matrix4) { m.RotateZ(DegToRad(degrees)) })
}

// Tilt rotates the state by the given degrees around the X, Y, and Z
// axes in that order, each anchored at its own default pivot, and
// returns the state.
func (t *Mat3D) Tilt(x, y, z float32) *Mat3D {
	return t.TiltX(x).TiltY(y).TiltZ(z)
}

// Rotate rotates the state in 2D by degrees (around the Z axis),
// anchored at origin (default pivot when omitted), and returns the
// state.
func (t *Mat3D) Rotate(degrees float32, origin ...Vector2) *Mat3D {
	return t.TiltZ(degrees, origin...)
}

// FlipX flips the state around the X axis (a 180 degree X tilt) and
// returns the state.
func (t *Mat3D) FlipX(origin ...Vector2) *Mat3D {
	return t.TiltX(180, origin...)
}

// FlipY flips the state around the Y axis (a 180 degree Y tilt) and
// returns the state.
func (t *Mat3D) FlipY(origin ...Vector2) *Mat3D {
	return t.TiltY(180, origin...)
}

// FlipZ flips the state around the Z axis (a 180 degree Z tilt) and
// returns the state.
func (t *Mat3D) FlipZ(origin ...Vector2) *Mat3D {
	return t.TiltZ(180, origin...)
}

// growRect shifts the bounds by the vector from this state's center
// to the other state's center, then expands them to include the other
// state's bounds. This keeps the bounding rectangle meaningful after
// a combining operation.
func (t *Mat3D) growRect(other *Mat3D) {
	delta := other.Center().Sub(t.Center())
	*t.rect = t.rect.Translate(delta).Union(other.Rect())
}

// Multiply right-multiplies the state's matrix by the other state's
// matrix and grows the bounds to cover the other state's bounds,
// returning the state.
func (t *Mat3D) Multiply(other *Mat3D) *Mat3D {
	t.growRect(other)
	t.matrix.SetMul(other.matrix)
	return t
}

// Add adds the other state's matrix to this one element-wise, with
// the same bounds growth as [Mat3D.Multiply], returning the state.
func (t *Mat3D) Add(other *Mat3D) *Mat3D {
	t.growRect(other)
	t.matrix.SetAdd(other.matrix)
	return t
}

// Subtract subtracts the other state's matrix from this one
// element-wise, with the same bounds growth as [Mat3D.Multiply],
// returning the state.
func (t *Mat3D) Subtract(other *Mat3D) *Mat3D {
	t.growRect(other)
	t.matrix.SetSub(other.matrix)
	return t
}

// Negate transposes the state's matrix in place and returns the
// state. Despite the name, this has always been a transpose rather
// than an element-wise negation, and callers rely on that.
func (t *Mat3D) Negate() *Mat3D {
	t.matrix.SetTranspose()
	return t
}
