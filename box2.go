// Copyright 2026 The Mat3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat3d

import (
	"image"

	"golang.org/x/image/math/fixed"
)

// Box2 represents a 2D bounding box defined by two points: the point
// with minimum coordinates and the point with maximum coordinates.
// The zero Box2 is the empty box at the origin, which is the default
// bounds of a transform state.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns a new [Box2] from the given minimum and maximum x and y
// coordinates (left, top, right, bottom).
func B2(x0, y0, x1, y1 float32) Box2 {
	return Box2{Vec2(x0, y0), Vec2(x1, y1)}
}

// B2FromRect returns a new [Box2] from the given [image.Rectangle].
func B2FromRect(rect image.Rectangle) Box2 {
	b := Box2{}
	b.SetFromRect(rect)
	return b
}

// B2FromFixed returns a new [Box2] from the given [fixed.Rectangle26_6].
func B2FromFixed(rect fixed.Rectangle26_6) Box2 {
	b := Box2{}
	b.Min = Vector2FromFixed(rect.Min)
	b.Max = Vector2FromFixed(rect.Max)
	return b
}

// Left returns the minimum x coordinate of the box.
func (b Box2) Left() float32 { return b.Min.X }

// Top returns the minimum y coordinate of the box.
func (b Box2) Top() float32 { return b.Min.Y }

// Right returns the maximum x coordinate of the box.
func (b Box2) Right() float32 { return b.Max.X }

// Bottom returns the maximum y coordinate of the box.
func (b Box2) Bottom() float32 { return b.Max.Y }

// Set sets this box's minimum and maximum coordinates.
func (b *Box2) Set(min, max Vector2) {
	b.Min = min
	b.Max = max
}

// SetFromRect sets this box from an [image.Rectangle].
func (b *Box2) SetFromRect(rect image.Rectangle) {
	b.Min = Vector2FromPoint(rect.Min)
	b.Max = Vector2FromPoint(rect.Max)
}

// ToRect returns the [image.Rectangle] version of this box, with
// truncation of the coordinates.
func (b Box2) ToRect() image.Rectangle {
	return image.Rectangle{Min: b.Min.ToPoint(), Max: b.Max.ToPoint()}
}

// ToFixed returns the [fixed.Rectangle26_6] version of this box.
func (b Box2) ToFixed() fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{Min: b.Min.ToFixed(), Max: b.Max.ToFixed()}
}

// IsEmpty returns whether this box encloses no area (max <= min on
// any coordinate).
func (b Box2) IsEmpty() bool {
	return b.Max.X <= b.Min.X || b.Max.Y <= b.Min.Y
}

// Canon returns the canonical version of the box, with the minimum
// and maximum coordinates swapped if necessary so that it is
// well-formed.
func (b Box2) Canon() Box2 {
	if b.Max.X < b.Min.X {
		b.Min.X, b.Max.X = b.Max.X, b.Min.X
	}
	if b.Max.Y < b.Min.Y {
		b.Min.Y, b.Max.Y = b.Max.Y, b.Min.Y
	}
	return b
}

// ExpandByPoint expands this box as needed to include the given point.
func (b *Box2) ExpandByPoint(point Vector2) {
	b.Min.SetMin(point)
	b.Max.SetMax(point)
}

// ExpandByBox expands this box as needed to include the given box.
func (b *Box2) ExpandByBox(box Box2) {
	b.ExpandByPoint(box.Min)
	b.ExpandByPoint(box.Max)
}

// Center returns the center point of this box.
func (b Box2) Center() Vector2 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// Size returns the size of this box: the vector from its minimum
// point to its maximum point.
func (b Box2) Size() Vector2 {
	return b.Max.Sub(b.Min)
}

// ContainsPoint returns whether this box contains the given point.
func (b Box2) ContainsPoint(point Vector2) bool {
	return point.X >= b.Min.X && point.X <= b.Max.X &&
		point.Y >= b.Min.Y && point.Y <= b.Max.Y
}

// ContainsBox returns whether this box entirely contains the other
// given box.
func (b Box2) ContainsBox(box Box2) bool {
	return b.Min.X <= box.Min.X && box.Max.X <= b.Max.X &&
		b.Min.Y <= box.Min.Y && box.Max.Y <= b.Max.Y
}

// Union returns the union of this box with the other given box: the
// smallest box containing both.
func (b Box2) Union(other Box2) Box2 {
	other.Min.SetMin(b.Min)
	other.Max.SetMax(b.Max)
	return other
}

// Translate returns this box translated by the given offset.
func (b Box2) Translate(offset Vector2) Box2 {
	return Box2{Min: b.Min.Add(offset), Max: b.Max.Add(offset)}
}
