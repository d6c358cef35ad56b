// Copyright 2026 The Mat3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat3d

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"
)

func TestBox2(t *testing.T) {
	b := B2(10, 20, 110, 70)
	assert.Equal(t, float32(10), b.Left())
	assert.Equal(t, float32(20), b.Top())
	assert.Equal(t, float32(110), b.Right())
	assert.Equal(t, float32(70), b.Bottom())
	assert.Equal(t, Vec2(60, 45), b.Center())
	assert.Equal(t, Vec2(100, 50), b.Size())
	assert.False(t, b.IsEmpty())

	assert.True(t, Box2{}.IsEmpty())
	assert.Equal(t, Vec2(0, 0), Box2{}.Center())

	assert.Equal(t, B2(0, 0, 4, 4), B2(4, 4, 0, 0).Canon())
}

func TestBox2Contains(t *testing.T) {
	b := B2(0, 0, 100, 100)
	assert.True(t, b.ContainsPoint(Vec2(50, 50)))
	assert.True(t, b.ContainsPoint(Vec2(0, 100)))
	assert.False(t, b.ContainsPoint(Vec2(-1, 50)))

	assert.True(t, b.ContainsBox(B2(10, 10, 90, 90)))
	assert.False(t, b.ContainsBox(B2(10, 10, 110, 90)))
}

func TestBox2UnionExpand(t *testing.T) {
	a := B2(0, 0, 10, 10)
	b := B2(5, 5, 20, 15)
	assert.Equal(t, B2(0, 0, 20, 15), a.Union(b))
	assert.Equal(t, B2(0, 0, 20, 15), b.Union(a))

	a.ExpandByBox(b)
	assert.Equal(t, B2(0, 0, 20, 15), a)

	c := B2(0, 0, 10, 10)
	c.ExpandByPoint(Vec2(-5, 3))
	assert.Equal(t, B2(-5, 0, 10, 10), c)
}

func TestBox2Translate(t *testing.T) {
	b := B2(0, 0, 10, 10).Translate(Vec2(5, -5))
	assert.Equal(t, B2(5, -5, 15, 5), b)
}

func TestBox2Interop(t *testing.T) {
	r := image.Rect(2, 3, 12, 13)
	b := B2FromRect(r)
	assert.Equal(t, B2(2, 3, 12, 13), b)
	assert.Equal(t, r, b.ToRect())

	fr := fixed.R(1, 2, 5, 6)
	fb := B2FromFixed(fr)
	assert.Equal(t, B2(1, 2, 5, 6), fb)
	assert.Equal(t, fr, fb.ToFixed())
}
