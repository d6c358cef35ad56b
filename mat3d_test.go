// Copyright 2026 The Mat3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat3d

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOwningConstruction(t *testing.T) {
	orig := Identity4()
	st := FromMatrix(orig, B2(0, 0, 10, 10))

	st.TranslateX(5)
	assert.True(t, orig.IsIdentity(), "owning state must not write through to the source matrix")
	assert.Equal(t, float32(5), st.Matrix()[12])

	orig[12] = 99
	assert.Equal(t, float32(5), st.Matrix()[12], "source matrix writes must not reach the owning state")

	assert.True(t, FromMatrix(nil, Box2{}).Matrix().IsIdentity())
}

func TestAliasingConstruction(t *testing.T) {
	m := Identity4()
	st := ShareMatrix(m, B2(0, 0, 10, 10))

	st.TranslateX(5)
	assert.Equal(t, float32(5), m[12], "aliasing state mutations must be visible through the source matrix")

	m.SetIdentity()
	assert.True(t, st.Matrix().IsIdentity(), "source matrix writes must be visible through the aliasing state")
}

func TestCopyConstruction(t *testing.T) {
	a := FromMatrix(nil, B2(0, 0, 10, 10))
	b := From(a)

	b.TranslateX(3)
	assert.Equal(t, float32(3), a.Matrix()[12], "copy construction must share matrix storage")

	b.SetRect(B2(0, 0, 20, 20))
	assert.Equal(t, B2(0, 0, 20, 20), a.Rect(), "copy construction must share bounds storage")
	assert.Equal(t, Vec2(10, 10), a.Center())
}

func TestCombine(t *testing.T) {
	id := Combine()
	assert.True(t, id.Matrix().IsIdentity())
	assert.Equal(t, Box2{}, id.Rect())

	a := New().TranslateX(2)
	b := New().TranslateY(3)
	c := Combine(a, b)
	assert.Equal(t, float32(2), c.Matrix()[12])
	assert.Equal(t, float32(3), c.Matrix()[13])

	// Combine owns its matrix: the parts stay untouched.
	assert.Equal(t, float32(0), a.Matrix()[13])
}

func TestMutatingAccessors(t *testing.T) {
	st := New()
	st.Matrix()[12] = 7
	assert.Equal(t, float32(7), st.Matrix()[12], "Matrix must be a live read/write view")

	st.SetRect(B2(0, 0, 4, 2))
	assert.Equal(t, Vec2(2, 1), st.Center())
	st.SetRect(B2(0, 0, 8, 2))
	assert.Equal(t, Vec2(4, 1), st.Center(), "center must be recomputed from the current rect")
}

func TestStringParseRoundTrip(t *testing.T) {
	st := FromMatrix(nil, B2(1.5, -2.25, 100, 50))
	st.Rotate(33).ScaleX(1.7).TranslateZ(4)

	got := Parse(st.String())
	assert.Equal(t, st.Matrix(), got.Matrix())
	assert.Equal(t, st.Rect(), got.Rect())

	// An aliasing state serializes the same way.
	al := ShareMatrix(st.Matrix(), st.Rect())
	got = Parse(al.String())
	assert.Equal(t, st.Matrix(), got.Matrix())
}

func TestParseIdentity(t *testing.T) {
	st := Parse("Mat3D[1,0,0,0,0,1,0,0,0,0,1,0,0,0,0,1](0, 0, 100, 100)")
	assert.True(t, st.Matrix().IsIdentity())
	assert.Equal(t, B2(0, 0, 100, 100), st.Rect())
}

func TestParseFallbacks(t *testing.T) {
	// Unrecognizable input: fully default state, silently.
	st := Parse("garbage")
	assert.True(t, st.Matrix().IsIdentity())
	assert.Equal(t, Box2{}, st.Rect())

	// Bad bounds default to 0 individually.
	st = Parse("Mat3D[1,0,0,0,0,1,0,0,0,0,1,0,0,0,0,1](a, 5, , 7)")
	assert.True(t, st.Matrix().IsIdentity())
	assert.Equal(t, B2(0, 5, 0, 7), st.Rect())

	// A matrix array that does not decode falls back to identity,
	// keeping the parsed bounds.
	st = Parse("Mat3D[nope](1, 2, 3, 4)")
	assert.True(t, st.Matrix().IsIdentity())
	assert.Equal(t, B2(1, 2, 3, 4), st.Rect())

	// Wrong array length is treated the same as a bad array.
	st = Parse("Mat3D[1,2,3](1, 2, 3, 4)")
	assert.True(t, st.Matrix().IsIdentity())
	assert.Equal(t, B2(1, 2, 3, 4), st.Rect())

	// A missing array keeps the parsed bounds too.
	st = Parse("Mat3D(1, 2, 3, 4)")
	assert.True(t, st.Matrix().IsIdentity())
	assert.Equal(t, B2(1, 2, 3, 4), st.Rect())
}

func TestParseIsOwning(t *testing.T) {
	a := Parse("Mat3D[1,0,0,0,0,1,0,0,0,0,1,0,0,0,0,1](0, 0, 10, 10)")
	b := Parse("Mat3D[1,0,0,0,0,1,0,0,0,0,1,0,0,0,0,1](0, 0, 10, 10)")
	a.TranslateX(5)
	assert.True(t, b.Matrix().IsIdentity())
}
