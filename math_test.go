// Copyright 2026 The Mat3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat3d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAngleConversion(t *testing.T) {
	assert.InDelta(t, Pi, DegToRad(180), float64(standardTol))
	assert.InDelta(t, Pi/2, DegToRad(90), float64(standardTol))
	assert.InDelta(t, 180, RadToDeg(Pi), float64(standardTol))
	assert.InDelta(t, 45, RadToDeg(DegToRad(45)), float64(standardTol))
}

func TestScalarHelpers(t *testing.T) {
	assert.Equal(t, float32(3), Abs(-3))
	assert.Equal(t, float32(3), Abs(3))

	assert.InDelta(t, 1, Sin(DegToRad(90)), float64(standardTol))
	assert.InDelta(t, -1, Cos(DegToRad(180)), float64(standardTol))

	assert.True(t, IsNaN(float32(math.NaN())))
	assert.False(t, IsNaN(0))

	assert.Equal(t, float32(2), Clamp(1, 2, 5))
	assert.Equal(t, float32(5), Clamp(9, 2, 5))
	assert.Equal(t, float32(3), Clamp(3, 2, 5))
}

func TestLerp(t *testing.T) {
	assert.Equal(t, float32(2), Lerp(2, 7, 0))
	assert.Equal(t, float32(7), Lerp(2, 7, 1))
	assert.InDelta(t, 4.5, Lerp(2, 7, 0.5), float64(standardTol))
	assert.InDelta(t, 12, Lerp(2, 7, 2), float64(standardTol))
}
