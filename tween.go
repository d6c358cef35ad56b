// Copyright 2026 The Mat3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat3d

import "errors"

// ErrUnsetEndpoint is returned by [Tween.Interpolate] when Begin or
// End has not been set.
var ErrUnsetEndpoint = errors.New("mat3d: tween endpoint is unset")

// Tween linearly interpolates between two transform states. Both
// Begin and End must be set before the first Interpolate call; an
// unset endpoint is a configuration error surfaced to the caller
// rather than silently defaulted, since substituting a matrix would
// produce a misleading blend.
type Tween struct {
	Begin *Mat3D
	End   *Mat3D
}

// NewTween returns a new [Tween] between the given states.
func NewTween(begin, end *Mat3D) *Tween {
	return &Tween{Begin: begin, End: end}
}

// Interpolate returns a new owning state whose matrix blends Begin
// and End at the given fraction: 0 yields exactly Begin's matrix, 1
// exactly End's, and values outside [0, 1] extrapolate linearly. Each
// of the 16 matrix entries is interpolated independently. The
// rectangle is not interpolated: the result has empty bounds at the
// origin.
func (tw *Tween) Interpolate(fraction float32) (*Mat3D, error) {
	if tw.Begin == nil || tw.End == nil {
		return nil, ErrUnsetEndpoint
	}
	res := New()
	begin, end := tw.Begin.matrix, tw.End.matrix
	for i := range res.matrix {
		res.matrix[i] = Lerp(begin[i], end[i], fraction)
	}
	return res, nil
}
