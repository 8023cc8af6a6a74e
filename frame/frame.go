// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frame re-expresses positions and orientations given relative
// to one oriented coordinate frame in terms of another.
//
// A [Frame] is a snapshot of an entity's placement: an origin and a
// rotation, whose images of the standard X, Y and Z axes are the frame's
// forward, right and up basis vectors. Frames are plain values; nothing
// here holds on to the entity they were taken from.
package frame

import (
	"fmt"

	"cogentcore.org/framespace/base/errors"
	"cogentcore.org/framespace/math32"
)

// ErrInvalidBasis is returned by [CheckBasis] for basis vectors that do
// not form a right-handed orthonormal basis.
var ErrInvalidBasis = errors.New("frame: basis is not right-handed orthonormal")

// Frame is an oriented coordinate system: an origin and a unit
// quaternion rotation. The rotation must be unit length; none of the
// functions in this package validate or renormalize it.
type Frame struct {

	// Origin is the world position of the frame.
	Origin math32.Vector3

	// Rotation takes the standard axes onto the frame's
	// forward (X), right (Y) and up (Z) basis vectors.
	Rotation math32.Quat
}

// New returns a new [Frame] at the given origin with the
// given rotation.
func New(origin math32.Vector3, rot Rotator) Frame {
	return Frame{Origin: origin, Rotation: rot.Quat()}
}

// Identity returns the world frame: at the origin, with
// forward +X, right +Y and up +Z.
func Identity() Frame {
	return Frame{Rotation: math32.QuatIdentity()}
}

// FromBasis returns a new [Frame] at the given origin with the given
// basis vectors. The basis must be right-handed orthonormal; use
// [CheckBasis] first if that is not already known.
func FromBasis(origin, forward, right, up math32.Vector3) Frame {
	return Frame{Origin: origin, Rotation: math32.NewQuatBasis(forward, right, up)}
}

// CheckBasis returns an error wrapping [ErrInvalidBasis] unless the
// given vectors are unit length, mutually orthogonal and right-handed
// (forward cross right == up), all within the given tolerance.
func CheckBasis(forward, right, up math32.Vector3, tol float32) error {
	for _, ax := range []struct {
		name string
		v    math32.Vector3
	}{{"forward", forward}, {"right", right}, {"up", up}} {
		if l := ax.v.Length(); math32.Abs(l-1) > tol {
			return fmt.Errorf("%w: %s %v has length %g", ErrInvalidBasis, ax.name, ax.v, l)
		}
	}
	if d := forward.Dot(right); math32.Abs(d) > tol {
		return fmt.Errorf("%w: forward and right are not orthogonal (dot %g)", ErrInvalidBasis, d)
	}
	if d := forward.Dot(up); math32.Abs(d) > tol {
		return fmt.Errorf("%w: forward and up are not orthogonal (dot %g)", ErrInvalidBasis, d)
	}
	if d := right.Dot(up); math32.Abs(d) > tol {
		return fmt.Errorf("%w: right and up are not orthogonal (dot %g)", ErrInvalidBasis, d)
	}
	if forward.Cross(right).Dot(up) < 0 {
		return fmt.Errorf("%w: basis is left-handed", ErrInvalidBasis)
	}
	return nil
}

// Forward returns the frame's forward unit vector (its local +X axis).
func (f Frame) Forward() math32.Vector3 {
	return math32.Vec3(1, 0, 0).MulQuat(f.Rotation)
}

// Right returns the frame's right unit vector (its local +Y axis).
func (f Frame) Right() math32.Vector3 {
	return math32.Vec3(0, 1, 0).MulQuat(f.Rotation)
}

// Up returns the frame's up unit vector (its local +Z axis).
func (f Frame) Up() math32.Vector3 {
	return math32.Vec3(0, 0, 1).MulQuat(f.Rotation)
}

// Rotator returns the frame's rotation as Euler angles.
func (f Frame) Rotator() Rotator {
	return RotatorFromQuat(f.Rotation)
}

// ToLocal returns the coordinates of the given world point along the
// frame's forward, right and up axes, measured from its origin.
func (f Frame) ToLocal(world math32.Vector3) math32.Vector3 {
	d := world.Sub(f.Origin)
	return math32.Vec3(d.Dot(f.Forward()), d.Dot(f.Right()), d.Dot(f.Up()))
}

// ToWorld returns the world point at the given local coordinates
// along the frame's forward, right and up axes.
func (f Frame) ToWorld(local math32.Vector3) math32.Vector3 {
	w := f.Origin
	w.SetAdd(f.Forward().MulScalar(local.X))
	w.SetAdd(f.Right().MulScalar(local.Y))
	w.SetAdd(f.Up().MulScalar(local.Z))
	return w
}

// String returns the frame origin and rotation in Euler angles.
func (f Frame) String() string {
	return fmt.Sprintf("origin %v rotation %v", f.Origin, f.Rotator())
}
