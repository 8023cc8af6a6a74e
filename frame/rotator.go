// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"fmt"

	"cogentcore.org/framespace/math32"
)

// gimbalLimit is the |sin(pitch)| above which pitch is taken to be
// exactly +/-90 degrees when converting from a quaternion. This is
// within about 0.057 degrees of the pole, so snapping moves the axes
// by at most about 1e-3.
const gimbalLimit = 0.9999995

// Rotator is an orientation in Euler angles, in degrees.
//
// Yaw is about +Z, pitch about +Y and roll about +X, applied in
// that order on the rotating axes: the equivalent quaternion is
// yaw * pitch * roll.
type Rotator struct {

	// Pitch is the rotation about the Y axis, in degrees.
	Pitch float32 `json:"pitch" toml:"pitch" yaml:"pitch"`

	// Yaw is the rotation about the Z axis, in degrees.
	Yaw float32 `json:"yaw" toml:"yaw" yaml:"yaw"`

	// Roll is the rotation about the X axis, in degrees.
	Roll float32 `json:"roll" toml:"roll" yaml:"roll"`
}

// Rot returns a new [Rotator] from the given pitch, yaw and roll in degrees.
func Rot(pitch, yaw, roll float32) Rotator {
	return Rotator{Pitch: pitch, Yaw: yaw, Roll: roll}
}

// Quat returns the unit quaternion for this rotation.
func (r Rotator) Quat() math32.Quat {
	yaw := math32.NewQuatAxisAngle(math32.Vec3(0, 0, 1), math32.DegToRad(r.Yaw))
	pitch := math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), math32.DegToRad(r.Pitch))
	roll := math32.NewQuatAxisAngle(math32.Vec3(1, 0, 0), math32.DegToRad(r.Roll))
	return yaw.Mul(pitch).Mul(roll)
}

// RotatorFromQuat returns the canonical Euler angles for the given
// quaternion: pitch in [-90, 90], yaw and roll in (-180, 180].
// At pitch +/-90 (gimbal lock) roll is 0 and yaw holds the whole
// rotation about Z. The quaternion is normalized first.
func RotatorFromQuat(q math32.Quat) Rotator {
	q.Normalize()
	sinp := 2 * (q.W*q.Y - q.Z*q.X)
	if math32.Abs(sinp) >= gimbalLimit {
		return Rotator{
			Pitch: math32.Copysign(90, sinp),
			Yaw:   math32.WrapDegrees(math32.RadToDeg(2 * math32.Atan2(q.Z, q.W))),
		}
	}
	roll := math32.Atan2(2*(q.W*q.X+q.Y*q.Z), 1-2*(q.X*q.X+q.Y*q.Y))
	yaw := math32.Atan2(2*(q.W*q.Z+q.X*q.Y), 1-2*(q.Y*q.Y+q.Z*q.Z))
	return Rotator{
		Pitch: math32.RadToDeg(math32.Asin(sinp)),
		Yaw:   math32.WrapDegrees(math32.RadToDeg(yaw)),
		Roll:  math32.WrapDegrees(math32.RadToDeg(roll)),
	}
}

// Canonical returns the canonical Euler angles for the same rotation,
// as returned by [RotatorFromQuat].
func (r Rotator) Canonical() Rotator {
	return RotatorFromQuat(r.Quat())
}

// IsZero returns whether all angles are exactly zero.
func (r Rotator) IsZero() bool {
	return r.Pitch == 0 && r.Yaw == 0 && r.Roll == 0
}

// IsEquivalent returns whether r and o describe the same rotation,
// regardless of which Euler angles were used to express them.
// tol bounds 1 - |cos(theta/2)| for the angle theta between them.
func (r Rotator) IsEquivalent(o Rotator, tol float32) bool {
	return r.Quat().IsSameRotation(o.Quat(), tol)
}

// String returns the angles as (pitch, yaw, roll).
func (r Rotator) String() string {
	return fmt.Sprintf("(P=%g, Y=%g, R=%g)", r.Pitch, r.Yaw, r.Roll)
}
