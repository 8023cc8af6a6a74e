// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"fmt"

	"cogentcore.org/framespace/base/errors"
	"cogentcore.org/framespace/math32"
)

// ErrInvalidFrame means that a source or target frame was unavailable.
var ErrInvalidFrame = errors.New("frame: reference frame unavailable")

// ConvertPoint returns the point that sits relative to target the way
// the given point sits relative to source: the point's offset from the
// source origin is measured along the source forward, right and up axes,
// and the same amounts are laid out along the target axes from the
// target origin.
//
// A nil source or target yields the zero vector. Use [ConvertPointChecked]
// to tell that apart from a conversion that really lands on the origin.
func ConvertPoint(point math32.Vector3, source, target *Frame) math32.Vector3 {
	if source == nil || target == nil {
		return math32.Vector3{}
	}
	return target.ToWorld(source.ToLocal(point))
}

// ConvertRotation returns the orientation that relates to target the way
// the given orientation relates to source: source's own rotation is
// removed, leaving the rotation as seen from inside source, and target's
// rotation is applied on top of that.
//
// A nil source or target yields the zero (identity) [Rotator].
// The result is canonical; see [RotatorFromQuat].
func ConvertRotation(rot Rotator, source, target *Frame) Rotator {
	if source == nil || target == nil {
		return Rotator{}
	}
	local := source.Rotation.Inverse().Mul(rot.Quat())
	return RotatorFromQuat(target.Rotation.Mul(local))
}

// ConvertPointChecked is [ConvertPoint], returning an error wrapping
// [ErrInvalidFrame] if either frame is nil.
func ConvertPointChecked(point math32.Vector3, source, target *Frame) (math32.Vector3, error) {
	if err := checkFrames(source, target); err != nil {
		return math32.Vector3{}, err
	}
	return ConvertPoint(point, source, target), nil
}

// ConvertRotationChecked is [ConvertRotation], returning an error wrapping
// [ErrInvalidFrame] if either frame is nil.
func ConvertRotationChecked(rot Rotator, source, target *Frame) (Rotator, error) {
	if err := checkFrames(source, target); err != nil {
		return Rotator{}, err
	}
	return ConvertRotation(rot, source, target), nil
}

func checkFrames(source, target *Frame) error {
	switch {
	case source == nil && target == nil:
		return fmt.Errorf("%w: source and target", ErrInvalidFrame)
	case source == nil:
		return fmt.Errorf("%w: source", ErrInvalidFrame)
	case target == nil:
		return fmt.Errorf("%w: target", ErrInvalidFrame)
	}
	return nil
}
