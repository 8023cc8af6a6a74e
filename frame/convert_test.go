// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"testing"

	"cogentcore.org/framespace/base/errors"
	"cogentcore.org/framespace/base/tolassert"
	"cogentcore.org/framespace/math32"
	"github.com/stretchr/testify/assert"
)

func TestConvertPointSameFrame(t *testing.T) {
	points := []math32.Vector3{{}, {X: 1, Y: 0, Z: 0}, {X: 3, Y: -4, Z: 5}, {X: -7.5, Y: 2.25, Z: 9}}
	for _, f := range randFrames(50) {
		for _, p := range points {
			assertVector3(t, 1e-4, p, ConvertPoint(p, &f, &f), "frame %v", f)
		}
	}

	w := Identity()
	for _, p := range points {
		assert.Equal(t, p, ConvertPoint(p, &w, &w))
	}
}

func TestConvertPointLinear(t *testing.T) {
	frames := randFrames(20)
	p1 := math32.Vec3(1, 2, 3)
	p2 := math32.Vec3(-4, 0.5, 6)
	for i := 0; i+1 < len(frames); i += 2 {
		f, g := &frames[i], &frames[i+1]
		lhs := ConvertPoint(p1.Add(p2).Sub(f.Origin), f, g)
		rhs := ConvertPoint(p1, f, g).Add(ConvertPoint(p2, f, g)).Sub(g.Origin)
		assertVector3(t, 1e-4, rhs, lhs)
	}
}

func TestConvertPointNil(t *testing.T) {
	f := New(math32.Vec3(1, 2, 3), Rot(10, 20, 30))
	p := math32.Vec3(5, 6, 7)
	assert.Equal(t, math32.Vector3{}, ConvertPoint(p, nil, &f))
	assert.Equal(t, math32.Vector3{}, ConvertPoint(p, &f, nil))
	assert.Equal(t, math32.Vector3{}, ConvertPoint(p, nil, nil))

	_, err := ConvertPointChecked(p, nil, &f)
	assert.True(t, errors.Is(err, ErrInvalidFrame))
	assert.ErrorContains(t, err, "source")
	_, err = ConvertPointChecked(p, &f, nil)
	assert.True(t, errors.Is(err, ErrInvalidFrame))
	assert.ErrorContains(t, err, "target")
	_, err = ConvertPointChecked(p, nil, nil)
	assert.ErrorContains(t, err, "source and target")

	got, err := ConvertPointChecked(p, &f, &f)
	assert.NoError(t, err)
	assertVector3(t, 1e-4, p, got)
}

func TestConvertRotationSameFrame(t *testing.T) {
	rots := []Rotator{{}, Rot(10, 20, 30), Rot(-80, 175, -120), Rot(90, 45, 0), Rot(135, -30, 60)}
	for _, f := range randFrames(50) {
		for _, r := range rots {
			got := ConvertRotation(r, &f, &f)
			assert.True(t, got.IsEquivalent(r, 1e-5), "frame %v: %v -> %v", f, r, got)
		}
	}
}

func TestConvertRotationNil(t *testing.T) {
	f := New(math32.Vec3(1, 2, 3), Rot(10, 20, 30))
	r := Rot(5, 6, 7)
	assert.Equal(t, Rotator{}, ConvertRotation(r, nil, &f))
	assert.Equal(t, Rotator{}, ConvertRotation(r, &f, nil))
	assert.Equal(t, Rotator{}, ConvertRotation(r, nil, nil))

	_, err := ConvertRotationChecked(r, &f, nil)
	assert.True(t, errors.Is(err, ErrInvalidFrame))

	got, err := ConvertRotationChecked(r, &f, &f)
	assert.NoError(t, err)
	assert.True(t, got.IsEquivalent(r, 1e-5))
}

// source at the origin with the standard basis; target at (10, 0, 0)
// turned 90 degrees about Z, so its forward is +Y and its right is -X.
func scenarioFrames() (source, target Frame) {
	return Identity(), New(math32.Vec3(10, 0, 0), Rot(0, 90, 0))
}

func TestScenarioPoint(t *testing.T) {
	src, tgt := scenarioFrames()
	assertVector3(t, tol, math32.Vec3(10, 1, 0), ConvertPoint(math32.Vec3(1, 0, 0), &src, &tgt))
	assertVector3(t, tol, math32.Vec3(8, 0, 0), ConvertPoint(math32.Vec3(0, 2, 0), &src, &tgt))
	assertVector3(t, tol, math32.Vec3(10, 0, 3), ConvertPoint(math32.Vec3(0, 0, 3), &src, &tgt))

	// and back again
	assertVector3(t, tol, math32.Vec3(1, 0, 0), ConvertPoint(math32.Vec3(10, 1, 0), &tgt, &src))
}

func TestScenarioRotation(t *testing.T) {
	src, tgt := scenarioFrames()
	got := ConvertRotation(Rotator{}, &src, &tgt)
	tolassert.EqualTol(t, 0, got.Pitch, 1e-4)
	tolassert.EqualTol(t, 90, got.Yaw, 1e-4)
	tolassert.EqualTol(t, 0, got.Roll, 1e-4)
	assert.True(t, got.IsEquivalent(tgt.Rotator(), 1e-6))

	back := ConvertRotation(got, &tgt, &src)
	assert.True(t, back.IsEquivalent(Rotator{}, 1e-6))
}

func TestScenarioIdentityFrames(t *testing.T) {
	a, b := Identity(), Identity()
	for _, p := range []math32.Vector3{{X: 1, Y: 2, Z: 3}, {X: -5, Y: 0, Z: 8}} {
		assert.Equal(t, p, ConvertPoint(p, &a, &b))
	}
	for _, r := range []Rotator{Rot(10, 20, 30), Rot(-45, 170, -120)} {
		got := ConvertRotation(r, &a, &b)
		tolassert.EqualTol(t, r.Pitch, got.Pitch, 1e-3)
		tolassert.EqualTol(t, r.Yaw, got.Yaw, 1e-3)
		tolassert.EqualTol(t, r.Roll, got.Roll, 1e-3)
	}
}

func TestConvertRotationOrder(t *testing.T) {
	src, tgt := scenarioFrames()
	r := Rot(30, 0, 0)

	// the target rotation is applied on top of the local one
	got := ConvertRotation(r, &src, &tgt)
	tolassert.EqualTol(t, 30, got.Pitch, 1e-3)
	tolassert.EqualTol(t, 90, got.Yaw, 1e-3)
	tolassert.EqualTol(t, 0, got.Roll, 1e-3)

	reversed := RotatorFromQuat(r.Quat().Mul(tgt.Rotation))
	assert.False(t, got.IsEquivalent(reversed, 1e-4))

	// an orientation aligned with a rotated source is aligned with the target
	rs := New(math32.Vec3(3, 3, 3), Rot(20, -60, 10))
	aligned := ConvertRotation(rs.Rotator(), &rs, &tgt)
	assert.True(t, aligned.IsEquivalent(tgt.Rotator(), 1e-5))
	stripped := ConvertRotation(rs.Rotator(), &rs, &src)
	assert.True(t, stripped.IsEquivalent(Rotator{}, 1e-5))
}
