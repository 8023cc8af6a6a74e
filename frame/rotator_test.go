// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"math/rand/v2"
	"testing"

	"cogentcore.org/framespace/base/tolassert"
	"cogentcore.org/framespace/math32"
	"github.com/stretchr/testify/assert"
)

func TestRotatorQuat(t *testing.T) {
	assert.Equal(t, math32.QuatIdentity(), Rotator{}.Quat())

	tests := []struct {
		rot  Rotator
		axis math32.Vector3
		deg  float32
	}{
		{Rot(0, 90, 0), math32.Vec3(0, 0, 1), 90},
		{Rot(45, 0, 0), math32.Vec3(0, 1, 0), 45},
		{Rot(0, 0, -30), math32.Vec3(1, 0, 0), -30},
	}
	for _, tt := range tests {
		want := math32.NewQuatAxisAngle(tt.axis, math32.DegToRad(tt.deg))
		assert.True(t, tt.rot.Quat().IsSameRotation(want, 1e-6), "%v", tt.rot)
	}

	// yaw, then pitch, then roll on the rotating axes
	r := Rot(20, 30, 40)
	yaw := math32.NewQuatAxisAngle(math32.Vec3(0, 0, 1), math32.DegToRad(30))
	pitch := math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), math32.DegToRad(20))
	roll := math32.NewQuatAxisAngle(math32.Vec3(1, 0, 0), math32.DegToRad(40))
	assert.True(t, r.Quat().IsSameRotation(yaw.Mul(pitch).Mul(roll), 1e-6))
}

func TestRotatorRoundTrip(t *testing.T) {
	canon := []Rotator{{}, Rot(10, 20, 30), Rot(-45, 170, -120), Rot(0, -90, 0), Rot(89, 180, 180), Rot(-60, -179, 1)}
	for _, r := range canon {
		got := RotatorFromQuat(r.Quat())
		tolassert.EqualTol(t, r.Pitch, got.Pitch, 1e-3, "%v", r)
		assert.True(t, math32.Abs(math32.WrapDegrees(r.Yaw-got.Yaw)) < 1e-3, "%v -> %v", r, got)
		assert.True(t, math32.Abs(math32.WrapDegrees(r.Roll-got.Roll)) < 1e-3, "%v -> %v", r, got)
	}
}

func TestRotatorCanonical(t *testing.T) {
	// pitch beyond 90 flips yaw and roll
	r := Rot(180, 0, 0)
	c := r.Canonical()
	assert.True(t, c.IsEquivalent(r, 1e-6))
	tolassert.EqualTol(t, 0, c.Pitch, 1e-3)
	tolassert.EqualTol(t, 180, math32.Abs(c.Yaw), 1e-3)
	tolassert.EqualTol(t, 180, math32.Abs(c.Roll), 1e-3)

	// angles are wrapped
	c = Rot(0, 270, -190).Canonical()
	tolassert.EqualTol(t, -90, c.Yaw, 1e-3)
	tolassert.EqualTol(t, 170, c.Roll, 1e-3)

	rnd := rand.New(rand.NewPCG(3, 4))
	for range 100 {
		r := Rot(360*rnd.Float32()-180, 720*rnd.Float32()-360, 720*rnd.Float32()-360)
		c := r.Canonical()
		assert.True(t, c.IsEquivalent(r, 1e-5), "%v -> %v", r, c)
		assert.True(t, c.Pitch >= -90 && c.Pitch <= 90, "%v", c)
		assert.True(t, c.Yaw > -180.001 && c.Yaw <= 180.001, "%v", c)
		assert.True(t, c.Roll > -180.001 && c.Roll <= 180.001, "%v", c)
	}
}

func TestRotatorGimbalLock(t *testing.T) {
	c := Rot(90, 30, 0).Canonical()
	assert.Equal(t, float32(90), c.Pitch)
	assert.Equal(t, float32(0), c.Roll)
	tolassert.EqualTol(t, 30, c.Yaw, 1e-3)

	// at pitch 90 only yaw - roll is observable
	c = Rot(90, 30, 20).Canonical()
	assert.Equal(t, float32(90), c.Pitch)
	tolassert.EqualTol(t, 10, c.Yaw, 1e-3)
	assert.True(t, c.IsEquivalent(Rot(90, 30, 20), 1e-5))

	// at pitch -90 it is yaw + roll
	c = Rot(-90, 30, 20).Canonical()
	assert.Equal(t, float32(-90), c.Pitch)
	tolassert.EqualTol(t, 50, c.Yaw, 1e-3)
	assert.True(t, c.IsEquivalent(Rot(-90, 30, 20), 1e-5))
}

func TestRotatorGimbalBand(t *testing.T) {
	rnd := rand.New(rand.NewPCG(3, 7))
	angle := func() float32 { return 360*rnd.Float32() - 180 }
	sign := func() float32 {
		if rnd.IntN(2) == 0 {
			return -1
		}
		return 1
	}
	for range 1000 {
		// within 0.01 degrees of +/-90 pitch is snapped
		r := Rot(sign()*(90-0.01*rnd.Float32()), angle(), angle())
		c := r.Canonical()
		assert.Equal(t, float32(90), math32.Abs(c.Pitch), "%v -> %v", r, c)
		assert.Equal(t, float32(0), c.Roll, "%v -> %v", r, c)

		// snapping moves the axes by at most the width of the band
		r = Rot(sign()*(90-0.1*rnd.Float32()), angle(), angle())
		a, b := New(math32.Vector3{}, r), New(math32.Vector3{}, r.Canonical())
		for _, v := range [][2]math32.Vector3{{a.Forward(), b.Forward()}, {a.Right(), b.Right()}, {a.Up(), b.Up()}} {
			tolassert.EqualTol(t, v[0].X, v[1].X, 2.5e-3, "%v -> %v", r, r.Canonical())
			tolassert.EqualTol(t, v[0].Y, v[1].Y, 2.5e-3, "%v -> %v", r, r.Canonical())
			tolassert.EqualTol(t, v[0].Z, v[1].Z, 2.5e-3, "%v -> %v", r, r.Canonical())
		}
	}

	c := Rot(89.9, 30, 20).Canonical()
	assert.Less(t, c.Pitch, float32(90))
	assert.True(t, c.IsEquivalent(Rot(89.9, 30, 20), 1e-5))
}

func TestRotatorMisc(t *testing.T) {
	assert.True(t, Rotator{}.IsZero())
	assert.False(t, Rot(0, 0, 1).IsZero())
	assert.Equal(t, "(P=1, Y=2, R=3)", Rot(1, 2, 3).String())
	assert.True(t, Rot(0, 180, 0).IsEquivalent(Rot(0, -180, 0), 1e-6))
	assert.False(t, Rot(0, 10, 0).IsEquivalent(Rot(0, 20, 0), 1e-6))
}
