// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"cogentcore.org/framespace/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TolAssertEqualVector3(t *testing.T, tol float32, vt, va Vector3) {
	t.Helper()
	tolassert.EqualTol(t, vt.X, va.X, tol)
	tolassert.EqualTol(t, vt.Y, va.Y, tol)
	tolassert.EqualTol(t, vt.Z, va.Z, tol)
}

const StandardTol = float32(1.0e-6)

func TestVector3(t *testing.T) {
	assert.Equal(t, Vector3{5, 10, 15}, Vec3(5, 10, 15))
	assert.Equal(t, Vector3{1, 2, 3}, Vector3FromArray([3]float32{1, 2, 3}))
	assert.Equal(t, [3]float32{1, 2, 3}, Vec3(1, 2, 3).ToArray())

	v := Vector3{}
	v.SetScalar(2)
	assert.Equal(t, Vector3{2, 2, 2}, v)
	v.SetMin(Vec3(1, 5, -1))
	assert.Equal(t, Vector3{1, 2, -1}, v)
	v.SetMax(Vec3(0, 3, 0))
	assert.Equal(t, Vector3{1, 3, 0}, v)

	a := Vec3(1, 2, 3)
	b := Vec3(4, -5, 6)
	assert.Equal(t, Vec3(5, -3, 9), a.Add(b))
	assert.Equal(t, Vec3(-3, 7, -3), a.Sub(b))
	assert.Equal(t, Vec3(2, 4, 6), a.MulScalar(2))
	assert.Equal(t, Vec3(4, 5, 6), b.Abs())
	assert.Equal(t, float32(4-10+18), a.Dot(b))
	assert.Equal(t, Vec3(0, 0, 1), Vec3(1, 0, 0).Cross(Vec3(0, 1, 0)))

	c := a
	c.SetAdd(b)
	assert.Equal(t, Vec3(5, -3, 9), c)

	assert.Equal(t, float32(25), Vec3(3, 4, 0).LengthSquared())
	assert.Equal(t, float32(5), Vec3(3, 4, 0).Length())
	assert.Equal(t, float32(5), Vec3(0, 0, 0).DistanceTo(Vec3(0, 3, 4)))
	assert.Equal(t, float32(25), Vec3(0, 0, 0).DistanceToSquared(Vec3(0, 3, 4)))
	TolAssertEqualVector3(t, StandardTol, Vec3(0.6, 0.8, 0), Vec3(3, 4, 0).Normal())
	assert.Equal(t, Vector3{}, Vector3{}.Normal())

	assert.Equal(t, "(1, 2, 3)", a.String())
}

func TestVector3MulQuat(t *testing.T) {
	rz := NewQuatAxisAngle(Vec3(0, 0, 1), DegToRad(90))
	TolAssertEqualVector3(t, StandardTol, Vec3(0, 1, 0), Vec3(1, 0, 0).MulQuat(rz))
	TolAssertEqualVector3(t, StandardTol, Vec3(-1, 0, 0), Vec3(0, 1, 0).MulQuat(rz))
	TolAssertEqualVector3(t, StandardTol, Vec3(0, 0, 1), Vec3(0, 0, 1).MulQuat(rz))

	ry := NewQuatAxisAngle(Vec3(0, 1, 0), DegToRad(90))
	TolAssertEqualVector3(t, StandardTol, Vec3(0, 0, -1), Vec3(1, 0, 0).MulQuat(ry))

	assert.Equal(t, Vec3(1, 2, 3), Vec3(1, 2, 3).MulQuat(QuatIdentity()))
}
