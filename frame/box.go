// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import "cogentcore.org/framespace/math32"

// OrientedBox is a box centered on the origin of its frame and aligned
// with the frame's axes.
type OrientedBox struct {
	Frame

	// HalfExtent is half the size of the box along the
	// forward (X), right (Y) and up (Z) axes.
	HalfExtent math32.Vector3
}

// ContainsPoint returns whether the given world point is inside the
// box or on its boundary.
func (b OrientedBox) ContainsPoint(point math32.Vector3) bool {
	l := b.ToLocal(point).Abs()
	return l.X <= b.HalfExtent.X && l.Y <= b.HalfExtent.Y && l.Z <= b.HalfExtent.Z
}

// PointInBox returns whether the given world point is inside the
// box or on its boundary. It returns false for a nil box.
func PointInBox(point math32.Vector3, box *OrientedBox) bool {
	if box == nil {
		return false
	}
	return box.ContainsPoint(point)
}
