// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import "cogentcore.org/framespace/math32"

// ClosestVertex returns the index of the vertex nearest to the given
// point, or -1 if there are no vertices. The first of equally near
// vertices wins.
func ClosestVertex(point math32.Vector3, vertices []math32.Vector3) int {
	if len(vertices) == 0 {
		return -1
	}
	best := 0
	bestDist := point.DistanceToSquared(vertices[0])
	for i, v := range vertices[1:] {
		if d := point.DistanceToSquared(v); d < bestDist {
			best = i + 1
			bestDist = d
		}
	}
	return best
}

// TransformPoints returns the world positions of the given points
// expressed in the local axes of f, for example mesh vertices of a
// component placed at f. It returns nil, false for a nil frame.
func TransformPoints(f *Frame, local []math32.Vector3) ([]math32.Vector3, bool) {
	if f == nil {
		return nil, false
	}
	world := make([]math32.Vector3, len(local))
	for i, p := range local {
		world[i] = f.ToWorld(p)
	}
	return world, true
}
