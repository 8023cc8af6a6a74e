// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"cogentcore.org/framespace/frame"
	"cogentcore.org/framespace/geom/obj"
	"cogentcore.org/framespace/math32"
	"cogentcore.org/framespace/scene"
)

// parseFloats parses the given command line arguments as float32 values.
func parseFloats(args []string) ([3]float32, error) {
	var v [3]float32
	if len(args) != 3 {
		return v, fmt.Errorf("need 3 numbers, got %d", len(args))
	}
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 32)
		if err != nil {
			return v, fmt.Errorf("argument %d: %w", i+1, err)
		}
		v[i] = float32(f)
	}
	return v, nil
}

// Point converts a world point from one named frame to another.
func Point(c *Config, w io.Writer, args []string, from, to string) error {
	v, err := parseFloats(args)
	if err != nil {
		return err
	}
	sc, err := c.OpenScene()
	if err != nil {
		return err
	}
	in := math32.Vector3FromArray(v)
	p, err := scene.ConvertPointChecked(sc, in, from, to)
	if err != nil {
		return err
	}
	slog.Debug("converted point", "from", from, "to", to, "input", in, "point", p)
	return c.write(w, &pointResult{From: from, To: to, Input: v, Point: toXYZ(p)})
}

// Rotation converts a world rotation, given as pitch, yaw and roll
// in degrees, from one named frame to another.
func Rotation(c *Config, w io.Writer, args []string, from, to string) error {
	v, err := parseFloats(args)
	if err != nil {
		return err
	}
	sc, err := c.OpenScene()
	if err != nil {
		return err
	}
	in := frame.Rot(v[0], v[1], v[2])
	r, err := scene.ConvertRotationChecked(sc, in, from, to)
	if err != nil {
		return err
	}
	slog.Debug("converted rotation", "from", from, "to", to, "input", in, "rotation", r)
	return c.write(w, &rotationResult{From: from, To: to, Input: in, Rotation: r})
}

// InBox reports whether a world point is inside the box centered on
// the named frame with the given half extents along its axes.
func InBox(c *Config, w io.Writer, args []string, box string, extent []float32) error {
	v, err := parseFloats(args)
	if err != nil {
		return err
	}
	if len(extent) != 3 {
		return fmt.Errorf("extent needs 3 values, got %d", len(extent))
	}
	sc, err := c.OpenScene()
	if err != nil {
		return err
	}
	f, err := scene.Lookup(sc, box)
	if err != nil {
		return err
	}
	ob := &frame.OrientedBox{Frame: *f, HalfExtent: math32.Vec3(extent[0], extent[1], extent[2])}
	p := math32.Vector3FromArray(v)
	return c.write(w, &inboxResult{Box: box, Inside: frame.PointInBox(p, ob), Local: toXYZ(f.ToLocal(p))})
}

// openMesh opens the given mesh and, if a frame name is given,
// places its vertices and normals in that frame. Normals are
// returned with unit length.
func (c *Config) openMesh(filename, frameName string) (positions, normals []math32.Vector3, err error) {
	ms, err := obj.Open(filename)
	if err != nil {
		return nil, nil, err
	}
	for _, wr := range ms.Warnings {
		slog.Warn(wr, "file", filename)
	}
	positions, normals, _ = ms.Vertices()
	for i, n := range normals {
		normals[i] = n.Normal()
	}
	if frameName == "" {
		return positions, normals, nil
	}
	sc, err := c.OpenScene()
	if err != nil {
		return nil, nil, err
	}
	f, err := scene.Lookup(sc, frameName)
	if err != nil {
		return nil, nil, err
	}
	positions, _ = frame.TransformPoints(f, positions)
	for i, n := range normals {
		normals[i] = n.MulQuat(f.Rotation)
	}
	return positions, normals, nil
}

// Closest finds the mesh vertex closest to a point.
func Closest(c *Config, w io.Writer, args []string, mesh, frameName string) error {
	v, err := parseFloats(args)
	if err != nil {
		return err
	}
	positions, _, err := c.openMesh(mesh, frameName)
	if err != nil {
		return err
	}
	p := math32.Vector3FromArray(v)
	i := frame.ClosestVertex(p, positions)
	if i < 0 {
		return fmt.Errorf("mesh %q has no vertices", mesh)
	}
	return c.write(w, &closestResult{Index: i, Vertex: toXYZ(positions[i]), Distance: p.DistanceTo(positions[i])})
}

// Mesh lists the vertices and bounds of a mesh, placed in the
// named frame if one is given.
func Mesh(c *Config, w io.Writer, mesh, frameName string) error {
	positions, normals, err := c.openMesh(mesh, frameName)
	if err != nil {
		return err
	}
	res := &meshResult{Frame: frameName, Count: len(positions)}
	for _, p := range positions {
		res.Positions = append(res.Positions, toXYZ(p))
	}
	for _, n := range normals {
		res.Normals = append(res.Normals, toXYZ(n))
	}
	if bb := math32.B3FromPoints(positions); !bb.IsEmpty() {
		res.Min, res.Max = toXYZ(bb.Min), toXYZ(bb.Max)
		res.Center, res.Size = toXYZ(bb.Center()), toXYZ(bb.Size())
	}
	return c.write(w, res)
}

// Frames lists the frames in the scene. If out is given, the scene
// is also saved to that file, in the format given by its extension.
func Frames(c *Config, w io.Writer, out string) error {
	sc, err := c.OpenScene()
	if err != nil {
		return err
	}
	res := &framesResult{Frames: []frameInfo{}}
	for _, nm := range sc.Names() {
		f, ok := sc.Frame(nm)
		if !ok {
			continue
		}
		res.Frames = append(res.Frames, frameInfo{
			Name:     nm,
			Origin:   toXYZ(f.Origin),
			Rotation: f.Rotator(),
			Forward:  toXYZ(f.Forward()),
			Right:    toXYZ(f.Right()),
			Up:       toXYZ(f.Up()),
		})
	}
	if out != "" {
		if err := sc.Save(out); err != nil {
			return err
		}
		slog.Info("saved scene", "file", out, "frames", len(res.Frames))
	}
	return c.write(w, res)
}

// Watch loads the scene and reloads it each time the file
// changes, until ctx is done.
func Watch(ctx context.Context, c *Config) error {
	sc, err := c.OpenScene()
	if err != nil {
		return err
	}
	fn, err := c.ScenePath()
	if err != nil {
		return err
	}
	slog.Info("watching scene", "file", fn, "frames", sc.Len())
	return sc.Watch(ctx, fn)
}
