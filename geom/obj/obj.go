// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This package is based extensively on https://github.com/g3n/engine :
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package obj reads vertex geometry from the Wavefront OBJ file format (*.obj).
// Only positions, normals, faces and object names are kept; materials and
// texture coordinates are accepted and skipped.
// Basic format info: https://en.wikipedia.org/wiki/Wavefront_.obj_file
package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"cogentcore.org/framespace/base/errors"
	"cogentcore.org/framespace/math32"
)

const blanks = "\r\n\t "

// Mesh contains the geometry decoded from an obj file.
type Mesh struct {

	// Objects are the object and group names, in order of appearance.
	Objects []string

	// Positions are the vertex positions, in the mesh's local space.
	Positions []math32.Vector3

	// Normals are the vertex normals. They need not line up with
	// Positions; obj faces index the two separately.
	Normals []math32.Vector3

	// Faces are the zero-based position indexes of each face.
	Faces [][]int

	// Warnings are messages about lines that were skipped.
	Warnings []string
}

// Vertices returns the vertex positions and normals and the number of
// vertices.
func (ms *Mesh) Vertices() (positions, normals []math32.Vector3, n int) {
	return ms.Positions, ms.Normals, len(ms.Positions)
}

// Bounds returns the bounding box of the vertex positions.
func (ms *Mesh) Bounds() math32.Box3 {
	return math32.B3FromPoints(ms.Positions)
}

// Open reads the mesh from the given obj file.
func Open(filename string) (*Mesh, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ms, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("obj.Open %q: %w", filename, err)
	}
	return ms, nil
}

// Decode reads the mesh from the given obj data.
func Decode(r io.Reader) (*Mesh, error) {
	dec := &decoder{mesh: &Mesh{}}
	if err := dec.parse(r); err != nil {
		return nil, err
	}
	return dec.mesh, nil
}

// decoder holds the parsing state.
type decoder struct {
	mesh *Mesh
	line uint // current line number
}

// parse reads the lines from the specified reader and dispatches them
// to parseLine.
func (dec *decoder) parse(reader io.Reader) error {
	bufin := bufio.NewReader(reader)
	dec.line = 1
	for {
		// Reads next line and abort on errors (not EOF)
		line, err := bufin.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		line = strings.Trim(line, blanks)
		perr := dec.parseLine(line)
		if perr != nil {
			return perr
		}
		if err == io.EOF {
			break
		}
		dec.line++
	}
	return nil
}

// parseLine parses one obj file line, dispatching to specific parsers.
func (dec *decoder) parseLine(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	ltype := fields[0]
	if strings.HasPrefix(ltype, "#") {
		return nil
	}
	switch ltype {
	// Object name; "g" group names are treated the same as objects.
	case "o", "g":
		return dec.parseObject(fields[1:])
	case "v":
		return dec.parseVector(fields[1:], &dec.mesh.Positions)
	case "vn":
		return dec.parseVector(fields[1:], &dec.mesh.Normals)
	case "f":
		return dec.parseFace(fields[1:])
	case "vt", "mtllib", "usemtl", "s":
		return nil
	default:
		dec.appendWarn("field not supported: " + ltype)
	}
	return nil
}

// parseObject parses an object line:
// o <name>
func (dec *decoder) parseObject(fields []string) error {
	if len(fields) < 1 {
		return dec.formatError("Object line (o) with no fields")
	}
	dec.mesh.Objects = append(dec.mesh.Objects, fields[0])
	return nil
}

// parseVector parses a vertex position or normal line:
// v <x> <y> <z> [w]
// vn <x> <y> <z>
func (dec *decoder) parseVector(fields []string, to *[]math32.Vector3) error {
	if len(fields) < 3 {
		return dec.formatError("Less than 3 coordinates in vertex line")
	}
	var v [3]float32
	for i, f := range fields[:3] {
		val, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return dec.formatError(err.Error())
		}
		v[i] = float32(val)
		if math32.IsNaN(v[i]) {
			return dec.formatError("NaN coordinate")
		}
	}
	*to = append(*to, math32.Vector3FromArray(v))
	return nil
}

// parseFace parses a face description line, keeping the position indexes:
// f v1[/vt1][/vn1] v2[/vt2][/vn2] v3[/vt3][/vn3] ...
// Negative indexes count back from the last position read so far.
func (dec *decoder) parseFace(fields []string) error {
	if len(fields) < 3 {
		return dec.formatError("Face line with less 3 fields")
	}
	np := len(dec.mesh.Positions)
	face := make([]int, len(fields))
	for i, f := range fields {
		pos, _, _ := strings.Cut(f, "/")
		idx, err := strconv.Atoi(pos)
		if err != nil {
			return dec.formatError("Invalid face vertex index: " + f)
		}
		switch {
		case idx > 0 && idx <= np:
			face[i] = idx - 1
		case idx < 0 && -idx <= np:
			face[i] = np + idx
		default:
			return dec.formatError(fmt.Sprintf("Face vertex index %d out of range with %d positions", idx, np))
		}
	}
	dec.mesh.Faces = append(dec.mesh.Faces, face)
	return nil
}

func (dec *decoder) formatError(msg string) error {
	return fmt.Errorf("%w: %s in line:%d", ErrFormat, msg, dec.line)
}

func (dec *decoder) appendWarn(msg string) {
	dec.mesh.Warnings = append(dec.mesh.Warnings, fmt.Sprintf("obj(%d): %s", dec.line, msg))
}

// ErrFormat is wrapped by all errors about malformed obj data.
var ErrFormat = errors.New("obj: invalid format")
