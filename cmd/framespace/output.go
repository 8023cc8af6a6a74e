// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"cogentcore.org/framespace/frame"
	"cogentcore.org/framespace/math32"
	"gopkg.in/yaml.v3"
)

// Formats are the supported output formats.
var Formats = []string{"text", "json", "yaml"}

// result is the output of a command.
type result interface {

	// Text returns the human readable form of the result.
	Text() string
}

// write writes the result to w in the configured format.
func (c *Config) write(w io.Writer, res result) error {
	switch c.Format {
	case "text":
		_, err := fmt.Fprintln(w, res.Text())
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format %q (want one of %s)", c.Format, strings.Join(Formats, ", "))
}

// xyz is a vector as it appears in structured output.
type xyz [3]float32

func toXYZ(v math32.Vector3) xyz { return v.ToArray() }

type pointResult struct {
	From  string `json:"from" yaml:"from"`
	To    string `json:"to" yaml:"to"`
	Input xyz    `json:"input" yaml:"input,flow"`
	Point xyz    `json:"point" yaml:"point,flow"`
}

func (r *pointResult) Text() string {
	return math32.Vector3FromArray(r.Point).String()
}

type rotationResult struct {
	From     string        `json:"from" yaml:"from"`
	To       string        `json:"to" yaml:"to"`
	Input    frame.Rotator `json:"input" yaml:"input,flow"`
	Rotation frame.Rotator `json:"rotation" yaml:"rotation,flow"`
}

func (r *rotationResult) Text() string {
	return r.Rotation.String()
}

type inboxResult struct {
	Box    string `json:"box" yaml:"box"`
	Inside bool   `json:"inside" yaml:"inside"`
	Local  xyz    `json:"local" yaml:"local,flow"`
}

func (r *inboxResult) Text() string {
	return fmt.Sprint(r.Inside)
}

type closestResult struct {
	Index    int     `json:"index" yaml:"index"`
	Vertex   xyz     `json:"vertex" yaml:"vertex,flow"`
	Distance float32 `json:"distance" yaml:"distance"`
}

func (r *closestResult) Text() string {
	return fmt.Sprintf("%d %v distance %g", r.Index, math32.Vector3FromArray(r.Vertex), r.Distance)
}

type meshResult struct {
	Frame     string `json:"frame,omitempty" yaml:"frame,omitempty"`
	Count     int    `json:"count" yaml:"count"`
	Positions []xyz  `json:"positions" yaml:"positions,flow"`
	Normals   []xyz  `json:"normals,omitempty" yaml:"normals,omitempty,flow"`
	Min       xyz    `json:"min" yaml:"min,flow"`
	Max       xyz    `json:"max" yaml:"max,flow"`
	Center    xyz    `json:"center" yaml:"center,flow"`
	Size      xyz    `json:"size" yaml:"size,flow"`
}

func (r *meshResult) Text() string {
	var b strings.Builder
	for i, p := range r.Positions {
		fmt.Fprintf(&b, "%d %v", i, math32.Vector3FromArray(p))
		if i < len(r.Normals) {
			fmt.Fprintf(&b, " normal %v", math32.Vector3FromArray(r.Normals[i]))
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "bounds %v %v center %v size %v", math32.Vector3FromArray(r.Min), math32.Vector3FromArray(r.Max),
		math32.Vector3FromArray(r.Center), math32.Vector3FromArray(r.Size))
	return b.String()
}

type frameInfo struct {
	Name     string        `json:"name" yaml:"name"`
	Origin   xyz           `json:"origin" yaml:"origin,flow"`
	Rotation frame.Rotator `json:"rotation" yaml:"rotation,flow"`
	Forward  xyz           `json:"forward" yaml:"forward,flow"`
	Right    xyz           `json:"right" yaml:"right,flow"`
	Up       xyz           `json:"up" yaml:"up,flow"`
}

type framesResult struct {
	Frames []frameInfo `json:"frames" yaml:"frames"`
}

func (r *framesResult) Text() string {
	var b strings.Builder
	for i, f := range r.Frames {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s origin %v rotation %v", f.Name, math32.Vector3FromArray(f.Origin), f.Rotation)
	}
	return b.String()
}
