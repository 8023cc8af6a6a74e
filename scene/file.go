// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/framespace/base/errors"
	"cogentcore.org/framespace/frame"
	"cogentcore.org/framespace/math32"
	"github.com/cespare/xxhash/v2"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for scene files whose extension
// is not .toml, .yaml or .yml.
var ErrUnknownFormat = errors.New("scene: unknown file format")

// File is the on-disk form of a scene.
type File struct {

	// Tolerance overrides [Scene.Tolerance] for this file.
	Tolerance float32 `toml:"tolerance,omitempty" yaml:"tolerance,omitempty"`

	// Frames are the frames by name.
	Frames map[string]FrameSpec `toml:"frames" yaml:"frames"`
}

// FrameSpec is the on-disk form of a frame. Its orientation is given
// either by Rotation or by all three of Forward, Right and Up.
type FrameSpec struct {
	Origin   []float32      `toml:"origin" yaml:"origin,flow"`
	Rotation *frame.Rotator `toml:"rotation,omitempty" yaml:"rotation,omitempty,flow"`
	Forward  []float32      `toml:"forward,omitempty" yaml:"forward,omitempty,flow"`
	Right    []float32      `toml:"right,omitempty" yaml:"right,omitempty,flow"`
	Up       []float32      `toml:"up,omitempty" yaml:"up,omitempty,flow"`
}

// Frame returns the frame for this spec, checking any basis
// vectors against the given tolerance.
func (fs *FrameSpec) Frame(tol float32) (frame.Frame, error) {
	origin, err := vector(fs.Origin, "origin", false)
	if err != nil {
		return frame.Frame{}, err
	}
	nb := 0
	for _, b := range [][]float32{fs.Forward, fs.Right, fs.Up} {
		if b != nil {
			nb++
		}
	}
	switch {
	case fs.Rotation != nil && nb > 0:
		return frame.Frame{}, errors.New("both rotation and basis vectors given")
	case nb == 0:
		rot := frame.Rotator{}
		if fs.Rotation != nil {
			rot = *fs.Rotation
		}
		return frame.New(origin, rot), nil
	case nb < 3:
		return frame.Frame{}, errors.New("forward, right and up must all be given")
	}
	fwd, err := vector(fs.Forward, "forward", true)
	if err != nil {
		return frame.Frame{}, err
	}
	right, err := vector(fs.Right, "right", true)
	if err != nil {
		return frame.Frame{}, err
	}
	up, err := vector(fs.Up, "up", true)
	if err != nil {
		return frame.Frame{}, err
	}
	if err := frame.CheckBasis(fwd, right, up, tol); err != nil {
		return frame.Frame{}, err
	}
	return frame.FromBasis(origin, fwd, right, up), nil
}

// SpecFor returns the spec for the given frame, with its
// orientation as canonical Euler angles. The rotation is
// omitted when it is zero.
func SpecFor(f frame.Frame) FrameSpec {
	o := f.Origin.ToArray()
	fs := FrameSpec{Origin: o[:]}
	if rot := f.Rotator(); !rot.IsZero() {
		fs.Rotation = &rot
	}
	return fs
}

func vector(v []float32, name string, required bool) (math32.Vector3, error) {
	if v == nil && !required {
		return math32.Vector3{}, nil
	}
	if len(v) != 3 {
		return math32.Vector3{}, fmt.Errorf("%s must have 3 components, not %d", name, len(v))
	}
	return math32.Vec3(v[0], v[1], v[2]), nil
}

// Open returns a new [Scene] loaded from the given file.
func Open(filename string) (*Scene, error) {
	sc := New()
	if err := sc.Load(filename); err != nil {
		return nil, err
	}
	return sc, nil
}

// Load replaces the frames of the scene with those in the given file.
// The scene is left unchanged if there is any error.
func (sc *Scene) Load(filename string) error {
	_, err := sc.load(filename, false)
	return err
}

// load loads the given file, skipping it if onlyChanged is set and
// its contents are the same as those last loaded. It returns whether
// the frames were replaced.
func (sc *Scene) load(filename string, onlyChanged bool) (bool, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return false, err
	}
	sum := xxhash.Sum64(b)
	if onlyChanged && sum == sc.loadedSum() {
		return false, nil
	}
	frames, err := sc.decode(b, filepath.Ext(filename))
	if err != nil {
		return false, fmt.Errorf("scene.Load %q: %w", filename, err)
	}
	sc.replace(frames, sum)
	return true, nil
}

// Save writes the frames of the scene to the given file, in the
// format given by its extension.
func (sc *Scene) Save(filename string) error {
	b, err := sc.Encode(filepath.Ext(filename))
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}

// Encode returns the scene in the format for the given file
// extension (.toml, .yaml or .yml).
func (sc *Scene) Encode(ext string) ([]byte, error) {
	fl := File{Frames: map[string]FrameSpec{}}
	for _, nm := range sc.Names() {
		if f, ok := sc.Frame(nm); ok {
			fl.Frames[nm] = SpecFor(*f)
		}
	}
	switch strings.ToLower(ext) {
	case ".toml":
		return toml.Marshal(&fl)
	case ".yaml", ".yml":
		return yaml.Marshal(&fl)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
}

func (sc *Scene) decode(b []byte, ext string) (map[string]frame.Frame, error) {
	var fl File
	var err error
	switch strings.ToLower(ext) {
	case ".toml":
		err = toml.Unmarshal(b, &fl)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &fl)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	if err != nil {
		return nil, err
	}
	tol := sc.tolerance()
	if fl.Tolerance > 0 {
		tol = fl.Tolerance
	}
	frames := make(map[string]frame.Frame, len(fl.Frames))
	var errs []error
	for nm, fs := range fl.Frames {
		f, err := fs.Frame(tol)
		if err != nil {
			errs = append(errs, fmt.Errorf("frame %q: %w", nm, err))
			continue
		}
		frames[nm] = f
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return frames, nil
}
