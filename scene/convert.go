// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"strings"

	"cogentcore.org/framespace/base/errors"
	"cogentcore.org/framespace/frame"
	"cogentcore.org/framespace/math32"
)

// ConvertPoint converts the given world point from the frame named
// from into the frame named to, looking both up at call time.
// It returns the zero vector if either frame is unknown.
func ConvertPoint(p Provider, point math32.Vector3, from, to string) math32.Vector3 {
	src, _ := p.Frame(from)
	tgt, _ := p.Frame(to)
	return frame.ConvertPoint(point, src, tgt)
}

// ConvertRotation converts the given world rotation from the frame
// named from into the frame named to, looking both up at call time.
// It returns the zero rotator if either frame is unknown.
func ConvertRotation(p Provider, rot frame.Rotator, from, to string) frame.Rotator {
	src, _ := p.Frame(from)
	tgt, _ := p.Frame(to)
	return frame.ConvertRotation(rot, src, tgt)
}

// ConvertPointChecked is [ConvertPoint] returning an error wrapping
// [frame.ErrInvalidFrame] if either frame is unknown.
func ConvertPointChecked(p Provider, point math32.Vector3, from, to string) (math32.Vector3, error) {
	src, tgt, err := Lookup2(p, from, to)
	if err != nil {
		return math32.Vector3{}, err
	}
	return frame.ConvertPoint(point, src, tgt), nil
}

// ConvertRotationChecked is [ConvertRotation] returning an error wrapping
// [frame.ErrInvalidFrame] if either frame is unknown.
func ConvertRotationChecked(p Provider, rot frame.Rotator, from, to string) (frame.Rotator, error) {
	src, tgt, err := Lookup2(p, from, to)
	if err != nil {
		return frame.Rotator{}, err
	}
	return frame.ConvertRotation(rot, src, tgt), nil
}

// Lookup returns the named frame, or an error wrapping
// [frame.ErrInvalidFrame] that lists similar names if the
// provider is a [Suggester].
func Lookup(p Provider, name string) (*frame.Frame, error) {
	if f, ok := p.Frame(name); ok {
		return f, nil
	}
	msg := ""
	if sg, ok := p.(Suggester); ok {
		if sug := sg.Suggest(name); len(sug) > 0 {
			msg = " (did you mean " + strings.Join(sug, ", ") + "?)"
		}
	}
	return nil, fmt.Errorf("%w: unknown frame %q%s", frame.ErrInvalidFrame, name, msg)
}

// Lookup2 looks up a source and target frame, reporting all
// unknown names together.
func Lookup2(p Provider, from, to string) (src, tgt *frame.Frame, err error) {
	src, serr := Lookup(p, from)
	tgt, terr := Lookup(p, to)
	if err = errors.Join(serr, terr); err != nil {
		return nil, nil, err
	}
	return src, tgt, nil
}
