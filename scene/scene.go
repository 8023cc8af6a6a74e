// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides named reference frames: the live entities
// whose placement positions and orientations are converted between.
// A [Scene] can be loaded from a TOML or YAML file and kept up to date
// as that file changes.
package scene

import (
	"slices"
	"sort"
	"sync"

	"cogentcore.org/framespace/frame"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Provider supplies the current placement of named entities.
type Provider interface {

	// Frame returns a snapshot of the frame with the given name,
	// or nil, false if there is no such frame.
	Frame(name string) (*frame.Frame, bool)
}

// Suggester is a [Provider] that can suggest known names similar
// to an unknown one.
type Suggester interface {
	Provider
	Suggest(name string) []string
}

// DefaultTolerance is the default tolerance for validating frames
// given by basis vectors.
const DefaultTolerance = 1e-4

// MinSimilarity is the minimum name similarity, from 0 to 1,
// for a name to be returned by [Scene.Suggest].
const MinSimilarity = 0.5

// Scene is a set of named frames. It is safe for concurrent use.
type Scene struct {

	// Tolerance is used to validate frames given by basis vectors
	// when loading; a file may override it. If zero, [DefaultTolerance]
	// is used.
	Tolerance float32

	mu     sync.RWMutex
	frames map[string]frame.Frame

	// sum is the xxhash of the file contents the frames were last
	// loaded from, or 0 if they have been changed since.
	sum uint64
}

// New returns a new empty [Scene].
func New() *Scene {
	return &Scene{frames: map[string]frame.Frame{}}
}

// Frame returns a copy of the frame with the given name.
func (sc *Scene) Frame(name string) (*frame.Frame, bool) {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	f, ok := sc.frames[name]
	if !ok {
		return nil, false
	}
	return &f, true
}

// Set adds or replaces the frame with the given name.
func (sc *Scene) Set(name string, f frame.Frame) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.frames == nil {
		sc.frames = map[string]frame.Frame{}
	}
	sc.frames[name] = f
	sc.sum = 0
}

// Delete removes the frame with the given name, if any.
func (sc *Scene) Delete(name string) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	delete(sc.frames, name)
	sc.sum = 0
}

// Len returns the number of frames.
func (sc *Scene) Len() int {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return len(sc.frames)
}

// Names returns the sorted frame names.
func (sc *Scene) Names() []string {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	names := make([]string, 0, len(sc.frames))
	for nm := range sc.frames {
		names = append(names, nm)
	}
	slices.Sort(names)
	return names
}

// Suggest returns up to three known frame names that are similar to
// the given name, most similar first. The comparison ignores case.
func (sc *Scene) Suggest(name string) []string {
	lev := metrics.NewLevenshtein()
	lev.CaseSensitive = false
	type match struct {
		name string
		sim  float64
	}
	var matches []match
	for _, nm := range sc.Names() {
		if sim := strutil.Similarity(name, nm, lev); sim >= MinSimilarity {
			matches = append(matches, match{nm, sim})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].sim > matches[j].sim
	})
	if len(matches) > 3 {
		matches = matches[:3]
	}
	res := make([]string, len(matches))
	for i, m := range matches {
		res[i] = m.name
	}
	return res
}

// replace swaps in a whole new set of frames, loaded from
// file contents with the given hash.
func (sc *Scene) replace(frames map[string]frame.Frame, sum uint64) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.frames = frames
	sc.sum = sum
}

func (sc *Scene) loadedSum() uint64 {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.sum
}

func (sc *Scene) tolerance() float32 {
	if sc.Tolerance > 0 {
		return sc.Tolerance
	}
	return DefaultTolerance
}
