// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tolassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	failed bool
}

func (r *recorder) Errorf(format string, args ...any) {
	r.failed = true
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(t, float32(1), float32(1.000001)))
	assert.True(t, EqualTol(t, 10.0, 10.4, 0.5))

	r := &recorder{}
	assert.False(t, EqualTol(r, float32(1), float32(1.1), 0.01))
	assert.True(t, r.failed)

	r = &recorder{}
	assert.False(t, Equal(r, 2.0, 2.001))
	assert.True(t, r.failed)
}
