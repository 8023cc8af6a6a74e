// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestHandler(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf, slog.LevelInfo, termenv.WithProfile(termenv.Ascii)))

	l.Debug("hidden")
	l.Info("loaded scene", "frames", 3)
	l.With("file", "scene.toml").WithGroup("reload").Warn("failed", "err", "bad basis")

	assert.Equal(t, "INFO loaded scene frames=3\nWARN failed file=scene.toml reload.err=bad basis\n", buf.String())
}

func TestDefaultLogger(t *testing.T) {
	level, logger := UserLevel, slog.Default()
	t.Cleanup(func() {
		UserLevel = level
		slog.SetDefault(logger)
	})

	var buf bytes.Buffer
	UserLevel = slog.LevelWarn
	SetDefaultLoggerOutput(&buf)

	slog.Debug("this is debug")
	slog.Info("this is info")
	slog.Warn("this is warn")
	assert.Equal(t, "WARN this is warn\n", buf.String())
}
