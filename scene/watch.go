// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the scene from the given file each time the file is
// written or created with new contents, until ctx is done. Reload
// failures are logged and leave the previous frames in place. The directory containing
// the file is watched so that editors that replace the file on save
// are handled.
func (sc *Scene) Watch(ctx context.Context, filename string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	fpath := filepath.Clean(filename)
	if err := w.Add(filepath.Dir(fpath)); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != fpath || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			changed, err := sc.load(fpath, true)
			switch {
			case err != nil:
				slog.Error("scene reload failed", "file", fpath, "err", err)
			case changed:
				slog.Info("scene reloaded", "file", fpath, "frames", sc.Len())
			default:
				slog.Debug("scene unchanged", "file", fpath)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("scene watcher", "file", fpath, "err", err)
		}
	}
}
