// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/fault"
)

type watchChannels struct {
	change chan struct{}
	remove chan struct{}
}

type fileWatcher struct {
	watcher  *fsnotify.Watcher
	filePath string
	channels watchChannels
	e        io.Writer
	verbose  bool
}

// the directory is watched so that a file replaced by rename is still seen
func newFileWatcher(targetFile string, e io.Writer, verbose bool) (*fileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fault.ErrDataFileNotFound
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}

	err = watcher.Add(filepath.Dir(filePath))
	if nil != err {
		watcher.Close()
		return nil, err
	}

	return &fileWatcher{
		watcher:  watcher,
		filePath: filePath,
		channels: watchChannels{
			change: make(chan struct{}, 1),
			remove: make(chan struct{}, 1),
		},
		e:       e,
		verbose: verbose,
	}, nil
}

// forward matching events until the watcher is closed
func (w *fileWatcher) forward() {
	for event := range w.watcher.Events {
		if filepath.Base(event.Name) != filepath.Base(w.filePath) {
			continue
		}
		if w.verbose {
			fmt.Fprintf(w.e, "file event: %v\n", event)
		}

		if watcherEventFileRemove(event) {
			w.sendEvent(w.channels.remove)
			return
		}
		if watcherEventFileChange(event) {
			w.sendEvent(w.channels.change)
		}
	}
}

// pending events are merged since a reload reads the latest content
func (w *fileWatcher) sendEvent(ch chan<- struct{}) {
	if len(ch) != cap(ch) {
		ch <- struct{}{}
	}
}

func (w *fileWatcher) Close() error {
	return w.watcher.Close()
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create
}

// reload the file on each change and print its check summary
//
// returns after limit reloads (zero means no limit), when stop is
// closed or when the file is removed
func (w *fileWatcher) run(keyType string, limit int, out io.Writer, stop <-chan struct{}) error {
	go w.forward()

	reloads := 0
	for {
		select {
		case <-stop:
			return nil

		case err := <-w.watcher.Errors:
			return err

		case <-w.channels.remove:
			return fault.ErrDataFileNotFound

		case <-w.channels.change:
			tree, err := loadFile(w.filePath, keyType)
			if fault.ErrDataFileNotFound == err {
				return err
			}
			if nil != err {
				fmt.Fprintf(w.e, "reload: %q  error: %s\n", w.filePath, err)
				continue
			}
			if err := printJson(out, checkTree(w.filePath, tree)); nil != err {
				return err
			}
			reloads += 1
			if limit > 0 && reloads >= limit {
				return nil
			}
		}
	}
}

func runWatch(c *cli.Context) error {
	m, err := getMetadata(c)
	if nil != err {
		return err
	}

	limit := c.Int("count")
	if limit < 0 {
		return fault.ErrInvalidCount
	}

	// initial summary of the loaded file
	if err := printJson(m.w, checkTree(m.file, m.tree)); nil != err {
		return err
	}

	w, err := newFileWatcher(m.file, m.e, m.verbose)
	if nil != err {
		return err
	}
	defer w.Close()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	stop := make(chan struct{})
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case sig := <-sigs:
			if m.verbose {
				fmt.Fprintf(m.e, "received signal: %v\n", sig)
			}
			close(stop)
		case <-done:
		}
	}()

	return w.run(m.keyType, limit, m.w, stop)
}
