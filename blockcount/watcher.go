// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockcount

import (
	"io/ioutil"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/logger"
)

// Watcher - height read from a file rewritten by a chain follower
type Watcher struct {
	Fixed
	log      *logger.L
	filePath string
}

// NewWatcher - read the initial height, the file must already exist
func NewWatcher(log *logger.L, fileName string) (*Watcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}

	w := &Watcher{
		log:      log,
		filePath: filePath,
	}
	_, err = w.Reload()
	if nil != err {
		return nil, err
	}
	return w, nil
}

// Reload - read the file, a value that is not higher than the
// current height is ignored
func (w *Watcher) Reload() (bool, error) {
	data, err := ioutil.ReadFile(w.filePath)
	if nil != err {
		return false, err
	}
	height, err := strconv.ParseUint(strings.TrimSpace(string(data)), 10, 64)
	if nil != err {
		return false, err
	}
	return w.Set(height), nil
}

// Run - background process following the file
//
// the directory is watched so that a file replaced by rename is
// still seen
func (w *Watcher) Run(args interface{}, shutdown <-chan struct{}) {
	log := w.log

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Criticalf("new watcher error: %s", err)
		logger.Panicf("blockcount: new watcher error: %s", err)
	}
	defer watcher.Close()

	err = watcher.Add(filepath.Dir(w.filePath))
	if nil != err {
		log.Criticalf("watch: %s  error: %s", w.filePath, err)
		logger.Panicf("blockcount: watch: %s  error: %s", w.filePath, err)
	}

	log.Infof("watching: %s  height: %d", w.filePath, w.Height())

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-watcher.Events:
			if !ok {
				break loop
			}
			if filepath.Base(event.Name) != filepath.Base(w.filePath) {
				continue
			}
			if !fileChanged(event) {
				continue
			}
			changed, err := w.Reload()
			if nil != err {
				log.Warnf("read: %s  error: %s", w.filePath, err)
				continue
			}
			if changed {
				log.Debugf("block: %d", w.Height())
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				break loop
			}
			log.Errorf("watcher error: %s", err)
		}
	}
	log.Infof("stopped at: %d", w.Height())
}

func fileChanged(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}
