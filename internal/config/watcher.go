// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for
// rigwatch.
package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"
)

// =============================================================================
// CONFIG FILE WATCHER
// =============================================================================

// Watcher reloads the configuration when its file changes on disk and
// delivers each successfully parsed config on Updates. Parse or validation
// failures keep the previous config; the dashboard never adopts a broken
// file mid-session.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	updates chan *Config

	// Editors save in write bursts (truncate, write, rename). The limiter
	// coalesces a burst into one reload.
	limiter *rate.Limiter

	ctx    context.CancelFunc
	done   context.Context
	wg     sync.WaitGroup
	closed sync.Once
}

// NewWatcher watches the config file at path. The parent directory must
// exist; the file itself may not yet.
func NewWatcher(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	// Watch the directory, not the file: atomic saves rename a temp file
	// over the target, which drops a watch placed on the file itself.
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch config directory: %w", err)
	}

	done, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:    path,
		watcher: fsw,
		updates: make(chan *Config, 1),
		limiter: rate.NewLimiter(rate.Every(500*time.Millisecond), 1),
		ctx:     cancel,
		done:    done,
	}

	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Updates delivers each reloaded configuration. The channel is closed by
// Close.
func (w *Watcher) Updates() <-chan *Config {
	return w.updates
}

// Close stops watching and releases resources. Safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closed.Do(func() {
		w.ctx()
		err = w.watcher.Close()
		w.wg.Wait()
		close(w.updates)
	})
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !w.limiter.Allow() {
				continue
			}
			w.reload()
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are not fatal; the next event may succeed.
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := LoadFromPath(w.path)
	if err != nil {
		return
	}
	select {
	case w.updates <- cfg:
	default:
		// A pending update is already queued; replace it.
		select {
		case <-w.updates:
		default:
		}
		select {
		case w.updates <- cfg:
		default:
		}
	}
}
