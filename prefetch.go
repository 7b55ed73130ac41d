// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package main

import (
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/elliotnunn/datinflate/internal/walk"
)

// Prefetch probes and decodes every entry, filling the caches.
func (fsys *FS) Prefetch() {
	slog.Info("prefetchStart")
	t := time.Now()
	n := fsys.prefetch(runtime.NumCPU())
	slog.Info("prefetchStop", "entries", n, "duration", time.Since(t).Truncate(time.Millisecond).String())
}

func (fsys *FS) prefetch(concurrency int) int {
	waysort, files := walk.Files(fsys.root, fsys.matches)
	slog.Debug("prefetchOrder", "sortorder", waysort)

	var mu sync.Mutex
	count := 0
	wg := new(sync.WaitGroup)
	wg.Add(concurrency)
	for range concurrency {
		go func() {
			defer wg.Done()
			for name := range files {
				for _, k := range fsys.getEntry(name).offers() {
					if _, err := fsys.decoded(name, k); err != nil {
						decodeFailed(virtualName(name, k), err)
						continue
					}
					mu.Lock()
					count++
					mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()
	return count
}
