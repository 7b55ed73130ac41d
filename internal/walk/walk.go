// Copyright (c) Elliot Nunn
// Licensed under the MIT license

// Package walk lists the regular files of a tree, roughly in the order they
// sit on disk, so that reading them all causes less seeking.
package walk

import (
	"cmp"
	"io/fs"
	"path"
	"slices"
	"sync"
)

// Files sends the name of every regular file under fsys that keep accepts.
// The first result names the sort order that was achieved.
func Files(fsys fs.FS, keep func(name string) bool) (string, <-chan string) {
	return sortPaths(fsys, walkAsync(fsys, keep))
}

func walkAsync(fsys fs.FS, keep func(string) bool) <-chan string {
	ch, wg := make(chan string), new(sync.WaitGroup)
	wg.Add(1)
	go recurse(fsys, ".", keep, ch, wg)
	go func() { wg.Wait(); close(ch) }()
	return ch
}

func recurse(fsys fs.FS, name string, keep func(string) bool, ch chan<- string, wg *sync.WaitGroup) {
	defer wg.Done()
	list, err := fs.ReadDir(fsys, name)
	if err != nil {
		return
	}
	for _, de := range list {
		p := path.Join(name, de.Name())
		switch {
		case de.IsDir():
			wg.Add(1)
			go recurse(fsys, p, keep, ch, wg)
		case de.Type().IsRegular() && keep(p):
			ch <- p
		}
	}
}

type file struct {
	path string
	key  uint64
}

// sortPaths drains ch before sending anything if the files have a sort key.
func sortPaths(fsys fs.FS, ch <-chan string) (string, <-chan string) {
	out := make(chan string)
	f1, ok := <-ch
	if !ok {
		close(out)
		return "no-files", out
	}

	var (
		k1      uint64
		waysort string
		cansort bool
	)
	if stat1, err := fs.Stat(fsys, f1); err != nil {
		waysort = err.Error()
	} else if k1, cansort = tryInode(stat1); cansort {
		waysort = "inode-number"
	} else {
		waysort = "walk-order"
	}

	go func() {
		defer close(out)
		if !cansort {
			out <- f1
			for f := range ch {
				out <- f
			}
			return
		}

		list := []file{{path: f1, key: k1}}
		for f := range ch {
			el := file{path: f}
			if info, err := fs.Stat(fsys, f); err == nil {
				el.key, _ = tryInode(info)
			}
			list = append(list, el)
		}
		slices.SortFunc(list, func(a, b file) int { return cmp.Compare(a.key, b.key) })
		for _, f := range list {
			out <- f.path
		}
	}()
	return waysort, out
}

var tryInode = func(i fs.FileInfo) (uint64, bool) { return 0, false }
