// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package main

import (
	"cmp"
	"io"
	"io/fs"
	gopath "path"
	"slices"
)

func (d *dir) ReadDir(count int) ([]fs.DirEntry, error) {
	if d.list == nil {
		listing, err := d.fsys.ReadDir(d.name)
		if err != nil {
			return nil, err
		}
		d.list = listing
	}

	// Implement those tricky partial-listing semantics
	n := len(d.list) - d.lseek
	if n == 0 && count > 0 {
		return nil, io.EOF
	}
	if count > 0 && n > count {
		n = count
	}
	list := make([]fs.DirEntry, n)
	copy(list, d.list[d.lseek:][:n])
	d.lseek += n
	return list, nil
}

func (fsys *FS) ReadDir(name string) ([]fs.DirEntry, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrInvalid}
	}

	listing, err := fs.ReadDir(fsys.root, name)
	if err != nil {
		return nil, err
	}

	answers := make(chan []fs.DirEntry)

	n := 0
	for _, l := range listing {
		if !l.Type().IsRegular() {
			continue
		}

		go func() {
			src := gopath.Join(name, l.Name())
			var virtuals []fs.DirEntry
			for _, k := range fsys.getEntry(src).offers() {
				info, err := fsys.decodedStat(virtualName(src, k), src, k)
				if err != nil {
					decodeFailed(virtualName(src, k), err)
					continue
				}
				virtuals = append(virtuals, info)
			}
			answers <- virtuals
		}()
		n++
	}

	for range n {
		listing = append(listing, <-answers...)
	}

	slices.SortFunc(listing, func(a, b fs.DirEntry) int {
		return cmp.Compare(a.Name(), b.Name())
	})

	return listing, nil
}
