// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package main

import (
	"io/fs"
	gopath "path"
)

func (fsys *FS) Stat(name string) (fs.FileInfo, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrInvalid}
	}

	if src, k, err := fsys.virtual(name); err == nil && k != kindNone {
		info, err := fsys.decodedStat(name, src, k)
		if err != nil {
			return nil, &fs.PathError{Op: "stat", Path: name, Err: err}
		}
		return info, nil
	}
	return fs.Stat(fsys.root, name)
}

// decodedStat needs the decoded size, so it decodes (or hits the cache).
func (fsys *FS) decodedStat(name, src string, k kind) (*decodedInfo, error) {
	srcInfo, err := fs.Stat(fsys.root, src)
	if err != nil {
		return nil, err
	}
	data, err := fsys.decoded(src, k)
	if err != nil {
		decodeFailed(name, err)
		return nil, err
	}
	return &decodedInfo{
		name:  gopath.Base(name),
		size:  int64(len(data)),
		mtime: srcInfo.ModTime(),
	}, nil
}
