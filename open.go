// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package main

import (
	"bytes"
	"errors"
	"io/fs"
	"log/slog"
)

func (fsys *FS) Open(name string) (f fs.File, err error) {
	defer func() {
		if err != nil {
			err = &fs.PathError{Op: "open", Path: name, Err: err}
		}
	}()

	if !fs.ValidPath(name) {
		return nil, fs.ErrInvalid
	}

	if src, k, err := fsys.virtual(name); err == nil && k != kindNone {
		return fsys.openDecoded(name, src, k)
	}
	return fsys.openPlain(name)
}

func (fsys *FS) openDecoded(name, src string, k kind) (fs.File, error) {
	info, err := fsys.decodedStat(name, src, k)
	if err != nil {
		return nil, err
	}
	data, err := fsys.decoded(src, k)
	if err != nil {
		return nil, err
	}
	return &decodedFile{Reader: bytes.NewReader(data), info: info}, nil
}

func (fsys *FS) openPlain(name string) (fs.File, error) {
	f, err := fsys.root.Open(name)
	if err != nil {
		return nil, err
	}

	s, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if s.IsDir() {
		rdf, ok := f.(fs.ReadDirFile)
		if !ok {
			f.Close()
			return nil, errNotReadDir
		}
		return &dir{fsys: fsys, name: name, obj: rdf}, nil
	}
	return f, nil
}

var (
	errNotReadDir = errors.New("directory does not support ReadDir")
	errIsDir      = errors.New("is a directory")
)

// decodedFile is the content of a virtual file, held in memory.
type decodedFile struct {
	*bytes.Reader
	info *decodedInfo
}

func (f *decodedFile) Stat() (fs.FileInfo, error) { return f.info, nil }
func (f *decodedFile) Close() error               { return nil }

type dir struct {
	fsys  *FS
	name  string
	obj   fs.ReadDirFile
	list  []fs.DirEntry
	lseek int
}

func (d *dir) Stat() (fs.FileInfo, error) { return d.obj.Stat() }
func (d *dir) Close() error               { return d.obj.Close() }
func (d *dir) Read(p []byte) (int, error) {
	return 0, &fs.PathError{Op: "read", Path: d.name, Err: errIsDir}
}

// decodeFailed reports a virtual file that could not be produced.
func decodeFailed(name string, err error) {
	slog.Warn("decodeError", "path", name, "err", err)
}
