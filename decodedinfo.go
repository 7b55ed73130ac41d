// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package main

import (
	"io/fs"
	"time"
)

type decodedInfo struct {
	name  string
	size  int64
	mtime time.Time
}

func (de *decodedInfo) Name() string { // FileInfo + DirEntry
	return de.name
}

func (de *decodedInfo) IsDir() bool { // FileInfo + DirEntry
	return false
}

func (de *decodedInfo) Type() fs.FileMode { // DirEntry
	return 0
}

func (de *decodedInfo) Info() (fs.FileInfo, error) { // DirEntry
	return de, nil
}

func (de *decodedInfo) Size() int64 { // FileInfo
	return de.size
}

func (de *decodedInfo) Mode() fs.FileMode { // FileInfo
	return 0o444 // never writable
}

func (de *decodedInfo) ModTime() time.Time { // FileInfo
	return de.mtime
}

func (de *decodedInfo) Sys() any { // FileInfo
	return nil
}
