// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package main

import (
	"errors"
	"io/fs"
	"log/slog"
	gopath "path"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/elliotnunn/datinflate/inflate"
	"github.com/elliotnunn/datinflate/internal/blobcache"
	"github.com/elliotnunn/datinflate/internal/store"
)

// Special marks a virtual file holding the decoded content of the file
// named before it. Textures that can be rendered also get Special+".png".
const (
	Special   = "◆"
	pngSuffix = ".png"
)

type kind byte

const (
	kindNone kind = iota
	kindDat
	kindTexture
	kindPNG
)

func (k kind) String() string {
	switch k {
	case kindDat:
		return "dat"
	case kindTexture:
		return "texture"
	case kindPNG:
		return "png"
	}
	return "none"
}

type FS struct {
	root    fs.FS
	pattern string

	eMu     sync.RWMutex
	entries map[string]*entry // nonexistent or probed pointer

	cache *blobcache.Cache
	db    *store.Store // nil when there is no persistent cache
}

// if not present in the map, the file has not yet been probed
type entry struct {
	lock   sync.Mutex
	probed bool
	kind   kind
	header inflate.TextureHeader // textures only
}

// Wrapper presents fsys with a decoded sibling beside every file that
// matches pattern and holds a compressed entry. db may be nil.
func Wrapper(fsys fs.FS, pattern string, db *store.Store) *FS {
	return &FS{
		root:    fsys,
		pattern: pattern,
		entries: make(map[string]*entry),
		cache:   blobcache.New(memLimit),
		db:      db,
	}
}

// getEntry probes a file of the underlying FS, once.
func (fsys *FS) getEntry(name string) *entry {
	if !fsys.matches(name) {
		return &entry{probed: true}
	}

	fsys.eMu.RLock()
	e, ok := fsys.entries[name]
	fsys.eMu.RUnlock()
	if !ok {
		fsys.eMu.Lock()
		e, ok = fsys.entries[name]
		if !ok {
			e = new(entry)
			fsys.entries[name] = e
		}
		fsys.eMu.Unlock()
	}

	e.lock.Lock()
	defer e.lock.Unlock()
	if !e.probed {
		k, h, err := fsys.probe(name)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("entryProbeError", "path", name, "err", err)
		}
		e.kind, e.header, e.probed = k, h, true
	}
	return e
}

func (fsys *FS) matches(name string) bool {
	ok, _ := doublestar.Match(fsys.pattern, name)
	return ok
}

// offers reports which virtual files sit beside a probed entry.
func (e *entry) offers() []kind {
	switch e.kind {
	case kindDat:
		return []kind{kindDat}
	case kindTexture:
		if pngSupported(e.header.FourCC) {
			return []kind{kindTexture, kindPNG}
		}
		return []kind{kindTexture}
	}
	return nil
}

func virtualName(src string, k kind) string {
	if k == kindPNG {
		return src + Special + pngSuffix
	}
	return src + Special
}

// splitVirtual undoes virtualName. It does not check that the source exists.
func splitVirtual(name string) (src string, png bool, ok bool) {
	base := gopath.Base(name)
	switch {
	case len(base) > len(Special+pngSuffix) && base[len(base)-len(Special+pngSuffix):] == Special+pngSuffix:
		return name[:len(name)-len(Special+pngSuffix)], true, true
	case len(base) > len(Special) && base[len(base)-len(Special):] == Special:
		return name[:len(name)-len(Special)], false, true
	}
	return "", false, false
}

// virtual resolves the name of a virtual file to its source and kind.
func (fsys *FS) virtual(name string) (src string, k kind, err error) {
	src, png, ok := splitVirtual(name)
	if !ok {
		return "", kindNone, nil
	}
	e := fsys.getEntry(src)
	for _, offered := range e.offers() {
		if png == (offered == kindPNG) {
			return src, offered, nil
		}
	}
	return "", kindNone, fs.ErrNotExist
}
