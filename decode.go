// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package main

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"log/slog"

	"github.com/elliotnunn/datinflate/inflate"
	"github.com/elliotnunn/datinflate/internal/bcn"
	"github.com/elliotnunn/datinflate/internal/blobcache"
	"github.com/elliotnunn/datinflate/internal/store"
)

// decoded returns the content of a virtual file. The result is shared and
// must not be modified.
func (fsys *FS) decoded(src string, k kind) ([]byte, error) {
	input, release, err := fsys.input(src)
	if err != nil {
		return nil, err
	}
	defer release()
	return fsys.decodedFrom(src, k, input)
}

// decodedFrom looks in memory, then on disk, before decoding input.
func (fsys *FS) decodedFrom(src string, k kind, input []byte) ([]byte, error) {
	key := blobcache.KeyOf(byte(k), input)
	if out, ok := fsys.cache.Get(key); ok {
		return out, nil
	}

	if fsys.db != nil {
		out, err := fsys.db.Get(key.Bytes())
		if err == nil {
			fsys.cache.Add(key, out)
			return out, nil
		} else if !errors.Is(err, store.ErrNotFound) {
			slog.Warn("cacheError", "path", src, "err", err)
		}
	}

	out, err := decode(k, input)
	if err != nil {
		return nil, err
	}
	slog.Debug("decoded", "path", src, "kind", k, "in", len(input), "out", len(out))

	fsys.cache.Add(key, out)
	if fsys.db != nil {
		if err := fsys.db.Put(key.Bytes(), out); err != nil {
			slog.Warn("cacheError", "path", src, "err", err)
		}
	}
	return out, nil
}

func decode(k kind, input []byte) ([]byte, error) {
	switch k {
	case kindDat:
		return inflate.Dat(input, 0, nil)
	case kindTexture:
		return inflate.Texture(input, 0, nil)
	case kindPNG:
		h, err := inflate.ParseTextureHeader(input)
		if err != nil {
			return nil, err
		}
		pix, err := inflate.Texture(input, 0, nil)
		if err != nil {
			return nil, err
		}
		img, err := bcn.Decode(h.FourCC, int(h.Width), int(h.Height), pix)
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("nothing to decode for kind %v", k)
}

func pngSupported(fcc inflate.FourCC) bool { return bcn.Supported(fcc) }
