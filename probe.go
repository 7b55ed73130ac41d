// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"io/fs"

	"github.com/elliotnunn/datinflate/inflate"
	"github.com/elliotnunn/datinflate/internal/mapfile"
	"github.com/therootcompany/xz"
)

// A .dat stream has no magic number, so one is only believed if its
// declared size is plausible and it decodes in full.
const maxExpansion = 1024

const xzMagic = "\xfd7zXZ\x00"

var errNotRegular = fmt.Errorf("not a regular file: %w", fs.ErrNotExist)

func (fsys *FS) probe(name string) (kind, inflate.TextureHeader, error) {
	input, release, err := fsys.input(name)
	if err != nil {
		return kindNone, inflate.TextureHeader{}, err
	}
	defer release()

	if inflate.IsTextureMagic(input) {
		h, err := inflate.ParseTextureHeader(input)
		if err != nil {
			return kindNone, h, err
		}
		if _, err := inflate.LookupFormat(h.FourCC); err != nil {
			return kindNone, h, err
		}
		return kindTexture, h, nil
	}

	if len(input) < 8 {
		return kindNone, inflate.TextureHeader{}, nil
	}
	declared := binary.LittleEndian.Uint32(input[4:])
	if declared == 0 || uint64(declared) > maxExpansion*uint64(len(input)) {
		return kindNone, inflate.TextureHeader{}, nil
	}
	out, err := fsys.decodedFrom(name, kindDat, input)
	if err != nil || uint32(len(out)) != declared {
		return kindNone, inflate.TextureHeader{}, nil // just not an entry
	}
	return kindDat, inflate.TextureHeader{}, nil
}

// input returns the whole content of a file, unwrapped if it is xz
// compressed. The content is only valid until release is called.
func (fsys *FS) input(name string) (data []byte, release func(), err error) {
	f, err := fsys.root.Open(name)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	if st, err := f.Stat(); err != nil {
		return nil, nil, err
	} else if !st.Mode().IsRegular() {
		return nil, nil, errNotRegular
	}

	m, err := mapfile.Open(f)
	if err != nil {
		return nil, nil, err
	}
	if !bytes.HasPrefix(m.Data, []byte(xzMagic)) {
		return m.Data, func() { m.Close() }, nil
	}

	defer m.Close()
	r, err := xz.NewReader(bytes.NewReader(m.Data), xz.DefaultDictMax)
	if err != nil {
		return nil, nil, fmt.Errorf("xz: %w", err)
	}
	data, err = io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("xz: %w", err)
	}
	return data, func() {}, nil
}
