// Copyright (c) Elliot Nunn
// Licensed under the MIT license

// Package mapfile gives read-only access to the whole content of a file,
// memory-mapping it where the platform allows.
package mapfile

import (
	"errors"
	"io"
	"io/fs"
	"os"
)

var ErrNotOS = errors.New("not an OS file")

// A Mapping holds a file's content until Close.
type Mapping struct {
	Data   []byte
	unmap  func([]byte) error
	closed bool
}

func (m *Mapping) Close() error {
	if m.closed {
		return nil
	}
	m.closed = true
	if m.unmap == nil {
		m.Data = nil
		return nil
	}
	err := m.unmap(m.Data)
	m.Data = nil
	return err
}

// Open maps the file if it is an OS file, and otherwise reads it into memory.
func Open(f fs.File) (*Mapping, error) {
	if osf, ok := f.(*os.File); ok {
		m, err := mapOS(osf)
		if err == nil {
			return m, nil
		} else if !errors.Is(err, ErrNotOS) {
			return nil, err
		}
	}
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &Mapping{Data: data}, nil
}
