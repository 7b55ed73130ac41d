// Copyright (c) Elliot Nunn
// Licensed under the MIT license

//go:build unix

package mapfile

import (
	"fmt"
	"math"
	"os"

	"golang.org/x/sys/unix"
)

func mapOS(f *os.File) (*Mapping, error) {
	inf, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := inf.Size()
	switch {
	case !inf.Mode().IsRegular():
		return nil, ErrNotOS
	case size == 0: // mmap refuses empty files
		return &Mapping{Data: []byte{}}, nil
	case size > math.MaxInt:
		return nil, fmt.Errorf("mapfile: %s is too large to map", f.Name())
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mapfile: %w", err)
	}
	return &Mapping{Data: data, unmap: unix.Munmap}, nil
}
