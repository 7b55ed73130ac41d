// Copyright (c) Elliot Nunn
// Licensed under the MIT license

//go:build !unix

package mapfile

import "os"

func mapOS(f *os.File) (*Mapping, error) {
	return nil, ErrNotOS
}
