// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
)

func dumpFS(fsys fs.FS) {
	const tfmt = "2006-01-02T15:04:05"
	fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			fmt.Printf("%#v\n    dump error: %s\n", p, err.Error())
			return nil
		}
		fmt.Printf("%#v\n", p)
		i, err := d.Info()
		if err != nil {
			fmt.Printf("    dump error: %s\n", err.Error())
			return fs.SkipDir
		}

		fmt.Printf("    %v size=%d modtime=%s\n",
			i.Mode(), i.Size(), i.ModTime().Format(tfmt))

		if src, _, ok := strings.Cut(p, Special); ok {
			slog.Info("entry", "path", p, "source", src, "size", i.Size())
		}
		return nil
	})
}
