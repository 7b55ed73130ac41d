// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/elliotnunn/datinflate/inflate"
	"github.com/elliotnunn/datinflate/internal/store"
)

const usage = "usage: datinflate DIR [PATTERN]"

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	if len(os.Args) < 2 || len(os.Args) > 3 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	pattern := "**"
	if len(os.Args) == 3 {
		pattern = os.Args[2]
		if !doublestar.ValidatePattern(pattern) {
			fmt.Fprintf(os.Stderr, "bad pattern %q\n%s\n", pattern, usage)
			os.Exit(2)
		}
	}

	if err := run(os.Args[1], pattern); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(base, pattern string) error {
	inflate.Init()

	var db *store.Store
	if cacheDir != "" {
		var err error
		db, err = store.Open(cacheDir)
		if err != nil {
			return err
		}
		defer db.Close()
	}

	abstract := Wrapper(os.DirFS(base), pattern, db)
	if listenAddr == "" {
		abstract.Prefetch()
		dumpFS(abstract)
		return nil
	}

	slog.Info("listening", "addr", listenAddr, "dir", base, "pattern", pattern)
	return http.ListenAndServe(listenAddr, http.FileServerFS(abstract))
}
