// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package main

import (
	"log/slog"
	"math"
	"os"
	"strconv"
)

var (
	memLimit   int        = calcMemLimit()
	cacheDir   string     = os.Getenv("DATINFLATE_CACHE")
	listenAddr string     = calcListenAddr()
	logLevel   slog.Level = calcLogLevel()
)

func calcMemLimit() int {
	if e := os.Getenv("DATINFLATE_GB"); e != "" {
		f, err := strconv.ParseFloat(e, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
			panic("malformed DATINFLATE_GB environment variable, should be a number of gigabytes: " + e)
		}
		return int(f * 1024 * 1024 * 1024)
	}
	return 1024 * 1024 * 1024 // fall back on 1GiB
}

// An empty address means dump the tree and exit.
func calcListenAddr() string {
	if e, ok := os.LookupEnv("DATINFLATE_ADDR"); ok {
		return e
	}
	return ":1993"
}

func calcLogLevel() slog.Level {
	var l slog.Level
	if e := os.Getenv("DATINFLATE_LOG"); e != "" {
		if err := l.UnmarshalText([]byte(e)); err != nil {
			panic("malformed DATINFLATE_LOG environment variable, should be debug, info, warn or error: " + e)
		}
	}
	return l
}
