// Copyright (c) Elliot Nunn
// Licensed under the MIT license

// Package store persists decoded entries on disk so that they survive
// restarts.
package store

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble/v2"
)

// Bump when the meaning of stored values changes.
const version = "1"

var ErrNotFound = errors.New("store: not found")

// Store is safe for concurrent use by multiple goroutines.
type Store struct {
	db *pebble.DB
}

func Open(dir string) (*Store, error) {
	db, err := pebble.Open(dir, &pebble.Options{
		MaxOpenFiles: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func dbKey(key []byte) []byte {
	return append([]byte("v"+version+":"), key...)
}

// Get returns a copy of the value stored under key, or ErrNotFound.
func (s *Store) Get(key []byte) ([]byte, error) {
	dat, closer, err := s.db.Get(dbKey(key))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	ret := make([]byte, len(dat))
	copy(ret, dat)
	closer.Close()
	return ret, nil
}

// Put does not wait for the value to reach the disk. Losing it is harmless.
func (s *Store) Put(key, value []byte) error {
	return s.db.Set(dbKey(key), value, pebble.NoSync)
}
