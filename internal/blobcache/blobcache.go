// Copyright (c) Elliot Nunn
// Licensed under the MIT license

// Package blobcache keeps recently decoded entries in memory,
// admitting them by estimated frequency of use.
package blobcache

import (
	"encoding/binary"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/dgryski/go-tinylfu"
)

// A Key names decoded content by the kind of decoding and a digest of the
// input it was decoded from.
type Key struct {
	Kind byte
	Sum  uint64
}

func KeyOf(kind byte, input []byte) Key {
	return Key{Kind: kind, Sum: xxhash.Sum64(input)}
}

// Bytes is the key's stable 9-byte form, suitable for a disk index.
func (k Key) Bytes() []byte {
	b := make([]byte, 9)
	b[0] = k.Kind
	binary.BigEndian.PutUint64(b[1:], k.Sum)
	return b
}

// Entries are assumed to be about this size when dividing up the budget.
const typicalEntry = 256 << 10

// Cache is safe for concurrent use by multiple goroutines.
type Cache struct {
	mu       sync.Mutex
	lfu      *tinylfu.T[Key, []byte]
	maxEntry int
	resident int
}

// New returns a cache that holds roughly budget bytes.
func New(budget int) *Cache {
	n := max(budget/typicalEntry, 16)
	c := &Cache{maxEntry: max(budget/16, typicalEntry)}
	c.lfu = tinylfu.New[Key, []byte](n, n*10, hash, tinylfu.OnEvict(c.evict))
	return c
}

func hash(k Key) uint64 { return k.Sum ^ uint64(k.Kind)<<56 }

// called with mu held
func (c *Cache) evict(_ Key, v []byte) { c.resident -= len(v) }

// Get returns cached content. The caller must not modify it.
func (c *Cache) Get(k Key) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lfu.Get(k)
}

// Add offers content to the cache, which keeps it unless it is too large
// for the budget. The caller must not modify it afterwards.
func (c *Cache) Add(k Key, v []byte) {
	if len(v) > c.maxEntry {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.lfu.Get(k); ok {
		return
	}
	c.resident += len(v)
	c.lfu.Add(k, v)
}

// Resident is the total size of the content currently held.
func (c *Cache) Resident() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resident
}
