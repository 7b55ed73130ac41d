// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package inflate

import (
	"encoding/binary"
	"fmt"
)

// The archive stores its payloads in 64 KiB chunks whose last word is not
// part of the stream.
const skipStride = 0x4000

// cursor reads a sequence of little-endian 32-bit words, most significant
// bit first. head holds the next 32 bits of the stream, buffer the bits
// pulled beyond those, and bits counts both.
type cursor struct {
	input  []byte
	size   uint32 // in words
	pos    uint32 // in words
	stride uint32

	head   uint32
	buffer uint32
	bits   uint8

	// set by the single pull that is allowed past the end of input
	exhausted bool
}

func newCursor(input []byte) *cursor {
	return &cursor{
		input:  input,
		size:   uint32(len(input) / 4),
		stride: skipStride,
	}
}

func (c *cursor) word(i uint32) uint32 {
	return binary.LittleEndian.Uint32(c.input[4*i:])
}

// pull appends one word from the input to the bits already held.
// The decoders look ahead up to 32 bits before they know the stream has
// ended, so one pull past the end yields a zero word.
func (c *cursor) pull() error {
	if c.bits >= 32 {
		return fmt.Errorf("%w: pull with %d bits already held", ErrInvalidInput, c.bits)
	}
	if c.stride != 0 && (c.pos+1)%c.stride == 0 {
		c.pos++
	}

	var value uint32
	if c.pos >= c.size {
		if c.exhausted {
			return fmt.Errorf("%w: read past end of input at word %d", ErrTruncated, c.pos)
		}
		c.exhausted = true
	} else {
		value = c.word(c.pos)
	}

	if c.bits == 0 {
		c.head, c.buffer = value, 0
	} else {
		c.head |= value >> c.bits
		c.buffer = value << (32 - c.bits)
	}
	c.bits += 32
	c.pos++
	return nil
}

// need makes sure at least n bits are held.
func (c *cursor) need(n uint8) error {
	if n > 32 {
		return fmt.Errorf("%w: need %d bits", ErrInvalidInput, n)
	}
	if c.bits < n {
		return c.pull()
	}
	return nil
}

// peek returns the next n bits without consuming them. n must be at most 32
// and not more than a preceding need asked for.
func (c *cursor) peek(n uint8) uint32 {
	return c.head >> (32 - n)
}

func (c *cursor) drop(n uint8) error {
	if n > 32 {
		return fmt.Errorf("%w: drop %d bits", ErrInvalidInput, n)
	}
	if n > c.bits {
		return fmt.Errorf("%w: drop %d bits with %d held", ErrInvalidInput, n, c.bits)
	}
	if n == 32 {
		c.head, c.buffer = c.buffer, 0
	} else {
		c.head = c.head<<n | c.buffer>>(32-n)
		c.buffer <<= n
	}
	c.bits -= n
	return nil
}

// take consumes and returns the next n bits.
func (c *cursor) take(n uint8) (uint32, error) {
	if err := c.need(n); err != nil {
		return 0, err
	}
	v := c.peek(n)
	return v, c.drop(n)
}

// reset forgets the bits held without moving the word position.
func (c *cursor) reset() {
	c.head, c.buffer, c.bits = 0, 0, 0
}

// rewind returns a fully buffered word to the input so that rawWord
// reads it again.
func (c *cursor) rewind() {
	if c.bits >= 32 {
		c.pos--
	}
}

// rawWord reads the word at the current position, bypassing the bit buffer
// and the skip stride.
func (c *cursor) rawWord() (uint32, bool) {
	if c.pos >= c.size {
		return 0, false
	}
	w := c.word(c.pos)
	c.pos++
	return w, true
}
