// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package inflate

import "fmt"

const (
	hashBits    = 8  // codes this short are resolved with one table lookup
	maxCodeBits = 32 // a code must fit in the cursor's head
)

// A builder collects (symbol, code length) pairs. The symbols sharing a
// length form a singly linked list threaded through next, newest first.
type builder struct {
	head  [maxCodeBits + 1]int32 // first symbol of each length, or -1
	next  []int32                // following symbol of the same length, or -1
	added []bool
	count int
}

func newBuilder(maxSymbols int) *builder {
	b := &builder{
		next:  make([]int32, maxSymbols),
		added: make([]bool, maxSymbols),
	}
	b.reset()
	return b
}

func (b *builder) reset() {
	for i := range b.head {
		b.head[i] = -1
	}
	clear(b.added)
	b.count = 0
}

func (b *builder) add(symbol uint16, length uint8) error {
	if length == 0 || length > maxCodeBits {
		return fmt.Errorf("%w: code length %d", ErrInvalidInput, length)
	}
	if int(symbol) >= len(b.next) {
		return fmt.Errorf("%w: symbol %#x exceeds maximum %#x", ErrInvalidInput, symbol, len(b.next)-1)
	}
	if b.added[symbol] {
		return fmt.Errorf("%w: symbol %#x added twice", ErrInvalidInput, symbol)
	}
	b.next[symbol] = b.head[length]
	b.head[length] = int32(symbol)
	b.added[symbol] = true
	b.count++
	return nil
}

// build assigns canonical codes and compiles them into t.
//
// Lengths are visited shortest first and codes are handed out downward from
// all-ones, so a longer code is always numerically below every shorter one
// once both are left-aligned. Codes of hashBits or less fill every hash slot
// they prefix. Longer codes get one threshold per length: the smallest
// left-aligned code of that length.
func (b *builder) build(t *tree) error {
	t.reset()
	if b.count == 0 {
		t.empty = true
		return nil
	}

	code := int64(0)
	for length := 1; length <= maxCodeBits; length++ {
		code = code<<1 | 1
		sym := b.head[length]
		if sym < 0 {
			continue
		}

		for ; sym >= 0; sym = b.next[sym] {
			if code < 0 {
				return fmt.Errorf("%w: over-subscribed code lengths at %d bits", ErrCorrupt, length)
			}
			if length <= hashBits {
				lo := uint32(code) << (hashBits - length)
				hi := uint32(code+1) << (hashBits - length)
				for h := lo; h < hi; h++ {
					t.hashSymbol[h] = uint16(sym)
					t.hashLength[h] = uint8(length)
				}
			} else {
				t.symbols = append(t.symbols, uint16(sym))
			}
			code--
		}

		if length > hashBits {
			t.threshold[t.nlong] = uint32(code+1) << (32 - length)
			t.length[t.nlong] = uint8(length)
			t.offset[t.nlong] = int32(len(t.symbols) - 1)
			t.nlong++
		}
	}
	return nil
}

// A tree is a compiled canonical Huffman code.
type tree struct {
	empty bool

	hashSymbol [1 << hashBits]uint16
	hashLength [1 << hashBits]uint8 // 0 means the code is longer than hashBits

	// one entry per populated length above hashBits, shortest first
	threshold [maxCodeBits]uint32
	length    [maxCodeBits]uint8
	offset    [maxCodeBits]int32 // index in symbols of the smallest code of the length
	nlong     int

	symbols []uint16 // long-code symbols, descending code within each length
}

func (t *tree) reset() {
	t.empty = false
	clear(t.hashLength[:])
	t.nlong = 0
	t.symbols = t.symbols[:0]
}

// read decodes one symbol.
func (t *tree) read(c *cursor) (uint16, error) {
	if t.empty {
		return 0, fmt.Errorf("%w: read from an empty Huffman tree", ErrCorrupt)
	}
	if err := c.need(32); err != nil {
		return 0, err
	}

	h := c.peek(hashBits)
	if n := t.hashLength[h]; n != 0 {
		return t.hashSymbol[h], c.drop(n)
	}

	window := c.peek(32)
	for i := range t.nlong {
		if window < t.threshold[i] {
			continue
		}
		n := t.length[i]
		idx := t.offset[i] - int32((window-t.threshold[i])>>(32-n))
		if idx < 0 {
			break
		}
		return t.symbols[idx], c.drop(n)
	}
	return 0, fmt.Errorf("%w: no Huffman code matches %#08x", ErrCorrupt, window)
}
