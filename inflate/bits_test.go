// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package inflate

import "encoding/binary"

// bitWriter is the inverse of cursor: it packs bits most significant first
// into little-endian 32-bit words.
type bitWriter struct {
	words []uint32
	cur   uint32
	n     uint
}

func (w *bitWriter) write(v uint32, n uint) {
	for i := int(n) - 1; i >= 0; i-- {
		w.cur |= (v >> uint(i) & 1) << (31 - w.n)
		w.n++
		if w.n == 32 {
			w.words = append(w.words, w.cur)
			w.cur, w.n = 0, 0
		}
	}
}

func (w *bitWriter) code(c codeword) {
	w.write(c.code, uint(c.length))
}

// word starts a fresh word if needed and appends v whole.
func (w *bitWriter) word(v uint32) {
	w.flush()
	w.words = append(w.words, v)
}

func (w *bitWriter) flush() {
	if w.n > 0 {
		w.words = append(w.words, w.cur)
		w.cur, w.n = 0, 0
	}
}

// bytes returns the stream followed by pad zero words.
func (w *bitWriter) bytes(pad int) []byte {
	w.flush()
	b := make([]byte, 0, 4*(len(w.words)+pad))
	for _, v := range w.words {
		b = binary.LittleEndian.AppendUint32(b, v)
	}
	for range pad {
		b = binary.LittleEndian.AppendUint32(b, 0)
	}
	return b
}

type codeword struct {
	code   uint32
	length uint8
}

// codebook recovers the code assigned to every symbol of a compiled tree.
func codebook(t *tree) map[uint16]codeword {
	book := make(map[uint16]codeword)
	for h, n := range t.hashLength {
		if n == 0 {
			continue
		}
		book[t.hashSymbol[h]] = codeword{uint32(h) >> (hashBits - n), n}
	}
	prev := int32(-1)
	for i := range t.nlong {
		n := t.length[i]
		first := t.threshold[i] >> (32 - n)
		for k := int32(0); k < t.offset[i]-prev; k++ {
			book[t.symbols[t.offset[i]-k]] = codeword{first + uint32(k), n}
		}
		prev = t.offset[i]
	}
	return book
}
