// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package inflate

import "fmt"

const (
	datMaxSymbols = 285 // 256 literals and 29 copy-size codes
	datEndOfSize  = 28  // copy-size code meaning exactly 0xFF
)

// A token costs at least one bit for a literal, or two for a copy of at most
// 0xFF+16 bytes, and the cursor reads one zero word past the end.
const maxBytesPerBit = (0xff + 16 + 1) / 2

func maxDatOutput(inputLen int) uint64 {
	return maxBytesPerBit * (8*uint64(inputLen) + 32)
}

type datDecoder struct {
	c        *cursor
	out      []byte
	pos      int
	constAdd uint32

	b        *builder
	symbols  tree
	distance tree
}

// Dat decompresses a .dat archive stream.
//
// The result is at most outputSize bytes long, or the size the stream
// declares when outputSize is 0. A declared size larger than the input
// could ever expand to is not allocated in full. If output is non-nil the result is written
// into it, and it must be large enough. The result may be shorter than
// requested if the stream ends early.
func Dat(input []byte, outputSize uint32, output []byte) ([]byte, error) {
	if err := checkArgs(input, outputSize, output); err != nil {
		return nil, err
	}
	Init()

	c := newCursor(input)
	if _, err := c.take(32); err != nil { // unused leading word
		return nil, err
	}
	size, err := c.take(32)
	if err != nil {
		return nil, err
	}
	if outputSize != 0 && size > outputSize {
		size = outputSize
	}
	size = uint32(min(uint64(size), maxDatOutput(len(input))))

	out, err := outputBuffer(output, size)
	if err != nil {
		return nil, err
	}

	d := &datDecoder{c: c, out: out, b: newBuilder(datMaxSymbols)}
	if err := d.run(); err != nil {
		return nil, err
	}
	return out[:d.pos], nil
}

func (d *datDecoder) run() error {
	if err := d.c.need(8); err != nil {
		return err
	}
	if err := d.c.drop(4); err != nil {
		return err
	}
	add, err := d.c.take(4)
	if err != nil {
		return err
	}
	d.constAdd = add + 1

	for d.pos < len(d.out) {
		ok, err := d.readTree(&d.symbols)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		if _, err := d.readTree(&d.distance); err != nil {
			return err
		}

		n, err := d.c.take(4)
		if err != nil {
			return err
		}
		tokens := (n + 1) << 12
		for ; tokens > 0 && d.pos < len(d.out); tokens-- {
			if err := d.token(); err != nil {
				return err
			}
		}
	}
	return nil
}

// readTree reads a Huffman tree description and reports whether the tree
// has any symbols.
//
// Symbols are described from the highest down. Each dictionary code packs a
// code length in its low 5 bits and a repeat count less one above them; a
// length of 0 skips that many symbols.
func (d *datDecoder) readTree(t *tree) (bool, error) {
	n, err := d.c.take(16)
	if err != nil {
		return false, err
	}
	if n > datMaxSymbols {
		return false, fmt.Errorf("%w: tree of %d symbols", ErrInvalidInput, n)
	}

	d.b.reset()
	remaining := int(n) - 1
	for remaining >= 0 {
		code, err := datDictionary.read(d.c)
		if err != nil {
			return false, err
		}
		length := uint8(code & 0x1f)
		count := int(code>>5) + 1
		if length == 0 {
			remaining -= count
			continue
		}
		for ; count > 0; count-- {
			if remaining < 0 {
				return false, fmt.Errorf("%w: tree description runs past symbol 0", ErrCorrupt)
			}
			if err := d.b.add(uint16(remaining), length); err != nil {
				return false, err
			}
			remaining--
		}
	}

	if err := d.b.build(t); err != nil {
		return false, err
	}
	return !t.empty, nil
}

func (d *datDecoder) token() error {
	sym, err := d.symbols.read(d.c)
	if err != nil {
		return err
	}
	if sym < 0x100 {
		d.out[d.pos] = byte(sym)
		d.pos++
		return nil
	}

	var size uint32
	if code := uint32(sym - 0x100); code == datEndOfSize {
		size = 0xff
	} else if size, err = d.bucketed(code, 4, 7); err != nil {
		return err
	}
	size += d.constAdd

	code, err := d.distance.read(d.c)
	if err != nil {
		return err
	}
	offset, err := d.bucketed(uint32(code), 2, 17)
	if err != nil {
		return err
	}
	offset++
	if uint64(offset) > uint64(d.pos) {
		return fmt.Errorf("%w: copy from %d bytes back at output position %d", ErrCorrupt, offset, d.pos)
	}

	// byte at a time, the source may overlap the destination
	from := d.pos - int(offset)
	for ; size > 0 && d.pos < len(d.out); size-- {
		d.out[d.pos] = d.out[from]
		d.pos++
		from++
	}
	return nil
}

// bucketed expands a copy-size or offset code. Codes below width stand for
// themselves. Above that each bucket of width codes doubles the base value
// and is followed by bucket-1 extra bits.
func (d *datDecoder) bucketed(code, width, buckets uint32) (uint32, error) {
	q, r := code/width, code%width
	if q == 0 {
		return code, nil
	}
	if q >= buckets {
		return 0, fmt.Errorf("%w: code %d out of range", ErrCorrupt, code)
	}
	v := (uint32(1) << (q - 1)) * (width + r)
	if q > 1 {
		extra, err := d.c.take(uint8(q - 1))
		if err != nil {
			return 0, err
		}
		v |= extra
	}
	return v, nil
}
