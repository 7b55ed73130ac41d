// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package inflate

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Compression flags of a texture chunk, one per optional pass.
const (
	compressWhiteColor  = 0x01
	compressConstAlpha4 = 0x02
	compressConstAlpha8 = 0x04
	compressPlainColor  = 0x08
)

// Written over the first 8 bytes of a block that decodes as opaque white.
// In two-component formats that is the alpha half only.
const whiteBlock = 0xfffffffffffffffe

type textureDecoder struct {
	c   *cursor
	f   Format
	g   Geometry
	out []byte

	// per pixel block, set once a pass has written it
	alpha []bool
	color []bool
}

// Texture decompresses a whole texture file: a 4-byte magic, the FourCC,
// width and height, then the first compressed chunk.
//
// outputSize and output behave as for [Dat]. The decoded size is fixed by the
// image geometry, so a smaller outputSize returns a prefix of the image.
func Texture(input []byte, outputSize uint32, output []byte) ([]byte, error) {
	if err := checkArgs(input, outputSize, output); err != nil {
		return nil, err
	}
	h, err := ParseTextureHeader(input)
	if err != nil {
		return nil, err
	}
	return decodeTexture(input, TextureHeaderSize/4, h.FourCC, h.Width, h.Height, outputSize, output)
}

// TextureBlock decompresses one chunk of a texture whose format and
// dimensions are already known, such as a single mip level. The input
// starts at the chunk header.
func TextureBlock(input []byte, fcc FourCC, width, height uint16, outputSize uint32, output []byte) ([]byte, error) {
	if err := checkArgs(input, outputSize, output); err != nil {
		return nil, err
	}
	return decodeTexture(input, 0, fcc, width, height, outputSize, output)
}

func decodeTexture(input []byte, start uint32, fcc FourCC, width, height uint16, outputSize uint32, output []byte) ([]byte, error) {
	f, err := LookupFormat(fcc)
	if err != nil {
		return nil, err
	}
	Init()

	g := f.Geometry(width, height)
	if g.Size() > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %dx%d %v image is %d bytes", ErrInvalidInput, width, height, fcc, g.Size())
	}
	full := uint32(g.Size())
	size := full
	if outputSize != 0 && outputSize < size {
		size = outputSize
	}
	out, err := outputBuffer(output, size)
	if err != nil {
		return nil, err
	}
	work := out
	if size < full {
		work = make([]byte, full)
	}

	c := newCursor(input)
	c.pos = start
	t := &textureDecoder{
		c:     c,
		f:     f,
		g:     g,
		out:   work,
		alpha: make([]bool, g.PixelBlocks),
		color: make([]bool, g.PixelBlocks),
	}
	if err := t.run(); err != nil {
		return nil, err
	}
	if size < full {
		copy(out, work)
	}
	return out, nil
}

func (t *textureDecoder) run() error {
	t.c.reset()
	if _, err := t.c.take(32); err != nil { // data size, implied by the geometry
		return err
	}
	flags, err := t.c.take(32)
	if err != nil {
		return err
	}

	if flags&compressWhiteColor != 0 {
		if err := t.whiteColor(); err != nil {
			return err
		}
	}
	if flags&compressConstAlpha4 != 0 {
		if err := t.constAlpha(4); err != nil {
			return err
		}
	}
	if flags&compressConstAlpha8 != 0 {
		if err := t.constAlpha(8); err != nil {
			return err
		}
	}
	if flags&compressPlainColor != 0 {
		if err := t.plainColor(); err != nil {
			return err
		}
	}

	t.c.rewind()
	t.rawFill()
	return nil
}

// nextRun visits the next count blocks not yet marked in resolved, starting
// at pos, then skips any resolved blocks after them. A run never extends
// past the last block.
func nextRun(resolved []bool, pos, count uint32, fn func(block uint32)) uint32 {
	n := uint32(len(resolved))
	for ; count > 0 && pos < n; pos++ {
		if !resolved[pos] {
			fn(pos)
			count--
		}
	}
	for pos < n && resolved[pos] {
		pos++
	}
	return pos
}

func (t *textureDecoder) runLength() (uint32, error) {
	code, err := textureDict.read(t.c)
	if err != nil {
		return 0, err
	}
	if code == 0 {
		return 0, fmt.Errorf("%w: zero-length run", ErrCorrupt)
	}
	return uint32(code), nil
}

// put writes the low n bytes of v at off, little-endian.
func (t *textureDecoder) put(off uint32, v uint64, n uint32) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	copy(t.out[off:off+min(n, 8)], b[:])
}

func (t *textureDecoder) whiteColor() error {
	bpb := t.g.BytesPerPixelBlock
	for pos := uint32(0); pos < t.g.PixelBlocks; {
		run, err := t.runLength()
		if err != nil {
			return err
		}
		set, err := t.c.take(1)
		if err != nil {
			return err
		}
		pos = nextRun(t.color, pos, run, func(i uint32) {
			if set == 1 {
				t.put(i*bpb, whiteBlock, bpb)
				t.alpha[i] = true
				t.color[i] = true
			}
		})
	}
	return nil
}

// constAlpha fills runs of alpha components with one value repeated at the
// given bit width.
func (t *textureDecoder) constAlpha(width uint8) error {
	a, err := t.c.take(width)
	if err != nil {
		return err
	}
	var value uint64
	if width == 4 {
		value = uint64(a) * 0x1111111111111111
	} else {
		value = uint64(a) | uint64(a)<<8
	}

	bpb, bpc := t.g.BytesPerPixelBlock, t.g.BytesPerComponent
	for pos := uint32(0); pos < t.g.PixelBlocks; {
		run, err := t.runLength()
		if err != nil {
			return err
		}
		if err := t.c.need(2); err != nil {
			return err
		}
		present := t.c.peek(1)
		if err := t.c.drop(1); err != nil {
			return err
		}
		nonZero := t.c.peek(1)
		if present == 1 {
			if err := t.c.drop(1); err != nil {
				return err
			}
		}

		v := value
		if nonZero == 0 {
			v = 0
		}
		pos = nextRun(t.alpha, pos, run, func(i uint32) {
			if present == 1 {
				t.put(i*bpb, v, bpc)
				t.alpha[i] = true
			}
		})
	}
	return nil
}

func (t *textureDecoder) plainColor() error {
	if err := t.c.need(24); err != nil {
		return err
	}
	var bgr [3]uint32
	for i := range bgr {
		bgr[i] = t.c.peek(8)
		if err := t.c.drop(8); err != nil {
			return err
		}
	}
	block := plainColorBlock(bgr[2], bgr[1], bgr[0])

	bpb := t.g.BytesPerPixelBlock
	var base uint32
	if t.g.TwoComponents {
		base = t.g.BytesPerComponent
	}
	for pos := uint32(0); pos < t.g.PixelBlocks; {
		run, err := t.runLength()
		if err != nil {
			return err
		}
		set, err := t.c.take(1)
		if err != nil {
			return err
		}
		pos = nextRun(t.color, pos, run, func(i uint32) {
			if set == 1 {
				t.put(i*bpb+base, block, 8)
				t.color[i] = true
			}
		})
	}
	return nil
}

// rawFill copies stored words, in order, into every block half that no
// pass resolved. It stops quietly at the end of the input.
func (t *textureDecoder) rawFill() {
	flags := t.f.Flags
	bpb, bpc := t.g.BytesPerPixelBlock, t.g.BytesPerComponent

	if flags&FlagAlpha != 0 && flags&FlagDeducedAlpha == 0 || flags&FlagBiColor != 0 {
		for i := range t.g.PixelBlocks {
			if t.alpha[i] {
				continue
			}
			if !t.rawWord(i * bpb) {
				return
			}
			if bpc > 4 && !t.rawWord(i*bpb+4) {
				return
			}
		}
	}

	if flags&FlagColor != 0 || flags&FlagBiColor != 0 {
		var base uint32
		if t.g.TwoComponents {
			base = bpc
		}
		for i := range t.g.PixelBlocks {
			if !t.color[i] && !t.rawWord(i*bpb+base) {
				return
			}
		}
		if bpc > 4 {
			for i := range t.g.PixelBlocks {
				if !t.color[i] && !t.rawWord(i*bpb+base+4) {
					return
				}
			}
		}
	}
}

func (t *textureDecoder) rawWord(off uint32) bool {
	w, ok := t.c.rawWord()
	if ok {
		binary.LittleEndian.PutUint32(t.out[off:], w)
	}
	return ok
}
