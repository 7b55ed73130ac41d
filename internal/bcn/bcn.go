// Copyright (c) Elliot Nunn
// Licensed under the MIT license

// Package bcn converts block-compressed pixel data, as produced by the
// texture decoder, into ordinary images.
package bcn

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/elliotnunn/datinflate/inflate"
)

var (
	ErrUnsupported = errors.New("bcn: unsupported format")
	ErrShort       = errors.New("bcn: pixel data too short")
)

type decoder struct {
	blockSize int
	block     func(b []byte, px *[16]color.NRGBA)
}

var decoders = map[inflate.FourCC]decoder{
	inflate.FourCCDXT1: {8, dxt1},
	inflate.FourCCDXT2: {16, dxt3},
	inflate.FourCCDXT3: {16, dxt3},
	inflate.FourCCDXT4: {16, dxt5},
	inflate.FourCCDXT5: {16, dxt5},
	inflate.FourCCDXTN: {16, dxt5},
	inflate.FourCCDXTL: {16, dxt5},
	inflate.FourCCDXTA: {8, alphaOnly},
	inflate.FourCC3DCX: {16, normals},
}

// Supported reports whether Decode understands the format.
func Supported(fcc inflate.FourCC) bool {
	_, ok := decoders[fcc]
	return ok
}

// Decode expands pixel blocks stored row by row into an image. Blocks that
// overhang the right or bottom edge are cropped.
func Decode(fcc inflate.FourCC, width, height int, data []byte) (*image.NRGBA, error) {
	dec, ok := decoders[fcc]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnsupported, fcc)
	}
	bw, bh := (width+3)/4, (height+3)/4
	if need := bw * bh * dec.blockSize; len(data) < need {
		return nil, fmt.Errorf("%w: %v %dx%d needs %d bytes, have %d", ErrShort, fcc, width, height, need, len(data))
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	var px [16]color.NRGBA
	for by := range bh {
		for bx := range bw {
			dec.block(data[(by*bw+bx)*dec.blockSize:], &px)
			for i, c := range px {
				x, y := bx*4+i%4, by*4+i/4
				if x < width && y < height {
					img.SetNRGBA(x, y, c)
				}
			}
		}
	}
	return img, nil
}

func expand565(c uint16) color.NRGBA {
	r, g, b := c>>11, c>>5&0x3f, c&0x1f
	return color.NRGBA{
		R: uint8(r<<3 | r>>2),
		G: uint8(g<<2 | g>>4),
		B: uint8(b<<3 | b>>2),
		A: 0xff,
	}
}

func mix(a, b color.NRGBA, wa, wb, div int) color.NRGBA {
	return color.NRGBA{
		R: uint8((int(a.R)*wa + int(b.R)*wb) / div),
		G: uint8((int(a.G)*wa + int(b.G)*wb) / div),
		B: uint8((int(a.B)*wa + int(b.B)*wb) / div),
		A: 0xff,
	}
}

// colorBlock decodes the 8-byte colour half of a block. Only DXT1 may use
// the three-colour mode with a transparent fourth entry.
func colorBlock(b []byte, px *[16]color.NRGBA, threeColor bool) {
	c0, c1 := binary.LittleEndian.Uint16(b), binary.LittleEndian.Uint16(b[2:])
	idx := binary.LittleEndian.Uint32(b[4:])

	var pal [4]color.NRGBA
	pal[0], pal[1] = expand565(c0), expand565(c1)
	if threeColor && c0 <= c1 {
		pal[2] = mix(pal[0], pal[1], 1, 1, 2)
		pal[3] = color.NRGBA{}
	} else {
		pal[2] = mix(pal[0], pal[1], 2, 1, 3)
		pal[3] = mix(pal[0], pal[1], 1, 2, 3)
	}
	for i := range px {
		px[i] = pal[idx>>(2*i)&3]
	}
}

// channel decodes an 8-byte interpolated single-channel block (BC4).
func channel(b []byte) (out [16]uint8) {
	a0, a1 := int(b[0]), int(b[1])
	var pal [8]uint8
	pal[0], pal[1] = uint8(a0), uint8(a1)
	if a0 > a1 {
		for i := 1; i <= 6; i++ {
			pal[i+1] = uint8(((7-i)*a0 + i*a1) / 7)
		}
	} else {
		for i := 1; i <= 4; i++ {
			pal[i+1] = uint8(((5-i)*a0 + i*a1) / 5)
		}
		pal[6], pal[7] = 0, 0xff
	}

	var bits uint64
	for i := 7; i >= 2; i-- {
		bits = bits<<8 | uint64(b[i])
	}
	for i := range out {
		out[i] = pal[bits>>(3*i)&7]
	}
	return out
}

func dxt1(b []byte, px *[16]color.NRGBA) {
	colorBlock(b, px, true)
}

// explicit 4-bit alpha
func dxt3(b []byte, px *[16]color.NRGBA) {
	colorBlock(b[8:], px, false)
	alpha := binary.LittleEndian.Uint64(b)
	for i := range px {
		px[i].A = uint8(alpha>>(4*i)&0xf) * 0x11
	}
}

func dxt5(b []byte, px *[16]color.NRGBA) {
	colorBlock(b[8:], px, false)
	for i, a := range channel(b) {
		px[i].A = a
	}
}

func alphaOnly(b []byte, px *[16]color.NRGBA) {
	for i, a := range channel(b) {
		px[i] = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: a}
	}
}

// two channels hold X and Y of a unit normal, Z is recovered
func normals(b []byte, px *[16]color.NRGBA) {
	xs, ys := channel(b), channel(b[8:])
	for i := range px {
		x := float64(xs[i])/255*2 - 1
		y := float64(ys[i])/255*2 - 1
		z := math.Sqrt(max(0, 1-x*x-y*y))
		px[i] = color.NRGBA{R: xs[i], G: ys[i], B: uint8((z+1)/2*255 + 0.5), A: 0xff}
	}
}
