// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package inflate

import (
	"encoding/binary"
	"fmt"
)

// A FourCC is a four-character format tag stored little-endian, so that
// its bytes read in order in the file.
type FourCC uint32

func MakeFourCC(s string) FourCC {
	var b [4]byte
	copy(b[:], s)
	return FourCC(binary.LittleEndian.Uint32(b[:]))
}

func (f FourCC) String() string {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(f))
	for _, c := range b {
		if c < 0x20 || c > 0x7e {
			return fmt.Sprintf("0x%08x", uint32(f))
		}
	}
	return string(b[:])
}

// Format flags
const (
	FlagColor         = 0x10
	FlagAlpha         = 0x20
	FlagDeducedAlpha  = 0x40 // alpha is implied by the colour block (DXT1)
	FlagPlain         = 0x80
	FlagBiColor       = 0x200 // two colour channels, no alpha (3DCX)
	FlagNormalMap     = 0x8000000
	componentFlagMask = FlagPlain | FlagColor | FlagAlpha
)

var (
	FourCCDXT1 = MakeFourCC("DXT1")
	FourCCDXT2 = MakeFourCC("DXT2")
	FourCCDXT3 = MakeFourCC("DXT3")
	FourCCDXT4 = MakeFourCC("DXT4")
	FourCCDXT5 = MakeFourCC("DXT5")
	FourCCDXTN = MakeFourCC("DXTN")
	FourCCDXTL = MakeFourCC("DXTL")
	FourCCDXTA = MakeFourCC("DXTA")
	FourCC3DCX = MakeFourCC("3DCX")
)

// Format describes how a block-compressed texture format lays out its
// pixel blocks.
type Format struct {
	FourCC       FourCC
	Flags        uint32
	BitsPerPixel uint32
}

var formats = []Format{
	{FourCCDXT1, FlagColor | FlagAlpha | FlagDeducedAlpha, 4},
	{FourCCDXT2, FlagColor | FlagAlpha | FlagPlain, 8},
	{FourCCDXT3, FlagColor | FlagAlpha | FlagPlain, 8},
	{FourCCDXT4, FlagColor | FlagAlpha | FlagPlain, 8},
	{FourCCDXT5, FlagColor | FlagAlpha | FlagPlain, 8},
	{FourCCDXTN, FlagNormalMap | FlagColor | FlagAlpha | FlagPlain, 8},
	{FourCCDXTL, FlagColor | FlagAlpha | FlagPlain, 8},
	{FourCCDXTA, FlagAlpha | FlagPlain, 4},
	{FourCC3DCX, FlagBiColor, 8},
}

func LookupFormat(fcc FourCC) (Format, error) {
	for _, f := range formats {
		if f.FourCC == fcc {
			return f, nil
		}
	}
	return Format{}, fmt.Errorf("%w: texture format %v", ErrUnsupported, fcc)
}

// Geometry is the pixel-block layout of one image in a given format.
type Geometry struct {
	Width, Height      uint16
	PixelBlocks        uint32
	BytesPerPixelBlock uint32
	BytesPerComponent  uint32
	TwoComponents      bool // colour and alpha halves are stored separately
}

func (f Format) Geometry(width, height uint16) Geometry {
	g := Geometry{
		Width:              width,
		Height:             height,
		PixelBlocks:        ((uint32(width) + 3) / 4) * ((uint32(height) + 3) / 4),
		BytesPerPixelBlock: f.BitsPerPixel * 16 / 8,
		TwoComponents:      f.Flags&componentFlagMask == componentFlagMask || f.Flags&FlagBiColor != 0,
	}
	g.BytesPerComponent = g.BytesPerPixelBlock
	if g.TwoComponents {
		g.BytesPerComponent /= 2
	}
	return g
}

// Size is the decoded size of the image in bytes. The largest images of
// 16-byte block formats do not fit in 32 bits.
func (g Geometry) Size() uint64 {
	return uint64(g.PixelBlocks) * uint64(g.BytesPerPixelBlock)
}

// TextureHeaderSize is the length of the header that precedes the first
// chunk of a texture file.
const TextureHeaderSize = 12

type TextureHeader struct {
	Magic  [4]byte
	FourCC FourCC
	Width  uint16
	Height uint16
}

func ParseTextureHeader(input []byte) (TextureHeader, error) {
	if len(input) < TextureHeaderSize {
		return TextureHeader{}, fmt.Errorf("%w: texture header needs %d bytes, have %d", ErrTruncated, TextureHeaderSize, len(input))
	}
	var h TextureHeader
	copy(h.Magic[:], input)
	h.FourCC = FourCC(binary.LittleEndian.Uint32(input[4:]))
	h.Width = binary.LittleEndian.Uint16(input[8:])
	h.Height = binary.LittleEndian.Uint16(input[10:])
	return h, nil
}

var textureMagics = []string{"ATEX", "ATTX", "ATEC", "ATEP", "ATEU", "ATET"}

// IsTextureMagic reports whether the data starts like a texture file.
func IsTextureMagic(data []byte) bool {
	if len(data) < 4 {
		return false
	}
	for _, m := range textureMagics {
		if string(data[:4]) == m {
			return true
		}
	}
	return false
}
