// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package inflate

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func le(words ...uint32) []byte {
	var b []byte
	for _, w := range words {
		b = binary.LittleEndian.AppendUint32(b, w)
	}
	return b
}

func TestGeometry(t *testing.T) {
	cases := []struct {
		fcc           FourCC
		w, h          uint16
		blocks, bpb   uint32
		bpc           uint32
		twoComponents bool
	}{
		{FourCCDXT1, 4, 4, 1, 8, 8, false},
		{FourCCDXT1, 5, 5, 4, 8, 8, false},
		{FourCCDXT3, 16, 8, 8, 16, 8, true},
		{FourCCDXT5, 1, 1, 1, 16, 8, true},
		{FourCCDXTN, 8, 4, 2, 16, 8, true},
		{FourCCDXTA, 4, 12, 3, 8, 8, false},
		{FourCC3DCX, 4, 4, 1, 16, 8, true},
		{FourCCDXT1, 0, 4, 0, 8, 8, false},
		{FourCCDXT1, 65535, 65535, 16384 * 16384, 8, 8, false},
		{FourCCDXT5, 65535, 65535, 16384 * 16384, 16, 8, true},
	}
	for _, tc := range cases {
		f, err := LookupFormat(tc.fcc)
		if err != nil {
			t.Fatal(err)
		}
		g := f.Geometry(tc.w, tc.h)
		if g.Size() != uint64(tc.blocks)*uint64(tc.bpb) {
			t.Errorf("%v %dx%d: size %d", tc.fcc, tc.w, tc.h, g.Size())
		}
		if g.PixelBlocks != tc.blocks || g.BytesPerPixelBlock != tc.bpb ||
			g.BytesPerComponent != tc.bpc || g.TwoComponents != tc.twoComponents {
			t.Errorf("%v %dx%d: got %+v", tc.fcc, tc.w, tc.h, g)
		}
	}
}

func TestLookupFormat(t *testing.T) {
	if _, err := LookupFormat(MakeFourCC("DXT9")); !errors.Is(err, ErrUnsupported) {
		t.Errorf("got %v, want ErrUnsupported", err)
	}
	if got := FourCCDXT5.String(); got != "DXT5" {
		t.Errorf("String: got %q", got)
	}
	if got := FourCC(1).String(); got != "0x00000001" {
		t.Errorf("String of unprintable: got %q", got)
	}
}

func TestParseTextureHeader(t *testing.T) {
	input := []byte("ATEXDXT5\x00\x02\x80\x00")
	h, err := ParseTextureHeader(input)
	if err != nil {
		t.Fatal(err)
	}
	if string(h.Magic[:]) != "ATEX" || h.FourCC != FourCCDXT5 || h.Width != 512 || h.Height != 128 {
		t.Errorf("got %+v", h)
	}
	if !IsTextureMagic(input) || IsTextureMagic([]byte("ATE")) || IsTextureMagic([]byte("PK\x03\x04")) {
		t.Error("IsTextureMagic")
	}
	if _, err := ParseTextureHeader(input[:11]); !errors.Is(err, ErrTruncated) {
		t.Errorf("short header: got %v, want ErrTruncated", err)
	}
}

func TestTextureRawOnly(t *testing.T) {
	cases := []struct {
		name string
		fcc  FourCC
		w, h uint16
		raw  []uint32
		want []uint32 // output words
	}{
		{"DXT1", FourCCDXT1, 4, 4,
			[]uint32{0x11111111, 0x22222222},
			[]uint32{0x11111111, 0x22222222}},
		{"3DCX", FourCC3DCX, 4, 4,
			[]uint32{1, 2, 3, 4},
			[]uint32{1, 2, 3, 4}},
		// alpha halves of both blocks, then colour low words, then colour high words
		{"DXT5", FourCCDXT5, 8, 4,
			[]uint32{1, 2, 3, 4, 5, 6, 7, 8},
			[]uint32{1, 2, 5, 7, 3, 4, 6, 8}},
		{"DXTA", FourCCDXTA, 4, 8,
			[]uint32{1, 2, 3, 4},
			[]uint32{1, 2, 3, 4}},
		{"short", FourCCDXT1, 4, 8,
			[]uint32{1, 2, 3},
			[]uint32{1, 3, 2, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := le(append([]uint32{0, 0}, tc.raw...)...)
			got, err := TextureBlock(input, tc.fcc, tc.w, tc.h, 0, nil)
			if err != nil {
				t.Fatal(err)
			}
			if want := le(tc.want...); !bytes.Equal(got, want) {
				t.Errorf("got % x, want % x", got, want)
			}
		})
	}
}

func TestTextureFile(t *testing.T) {
	input := append([]byte("ATEXDXT1\x04\x00\x04\x00"), le(8, 0, 0xaabbccdd, 0x11223344)...)
	got, err := Texture(input, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if want := le(0xaabbccdd, 0x11223344); !bytes.Equal(got, want) {
		t.Errorf("got % x, want % x", got, want)
	}

	got, err = Texture(input, 4, nil)
	if err != nil {
		t.Fatal(err)
	}
	if want := le(0xaabbccdd); !bytes.Equal(got, want) {
		t.Errorf("capped: got % x, want % x", got, want)
	}

	bad := append([]byte("ATEXDXT9\x04\x00\x04\x00"), le(8, 0, 0, 0)...)
	if _, err := Texture(bad, 0, nil); !errors.Is(err, ErrUnsupported) {
		t.Errorf("unknown format: got %v, want ErrUnsupported", err)
	}
}

// textureStream writes a chunk: its header, the bit-coded fields, then raw
// words starting on the next word boundary.
func textureStream(t *testing.T, flags uint32, fields func(w *bitWriter, runs map[uint16]codeword), raw ...uint32) []byte {
	t.Helper()
	Init()
	var w bitWriter
	w.word(0)
	w.word(flags)
	fields(&w, codebook(&textureDict))
	if w.n == 0 && len(w.words) == 2 {
		t.Fatal("no bit fields written")
	}
	for _, r := range raw {
		w.word(r)
	}
	return w.bytes(0)
}

func TestTextureWhite(t *testing.T) {
	input := textureStream(t, compressWhiteColor, func(w *bitWriter, runs map[uint16]codeword) {
		w.code(runs[1])
		w.write(1, 1) // block 0 white
		w.code(runs[1])
		w.write(0, 1) // block 1 left alone
	}, 0x11111111, 0x22222222)

	got, err := TextureBlock(input, FourCCDXT1, 8, 4, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := le(0xfffffffe, 0xffffffff, 0x11111111, 0x22222222)
	if !bytes.Equal(got, want) {
		t.Errorf("got % x, want % x", got, want)
	}
}

func TestTextureConstAlpha(t *testing.T) {
	cases := []struct {
		name  string
		flags uint32
		width uint
		alpha uint32
		want  []uint32
	}{
		{"4bit", compressConstAlpha4, 4, 0x9, []uint32{0x99999999, 0x99999999}},
		{"8bit", compressConstAlpha8, 8, 0xc3, []uint32{0xc3c3, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := textureStream(t, tc.flags, func(w *bitWriter, runs map[uint16]codeword) {
				w.write(tc.alpha, tc.width)
				w.code(runs[1])
				w.write(0b11, 2) // present and non-zero
				w.code(runs[1])
				w.write(0b0, 1) // absent
			}, 1, 2, 3, 4, 5, 6)

			got, err := TextureBlock(input, FourCCDXT5, 8, 4, 0, nil)
			if err != nil {
				t.Fatal(err)
			}
			// block 1 alpha comes raw, then colour low words, then high words
			want := le(append(tc.want, 3, 5, 1, 2, 4, 6)...)
			if !bytes.Equal(got, want) {
				t.Errorf("got % x, want % x", got, want)
			}
		})
	}
}

func TestTexturePlainColor(t *testing.T) {
	input := textureStream(t, compressPlainColor, func(w *bitWriter, runs map[uint16]codeword) {
		w.write(0, 8)   // blue
		w.write(0, 8)   // green
		w.write(250, 8) // red
		w.code(runs[2])
		w.write(1, 1)
	})

	got, err := TextureBlock(input, FourCCDXT1, 8, 4, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := le(0xf000f800, 0xffffffff, 0xf000f800, 0xffffffff)
	if !bytes.Equal(got, want) {
		t.Errorf("got % x, want % x", got, want)
	}
}

func TestTextureCombinedPasses(t *testing.T) {
	// block 0 goes white, blocks 1 and 2 are left for the next pass
	white := func(w *bitWriter, runs map[uint16]codeword) {
		w.code(runs[1])
		w.write(1, 1)
		w.code(runs[2])
		w.write(0, 1)
	}

	cases := []struct {
		name   string
		flags  uint32
		fcc    FourCC
		fields func(w *bitWriter, runs map[uint16]codeword)
		raw    []uint32
		want   []uint32
	}{
		{
			name:   "whiteThenPlainColor",
			flags:  compressWhiteColor | compressPlainColor,
			fcc:    FourCCDXT1,
			fields: func(w *bitWriter, runs map[uint16]codeword) {
				w.write(0, 8)
				w.write(0, 8)
				w.write(250, 8)
				w.code(runs[1])
				w.write(1, 1) // lands on block 1, block 0 is taken
				w.code(runs[1])
				w.write(0, 1)
			},
			raw:  []uint32{0x11111111, 0x22222222},
			want: []uint32{
				0xfffffffe, 0xffffffff,
				0xf000f800, 0xffffffff,
				0x11111111, 0x22222222,
			},
		},
		{
			name:   "whiteThenConstAlpha",
			flags:  compressWhiteColor | compressConstAlpha8,
			fcc:    FourCCDXT5,
			fields: func(w *bitWriter, runs map[uint16]codeword) {
				w.write(0xc3, 8)
				w.code(runs[1])
				w.write(0b11, 2) // lands on block 1
				w.code(runs[1])
				w.write(0b0, 1)
			},
			// block 2 alpha, then colour low words of blocks 1 and 2, then high words
			raw:  []uint32{1, 2, 3, 4, 5, 6},
			want: []uint32{
				0xfffffffe, 0xffffffff, 0, 0,
				0xc3c3, 0, 3, 5,
				1, 2, 4, 6,
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := textureStream(t, tc.flags, func(w *bitWriter, runs map[uint16]codeword) {
				white(w, runs)
				tc.fields(w, runs)
			}, tc.raw...)

			got, err := TextureBlock(input, tc.fcc, 12, 4, 0, nil)
			if err != nil {
				t.Fatal(err)
			}
			if want := le(tc.want...); !bytes.Equal(got, want) {
				t.Errorf("got % x, want % x", got, want)
			}
		})
	}
}

func TestTextureRunsAdvance(t *testing.T) {
	Init()
	for sym := range codebook(&textureDict) {
		if sym == 0 {
			t.Error("texture dictionary holds a zero-length run")
		}
	}
}

func TestPlainColorBlock(t *testing.T) {
	cases := []struct {
		r, g, b uint32
		want    uint64
	}{
		{0, 0, 0, 0},
		{255, 255, 255, 0xffffffff},
		{250, 0, 0, 0xffffffff_f000f800},
		{0, 254, 0, 0xffffffff_07c007e0},
		{8, 0, 0, 0x08000800},
	}
	for _, tc := range cases {
		if got := plainColorBlock(tc.r, tc.g, tc.b); got != tc.want {
			t.Errorf("rgb(%d, %d, %d): got %#016x, want %#016x", tc.r, tc.g, tc.b, got, tc.want)
		}
	}
}

func TestTextureInvalid(t *testing.T) {
	if _, err := TextureBlock(nil, FourCCDXT1, 4, 4, 0, nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("empty input: got %v", err)
	}
	if _, err := TextureBlock(le(0, 0), FourCCDXT1, 4, 4, 0, make([]byte, 8)); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("buffer without size: got %v", err)
	}
	if _, err := TextureBlock(le(0, 0), FourCCDXT1, 4, 4, 8, make([]byte, 4)); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("short buffer: got %v", err)
	}
	// 2^32 bytes of output does not fit the size contract
	if _, err := TextureBlock(le(0, 0, 1, 2, 3), FourCCDXT5, 65535, 65535, 0, nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("oversized image: got %v", err)
	}
	// runs keep being read from past the end of the chunk
	if _, err := TextureBlock(le(0, compressWhiteColor), FourCCDXT1, 64, 64, 0, nil); !errors.Is(err, ErrTruncated) {
		t.Errorf("truncated runs: got %v", err)
	}
}
