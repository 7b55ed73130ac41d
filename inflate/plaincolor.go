// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package inflate

// plainColorBlock encodes a 4x4 block of a single 8-bit RGB colour as a
// DXT colour block. Each channel is approximated by mixing two neighbouring
// 565 levels, the first weighted 2/3 and the second 1/3.
func plainColorBlock(r, g, b uint32) uint64 {
	r1, r2 := anchors(r, 5)
	g1, g2 := anchors(g, 6)
	b1, b2 := anchors(b, 5)
	c1 := uint64(r1<<11 | g1<<5 | b1)
	c2 := uint64(r2<<11 | g2<<5 | b2)

	switch {
	case c1 > c2: // four-colour block, every texel at index 2
		return c1 | c2<<16 | 0xaaaaaaaa<<32
	case c1 < c2: // swapped, every texel at index 3
		return c2 | c1<<16 | 0xffffffff<<32
	default:
		return c1 | c2<<16
	}
}

// anchors picks the two levels of a channel quantised to width bits (5 or 6).
func anchors(v uint32, width uint) (uint32, uint32) {
	var t, back uint32
	if width == 5 {
		t = (v - v>>5) >> 3
		back = t<<3 + t>>2
	} else {
		t = (v - v>>6) >> 2
		back = t<<2 + t>>4
	}

	diff := int(v) - int(back)
	if diff < 0 {
		diff = 0
	}
	div := 8
	if t&0x11 == 0x11 {
		div--
	}
	comp := 12 * diff / div

	top := uint32(1)<<width - 1
	up := min(t+1, top)
	switch {
	case comp < 2:
		return t, t
	case comp < 6:
		return t, up
	case comp < 10:
		return up, t
	default:
		return up, up
	}
}
