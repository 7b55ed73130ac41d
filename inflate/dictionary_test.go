// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package inflate

import (
	"math/big"
	"sync"
	"testing"
)

func TestDictionaries(t *testing.T) {
	Init()
	cases := []struct {
		name    string
		tree    *tree
		codes   []codeLength
		symbols int
	}{
		{"dat", &datDictionary, datDictionaryCodes[:], 256},
		{"texture", &textureDict, textureDictionaryCodes[:], 18},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			book := codebook(tc.tree)
			if len(book) != tc.symbols {
				t.Fatalf("%d symbols, want %d", len(book), tc.symbols)
			}
			for _, c := range tc.codes {
				if book[c.symbol].length != c.length {
					t.Errorf("symbol %#x: length %d, want %d", c.symbol, book[c.symbol].length, c.length)
				}
			}
			checkPrefixFree(t, book)

			// every bit pattern must decode to something
			sum := new(big.Rat)
			for _, cw := range book {
				sum.Add(sum, big.NewRat(1, 1<<cw.length))
			}
			if sum.Cmp(big.NewRat(1, 1)) != 0 {
				t.Errorf("Kraft sum %v, want 1", sum)
			}
		})
	}
}

func TestDatDictionaryCodes(t *testing.T) {
	Init()
	cases := []struct {
		symbol uint16
		length uint8
		code   uint32
	}{
		{0x0A, 3, 0b101},
		{0x08, 3, 0b111},
		{0x00, 4, 0b1001},
		{0x01, 10, 0b0000011011},
		{0xE5, 11, 0b00000001011},
		{0x0E, 11, 0b00000010111},
		{0xE7, 12, 0b000000001111},
		{0x83, 12, 0b000000010101},
		{0xE6, 13, 0b0000000011000},
		{0x22, 13, 0b0000000011101},
		{0xEC, 14, 0b00000000101100},
		{0x4E, 14, 0b00000000101111},
		{0xEA, 15, 0b000000001010000},
		{0x0F, 15, 0b000000001010111},
		{0xFF, 16, 0b0000000000000000},
		{0x12, 16, 0b0000000010011111},
	}
	for _, tc := range cases {
		var w bitWriter
		w.write(tc.code, uint(tc.length))
		w.write(0x5555, 16) // whatever follows must be left alone
		c := newCursor(w.bytes(1))
		got, err := datDictionary.read(c)
		if err != nil {
			t.Fatalf("%0*b: %v", int(tc.length), tc.code, err)
		}
		if got != tc.symbol {
			t.Errorf("%0*b: got %#02x, want %#02x", int(tc.length), tc.code, got, tc.symbol)
		}
		if rest := c.peek(16); rest != 0x5555 {
			t.Errorf("%0*b: consumed wrong number of bits", int(tc.length), tc.code)
		}
	}
}

func TestInitConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Init()
		}()
	}
	wg.Wait()
	if datDictionary.empty || textureDict.empty {
		t.Fatal("dictionaries not built")
	}
}
