// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package inflate

import (
	"fmt"
	"sync"
)

type codeLength struct {
	symbol uint16
	length uint8
}

const (
	datDictionarySymbols     = 0x100
	textureDictionarySymbols = 0x20
)

var (
	dictionaryOnce sync.Once
	datDictionary  tree
	textureDict    tree
)

// Init builds the static dictionaries shared by all decoders. It is called
// implicitly by every decoding function and is safe to call many times from
// many goroutines.
func Init() {
	dictionaryOnce.Do(func() {
		mustBuild(&datDictionary, datDictionaryCodes[:], datDictionarySymbols)
		mustBuild(&textureDict, textureDictionaryCodes[:], textureDictionarySymbols)
	})
}

func mustBuild(t *tree, codes []codeLength, maxSymbols int) {
	b := newBuilder(maxSymbols)
	for _, c := range codes {
		if err := b.add(c.symbol, c.length); err != nil {
			panic(fmt.Sprintf("static dictionary: %v", err))
		}
	}
	if err := b.build(t); err != nil {
		panic(fmt.Sprintf("static dictionary: %v", err))
	}
}
