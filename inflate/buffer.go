// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package inflate

import "fmt"

func checkArgs(input []byte, outputSize uint32, output []byte) error {
	if len(input) == 0 {
		return fmt.Errorf("%w: empty input", ErrInvalidInput)
	}
	if output != nil && outputSize == 0 {
		return fmt.Errorf("%w: output buffer supplied without a size", ErrInvalidInput)
	}
	return nil
}

// outputBuffer returns a buffer of exactly size bytes: the caller's if one
// was given, otherwise a new one.
func outputBuffer(output []byte, size uint32) ([]byte, error) {
	if output == nil {
		return make([]byte, size), nil
	}
	if uint64(len(output)) < uint64(size) {
		return nil, fmt.Errorf("%w: output buffer holds %d bytes, need %d", ErrInvalidInput, len(output), size)
	}
	return output[:size], nil
}
