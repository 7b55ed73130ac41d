// Copyright (c) Elliot Nunn
// Licensed under the MIT license

package inflate

import "errors"

// Every failure returned by this package wraps exactly one of these.
var (
	ErrInvalidInput = errors.New("inflate: invalid input")
	ErrCorrupt      = errors.New("inflate: corrupt data")
	ErrTruncated    = errors.New("inflate: truncated data")
	ErrUnsupported  = errors.New("inflate: unsupported format")
)
