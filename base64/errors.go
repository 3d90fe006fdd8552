package base64

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPadding is returned when '=' appears anywhere
	// other than the last one or two positions of the final
	// group.
	//
	// Strict encodings also return it when the bits dropped by
	// padding are not zero.
	ErrInvalidPadding = errors.New("base64: invalid padding")

	// ErrInvalidLength is returned when the number of
	// non-whitespace characters, padding included, is not a
	// multiple of 4.
	ErrInvalidLength = errors.New("base64: invalid length")
)

// InvalidCharacterError is returned when the input contains a
// byte that is not part of the alphabet, not padding, and not
// whitespace.
type InvalidCharacterError struct {
	// Char is the offending byte.
	Char byte
	// Offset is the index of Char in the input, whitespace
	// included.
	Offset int
}

func (e InvalidCharacterError) Error() string {
	return fmt.Sprintf("base64: invalid character %q (%#02x) at offset %d",
		rune(e.Char), e.Char, e.Offset)
}
