package base64

// StdEncoding is the standard Base64 encoding.
//
// It uses the following table:
//
//    ABCDEFGHIJKLMNOPQRSTUVWXYZ
//    abcdefghijklmnopqrstuvwxyz
//    0123456789
//    +/
//
// and '=' for padding.
var StdEncoding = &Encoding{}

// Encoding is a radix 64 encoding.
//
// It is safe for concurrent use.
//
// See the package docs for a comparison with encoding/base64.
type Encoding struct {
	strict bool
}

// Strict returns an identical Encoding that operates in "strict"
// mode where all padding bits MUST be zero (see section 3.5 of
// RFC 4648 and golang.org/issues/15656).
func (e Encoding) Strict() *Encoding {
	e.strict = true
	return &e
}

// EncodedLen returns the size in bytes of the Base64 encoding
// of n source bytes.
func (e *Encoding) EncodedLen(n int) int {
	return (n + 2) / 3 * 4
}

// DecodedLen returns the maximum length in bytes of n bytes of
// Base64-encoded data.
func (e *Encoding) DecodedLen(n int) int {
	return n / 4 * 3
}

// Encode encodes src, writing EncodedLen(len(src)) bytes to dst.
func (e *Encoding) Encode(dst, src []byte) {
	if len(src) == 0 {
		return
	}

	// Hoist bounds checks.
	_ = dst[e.EncodedLen(len(src))-1]

	for len(src) >= 3 {
		v := uint(src[0])<<16 | uint(src[1])<<8 | uint(src[2])
		dst[0] = encodeStd[v>>18&0x3f]
		dst[1] = encodeStd[v>>12&0x3f]
		dst[2] = encodeStd[v>>6&0x3f]
		dst[3] = encodeStd[v&0x3f]
		src = src[3:]
		dst = dst[4:]
	}

	switch len(src) {
	case 2:
		v := uint(src[0])<<16 | uint(src[1])<<8
		dst[0] = encodeStd[v>>18&0x3f]
		dst[1] = encodeStd[v>>12&0x3f]
		dst[2] = encodeStd[v>>6&0x3f]
		dst[3] = padChar
	case 1:
		v := uint(src[0]) << 16
		dst[0] = encodeStd[v>>18&0x3f]
		dst[1] = encodeStd[v>>12&0x3f]
		dst[2] = padChar
		dst[3] = padChar
	}
}

// EncodeToString encodes src.
func (e *Encoding) EncodeToString(src []byte) string {
	dst := make([]byte, e.EncodedLen(len(src)))
	e.Encode(dst, src)
	return string(dst)
}

// AppendEncode appends the Base64 encoding of src to dst and
// returns the extended slice.
func (e *Encoding) AppendEncode(dst, src []byte) []byte {
	n := e.EncodedLen(len(src))
	dst = grow(dst, n)
	e.Encode(dst[len(dst):len(dst)+n], src)
	return dst[:len(dst)+n]
}

// Decode decodes src, writing at most DecodedLen(len(src)) bytes
// to dst, and returns the number of bytes written.
//
// Whitespace (' ', '\t', '\r' and '\n') is ignored wherever it
// appears. If src is not valid Base64, Decode returns 0 and one
// of InvalidCharacterError, ErrInvalidPadding or
// ErrInvalidLength. The contents of dst are unspecified in that
// case.
//
// Decode panics if dst is too small for the decoded output.
//
// See the package docs for a comparison with encoding/base64.
func (e *Encoding) Decode(dst, src []byte) (int, error) {
	n, err := e.decode(dst, src)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// DecodeString decodes src.
//
// Unlike encoding/base64, it returns nil if src is not valid
// Base64.
func (e *Encoding) DecodeString(src string) ([]byte, error) {
	return e.decodeAlloc([]byte(src))
}

// AppendDecode appends the Base64 decoding of src to dst and
// returns the extended slice.
//
// If src is not valid Base64, AppendDecode returns dst unchanged
// and the error.
func (e *Encoding) AppendDecode(dst, src []byte) ([]byte, error) {
	n := decodedLen(src)
	buf := grow(dst, n)
	n, err := e.Decode(buf[len(buf):len(buf)+n], src)
	if err != nil {
		return dst, err
	}
	return buf[:len(buf)+n], nil
}

func (e *Encoding) decodeAlloc(src []byte) ([]byte, error) {
	dst := make([]byte, decodedLen(src))
	n, err := e.Decode(dst, src)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// decode runs the single pass over src.
//
// decodedLen(src) bytes of dst are always enough for valid src.
func (e *Encoding) decode(dst, src []byte) (n int, err error) {
	var (
		acc  uint // 6-bit values of the current group
		k    int  // number of values in acc
		npad int  // number of '=' seen so far
	)
	for i, c := range src {
		v := decodeMap[c]
		switch v {
		case spaceSym:
			continue
		case invalidSym:
			return 0, InvalidCharacterError{Char: c, Offset: i}
		case padSym:
			npad++
			v = 0
		default:
			if npad > 0 {
				// Data after padding.
				return 0, ErrInvalidPadding
			}
		}

		acc = acc<<6 | uint(v)
		k++
		if k < 4 {
			continue
		}

		var mask uint
		switch npad {
		case 0:
		case 1:
			mask = 0xff
		case 2:
			mask = 0xffff
		default:
			// "A===", "====", or padding spilling past the
			// final group.
			return 0, ErrInvalidPadding
		}
		if e.strict && acc&mask != 0 {
			return 0, ErrInvalidPadding
		}

		// Groups that do not fit are only counted. For a
		// dst sized by decodedLen that only happens when src
		// is invalid, which is reported below.
		w := 3 - npad
		if len(dst)-n >= w {
			for j := 0; j < w; j++ {
				dst[n+j] = byte(acc >> (16 - 8*j))
			}
		}
		n += w
		acc = 0
		k = 0
	}
	if k != 0 {
		return 0, ErrInvalidLength
	}
	if n > len(dst) {
		panic("base64: output buffer too small")
	}
	return n, nil
}

// decodedLen returns the size of the buffer needed to decode
// src, computed from its length and trailing padding.
//
// It is exact when src contains no whitespace and an upper bound
// otherwise.
func decodedLen(src []byte) int {
	n := StdEncoding.DecodedLen(len(src)) - trailingPadding(src)
	if n < 0 {
		return 0
	}
	return n
}

// trailingPadding returns the number of '=' (at most two) at the
// end of src, ignoring whitespace.
func trailingPadding(src []byte) (n int) {
	for i := len(src) - 1; i >= 0 && n < 2; i-- {
		switch c := src[i]; {
		case isSpace(c):
			// Skip.
		case c == padChar:
			n++
		default:
			return n
		}
	}
	return n
}

// grow returns s with capacity for at least n more bytes.
func grow(s []byte, n int) []byte {
	if cap(s)-len(s) >= n {
		return s
	}
	t := make([]byte, len(s), len(s)+n)
	copy(t, s)
	return t
}

// Encode returns the standard Base64 encoding of src.
//
// The result has length 4*ceil(len(src)/3) and is empty if src is
// empty.
func Encode(src []byte) []byte {
	if len(src) == 0 {
		return []byte{}
	}
	dst := make([]byte, StdEncoding.EncodedLen(len(src)))
	StdEncoding.Encode(dst, src)
	return dst
}

// Decode returns the bytes represented by the standard Base64
// encoding src.
//
// It returns nil and an error if src is not valid Base64. See
// Encoding.Decode.
func Decode(src []byte) ([]byte, error) {
	return StdEncoding.decodeAlloc(src)
}
