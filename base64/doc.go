// Package base64 implements standard Base64 encoding and
// decoding as specified by RFC 4648.
//
// Only the standard alphabet with '=' padding is supported.
//
// Comparison to encoding/base64
//
// This package is almost, but not exactly a drop-in replacement
// for encoding/base64.
//
// Like encoding/base64, this package ignores the newline
// characters '\r' and '\n'. Unlike encoding/base64, it also
// ignores ' ' and '\t', wherever they appear.
//
// Unlike encoding/base64, this package does not return partial
// Base64-decoded data. For example:
//
//    src := []byte("aGVsb?8=")
//    StdEncoding.Decode(dst, src) // 3, CorruptInputError(5)
//    StdEncoding.Decode(dst, src) // 0, InvalidCharacterError{'?', 5}
//
// The first line is encoding/base64, the second is this package.
//
// Errors are one of InvalidCharacterError, ErrInvalidPadding or
// ErrInvalidLength and can be matched with errors.Is and
// errors.As.
package base64
