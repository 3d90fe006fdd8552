package base64

import (
	"io"

	"github.com/emersion/go-textwrapper"
)

// MIMELineLength is the maximum line length of Base64 bodies in
// MIME messages (RFC 2045, section 6.8).
const MIMELineLength = 76

// EncodeWrapped encodes src and writes it to w, inserting sep
// after every width encoded bytes. No separator is written after
// the last line.
//
// If width <= 0 the encoding is written as a single line.
//
// The output of EncodeWrapped can be decoded by Decode as long as
// sep only contains whitespace.
func (e *Encoding) EncodeWrapped(w io.Writer, src []byte, width int, sep string) error {
	buf := make([]byte, e.EncodedLen(len(src)))
	e.Encode(buf, src)
	if width > 0 {
		w = textwrapper.New(w, sep, width)
	}
	_, err := w.Write(buf)
	return err
}
