package base64

// encodeStd is the standard Base64 alphabet.
const encodeStd = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789" +
	"+/"

const padChar = '='

// Sentinel entries in decodeMap. All of them are > 63, so any
// entry <= 63 is a 6-bit value.
const (
	invalidSym = 0xff // not part of the encoding
	spaceSym   = 0xfe // skipped
	padSym     = 0xfd // padding
)

// decodeMap maps every byte to either its 6-bit value or one of
// the sentinels above.
//
// It is built once and never modified.
var decodeMap = newDecodeMap(encodeStd)

func newDecodeMap(alphabet string) (m [256]byte) {
	if len(alphabet) != 64 {
		panic("base64: alphabet must be 64 bytes")
	}
	for i := range m {
		m[i] = invalidSym
	}
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		if m[c] != invalidSym {
			panic("base64: duplicate symbol in alphabet")
		}
		m[c] = byte(i)
	}
	m[padChar] = padSym
	for _, c := range []byte{' ', '\t', '\n', '\r'} {
		m[c] = spaceSym
	}
	return m
}

// isSpace reports whether c is skipped by the decoder.
func isSpace(c byte) bool {
	return decodeMap[c] == spaceSym
}
