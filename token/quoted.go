package token

import (
	"errors"
	"fmt"
)

var ErrUnterminated = errors.New("unterminated string")

// firstByteMark holds the leading-byte marks for 1..3 byte UTF-8 forms.
// \u escapes re-encode the code point directly; code points needing
// 4-byte forms or surrogate-pair composition are not supported and will
// mis-decode.
var firstByteMark = [4]byte{0x00, 0x00, 0xC0, 0xE0}

// ScanQuoted decodes the quoted string starting at d[i] (which must be a
// double quote). It returns the decoded value and the index just past the
// closing quote.
func ScanQuoted(d []byte, i int) (string, int, error) {
	if i >= len(d) || d[i] != '"' {
		return "", i, fmt.Errorf("expected string at offset %d", i)
	}
	start := i
	i++
	out := make([]byte, 0, 16)
	for i < len(d) && d[i] != '"' {
		c := d[i]
		if c != '\\' {
			out = append(out, c)
			i++
			continue
		}
		i++
		if i >= len(d) {
			break
		}
		switch d[i] {
		case 'b':
			out = append(out, '\b')
		case 'f':
			out = append(out, '\f')
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case 'u':
			uc, n := hex4(d, i+1)
			out = appendCodePoint(out, uc)
			i += n
		default:
			// unknown escapes pass the escaped byte through
			out = append(out, d[i])
		}
		i++
	}
	if i >= len(d) {
		return "", start, fmt.Errorf("%w at offset %d", ErrUnterminated, start)
	}
	return string(out), i + 1, nil
}

func hex4(d []byte, i int) (uint32, int) {
	var uc uint32
	n := 0
	for ; n < 4 && i+n < len(d); n++ {
		v, ok := hexDigit(d[i+n])
		if !ok {
			break
		}
		uc = uc<<4 | uint32(v)
	}
	return uc, n
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func appendCodePoint(out []byte, uc uint32) []byte {
	n := 3
	switch {
	case uc < 0x80:
		n = 1
	case uc < 0x800:
		n = 2
	}
	var b [3]byte
	for j := n - 1; j > 0; j-- {
		b[j] = byte(uc|0x80) & 0xBF
		uc >>= 6
	}
	b[0] = byte(uc) | firstByteMark[n]
	return append(out, b[:n]...)
}

// Quote renders v as a strict-JSON quoted string: quote, backslash and the
// six named control escapes by name, any other byte below 32 as \u00XX.
// Bytes 32 and above pass through untouched.
func Quote(v string) string {
	out := make([]byte, 1, len(v)+2)
	out[0] = '"'
	for i := 0; i < len(v); i++ {
		c := v[i]
		if c > 31 && c != '"' && c != '\\' {
			out = append(out, c)
			continue
		}
		out = append(out, '\\')
		switch c {
		case '\\':
			out = append(out, '\\')
		case '"':
			out = append(out, '"')
		case '\b':
			out = append(out, 'b')
		case '\f':
			out = append(out, 'f')
		case '\n':
			out = append(out, 'n')
		case '\r':
			out = append(out, 'r')
		case '\t':
			out = append(out, 't')
		default:
			out = fmt.Appendf(out, "u%04x", c)
		}
	}
	return string(append(out, '"'))
}
