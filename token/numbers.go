package token

import "math"

// Digit reports whether c is an ASCII digit.
func Digit(c byte) bool {
	return c >= '0' && c <= '9'
}

// ScanNumber scans a number starting at d[i]: optional leading '-',
// digits, optional '.' and digits, optional exponent with sign. Digits are
// folded as n = n*10 + digit, the fraction tracked as a negative power of
// ten, so the value is sign * mantissa * 10^(scale+exponent). It returns
// the float value, its truncated integer counterpart, and the index past
// the number.
func ScanNumber(d []byte, i int) (float64, int64, int) {
	var (
		n, sign      = 0.0, 1.0
		scale        = 0
		subscale     = 0
		signsubscale = 1
	)
	if i < len(d) && d[i] == '-' {
		sign = -1
		i++
	}
	if i < len(d) && d[i] == '0' {
		i++
	}
	if i < len(d) && d[i] >= '1' && d[i] <= '9' {
		for i < len(d) && Digit(d[i]) {
			n = n*10 + float64(d[i]-'0')
			i++
		}
	}
	if i < len(d) && d[i] == '.' {
		i++
		for i < len(d) && Digit(d[i]) {
			n = n*10 + float64(d[i]-'0')
			scale--
			i++
		}
	}
	if i < len(d) && (d[i] == 'e' || d[i] == 'E') {
		i++
		if i < len(d) {
			switch d[i] {
			case '+':
				i++
			case '-':
				signsubscale = -1
				i++
			}
		}
		for i < len(d) && Digit(d[i]) {
			subscale = subscale*10 + int(d[i]-'0')
			i++
		}
	}
	f := sign * n * math.Pow(10, float64(scale+subscale*signsubscale))
	return f, int64(f), i
}
