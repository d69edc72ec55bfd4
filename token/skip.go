package token

// Skip advances i past ASCII whitespace and control bytes (<= 0x20) and
// past both comment forms: "//" to end of line and non-nesting "/* */".
// It repeats until neither applies. Skip never fails; an unterminated
// block comment runs to end of input, where the caller's next expectation
// reports the error.
func Skip(d []byte, i int) int {
	for i < len(d) {
		c := d[i]
		if c <= 0x20 {
			i++
			continue
		}
		if c != '/' || i+1 >= len(d) {
			return i
		}
		switch d[i+1] {
		case '/':
			i += 2
			for i < len(d) && d[i] != '\n' && d[i] != '\r' {
				i++
			}
		case '*':
			i = skipBlockComment(d, i+2)
		default:
			return i
		}
	}
	return i
}

func skipBlockComment(d []byte, i int) int {
	for {
		for i < len(d) && d[i] != '*' {
			i++
		}
		if i >= len(d) {
			return i
		}
		// d[i] == '*'
		if i+1 < len(d) && d[i+1] == '/' {
			return i + 2
		}
		i++
	}
}
