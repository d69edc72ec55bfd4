package token

// IdentStart reports whether c can begin a bare identifier.
func IdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func identPart(c byte) bool {
	return IdentStart(c) || (c >= '0' && c <= '9')
}

// ScanIdent scans a maximal run of identifier characters starting at d[i],
// copied verbatim with no escape processing. It returns the empty string
// when d[i] cannot begin an identifier.
func ScanIdent(d []byte, i int) (string, int) {
	if i >= len(d) || !IdentStart(d[i]) {
		return "", i
	}
	j := i + 1
	for j < len(d) && identPart(d[j]) {
		j++
	}
	return string(d[i:j]), j
}
