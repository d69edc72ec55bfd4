// Package token provides the low-level scanning primitives shared by the
// sjson parser and encoder: whitespace and comment skipping, quoted string
// and identifier scanning, number scanning, and input positions.
package token

import "fmt"

// Pos is a resolved input position, 1-based line and column.
type Pos struct {
	Offset int
	Line   int
	Col    int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d (offset %d)", p.Line, p.Col, p.Offset)
}

// PosAt resolves a byte offset in d to a Pos. Offsets past the end resolve
// to the position just after the last byte.
func PosAt(d []byte, off int) Pos {
	if off > len(d) {
		off = len(d)
	}
	line, col := 1, 1
	for _, c := range d[:off] {
		if c == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return Pos{Offset: off, Line: line, Col: col}
}
