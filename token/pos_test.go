package token

import "testing"

func TestPosAt(t *testing.T) {
	d := []byte("ab\ncde\nf")
	pts := []struct {
		off       int
		line, col int
	}{
		{off: 0, line: 1, col: 1},
		{off: 1, line: 1, col: 2},
		{off: 3, line: 2, col: 1},
		{off: 5, line: 2, col: 3},
		{off: 7, line: 3, col: 1},
	}
	for _, pt := range pts {
		p := PosAt(d, pt.off)
		if p.Line != pt.line || p.Col != pt.col || p.Offset != pt.off {
			t.Errorf("PosAt(%d) = %+v, want line %d col %d", pt.off, p, pt.line, pt.col)
		}
	}
}
