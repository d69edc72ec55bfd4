package sjson

import (
	"fmt"
	"strconv"
	"strings"
)

// pathSeg is one step of a dotted path: a member name, or an element
// index when index >= 0.
type pathSeg struct {
	name  string
	index int
}

// splitPath breaks "a.b[2].c" into member and index segments. Quoting is
// not supported; names containing '.' or '[' cannot be addressed this way
// (use ir.Doc.Get directly for those).
func splitPath(path string) ([]pathSeg, error) {
	segs := []pathSeg{}
	for _, part := range strings.Split(path, ".") {
		if part == "" {
			return nil, fmt.Errorf("empty path segment in %q", path)
		}
		name := part
		var idxs []int
		for {
			open := strings.IndexByte(name, '[')
			if open < 0 {
				break
			}
			rest := name[open:]
			name = name[:open]
			for rest != "" {
				if rest[0] != '[' {
					return nil, fmt.Errorf("bad index syntax in %q", path)
				}
				close := strings.IndexByte(rest, ']')
				if close < 0 {
					return nil, fmt.Errorf("unterminated index in %q", path)
				}
				n, err := strconv.Atoi(rest[1:close])
				if err != nil || n < 0 {
					return nil, fmt.Errorf("bad index %q in %q", rest[1:close], path)
				}
				idxs = append(idxs, n)
				rest = rest[close+1:]
			}
			break
		}
		if name != "" {
			segs = append(segs, pathSeg{name: name, index: -1})
		}
		for _, n := range idxs {
			segs = append(segs, pathSeg{index: n})
		}
	}
	if len(segs) == 0 {
		return nil, fmt.Errorf("empty path")
	}
	return segs, nil
}
