package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing the subtrees at a and b, which may
// live in different docs. The result is 0 if they are structurally equal,
// -1 if a sorts before b, and +1 otherwise. References are resolved; a
// stale side sorts first.
func Compare(da *Doc, a Handle, db *Doc, b Handle) int {
	an, aerr := da.resolve(a)
	bn, berr := db.resolve(b)
	if aerr != nil || berr != nil {
		if aerr != nil && berr != nil {
			return 0
		}
		if aerr != nil {
			return -1
		}
		return 1
	}

	if an.typ != bn.typ {
		return cmp.Compare(an.typ, bn.typ)
	}

	switch an.typ {
	case NumberType:
		return cmp.Compare(an.f, bn.f)
	case StringType:
		return strings.Compare(an.str, bn.str)
	case ArrayType:
		return compareChildren(da, an, db, bn, false)
	case ObjectType:
		return compareChildren(da, an, db, bn, true)
	}
	return 0
}

// Equal reports whether the subtrees at a and b have equal shape, types,
// values, and (for objects) member name hashes in identical order.
func Equal(da *Doc, a Handle, db *Doc, b Handle) bool {
	return Compare(da, a, db, b) == 0
}

func compareChildren(da *Doc, an *node, db *Doc, bn *node, named bool) int {
	minLen := min(len(an.kids), len(bn.kids))
	for i := 0; i < minLen; i++ {
		ak, bk := an.kids[i], bn.kids[i]
		if named {
			if c := cmp.Compare(da.NameHash(ak), db.NameHash(bk)); c != 0 {
				return c
			}
		}
		if c := Compare(da, ak, db, bk); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(an.kids), len(bn.kids))
}
