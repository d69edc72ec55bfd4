package ir

import (
	"errors"
	"fmt"
)

var (
	// ErrType is reported by typed accessors when a node does not hold
	// the requested kind.
	ErrType = errors.New("type mismatch")

	// ErrStale is reported for handles whose node has been freed, and
	// for the zero handle.
	ErrStale = errors.New("stale handle")

	// ErrExhausted is reported when the Doc's allocator refuses a node.
	ErrExhausted = errors.New("allocator exhausted")

	// ErrNoNames is reported when member-name text is needed but the Doc
	// was built with DiscardNames.
	ErrNoNames = errors.New("member names not retained")
)

func typeErr(got Type, want string) error {
	return fmt.Errorf("%w: have %s, want %s", ErrType, got, want)
}
