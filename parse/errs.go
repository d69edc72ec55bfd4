package parse

import (
	"errors"
	"fmt"

	"github.com/sjson-format/go-sjson/token"
)

var ErrParse = errors.New("parse error")

// Error is the failure of a whole parse. Pos is the byte position the
// parser could not proceed past.
type Error struct {
	Pos token.Pos
	Msg string
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse error: %s: %v at %s", e.Msg, e.Err, e.Pos)
	}
	return fmt.Sprintf("parse error: %s at %s", e.Msg, e.Pos)
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrParse, e.Err}
	}
	return []error{ErrParse}
}

// Offset returns the byte offset of the failure.
func (e *Error) Offset() int {
	return e.Pos.Offset
}

func failAt(d []byte, i int, msg string) error {
	return &Error{Pos: token.PosAt(d, i), Msg: msg}
}

func failErr(d []byte, i int, msg string, err error) error {
	return &Error{Pos: token.PosAt(d, i), Msg: msg, Err: err}
}
