package parse

import (
	"bytes"

	"github.com/sjson-format/go-sjson/ir"
	"github.com/sjson-format/go-sjson/token"
)

var (
	litNull  = []byte("null")
	litTrue  = []byte("true")
	litFalse = []byte("false")
)

// Parse parses d into a fresh document. On failure the partially built
// document is discarded and the returned error is a *Error carrying the
// failure position.
//
// If the input's first significant character is '{' or '[', a single value
// is parsed. Otherwise the whole input is parsed as an implicit object
// body with no surrounding braces, terminating at end of input.
func Parse(d []byte, opts ...Option) (*ir.Doc, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	doc := ir.New(pOpts.docOpts...)
	i := token.Skip(d, 0)
	var (
		root ir.Handle
		err  error
	)
	if i < len(d) && (d[i] == '{' || d[i] == '[') {
		root, _, err = parseValue(doc, d, i)
	} else {
		root, _, err = parseObject(doc, d, i, true)
	}
	if err != nil {
		return nil, err
	}
	doc.SetRoot(root)
	return doc, nil
}

// ParseString is Parse for string input.
func ParseString(s string, opts ...Option) (*ir.Doc, error) {
	return Parse([]byte(s), opts...)
}

// parseValue dispatches on the character at d[i], which must be
// significant (callers skip first). Each branch consumes its production
// and returns the built node with the index just past it.
func parseValue(doc *ir.Doc, d []byte, i int) (ir.Handle, int, error) {
	if i >= len(d) {
		return ir.None, i, failAt(d, i, "unexpected end of input")
	}
	switch c := d[i]; {
	case c == 'n' && bytes.HasPrefix(d[i:], litNull):
		h, err := doc.Null()
		return built(h, err, d, i, i+len(litNull))
	case c == 't' && bytes.HasPrefix(d[i:], litTrue):
		h, err := doc.Bool(true)
		return built(h, err, d, i, i+len(litTrue))
	case c == 'f' && bytes.HasPrefix(d[i:], litFalse):
		h, err := doc.Bool(false)
		return built(h, err, d, i, i+len(litFalse))
	case c == '-' || token.Digit(c):
		f, _, end := token.ScanNumber(d, i)
		h, err := doc.Number(f)
		return built(h, err, d, i, end)
	case c == '"':
		s, end, err := token.ScanQuoted(d, i)
		if err != nil {
			return ir.None, i, failErr(d, i, "bad string", err)
		}
		h, err := doc.String(s)
		return built(h, err, d, i, end)
	case c == '[':
		return parseArray(doc, d, i)
	case c == '{':
		return parseObject(doc, d, token.Skip(d, i+1), false)
	}
	return ir.None, i, failAt(d, i, "unexpected character")
}

// built folds a constructor result into the (handle, index, error) shape
// of the parse functions, converting allocator refusal into a positioned
// parse failure.
func built(h ir.Handle, err error, d []byte, at, end int) (ir.Handle, int, error) {
	if err != nil {
		return ir.None, at, failErr(d, at, "cannot allocate node", err)
	}
	return h, end, nil
}

func parseArray(doc *ir.Doc, d []byte, i int) (ir.Handle, int, error) {
	arr, err := doc.Array()
	if err != nil {
		return ir.None, i, failErr(d, i, "cannot allocate node", err)
	}
	i = token.Skip(d, i+1)
	if i < len(d) && d[i] == ']' {
		return arr, i + 1, nil
	}
	for {
		if i >= len(d) {
			return ir.None, i, failAt(d, i, "unterminated array")
		}
		elt, ni, err := parseValue(doc, d, i)
		if err != nil {
			return ir.None, ni, err
		}
		if err := doc.Append(arr, elt); err != nil {
			return ir.None, i, failErr(d, i, "cannot append element", err)
		}
		i = token.Skip(d, ni)
		if i < len(d) && d[i] == ']' {
			return arr, i + 1, nil
		}
		// the comma is optional; after one, another element is required,
		// so a trailing comma before ']' is an error
		if i < len(d) && d[i] == ',' {
			i = token.Skip(d, i+1)
		}
	}
}

// parseObject parses members up to '}'. In implicit mode the opening
// brace was never seen: end of input also terminates the object, and at
// least one member is required.
func parseObject(doc *ir.Doc, d []byte, i int, implicit bool) (ir.Handle, int, error) {
	obj, err := doc.Object()
	if err != nil {
		return ir.None, i, failErr(d, i, "cannot allocate node", err)
	}
	if !implicit && i < len(d) && d[i] == '}' {
		return obj, i + 1, nil
	}
	for {
		name, ni, err := parseName(d, i)
		if err != nil {
			return ir.None, i, err
		}
		i = token.Skip(d, ni)
		if i >= len(d) || (d[i] != ':' && d[i] != '=') {
			return ir.None, i, failAt(d, i, "expected ':' or '=' after member name")
		}
		i = token.Skip(d, i+1)
		val, ni2, err := parseValue(doc, d, i)
		if err != nil {
			return ir.None, ni2, err
		}
		if err := doc.AppendNamed(obj, name, val); err != nil {
			return ir.None, i, failErr(d, i, "cannot append member", err)
		}
		i = token.Skip(d, ni2)
		if i >= len(d) {
			if implicit {
				return obj, i, nil
			}
			return ir.None, i, failAt(d, i, "unterminated object")
		}
		if d[i] == '}' {
			return obj, i + 1, nil
		}
		// as with arrays, a comma demands a following member
		if d[i] == ',' {
			i = token.Skip(d, i+1)
		}
	}
}

func parseName(d []byte, i int) (string, int, error) {
	if i < len(d) && d[i] == '"' {
		s, ni, err := token.ScanQuoted(d, i)
		if err != nil {
			return "", i, failErr(d, i, "bad member name", err)
		}
		return s, ni, nil
	}
	if s, ni := token.ScanIdent(d, i); s != "" {
		return s, ni, nil
	}
	return "", i, failAt(d, i, "expected member name")
}
