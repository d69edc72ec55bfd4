// Package sjson ties the parse and encode packages together for the
// common read-edit-write cycle over sjson text.
package sjson

import (
	"bytes"

	"github.com/sjson-format/go-sjson/encode"
	"github.com/sjson-format/go-sjson/ir"
	"github.com/sjson-format/go-sjson/parse"
)

// Reformat parses permissive sjson input and re-renders it as strict
// JSON, indented or compact.
func Reformat(d []byte, compact bool) ([]byte, error) {
	doc, err := parse.Parse(d)
	if err != nil {
		return nil, err
	}
	var encOpts []encode.EncodeOption
	if compact {
		encOpts = append(encOpts, encode.Compact())
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(doc, doc.Root(), buf, encOpts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Get parses input and returns the node at a dotted path of member names
// and [n] element indexes, for example "servers[0].host". It returns
// ir.None when the path does not resolve.
func Get(d []byte, path string) (*ir.Doc, ir.Handle, error) {
	doc, err := parse.Parse(d)
	if err != nil {
		return nil, ir.None, err
	}
	h, err := GetPath(doc, doc.Root(), path)
	if err != nil {
		return nil, ir.None, err
	}
	return doc, h, nil
}

// GetPath resolves a dotted path against an existing document. Lookups on
// object members go through the document's key hash; two names colliding
// under the hash resolve to the first-inserted member.
func GetPath(doc *ir.Doc, h ir.Handle, path string) (ir.Handle, error) {
	segs, err := splitPath(path)
	if err != nil {
		return ir.None, err
	}
	for _, seg := range segs {
		if h.IsNone() {
			return ir.None, nil
		}
		if seg.index >= 0 {
			h = doc.At(h, seg.index)
			continue
		}
		h = doc.Get(h, seg.name)
	}
	return h, nil
}
