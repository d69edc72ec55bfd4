package encode

import (
	"bytes"
	"strings"

	"github.com/sjson-format/go-sjson/ir"
)

func MustString(doc *ir.Doc, h ir.Handle, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(doc, h, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
