package encode

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/sjson-format/go-sjson/ir"
	"github.com/sjson-format/go-sjson/token"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth   int
	compact bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode renders the subtree at h to w. References are resolved through
// the document; a stale reference or a missing member name fails the
// whole encode.
func Encode(doc *ir.Doc, h ir.Handle, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return encode(doc, h, w, es)
}

func encode(doc *ir.Doc, h ir.Handle, w io.Writer, es *EncState) error {
	t, err := doc.TypeOf(h)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	switch t {
	case ir.NullType:
		return writeColored(w, es, t, ValueColor, "null")
	case ir.FalseType:
		return writeColored(w, es, t, ValueColor, "false")
	case ir.TrueType:
		return writeColored(w, es, t, ValueColor, "true")
	case ir.NumberType:
		f, _ := doc.AsFloat(h)
		i, _ := doc.AsInt(h)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: non-finite number %v", ErrEncoding, f)
		}
		return writeColored(w, es, t, ValueColor, formatNumber(f, i))
	case ir.StringType:
		s, err := doc.AsString(h)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrEncoding, err)
		}
		return writeColored(w, es, t, ValueColor, token.Quote(s))
	case ir.ArrayType:
		return encodeArray(doc, h, w, es)
	case ir.ObjectType:
		return encodeObject(doc, h, w, es)
	}
	return fmt.Errorf("%w: invalid node type %d", ErrEncoding, t)
}

// Arrays render on one line in both modes; the indented mode just puts a
// space after each comma.
func encodeArray(doc *ir.Doc, h ir.Handle, w io.Writer, es *EncState) error {
	sep := ","
	if !es.compact {
		sep = ", "
	}
	n, err := doc.Len(h)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	if err := writeColored(w, es, ir.ArrayType, SepColor, "["); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if i > 0 {
			if err := writeColored(w, es, ir.ArrayType, SepColor, sep); err != nil {
				return err
			}
		}
		if err := encode(doc, doc.At(h, i), w, es); err != nil {
			return err
		}
	}
	return writeColored(w, es, ir.ArrayType, SepColor, "]")
}

func encodeObject(doc *ir.Doc, h ir.Handle, w io.Writer, es *EncState) error {
	n, err := doc.Len(h)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	if err := writeColored(w, es, ir.ObjectType, SepColor, "{"); err != nil {
		return err
	}
	es.depth++
	for i := 0; i < n; i++ {
		kid := doc.At(h, i)
		name, ok := doc.Name(kid)
		if !ok {
			return fmt.Errorf("%w: %w", ErrEncoding, ir.ErrNoNames)
		}
		if i > 0 {
			if err := writeColored(w, es, ir.ObjectType, SepColor, ","); err != nil {
				return err
			}
		}
		if !es.compact {
			if err := writeString(w, "\n"+strings.Repeat("\t", es.depth)); err != nil {
				return err
			}
		}
		if err := writeColored(w, es, ir.ObjectType, FieldColor, token.Quote(name)); err != nil {
			return err
		}
		kvSep := ": "
		if !es.compact {
			kvSep = ":\t"
		}
		if err := writeColored(w, es, ir.ObjectType, SepColor, kvSep); err != nil {
			return err
		}
		if err := encode(doc, kid, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if !es.compact && n > 0 {
		if err := writeString(w, "\n"+strings.Repeat("\t", es.depth)); err != nil {
			return err
		}
	}
	return writeColored(w, es, ir.ObjectType, SepColor, "}")
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeColored(w io.Writer, es *EncState, t ir.Type, a ColorAttr, s string) error {
	if es.Color != nil {
		s = es.Color(t, a, s)
	}
	return writeString(w, s)
}

// dblEpsilon mirrors DBL_EPSILON, the tolerance of the integer-vs-float
// output decision.
var dblEpsilon = math.Nextafter(1, 2) - 1

// formatNumber picks the integer rendering when the float exactly equals
// its truncated integer counterpart, else an integral-float, scientific,
// or fixed form by magnitude.
func formatNumber(f float64, i int64) string {
	if math.Abs(float64(i)-f) <= dblEpsilon &&
		f <= math.MaxInt32 && f >= math.MinInt32 {
		return strconv.FormatInt(i, 10)
	}
	if math.Abs(math.Floor(f)-f) <= dblEpsilon {
		return strconv.FormatFloat(f, 'f', 0, 64)
	}
	if a := math.Abs(f); a < 1e-6 || a > 1e9 {
		return fmt.Sprintf("%e", f)
	}
	return fmt.Sprintf("%f", f)
}
