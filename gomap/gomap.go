package gomap

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/sjson-format/go-sjson/ir"
)

// ToAny converts the subtree at h to a dynamic Go value. Numbers surface
// as int64 when the stored float equals its truncated integer, else as
// float64. Objects require retained member names.
func ToAny(doc *ir.Doc, h ir.Handle) (any, error) {
	t, err := doc.TypeOf(h)
	if err != nil {
		return nil, err
	}
	switch t {
	case ir.NullType:
		return nil, nil
	case ir.FalseType:
		return false, nil
	case ir.TrueType:
		return true, nil
	case ir.NumberType:
		f, _ := doc.AsFloat(h)
		i, _ := doc.AsInt(h)
		if float64(i) == f {
			return i, nil
		}
		return f, nil
	case ir.StringType:
		s, err := doc.AsString(h)
		return s, err
	case ir.ArrayType:
		n, err := doc.Len(h)
		if err != nil {
			return nil, err
		}
		res := make([]any, n)
		for i := 0; i < n; i++ {
			res[i], err = ToAny(doc, doc.At(h, i))
			if err != nil {
				return nil, err
			}
		}
		return res, nil
	case ir.ObjectType:
		n, err := doc.Len(h)
		if err != nil {
			return nil, err
		}
		res := make(map[string]any, n)
		for i := 0; i < n; i++ {
			kid := doc.At(h, i)
			name, ok := doc.Name(kid)
			if !ok {
				return nil, ir.ErrNoNames
			}
			res[name], err = ToAny(doc, kid)
			if err != nil {
				return nil, err
			}
		}
		return res, nil
	}
	return nil, fmt.Errorf("invalid node type %d", t)
}

// FromAny builds a subtree in doc from a dynamic Go value and returns its
// handle. Unsupported types are an error.
func FromAny(doc *ir.Doc, v any) (ir.Handle, error) {
	switch x := v.(type) {
	case nil:
		return doc.Null()
	case bool:
		return doc.Bool(x)
	case int:
		return doc.Int(int64(x))
	case int64:
		return doc.Int(x)
	case uint64:
		if x > math.MaxInt64 {
			return ir.None, fmt.Errorf("uint64 %d overflows", x)
		}
		return doc.Int(int64(x))
	case float64:
		return doc.Number(x)
	case string:
		return doc.String(x)
	case []any:
		arr, err := doc.Array()
		if err != nil {
			return ir.None, err
		}
		for _, ev := range x {
			elt, err := FromAny(doc, ev)
			if err != nil {
				return ir.None, err
			}
			if err := doc.Append(arr, elt); err != nil {
				return ir.None, err
			}
		}
		return arr, nil
	case map[string]any:
		obj, err := doc.Object()
		if err != nil {
			return ir.None, err
		}
		for _, key := range slices.Sorted(maps.Keys(x)) {
			val, err := FromAny(doc, x[key])
			if err != nil {
				return ir.None, err
			}
			if err := doc.AppendNamed(obj, key, val); err != nil {
				return ir.None, err
			}
		}
		return obj, nil
	}
	return ir.None, fmt.Errorf("cannot map %T to a node", v)
}
