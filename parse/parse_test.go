package parse

import (
	"errors"
	"testing"

	"github.com/sjson-format/go-sjson/ir"
	"github.com/sjson-format/go-sjson/token"
)

func mustParse(t *testing.T, in string) *ir.Doc {
	t.Helper()
	doc, err := ParseString(in)
	if err != nil {
		t.Fatalf("ParseString(%q): %v", in, err)
	}
	return doc
}

func TestParseObject(t *testing.T) {
	doc := mustParse(t, `{"a": 1, "b": [true, false, null], "c": "hi"}`)
	root := doc.Root()

	if typ, _ := doc.TypeOf(root); typ != ir.ObjectType {
		t.Fatalf("root type = %s, want object", typ)
	}
	if n, _ := doc.Len(root); n != 3 {
		t.Fatalf("root len = %d, want 3", n)
	}
	if v, err := doc.AsInt(doc.Get(root, "a")); err != nil || v != 1 {
		t.Errorf("a = %d, %v", v, err)
	}
	b := doc.Get(root, "b")
	if typ, _ := doc.TypeOf(b); typ != ir.ArrayType {
		t.Fatalf("b type = %s, want array", typ)
	}
	wantTypes := []ir.Type{ir.TrueType, ir.FalseType, ir.NullType}
	for i, want := range wantTypes {
		if typ, _ := doc.TypeOf(doc.At(b, i)); typ != want {
			t.Errorf("b[%d] type = %s, want %s", i, typ, want)
		}
	}
	if s, err := doc.AsString(doc.Get(root, "c")); err != nil || s != "hi" {
		t.Errorf("c = %q, %v", s, err)
	}
}

// Every permissive spelling parses to the same tree as its strict-JSON
// counterpart.
func TestPermissiveEquivalence(t *testing.T) {
	pairs := []struct {
		name       string
		permissive string
		strict     string
	}{
		{
			name:       "implicit braces",
			permissive: `a = 1 b = 2`,
			strict:     `{"a": 1, "b": 2}`,
		},
		{
			name:       "unquoted keys",
			permissive: `{width: 10, height: 20}`,
			strict:     `{"width": 10, "height": 20}`,
		},
		{
			name:       "equals separator",
			permissive: `{x = "y"}`,
			strict:     `{"x": "y"}`,
		},
		{
			name:       "optional commas array",
			permissive: `{xs: [1 2 3]}`,
			strict:     `{"xs": [1, 2, 3]}`,
		},
		{
			name:       "optional commas object",
			permissive: `{a: 1 b: 2}`,
			strict:     `{"a": 1, "b": 2}`,
		},
		{
			name: "comments",
			permissive: `// header
{
	a: 1 /* inline */ b: 2
	// trailing
}`,
			strict: `{"a": 1, "b": 2}`,
		},
		{
			name:       "mixed separators",
			permissive: `name = "box" size: 3`,
			strict:     `{"name": "box", "size": 3}`,
		},
	}
	for _, pt := range pairs {
		t.Run(pt.name, func(t *testing.T) {
			pd := mustParse(t, pt.permissive)
			sd := mustParse(t, pt.strict)
			if !ir.Equal(pd, pd.Root(), sd, sd.Root()) {
				t.Errorf("%q did not parse equal to %q", pt.permissive, pt.strict)
			}
		})
	}
}

func TestArrayRoot(t *testing.T) {
	doc := mustParse(t, " /* head */ [1, [2], {a: 3}]")
	root := doc.Root()
	if typ, _ := doc.TypeOf(root); typ != ir.ArrayType {
		t.Fatalf("root type = %s, want array", typ)
	}
	if n, _ := doc.Len(root); n != 3 {
		t.Fatalf("root len = %d, want 3", n)
	}
	inner := doc.At(root, 2)
	if v, err := doc.AsInt(doc.Get(inner, "a")); err != nil || v != 3 {
		t.Errorf("a = %d, %v", v, err)
	}
}

func TestMemberOrder(t *testing.T) {
	doc := mustParse(t, `z: 1 a: 2 m: 3`)
	root := doc.Root()
	want := []string{"z", "a", "m"}
	for i, wn := range want {
		name, ok := doc.Name(doc.At(root, i))
		if !ok || name != wn {
			t.Errorf("member %d = %q, %v, want %q", i, name, ok, wn)
		}
	}
}

type errTest struct {
	name       string
	in         string
	wantOffset int
}

func TestParseErrors(t *testing.T) {
	ets := []errTest{
		{name: "empty input", in: "", wantOffset: 0},
		{name: "whitespace only", in: "   \n", wantOffset: 4},
		{name: "scalar at top level", in: "3", wantOffset: 0},
		{name: "trailing comma object", in: "{a:1,}", wantOffset: 5},
		{name: "trailing comma array", in: "[1,]", wantOffset: 3},
		{name: "missing separator", in: "{a 1}", wantOffset: 3},
		{name: "unterminated object", in: "{a:1", wantOffset: 4},
		{name: "unterminated array", in: "[1 2", wantOffset: 4},
		{name: "unterminated string", in: `{a:"x`, wantOffset: 3},
		{name: "bad value", in: "{a:@}", wantOffset: 3},
	}
	for _, et := range ets {
		t.Run(et.name, func(t *testing.T) {
			_, err := ParseString(et.in)
			if err == nil {
				t.Fatalf("ParseString(%q): no error", et.in)
			}
			if !errors.Is(err, ErrParse) {
				t.Fatalf("ParseString(%q): %v is not ErrParse", et.in, err)
			}
			var pe *Error
			if !errors.As(err, &pe) {
				t.Fatalf("ParseString(%q): %v is not *Error", et.in, err)
			}
			if pe.Offset() != et.wantOffset {
				t.Errorf("ParseString(%q): offset %d, want %d (%v)",
					et.in, pe.Offset(), et.wantOffset, err)
			}
		})
	}
}

func TestUnterminatedStringUnwraps(t *testing.T) {
	_, err := ParseString(`{a:"x`)
	if !errors.Is(err, token.ErrUnterminated) {
		t.Errorf("got %v, want ErrUnterminated in chain", err)
	}
}

func TestErrorPosition(t *testing.T) {
	_, err := ParseString("{\n  a: 1\n  b @ 2\n}")
	var pe *Error
	if !errors.As(err, &pe) {
		t.Fatalf("got %v, want *Error", err)
	}
	if pe.Pos.Line != 3 || pe.Pos.Col != 5 {
		t.Errorf("position = %s, want 3:5", pe.Pos)
	}
}

func TestAllocatorExhaustion(t *testing.T) {
	_, err := ParseString(`{a: [1, 2, 3, 4]}`, WithAllocator(ir.NewBudget(3)))
	if !errors.Is(err, ir.ErrExhausted) {
		t.Errorf("got %v, want ErrExhausted", err)
	}
	if !errors.Is(err, ErrParse) {
		t.Errorf("got %v, want ErrParse wrapping", err)
	}
}

func TestEscapes(t *testing.T) {
	doc := mustParse(t, `{s: "tab\there é"}`)
	if s, err := doc.AsString(doc.Get(doc.Root(), "s")); err != nil || s != "tab\there é" {
		t.Errorf("s = %q, %v", s, err)
	}
}

func TestNumbers(t *testing.T) {
	doc := mustParse(t, `{a: 0, b: -3, c: 2.5, d: 1e3, e: 5e-1}`)
	root := doc.Root()
	wants := map[string]float64{"a": 0, "b": -3, "c": 2.5, "d": 1000, "e": 0.5}
	for name, want := range wants {
		f, err := doc.AsFloat(doc.Get(root, name))
		if err != nil || f != want {
			t.Errorf("%s = %v, %v, want %v", name, f, err, want)
		}
	}
}
