package encode

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/sjson-format/go-sjson/ir"
)

func TestFormatNumber(t *testing.T) {
	fts := []struct {
		f    float64
		i    int64
		want string
	}{
		{f: 0, i: 0, want: "0"},
		{f: 3, i: 3, want: "3"},
		{f: -4, i: -4, want: "-4"},
		{f: 2e9, i: 2000000000, want: "2000000000"},
		// integral but outside int32 range
		{f: 1e10, i: 10000000000, want: "10000000000"},
		{f: 3.5, i: 3, want: "3.500000"},
		{f: 0.1, i: 0, want: "0.100000"},
		{f: -0.25, i: 0, want: "-0.250000"},
		{f: 1e-7, i: 0, want: "1.000000e-07"},
		// integral beyond int32 keeps the plain form
		{f: 2.5e9, i: 2500000000, want: "2500000000"},
		{f: 2500000000.5, i: 2500000000, want: "2.500000e+09"},
	}
	for _, ft := range fts {
		if got := formatNumber(ft.f, ft.i); got != ft.want {
			t.Errorf("formatNumber(%v, %d) = %q, want %q", ft.f, ft.i, got, ft.want)
		}
	}
}

func buildObj(t *testing.T, d *ir.Doc) ir.Handle {
	t.Helper()
	obj, err := d.Object()
	if err != nil {
		t.Fatal(err)
	}
	a, _ := d.Int(1)
	if err := d.AppendNamed(obj, "a", a); err != nil {
		t.Fatal(err)
	}
	arr, _ := d.Array()
	for _, v := range []int64{1, 2} {
		e, _ := d.Int(v)
		if err := d.Append(arr, e); err != nil {
			t.Fatal(err)
		}
	}
	if err := d.AppendNamed(obj, "xs", arr); err != nil {
		t.Fatal(err)
	}
	return obj
}

func TestIndented(t *testing.T) {
	d := ir.New()
	obj := buildObj(t, d)
	want := "{\n\t\"a\":\t1,\n\t\"xs\":\t[1, 2]\n}"
	if got := MustString(d, obj); got != want {
		t.Errorf("indented = %q, want %q", got, want)
	}
}

func TestCompact(t *testing.T) {
	d := ir.New()
	obj := buildObj(t, d)
	want := `{"a": 1,"xs": [1,2]}`
	if got := MustString(d, obj, Compact()); got != want {
		t.Errorf("compact = %q, want %q", got, want)
	}
}

func TestNested(t *testing.T) {
	d := ir.New()
	outer, _ := d.Object()
	inner, _ := d.Object()
	v, _ := d.Int(1)
	if err := d.AppendNamed(inner, "b", v); err != nil {
		t.Fatal(err)
	}
	if err := d.AppendNamed(outer, "a", inner); err != nil {
		t.Fatal(err)
	}
	want := "{\n\t\"a\":\t{\n\t\t\"b\":\t1\n\t}\n}"
	if got := MustString(d, outer); got != want {
		t.Errorf("nested = %q, want %q", got, want)
	}
}

func TestEmptyContainers(t *testing.T) {
	d := ir.New()
	obj, _ := d.Object()
	arr, _ := d.Array()
	if got := MustString(d, obj); got != "{}" {
		t.Errorf("empty object = %q", got)
	}
	if got := MustString(d, arr); got != "[]" {
		t.Errorf("empty array = %q", got)
	}
}

func TestScalars(t *testing.T) {
	d := ir.New()
	null, _ := d.Null()
	yes, _ := d.Bool(true)
	str, _ := d.String("a\nb")
	wants := map[ir.Handle]string{
		null: "null",
		yes:  "true",
		str:  `"a\nb"`,
	}
	for h, want := range wants {
		if got := MustString(d, h); got != want {
			t.Errorf("MustString = %q, want %q", got, want)
		}
	}
}

func TestNoNames(t *testing.T) {
	d := ir.New(ir.DiscardNames())
	obj, _ := d.Object()
	v, _ := d.Int(1)
	if err := d.AppendNamed(obj, "a", v); err != nil {
		t.Fatal(err)
	}
	err := Encode(d, obj, &strings.Builder{})
	if !errors.Is(err, ir.ErrNoNames) {
		t.Errorf("got %v, want ErrNoNames", err)
	}
	if !errors.Is(err, ErrEncoding) {
		t.Errorf("got %v, want ErrEncoding wrapping", err)
	}
}

func TestNonFiniteNumbers(t *testing.T) {
	d := ir.New()
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		h, err := d.Number(f)
		if err != nil {
			t.Fatal(err)
		}
		if err := Encode(d, h, &strings.Builder{}); !errors.Is(err, ErrEncoding) {
			t.Errorf("Encode(%v): got %v, want ErrEncoding", f, err)
		}
	}
}

func TestStaleHandle(t *testing.T) {
	d := ir.New()
	v, _ := d.Int(1)
	d.Free(v)
	err := Encode(d, v, &strings.Builder{})
	if !errors.Is(err, ir.ErrStale) {
		t.Errorf("got %v, want ErrStale", err)
	}
}
