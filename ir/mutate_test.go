package ir

import (
	"errors"
	"testing"
)

func TestAppendDetachDelete(t *testing.T) {
	d := New()
	mk := must(t)
	arr := mk(d.Array())
	var hs []Handle
	for i := int64(0); i < 4; i++ {
		h := mk(d.Int(i))
		if err := d.Append(arr, h); err != nil {
			t.Fatal(err)
		}
		hs = append(hs, h)
	}

	got, ok := d.Detach(arr, 1)
	if !ok || got != hs[1] {
		t.Fatalf("Detach(1) = %+v, %v", got, ok)
	}
	if n, _ := d.Len(arr); n != 3 {
		t.Errorf("Len after detach = %d, want 3", n)
	}
	// detached node is still alive, ownership moved to the caller
	if v, err := d.AsInt(got); err != nil || v != 1 {
		t.Errorf("detached value = %d, %v", v, err)
	}

	if !d.Delete(arr, 0) {
		t.Fatal("Delete(0) failed")
	}
	if _, err := d.AsInt(hs[0]); !errors.Is(err, ErrStale) {
		t.Errorf("deleted child: got %v, want ErrStale", err)
	}
	if v, err := d.AsInt(d.At(arr, 0)); err != nil || v != 2 {
		t.Errorf("At(0) after delete = %d, %v", v, err)
	}

	if d.Delete(arr, 9) {
		t.Error("Delete past end should report false")
	}
	if _, ok := d.Detach(arr, -1); ok {
		t.Error("Detach(-1) should report false")
	}
}

func TestAppendNone(t *testing.T) {
	d := New()
	mk := must(t)
	arr := mk(d.Array())
	if err := d.Append(arr, None); err != nil {
		t.Errorf("Append(None) = %v, want nil no-op", err)
	}
	if n, _ := d.Len(arr); n != 0 {
		t.Errorf("Len = %d, want 0", n)
	}
}

func TestAppendToScalar(t *testing.T) {
	d := New()
	mk := must(t)
	num := mk(d.Int(1))
	item := mk(d.Int(2))
	if err := d.Append(num, item); !errors.Is(err, ErrType) {
		t.Errorf("Append to number: got %v, want ErrType", err)
	}
}

func TestFieldOps(t *testing.T) {
	d := New()
	mk := must(t)
	obj := mk(d.Object())
	v1 := mk(d.Int(1))
	v2 := mk(d.Int(2))
	if err := d.AppendNamed(obj, "a", v1); err != nil {
		t.Fatal(err)
	}
	if err := d.AppendNamed(obj, "b", v2); err != nil {
		t.Fatal(err)
	}

	repl := mk(d.String("two"))
	if !d.ReplaceField(obj, "b", repl) {
		t.Fatal("ReplaceField(b) failed")
	}
	if _, err := d.AsInt(v2); !errors.Is(err, ErrStale) {
		t.Errorf("replaced member: got %v, want ErrStale", err)
	}
	if got := d.Get(obj, "b"); got != repl {
		t.Errorf("Get(b) after replace = %+v, want %+v", got, repl)
	}
	if name, ok := d.Name(repl); !ok || name != "b" {
		t.Errorf("replacement name = %q, %v, want b", name, ok)
	}

	if !d.DeleteField(obj, "a") {
		t.Fatal("DeleteField(a) failed")
	}
	if got := d.Get(obj, "a"); !got.IsNone() {
		t.Errorf("Get(a) after delete = %+v, want None", got)
	}
	if d.DeleteField(obj, "a") {
		t.Error("second DeleteField(a) should report false")
	}
	if _, ok := d.DetachField(obj, "zzz"); ok {
		t.Error("DetachField of absent name should report false")
	}
}

func TestReferenceAliasing(t *testing.T) {
	d := New()
	mk := must(t)
	owner := mk(d.Array())
	shared := mk(d.String("shared"))
	if err := d.Append(owner, shared); err != nil {
		t.Fatal(err)
	}

	other := mk(d.Array())
	ref, err := d.AppendReference(other, shared)
	if err != nil {
		t.Fatal(err)
	}
	if !d.IsReference(ref) {
		t.Fatal("AppendReference did not produce a reference node")
	}
	if s, err := d.AsString(ref); err != nil || s != "shared" {
		t.Errorf("AsString through reference = %q, %v", s, err)
	}

	// freeing the alias leaves the target intact
	if !d.Delete(other, 0) {
		t.Fatal("Delete alias failed")
	}
	if s, err := d.AsString(shared); err != nil || s != "shared" {
		t.Errorf("target after alias free = %q, %v", s, err)
	}

	// freeing the target turns a remaining alias stale
	ref2, err := d.AppendReference(other, shared)
	if err != nil {
		t.Fatal(err)
	}
	d.Free(owner)
	if _, err := d.AsString(ref2); !errors.Is(err, ErrStale) {
		t.Errorf("alias after target free: got %v, want ErrStale", err)
	}
}

func TestNamedReferenceHash(t *testing.T) {
	d := New()
	mk := must(t)
	src := mk(d.Object())
	val := mk(d.Int(5))
	if err := d.AppendNamed(src, "orig", val); err != nil {
		t.Fatal(err)
	}

	dst := mk(d.Object())
	ref, err := d.AppendNamedReference(dst, "alias", val)
	if err != nil {
		t.Fatal(err)
	}
	if got := d.Get(dst, "alias"); got != ref {
		t.Errorf("Get(alias) = %+v, want %+v", got, ref)
	}
	// the alias has its own name; the target keeps its own
	if got := d.Get(src, "orig"); got != val {
		t.Errorf("Get(orig) = %+v, want %+v", got, val)
	}
	if n, err := d.AsInt(ref); err != nil || n != 5 {
		t.Errorf("AsInt(alias) = %d, %v", n, err)
	}
}

func TestCompare(t *testing.T) {
	build := func(t *testing.T) (*Doc, Handle) {
		t.Helper()
		d := New()
		mk := must(t)
		obj := mk(d.Object())
		n := mk(d.Number(1.5))
		s := mk(d.String("x"))
		arr := mk(d.Array())
		e := mk(d.Int(9))
		if err := d.Append(arr, e); err != nil {
			t.Fatal(err)
		}
		for _, m := range []struct {
			name string
			h    Handle
		}{{"n", n}, {"s", s}, {"xs", arr}} {
			if err := d.AppendNamed(obj, m.name, m.h); err != nil {
				t.Fatal(err)
			}
		}
		return d, obj
	}

	da, a := build(t)
	db, b := build(t)
	if !Equal(da, a, db, b) {
		t.Error("identically built docs should compare equal")
	}

	// value difference
	repl, err := db.String("y")
	if err != nil {
		t.Fatal(err)
	}
	if !db.ReplaceField(b, "s", repl) {
		t.Fatal("ReplaceField failed")
	}
	if Equal(da, a, db, b) {
		t.Error("docs differing in a member value should not compare equal")
	}

	// length difference
	dc, c := build(t)
	extra, err := dc.Int(0)
	if err != nil {
		t.Fatal(err)
	}
	if err := dc.AppendNamed(c, "extra", extra); err != nil {
		t.Fatal(err)
	}
	if Compare(da, a, dc, c) >= 0 {
		t.Error("shorter object should sort before longer")
	}
}
