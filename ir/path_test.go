package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParsePath(t *testing.T) {
	tests := []string{
		"$",
		"$.a",
		"$.a[0].b",
		"$[2][3]",
		"$.'a.b'.c",
	}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			p, err := ParsePath(in)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(in, p.String()); diff != "" {
				t.Error(diff)
			}
		})
	}
	for _, in := range []string{"", "a", "$.", "$[x]", "$['a"} {
		if _, err := ParsePath(in); err == nil {
			t.Errorf("%q: expected error", in)
		}
	}
}

func TestNodePath(t *testing.T) {
	y, err := FromJSON([]byte(`{"a": [{"b.c": 1}]}`))
	if err != nil {
		t.Fatal(err)
	}
	leaf := y.Values[0].Values[0].Values[0]
	if diff := cmp.Diff("$.a[0].'b.c'", leaf.Path()); diff != "" {
		t.Error(diff)
	}
	if leaf.Root() != y {
		t.Error("root")
	}
}

func TestGetSetPath(t *testing.T) {
	y, err := FromJSON([]byte(`{"a": [1, {"b": 2}], "c": 3}`))
	if err != nil {
		t.Fatal(err)
	}
	got, err := y.GetPath("$.a[1].b")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || *got.Int64 != 2 || got.Parent != nil {
		t.Fatalf("got %+v", got)
	}
	got.Int64 = nil
	if *Get(y.Values[0].Values[1], "b").Int64 != 2 {
		t.Error("GetPath did not clone")
	}
	if got, err := y.GetPath("$.missing"); err != nil || got != nil {
		t.Errorf("missing: %v %v", got, err)
	}
	if _, err := y.GetPath("$.a[5]"); err == nil {
		t.Error("expected out of bounds error")
	}
	if _, err := y.GetPath("$.c.d"); err == nil {
		t.Error("expected type error")
	}

	if err := y.SetPath("$.a[0]", FromString("x")); err != nil {
		t.Fatal(err)
	}
	if err := y.SetPath("$.c", FromBool(true)); err != nil {
		t.Fatal(err)
	}
	out, err := ToJSON(y)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(`{"a":["x",{"b":2}],"c":true}`, string(out)); diff != "" {
		t.Error(diff)
	}
	if err := y.SetPath("$.nope", Null()); err == nil {
		t.Error("expected error setting a missing path")
	}
	if err := y.SetPath("$", FromInt(1)); err != nil {
		t.Fatal(err)
	}
	if y.Type != NumberType {
		t.Errorf("root not replaced: %s", y.Type)
	}
}
