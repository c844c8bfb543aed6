package libdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/tony-coding/ir"
)

func TestLines(t *testing.T) {
	got := Lines("a\nb\nc\n", "a\nx\nc\n")
	want := []Line{
		{Op: Equal, Text: "a"},
		{Op: Delete, Text: "b"},
		{Op: Insert, Text: "x"},
		{Op: Equal, Text: "c"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if !Changed(got) {
		t.Error("not changed")
	}
	if Changed(Lines("same\n", "same\n")) {
		t.Error("identical input changed")
	}
}

func TestMergePatch(t *testing.T) {
	from, err := ir.FromJSON([]byte(`{"a":1,"b":{"c":2,"d":3}}`))
	if err != nil {
		t.Fatal(err)
	}
	to, err := ir.FromJSON([]byte(`{"a":1,"b":{"c":2},"e":"x"}`))
	if err != nil {
		t.Fatal(err)
	}
	patch, err := MergePatch(from, to)
	if err != nil {
		t.Fatal(err)
	}
	d, err := ir.ToJSON(patch)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(`{"b":{"d":null},"e":"x"}`, string(d)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	res, err := ApplyMergePatch(from, patch)
	if err != nil {
		t.Fatal(err)
	}
	got, err := ir.ToJSON(res)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(`{"a":1,"b":{"c":2},"e":"x"}`, string(got)); diff != "" {
		t.Errorf("applied patch (-want +got):\n%s", diff)
	}
}
