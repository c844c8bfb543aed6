package main

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hengadev/errsx"
	"github.com/signadot/tony-coding/coding"
	"github.com/signadot/tony-coding/ir"
	"github.com/signadot/tony-coding/libdiff"
)

func TestRekeyDoc(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		strategy coding.KeyStrategy
		at       string
		want     string
	}{
		{
			name:     "whole document",
			in:       `{"userName":"a","tags":[{"tagID":1}]}`,
			strategy: coding.ConvertToSnakeCase,
			want:     `{"user_name":"a","tags":[{"tag_i_d":1}]}`,
		},
		{
			name:     "subtree",
			in:       `{"keepMe":{"x_y":1},"spec":{"first_name":"a"}}`,
			strategy: coding.ConvertFromSnakeCase,
			at:       "$.spec",
			want:     `{"keepMe":{"x_y":1},"spec":{"firstName":"a"}}`,
		},
		{
			name:     "array element",
			in:       `[{"a_b":1},{"c_d":2}]`,
			strategy: coding.ConvertFromSnakeCase,
			at:       "$[1]",
			want:     `[{"a_b":1},{"cD":2}]`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ir.FromJSON([]byte(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			res, err := rekeyDoc(doc, tt.strategy, tt.at)
			if err != nil {
				t.Fatal(err)
			}
			out, err := ir.ToJSON(res)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, string(out)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
			orig, _ := ir.ToJSON(doc)
			if string(orig) != tt.in {
				t.Errorf("input modified: %s", orig)
			}
		})
	}
	doc, _ := ir.FromJSON([]byte(`{}`))
	if _, err := rekeyDoc(doc, coding.UseDefaultKeys, "$.missing"); err == nil {
		t.Error("expected error for a missing path")
	}
}

func TestKeyStrategyFlags(t *testing.T) {
	var errs errsx.Map
	if s := keyStrategy(&errs, true, false, ""); s.String() != "toSnakeCase" {
		t.Errorf("got %s", s)
	}
	if s := keyStrategy(&errs, false, true, ""); s.String() != "fromSnakeCase" {
		t.Errorf("got %s", s)
	}
	if s := keyStrategy(&errs, false, false, "upper(key)"); s.String() != "custom" {
		t.Errorf("got %s", s)
	}
	if !errs.IsEmpty() {
		t.Fatalf("unexpected errors: %v", errs.AsError())
	}
	keyStrategy(&errs, true, true, "")
	keyStrategy(&errs, false, false, "key +")
	if len(errs) != 2 {
		t.Errorf("got %d errors: %v", len(errs), errs.AsError())
	}
}

func TestRenameLast(t *testing.T) {
	tests := []struct {
		arg      string
		strategy coding.KeyStrategy
		want     string
	}{
		{"userName", coding.ConvertToSnakeCase, "user_name"},
		{"user_name", coding.ConvertFromSnakeCase, "userName"},
		{"$.a[2].someKey", coding.ConvertToSnakeCase, "some_key"},
		{"$.a.'b.c'", coding.UseDefaultKeys, "b.c"},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			p, err := keyPath(tt.arg)
			if err != nil {
				t.Fatal(err)
			}
			got, err := renameLast(tt.strategy, p)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
	if _, err := keyPath("$"); err == nil {
		t.Error("expected error for a path without keys")
	}
}

func TestWriteLines(t *testing.T) {
	buf := &bytes.Buffer{}
	lines := libdiff.Lines("{\n  \"userName\": 1\n}\n", "{\n  \"user_name\": 1\n}\n")
	if err := writeLines(buf, lines, false); err != nil {
		t.Fatal(err)
	}
	want := ` {
-  "userName": 1
+  "user_name": 1
 }
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
