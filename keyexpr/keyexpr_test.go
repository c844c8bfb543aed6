package keyexpr

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/tony-coding/coding"
	"github.com/signadot/tony-coding/ir"
)

func TestRename(t *testing.T) {
	tests := []struct {
		src  string
		path coding.Path
		want string
	}{
		{`snake(key)`, coding.Path{coding.NameKey("userName")}, "user_name"},
		{`camel(key)`, coding.Path{coding.NameKey("user_name")}, "userName"},
		{`upper(key)`, coding.Path{coding.NameKey("id")}, "ID"},
		{`depth == 1 ? key : path[0] + "_" + key`, coding.Path{coding.NameKey("a"), coding.NameKey("b")}, "a_b"},
		{`isIndex ? "i" + string(index) : key`, coding.Path{coding.IndexKey(4)}, "i4"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			s, err := Compile(tt.src)
			if err != nil {
				t.Fatal(err)
			}
			k, err := s.Rename(tt.path)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, k.String()); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestCompileErrors(t *testing.T) {
	for _, src := range []string{`key +`, `1 + 2`, `nokey`} {
		if _, err := Compile(src); err == nil {
			t.Errorf("%q: expected error", src)
		}
	}
}

func TestKeyStrategy(t *testing.T) {
	s, err := Compile(`depth > 1 ? snake(key) : upper(key)`)
	if err != nil {
		t.Fatal(err)
	}
	y, err := ir.FromJSON([]byte(`{"top":{"innerKey":[{"deepKey":1}]}}`))
	if err != nil {
		t.Fatal(err)
	}
	v, err := coding.NewEncoder(coding.WithKeyStrategy(s.KeyStrategy())).Encode(y, ir.NewContext())
	if err != nil {
		t.Fatal(err)
	}
	out, err := ir.ToJSON(v.(*ir.Node))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(`{"TOP":{"inner_key":[{"deep_key":1}]}}`, string(out)); diff != "" {
		t.Error(diff)
	}
}

func TestKeyStrategyKeepsKeyOnError(t *testing.T) {
	s, err := Compile(`path[3]`)
	if err != nil {
		t.Fatal(err)
	}
	strategy := s.KeyStrategy()
	y := ir.FromKeyVals([]ir.KeyVal{{Key: "kept", Val: ir.Null()}})
	v, err := coding.Encode(y, ir.NewContext(), coding.WithKeyStrategy(strategy))
	if err != nil {
		t.Fatal(err)
	}
	if got := v.(*ir.Node).PropertyNames(); !cmp.Equal(got, []string{"kept"}) {
		t.Errorf("got %v", got)
	}
}
