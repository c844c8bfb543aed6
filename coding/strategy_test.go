package coding_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/tony-coding/coding"
	"github.com/signadot/tony-coding/ir"
)

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"userName", "user_name"},
		{"userID", "user_i_d"},
		{"", ""},
		{"id", "id"},
		{"already_snake", "already_snake"},
		{"URL", "_u_r_l"},
		{"aÉb", "a_éb"},
		{"wİth", "w_i̇th"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := coding.ToSnakeCase(tt.in); got != tt.want {
				t.Errorf("ToSnakeCase(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromSnakeCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"user_id", "userId"},
		{"_x", "X"},
		{"trailing_", "trailing"},
		{"", ""},
		{"plain", "plain"},
		{"a__b", "a_b"},
		{"stra_ße", "straSSe"},
		{"a_éb", "aÉb"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := coding.FromSnakeCase(tt.in); got != tt.want {
				t.Errorf("FromSnakeCase(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSnakeCaseNotInverse(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"user_ID", "user_i_d"},
		{"HTTP_server", "_h_t_t_p_server"},
	}
	for _, tt := range tests {
		got := coding.ToSnakeCase(coding.FromSnakeCase(tt.in))
		if got != tt.want {
			t.Errorf("round trip of %q = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestKeyStrategyString(t *testing.T) {
	tests := []struct {
		s    coding.KeyStrategy
		want string
	}{
		{coding.KeyStrategy{}, "default"},
		{coding.UseDefaultKeys, "default"},
		{coding.ConvertToSnakeCase, "toSnakeCase"},
		{coding.ConvertFromSnakeCase, "fromSnakeCase"},
		{coding.CustomKeys(func(p coding.Path) coding.Key { return coding.NameKey("x") }), "custom"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestCustomKeysSeeFullPath(t *testing.T) {
	var seen []string
	strategy := coding.CustomKeys(func(p coding.Path) coding.Key {
		seen = append(seen, p.String())
		last, _ := p.Last()
		return coding.NameKey("k_" + last.String())
	})
	v := team{Name: "core", Members: []user{{ID: 1, Name: "Ann"}}}
	got := encodeJSON(t, v, coding.WithKeyStrategy(strategy))
	want := `{"k_name":"core","k_members":[{"k_id":1,"k_name":"Ann"}]}`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("encoded (-want +got):\n%s", diff)
	}
	wantSeen := []string{"$.name", "$.members", "$.members[0].id", "$.members[0].name"}
	if diff := cmp.Diff(wantSeen, seen); diff != "" {
		t.Errorf("paths (-want +got):\n%s", diff)
	}
}

func TestCustomKeysNilFunc(t *testing.T) {
	enc := coding.NewEncoder(coding.WithKeyStrategy(coding.CustomKeys(nil)))
	expectContract(t, "key", func() {
		enc.Encode(user{ID: 1}, ir.NewContext())
	})
}
