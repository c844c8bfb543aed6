package ir

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/tony-coding/coding"
)

func TestNodeCoding(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		strategy coding.KeyStrategy
		want     string
	}{
		{
			name: "identity",
			in:   `{"a":[1,-2.5,"s",true,null,{}],"b":{"c":[]}}`,
			want: `{"a":[1,-2.5,"s",true,null,{}],"b":{"c":[]}}`,
		},
		{
			name:     "snake",
			in:       `{"userName":{"firstName":"a"},"list":[{"itemID":1}]}`,
			strategy: coding.ConvertToSnakeCase,
			want:     `{"user_name":{"first_name":"a"},"list":[{"item_i_d":1}]}`,
		},
		{
			name:     "camel",
			in:       `{"user_name":{"first_name":"a"}}`,
			strategy: coding.ConvertFromSnakeCase,
			want:     `{"userName":{"firstName":"a"}}`,
		},
		{
			name: "wide integers",
			in:   `[9000000000,-9000000000,2147483647]`,
			want: `[9000000000,-9000000000,2147483647]`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, err := FromJSON([]byte(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			var tree Node
			if err := coding.NewDecoder().Decode(y, &tree); err != nil {
				t.Fatal(err)
			}
			v, err := coding.NewEncoder(coding.WithKeyStrategy(tt.strategy)).Encode(&tree, NewContext())
			if err != nil {
				t.Fatal(err)
			}
			out, err := ToJSON(v.(*Node))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, string(out)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestNodeCodingDate(t *testing.T) {
	when := time.Date(2020, 1, 1, 0, 0, 0, 5, time.UTC)
	y := FromKeyVals([]KeyVal{{Key: "at", Val: FromTime(when)}})
	v, err := coding.Encode(y, NewContext())
	if err != nil {
		t.Fatal(err)
	}
	var back Node
	if err := coding.Decode(v, &back); err != nil {
		t.Fatal(err)
	}
	at := Get(&back, "at")
	if at.Tag != DateTag {
		t.Fatalf("date tag lost: %+v", at)
	}
	if got, _ := at.ToDate(); !got.Equal(when) {
		t.Errorf("got %s", got)
	}
}
