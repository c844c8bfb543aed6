package coding_test

import (
	"errors"
	"testing"
	"time"

	"github.com/signadot/tony-coding/coding"
	"github.com/signadot/tony-coding/dyn"
	"github.com/signadot/tony-coding/ir"
)

var (
	idKey       = coding.NameKey("id")
	nameKey     = coding.NameKey("name")
	userNameKey = coding.NameKey("userName")
)

type user struct {
	ID       int
	Name     string
	UserName string
}

func (u user) EncodeTo(w *coding.Writer) error {
	k := w.Keyed()
	k.EncodeInt(idKey, u.ID)
	k.EncodeString(nameKey, u.Name)
	if u.UserName != "" {
		k.EncodeString(userNameKey, u.UserName)
	}
	return nil
}

func (u *user) DecodeFrom(r *coding.Reader) error {
	k := r.Keyed()
	u.ID = k.DecodeInt(idKey)
	u.Name = k.DecodeString(nameKey)
	if k.Contains(userNameKey) {
		u.UserName = k.DecodeString(userNameKey)
	}
	return nil
}

type team struct {
	Name    string
	Members []user
}

func (t team) EncodeTo(w *coding.Writer) error {
	k := w.Keyed()
	k.EncodeString(nameKey, t.Name)
	o := k.NestedOrdered(coding.NameKey("members"))
	for _, m := range t.Members {
		if err := o.Encode(m); err != nil {
			return err
		}
	}
	return nil
}

func (t *team) DecodeFrom(r *coding.Reader) error {
	k := r.Keyed()
	t.Name = k.DecodeString(nameKey)
	o := k.NestedOrdered(coding.NameKey("members"))
	t.Members = nil
	for !o.IsAtEnd() {
		var m user
		if err := o.Decode(&m); err != nil {
			return err
		}
		t.Members = append(t.Members, m)
	}
	return nil
}

type shape struct {
	Kind string
}

func (s shape) EncodeTo(w *coding.Writer) error {
	w.Keyed().EncodeString(coding.NameKey("kind"), s.Kind)
	return nil
}

func (s *shape) DecodeFrom(r *coding.Reader) error {
	s.Kind = r.Keyed().DecodeString(coding.NameKey("kind"))
	return nil
}

type box struct {
	shape
	Size int
}

func (b box) EncodeTo(w *coding.Writer) error {
	k := w.Keyed()
	k.EncodeInt(coding.NameKey("size"), b.Size)
	return b.shape.EncodeTo(k.Super())
}

func (b *box) DecodeFrom(r *coding.Reader) error {
	k := r.Keyed()
	b.Size = k.DecodeInt(coding.NameKey("size"))
	return b.shape.DecodeFrom(k.Super())
}

type celsius float64

func (c celsius) EncodeTo(w *coding.Writer) error {
	w.Single().EncodeFloat64(float64(c))
	return nil
}

func (c *celsius) DecodeFrom(r *coding.Reader) error {
	*c = celsius(r.Single().DecodeFloat64())
	return nil
}

type event struct {
	At time.Time
}

func (e event) EncodeTo(w *coding.Writer) error {
	return w.Keyed().Encode(coding.NameKey("at"), e.At)
}

func (e *event) DecodeFrom(r *coding.Reader) error {
	return r.Keyed().Decode(coding.NameKey("at"), &e.At)
}

var errBoom = errors.New("boom")

type failing struct{}

func (failing) EncodeTo(*coding.Writer) error    { return errBoom }
func (*failing) DecodeFrom(*coding.Reader) error { return errBoom }

// funcEncoder lets a test drive a Writer directly.
type funcEncoder func(w *coding.Writer) error

func (f funcEncoder) EncodeTo(w *coding.Writer) error { return f(w) }

type funcDecoder func(r *coding.Reader) error

func (f funcDecoder) DecodeFrom(r *coding.Reader) error { return f(r) }

func toJSON(t *testing.T, v dyn.Value) string {
	t.Helper()
	d, err := ir.ToJSON(v.(*ir.Node))
	if err != nil {
		t.Fatal(err)
	}
	return string(d)
}

func fromJSON(t *testing.T, s string) *ir.Node {
	t.Helper()
	y, err := ir.FromJSON([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return y
}

func encodeJSON(t *testing.T, v coding.Encodable, opts ...coding.EncoderOption) string {
	t.Helper()
	res, err := coding.NewEncoder(opts...).Encode(v, ir.NewContext())
	if err != nil {
		t.Fatal(err)
	}
	return toJSON(t, res)
}

func expectContract(t *testing.T, op string, f func()) *coding.ContractError {
	t.Helper()
	var ce *coding.ContractError
	func() {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			e, ok := r.(*coding.ContractError)
			if !ok {
				panic(r)
			}
			ce = e
		}()
		f()
	}()
	if ce == nil {
		t.Fatalf("expected %s contract error, got none", op)
	}
	if ce.Op != op {
		t.Errorf("got contract error op %q, want %q (%v)", ce.Op, op, ce)
	}
	return ce
}
