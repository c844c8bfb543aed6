// Package coding converts between typed Go values and dynamic tree values.
//
// # Usage
//
// A type takes part by implementing Encodable and Decodable and walking its
// own fields through one of three containers:
//
//	type User struct {
//	    ID   int
//	    Name string
//	}
//
//	func (u User) EncodeTo(w *coding.Writer) error {
//	    k := w.Keyed()
//	    k.EncodeInt(coding.NameKey("id"), u.ID)
//	    k.EncodeString(coding.NameKey("name"), u.Name)
//	    return nil
//	}
//
//	func (u *User) DecodeFrom(r *coding.Reader) error {
//	    k := r.Keyed()
//	    u.ID = k.DecodeInt(coding.NameKey("id"))
//	    u.Name = k.DecodeString(coding.NameKey("name"))
//	    return nil
//	}
//
//	v, err := coding.NewEncoder().Encode(User{ID: 7, Name: "Ann"}, ir.NewContext())
//	u, err := coding.DecodeAs[User](coding.NewDecoder(), v)
//
// The keyed containers address object properties, the ordered containers
// walk arrays from the front, and the single-value containers read or write
// the current value itself. Nested records go through Encode/Decode on a
// container, which spawns a child Writer or Reader one key deeper.
//
// # Keys
//
// Each key passes through the configured KeyStrategy before it touches the
// tree: UseDefaultKeys, ConvertToSnakeCase, ConvertFromSnakeCase or a
// CustomKeys function which sees the whole path.
//
// # Numbers
//
// Every sized integer goes through the runtime's 32-bit conversions: signed
// kinds through Int32/ToInt32, unsigned kinds through Uint32/ToUint32. Values
// outside 32 bits wrap and do not round trip. Float32 goes through float64.
//
// # Errors
//
// Errors returned by EncodeTo and DecodeFrom propagate unchanged. Scalar
// decodes never fail; they return the runtime's coercion of whatever value
// is present. Broken invariants, such as reading a Writer result that was
// never set or setting it twice, panic with a *ContractError.
//
// # Related Packages
//
//   - github.com/signadot/tony-coding/dyn - runtime contract
//   - github.com/signadot/tony-coding/ir - tree runtime backed by *ir.Node
//   - github.com/signadot/tony-coding/keyexpr - expression key strategies
package coding

// Encodable is implemented by values which write themselves to a Writer.
type Encodable interface {
	EncodeTo(w *Writer) error
}

// Decodable is implemented by pointers which read themselves from a Reader.
type Decodable interface {
	DecodeFrom(r *Reader) error
}
