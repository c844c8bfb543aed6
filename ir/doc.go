// Package ir provides an in-memory dynamic tree and the runtime the codec in
// package coding uses to build and read it.
//
// # Node Structure
//
// A Node is a recursive tagged union. The Type field indicates which other
// fields hold the value:
//
//   - NullType: no value
//   - BoolType: Bool
//   - NumberType: Int64 for integers, Float64 otherwise
//   - StringType: String
//   - ObjectType: Fields[i] is the string key for Values[i]
//   - ArrayType: Values, in order
//
// Dates are string nodes tagged with DateTag whose String holds an RFC 3339
// rendering:
//
//	t := ir.FromTime(time.Now())
//	t.Tag // "!date"
//
// Each child keeps a link to its Parent together with ParentIndex and, for
// object members, ParentField. Use Path() to get a JSONPath-style path:
//
//	path := node.Path() // e.g., "$.foo.bar[0]"
//
// # Runtime
//
// *Node implements dyn.Value and *Context implements dyn.Runtime:
//
//	ctx := ir.NewContext()
//	v, err := coding.NewEncoder().Encode(person, ctx)
//	node := v.(*ir.Node)
//
// Reads are permissive. A missing property reads as null, and the To*
// conversions follow JavaScript coercion rules: strings parse to numbers or
// NaN, integers wrap modulo 2^32 in ToInt32/ToUint32, objects are truthy.
//
// # Codec
//
// *Node is itself coding.Encodable and coding.Decodable, so an arbitrary tree
// can be pushed through an Encoder or Decoder, for example to rename every
// key with a KeyStrategy.
//
// # Text
//
// ToJSON/FromJSON and ToYAML/FromYAML convert trees to and from text,
// preserving object key order.
//
// # Thread Safety
//
// Node structures are not thread-safe.
package ir
