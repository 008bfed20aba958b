// Package ir provides the in-memory representation of decoded NBT data.
//
// A decoded payload is a tree of *Node values.  Node is a recursive tagged
// union: Type says which of the payload fields is meaningful.
//
//   - ByteType, ShortType, IntType, LongType: Int64
//   - FloatType, DoubleType: Float64
//   - StringType: String
//   - ByteArrayType, IntArrayType, LongArrayType: Bytes, Ints, Longs
//   - ListType: Values, all of type Elem
//   - CompoundType: Fields and Values, Fields[i] naming Values[i]
//
// Compound keys are unique; Set on an existing key replaces the value in
// place.  Every child records its Parent, ParentIndex and ParentField, so a
// node can report where it sits with Path.
//
// Nodes are not safe for concurrent mutation.
package ir
