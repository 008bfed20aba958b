package ir

import (
	"fmt"
	"maps"
	"slices"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string

	// Fields[i] names Values[i] for compounds.  For lists, Values holds the
	// elements and Elem their common type.
	Fields []string
	Values []*Node
	Elem   Type

	Int64   int64
	Float64 float64
	String  string
	Bytes   []byte
	Ints    []int32
	Longs   []int64
}

func FromByte(v int8) *Node {
	return &Node{Type: ByteType, Int64: int64(v)}
}

func FromShort(v int16) *Node {
	return &Node{Type: ShortType, Int64: int64(v)}
}

func FromInt(v int32) *Node {
	return &Node{Type: IntType, Int64: int64(v)}
}

func FromLong(v int64) *Node {
	return &Node{Type: LongType, Int64: v}
}

func FromFloat(v float32) *Node {
	return &Node{Type: FloatType, Float64: float64(v)}
}

func FromDouble(v float64) *Node {
	return &Node{Type: DoubleType, Float64: v}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromBytes(v []byte) *Node {
	return &Node{Type: ByteArrayType, Bytes: v}
}

func FromInts(v []int32) *Node {
	return &Node{Type: IntArrayType, Ints: v}
}

func FromLongs(v []int64) *Node {
	return &Node{Type: LongArrayType, Longs: v}
}

// FromList builds a list whose elements all have type elem.  An empty list
// may use EndType as its element type.
func FromList(elem Type, vs ...*Node) (*Node, error) {
	res := &Node{Type: ListType, Elem: elem}
	res.Values = make([]*Node, len(vs))
	for i, v := range vs {
		if v.Type != elem {
			return nil, fmt.Errorf("%w: element %d is %s in list of %s", ErrMixedList, i, v.Type, elem)
		}
		v.Parent = res
		v.ParentIndex = i
		v.ParentField = ""
		res.Values[i] = v
	}
	return res, nil
}

func NewCompound() *Node {
	return &Node{Type: CompoundType}
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds a compound in the order given.  A repeated key
// overwrites the earlier value and keeps its position.
func FromKeyVals(kvs []KeyVal) *Node {
	res := NewCompound()
	for _, kv := range kvs {
		res.Set(kv.Key, kv.Val)
	}
	return res
}

// FromMap builds a compound with its keys in sorted order.
func FromMap(m map[string]*Node) *Node {
	res := NewCompound()
	for _, key := range slices.Sorted(maps.Keys(m)) {
		res.Set(key, m[key])
	}
	return res
}

// Set assigns v to key in a compound node.
func (y *Node) Set(key string, v *Node) {
	if y.Type != CompoundType {
		panic(fmt.Sprintf("Set on %s node", y.Type))
	}
	v.Parent = y
	v.ParentField = key
	if i := slices.Index(y.Fields, key); i != -1 {
		v.ParentIndex = i
		y.Values[i] = v
		return
	}
	v.ParentIndex = len(y.Values)
	y.Fields = append(y.Fields, key)
	y.Values = append(y.Values, v)
}

// Get returns the value stored under key, or nil if y is not a compound or
// has no such key.
func (y *Node) Get(key string) *Node {
	if y.Type != CompoundType {
		return nil
	}
	i := slices.Index(y.Fields, key)
	if i == -1 {
		return nil
	}
	return y.Values[i]
}

func (y *Node) Len() int {
	switch y.Type {
	case CompoundType, ListType:
		return len(y.Values)
	case ByteArrayType:
		return len(y.Bytes)
	case IntArrayType:
		return len(y.Ints)
	case LongArrayType:
		return len(y.Longs)
	case StringType:
		return len(y.String)
	default:
		return 0
	}
}

// IsEmpty reports whether y carries no data: nil, an End tag or an empty
// compound.
func (y *Node) IsEmpty() bool {
	if y == nil {
		return true
	}
	switch y.Type {
	case EndType:
		return true
	case CompoundType:
		return len(y.Values) == 0
	default:
		return false
	}
}
