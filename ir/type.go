package ir

// Type is the tag type of a node.  The numeric values are the NBT tag ids.
type Type int

const (
	EndType Type = iota
	ByteType
	ShortType
	IntType
	LongType
	FloatType
	DoubleType
	ByteArrayType
	StringType
	ListType
	CompoundType
	IntArrayType
	LongArrayType
)

var typeNames = map[Type]string{
	EndType:       "End",
	ByteType:      "Byte",
	ShortType:     "Short",
	IntType:       "Int",
	LongType:      "Long",
	FloatType:     "Float",
	DoubleType:    "Double",
	ByteArrayType: "ByteArray",
	StringType:    "String",
	ListType:      "List",
	CompoundType:  "Compound",
	IntArrayType:  "IntArray",
	LongArrayType: "LongArray",
}

func (t Type) String() string {
	s, ok := typeNames[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func Types() []Type {
	return []Type{
		EndType,
		ByteType,
		ShortType,
		IntType,
		LongType,
		FloatType,
		DoubleType,
		ByteArrayType,
		StringType,
		ListType,
		CompoundType,
		IntArrayType,
		LongArrayType,
	}
}
