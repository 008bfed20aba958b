package codec

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/mcscan/biomefind/ir"
)

// FromNBT converts the generic value produced by decoding NBT into an
// interface (maps, slices and sized numbers) to an ir tree.  Map keys carry
// no order and are placed in sorted order; DecodeTree keeps stored order.
func FromNBT(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return &ir.Node{Type: ir.EndType}, nil
	case int8:
		return ir.FromByte(x), nil
	case uint8:
		return ir.FromByte(int8(x)), nil
	case bool:
		if x {
			return ir.FromByte(1), nil
		}
		return ir.FromByte(0), nil
	case int16:
		return ir.FromShort(x), nil
	case int32:
		return ir.FromInt(x), nil
	case int64:
		return ir.FromLong(x), nil
	case float32:
		return ir.FromFloat(x), nil
	case float64:
		return ir.FromDouble(x), nil
	case string:
		return ir.FromString(x), nil
	case []byte:
		return ir.FromBytes(x), nil
	case []int8:
		bs := make([]byte, len(x))
		for i, b := range x {
			bs[i] = byte(b)
		}
		return ir.FromBytes(bs), nil
	case []int32:
		return ir.FromInts(x), nil
	case []int64:
		return ir.FromLongs(x), nil
	case map[string]any:
		res := ir.NewCompound()
		for _, k := range slices.Sorted(maps.Keys(x)) {
			child, err := FromNBT(x[k])
			if err != nil {
				return nil, err
			}
			res.Set(k, child)
		}
		return res, nil
	case []any:
		return listFromNBT(len(x), func(i int) any { return x[i] })
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return listFromNBT(rv.Len(), func(i int) any { return rv.Index(i).Interface() })
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		res := ir.NewCompound()
		keys := rv.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			return strings.Compare(a.String(), b.String())
		})
		for _, k := range keys {
			child, err := FromNBT(rv.MapIndex(k).Interface())
			if err != nil {
				return nil, err
			}
			res.Set(k.String(), child)
		}
		return res, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
}

func listFromNBT(n int, at func(int) any) (*ir.Node, error) {
	elems := make([]*ir.Node, n)
	elem := ir.EndType
	for i := range n {
		child, err := FromNBT(at(i))
		if err != nil {
			return nil, err
		}
		if i == 0 {
			elem = child.Type
		}
		elems[i] = child
	}
	return ir.FromList(elem, elems...)
}
