package encode

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mcscan/biomefind/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth, indent int

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node as an indented tree.  Compounds are written as
// "key: value" lines, lists as "- value" lines and scalars in NBT text
// notation (1b, 2s, 3, 4L, 1.5f, 2.5d, "s", [I; 1, 2]).
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if !isBlock(node) {
		if err := encodeLeaf(node, w, es); err != nil {
			return err
		}
		return writeString(w, "\n")
	}
	return encodeBlock(node, w, es)
}

func isBlock(node *ir.Node) bool {
	switch node.Type {
	case ir.CompoundType, ir.ListType:
		return len(node.Values) != 0
	default:
		return false
	}
}

func encodeBlock(node *ir.Node, w io.Writer, es *EncState) error {
	pad := strings.Repeat(" ", es.depth*es.indent)
	for i, v := range node.Values {
		if err := writeString(w, pad); err != nil {
			return err
		}
		if node.Type == ir.CompoundType {
			key := fieldString(node.Fields[i])
			if err := writeString(w, es.color(node.Type, FieldColor, key)+es.color(node.Type, SepColor, ":")); err != nil {
				return err
			}
		} else {
			if err := writeString(w, es.color(node.Type, SepColor, "-")); err != nil {
				return err
			}
		}
		if isBlock(v) {
			if err := writeString(w, "\n"); err != nil {
				return err
			}
			es.depth++
			err := encodeBlock(v, w, es)
			es.depth--
			if err != nil {
				return err
			}
			continue
		}
		if err := writeString(w, " "); err != nil {
			return err
		}
		if err := encodeLeaf(v, w, es); err != nil {
			return err
		}
		if err := writeString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func encodeLeaf(node *ir.Node, w io.Writer, es *EncState) error {
	s, err := leafString(node)
	if err != nil {
		return err
	}
	return writeString(w, es.color(node.Type, ValueColor, s))
}

func leafString(node *ir.Node) (string, error) {
	switch node.Type {
	case ir.EndType:
		return "end", nil
	case ir.ByteType:
		return strconv.FormatInt(node.Int64, 10) + "b", nil
	case ir.ShortType:
		return strconv.FormatInt(node.Int64, 10) + "s", nil
	case ir.IntType:
		return strconv.FormatInt(node.Int64, 10), nil
	case ir.LongType:
		return strconv.FormatInt(node.Int64, 10) + "L", nil
	case ir.FloatType:
		return strconv.FormatFloat(node.Float64, 'g', -1, 32) + "f", nil
	case ir.DoubleType:
		return strconv.FormatFloat(node.Float64, 'g', -1, 64) + "d", nil
	case ir.StringType:
		return strconv.Quote(node.String), nil
	case ir.ByteArrayType:
		return arrayString("B", len(node.Bytes), func(i int) int64 { return int64(int8(node.Bytes[i])) }), nil
	case ir.IntArrayType:
		return arrayString("I", len(node.Ints), func(i int) int64 { return int64(node.Ints[i]) }), nil
	case ir.LongArrayType:
		return arrayString("L", len(node.Longs), func(i int) int64 { return node.Longs[i] }), nil
	case ir.CompoundType:
		return "{}", nil
	case ir.ListType:
		return "[]", nil
	default:
		return "", fmt.Errorf("%w: unknown type %d", ErrEncoding, node.Type)
	}
}

func arrayString(prefix string, n int, at func(int) int64) string {
	buf := &strings.Builder{}
	buf.WriteString("[" + prefix + ";")
	for i := range n {
		if i != 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte(' ')
		buf.WriteString(strconv.FormatInt(at(i), 10))
	}
	buf.WriteByte(']')
	return buf.String()
}

func fieldString(f string) string {
	if f != "" && strings.IndexAny(f, " :\"'\t\n-#") == -1 {
		return f
	}
	return strconv.Quote(f)
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
