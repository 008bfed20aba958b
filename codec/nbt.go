package codec

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/Tnze/go-mc/nbt"

	"github.com/mcscan/biomefind/ir"
)

// tree decodes an NBT value straight into an ir tree, keeping compound
// entries in stored order.  Leaf payloads are decoded by go-mc.
type tree struct {
	node *ir.Node
}

func (t *tree) UnmarshalNBT(tagType byte, r nbt.DecoderReader) error {
	switch tagType {
	case nbt.TagCompound:
		return t.compound(r)
	case nbt.TagList:
		return t.list(r)
	}
	var raw nbt.RawMessage
	if err := raw.UnmarshalNBT(tagType, r); err != nil {
		return err
	}
	var v any
	if err := raw.Unmarshal(&v); err != nil {
		return err
	}
	node, err := FromNBT(v)
	if err != nil {
		return err
	}
	t.node = node
	return nil
}

func (t *tree) compound(r nbt.DecoderReader) error {
	t.node = ir.NewCompound()
	for {
		tagType, err := r.ReadByte()
		if err != nil {
			return err
		}
		if tagType == nbt.TagEnd {
			return nil
		}
		name, err := readName(r)
		if err != nil {
			return err
		}
		child := &tree{}
		if err := child.UnmarshalNBT(tagType, r); err != nil {
			return fmt.Errorf("%q: %w", name, err)
		}
		t.node.Set(name, child.node)
	}
}

func (t *tree) list(r nbt.DecoderReader) error {
	elem, err := r.ReadByte()
	if err != nil {
		return err
	}
	var n int32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return err
	}
	if n < 0 {
		return fmt.Errorf("list length %d", n)
	}
	vs := make([]*ir.Node, n)
	for i := range vs {
		child := &tree{}
		if err := child.UnmarshalNBT(elem, r); err != nil {
			return fmt.Errorf("[%d]: %w", i, err)
		}
		vs[i] = child.node
	}
	t.node, err = ir.FromList(ir.Type(elem), vs...)
	return err
}

func readName(r io.Reader) (string, error) {
	var n uint16
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}
