package codec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/Tnze/go-mc/nbt"
	"github.com/klauspost/compress/gzip"

	"github.com/mcscan/biomefind/debug"
	"github.com/mcscan/biomefind/ir"
)

// Compression names a scheme DecodeTree can try.
type Compression int

const (
	GZip Compression = iota
	None
)

func (c Compression) String() string {
	switch c {
	case GZip:
		return "gzip"
	case None:
		return "none"
	default:
		return "<unknown compression>"
	}
}

// decodeOrder is the fallback order used by DecodeTree.
var decodeOrder = []Compression{GZip, None}

// DecodeTree decodes an NBT document, first as gzip compressed data and then
// as uncompressed data.  The first attempt yielding a non-empty root wins.
func DecodeTree(data []byte) (*ir.Node, error) {
	var errs []error
	for _, c := range decodeOrder {
		node, err := decodeAs(data, c)
		if err == nil && node.IsEmpty() {
			err = ErrEmptyRoot
		}
		if debug.Decode() {
			debug.Logf("decode %d bytes as %s: err=%v\n", len(data), c, err)
		}
		if err == nil {
			return node, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", c, err))
	}
	return nil, &DecodeError{Attempts: errs}
}

func decodeAs(data []byte, c Compression) (*ir.Node, error) {
	raw := data
	if c == GZip {
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		raw, err = io.ReadAll(zr)
		if err != nil {
			return nil, err
		}
	}
	var t tree
	if err := nbt.Unmarshal(raw, &t); err != nil {
		return nil, err
	}
	return t.node, nil
}
