// Package codectest writes NBT payloads and region files for tests.
package codectest

import (
	"bytes"
	"testing"

	"github.com/Tnze/go-mc/nbt"
	"github.com/Tnze/go-mc/save/region"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// Cell addresses one slot of a region grid.
type Cell struct{ X, Z int }

// Raw encodes v as an uncompressed NBT document with an empty root name.
func Raw(t testing.TB, v any) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	if err := nbt.NewEncoder(buf).Encode(v, ""); err != nil {
		t.Fatalf("nbt encode: %v", err)
	}
	return buf.Bytes()
}

// GZip compresses raw with gzip.
func GZip(t testing.TB, raw []byte) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	gw := gzip.NewWriter(buf)
	gw.Write(raw)
	if err := gw.Close(); err != nil {
		t.Fatalf("gzip: %v", err)
	}
	return buf.Bytes()
}

// Zlib compresses raw with zlib.
func Zlib(t testing.TB, raw []byte) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	zw := zlib.NewWriter(buf)
	zw.Write(raw)
	if err := zw.Close(); err != nil {
		t.Fatalf("zlib: %v", err)
	}
	return buf.Bytes()
}

// Sector prefixes a compressed payload with its scheme byte.
func Sector(scheme byte, payload []byte) []byte {
	return append([]byte{scheme}, payload...)
}

// WriteRegion creates a region file at path holding the given sectors.
func WriteRegion(t testing.TB, path string, sectors map[Cell][]byte) {
	t.Helper()
	r, err := region.Create(path)
	if err != nil {
		t.Fatalf("create region %s: %v", path, err)
	}
	defer r.Close()
	for cell, data := range sectors {
		if err := r.WriteSector(cell.X, cell.Z, data); err != nil {
			t.Fatalf("write sector %v: %v", cell, err)
		}
	}
}

// Columns builds a zlib sector whose root compound maps each column key to
// its compound.
func Columns(t testing.TB, cols map[string]map[string]any) []byte {
	t.Helper()
	root := make(map[string]any, len(cols))
	for k, v := range cols {
		root[k] = v
	}
	return Sector(2, Zlib(t, Raw(t, root)))
}
