package codec_test

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mcscan/biomefind/codec"
	"github.com/mcscan/biomefind/codec/codectest"
	"github.com/mcscan/biomefind/ir"
)

var plains = map[string]any{
	"0,0": map[string]any{"biome_name": "minecraft:plains", "top_y": int32(64)},
	"0,1": map[string]any{"block": map[string]any{"Name": "minecraft:stone"}},
}

func TestDecodeTree(t *testing.T) {
	raw := codectest.Raw(t, plains)
	tests := []struct {
		name string
		data []byte
	}{
		{"gzip", codectest.GZip(t, raw)},
		{"raw", raw},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := codec.DecodeTree(tt.data)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff([]string{"0,0", "0,1"}, slices.Sorted(slices.Values(root.Fields))); diff != "" {
				t.Errorf("root fields (-want +got):\n%s", diff)
			}
			biome := root.Get("0,0").Get("biome_name")
			if biome == nil || biome.Type != ir.StringType || biome.String != "minecraft:plains" {
				t.Errorf("biome_name = %+v", biome)
			}
			topY := root.Get("0,0").Get("top_y")
			if topY == nil || topY.Type != ir.IntType || topY.Int64 != 64 {
				t.Errorf("top_y = %+v", topY)
			}
			name := root.Get("0,1").Get("block").Get("Name")
			if name == nil || name.String != "minecraft:stone" {
				t.Errorf("block name = %+v", name)
			}
		})
	}
}

func TestDecodeTreeStoredOrder(t *testing.T) {
	type block struct {
		Name string `nbt:"Name"`
	}
	type column struct {
		TopY   int32   `nbt:"top_y"`
		Biome  string  `nbt:"biome_name"`
		Block  block   `nbt:"block"`
		Layers []block `nbt:"layers"`
	}
	type chunk struct {
		C column `nbt:"9,9"`
		A column `nbt:"0,0"`
		B column `nbt:"4,1"`
	}
	col := column{
		TopY:   70,
		Biome:  "minecraft:plains",
		Block:  block{Name: "minecraft:stone"},
		Layers: []block{{Name: "minecraft:dirt"}, {Name: "minecraft:grass_block"}},
	}
	root, err := codec.DecodeTree(codectest.Raw(t, chunk{C: col, A: col, B: col}))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"9,9", "0,0", "4,1"}, root.Fields); diff != "" {
		t.Errorf("root fields (-want +got):\n%s", diff)
	}
	first := root.Get("9,9")
	if diff := cmp.Diff([]string{"top_y", "biome_name", "block", "layers"}, first.Fields); diff != "" {
		t.Errorf("column fields (-want +got):\n%s", diff)
	}
	layers := first.Get("layers")
	if layers.Type != ir.ListType || layers.Elem != ir.CompoundType || layers.Len() != 2 {
		t.Fatalf("layers = %+v", layers)
	}
	if got := layers.Values[1].Get("Name"); got == nil || got.String != "minecraft:grass_block" {
		t.Errorf("layers[1].Name = %+v", got)
	}
	if got := first.Get("block").Get("Name").Path(); got != "$.'9,9'.block.Name" {
		t.Errorf("path = %s", got)
	}
}

func TestDecodeTreeFailure(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"garbage", []byte{0xff, 0x01, 0x02}},
		{"empty", nil},
		{"empty root", codectest.Raw(t, map[string]any{})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.DecodeTree(tt.data)
			if !errors.Is(err, codec.ErrDecode) {
				t.Fatalf("err = %v, want ErrDecode", err)
			}
			var de *codec.DecodeError
			if !errors.As(err, &de) || len(de.Attempts) != 2 {
				t.Errorf("expected two attempts, got %v", err)
			}
		})
	}
}

func TestFromNBTTypes(t *testing.T) {
	node, err := codec.FromNBT(map[string]any{
		"b":  int8(1),
		"s":  int16(2),
		"i":  int32(3),
		"l":  int64(4),
		"f":  float32(1.5),
		"d":  float64(2.5),
		"ba": []byte{1, 2},
		"ia": []int32{1, 2},
		"la": []int64{1, 2},
		"ls": []any{"a", "b"},
		"le": []any{},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]ir.Type{
		"b":  ir.ByteType,
		"s":  ir.ShortType,
		"i":  ir.IntType,
		"l":  ir.LongType,
		"f":  ir.FloatType,
		"d":  ir.DoubleType,
		"ba": ir.ByteArrayType,
		"ia": ir.IntArrayType,
		"la": ir.LongArrayType,
		"ls": ir.ListType,
		"le": ir.ListType,
	}
	got := map[string]ir.Type{}
	for i, f := range node.Fields {
		got[f] = node.Values[i].Type
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("types (-want +got):\n%s", diff)
	}
	if ls := node.Get("ls"); ls.Elem != ir.StringType || ls.Len() != 2 {
		t.Errorf("ls = %+v", ls)
	}
	if le := node.Get("le"); le.Elem != ir.EndType || le.Len() != 0 {
		t.Errorf("le = %+v", le)
	}
	if _, err := codec.FromNBT(struct{}{}); !errors.Is(err, codec.ErrUnsupportedValue) {
		t.Errorf("err = %v, want ErrUnsupportedValue", err)
	}
}

func TestDecompress(t *testing.T) {
	raw := codectest.Raw(t, plains)
	tests := []struct {
		name    string
		sector  []byte
		wantErr error
	}{
		{"gzip", codectest.Sector(codec.SchemeGZip, codectest.GZip(t, raw)), nil},
		{"zlib", codectest.Sector(codec.SchemeZlib, codectest.Zlib(t, raw)), nil},
		{"none", codectest.Sector(codec.SchemeNone, raw), nil},
		{"unknown", codectest.Sector(9, raw), codec.ErrUnknownCompression},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := codec.Decompress(tt.sector)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(raw, got); diff != "" {
				t.Errorf("payload (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecompressUnsupported(t *testing.T) {
	tests := []struct {
		scheme byte
		want   string
	}{
		{codec.SchemeLZ4, "lz4"},
		{codec.ExternalFlag | codec.SchemeZlib, "external"},
		{9, "scheme 9"},
	}
	for _, tt := range tests {
		_, err := codec.Decompress(codectest.Sector(tt.scheme, []byte{1, 2, 3}))
		if !errors.Is(err, codec.ErrUnknownCompression) {
			t.Errorf("scheme %d: err = %v, want ErrUnknownCompression", tt.scheme, err)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("scheme %d: %q does not mention %q", tt.scheme, err, tt.want)
		}
	}
}

func TestRegion(t *testing.T) {
	raw := codectest.Raw(t, plains)
	path := filepath.Join(t.TempDir(), "r.0.0.mca")
	codectest.WriteRegion(t, path, map[codectest.Cell][]byte{
		{X: 3, Z: 7}: codectest.Sector(codec.SchemeZlib, codectest.Zlib(t, raw)),
	})
	r, err := codec.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	present := 0
	for x := range codec.GridSize {
		for z := range codec.GridSize {
			if r.HasCell(x, z) {
				present++
			}
		}
	}
	if present != 1 || !r.HasCell(3, 7) {
		t.Fatalf("present cells = %d, HasCell(3,7) = %v", present, r.HasCell(3, 7))
	}
	if r.HasCell(-1, 0) || r.HasCell(0, codec.GridSize) {
		t.Error("out of range cell reported present")
	}
	data, err := r.ReadCell(3, 7)
	if err != nil {
		t.Fatal(err)
	}
	root, err := codec.DecodeTree(data)
	if err != nil {
		t.Fatal(err)
	}
	if root.Get("0,0") == nil {
		t.Errorf("missing column 0,0 in %v", root.Fields)
	}
	if _, err := r.ReadCell(40, 0); !errors.Is(err, codec.ErrCellRange) {
		t.Errorf("err = %v, want ErrCellRange", err)
	}
}

func TestOpenFailure(t *testing.T) {
	dir := t.TempDir()
	if _, err := codec.Open(filepath.Join(dir, "missing.mca")); !errors.Is(err, codec.ErrOpen) {
		t.Errorf("err = %v, want ErrOpen", err)
	}
	empty := filepath.Join(dir, "empty.mca")
	if err := os.WriteFile(empty, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := codec.Open(empty); !errors.Is(err, codec.ErrOpen) {
		t.Errorf("err = %v, want ErrOpen", err)
	}
}
