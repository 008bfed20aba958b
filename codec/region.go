package codec

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/Tnze/go-mc/save/region"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// GridSize is the number of cells along each side of a region.
const GridSize = 32

// Compression scheme ids stored in the first byte of a region sector.
const (
	SchemeGZip = 1
	SchemeZlib = 2
	SchemeNone = 3
	SchemeLZ4  = 4

	// ExternalFlag marks a cell whose payload lives in a separate .mcc file.
	ExternalFlag = 0x80
)

// Region is an open region container: a 32x32 grid of optional cells.
type Region struct {
	path string
	r    *region.Region
}

var openFile = os.Open

// Open opens the region file at path for reading.
func Open(path string) (*Region, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrOpen, path, err)
	}
	r, err := region.Load(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w %s: %w", ErrOpen, path, err)
	}
	return &Region{path: path, r: r}, nil
}

func (r *Region) Path() string {
	return r.path
}

func inGrid(x, z int) bool {
	return x >= 0 && x < GridSize && z >= 0 && z < GridSize
}

// HasCell reports whether cell (x, z) holds data.
func (r *Region) HasCell(x, z int) bool {
	return inGrid(x, z) && r.r.ExistSector(x, z)
}

// ReadCell returns the decompressed payload of cell (x, z).
func (r *Region) ReadCell(x, z int) ([]byte, error) {
	if !inGrid(x, z) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrCellRange, x, z)
	}
	data, err := r.r.ReadSector(x, z)
	if err != nil {
		return nil, fmt.Errorf("%w: cell (%d,%d) of %s: %w", ErrDecode, x, z, r.path, err)
	}
	payload, err := Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("%w: cell (%d,%d) of %s: %w", ErrDecode, x, z, r.path, err)
	}
	return payload, nil
}

func (r *Region) Close() error {
	return r.r.Close()
}

// Decompress interprets a sector body: one scheme byte followed by the
// compressed payload.
func Decompress(sector []byte) ([]byte, error) {
	if len(sector) == 0 {
		return nil, io.ErrUnexpectedEOF
	}
	if sector[0]&ExternalFlag != 0 {
		return nil, fmt.Errorf("%w %d: external .mcc payloads are not read", ErrUnknownCompression, sector[0])
	}
	body := bytes.NewReader(sector[1:])
	switch sector[0] {
	case SchemeGZip:
		zr, err := gzip.NewReader(body)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return io.ReadAll(zr)
	case SchemeZlib:
		zr, err := zlib.NewReader(body)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return io.ReadAll(zr)
	case SchemeNone:
		return sector[1:], nil
	case SchemeLZ4:
		return nil, fmt.Errorf("%w %d: lz4 is not supported", ErrUnknownCompression, sector[0])
	default:
		return nil, fmt.Errorf("%w %d", ErrUnknownCompression, sector[0])
	}
}
