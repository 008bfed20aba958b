package match

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mcscan/biomefind/debug"
	"github.com/mcscan/biomefind/ir"
)

// Field names looked up in a column compound.
const (
	BiomeNameField = "biome_name"
	BlockField     = "block"
	BlockNameField = "Name"
)

var ErrTypeMismatch = errors.New("type mismatch")

// Mode selects the search policy.
type Mode int

const (
	Biome Mode = iota
	Block
)

func (m Mode) String() string {
	switch m {
	case Biome:
		return "biome"
	case Block:
		return "block"
	default:
		return "<unknown mode>"
	}
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "biome":
		return Biome, nil
	case "block":
		return Block, nil
	}
	return 0, fmt.Errorf("unrecognized mode %q (want biome or block)", s)
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(d []byte) error {
	mm, err := ParseMode(string(d))
	if err != nil {
		return err
	}
	*m = mm
	return nil
}

// Target is what a scan looks for: an exact, case-sensitive name under the
// given mode.
type Target struct {
	Mode Mode
	Name string
}

func (t Target) String() string {
	return t.Name
}

type Kind int

const (
	NoMatch Kind = iota
	Matched
	MissingKey
	TypeError
)

func (k Kind) String() string {
	switch k {
	case NoMatch:
		return "NoMatch"
	case Matched:
		return "Match"
	case MissingKey:
		return "MissingKey"
	case TypeError:
		return "TypeError"
	default:
		return "<unknown kind>"
	}
}

// Result classifies one column.  Found is set for Matched.  Field, Path and
// Got describe the offending or missing field.
type Result struct {
	Kind  Kind
	Found string
	Field string
	Path  string
	Got   ir.Type
}

// Fatal reports whether the result must stop a scan.
func (r Result) Fatal() bool {
	return r.Kind == TypeError
}

// Err returns a *TypeMismatchError for a TypeError result and nil
// otherwise.
func (r Result) Err() error {
	if r.Kind != TypeError {
		return nil
	}
	return &TypeMismatchError{Field: r.Field, Path: r.Path, Got: r.Got}
}

type TypeMismatchError struct {
	Field string
	Path  string
	Got   ir.Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: %q is %s at %s", ErrTypeMismatch, e.Field, e.Got, e.Path)
}

func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}

// Match applies t to a column compound.
func Match(col *ir.Node, t Target) Result {
	var res Result
	switch t.Mode {
	case Biome:
		res = matchString(col, BiomeNameField, t.Name)
	case Block:
		res = matchBlock(col, t.Name)
	default:
		panic(fmt.Sprintf("match mode %d", t.Mode))
	}
	if debug.Match() {
		debug.Logf("match %s %q at %s: %s %q\n", t.Mode, t.Name, col.Path(), res.Kind, res.Field)
	}
	return res
}

func matchBlock(col *ir.Node, name string) Result {
	block := col.Get(BlockField)
	if block == nil {
		return Result{Kind: MissingKey, Field: BlockField, Path: col.Path()}
	}
	if block.Type != ir.CompoundType {
		return Result{Kind: TypeError, Field: BlockField, Path: block.Path(), Got: block.Type}
	}
	return matchString(block, BlockNameField, name)
}

func matchString(parent *ir.Node, field, name string) Result {
	v := parent.Get(field)
	if v == nil {
		return Result{Kind: MissingKey, Field: field, Path: parent.Path()}
	}
	if v.Type != ir.StringType {
		return Result{Kind: TypeError, Field: field, Path: v.Path(), Got: v.Type}
	}
	if v.String != name {
		return Result{Kind: NoMatch, Field: field, Path: v.Path(), Got: v.Type}
	}
	return Result{Kind: Matched, Found: v.String, Field: field, Path: v.Path(), Got: v.Type}
}
