// Package column walks the column entries of a decoded chunk.
//
// A chunk's root compound maps column keys (such as "3,14") to compounds
// describing one vertical column of the world.  Columns yields the entries
// lazily and in stored order, attaching a *StructureError to any entry that
// does not have that shape.  It never stops on its own; the consumer decides
// whether an error ends the walk.
package column

import (
	"errors"
	"fmt"
	"iter"

	"github.com/mcscan/biomefind/debug"
	"github.com/mcscan/biomefind/ir"
)

var (
	ErrNotCompound     = errors.New("column is not a compound")
	ErrRootNotCompound = errors.New("chunk root is not a compound")
)

// Entry is one column of a chunk.  Exactly one of Value and Err is set.
type Entry struct {
	Key   string
	Value *ir.Node
	Err   error
}

// StructureError describes a node whose type does not fit the chunk layout.
type StructureError struct {
	Key  string
	Path string
	Got  ir.Type
	Err  error
}

func (e *StructureError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s: got %s at %s", e.Err, e.Got, e.Path)
	}
	return fmt.Sprintf("%s: %q is %s at %s", e.Err, e.Key, e.Got, e.Path)
}

func (e *StructureError) Unwrap() error {
	return e.Err
}

// Columns returns the column entries of root.
func Columns(root *ir.Node) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		if root.Type != ir.CompoundType {
			yield(Entry{Err: &StructureError{
				Path: root.Path(),
				Got:  root.Type,
				Err:  ErrRootNotCompound,
			}})
			return
		}
		for i, key := range root.Fields {
			value := root.Values[i]
			entry := Entry{Key: key, Value: value}
			if value.Type != ir.CompoundType {
				entry = Entry{Key: key, Err: &StructureError{
					Key:  key,
					Path: value.Path(),
					Got:  value.Type,
					Err:  ErrNotCompound,
				}}
			}
			if debug.Walk() {
				debug.Logf("column %q err=%v\n", key, entry.Err)
			}
			if !yield(entry) {
				return
			}
		}
	}
}
