package column

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mcscan/biomefind/ir"
)

func TestColumnsOrder(t *testing.T) {
	root := ir.FromKeyVals([]ir.KeyVal{
		{Key: "1,0", Val: ir.NewCompound()},
		{Key: "0,0", Val: ir.NewCompound()},
		{Key: "0,1", Val: ir.FromInt(7)},
		{Key: "2,2", Val: ir.NewCompound()},
	})
	var keys []string
	var errKeys []string
	for e := range Columns(root) {
		keys = append(keys, e.Key)
		if e.Err != nil {
			errKeys = append(errKeys, e.Key)
			if !errors.Is(e.Err, ErrNotCompound) {
				t.Errorf("%s: err = %v, want ErrNotCompound", e.Key, e.Err)
			}
			if e.Value != nil {
				t.Errorf("%s: value set alongside error", e.Key)
			}
			continue
		}
		if e.Value == nil || e.Value.Type != ir.CompoundType {
			t.Errorf("%s: value %+v", e.Key, e.Value)
		}
	}
	if diff := cmp.Diff([]string{"1,0", "0,0", "0,1", "2,2"}, keys); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"0,1"}, errKeys); diff != "" {
		t.Errorf("error keys (-want +got):\n%s", diff)
	}
}

func TestColumnsStopEarly(t *testing.T) {
	root := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromString("bad")},
		{Key: "b", Val: ir.NewCompound()},
	})
	n := 0
	for e := range Columns(root) {
		n++
		if e.Err != nil {
			break
		}
	}
	if n != 1 {
		t.Errorf("visited %d entries after break, want 1", n)
	}
}

func TestColumnsRootNotCompound(t *testing.T) {
	list, err := ir.FromList(ir.IntType, ir.FromInt(1))
	if err != nil {
		t.Fatal(err)
	}
	var entries []Entry
	for e := range Columns(list) {
		entries = append(entries, e)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	var se *StructureError
	if !errors.As(entries[0].Err, &se) || !errors.Is(se, ErrRootNotCompound) {
		t.Fatalf("err = %v, want root StructureError", entries[0].Err)
	}
	if se.Got != ir.ListType || se.Path != "$" {
		t.Errorf("got %s at %s", se.Got, se.Path)
	}
}

func TestStructureErrorMessage(t *testing.T) {
	root := ir.FromKeyVals([]ir.KeyVal{{Key: "0,1", Val: ir.FromInt(7)}})
	for e := range Columns(root) {
		want := `column is not a compound: "0,1" is Int at $.'0,1'`
		if got := e.Err.Error(); got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	}
}
