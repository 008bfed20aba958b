package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSetOverwritesInPlace(t *testing.T) {
	node := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromInt(1)},
		{Key: "b", Val: FromInt(2)},
		{Key: "a", Val: FromString("x")},
	})
	if diff := cmp.Diff([]string{"a", "b"}, node.Fields); diff != "" {
		t.Errorf("fields (-want +got):\n%s", diff)
	}
	a := node.Get("a")
	if a == nil || a.Type != StringType || a.String != "x" {
		t.Errorf("a = %+v, want String x", a)
	}
	if a.ParentIndex != 0 || a.Parent != node {
		t.Errorf("a parent index %d parent %p", a.ParentIndex, a.Parent)
	}
}

func TestGet(t *testing.T) {
	node := FromMap(map[string]*Node{
		"z": FromByte(1),
		"m": FromShort(2),
	})
	if diff := cmp.Diff([]string{"m", "z"}, node.Fields); diff != "" {
		t.Errorf("fields (-want +got):\n%s", diff)
	}
	if got := node.Get("missing"); got != nil {
		t.Errorf("Get(missing) = %v", got)
	}
	if got := FromString("s").Get("z"); got != nil {
		t.Errorf("Get on string = %v", got)
	}
}

func TestFromListMixed(t *testing.T) {
	_, err := FromList(IntType, FromInt(1), FromLong(2))
	if !errors.Is(err, ErrMixedList) {
		t.Errorf("err = %v, want ErrMixedList", err)
	}
	list, err := FromList(IntType, FromInt(1), FromInt(2))
	if err != nil {
		t.Fatal(err)
	}
	if list.Len() != 2 || list.Values[1].ParentIndex != 1 {
		t.Errorf("bad list %+v", list)
	}
}

func TestPath(t *testing.T) {
	name := FromString("minecraft:stone")
	block := FromKeyVals([]KeyVal{{Key: "Name", Val: name}})
	col := FromKeyVals([]KeyVal{{Key: "block", Val: block}})
	FromKeyVals([]KeyVal{{Key: "0,0", Val: col}})
	if got, want := name.Path(), "$.'0,0'.block.Name"; got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
	elem := FromInt(4)
	list, err := FromList(IntType, FromInt(3), elem)
	if err != nil {
		t.Fatal(err)
	}
	FromKeyVals([]KeyVal{{Key: "xs", Val: list}})
	if got, want := elem.Path(), "$.xs[1]"; got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want bool
	}{
		{"nil", nil, true},
		{"end", &Node{Type: EndType}, true},
		{"empty compound", NewCompound(), true},
		{"compound", FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}), false},
		{"string", FromString(""), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}
