package core

import (
	"slices"
	"testing"
)

func TestByteGridPushScrollsDown(t *testing.T) {
	g := NewByteGrid(3, 3)
	g.Push([]uint8{1, 0, 1})
	g.Push([]uint8{0, 1})

	want := []uint8{
		0, 1, 0,
		1, 0, 1,
		0, 0, 0,
	}
	if !slices.Equal(g.Cells(), want) {
		t.Fatalf("cells = %v, want %v", g.Cells(), want)
	}
	if !slices.Equal(g.Row(1), []uint8{1, 0, 1}) {
		t.Fatalf("row 1 = %v", g.Row(1))
	}

	g.Clear()
	for i, c := range g.Cells() {
		if c != 0 {
			t.Fatalf("cell %d = %d after Clear", i, c)
		}
	}
}
