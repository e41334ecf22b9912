package automaton

import (
	"slices"
	"testing"
)

func TestStepRule90Sierpinski(t *testing.T) {
	g := NewGrid(9)
	rule := FromCode(90)

	want := [][]uint8{
		{0, 0, 0, 1, 0, 1, 0, 0, 0},
		{0, 0, 1, 0, 0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0, 1, 0, 1, 0},
	}
	for gen, row := range want {
		g.Step(rule)
		if !slices.Equal(g.Cells(), row) {
			t.Fatalf("generation %d = %v, want %v", gen+1, g.Cells(), row)
		}
	}
	if g.Generation() != len(want) {
		t.Fatalf("Generation() = %d", g.Generation())
	}
}

func TestStepKeepsLengthAndBoundaries(t *testing.T) {
	g := NewGrid(16)
	rule := FromCode(255)
	for i := 0; i < 2; i++ {
		g.Step(rule)
		if g.Len() != 16 {
			t.Fatalf("length changed to %d", g.Len())
		}
		cells := g.Cells()
		if cells[0] != 0 || cells[len(cells)-1] != 0 {
			t.Fatalf("boundary cells must stay 0: %v", cells)
		}
		for i := 1; i < len(cells)-1; i++ {
			if cells[i] != 1 {
				t.Fatalf("rule 255 interior cell %d = %d", i, cells[i])
			}
		}
	}
}

func TestNewGridClampsWidthAndResets(t *testing.T) {
	g := NewGrid(1)
	if g.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", g.Len())
	}
	g.Step(FromCode(0))
	g.Reset()
	if !slices.Equal(g.Cells(), []uint8{0, 1, 0}) || g.Generation() != 0 {
		t.Fatalf("Reset left %v gen %d", g.Cells(), g.Generation())
	}
}
