package gemhunter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid_Validation(t *testing.T) {
	tests := []struct {
		name  string
		cells [][]Cell
	}{
		{"no rows", [][]Cell{}},
		{"empty row", [][]Cell{{}}},
		{"ragged rows", [][]Cell{{Empty(), Empty()}, {Empty()}}},
		{"clue count negative", [][]Cell{{Clue(-1), Empty()}}},
		{"clue count above eight", [][]Cell{{Clue(9), Empty()}}},
		// A corner cell of a 2x2 grid has 3 neighbors; a clue of 4
		// there can never be satisfied.
		{"clue exceeds neighbors", [][]Cell{
			{Clue(4), Empty()},
			{Empty(), Empty()},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGrid(tt.cells)
			assert.ErrorIs(t, err, ErrMalformedGrid)
		})
	}
}

func TestNewGrid_SingleCell(t *testing.T) {
	// A 1x1 grid has zero neighbors, so only a clue of 0 is allowed.
	_, err := NewGrid([][]Cell{{Clue(0)}})
	require.NoError(t, err)
	_, err = NewGrid([][]Cell{{Clue(1)}})
	assert.ErrorIs(t, err, ErrMalformedGrid)
}

func TestGrid_Neighbors(t *testing.T) {
	g := MustParseGrid("3 3\n_,_,_\n_,_,_\n_,_,_")

	tests := []struct {
		name string
		r, c int
		want int
	}{
		{"corner", 0, 0, 3},
		{"edge", 0, 1, 5},
		{"center", 1, 1, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Neighbors(tt.r, tt.c)
			assert.Len(t, got, tt.want)
			for _, at := range got {
				assert.True(t, g.InBounds(at.Row, at.Col))
				assert.NotEqual(t, Coord{tt.r, tt.c}, at)
			}
		})
	}
}

func TestGrid_NeighborsRowMajorOrder(t *testing.T) {
	g := MustParseGrid("3 3\n_,_,_\n_,_,_\n_,_,_")
	want := []Coord{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
	assert.Equal(t, want, g.Neighbors(1, 1))
}

func TestGrid_CellAt(t *testing.T) {
	g := MustParseGrid("2 2\n1,_\n_,G")

	cell, err := g.CellAt(0, 0)
	require.NoError(t, err)
	assert.Equal(t, Clue(1), cell)

	cell, err = g.CellAt(1, 1)
	require.NoError(t, err)
	assert.Equal(t, Gem(), cell)

	for _, at := range []Coord{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err := g.CellAt(at.Row, at.Col)
		assert.ErrorIs(t, err, ErrOutOfBounds, "coordinates %v", at)
	}
}

func TestParseGrid_RoundTrip(t *testing.T) {
	for _, text := range []string{sampleGrid5, unsatTriangle, chainRow} {
		g, err := ParseGrid(text)
		require.NoError(t, err)
		again, err := ParseGrid(g.String())
		require.NoError(t, err)
		assert.Equal(t, g, again)
	}
}

func TestParseGrid_Malformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"header only", "2 2"},
		{"bad header", "two 2\n_,_\n_,_"},
		{"row count mismatch", "3 2\n_,_\n_,_"},
		{"token count mismatch", "2 2\n_,_,_\n_,_"},
		{"unknown token", "1 2\n_,x"},
		{"clue out of range", "1 2\n_,12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGrid(tt.text)
			assert.ErrorIs(t, err, ErrMalformedGrid)
		})
	}
}
