package gemhunter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiteral(t *testing.T) {
	l := Lit(3, true)
	assert.Equal(t, Variable(3), l.Variable())
	assert.True(t, l.Positive())

	n := l.Negate()
	assert.Equal(t, Variable(3), n.Variable())
	assert.False(t, n.Positive())
	assert.Equal(t, l, n.Negate())
}

func TestConstraintSet_AddNormalizes(t *testing.T) {
	cs := NewConstraintSet(3)

	cs.Add(Clause{2, -1, 2}) // duplicate literal collapses
	require.Equal(t, 1, cs.Len())
	assert.Equal(t, Clause{-1, 2}, cs.Clause(0))

	cs.Add(Clause{-1, 2}) // duplicate clause dropped
	cs.Add(Clause{2, -1}) // same clause, different order
	assert.Equal(t, 1, cs.Len())

	cs.Add(Clause{1, -1, 3}) // tautology dropped
	assert.Equal(t, 1, cs.Len())

	cs.Add(nil) // empty input dropped
	assert.Equal(t, 1, cs.Len())
}

func TestConstraintSet_Index(t *testing.T) {
	cs := NewConstraintSet(4)
	cs.Add(Clause{1, 2})
	cs.Add(Clause{-2, 3})
	cs.AddUnit(Lit(4, false))

	assert.Equal(t, []int{0}, cs.ClausesContaining(1))
	assert.Equal(t, []int{0, 1}, cs.ClausesContaining(2))
	assert.Equal(t, []int{2}, cs.ClausesContaining(4))
	assert.Nil(t, cs.ClausesContaining(9))

	// Append-only: once indexed, the store rejects growth.
	assert.Panics(t, func() { cs.Add(Clause{1}) })
}

func TestConstraintSet_Satisfies(t *testing.T) {
	cs := NewConstraintSet(2)
	cs.Add(Clause{1, 2})
	cs.Add(Clause{-1, -2})

	assert.True(t, cs.Satisfies([]bool{true, false}))
	assert.True(t, cs.Satisfies([]bool{false, true}))
	assert.False(t, cs.Satisfies([]bool{false, false}))
	assert.False(t, cs.Satisfies([]bool{true, true}))
}

func TestCombinations(t *testing.T) {
	collect := func(n, k int) [][]int {
		var out [][]int
		combinations(n, k, func(idx []int) {
			cp := make([]int, len(idx))
			copy(cp, idx)
			out = append(out, cp)
		})
		return out
	}

	assert.Equal(t, [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}, collect(4, 2))
	assert.Equal(t, [][]int{{0, 1, 2}}, collect(3, 3))
	assert.Len(t, collect(8, 4), 70) // choose(8,4)
	assert.Empty(t, collect(3, 4))   // k > n yields nothing
	assert.Empty(t, collect(3, -1))

	// k = 0 has exactly one (empty) subset.
	count := 0
	combinations(3, 0, func(idx []int) {
		assert.Empty(t, idx)
		count++
	})
	assert.Equal(t, 1, count)
}
