package gemhunter

// cnf.go: literals, clauses, and the indexed constraint store.

import (
	"sort"
)

// Literal is a variable with a polarity, in the signed-integer convention of
// the DIMACS format: +v asserts "the cell of v is a trap", -v asserts "the
// cell of v is not a trap" (and therefore a gem in a total labeling).
type Literal int

// Lit builds a literal for v with the given polarity.
func Lit(v Variable, positive bool) Literal {
	if positive {
		return Literal(v)
	}
	return Literal(-v)
}

// Variable returns the literal's variable, always positive.
func (l Literal) Variable() Variable {
	if l < 0 {
		return Variable(-l)
	}
	return Variable(l)
}

// Positive reports the literal's polarity.
func (l Literal) Positive() bool { return l > 0 }

// Negate returns the literal with opposite polarity.
func (l Literal) Negate() Literal { return -l }

// Clause is a disjunction of literals. Order is irrelevant to its meaning;
// the store keeps clauses sorted so duplicates can be recognized cheaply.
type Clause []Literal

// ConstraintSet is the conjunction of all clauses generated for one grid.
// It is append-only during encoding. After encoding, BuildIndex (or the
// first ClausesContaining call) constructs a variable → clause-ID index used
// by the search engine's propagation; lookups are then amortized O(1).
//
// Add normalizes each clause (sorted, duplicate literals removed) and drops
// tautologies and clauses the store has already seen. Both are logically
// redundant; dropping them keeps the combinatorial exact-K encodings small,
// which the clue encoder relies on.
type ConstraintSet struct {
	numVars int
	clauses []Clause
	seen    map[string]struct{}
	index   [][]int // variable (1-based) -> clause IDs; nil until built
}

// NewConstraintSet creates an empty store over variables 1..numVars.
func NewConstraintSet(numVars int) *ConstraintSet {
	return &ConstraintSet{
		numVars: numVars,
		seen:    make(map[string]struct{}),
	}
}

// NumVars reports the declared variable count.
func (cs *ConstraintSet) NumVars() int { return cs.numVars }

// Len reports the number of stored clauses.
func (cs *ConstraintSet) Len() int { return len(cs.clauses) }

// Clause returns the clause with the given ID (0..Len()-1). The returned
// slice is owned by the store and must not be modified.
func (cs *ConstraintSet) Clause(id int) Clause { return cs.clauses[id] }

// Clauses returns the stored clauses as signed-integer slices, the shape
// external SAT solvers consume. The result is a copy.
func (cs *ConstraintSet) Clauses() [][]int {
	out := make([][]int, len(cs.clauses))
	for i, cl := range cs.clauses {
		row := make([]int, len(cl))
		for j, l := range cl {
			row[j] = int(l)
		}
		out[i] = row
	}
	return out
}

// Add normalizes and stores a clause. Tautological clauses (v and ¬v
// together) and clauses already present are dropped. Adding after the index
// has been built panics: the store is append-only during encoding and
// indexed exactly once.
func (cs *ConstraintSet) Add(clause Clause) {
	if cs.index != nil {
		panic("gemhunter: Add after index construction")
	}
	norm := normalizeClause(clause)
	if norm == nil {
		return
	}
	key := clauseKey(norm)
	if _, dup := cs.seen[key]; dup {
		return
	}
	cs.seen[key] = struct{}{}
	cs.clauses = append(cs.clauses, norm)
}

// AddUnit stores a single-literal clause.
func (cs *ConstraintSet) AddUnit(l Literal) { cs.Add(Clause{l}) }

// BuildIndex constructs the variable → clause-ID index. Encoding must be
// complete; the store accepts no further clauses afterwards. Calling it
// again is a no-op.
func (cs *ConstraintSet) BuildIndex() {
	if cs.index != nil {
		return
	}
	cs.index = make([][]int, cs.numVars+1)
	for id, cl := range cs.clauses {
		for _, l := range cl {
			v := l.Variable()
			cs.index[v] = append(cs.index[v], id)
		}
	}
}

// ClausesContaining returns the IDs of all clauses mentioning v, building
// the index on first use. The returned slice is owned by the store.
func (cs *ConstraintSet) ClausesContaining(v Variable) []int {
	cs.BuildIndex()
	if v < 1 || int(v) > cs.numVars {
		return nil
	}
	return cs.index[v]
}

// Satisfies reports whether a total model (indexed model[v-1]) satisfies
// every clause. Used by the brute-force oracle and by verification tests.
func (cs *ConstraintSet) Satisfies(model []bool) bool {
	for _, cl := range cs.clauses {
		ok := false
		for _, l := range cl {
			if model[l.Variable()-1] == l.Positive() {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

// normalizeClause sorts the literals, removes duplicates, and returns nil
// for tautologies and empty input.
func normalizeClause(clause Clause) Clause {
	if len(clause) == 0 {
		return nil
	}
	norm := make(Clause, len(clause))
	copy(norm, clause)
	sort.Slice(norm, func(i, j int) bool { return norm[i] < norm[j] })
	out := norm[:1]
	for _, l := range norm[1:] {
		if l == out[len(out)-1] {
			continue
		}
		out = append(out, l)
	}
	for _, l := range out {
		// out is sorted, so a tautology pairs -v before +v; a linear
		// membership probe keeps this simple for the short clauses
		// exact-K encoding produces.
		if l > 0 && containsLiteral(out, -l) {
			return nil
		}
	}
	return out
}

func containsLiteral(clause Clause, l Literal) bool {
	for _, x := range clause {
		if x == l {
			return true
		}
	}
	return false
}

// clauseKey is a compact identity key for a normalized clause.
func clauseKey(clause Clause) string {
	buf := make([]byte, 0, len(clause)*3)
	for _, l := range clause {
		v := int(l)
		buf = append(buf, byte(v), byte(v>>8), byte(v>>16))
	}
	return string(buf)
}

// combinations invokes fn once per k-element subset of {0, .., n-1}, in
// lexicographic order. The index slice is reused between calls and must not
// be retained. Subsets are generated lazily, never materialized as a whole,
// since the exact-K encoding walks choose(n, k) of them.
func combinations(n, k int, fn func(idx []int)) {
	if k < 0 || k > n {
		return
	}
	if k == 0 {
		fn(nil)
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		fn(idx)
		// Advance the rightmost index that still has room.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
