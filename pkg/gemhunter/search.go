package gemhunter

// search.go: the backtracking engine with unit propagation.

import (
	"context"
	"fmt"
)

// Outcome classifies the result of a search.
type Outcome int

const (
	// Satisfiable: a total assignment satisfying every clause was found.
	Satisfiable Outcome = iota
	// Unsatisfiable: the search space was exhausted with no satisfying
	// assignment. A legitimate result, not an error.
	Unsatisfiable
	// Timeout: the step budget or the context deadline expired before the
	// search finished. Never conflated with Unsatisfiable.
	Timeout
)

func (o Outcome) String() string {
	switch o {
	case Satisfiable:
		return "satisfiable"
	case Unsatisfiable:
		return "unsatisfiable"
	case Timeout:
		return "timeout"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Stats counts the work one search performed.
type Stats struct {
	Decisions    uint64 // branching assignments
	Propagations uint64 // assignments forced by unit clauses
	Conflicts    uint64 // falsified clauses encountered
	Backtracks   uint64 // decision frames exhausted and popped
}

// Tracer observes the engine's progress. Implementations must be fast; the
// engine calls them on its hot path. The zero-value engine traces nothing.
type Tracer interface {
	// OnDecision is called after each branching assignment.
	OnDecision(v Variable, value bool, depth int)
	// OnConflict is called with the falsified clause.
	OnConflict(conflict Clause, depth int)
	// OnBacktrack is called when a decision frame is abandoned.
	OnBacktrack(depth int)
}

type nopTracer struct{}

func (nopTracer) OnDecision(Variable, bool, int) {}
func (nopTracer) OnConflict(Clause, int)         {}
func (nopTracer) OnBacktrack(int)                {}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithStepBudget bounds the number of decisions the engine may make; 0 (the
// default) means unbounded. An exhausted budget yields the Timeout outcome.
func WithStepBudget(steps uint64) EngineOption {
	return func(e *Engine) { e.budget = steps }
}

// WithTracer attaches a progress observer to the engine.
func WithTracer(t Tracer) EngineOption {
	return func(e *Engine) {
		if t != nil {
			e.tracer = t
		}
	}
}

const (
	unassigned int8 = 0
	assignedT  int8 = 1
	assignedF  int8 = -1
)

// frame is one decision point on the explicit search stack: the chosen
// variable, the length of the trail before its assignment, and whether the
// second branch has already been tried. Using explicit frames instead of
// call-stack recursion bounds memory at one frame per variable and lets the
// step budget interrupt the search between any two decisions.
type frame struct {
	v          Variable
	mark       int
	triedFalse bool
}

// Engine performs depth-first search over the assignment space of one
// ConstraintSet. It owns its Assignment exclusively; separate solves never
// share mutable state, so independent engines may run concurrently.
//
// The engine is deliberately simple, and deterministic by construction:
// decisions always pick the lowest-numbered unassigned variable and always
// try true before false. After every assignment, unit propagation runs to
// fixpoint; conflicts trigger chronological backtracking to the nearest
// frame with an untried branch.
type Engine struct {
	set    *ConstraintSet
	assign []int8 // variable (1-based) -> assignment state
	trail  []Variable
	frames []frame
	cursor Variable // lower bound on the lowest unassigned variable

	budget uint64
	tracer Tracer
	stats  Stats
}

// NewEngine creates an engine for the given constraint set. The set's index
// is built on the first Solve.
func NewEngine(set *ConstraintSet, opts ...EngineOption) *Engine {
	e := &Engine{
		set:    set,
		assign: make([]int8, set.NumVars()+1),
		cursor: 1,
		tracer: nopTracer{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Stats returns the counters accumulated by the last Solve.
func (e *Engine) Stats() Stats { return e.stats }

// Solve runs the search to completion. On Satisfiable the returned model
// holds the value of variable v at model[v-1]; otherwise the model is nil.
// Context cancellation is checked at every decision point and surfaces as
// the Timeout outcome, like an exhausted step budget.
func (e *Engine) Solve(ctx context.Context) (Outcome, []bool) {
	e.reset()
	e.set.BuildIndex()

	// Seed propagation from the unit clauses of the encoding: pre-fixed
	// values, zero-count clues, and all-trap clues all arrive as units and
	// may resolve the whole grid before the first decision.
	if conflict := e.propagateUnits(); conflict != nil {
		e.stats.Conflicts++
		e.tracer.OnConflict(conflict, 0)
		return Unsatisfiable, nil
	}

	for {
		v := e.nextUnassigned()
		if v == 0 {
			return Satisfiable, e.model()
		}
		// The budget and the context are consulted only when another
		// decision is actually required, so a search that completes at
		// its limit still reports Satisfiable.
		if ctx.Err() != nil {
			return Timeout, nil
		}
		if e.budget > 0 && e.stats.Decisions >= e.budget {
			return Timeout, nil
		}

		e.stats.Decisions++
		e.frames = append(e.frames, frame{v: v, mark: len(e.trail)})
		e.push(v, true)
		e.tracer.OnDecision(v, true, len(e.frames))

		for {
			conflict := e.propagateFrom(e.trail[len(e.trail)-1])
			if conflict == nil {
				break
			}
			e.stats.Conflicts++
			e.tracer.OnConflict(conflict, len(e.frames))
			if !e.backtrack() {
				return Unsatisfiable, nil
			}
		}
	}
}

// reset restores the engine to its pre-search state so Solve is repeatable.
func (e *Engine) reset() {
	for i := range e.assign {
		e.assign[i] = unassigned
	}
	e.trail = e.trail[:0]
	e.frames = e.frames[:0]
	e.cursor = 1
	e.stats = Stats{}
}

// push records an assignment on the trail. Assigning an already-assigned
// variable would corrupt the trail discipline, so it aborts loudly.
func (e *Engine) push(v Variable, value bool) {
	if e.assign[v] != unassigned {
		panic(fmt.Sprintf("gemhunter: double assignment of variable %d", v))
	}
	if value {
		e.assign[v] = assignedT
	} else {
		e.assign[v] = assignedF
	}
	e.trail = append(e.trail, v)
}

// rewind pops trail entries down to mark, un-assigning each variable.
func (e *Engine) rewind(mark int) {
	if mark > len(e.trail) {
		panic("gemhunter: trail underflow")
	}
	for len(e.trail) > mark {
		v := e.trail[len(e.trail)-1]
		e.trail = e.trail[:len(e.trail)-1]
		e.assign[v] = unassigned
		if v < e.cursor {
			e.cursor = v
		}
	}
}

// backtrack unwinds to the most recent frame with an untried branch, flips
// it to false, and re-enters propagation. It reports false when the frame
// stack is exhausted, i.e. the formula is unsatisfiable.
func (e *Engine) backtrack() bool {
	for len(e.frames) > 0 {
		f := &e.frames[len(e.frames)-1]
		e.rewind(f.mark)
		if !f.triedFalse {
			f.triedFalse = true
			e.push(f.v, false)
			e.tracer.OnDecision(f.v, false, len(e.frames))
			return true
		}
		e.frames = e.frames[:len(e.frames)-1]
		e.stats.Backtracks++
		e.tracer.OnBacktrack(len(e.frames))
	}
	return false
}

// nextUnassigned returns the lowest-numbered unassigned variable, or 0 when
// the assignment is total. The cursor only moves forward between backtracks,
// so repeated scans stay cheap.
func (e *Engine) nextUnassigned() Variable {
	for v := e.cursor; int(v) <= e.set.NumVars(); v++ {
		if e.assign[v] == unassigned {
			e.cursor = v
			return v
		}
	}
	e.cursor = Variable(e.set.NumVars() + 1)
	return 0
}

// value evaluates a literal under the current assignment: assignedT if the
// literal is satisfied, assignedF if falsified, unassigned otherwise.
func (e *Engine) value(l Literal) int8 {
	a := e.assign[l.Variable()]
	if a == unassigned {
		return unassigned
	}
	if (a == assignedT) == l.Positive() {
		return assignedT
	}
	return assignedF
}

// propagateUnits asserts every unit clause of the store and propagates to
// fixpoint. Returns the falsified clause on conflict, nil otherwise.
func (e *Engine) propagateUnits() Clause {
	for id := 0; id < e.set.Len(); id++ {
		cl := e.set.Clause(id)
		if len(cl) != 1 {
			continue
		}
		l := cl[0]
		switch e.value(l) {
		case assignedF:
			return cl
		case unassigned:
			e.push(l.Variable(), l.Positive())
			e.stats.Propagations++
			if conflict := e.propagateFrom(l.Variable()); conflict != nil {
				return conflict
			}
		}
	}
	return nil
}

// propagateFrom runs unit propagation to fixpoint starting from a newly
// assigned variable. Each clause touching an assigned variable is examined:
// a clause with every literal false is a conflict and is returned; a clause
// with exactly one unassigned literal and the rest false forces that
// literal, and the forced assignment is queued for further propagation.
func (e *Engine) propagateFrom(v Variable) Clause {
	queue := []Variable{v}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, id := range e.set.ClausesContaining(v) {
			cl := e.set.Clause(id)
			satisfied := false
			var pending Literal
			open := 0
			for _, l := range cl {
				switch e.value(l) {
				case assignedT:
					satisfied = true
				case unassigned:
					open++
					pending = l
				}
				if satisfied {
					break
				}
			}
			if satisfied {
				continue
			}
			if open == 0 {
				return cl
			}
			if open == 1 {
				e.push(pending.Variable(), pending.Positive())
				e.stats.Propagations++
				queue = append(queue, pending.Variable())
			}
		}
	}
	return nil
}

// model snapshots the total assignment as a 0-indexed boolean slice.
func (e *Engine) model() []bool {
	model := make([]bool, e.set.NumVars())
	for v := 1; v <= e.set.NumVars(); v++ {
		model[v-1] = e.assign[v] == assignedT
	}
	return model
}
