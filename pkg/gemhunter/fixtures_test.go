package gemhunter

// Shared grid fixtures. Variables are numbered row-major over the empty
// cells, so for sampleGrid5: 1=(0,0), 2=(1,3), 3=(3,1), 4=(4,4).

// sampleGrid5 is the documented 5x5 puzzle: four hidden traps, every other
// cell a clue. Its unique solution marks all four empty cells as traps.
const sampleGrid5 = `5 5
_,1,1,1,1
1,1,1,_,1
1,1,2,1,1
1,_,1,1,1
1,1,1,1,_`

// unsatTriangle encodes three exactly-one constraints over the variable
// pairs {a,b}, {a,c}, {b,c} (an odd cycle), which no labeling satisfies.
// Refuting it requires an actual decision and a backtrack: no clue is unit
// on its own.
const unsatTriangle = `3 3
_,1,_
1,G,1
G,_,G`

// unsatByUnits contradicts through unit propagation alone: the left clue
// forces its sole neighbor to be a trap, the zero clue forbids it.
const unsatByUnits = `1 5
1,_,0,_,_`

// chainRow has no unit clauses; solving it takes exactly one decision, and
// the two exactly-one clues then propagate the rest: trap, gem, trap.
const chainRow = `1 5
_,1,_,1,_`

// freeRow has no clues at all; every variable is decided, never propagated.
const freeRow = `1 3
_,_,_`
