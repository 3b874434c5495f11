package gemhunter

// dimacs.go: the integer-clause exchange format for external SAT solvers.
//
// The output is standard DIMACS CNF: a "p cnf <vars> <clauses>" header, then
// one line per clause of signed integer literals terminated by 0. Clauses
// are written sorted by length and then lexicographically, so the same
// constraint set always serializes to the same bytes.

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// ErrBadDIMACS is returned by ReadDIMACS for input that is not well-formed
// DIMACS CNF.
var ErrBadDIMACS = errors.New("malformed DIMACS input")

// WriteDIMACS serializes the constraint set to w in DIMACS CNF format.
func (cs *ConstraintSet) WriteDIMACS(w io.Writer) error {
	ordered := make([]Clause, len(cs.clauses))
	copy(ordered, cs.clauses)
	sort.Slice(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		for k := range a {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return false
	})

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "p cnf %d %d\n", cs.numVars, len(ordered))
	for _, cl := range ordered {
		for _, l := range cl {
			bw.WriteString(strconv.Itoa(int(l)))
			bw.WriteByte(' ')
		}
		bw.WriteString("0\n")
	}
	return bw.Flush()
}

// ReadDIMACS parses DIMACS CNF from r into a ConstraintSet. Comment lines
// ("c ...") are skipped; literals may span multiple lines, each clause ending
// at its 0 terminator. Variables outside the declared range are rejected.
func ReadDIMACS(r io.Reader) (*ConstraintSet, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	var cs *ConstraintSet
	var declared int
	var current Clause
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		if strings.HasPrefix(line, "p") {
			if cs != nil {
				return nil, fmt.Errorf("%w: duplicate problem line", ErrBadDIMACS)
			}
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[1] != "cnf" {
				return nil, fmt.Errorf("%w: problem line %q", ErrBadDIMACS, line)
			}
			nv, err1 := strconv.Atoi(fields[2])
			nc, err2 := strconv.Atoi(fields[3])
			if err1 != nil || err2 != nil || nv < 0 || nc < 0 {
				return nil, fmt.Errorf("%w: problem line %q", ErrBadDIMACS, line)
			}
			declared = nc
			cs = NewConstraintSet(nv)
			continue
		}
		if cs == nil {
			return nil, fmt.Errorf("%w: clause before problem line", ErrBadDIMACS)
		}
		for _, tok := range strings.Fields(line) {
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("%w: literal %q", ErrBadDIMACS, tok)
			}
			if n == 0 {
				if len(current) > 0 {
					cs.Add(current)
					current = nil
				}
				continue
			}
			if v := Literal(n).Variable(); int(v) > cs.numVars {
				return nil, fmt.Errorf("%w: literal %d exceeds declared %d variables", ErrBadDIMACS, n, cs.numVars)
			}
			current = append(current, Literal(n))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if cs == nil {
		return nil, fmt.Errorf("%w: missing problem line", ErrBadDIMACS)
	}
	if len(current) > 0 {
		return nil, fmt.Errorf("%w: unterminated clause", ErrBadDIMACS)
	}
	// The declared clause count is advisory; duplicate clauses collapse on
	// Add, so only flag inputs declaring fewer clauses than present.
	if cs.Len() > declared {
		return nil, fmt.Errorf("%w: %d clauses declared, %d found", ErrBadDIMACS, declared, cs.Len())
	}
	return cs, nil
}
