package sat

import (
	"github.com/ashgrove-vane/satkernel/core"
	"go.uber.org/zap"
)

// cdclState holds the mutable search state for one CDCL run: a clause
// database starting from the instance's own clauses and growing
// append-only as clauses are learned, and a decision trail recording, per
// assigned variable, its value, its decision level, and its antecedent
// (the clause that forced it by unit propagation, or nil for a decision).
type cdclState struct {
	clauses [][]int

	value  map[int]bool
	level  map[int]int
	reason map[int][]int

	trail []int // literals, in assignment order
}

func newCDCLState(in *Instance) *cdclState {
	return &cdclState{
		clauses: in.Clauses(),
		value:   make(map[int]bool),
		level:   make(map[int]int),
		reason:  make(map[int][]int),
	}
}

func (s *cdclState) assign(variable int, val bool, lvl int, reasonClause []int) {
	s.value[variable] = val
	s.level[variable] = lvl
	s.reason[variable] = reasonClause
	if val {
		s.trail = append(s.trail, variable)
	} else {
		s.trail = append(s.trail, -variable)
	}
}

// litValue reports the current truth value of lit and whether its
// variable is assigned at all.
func (s *cdclState) litValue(lit int) (val bool, ok bool) {
	v, assigned := s.value[abs(lit)]
	if !assigned {
		return false, false
	}
	if lit > 0 {
		return v, true
	}
	return !v, true
}

type clauseOutcome int

const (
	outcomeUnresolved clauseOutcome = iota
	outcomeSatisfied
	outcomeConflict
	outcomeUnit
)

// clauseStatus classifies clause against the current partial assignment.
// For outcomeUnit it also returns the single unassigned literal.
func (s *cdclState) clauseStatus(clause []int) (clauseOutcome, int) {
	unassignedCount := 0
	lastUnassigned := 0
	for _, lit := range clause {
		val, ok := s.litValue(lit)
		if !ok {
			unassignedCount++
			lastUnassigned = lit
			continue
		}
		if val {
			return outcomeSatisfied, 0
		}
	}
	if unassignedCount == 0 {
		return outcomeConflict, 0
	}
	if unassignedCount == 1 {
		return outcomeUnit, lastUnassigned
	}
	return outcomeUnresolved, 0
}

// propagate applies unit propagation to a fixpoint at the current
// decision level, returning the first conflicting clause encountered, or
// nil once no clause forces a further assignment.
func (s *cdclState) propagate(currentLevel int) []int {
	for {
		progressed := false
		for _, clause := range s.clauses {
			outcome, unit := s.clauseStatus(clause)
			switch outcome {
			case outcomeConflict:
				return clause
			case outcomeUnit:
				s.assign(abs(unit), unit > 0, currentLevel, clause)
				progressed = true
			}
		}
		if !progressed {
			return nil
		}
	}
}

// backtrackTo undoes every assignment made above decision level target.
func (s *cdclState) backtrackTo(target int) {
	cut := len(s.trail)
	for cut > 0 {
		v := abs(s.trail[cut-1])
		if s.level[v] <= target {
			break
		}
		delete(s.value, v)
		delete(s.level, v)
		delete(s.reason, v)
		cut--
	}
	s.trail = s.trail[:cut]
}

// analyzeConflict performs first-UIP conflict analysis: resolving
// backward from the conflicting clause along the trail against the
// antecedent of each literal assigned at currentLevel, until exactly one
// such literal remains unresolved (the first UIP). The learned clause is
// the negation of the UIP literal followed by the literals assigned at
// earlier levels that the resolution chain implicated. The backtrack
// level is the highest level among those earlier literals, or 0 for a
// unit learned clause.
func (s *cdclState) analyzeConflict(conflict []int, currentLevel int) ([]int, int) {
	seen := make(map[int]bool)
	var learnt []int
	counter := 0
	reasonClause := conflict
	uipLit := 0
	trailIdx := len(s.trail) - 1

	for {
		for _, lit := range reasonClause {
			v := abs(lit)
			if seen[v] || (uipLit != 0 && v == abs(uipLit)) {
				continue
			}
			seen[v] = true
			if s.level[v] == currentLevel {
				counter++
			} else {
				learnt = append(learnt, lit)
			}
		}

		for trailIdx >= 0 && !seen[abs(s.trail[trailIdx])] {
			trailIdx--
		}
		uipLit = s.trail[trailIdx]
		trailIdx--
		counter--

		if counter == 0 {
			break
		}
		reasonClause = s.reason[abs(uipLit)]
	}

	learnt = append([]int{-uipLit}, learnt...)

	backtrackLevel := 0
	for _, lit := range learnt[1:] {
		if lvl := s.level[abs(lit)]; lvl > backtrackLevel {
			backtrackLevel = lvl
		}
	}
	return learnt, backtrackLevel
}

// IsSatisfiableCDCL runs conflict-driven clause learning: unit
// propagation to a fixpoint, then on conflict first-UIP analysis and
// non-chronological backtracking to the learned clause's assertion level,
// or a heuristic-chosen decision when propagation reaches a conflict-free
// fixpoint with variables still unassigned. Learned clauses are appended
// to a single clause store shared for the rest of the run. Returns the
// verdict and the number of decisions made.
func IsSatisfiableCDCL(in *Instance, heuristic Heuristic) (bool, int) {
	return IsSatisfiableCDCLWithOptions(in, heuristic, zap.NewNop(), nil)
}

// IsSatisfiableCDCLWithLogger is IsSatisfiableCDCL with a caller-supplied
// logger: at Debug level, the trail is dumped via DumpAssignment after
// every decision, in the style of a solver tracing its search.
func IsSatisfiableCDCLWithLogger(in *Instance, heuristic Heuristic, logger *zap.Logger) (bool, int) {
	return IsSatisfiableCDCLWithOptions(in, heuristic, logger, nil)
}

// IsSatisfiableCDCLWithOptions is IsSatisfiableCDCL with a caller-supplied
// logger and a cooperative cancellation callback, polled once per
// iteration of the search loop, before each propagation round (between
// search nodes, per core.Cancel's contract). A nil logger behaves as
// zap.NewNop(). A run cancelled
// before reaching a verdict reports false with however many decisions it
// had made so far; that false is not a proof of unsatisfiability, and a
// caller that cancels is expected to already know it did so rather than
// trust the verdict.
func IsSatisfiableCDCLWithOptions(in *Instance, heuristic Heuristic, logger *zap.Logger, cancel core.Cancel) (bool, int) {
	logger = nopIfNil(logger)
	if in.NumClauses() == 0 {
		return true, 0
	}
	if in.HasEmptyClause() {
		return false, 0
	}

	state := newCDCLState(in)
	level := 0
	decisions := 0

	for {
		if core.Cancelled(cancel) {
			return false, decisions
		}

		if conflict := state.propagate(level); conflict != nil {
			if level == 0 {
				return false, decisions
			}
			learnt, backtrackLevel := state.analyzeConflict(conflict, level)
			state.clauses = append(state.clauses, learnt)
			state.backtrackTo(backtrackLevel)
			level = backtrackLevel

			if len(learnt) == 1 {
				state.assign(abs(learnt[0]), learnt[0] > 0, level, learnt)
			}
			continue
		}

		lit := nextDecisionLiteral(state, heuristic)
		if lit == 0 {
			return true, decisions
		}

		decisions++
		level++
		state.assign(abs(lit), lit > 0, level, nil)

		if ce := logger.Check(zap.DebugLevel, "cdcl decision"); ce != nil {
			assignment := make(Assignment, len(state.value))
			for v, val := range state.value {
				assignment[v] = val
			}
			ce.Write(zap.Int("decisions", decisions), zap.String("trail", DumpAssignment(assignment)))
		}
	}
}

// nextDecisionLiteral simplifies the current clause database against the
// partial assignment and asks heuristic to choose among what remains,
// returning 0 once no clause remains unsatisfied.
func nextDecisionLiteral(s *cdclState, heuristic Heuristic) int {
	assignment := make(Assignment, len(s.value))
	for v, val := range s.value {
		assignment[v] = val
	}

	reduced := Simplify(mustInstance(s.clauses), assignment)
	if reduced.NumClauses() == 0 {
		return 0
	}
	return heuristic(reduced)
}

func mustInstance(clauses [][]int) *Instance {
	in, err := FromClauses(clauses)
	if err != nil {
		panic(core.WrapError(core.InvalidInstance, "sat.mustInstance", err))
	}
	return in
}
