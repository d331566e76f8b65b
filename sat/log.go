package sat

import (
	"sort"

	"github.com/kr/pretty"
	"go.uber.org/zap"
)

// NewDevelopmentLogger returns a zap logger suitable for interactive runs
// of the solvers in this package (human-readable, Debug level and above).
// Passing nil to any function in this package that accepts a *zap.Logger
// is always safe and behaves as zap.NewNop().
func NewDevelopmentLogger() *zap.Logger {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// DumpAssignment renders a partial assignment for diagnostic logging, in
// the style of a solver printing its unassigned-variable set during a
// trace run: one entry per variable, sorted by variable number.
func DumpAssignment(a Assignment) string {
	vars := make([]int, 0, len(a))
	for v := range a {
		vars = append(vars, v)
	}
	sort.Ints(vars)

	ordered := make([]struct {
		Var   int
		Value bool
	}, len(vars))
	for i, v := range vars {
		ordered[i].Var = v
		ordered[i].Value = a[v]
	}
	return pretty.Sprint(ordered)
}
