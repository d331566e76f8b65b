package sat

import "github.com/ashgrove-vane/satkernel/core"

// Is2SATSatisfiable decides a strict 2-SAT instance (every clause has
// exactly two literals) in polynomial time via the implication graph:
// each clause (a, b) contributes edges (-a -> b) and (-b -> a); the
// instance is satisfiable iff no variable and its negation land in the
// same strongly connected component. Per the non-goals, this returns only
// a verdict, never a model.
func Is2SATSatisfiable(in *Instance) (bool, error) {
	for _, clause := range in.clauses {
		if len(clause) != 2 {
			return false, core.NewError(core.InvalidInstance, "Is2SATSatisfiable", "instance is not strict 2-SAT: a clause does not have exactly two literals")
		}
	}
	if in.numVars == 0 {
		return true, nil
	}

	n := in.numVars
	idx := func(lit int) int {
		if lit > 0 {
			return lit - 1
		}
		return n + (-lit) - 1
	}

	adj := make([][]int, 2*n)
	for _, clause := range in.clauses {
		a, b := int(clause[0]), int(clause[1])
		adj[idx(-a)] = append(adj[idx(-a)], idx(b))
		adj[idx(-b)] = append(adj[idx(-b)], idx(a))
	}

	scc := tarjanSCC(adj)

	for v := 1; v <= n; v++ {
		if scc[idx(v)] == scc[idx(-v)] {
			return false, nil
		}
	}
	return true, nil
}

// tarjanSCC computes strongly connected components of the graph given by
// adj (adjacency list over node indices [0, len(adj))), iteratively to
// keep stack depth bounded by an explicit slice rather than the Go call
// stack. Returns, for each node, the id of its component; two nodes share
// a component id iff they are mutually reachable.
func tarjanSCC(adj [][]int) []int {
	n := len(adj)
	index := make([]int, n)
	lowlink := make([]int, n)
	onStack := make([]bool, n)
	comp := make([]int, n)
	for i := range index {
		index[i] = -1
		comp[i] = -1
	}

	var stack []int
	nextIndex := 0
	nextComp := 0

	type frame struct {
		node    int
		edgePos int
	}

	for start := 0; start < n; start++ {
		if index[start] != -1 {
			continue
		}

		var work []frame
		work = append(work, frame{node: start, edgePos: 0})
		index[start] = nextIndex
		lowlink[start] = nextIndex
		nextIndex++
		stack = append(stack, start)
		onStack[start] = true

		for len(work) > 0 {
			top := &work[len(work)-1]
			v := top.node

			if top.edgePos < len(adj[v]) {
				w := adj[v][top.edgePos]
				top.edgePos++
				if index[w] == -1 {
					index[w] = nextIndex
					lowlink[w] = nextIndex
					nextIndex++
					stack = append(stack, w)
					onStack[w] = true
					work = append(work, frame{node: w, edgePos: 0})
				} else if onStack[w] {
					if index[w] < lowlink[v] {
						lowlink[v] = index[w]
					}
				}
				continue
			}

			// Done with v's edges: pop and propagate lowlink to parent.
			work = work[:len(work)-1]
			if len(work) > 0 {
				parent := &work[len(work)-1]
				if lowlink[v] < lowlink[parent.node] {
					lowlink[parent.node] = lowlink[v]
				}
			}

			if lowlink[v] == index[v] {
				for {
					w := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[w] = false
					comp[w] = nextComp
					if w == v {
						break
					}
				}
				nextComp++
			}
		}
	}

	return comp
}
