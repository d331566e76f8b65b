package sat

import "github.com/ashgrove-vane/satkernel/core"

// BitMatrix returns the m x 2n bit-matrix view of the instance, computing
// and caching it on first call. Per §4.A it fails when the instance has
// any empty clause or has zero variables.
func (in *Instance) BitMatrix() ([][]byte, error) {
	if in.HasEmptyClause() {
		return nil, core.NewError(core.BitMatrixUnavailable, "BitMatrix", "instance has an empty clause")
	}
	if in.numVars == 0 {
		return nil, core.NewError(core.BitMatrixUnavailable, "BitMatrix", "instance has zero variables")
	}
	if in.bitMatrix != nil {
		return in.bitMatrix, nil
	}

	width := 2 * in.numVars
	matrix := make([][]byte, len(in.clauses))
	for i, clause := range in.clauses {
		row := make([]byte, width)
		for _, lit := range clause {
			v := int(lit.Var())
			if lit.Positive() {
				row[2*(v-1)] = 1
			} else {
				row[2*(v-1)+1] = 1
			}
		}
		matrix[i] = row
	}
	in.bitMatrix = matrix
	return matrix, nil
}
