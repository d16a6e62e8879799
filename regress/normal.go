package regress

import "github.com/n8sh/dstats/seq"

// accumNormalEquations streams the response and the predictor sequences
// in lockstep exactly once, accumulating the normal-equations matrix
// X'X into xtx and the moment vector X'y into xty. All sequences are
// advanced together; iteration stops the instant any one of them is
// exhausted, so the shortest sequence truncates the rest. Returns the
// number of fully paired observations consumed.
//
// X'X is symmetric by construction: each cross product is written to
// both triangles.
func accumNormalEquations(y seq.Seq, xs []seq.Seq, xtx [][]float64, xty []float64) int {
	k := len(xs)
	row := make([]float64, k)
	n := 0
	for {
		yv, ok := y.Next()
		if !ok {
			return n
		}
		for i, x := range xs {
			xv, ok := x.Next()
			if !ok {
				return n
			}
			row[i] = xv
		}
		for i := 0; i < k; i++ {
			xty[i] += row[i] * yv
			xtx[i][i] += row[i] * row[i]
			for j := i + 1; j < k; j++ {
				prod := row[i] * row[j]
				xtx[i][j] += prod
				xtx[j][i] += prod
			}
		}
		n++
	}
}
