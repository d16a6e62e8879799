package regress

import "math"

// newMatrix allocates a rows×cols matrix backed by a single contiguous
// slice. The matrices built here are scratch space scoped to one
// regression call; no reference to them escapes.
func newMatrix(rows, cols int) [][]float64 {
	backing := make([]float64, rows*cols)
	m := make([][]float64, rows)
	for i := range m {
		m[i] = backing[i*cols : (i+1)*cols]
	}
	return m
}

// invert computes the inverse of the k×k matrix m via Gauss-Jordan
// elimination with partial pivoting on a k×2k augmented working matrix.
// Each row is first scaled by the reciprocal of its largest entry to
// improve conditioning, with that reciprocal written into the row's
// identity-augmentation slot.
//
// m is consumed by the call and must not be reused. Singularity is not
// detected: a zero pivot (collinear predictors, an all-zero row)
// divides through by zero and propagates ±Inf/NaN into the result
// instead of returning an error. Callers that care must check the
// output for non-finite entries.
func invert(m [][]float64) [][]float64 {
	k := len(m)
	aug := newMatrix(k, 2*k)
	for i := 0; i < k; i++ {
		copy(aug[i][:k], m[i])
	}

	for i := 0; i < k; i++ {
		maxAbs := 0.0
		for j := 0; j < k; j++ {
			if a := math.Abs(aug[i][j]); a > maxAbs {
				maxAbs = a
			}
		}
		r := 1 / maxAbs
		for j := 0; j < k; j++ {
			aug[i][j] *= r
		}
		aug[i][k+i] = r
	}

	for c := 0; c < k; c++ {
		pivot := c
		for r := c + 1; r < k; r++ {
			if math.Abs(aug[r][c]) > math.Abs(aug[pivot][c]) {
				pivot = r
			}
		}
		aug[c], aug[pivot] = aug[pivot], aug[c]

		for r := 0; r < k; r++ {
			if r == c {
				continue
			}
			factor := aug[r][c] / aug[c][c]
			for j := 0; j < 2*k; j++ {
				aug[r][j] -= factor * aug[c][j]
			}
		}
	}

	inv := newMatrix(k, k)
	for i := 0; i < k; i++ {
		d := aug[i][i]
		for j := 0; j < k; j++ {
			inv[i][j] = aug[i][k+j] / d
		}
	}
	return inv
}
