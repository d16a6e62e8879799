package regress

import (
	"strconv"

	"github.com/n8sh/dstats/pkg/errors"
	"github.com/n8sh/dstats/seq"
)

// LinearRegressBeta computes the least-squares coefficient vector for
// the response y and the predictor sequences xs via the normal
// equations beta = (X'X)⁻¹ X'y. Coefficients are index-aligned with the
// predictor order. An intercept is not implicit; pass seq.Constant(1)
// as a predictor to fit one.
//
// Only a single pass over each sequence is required, so consume-once
// sequences are acceptable here. Use LinearRegress for the full
// inferential statistics, which needs multi-pass inputs.
func LinearRegressBeta(y seq.Seq, xs ...seq.Seq) ([]float64, error) {
	betas, _, _, err := linearRegressBeta(nil, y, xs)
	return betas, err
}

// LinearRegressBetaBuf is LinearRegressBeta with a caller-supplied
// output buffer. If buf has capacity for one coefficient per predictor
// the result is written into it and backed by it; otherwise a fresh
// slice is allocated. Useful to avoid repeated allocation in hot loops.
func LinearRegressBetaBuf(buf []float64, y seq.Seq, xs ...seq.Seq) ([]float64, error) {
	betas, _, _, err := linearRegressBeta(buf, y, xs)
	return betas, err
}

// LinearRegressBetaSet is LinearRegressBeta for predictors supplied as
// one homogeneous collection. The collection is snapshotted before any
// accumulation, since its length fixes the normal-equations dimension.
func LinearRegressBetaSet(y seq.Seq, xs seq.Source) ([]float64, error) {
	seqs, err := snapshotPredictors("LinearRegressBetaSet", xs)
	if err != nil {
		return nil, err
	}
	ss := make([]seq.Seq, len(seqs))
	for i, s := range seqs {
		ss[i] = s
	}
	betas, _, _, err := linearRegressBeta(nil, y, ss)
	return betas, err
}

// linearRegressBeta runs the normal-equations builder and the inverter,
// returning the coefficients together with (X'X)⁻¹ and the observation
// count, which the inferential path reuses.
func linearRegressBeta(buf []float64, y seq.Seq, xs []seq.Seq) ([]float64, [][]float64, int, error) {
	const op = "LinearRegressBeta"
	if y == nil {
		return nil, nil, 0, errors.NewValueError(op, "nil response sequence")
	}
	k := len(xs)
	if k == 0 {
		return nil, nil, 0, errors.NewValueError(op, "at least one predictor sequence is required")
	}
	for i, x := range xs {
		if x == nil {
			return nil, nil, 0, errors.NewValueError(op, "nil predictor sequence at index "+strconv.Itoa(i))
		}
	}

	xtx := newMatrix(k, k)
	xty := make([]float64, k)
	n := accumNormalEquations(y, xs, xtx, xty)
	inv := invert(xtx)

	var betas []float64
	if cap(buf) >= k {
		betas = buf[:k]
	} else {
		betas = make([]float64, k)
	}
	for i := 0; i < k; i++ {
		var sum float64
		for j := 0; j < k; j++ {
			sum += inv[i][j] * xty[j]
		}
		betas[i] = sum
	}
	return betas, inv, n, nil
}

func snapshotPredictors(op string, src seq.Source) ([]seq.Forward, error) {
	if src == nil {
		return nil, errors.NewValueError(op, "nil predictor collection")
	}
	seqs := seq.CollectSeqs(src)
	if len(seqs) == 0 {
		return nil, errors.NewValidationError("predictors", "collection yielded no sequences", src)
	}
	for i, s := range seqs {
		if s == nil {
			return nil, errors.NewValueError(op, "nil predictor sequence at index "+strconv.Itoa(i))
		}
	}
	return seqs, nil
}

