package regress

import (
	"log/slog"

	"github.com/n8sh/dstats/pkg/errors"
	dlog "github.com/n8sh/dstats/pkg/log"
	"github.com/n8sh/dstats/seq"
)

// PolyFitResult bundles the inferential statistics of a polynomial fit
// with the power-transformed predictor sequences that produced it.
type PolyFitResult struct {
	*Result

	// Powers are fresh adapters computing x^0 .. x^degree, positioned
	// at the start of the data. Walking them against Betas re-derives
	// the fitted values.
	Powers []seq.Forward
}

// PolyFit fits a polynomial of the given degree to (x, y) by expanding
// x into the degree+1 power sequences x^0, x^1, ..., x^degree and
// running the multivariate linear fit on them. The x^0 sequence is the
// intercept term. Each power adapter holds only its current value and
// recomputes on every advance, so the expansion costs O(1) memory per
// exponent.
func PolyFit(y seq.Forward, x seq.Forward, degree int, opts ...Option) (*PolyFitResult, error) {
	const op = "PolyFit"
	if degree < 0 {
		return nil, errors.NewValidationError("degree", "polynomial degree must be non-negative", degree)
	}
	if y == nil {
		return nil, errors.NewValueError(op, "nil response sequence")
	}
	if x == nil {
		return nil, errors.NewValueError(op, "nil base sequence")
	}

	k := degree + 1
	preds := make([]seq.Forward, k)
	for i := range preds {
		preds[i] = seq.Pow(x.Checkpoint(), float64(i))
	}

	res, err := LinearRegress(y, preds, opts...)
	if err != nil {
		return nil, err
	}

	// The fitting pass consumed the adapters above; hand back fresh
	// ones positioned at the start of x.
	powers := make([]seq.Forward, k)
	for i := range powers {
		powers[i] = seq.Pow(x.Checkpoint(), float64(i))
	}

	slog.Debug("polynomial fit finished",
		dlog.OperationKey, "poly_fit",
		dlog.DegreeKey, degree,
		dlog.ObservationsKey, res.N,
	)
	return &PolyFitResult{Result: res, Powers: powers}, nil
}
