package regress

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/n8sh/dstats/dist"
	"github.com/n8sh/dstats/pkg/errors"
	dlog "github.com/n8sh/dstats/pkg/log"
	"github.com/n8sh/dstats/seq"
	"github.com/n8sh/dstats/summary"
)

// Result holds the full inferential output of a linear regression.
// It is created once per LinearRegress call and read-only thereafter.
//
// Fields that depend on the residual degrees of freedom (everything
// except Betas, R2 and N) are NaN when df = n - k < 1 or when the
// underlying distribution functions reject their arguments; the
// remaining fields are still filled in.
type Result struct {
	// Betas are the fitted coefficients, index-aligned with the
	// predictor sequences.
	Betas []float64

	// StdErr[i] is the standard error of Betas[i].
	StdErr []float64

	// LowerBound and UpperBound delimit the confidence interval of
	// each coefficient at the configured confidence level.
	LowerBound []float64
	UpperBound []float64

	// P[i] is the two-tailed p-value of the hypothesis Betas[i] = 0.
	P []float64

	// R2 is the squared Pearson correlation between fitted and actual
	// responses; AdjustedR2 additionally penalizes model size.
	R2         float64
	AdjustedR2 float64

	// ResidualError is the residual standard error sqrt(S/df).
	ResidualError float64

	// OverallP is the p-value of the F-test of overall significance.
	OverallP float64

	// N is the number of fully paired observations used.
	N int

	// Confidence is the confidence level the bounds were computed for.
	Confidence float64
}

// String renders the result as a small regression table.
func (r *Result) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "N = %d, R^2 = %.4f, adjusted R^2 = %.4f, residual error = %.4f, overall p = %.4g\n",
		r.N, r.R2, r.AdjustedR2, r.ResidualError, r.OverallP)
	fmt.Fprintf(&b, "%-4s %12s %12s %12s %12s %10s\n",
		"", "beta", "stderr", "lower", "upper", "p")
	for i := range r.Betas {
		fmt.Fprintf(&b, "x%-3d %12.6g %12.6g %12.6g %12.6g %10.4g\n",
			i, r.Betas[i], r.StdErr[i], r.LowerBound[i], r.UpperBound[i], r.P[i])
	}
	return b.String()
}

// LinearRegress fits the same model as LinearRegressBeta and derives
// the residual-based inferential statistics: standard errors,
// confidence bounds, per-coefficient and overall p-values, R² and
// adjusted R², and the residual standard error.
//
// Every sequence must support multi-pass traversal: a restart point is
// saved for each before the coefficients are estimated, and the data
// are re-walked from those checkpoints to compute residuals.
func LinearRegress(y seq.Forward, xs []seq.Forward, opts ...Option) (*Result, error) {
	const op = "LinearRegress"
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if math.IsNaN(cfg.confidence) || cfg.confidence < 0 || cfg.confidence > 1 {
		return nil, errors.NewValidationError("confidence", "confidence level must lie in [0, 1]", cfg.confidence)
	}
	if y == nil {
		return nil, errors.NewValueError(op, "nil response sequence")
	}
	k := len(xs)
	if k == 0 {
		return nil, errors.NewValueError(op, "at least one predictor sequence is required")
	}

	// Restart points for the residual pass, saved before the builder
	// consumes anything.
	ySave := y.Checkpoint()
	saved := make([]seq.Forward, k)
	ss := make([]seq.Seq, k)
	for i, x := range xs {
		if x == nil {
			return nil, errors.NewValueError(op, "nil predictor sequence")
		}
		saved[i] = x.Checkpoint()
		ss[i] = x
	}

	betas, inv, _, err := linearRegressBeta(nil, y, ss)
	if err != nil {
		return nil, err
	}

	// Second pass: residual sum of squares and the fitted-vs-actual
	// correlation that yields R².
	var S float64
	var cor summary.PearsonCor
	n := 0
	row := make([]float64, k)
	for {
		yv, ok := ySave.Next()
		if !ok {
			break
		}
		short := false
		for i, x := range saved {
			xv, ok := x.Next()
			if !ok {
				short = true
				break
			}
			row[i] = xv
		}
		if short {
			break
		}
		var fitted float64
		for i, b := range betas {
			fitted += b * row[i]
		}
		resid := yv - fitted
		S += resid * resid
		cor.Put(fitted, yv)
		n++
	}

	r := cor.Cor()
	res := &Result{
		Betas:      betas,
		StdErr:     make([]float64, k),
		LowerBound: make([]float64, k),
		UpperBound: make([]float64, k),
		P:          make([]float64, k),
		R2:         r * r,
		N:          n,
		Confidence: cfg.confidence,
	}

	df := n - k
	if df < 1 {
		nan := math.NaN()
		for i := 0; i < k; i++ {
			res.StdErr[i] = nan
			res.LowerBound[i] = nan
			res.UpperBound[i] = nan
			res.P[i] = nan
		}
		res.AdjustedR2 = nan
		res.ResidualError = nan
		res.OverallP = nan
		return res, nil
	}

	fdf := float64(df)
	res.AdjustedR2 = 1 - (1-res.R2)*float64(n-1)/fdf
	res.ResidualError = math.Sqrt(S / fdf)

	// The left-tail quantile at (1-confidence)/2 is negative, so the
	// upper bound is beta - delta and the lower bound beta + delta.
	q, qErr := dist.InvStudentsTCDF((1-cfg.confidence)/2, fdf)
	if qErr != nil {
		q = math.NaN()
	}

	for i := 0; i < k; i++ {
		se := math.Sqrt(S * inv[i][i] / fdf)
		res.StdErr[i] = se

		t := betas[i] / se
		cdf, err := dist.StudentsTCDF(t, fdf)
		if err != nil {
			res.P[i] = math.NaN()
		} else {
			res.P[i] = 2 * math.Min(cdf, 1-cdf)
		}

		delta := q * se
		res.LowerBound[i] = betas[i] + delta
		res.UpperBound[i] = betas[i] - delta
	}

	f := (res.R2 / float64(k-1)) / ((1 - res.R2) / fdf)
	overall, fErr := dist.FisherCDFRight(f, float64(k-1), fdf)
	if fErr != nil {
		overall = math.NaN()
	}
	res.OverallP = overall

	slog.Debug("linear regression fitted",
		dlog.OperationKey, "linear_regress",
		dlog.ObservationsKey, n,
		dlog.PredictorsKey, k,
		dlog.ConfidenceKey, cfg.confidence,
	)
	return res, nil
}

// LinearRegressSet is LinearRegress for predictors supplied as one
// homogeneous collection, which is snapshotted up front.
func LinearRegressSet(y seq.Forward, xs seq.Source, opts ...Option) (*Result, error) {
	seqs, err := snapshotPredictors("LinearRegressSet", xs)
	if err != nil {
		return nil, err
	}
	return LinearRegress(y, seqs, opts...)
}

// Residuals returns the lazy residual stream of a fitted model: each
// element pairs the prediction betas·x at the current position against
// the next response value, yielding y[i] - Σ betas[j]·x[j][i]. The
// stream ends as soon as the response or any predictor sequence is
// exhausted, so infinite predictor sequences are fine.
//
// The number of coefficients must match the number of predictor
// sequences; a mismatch fails before any sequence is advanced.
func Residuals(betas []float64, y seq.Seq, xs ...seq.Seq) (seq.Seq, error) {
	const op = "Residuals"
	if len(betas) != len(xs) {
		return nil, errors.NewDimensionError(op, len(xs), len(betas), "coefficients")
	}
	if y == nil {
		return nil, errors.NewValueError(op, "nil response sequence")
	}
	for _, x := range xs {
		if x == nil {
			return nil, errors.NewValueError(op, "nil predictor sequence")
		}
	}
	return &residualSeq{betas: betas, y: y, xs: xs}, nil
}

type residualSeq struct {
	betas []float64
	y     seq.Seq
	xs    []seq.Seq
	done  bool
}

func (r *residualSeq) Next() (float64, bool) {
	if r.done {
		return 0, false
	}
	yv, ok := r.y.Next()
	if !ok {
		r.done = true
		return 0, false
	}
	var fitted float64
	for i, x := range r.xs {
		xv, ok := x.Next()
		if !ok {
			r.done = true
			return 0, false
		}
		fitted += r.betas[i] * xv
	}
	return yv - fitted, true
}
