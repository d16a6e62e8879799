package regress

import (
	"log/slog"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/n8sh/dstats/pkg/errors"
	dlog "github.com/n8sh/dstats/pkg/log"
	"github.com/n8sh/dstats/seq"
)

// LogisticResult holds the outcome of a maximum-likelihood logistic
// fit. No standard errors or p-values are computed for this path.
type LogisticResult struct {
	// Betas are the fitted coefficients, index-aligned with the
	// predictor sequences.
	Betas []float64

	// Converged reports whether the likelihood improvement fell below
	// the tolerance before the iteration cap.
	Converged bool

	// Iterations is the number of Newton-Raphson iterations run.
	Iterations int

	// LogLikelihood is the twice-negative Bernoulli log-likelihood at
	// the returned coefficients.
	LogLikelihood float64
}

// inverseLogit is the logistic link 1/(1+e^(-z)). Pure and total.
func inverseLogit(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

// LogisticRegressBeta finds the coefficients maximizing the Bernoulli
// log-likelihood of the response y (nonzero values are treated as
// true) under the logistic link, via Newton-Raphson iteration. The
// coefficient order matches the predictor order.
//
// The response must have a known finite length, since every value is
// read repeatedly across iterations; all data are materialized up
// front. Predictor sequences may be infinite, the response length
// truncates them. If the solver hits its iteration cap without
// converging the best coefficients found are still returned and a
// ConvergenceWarning is routed through the errors warning handler; use
// LogisticRegress to observe convergence explicitly.
func LogisticRegressBeta(y seq.Seq, xs ...seq.Seq) ([]float64, error) {
	res, err := logisticRegress(y, xs, defaultConfig())
	if err != nil {
		return nil, err
	}
	if !res.Converged {
		errors.Warn(errors.NewConvergenceWarning("LogisticRegressBeta", res.Iterations, ""))
	}
	return res.Betas, nil
}

// LogisticRegress is LogisticRegressBeta with explicit convergence
// reporting and configurable iteration cap and tolerance.
func LogisticRegress(y seq.Seq, xs []seq.Seq, opts ...Option) (*LogisticResult, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.maxIter < 1 {
		return nil, errors.NewValidationError("maxIterations", "iteration cap must be positive", cfg.maxIter)
	}
	if math.IsNaN(cfg.tol) || cfg.tol <= 0 {
		return nil, errors.NewValidationError("tolerance", "tolerance must be positive", cfg.tol)
	}
	return logisticRegress(y, xs, cfg)
}

func logisticRegress(y seq.Seq, xs []seq.Seq, cfg config) (*LogisticResult, error) {
	const op = "LogisticRegress"
	if y == nil {
		return nil, errors.NewValueError(op, "nil response sequence")
	}
	k := len(xs)
	if k == 0 {
		return nil, errors.NewValueError(op, "at least one predictor sequence is required")
	}
	for _, x := range xs {
		if x == nil {
			return nil, errors.NewValueError(op, "nil predictor sequence")
		}
	}
	n := seq.Len(y)
	if n < 0 {
		return nil, errors.NewValidationError("y", "response must have a known finite length", y)
	}

	// Materialize everything: unlike the linear path, each value is
	// read once per iteration. The shortest sequence truncates.
	yv := seq.CollectN(y, n)
	n = len(yv)
	cols := make([][]float64, k)
	for i, x := range xs {
		col := seq.CollectN(x, n)
		if len(col) < n {
			n = len(col)
		}
		cols[i] = col
	}
	if n == 0 {
		return nil, errors.NewValueError(op, "no paired observations")
	}

	X := mat.NewDense(n, k, nil)
	for j, col := range cols {
		for i := 0; i < n; i++ {
			X.Set(i, j, col[i])
		}
	}
	yb := make([]float64, n)
	for i := 0; i < n; i++ {
		if yv[i] != 0 {
			yb[i] = 1
		}
	}

	beta := make([]float64, k)
	ps := make([]float64, n)
	lastLik := math.MaxFloat64
	var lik float64
	iterations := 0
	converged := false

	for iter := 0; iter < cfg.maxIter; iter++ {
		iterations = iter + 1

		for i := 0; i < n; i++ {
			var z float64
			for j := 0; j < k; j++ {
				z += X.At(i, j) * beta[j]
			}
			ps[i] = inverseLogit(z)
		}

		lik = 0
		for i := 0; i < n; i++ {
			if yb[i] == 1 {
				lik += math.Log(ps[i])
			} else {
				lik += math.Log(1 - ps[i])
			}
		}
		lik *= -2

		if math.Abs(lastLik-lik) < cfg.tol {
			converged = true
			break
		}
		if err := errors.CheckScalar("log_likelihood", lik, iter); err != nil {
			slog.Debug("logistic likelihood became non-finite",
				dlog.OperationKey, "logistic_regress",
				dlog.IterationsKey, iterations,
				dlog.ErrAttr(err),
			)
			break
		}
		lastLik = lik

		// Weighted information matrix W = X' diag(p(1-p)) X and the
		// score X'(y - p); the Newton step is W⁻¹ X'(y - p).
		w := newMatrix(k, k)
		u := make([]float64, k)
		for i := 0; i < n; i++ {
			wi := ps[i] * (1 - ps[i])
			for a := 0; a < k; a++ {
				xa := X.At(i, a)
				u[a] += xa * (yb[i] - ps[i])
				for b := a; b < k; b++ {
					prod := wi * xa * X.At(i, b)
					w[a][b] += prod
					if b != a {
						w[b][a] += prod
					}
				}
			}
		}

		winv := invert(w)
		for a := 0; a < k; a++ {
			var step float64
			for b := 0; b < k; b++ {
				step += winv[a][b] * u[b]
			}
			beta[a] += step
		}
	}

	slog.Debug("logistic regression finished",
		dlog.OperationKey, "logistic_regress",
		dlog.ObservationsKey, n,
		dlog.PredictorsKey, k,
		dlog.IterationsKey, iterations,
		dlog.ConvergedKey, converged,
		dlog.LogLikelihoodKey, lik,
	)
	return &LogisticResult{
		Betas:         beta,
		Converged:     converged,
		Iterations:    iterations,
		LogLikelihood: lik,
	}, nil
}
