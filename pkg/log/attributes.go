// Package log defines standard attribute keys for regression operations.
//
// Using these keys consistently keeps fit diagnostics filterable across
// the library's log output.
package log

// Operation context.
const (
	// OperationKey specifies the regression operation being performed.
	// Standard values: "linear_regress", "poly_fit", "logistic_regress".
	OperationKey = "regress.operation"

	// ComponentKey identifies which package is performing the operation.
	ComponentKey = "regress.component"
)

// Data shape.
const (
	// ObservationsKey is the number of fully paired observations used.
	ObservationsKey = "data.observations"

	// PredictorsKey is the number of predictor sequences.
	PredictorsKey = "data.predictors"

	// DegreeKey is the polynomial degree of a power-series fit.
	DegreeKey = "data.degree"
)

// Solver diagnostics.
const (
	// IterationsKey is the number of iterations an iterative solver ran.
	IterationsKey = "solver.iterations"

	// LogLikelihoodKey is the (twice-negative) log-likelihood reached.
	LogLikelihoodKey = "solver.log_likelihood"

	// ConvergedKey reports whether the solver met its tolerance.
	ConvergedKey = "solver.converged"

	// ConfidenceKey is the confidence level of interval estimates.
	ConfidenceKey = "stats.confidence"
)
