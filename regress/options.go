package regress

type config struct {
	confidence float64
	maxIter    int
	tol        float64
}

func defaultConfig() config {
	return config{
		confidence: 0.95,
		maxIter:    1000,
		tol:        1e-6,
	}
}

// Option is a function that configures a regression call.
type Option func(*config)

// WithConfidence sets the confidence level for interval estimates.
// The level must lie in [0, 1]; the default is 0.95.
func WithConfidence(level float64) Option {
	return func(c *config) {
		c.confidence = level
	}
}

// WithMaxIterations sets the iteration cap of the logistic solver.
func WithMaxIterations(n int) Option {
	return func(c *config) {
		c.maxIter = n
	}
}

// WithTolerance sets the likelihood-improvement threshold below which
// the logistic solver stops.
func WithTolerance(tol float64) Option {
	return func(c *config) {
		c.tol = tol
	}
}
