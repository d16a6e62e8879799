// Package dist exposes the probability-distribution functions the
// regression routines consume: Student's t CDF and quantile, and the
// right tail of the Fisher F distribution. They are thin wrappers over
// gonum's distuv that validate degrees of freedom and return errors
// instead of panicking or silently producing NaN.
package dist

import (
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/n8sh/dstats/pkg/errors"
)

// StudentsTCDF returns P(T <= t) for a Student's t distribution with
// df degrees of freedom.
func StudentsTCDF(t, df float64) (p float64, err error) {
	defer errors.Recover(&err, "StudentsTCDF")
	if df <= 0 {
		return 0, errors.NewValidationError("df", "degrees of freedom must be positive", df)
	}
	d := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return d.CDF(t), nil
}

// StudentsTCDFRight returns P(T > t) for a Student's t distribution
// with df degrees of freedom.
func StudentsTCDFRight(t, df float64) (p float64, err error) {
	defer errors.Recover(&err, "StudentsTCDFRight")
	if df <= 0 {
		return 0, errors.NewValidationError("df", "degrees of freedom must be positive", df)
	}
	d := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return d.Survival(t), nil
}

// InvStudentsTCDF returns the quantile t such that P(T <= t) = p for a
// Student's t distribution with df degrees of freedom.
func InvStudentsTCDF(p, df float64) (q float64, err error) {
	defer errors.Recover(&err, "InvStudentsTCDF")
	if df <= 0 {
		return 0, errors.NewValidationError("df", "degrees of freedom must be positive", df)
	}
	if p < 0 || p > 1 {
		return 0, errors.NewValidationError("p", "probability must be in [0, 1]", p)
	}
	d := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return d.Quantile(p), nil
}

// FisherCDFRight returns P(F > f) for a Fisher F distribution with
// (df1, df2) degrees of freedom.
func FisherCDFRight(f, df1, df2 float64) (p float64, err error) {
	defer errors.Recover(&err, "FisherCDFRight")
	if df1 <= 0 || df2 <= 0 {
		return 0, errors.NewValidationError("df", "degrees of freedom must be positive", [2]float64{df1, df2})
	}
	d := distuv.F{D1: df1, D2: df2}
	return d.Survival(f), nil
}
