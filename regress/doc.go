// Package regress implements ordinary least-squares linear regression
// (with polynomial regression as a special case) and maximum-likelihood
// logistic regression over lazy numeric sequences.
//
// The linear path accumulates the normal equations X'Xβ = X'y in a
// single synchronized pass over the inputs, solves them by Gauss-Jordan
// elimination with partial pivoting, and optionally re-walks the data
// to derive standard errors, confidence intervals, p-values, R² and the
// overall F-test. The logistic path iterates a Newton-Raphson update on
// the weighted information matrix, reusing the same inverter.
//
// Three levels of API are offered:
//
//   - LinearRegressBeta / LinearRegressBetaBuf: coefficients only, one
//     pass, valid for consume-once sequences.
//   - LinearRegress / PolyFit: full inferential statistics, requiring
//     multi-pass (seq.Forward) inputs.
//   - LogisticRegressBeta / LogisticRegress: Bernoulli MLE under the
//     logistic link.
//
// An intercept is never implicit: pass seq.Constant(1) (or rely on the
// x^0 term of PolyFit) to fit one.
//
// The inverter does not detect singular matrices. Perfectly collinear
// predictors yield ±Inf/NaN coefficients rather than an error; validate
// predictor independence beforehand or check the output for non-finite
// values.
package regress
