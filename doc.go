// Package dstats provides streaming statistics and regression analysis
// for Go, operating on lazy sequences of observations rather than
// pre-built matrices.
//
// # Packages
//
//   - seq: lazy numeric sequences with single-pass and checkpointable
//     multi-pass capability tiers
//   - regress: linear, polynomial and logistic regression with
//     inferential statistics
//   - summary: streaming summary-statistic accumulators
//   - dist: Student's t and Fisher F distribution functions
//
// # Quick Start
//
// A straight-line fit with an explicit intercept column:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/n8sh/dstats/regress"
//	    "github.com/n8sh/dstats/seq"
//	)
//
//	func main() {
//	    y := seq.FromSlice([]float64{1.9, 3.1, 3.3, 4.8, 5.3})
//	    x := seq.FromSlice([]float64{2, 1, 5, 5, 20})
//
//	    res, err := regress.LinearRegress(y, []seq.Forward{seq.Constant(1), x})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(res)
//	}
//
// Sequences may be infinite (seq.Constant above never ends); every fit
// uses exactly as many observations as the shortest input supplies.
package dstats
