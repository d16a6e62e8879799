package regress

import (
	"math"
	"testing"

	"github.com/n8sh/dstats/pkg/errors"
	"github.com/n8sh/dstats/seq"
)

func TestLogisticRegressBetaKnownFit(t *testing.T) {
	y := seq.FromSlice([]float64{1, 0, 0, 0, 1, 0, 0})
	x := seq.FromSlice([]float64{8, 6, 7, 5, 3, 0, 9})

	betas, err := LogisticRegressBeta(y, seq.Constant(1), x)
	if err != nil {
		t.Fatalf("LogisticRegressBeta() error = %v", err)
	}
	if len(betas) != 2 {
		t.Fatalf("got %d coefficients, want 2", len(betas))
	}

	const tol = 1e-4
	if math.Abs(betas[0]-(-0.98273)) > tol {
		t.Errorf("beta0 = %v, want -0.98273", betas[0])
	}
	if math.Abs(betas[1]-0.01219) > tol {
		t.Errorf("beta1 = %v, want 0.01219", betas[1])
	}
}

func TestLogisticRegressConvergenceReporting(t *testing.T) {
	y := seq.FromSlice([]float64{1, 0, 0, 0, 1, 0, 0})
	x := seq.FromSlice([]float64{8, 6, 7, 5, 3, 0, 9})

	res, err := LogisticRegress(y, []seq.Seq{seq.Constant(1), x})
	if err != nil {
		t.Fatalf("LogisticRegress() error = %v", err)
	}
	if !res.Converged {
		t.Error("solver did not report convergence on a well-behaved problem")
	}
	if res.Iterations < 1 || res.Iterations > 1000 {
		t.Errorf("Iterations = %d, want within [1, 1000]", res.Iterations)
	}
	if math.IsNaN(res.LogLikelihood) || math.IsInf(res.LogLikelihood, 0) {
		t.Errorf("LogLikelihood = %v, want finite", res.LogLikelihood)
	}
}

func TestLogisticRegressIterationCap(t *testing.T) {
	// A single iteration cannot meet the tolerance; the best betas so
	// far must still be returned, flagged as not converged.
	y := seq.FromSlice([]float64{1, 0, 0, 0, 1, 0, 0})
	x := seq.FromSlice([]float64{8, 6, 7, 5, 3, 0, 9})

	res, err := LogisticRegress(y, []seq.Seq{seq.Constant(1), x}, WithMaxIterations(1))
	if err != nil {
		t.Fatalf("LogisticRegress() error = %v", err)
	}
	if res.Converged {
		t.Error("solver reported convergence after a single iteration")
	}
	if res.Iterations != 1 {
		t.Errorf("Iterations = %d, want 1", res.Iterations)
	}
	if len(res.Betas) != 2 {
		t.Errorf("got %d coefficients, want 2", len(res.Betas))
	}
}

func TestLogisticRegressInfiniteResponse(t *testing.T) {
	_, err := LogisticRegressBeta(seq.Constant(1), seq.FromSlice([]float64{1, 2, 3}))
	if err == nil {
		t.Fatal("LogisticRegressBeta() accepted a response with unknown length")
	}
	var vErr *errors.ValidationError
	if !errors.As(err, &vErr) {
		t.Errorf("error = %v, want ValidationError", err)
	}
}

func TestLogisticRegressTruncatesAtShortestPredictor(t *testing.T) {
	y := seq.FromSlice([]float64{1, 0, 0, 0, 1, 0, 0})
	short := seq.FromSlice([]float64{8, 6, 7})
	res, err := LogisticRegress(y, []seq.Seq{seq.Constant(1), short})
	if err != nil {
		t.Fatalf("LogisticRegress() error = %v", err)
	}
	if len(res.Betas) != 2 {
		t.Errorf("got %d coefficients, want 2", len(res.Betas))
	}
}

func TestInverseLogit(t *testing.T) {
	tests := []struct {
		name string
		z    float64
		want float64
	}{
		{name: "zero", z: 0, want: 0.5},
		{name: "large positive", z: 1000, want: 1},
		{name: "large negative", z: -1000, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inverseLogit(tt.z); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("inverseLogit(%v) = %v, want %v", tt.z, got, tt.want)
			}
		})
	}
}
