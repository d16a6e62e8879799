package regress

import (
	"math"
	"testing"

	"github.com/n8sh/dstats/seq"
)

func TestLinearRegressBetaExactLine(t *testing.T) {
	// y = 1 + 2x fits exactly.
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{1, 3, 5, 7, 9}
	betas, err := LinearRegressBeta(seq.FromSlice(y), seq.Constant(1), seq.FromSlice(x))
	if err != nil {
		t.Fatalf("LinearRegressBeta() error = %v", err)
	}
	if len(betas) != 2 {
		t.Fatalf("got %d coefficients, want 2", len(betas))
	}
	if math.Abs(betas[0]-1) > 1e-10 || math.Abs(betas[1]-2) > 1e-10 {
		t.Errorf("betas = %v, want [1 2]", betas)
	}
}

func TestLinearRegressBetaSinglePassInputs(t *testing.T) {
	// The beta-only path must work on consume-once sequences; feed it
	// plain Seq values with no checkpoint capability.
	y := onceSeq{data: []float64{1, 3, 5}}
	x := onceSeq{data: []float64{0, 1, 2}}
	betas, err := LinearRegressBeta(&y, seq.Constant(1), &x)
	if err != nil {
		t.Fatalf("LinearRegressBeta() error = %v", err)
	}
	if math.Abs(betas[0]-1) > 1e-10 || math.Abs(betas[1]-2) > 1e-10 {
		t.Errorf("betas = %v, want [1 2]", betas)
	}
}

// onceSeq is a deliberately minimal single-pass sequence.
type onceSeq struct {
	data []float64
	pos  int
}

func (s *onceSeq) Next() (float64, bool) {
	if s.pos >= len(s.data) {
		return 0, false
	}
	v := s.data[s.pos]
	s.pos++
	return v, true
}

func TestLinearRegressBetaBufReuse(t *testing.T) {
	buf := make([]float64, 4)
	betas, err := LinearRegressBetaBuf(buf, seq.FromSlice(heightY), seq.Constant(1), seq.FromSlice(heightX))
	if err != nil {
		t.Fatalf("LinearRegressBetaBuf() error = %v", err)
	}
	if len(betas) != 2 {
		t.Fatalf("got %d coefficients, want 2", len(betas))
	}
	if &betas[0] != &buf[0] {
		t.Error("result is not backed by the supplied buffer")
	}
	if math.Abs(betas[0]-2.6623) > 1e-3 || math.Abs(betas[1]-0.2417) > 1e-3 {
		t.Errorf("betas = %v, want [2.6623 0.2417]", betas)
	}
}

func TestLinearRegressBetaBufUndersized(t *testing.T) {
	buf := make([]float64, 1)
	sentinel := 42.0
	buf[0] = sentinel
	betas, err := LinearRegressBetaBuf(buf[:0:1], seq.FromSlice(heightY), seq.Constant(1), seq.FromSlice(heightX))
	if err != nil {
		t.Fatalf("LinearRegressBetaBuf() error = %v", err)
	}
	if len(betas) != 2 {
		t.Fatalf("got %d coefficients, want 2", len(betas))
	}
	// A fresh slice must have been allocated without touching the
	// caller's memory.
	if buf[0] != sentinel {
		t.Errorf("caller buffer was corrupted: %v", buf[0])
	}
}

func TestLinearRegressBetaValidation(t *testing.T) {
	tests := []struct {
		name string
		y    seq.Seq
		xs   []seq.Seq
	}{
		{name: "nil response", y: nil, xs: []seq.Seq{seq.Constant(1)}},
		{name: "no predictors", y: seq.FromSlice(heightY), xs: nil},
		{name: "nil predictor", y: seq.FromSlice(heightY), xs: []seq.Seq{nil}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LinearRegressBeta(tt.y, tt.xs...); err == nil {
				t.Error("LinearRegressBeta() accepted invalid input")
			}
		})
	}
}

func TestLinearRegressBetaSet(t *testing.T) {
	betas, err := LinearRegressBetaSet(seq.FromSlice(heightY),
		seq.SourceOf(seq.Constant(1), seq.FromSlice(heightX)))
	if err != nil {
		t.Fatalf("LinearRegressBetaSet() error = %v", err)
	}
	if math.Abs(betas[0]-2.6623) > 1e-3 || math.Abs(betas[1]-0.2417) > 1e-3 {
		t.Errorf("betas = %v, want [2.6623 0.2417]", betas)
	}

	if _, err := LinearRegressBetaSet(seq.FromSlice(heightY), seq.SourceOf()); err == nil {
		t.Error("LinearRegressBetaSet() accepted an empty collection")
	}
}
