package summary

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"
)

func TestPearsonCorAgainstGonum(t *testing.T) {
	tests := []struct {
		name string
		xs   []float64
		ys   []float64
	}{
		{
			name: "positive association",
			xs:   []float64{2, 1, 5, 5, 20, 20, 23, 10, 30, 25},
			ys:   []float64{1.9, 3.1, 3.3, 4.8, 5.3, 6.1, 6.4, 7.6, 9.8, 12.4},
		},
		{
			name: "perfect correlation",
			xs:   []float64{1, 2, 3, 4},
			ys:   []float64{2, 4, 6, 8},
		},
		{
			name: "perfect anticorrelation",
			xs:   []float64{1, 2, 3, 4},
			ys:   []float64{8, 6, 4, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p PearsonCor
			for i := range tt.xs {
				p.Put(tt.xs[i], tt.ys[i])
			}
			want := stat.Correlation(tt.xs, tt.ys, nil)
			if got := p.Cor(); math.Abs(got-want) > 1e-12 {
				t.Errorf("Cor() = %v, want %v", got, want)
			}
			if p.N() != len(tt.xs) {
				t.Errorf("N() = %d, want %d", p.N(), len(tt.xs))
			}
		})
	}
}

func TestPearsonCorDegenerate(t *testing.T) {
	var p PearsonCor
	if !math.IsNaN(p.Cor()) {
		t.Error("Cor() on empty accumulator should be NaN")
	}
	p.Put(1, 2)
	if !math.IsNaN(p.Cor()) {
		t.Error("Cor() on a single pair should be NaN")
	}

	// Zero variance in one coordinate.
	var q PearsonCor
	q.Put(1, 1)
	q.Put(1, 2)
	q.Put(1, 3)
	if !math.IsNaN(q.Cor()) {
		t.Error("Cor() with zero x-variance should be NaN")
	}
}

func TestPearsonCorMeans(t *testing.T) {
	var p PearsonCor
	p.Put(1, 10)
	p.Put(3, 30)
	if math.Abs(p.MeanX()-2) > 1e-12 {
		t.Errorf("MeanX() = %v, want 2", p.MeanX())
	}
	if math.Abs(p.MeanY()-20) > 1e-12 {
		t.Errorf("MeanY() = %v, want 20", p.MeanY())
	}
}
