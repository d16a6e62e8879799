// Package summary provides streaming summary-statistic accumulators.
package summary

import "math"

// PearsonCor accumulates the Pearson correlation of a stream of (x, y)
// pairs fed one at a time through Put. It keeps running means and
// centered co-moments so a single pass suffices and no pair is stored.
type PearsonCor struct {
	n        float64
	meanX    float64
	meanY    float64
	comoment float64
	m2x      float64
	m2y      float64
}

// Put feeds one (x, y) pair into the accumulator.
func (p *PearsonCor) Put(x, y float64) {
	p.n++
	dx := x - p.meanX
	p.meanX += dx / p.n
	dy := y - p.meanY
	p.meanY += dy / p.n
	p.comoment += dx * (y - p.meanY)
	p.m2x += dx * (x - p.meanX)
	p.m2y += dy * (y - p.meanY)
}

// Cor returns the correlation of the pairs seen so far. With fewer than
// two pairs, or when either variable has zero variance, the result is
// NaN.
func (p *PearsonCor) Cor() float64 {
	if p.n < 2 {
		return math.NaN()
	}
	return p.comoment / math.Sqrt(p.m2x*p.m2y)
}

// N returns the number of pairs fed so far.
func (p *PearsonCor) N() int {
	return int(p.n)
}

// MeanX returns the running mean of the first coordinate.
func (p *PearsonCor) MeanX() float64 { return p.meanX }

// MeanY returns the running mean of the second coordinate.
func (p *PearsonCor) MeanY() float64 { return p.meanY }
