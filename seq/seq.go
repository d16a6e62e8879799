// Package seq provides lazy numeric sequences for streaming statistics.
//
// A sequence is an ordered, possibly infinite stream of float64 values
// that is advanced one element at a time. Two capability tiers exist:
// Seq is a single-pass producer, Forward additionally supports cheap
// checkpointing so the same data can be traversed more than once.
// Regression routines that only need one pass (coefficient estimation)
// accept Seq; routines that re-walk the data for diagnostics require
// Forward.
package seq

import "math"

// Seq is a single-pass producer of float64 values.
//
// Next returns the next value in the stream and true, or zero and false
// once the stream is exhausted. After Next reports false it must keep
// reporting false.
type Seq interface {
	Next() (float64, bool)
}

// Forward is a multi-pass sequence. Checkpoint returns an independent
// traversal positioned at the current element; advancing one traversal
// never affects another. Structural sharing of the underlying storage
// is allowed.
type Forward interface {
	Seq
	Checkpoint() Forward
}

// Finite is implemented by sequences whose remaining length is known.
type Finite interface {
	Len() int
}

// Source is a single-pass producer of predictor sequences, used when
// the predictors are supplied as one homogeneous collection instead of
// a fixed argument list.
type Source interface {
	NextSeq() (Forward, bool)
}

type sliceSeq struct {
	data []float64
	pos  int
}

// FromSlice returns a Forward sequence over data. The slice is not
// copied; callers must not mutate it while the sequence is in use.
func FromSlice(data []float64) Forward {
	return &sliceSeq{data: data}
}

// FromInts returns a Forward sequence that promotes the integer data
// to float64 on the fly.
func FromInts(data []int) Forward {
	vals := make([]float64, len(data))
	for i, v := range data {
		vals[i] = float64(v)
	}
	return &sliceSeq{data: vals}
}

func (s *sliceSeq) Next() (float64, bool) {
	if s.pos >= len(s.data) {
		return 0, false
	}
	v := s.data[s.pos]
	s.pos++
	return v, true
}

func (s *sliceSeq) Checkpoint() Forward {
	return &sliceSeq{data: s.data, pos: s.pos}
}

func (s *sliceSeq) Len() int {
	return len(s.data) - s.pos
}

type constSeq struct {
	value float64
}

// Constant returns an infinite Forward sequence that yields value
// forever. Its usual role is the intercept column of a design matrix.
func Constant(value float64) Forward {
	return constSeq{value: value}
}

func (s constSeq) Next() (float64, bool) { return s.value, true }

func (s constSeq) Checkpoint() Forward { return s }

type mapSeq struct {
	src Forward
	f   func(float64) float64
}

// Map returns a Forward sequence applying f elementwise to src. Only
// the current element is ever held; values are recomputed on each
// advance.
func Map(f func(float64) float64, src Forward) Forward {
	return &mapSeq{src: src, f: f}
}

func (s *mapSeq) Next() (float64, bool) {
	v, ok := s.src.Next()
	if !ok {
		return 0, false
	}
	return s.f(v), true
}

func (s *mapSeq) Checkpoint() Forward {
	return &mapSeq{src: s.src.Checkpoint(), f: s.f}
}

// Pow returns a Forward sequence computing base^k elementwise. Power
// zero always yields 1, which makes Pow(x, 0) an intercept column.
func Pow(base Forward, k float64) Forward {
	if k == 0 {
		return Map(func(float64) float64 { return 1 }, base)
	}
	return Map(func(v float64) float64 { return math.Pow(v, k) }, base)
}

// Collect drains s into a freshly allocated slice. It must not be
// called on an infinite sequence.
func Collect(s Seq) []float64 {
	var out []float64
	for {
		v, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// CollectN drains at most n values from s.
func CollectN(s Seq, n int) []float64 {
	out := make([]float64, 0, n)
	for len(out) < n {
		v, ok := s.Next()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}

// Len reports the remaining length of s, or -1 if it is unknown or
// unbounded.
func Len(s Seq) int {
	if fin, ok := s.(Finite); ok {
		return fin.Len()
	}
	return -1
}

type sliceSource struct {
	seqs []Forward
	pos  int
}

// SourceOf returns a Source yielding the given sequences in order.
func SourceOf(seqs ...Forward) Source {
	return &sliceSource{seqs: seqs}
}

func (s *sliceSource) NextSeq() (Forward, bool) {
	if s.pos >= len(s.seqs) {
		return nil, false
	}
	sq := s.seqs[s.pos]
	s.pos++
	return sq, true
}

// CollectSeqs snapshots a predictor collection into an owned slice.
// The collection's length fixes the size of the normal-equations
// matrix, so it must be fully known before any accumulation starts.
func CollectSeqs(src Source) []Forward {
	var out []Forward
	for {
		sq, ok := src.NextSeq()
		if !ok {
			return out
		}
		out = append(out, sq)
	}
}
