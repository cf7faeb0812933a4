package resample

import (
	"errors"
	"sort"
)

// ErrEmptySeries is returned when a fit is attempted on no points.
var ErrEmptySeries = errors.New("resample: cannot fit an empty series")

// ErrLengthMismatch is returned when times and values disagree in length.
var ErrLengthMismatch = errors.New("resample: times and values differ in length")

// Tree is a fitted piecewise-constant regression tree over a single time
// feature. Growth is unlimited: leaves shrink until they cover one distinct
// time value, so the fitted function steps exactly at midpoints between
// consecutive observed times. Duplicate times collapse to their mean.
type Tree struct {
	root *node
}

type node struct {
	threshold float64 // split: x <= threshold goes left
	left      *node
	right     *node
	value     float64 // leaf prediction
	leaf      bool
}

type sample struct {
	x float64
	y float64
}

// Fit builds a regression tree mapping times to values with the squared
// error criterion. Splitting is deterministic: candidate thresholds are
// midpoints between consecutive distinct times, and among equal-cost
// splits the lowest threshold wins.
func Fit(times, values []float64) (*Tree, error) {
	if len(times) != len(values) {
		return nil, ErrLengthMismatch
	}
	if len(times) == 0 {
		return nil, ErrEmptySeries
	}
	samples := make([]sample, len(times))
	for i := range times {
		samples[i] = sample{x: times[i], y: values[i]}
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i].x < samples[j].x })

	// Prefix sums over the sorted samples let every candidate split cost
	// come out of O(1) arithmetic.
	n := len(samples)
	sumY := make([]float64, n+1)
	sumY2 := make([]float64, n+1)
	for i, s := range samples {
		sumY[i+1] = sumY[i] + s.y
		sumY2[i+1] = sumY2[i] + s.y*s.y
	}

	t := &Tree{}
	t.root = grow(samples, sumY, sumY2, 0, n)
	return t, nil
}

// sse is the within-segment sum of squared errors for samples [lo, hi).
func sse(sumY, sumY2 []float64, lo, hi int) float64 {
	n := float64(hi - lo)
	if n == 0 {
		return 0
	}
	s := sumY[hi] - sumY[lo]
	s2 := sumY2[hi] - sumY2[lo]
	return s2 - s*s/n
}

func grow(samples []sample, sumY, sumY2 []float64, lo, hi int) *node {
	mean := (sumY[hi] - sumY[lo]) / float64(hi-lo)
	if samples[lo].x == samples[hi-1].x {
		return &node{leaf: true, value: mean}
	}

	best := -1
	bestCost := 0.0
	for i := lo; i < hi-1; i++ {
		if samples[i].x == samples[i+1].x {
			continue
		}
		cost := sse(sumY, sumY2, lo, i+1) + sse(sumY, sumY2, i+1, hi)
		if best < 0 || cost < bestCost {
			best = i
			bestCost = cost
		}
	}

	return &node{
		threshold: (samples[best].x + samples[best+1].x) / 2,
		left:      grow(samples, sumY, sumY2, lo, best+1),
		right:     grow(samples, sumY, sumY2, best+1, hi),
	}
}

// Predict evaluates the fitted step function at x.
func (t *Tree) Predict(x float64) float64 {
	n := t.root
	for !n.leaf {
		if x <= n.threshold {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n.value
}

// PredictAll evaluates the fitted function at every x in xs.
func (t *Tree) PredictAll(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = t.Predict(x)
	}
	return out
}
