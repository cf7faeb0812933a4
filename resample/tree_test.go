package resample

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitRejectsBadInput(t *testing.T) {
	_, err := Fit(nil, nil)
	assert.ErrorIs(t, err, ErrEmptySeries)

	_, err = Fit([]float64{0, 2}, []float64{1})
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestSinglePointIsConstant(t *testing.T) {
	tree, err := Fit([]float64{12}, []float64{7})
	assert.NoError(t, err)

	assert.Equal(t, 7.0, tree.Predict(0))
	assert.Equal(t, 7.0, tree.Predict(12))
	assert.Equal(t, 7.0, tree.Predict(1438))
}

func TestStepBoundariesAtMidpoints(t *testing.T) {
	// Full-depth growth memorizes the training points with steps at
	// midpoints between consecutive distinct times.
	tree, err := Fit([]float64{0, 4, 8}, []float64{1, 1, 3})
	assert.NoError(t, err)

	assert.Equal(t, 1.0, tree.Predict(0))
	assert.Equal(t, 1.0, tree.Predict(2)) // 2 <= midpoint(0,4)
	assert.Equal(t, 1.0, tree.Predict(4))
	assert.Equal(t, 1.0, tree.Predict(6)) // 6 <= midpoint(4,8), left branch
	assert.Equal(t, 3.0, tree.Predict(6.5))
	assert.Equal(t, 3.0, tree.Predict(8))
	assert.Equal(t, 3.0, tree.Predict(1438))
}

func TestFitIsDeterministic(t *testing.T) {
	times := []float64{0, 2, 4, 6, 8, 10, 12}
	values := []float64{5, 5, 4, 4, 9, 9, 0}

	first, err := Fit(times, values)
	assert.NoError(t, err)
	second, err := Fit(times, values)
	assert.NoError(t, err)

	xs := []float64{0, 1, 3, 5, 7, 9, 11, 13, 100}
	assert.Equal(t, first.PredictAll(xs), second.PredictAll(xs))
}

func TestDuplicateTimesPredictMean(t *testing.T) {
	tree, err := Fit([]float64{4, 4, 10}, []float64{2, 4, 8})
	assert.NoError(t, err)

	assert.Equal(t, 3.0, tree.Predict(4))
	assert.Equal(t, 8.0, tree.Predict(10))
}

func TestTrainingPointsReproduced(t *testing.T) {
	times := []float64{0, 3, 7, 20, 21, 40}
	values := []float64{1, 4, 2, 2, 9, 6}

	tree, err := Fit(times, values)
	assert.NoError(t, err)
	for i, x := range times {
		assert.Equal(t, values[i], tree.Predict(x), "training point %v", x)
	}
}
