package resample

// DefaultStepMinutes is the grid cadence all station series are reduced to.
const DefaultStepMinutes = 2

const minutesPerDay = 1440

// Grid returns the fixed evaluation axis for one day: minute offsets from
// 0 up to (but excluding) 1440 in stepMinutes increments. The default
// 2-minute step yields 720 points, 0 through 1438.
func Grid(stepMinutes int) []int {
	if stepMinutes <= 0 {
		stepMinutes = DefaultStepMinutes
	}
	grid := make([]int, 0, minutesPerDay/stepMinutes)
	for m := 0; m < minutesPerDay; m += stepMinutes {
		grid = append(grid, m)
	}
	return grid
}

// Series resamples one irregular (time, value) series onto the fixed grid.
// Times are minutes since the day-start reference. The fit is piecewise
// constant: integer bike counts step between discrete events, and linear
// interpolation would fabricate fractional bikes. With a single input
// point the fit degenerates to a constant across the whole grid.
func Series(times, values []float64, stepMinutes int) ([]int, []float64, error) {
	tree, err := Fit(times, values)
	if err != nil {
		return nil, nil, err
	}
	grid := Grid(stepMinutes)
	xs := make([]float64, len(grid))
	for i, m := range grid {
		xs[i] = float64(m)
	}
	return grid, tree.PredictAll(xs), nil
}

// Map resamples every series in a station keyed mapping against the same
// shared times axis. Each series is refit independently; the returned grid
// is identical for all keys.
func Map(times []float64, byStation map[int][]float64, stepMinutes int) ([]int, map[int][]float64, error) {
	grid := Grid(stepMinutes)
	out := make(map[int][]float64, len(byStation))
	for key, values := range byStation {
		_, fitted, err := Series(times, values, stepMinutes)
		if err != nil {
			return nil, nil, err
		}
		out[key] = fitted
	}
	return grid, out, nil
}
