// Package resample converts irregular station time series onto a fixed
// per-day minute grid.
//
// The network polls roughly every 120 seconds with occasional multi-minute
// gaps, so raw series are ragged and unevenly sampled. Cross-day and
// cross-station alignment needs one shared axis: every series is fit with
// a piecewise-constant regression tree over minute-of-day and evaluated at
// fixed 2-minute offsets (720 points, 0..1438).
//
// A regression tree rather than interpolation: bike counts are inherently
// step functions between discrete dock events, and a smooth interpolant
// would fabricate fractional bikes.
package resample
