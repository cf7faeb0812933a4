// Package daytable builds the legacy fixed-shape view of one calendar day:
// aligned per-station arrays with one slot per accepted network timestamp.
//
// This is the alternative aggregation strategy to the series accumulator;
// the two consume the same decoder output and are not composed. The day
// table feeds the resampler and the persisted day archive.
package daytable
