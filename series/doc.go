// Package series accumulates per-station time series from decoded network
// snapshots.
//
// Each station owns two parallel histories: a measurement sub-series of
// (timestamp, bikes available) pairs deduplicated by repeated timestamp,
// and an append-only metadata sub-series that grows only when a station's
// slow-moving attributes (name, location, lock status, capacity) actually
// drift. The NetworkAccumulator routes snapshot records to station series
// and suppresses whole-snapshot reprocessing when the network timestamp
// repeats.
//
// Accumulators are not safe for concurrent use; a single driver owns one
// accumulator for the duration of an analysis run.
package series
