// Package capture decodes bike-share station-status capture files.
//
// One capture file holds the whole network's state for a single polling
// interval: a <stations> document with a network-wide LastUpdate attribute
// and one <station> element per dock location. Files on disk are bzip2
// compressed and named YYYY-MM-DD_*.xml.bz2 so that lexicographic order is
// chronological order.
//
// Decoding is a pure transform over the input bytes. A file either fully
// contributes its valid records or contributes none: an unparseable
// document or a missing LastUpdate attribute fails with ErrBadCapture,
// while a single station entry whose required fields do not coerce is
// silently dropped and counted on the snapshot.
//
// Source timestamps are epoch milliseconds and are converted to whole
// seconds during decoding.
package capture
