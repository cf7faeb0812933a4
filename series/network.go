package series

import (
	"log"

	"github.com/theoremus-urban-solutions/bikeshare-ingest/capture"
)

// NetworkAccumulator aggregates station series for one analysis window
// (typically a day). Snapshots must arrive in chronological order; the
// whole-snapshot dedup guard compares only against the most recently
// accepted network timestamp.
type NetworkAccumulator struct {
	LastUpdateTime int64

	stations map[int]*StationSeries
	order    []int // terminal ids in first-seen order
	seen     bool  // at least one snapshot accepted
}

func NewNetworkAccumulator() *NetworkAccumulator {
	return &NetworkAccumulator{stations: map[int]*StationSeries{}}
}

// Add distributes one snapshot's records to the per-station series.
// A snapshot whose network timestamp equals the last accepted one is a
// duplicate capture and the whole snapshot is a no-op, which makes
// re-ingesting the same file idempotent.
func (a *NetworkAccumulator) Add(snap *capture.NetworkSnapshot) {
	if a.seen && snap.NetworkTime == a.LastUpdateTime {
		return
	}
	a.seen = true
	a.LastUpdateTime = snap.NetworkTime
	for _, rec := range snap.Records {
		st, ok := a.stations[rec.TerminalID]
		if !ok {
			st = NewStationSeries(rec.TerminalID)
			a.stations[rec.TerminalID] = st
			a.order = append(a.order, rec.TerminalID)
		}
		st.Add(rec)
	}
}

// Station returns the series for a terminal id, or nil if never seen.
func (a *NetworkAccumulator) Station(terminalID int) *StationSeries {
	return a.stations[terminalID]
}

// TerminalIDs returns the station keys in first-seen order.
func (a *NetworkAccumulator) TerminalIDs() []int {
	out := make([]int, len(a.order))
	copy(out, a.order)
	return out
}

// Len reports the number of distinct stations seen.
func (a *NetworkAccumulator) Len() int {
	return len(a.order)
}

// CheckMetadataGap compares the number of stations holding at least one
// metadata version against the number holding measurements and logs a
// warning on mismatch. Transient stations can legitimately have incomplete
// metadata capture, so this is informational only.
func (a *NetworkAccumulator) CheckMetadataGap() bool {
	withMeta := 0
	withSeries := 0
	for _, st := range a.stations {
		if len(st.MetadataVersions) > 0 {
			withMeta++
		}
		if len(st.Measurements) > 0 {
			withSeries++
		}
	}
	if withMeta != withSeries {
		log.Printf("missing information in station metadata: %d stations with metadata, %d with measurements", withMeta, withSeries)
		return false
	}
	return true
}
