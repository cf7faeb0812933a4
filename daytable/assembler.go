package daytable

import (
	"sort"

	"github.com/theoremus-urban-solutions/bikeshare-ingest/capture"
)

// Sample is one per-tick observation slot. Absent observations are
// represented explicitly rather than through an out-of-range numeric
// sentinel.
type Sample struct {
	Count int
	Valid bool
}

func missing() Sample { return Sample{} }

func observed(count int) Sample { return Sample{Count: count, Valid: true} }

// StationMeta holds the static first-seen attributes of a station, with
// every measurement field stripped.
type StationMeta struct {
	Name      string
	Lat       float64
	Lon       float64
	Installed bool
	Locked    bool
	Public    bool
	Temporary bool
}

// DayTable is the fixed-shape view over one calendar day: one slot per
// accepted distinct network timestamp, with every per-station sequence
// aligned index-for-index against TimeTicks.
type DayTable struct {
	TimeTicks []int64
	Bikes     map[int][]Sample
	MaxBikes  map[int][]Sample
	Metadata  map[int]StationMeta
}

// Assembler folds decoded snapshots for a single day into aligned
// per-station arrays.
//
// RepairAlignment controls the stance on stations that disappear and later
// reappear mid-day. The legacy behavior appends that station's padding at
// the tail, silently misaligning its values against TimeTicks from the
// reappearance onward; with RepairAlignment set, missing slots are
// inserted at their chronological position instead.
type Assembler struct {
	RepairAlignment bool

	ticks    []int64
	seen     map[int64]struct{}
	bikes    map[int][]Sample
	maxBikes map[int][]Sample
	meta     map[int]StationMeta
	repaired []int
}

func NewAssembler(repairAlignment bool) *Assembler {
	return &Assembler{
		RepairAlignment: repairAlignment,
		seen:            map[int64]struct{}{},
		bikes:           map[int][]Sample{},
		maxBikes:        map[int][]Sample{},
		meta:            map[int]StationMeta{},
	}
}

// Fold accepts one snapshot. A snapshot whose network timestamp was
// already accepted anywhere in the day is skipped wholesale. On first
// sight of a station its series is back-filled with missing slots up to
// the current tick count. Snapshots carry at most one record per
// terminal; capture.Decode collapses repeated terminals before they
// reach this point.
func (a *Assembler) Fold(snap *capture.NetworkSnapshot) {
	if _, dup := a.seen[snap.NetworkTime]; dup {
		return
	}
	a.seen[snap.NetworkTime] = struct{}{}
	a.ticks = append(a.ticks, snap.NetworkTime)

	present := map[int]struct{}{}
	for _, rec := range snap.Records {
		present[rec.TerminalID] = struct{}{}
		if _, known := a.bikes[rec.TerminalID]; !known {
			pad := make([]Sample, len(a.ticks)-1)
			a.bikes[rec.TerminalID] = pad
			a.maxBikes[rec.TerminalID] = append([]Sample(nil), pad...)
			a.meta[rec.TerminalID] = StationMeta{
				Name:      rec.Name,
				Lat:       rec.Lat,
				Lon:       rec.Lon,
				Installed: rec.Installed,
				Locked:    rec.Locked,
				Public:    rec.Public,
				Temporary: rec.Temporary,
			}
		}
		a.bikes[rec.TerminalID] = append(a.bikes[rec.TerminalID], observed(rec.BikesAvailable))
		a.maxBikes[rec.TerminalID] = append(a.maxBikes[rec.TerminalID], observed(rec.TotalDocks()))
	}

	if a.RepairAlignment {
		for id := range a.bikes {
			if _, ok := present[id]; !ok {
				a.bikes[id] = append(a.bikes[id], missing())
				a.maxBikes[id] = append(a.maxBikes[id], missing())
			}
		}
	}
}

// Table finalizes the day. Any station series still shorter than the tick
// count is padded at the tail with missing slots so that every sequence
// has length exactly len(TimeTicks).
func (a *Assembler) Table() *DayTable {
	a.repaired = a.repaired[:0]
	for id, series := range a.bikes {
		if deficit := len(a.ticks) - len(series); deficit > 0 {
			a.repaired = append(a.repaired, id)
			for i := 0; i < deficit; i++ {
				a.bikes[id] = append(a.bikes[id], missing())
				a.maxBikes[id] = append(a.maxBikes[id], missing())
			}
		}
	}
	sort.Ints(a.repaired)
	return &DayTable{
		TimeTicks: a.ticks,
		Bikes:     a.bikes,
		MaxBikes:  a.maxBikes,
		Metadata:  a.meta,
	}
}

// Repaired lists the stations whose series needed tail padding in the
// last Table call. Under RepairAlignment it is always empty.
func (a *Assembler) Repaired() []int {
	return a.repaired
}

// MetadataComplete reports whether every station with a value series also
// has captured metadata. Transient stations can legitimately come up
// short, so a mismatch is informational.
func (t *DayTable) MetadataComplete() bool {
	return len(t.Metadata) == len(t.Bikes)
}
