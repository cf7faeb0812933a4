package series

import "github.com/theoremus-urban-solutions/bikeshare-ingest/capture"

// Measurement is one accepted (timestamp, bike count) point.
type Measurement struct {
	Time  int64
	Bikes int
}

// Metadata is a versioned snapshot of a station's slow-moving attributes.
// Volatile per-tick fields (bike count, empty docks, last server contact)
// are stripped; TotalDocks is derived at capture time.
type Metadata struct {
	TerminalID     int
	Name           string
	Lat            float64
	Lon            float64
	Installed      bool
	Locked         bool
	Public         bool
	Temporary      bool
	TotalDocks     int
	LastUpdateTime int64
}

// sameAttributes compares two metadata versions ignoring LastUpdateTime,
// which moves on every tick and would defeat drift detection.
func (m Metadata) sameAttributes(o Metadata) bool {
	m.LastUpdateTime = 0
	o.LastUpdateTime = 0
	return m == o
}

// StationSeries accumulates one station's history: a dense measurement
// sub-series and a far shorter metadata sub-series capturing drift events.
// A StationSeries is owned by exactly one NetworkAccumulator.
type StationSeries struct {
	TerminalID       int
	Measurements     []Measurement
	MetadataVersions []Metadata
}

func NewStationSeries(terminalID int) *StationSeries {
	return &StationSeries{TerminalID: terminalID}
}

// Add folds one record into the series.
//
// A measurement is appended iff its timestamp differs from the last stored
// one. The guard is difference, not recency: a backdated timestamp from
// clock skew is still accepted as a new point. Stricter monotonic checking
// was considered and deliberately not applied.
//
// A metadata version is appended iff it differs from the most recent
// stored version, LastUpdateTime excluded.
func (s *StationSeries) Add(rec capture.StationRecord) {
	if n := len(s.Measurements); n == 0 || s.Measurements[n-1].Time != rec.LastUpdateTime {
		s.Measurements = append(s.Measurements, Measurement{Time: rec.LastUpdateTime, Bikes: rec.BikesAvailable})
	}

	meta := Metadata{
		TerminalID:     rec.TerminalID,
		Name:           rec.Name,
		Lat:            rec.Lat,
		Lon:            rec.Lon,
		Installed:      rec.Installed,
		Locked:         rec.Locked,
		Public:         rec.Public,
		Temporary:      rec.Temporary,
		TotalDocks:     rec.TotalDocks(),
		LastUpdateTime: rec.LastUpdateTime,
	}
	if n := len(s.MetadataVersions); n == 0 || !s.MetadataVersions[n-1].sameAttributes(meta) {
		s.MetadataVersions = append(s.MetadataVersions, meta)
	}
}

// CurrentMetadata returns the most recent metadata version, or false when
// the series has never seen a record.
func (s *StationSeries) CurrentMetadata() (Metadata, bool) {
	if len(s.MetadataVersions) == 0 {
		return Metadata{}, false
	}
	return s.MetadataVersions[len(s.MetadataVersions)-1], true
}
