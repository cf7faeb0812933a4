package capture

// StationRecord is one station's state at one polling instant. Timestamps
// are unix seconds; the source publishes milliseconds and the decoder
// floor-divides during coercion.
type StationRecord struct {
	TerminalID     int
	Name           string
	Lat            float64
	Lon            float64
	Installed      bool
	Locked         bool
	Public         bool
	Temporary      bool
	BikesAvailable int
	EmptyDocks     int
	LastUpdateTime int64
	LastCommTime   int64
}

// TotalDocks derives the station capacity at the time of the record.
// Capacity changes across the day are legitimate station history, so the
// value is recomputed per record rather than carried as a constant.
func (r StationRecord) TotalDocks() int {
	return r.BikesAvailable + r.EmptyDocks
}

// NetworkSnapshot is the decoded content of one capture file: every
// station record in file order plus the network-wide update timestamp.
type NetworkSnapshot struct {
	Records     []StationRecord
	NetworkTime int64

	// DroppedRecords counts station entries discarded during decoding
	// because a required field failed coercion.
	DroppedRecords int
}
