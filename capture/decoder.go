package capture

import (
	"bytes"
	"compress/bzip2"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrBadCapture marks a capture file that cannot contribute any data: the
// XML does not parse, or the network-wide LastUpdate attribute is missing
// or non-numeric. Individual bad station entries are not fatal.
var ErrBadCapture = errors.New("bad capture file")

// xmlStationList mirrors the wire layout of one capture document. All leaf
// fields stay as text here; typing happens in coerceRecord so that a single
// malformed field drops one record instead of failing the whole file.
type xmlStationList struct {
	XMLName    xml.Name     `xml:"stations"`
	LastUpdate string       `xml:"LastUpdate,attr"`
	Stations   []xmlStation `xml:"station"`
}

type xmlStation struct {
	ID                 string `xml:"id"`
	Name               string `xml:"name"`
	TerminalName       string `xml:"terminalName"`
	LastCommWithServer string `xml:"lastCommWithServer"`
	LastUpdateTime     string `xml:"lastUpdateTime"`
	Lat                string `xml:"lat"`
	Lon                string `xml:"long"`
	Installed          string `xml:"installed"`
	Locked             string `xml:"locked"`
	Public             string `xml:"public"`
	Temporary          string `xml:"temporary"`
	NbBikes            string `xml:"nbBikes"`
	NbEmptyDocks       string `xml:"nbEmptyDocks"`
}

// Decode turns one raw (already decompressed) capture document into a
// NetworkSnapshot. The snapshot is all-or-nothing at the file level: on
// error no partial snapshot is returned.
func Decode(raw []byte) (*NetworkSnapshot, error) {
	var doc xmlStationList
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadCapture, err)
	}
	netMS, ok := toInt(doc.LastUpdate)
	if !ok {
		return nil, fmt.Errorf("%w: LastUpdate attribute %q is not numeric", ErrBadCapture, doc.LastUpdate)
	}
	snap := &NetworkSnapshot{
		Records:     make([]StationRecord, 0, len(doc.Stations)),
		NetworkTime: msToSeconds(netMS),
	}
	// Real captures occasionally repeat a terminal id within one document.
	// Duplicates collapse to a single record, last occurrence wins, at the
	// position of the first occurrence.
	index := make(map[int]int, len(doc.Stations))
	for _, st := range doc.Stations {
		rec, ok := coerceRecord(st)
		if !ok {
			snap.DroppedRecords++
			continue
		}
		if i, dup := index[rec.TerminalID]; dup {
			snap.Records[i] = rec
			continue
		}
		index[rec.TerminalID] = len(snap.Records)
		snap.Records = append(snap.Records, rec)
	}
	return snap, nil
}

// DecodeReader decodes a capture document from r, which may be raw XML or
// a bzip2 stream depending on compressed.
func DecodeReader(r io.Reader, compressed bool) (*NetworkSnapshot, error) {
	if compressed {
		r = bzip2.NewReader(r)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadCapture, err)
	}
	return Decode(buf.Bytes())
}

// DecodeFile decodes one capture file, decompressing when the name carries
// the .bz2 suffix of the polling contract (YYYY-MM-DD_*.xml.bz2).
func DecodeFile(path string) (*NetworkSnapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open capture %s: %w", path, err)
	}
	defer f.Close()
	snap, err := DecodeReader(f, strings.HasSuffix(path, ".bz2"))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return snap, nil
}

// coerceRecord types one raw station entry. Records missing any required
// field are dropped; corrupt entries with a null lastUpdateTime show up in
// real captures and must not poison the rest of the file.
func coerceRecord(st xmlStation) (StationRecord, bool) {
	var rec StationRecord

	terminal, ok := toInt(st.TerminalName)
	if !ok {
		return rec, false
	}
	updateMS, ok := toInt(st.LastUpdateTime)
	if !ok {
		return rec, false
	}
	commMS, ok := toInt(st.LastCommWithServer)
	if !ok {
		return rec, false
	}
	bikes, ok := toInt(st.NbBikes)
	if !ok || bikes < 0 {
		return rec, false
	}
	empty, ok := toInt(st.NbEmptyDocks)
	if !ok || empty < 0 {
		return rec, false
	}
	lat, ok := toFloat(st.Lat)
	if !ok {
		return rec, false
	}
	lon, ok := toFloat(st.Lon)
	if !ok {
		return rec, false
	}
	installed, ok := toBool(st.Installed)
	if !ok {
		return rec, false
	}
	locked, ok := toBool(st.Locked)
	if !ok {
		return rec, false
	}
	public, ok := toBool(st.Public)
	if !ok {
		return rec, false
	}
	temporary, ok := toBool(st.Temporary)
	if !ok {
		return rec, false
	}

	rec = StationRecord{
		TerminalID:     int(terminal),
		Name:           st.Name,
		Lat:            lat,
		Lon:            lon,
		Installed:      installed,
		Locked:         locked,
		Public:         public,
		Temporary:      temporary,
		BikesAvailable: int(bikes),
		EmptyDocks:     int(empty),
		LastUpdateTime: msToSeconds(updateMS),
		LastCommTime:   msToSeconds(commMS),
	}
	return rec, true
}
