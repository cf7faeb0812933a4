package archive

import (
	"bytes"
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/theoremus-urban-solutions/bikeshare-ingest/daytable"
)

// Day is the persisted product of one calendar day: the formatted time
// matrix, the resampled bike and capacity series per station, and the
// static station metadata. Series are aligned with the fixed minute grid,
// not with the raw tick axis.
type Day struct {
	Key      string // YYYYMMDD
	Time     []daytable.TimeRow
	Bikes    map[int][]float64
	MaxBikes map[int][]float64
	Metadata map[int]daytable.StationMeta
}

// DayKey formats the archive key for a calendar date.
func DayKey(year, month, day int) string {
	return fmt.Sprintf("%04d%02d%02d", year, month, day)
}

// FileName returns the on-disk name of a day archive inside dir.
func FileName(dir, key string) string {
	return filepath.Join(dir, key+".day.gz")
}

// Serialize encodes a Day to gzip-compressed gob bytes.
func Serialize(d *Day) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteTo(d, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Deserialize decodes a Day from gzip-compressed gob bytes.
func Deserialize(data []byte) (*Day, error) {
	return ReadFrom(bytes.NewReader(data))
}

// WriteTo streams a Day to w. The writer form keeps storage backends open:
// local files here, object stores for callers that want them.
func WriteTo(d *Day, w io.Writer) error {
	zw := gzip.NewWriter(w)
	if err := gob.NewEncoder(zw).Encode(d); err != nil {
		zw.Close()
		return fmt.Errorf("failed to encode day archive %s: %w", d.Key, err)
	}
	return zw.Close()
}

// ReadFrom decodes a Day from a gzip-compressed gob stream.
func ReadFrom(r io.Reader) (*Day, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open day archive stream: %w", err)
	}
	defer zr.Close()
	var d Day
	if err := gob.NewDecoder(zr).Decode(&d); err != nil {
		return nil, fmt.Errorf("failed to decode day archive: %w", err)
	}
	return &d, nil
}

// WriteFile persists a Day under its key inside dir.
func WriteFile(d *Day, dir string) error {
	f, err := os.Create(FileName(dir, d.Key))
	if err != nil {
		return err
	}
	if err := WriteTo(d, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadFile loads the Day stored under key inside dir.
func ReadFile(dir, key string) (*Day, error) {
	f, err := os.Open(FileName(dir, key))
	if err != nil {
		return nil, fmt.Errorf("failed to read day archive: %w", err)
	}
	defer f.Close()
	return ReadFrom(f)
}
